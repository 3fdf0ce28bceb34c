// internal/utils/attendance.go
package utils

import (
	"fmt"
	"math"
	"time"

	"attendance_backend/internal/models"
)

// All wall-clock reasoning below is UTC. Callers present local time
// themselves if they want it.
const (
	// CheckInCutoffHourUTC is the hour from which a check-in counts as late.
	CheckInCutoffHourUTC = 9
	// FullDayHours is the minimum worked span for a day to keep its check-in
	// status; anything shorter becomes half-day at check-out.
	FullDayHours = 5.0
)

// DetermineCheckInStatus classifies a check-in instant. Strictly before
// 09:00:00 UTC is present; everything from 09:00:00 onward, including the
// exact boundary, is late.
func DetermineCheckInStatus(t time.Time) models.AttendanceStatus {
	if t.UTC().Hour() < CheckInCutoffHourUTC {
		return models.StatusPresent
	}
	return models.StatusLate
}

// CalculateTotalHours returns the span between check-in and check-out in
// decimal hours, rounded to 2 places (half away from zero). It performs no
// ordering validation: a check-out before the check-in yields a negative
// span.
func CalculateTotalHours(checkIn, checkOut time.Time) float64 {
	hours := checkOut.Sub(checkIn).Hours()
	return math.Round(hours*100) / 100
}

// DetermineCheckOutStatus turns the day into a half-day when the worked
// span falls short of the full-day threshold, and otherwise keeps the
// check-in status. Half-day is never reversed.
func DetermineCheckOutStatus(totalHours float64, current models.AttendanceStatus) models.AttendanceStatus {
	if totalHours < FullDayHours {
		return models.StatusHalfDay
	}
	return current
}

// FormatTimeHHMMSS renders an instant as zero-padded UTC "HH:MM:SS", or ""
// for a missing one.
func FormatTimeHHMMSS(t *time.Time) string {
	if t == nil {
		return ""
	}
	utc := t.UTC()
	return fmt.Sprintf("%02d:%02d:%02d", utc.Hour(), utc.Minute(), utc.Second())
}

// DateUTC truncates an instant to its UTC calendar date, the per-employee
// uniqueness and grouping key.
func DateUTC(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

// SummarizeAttendance folds records into per-status counts and the
// arithmetic sum of their hours. Records with an unknown status land in no
// count bucket but their hours are still summed.
func SummarizeAttendance(records []models.Attendance) models.AttendanceSummary {
	var s models.AttendanceSummary
	for _, r := range records {
		switch r.Status {
		case models.StatusPresent:
			s.PresentCount++
		case models.StatusLate:
			s.LateCount++
		case models.StatusHalfDay:
			s.HalfDayCount++
		}
		s.TotalHours += r.TotalHours
	}
	return s
}
