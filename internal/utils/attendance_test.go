package utils

import (
	"testing"
	"time"

	"attendance_backend/internal/models"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2026, 2, 16, hour, min, sec, 0, time.UTC)
}

func TestDetermineCheckInStatus(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want models.AttendanceStatus
	}{
		{"midnight", at(0, 0, 0), models.StatusPresent},
		{"early morning", at(6, 30, 0), models.StatusPresent},
		{"one second before cutoff", at(8, 59, 59), models.StatusPresent},
		{"exactly at cutoff", at(9, 0, 0), models.StatusLate},
		{"one second past cutoff", at(9, 0, 1), models.StatusLate},
		{"within cutoff hour", at(9, 45, 12), models.StatusLate},
		{"afternoon", at(14, 0, 0), models.StatusLate},
		{"just before midnight", at(23, 59, 59), models.StatusLate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetermineCheckInStatus(tc.in); got != tc.want {
				t.Errorf("DetermineCheckInStatus(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDetermineCheckInStatusUsesUTCComponents(t *testing.T) {
	// 15:30+07:00 is 08:30 UTC, still before the cutoff.
	wib := time.FixedZone("WIB", 7*3600)
	in := time.Date(2026, 2, 16, 15, 30, 0, 0, wib)
	if got := DetermineCheckInStatus(in); got != models.StatusPresent {
		t.Errorf("DetermineCheckInStatus(%v) = %q, want present", in, got)
	}
}

func TestCalculateTotalHours(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		out  time.Time
		want float64
	}{
		{"same instant", at(9, 0, 0), at(9, 0, 0), 0},
		{"eight hours", at(9, 0, 0), at(17, 0, 0), 8.00},
		{"ninety minutes", at(8, 0, 0), at(9, 30, 0), 1.5},
		{"eighteen seconds rounds up", at(8, 0, 0), at(8, 0, 18), 0.01},
		{"just under five hours rounds to five", at(8, 0, 0), at(12, 59, 59), 5.0},
		{"reversed order is negative", at(10, 0, 0), at(8, 0, 0), -2.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateTotalHours(tc.in, tc.out); got != tc.want {
				t.Errorf("CalculateTotalHours(%v, %v) = %v, want %v", tc.in, tc.out, got, tc.want)
			}
		})
	}
}

func TestDetermineCheckOutStatus(t *testing.T) {
	cases := []struct {
		hours   float64
		current models.AttendanceStatus
		want    models.AttendanceStatus
	}{
		{4.99, models.StatusPresent, models.StatusHalfDay},
		{5.00, models.StatusPresent, models.StatusPresent},
		{5.00, models.StatusLate, models.StatusLate},
		{0, models.StatusLate, models.StatusHalfDay},
		{8.25, models.StatusLate, models.StatusLate},
		{-1, models.StatusPresent, models.StatusHalfDay},
	}
	for _, tc := range cases {
		if got := DetermineCheckOutStatus(tc.hours, tc.current); got != tc.want {
			t.Errorf("DetermineCheckOutStatus(%v, %q) = %q, want %q", tc.hours, tc.current, got, tc.want)
		}
	}
}

func TestFormatTimeHHMMSS(t *testing.T) {
	if got := FormatTimeHHMMSS(nil); got != "" {
		t.Errorf("FormatTimeHHMMSS(nil) = %q, want empty", got)
	}

	in := at(9, 5, 3)
	if got := FormatTimeHHMMSS(&in); got != "09:05:03" {
		t.Errorf("FormatTimeHHMMSS = %q, want 09:05:03", got)
	}

	midnight := at(0, 0, 0)
	if got := FormatTimeHHMMSS(&midnight); got != "00:00:00" {
		t.Errorf("FormatTimeHHMMSS = %q, want 00:00:00", got)
	}

	// Rendered in UTC regardless of the input zone.
	wib := time.FixedZone("WIB", 7*3600)
	local := time.Date(2026, 2, 16, 16, 5, 3, 0, wib)
	if got := FormatTimeHHMMSS(&local); got != "09:05:03" {
		t.Errorf("FormatTimeHHMMSS(%v) = %q, want 09:05:03", local, got)
	}
}

func TestDateUTC(t *testing.T) {
	in := at(17, 45, 12)
	want := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)
	if got := DateUTC(in); !got.Equal(want) {
		t.Errorf("DateUTC(%v) = %v, want %v", in, got, want)
	}

	// 02:00+07:00 on the 17th is still the 16th in UTC.
	wib := time.FixedZone("WIB", 7*3600)
	local := time.Date(2026, 2, 17, 2, 0, 0, 0, wib)
	if got := DateUTC(local); !got.Equal(want) {
		t.Errorf("DateUTC(%v) = %v, want %v", local, got, want)
	}
}

func TestSummarizeAttendance(t *testing.T) {
	records := []models.Attendance{
		{Status: models.StatusPresent, TotalHours: 8},
		{Status: models.StatusPresent, TotalHours: 7.5},
		{Status: models.StatusLate, TotalHours: 6},
		{Status: models.StatusHalfDay, TotalHours: 4.25},
		{Status: "", TotalHours: 1},
	}

	s := SummarizeAttendance(records)
	if s.PresentCount != 2 || s.LateCount != 1 || s.HalfDayCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", s.PresentCount, s.LateCount, s.HalfDayCount)
	}
	if s.TotalHours != 26.75 {
		t.Errorf("TotalHours = %v, want 26.75", s.TotalHours)
	}
	if counted := s.PresentCount + s.LateCount + s.HalfDayCount; counted > len(records) {
		t.Errorf("counted %d records out of %d", counted, len(records))
	}
}

func TestSummarizeAttendanceEmpty(t *testing.T) {
	s := SummarizeAttendance(nil)
	if s.PresentCount != 0 || s.LateCount != 0 || s.HalfDayCount != 0 || s.TotalHours != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}
