// internal/handlers/csv.go
package handlers

import (
	"encoding/csv"
	"io"
	"strconv"

	"attendance_backend/internal/models"
	"attendance_backend/internal/utils"
)

var csvHeader = []string{"Date", "Check In Time", "Check Out Time", "Total Hours", "Status"}

// writeAttendanceCSV renders records in the export layout: date as
// YYYY-MM-DD, times as UTC HH:MM:SS (empty when absent), hours as a plain
// number.
func writeAttendanceCSV(w io.Writer, records []models.Attendance) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		checkIn := r.CheckInTime
		row := []string{
			r.Date.UTC().Format("2006-01-02"),
			utils.FormatTimeHHMMSS(&checkIn),
			utils.FormatTimeHHMMSS(r.CheckOutTime),
			strconv.FormatFloat(r.TotalHours, 'f', -1, 64),
			string(r.Status),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
