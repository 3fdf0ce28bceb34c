// internal/models/attendance.go
package models

import "time"

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusLate    AttendanceStatus = "late"
	StatusHalfDay AttendanceStatus = "half-day"
)

// Attendance holds one row per employee per UTC calendar day. The composite
// unique index rejects a racing duplicate check-in; there is no
// application-level locking.
type Attendance struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	UserID       uint             `gorm:"not null;uniqueIndex:idx_attendances_user_date" json:"user_id"`
	Date         time.Time        `gorm:"type:date;not null;uniqueIndex:idx_attendances_user_date" json:"date"`
	CheckInTime  time.Time        `gorm:"not null" json:"check_in_time"`
	CheckOutTime *time.Time       `json:"check_out_time"`
	TotalHours   float64          `gorm:"not null;default:0" json:"total_hours"`
	Status       AttendanceStatus `gorm:"type:varchar(16);not null" json:"status"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// AttendanceSummary is a monthly aggregate: day counts per status plus the
// sum of recorded hours.
type AttendanceSummary struct {
	PresentCount int     `json:"present_count"`
	LateCount    int     `json:"late_count"`
	HalfDayCount int     `json:"half_day_count"`
	TotalHours   float64 `json:"total_hours"`
}

// AttendanceActivity is a record joined with the employee's name, used by
// the manager activity feed.
type AttendanceActivity struct {
	ID           uint             `json:"id"`
	Date         time.Time        `json:"date"`
	Status       AttendanceStatus `json:"status"`
	TotalHours   float64          `json:"total_hours"`
	EmployeeName string           `json:"employee_name"`
}
