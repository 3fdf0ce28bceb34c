// internal/handlers/stores.go
package handlers

import (
	"time"

	"attendance_backend/internal/models"
	"attendance_backend/internal/storage"
)

// Handlers consume the store through these interfaces so tests can swap in
// an in-memory fake. *storage.DB satisfies both.

type UserStore interface {
	CreateUser(u *models.User) error
	UserByEmail(email string) (*models.User, error)
	UserByID(id uint) (*models.User, error)
	Employees() ([]models.User, error)
}

type AttendanceStore interface {
	CreateCheckIn(rec *models.Attendance) error
	SaveCheckOut(rec *models.Attendance) error
	AttendanceByUserAndDate(userID uint, date time.Time) (*models.Attendance, error)
	AttendanceByUser(userID uint, q storage.AttendanceQuery) ([]models.Attendance, int64, error)
	AttendanceByMonth(userID uint, year, month int) ([]models.Attendance, error)
	AttendanceByDate(date time.Time) ([]models.Attendance, error)
	MonthAttendance(year, month int) ([]models.Attendance, error)
	RecentAttendance(limit int) ([]models.AttendanceActivity, error)
	AllAttendanceByUser(userID uint) ([]models.Attendance, error)
}

var (
	_ UserStore       = (*storage.DB)(nil)
	_ AttendanceStore = (*storage.DB)(nil)
)
