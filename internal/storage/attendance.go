// internal/storage/attendance.go
package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"attendance_backend/internal/models"
)

// AttendanceQuery filters and paginates a per-user history listing. Dates
// are YYYY-MM-DD strings, already validated at the HTTP boundary.
type AttendanceQuery struct {
	Page      int
	Limit     int
	StartDate string
	EndDate   string
	Status    string
}

// CreateCheckIn inserts the day's record. A unique violation on
// (user_id, date) means somebody won the race; the existing row is left
// untouched.
func (d *DB) CreateCheckIn(rec *models.Attendance) error {
	if err := d.gorm.Create(rec).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCheckIn
		}
		return err
	}
	return nil
}

func (d *DB) SaveCheckOut(rec *models.Attendance) error {
	return d.gorm.Save(rec).Error
}

func (d *DB) AttendanceByUserAndDate(userID uint, date time.Time) (*models.Attendance, error) {
	var rec models.Attendance
	if err := d.gorm.Where("user_id = ? AND date = ?", userID, date).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (d *DB) AttendanceByUser(userID uint, q AttendanceQuery) ([]models.Attendance, int64, error) {
	tx := d.gorm.Model(&models.Attendance{}).Where("user_id = ?", userID)
	if q.StartDate != "" {
		tx = tx.Where("date >= ?", q.StartDate)
	}
	if q.EndDate != "" {
		tx = tx.Where("date <= ?", q.EndDate)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Attendance
	offset := (q.Page - 1) * q.Limit
	if err := tx.Order("date desc").Limit(q.Limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func monthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// AttendanceByMonth returns one user's records for a UTC calendar month,
// date ascending.
func (d *DB) AttendanceByMonth(userID uint, year, month int) ([]models.Attendance, error) {
	start, end := monthRange(year, month)
	var rows []models.Attendance
	err := d.gorm.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date asc").Find(&rows).Error
	return rows, err
}

// AttendanceByDate returns every employee's record for one UTC calendar day.
func (d *DB) AttendanceByDate(date time.Time) ([]models.Attendance, error) {
	var rows []models.Attendance
	err := d.gorm.Where("date = ?", date).Find(&rows).Error
	return rows, err
}

// MonthAttendance returns all users' records for a UTC calendar month.
func (d *DB) MonthAttendance(year, month int) ([]models.Attendance, error) {
	start, end := monthRange(year, month)
	var rows []models.Attendance
	err := d.gorm.Where("date >= ? AND date < ?", start, end).
		Order("date asc").Find(&rows).Error
	return rows, err
}

// RecentAttendance returns the latest records across all employees, joined
// with names for the activity feed.
func (d *DB) RecentAttendance(limit int) ([]models.AttendanceActivity, error) {
	var rows []models.AttendanceActivity
	err := d.gorm.Model(&models.Attendance{}).
		Select("attendances.id, attendances.date, attendances.status, attendances.total_hours, users.full_name AS employee_name").
		Joins("JOIN users ON users.id = attendances.user_id").
		Order("attendances.created_at desc").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// AllAttendanceByUser returns a user's full history, date descending.
func (d *DB) AllAttendanceByUser(userID uint) ([]models.Attendance, error) {
	var rows []models.Attendance
	err := d.gorm.Where("user_id = ?", userID).
		Order("date desc").Find(&rows).Error
	return rows, err
}
