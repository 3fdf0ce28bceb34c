// internal/handlers/memstore_test.go
package handlers

import (
	"sort"
	"time"

	"attendance_backend/internal/models"
	"attendance_backend/internal/storage"
)

// memStore is an in-memory stand-in for *storage.DB, mirroring its error
// kinds.
type memStore struct {
	users      []*models.User
	records    []*models.Attendance
	nextUserID uint
	nextRecID  uint
}

func newMemStore() *memStore { return &memStore{} }

var (
	_ UserStore       = (*memStore)(nil)
	_ AttendanceStore = (*memStore)(nil)
)

func (m *memStore) CreateUser(u *models.User) error {
	for _, e := range m.users {
		if e.Email == u.Email {
			return storage.ErrEmailTaken
		}
	}
	m.nextUserID++
	u.ID = m.nextUserID
	cp := *u
	m.users = append(m.users, &cp)
	return nil
}

func (m *memStore) UserByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) UserByID(id uint) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) Employees() ([]models.User, error) {
	var rows []models.User
	for _, u := range m.users {
		if u.Role == models.RoleEmployee {
			rows = append(rows, *u)
		}
	}
	return rows, nil
}

func (m *memStore) CreateCheckIn(rec *models.Attendance) error {
	for _, r := range m.records {
		if r.UserID == rec.UserID && r.Date.Equal(rec.Date) {
			return storage.ErrDuplicateCheckIn
		}
	}
	m.nextRecID++
	rec.ID = m.nextRecID
	cp := *rec
	m.records = append(m.records, &cp)
	return nil
}

func (m *memStore) SaveCheckOut(rec *models.Attendance) error {
	for i, r := range m.records {
		if r.ID == rec.ID {
			cp := *rec
			m.records[i] = &cp
			return nil
		}
	}
	return storage.ErrNotFound
}

func (m *memStore) AttendanceByUserAndDate(userID uint, date time.Time) (*models.Attendance, error) {
	for _, r := range m.records {
		if r.UserID == userID && r.Date.Equal(date) {
			cp := *r
			return &cp, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) AttendanceByUser(userID uint, q storage.AttendanceQuery) ([]models.Attendance, int64, error) {
	var rows []models.Attendance
	for _, r := range m.records {
		if r.UserID != userID {
			continue
		}
		d := r.Date.UTC().Format("2006-01-02")
		if q.StartDate != "" && d < q.StartDate {
			continue
		}
		if q.EndDate != "" && d > q.EndDate {
			continue
		}
		if q.Status != "" && string(r.Status) != q.Status {
			continue
		}
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })

	total := int64(len(rows))
	start := (q.Page - 1) * q.Limit
	if start > len(rows) {
		start = len(rows)
	}
	end := start + q.Limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], total, nil
}

func (m *memStore) AttendanceByMonth(userID uint, year, month int) ([]models.Attendance, error) {
	var rows []models.Attendance
	for _, r := range m.records {
		d := r.Date.UTC()
		if r.UserID == userID && d.Year() == year && int(d.Month()) == month {
			rows = append(rows, *r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

func (m *memStore) AttendanceByDate(date time.Time) ([]models.Attendance, error) {
	var rows []models.Attendance
	for _, r := range m.records {
		if r.Date.Equal(date) {
			rows = append(rows, *r)
		}
	}
	return rows, nil
}

func (m *memStore) MonthAttendance(year, month int) ([]models.Attendance, error) {
	var rows []models.Attendance
	for _, r := range m.records {
		d := r.Date.UTC()
		if d.Year() == year && int(d.Month()) == month {
			rows = append(rows, *r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

func (m *memStore) RecentAttendance(limit int) ([]models.AttendanceActivity, error) {
	sorted := make([]*models.Attendance, len(m.records))
	copy(sorted, m.records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID > sorted[j].ID })

	var rows []models.AttendanceActivity
	for _, r := range sorted {
		if len(rows) == limit {
			break
		}
		name := ""
		if u, err := m.UserByID(r.UserID); err == nil {
			name = u.FullName
		}
		rows = append(rows, models.AttendanceActivity{
			ID:           r.ID,
			Date:         r.Date,
			Status:       r.Status,
			TotalHours:   r.TotalHours,
			EmployeeName: name,
		})
	}
	return rows, nil
}

func (m *memStore) AllAttendanceByUser(userID uint) ([]models.Attendance, error) {
	var rows []models.Attendance
	for _, r := range m.records {
		if r.UserID == userID {
			rows = append(rows, *r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
	return rows, nil
}
