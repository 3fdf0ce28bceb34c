// internal/handlers/employee_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"attendance_backend/internal/models"
	"attendance_backend/internal/storage"
	"attendance_backend/internal/utils"
)

type EmployeeHandler struct {
	Attendance AttendanceStore

	// Now is the request clock, swappable in tests. It is read once per
	// request and reused for every derived field.
	Now func() time.Time
}

func NewEmployeeHandler(att AttendanceStore) *EmployeeHandler {
	return &EmployeeHandler{Attendance: att, Now: time.Now}
}

type notesReq struct {
	Notes string `json:"notes"`
}

// todayView is an attendance record plus, while still checked in, the hours
// worked so far.
type todayView struct {
	models.Attendance
	CurrentHours *float64 `json:"current_hours,omitempty"`
}

func (h *EmployeeHandler) CheckIn(c *gin.Context) {
	var req notesReq
	_ = c.ShouldBindJSON(&req) // notes are optional, an empty body is fine

	userID := c.GetUint("user_id")
	now := h.Now().UTC()
	today := utils.DateUTC(now)

	if _, err := h.Attendance.AttendanceByUserAndDate(userID, today); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Already checked in today"})
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load attendance"})
		return
	}

	rec := models.Attendance{
		UserID:      userID,
		Date:        today,
		CheckInTime: now,
		TotalHours:  0,
		Status:      utils.DetermineCheckInStatus(now),
		Notes:       strings.TrimSpace(req.Notes),
	}

	if err := h.Attendance.CreateCheckIn(&rec); err != nil {
		if errors.Is(err, storage.ErrDuplicateCheckIn) {
			// Lost the race against a concurrent check-in.
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Already checked in for this date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to record check-in"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Check-in recorded", "data": rec})
}

func (h *EmployeeHandler) CheckOut(c *gin.Context) {
	var req notesReq
	_ = c.ShouldBindJSON(&req)

	userID := c.GetUint("user_id")
	now := h.Now().UTC()

	rec, err := h.Attendance.AttendanceByUserAndDate(userID, utils.DateUTC(now))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Not checked in today"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load attendance"})
		return
	}
	if rec.CheckOutTime != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Already checked out"})
		return
	}
	if now.Before(rec.CheckInTime) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Check-out cannot precede check-in"})
		return
	}

	hours := utils.CalculateTotalHours(rec.CheckInTime, now)
	rec.CheckOutTime = &now
	rec.TotalHours = hours
	rec.Status = utils.DetermineCheckOutStatus(hours, rec.Status)
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		rec.Notes = notes
	}

	if err := h.Attendance.SaveCheckOut(rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to record check-out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Check-out recorded", "data": rec})
}

func (h *EmployeeHandler) Today(c *gin.Context) {
	userID := c.GetUint("user_id")
	now := h.Now().UTC()

	rec, err := h.Attendance.AttendanceByUserAndDate(userID, utils.DateUTC(now))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// A day with no record is absent; absent is never stored.
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Success", "data": gin.H{"status": "absent"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Success", "data": newTodayView(rec, now)})
}

func newTodayView(rec *models.Attendance, now time.Time) todayView {
	view := todayView{Attendance: *rec}
	if rec.CheckOutTime == nil {
		hours := utils.CalculateTotalHours(rec.CheckInTime, now)
		view.CurrentHours = &hours
	}
	return view
}

func (h *EmployeeHandler) List(c *gin.Context) {
	userID := c.GetUint("user_id")
	q := attendanceQueryFromContext(c)

	rows, total, err := h.Attendance.AttendanceByUser(userID, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"records": rows, "total": total, "page": q.Page, "limit": q.Limit},
	})
}

func (h *EmployeeHandler) Monthly(c *gin.Context) {
	userID := c.GetUint("user_id")
	year, month := parseMonthParam(c.Query("month"), h.Now())

	records, err := h.Attendance.AttendanceByMonth(userID, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"summary": utils.SummarizeAttendance(records),
			"records": records,
		},
	})
}

func (h *EmployeeHandler) Dashboard(c *gin.Context) {
	userID := c.GetUint("user_id")
	now := h.Now().UTC()

	todayRec, err := h.Attendance.AttendanceByUserAndDate(userID, utils.DateUTC(now))
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load attendance"})
		return
	}

	monthRecords, err := h.Attendance.AttendanceByMonth(userID, now.Year(), int(now.Month()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load attendance"})
		return
	}
	summary := utils.SummarizeAttendance(monthRecords)

	var today any = gin.H{"status": "absent"}
	if todayRec != nil {
		today = newTodayView(todayRec, now)
	}

	percentage := 0
	if summary.PresentCount+summary.LateCount+summary.HalfDayCount > 0 {
		percentage = 100
	}

	// Last 5 records of the month, most recent first.
	recent := make([]models.Attendance, 0, 5)
	for i := len(monthRecords) - 1; i >= 0 && len(recent) < 5; i-- {
		recent = append(recent, monthRecords[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"today":                 today,
			"monthly_summary":       summary,
			"attendance_percentage": percentage,
			"recent_attendance":     recent,
		},
	})
}
