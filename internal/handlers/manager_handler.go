// internal/handlers/manager_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"attendance_backend/internal/models"
	"attendance_backend/internal/utils"
)

type ManagerHandler struct {
	Users      UserStore
	Attendance AttendanceStore

	Now func() time.Time
}

func NewManagerHandler(users UserStore, att AttendanceStore) *ManagerHandler {
	return &ManagerHandler{Users: users, Attendance: att, Now: time.Now}
}

// employeeOr404 resolves the :id route param to an employee-role user, or
// answers 404 itself.
func (h *ManagerHandler) employeeOr404(c *gin.Context) (*models.User, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Employee not found"})
		return nil, false
	}

	user, err := h.Users.UserByID(uint(id64))
	if err != nil || user.Role != models.RoleEmployee {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Employee not found"})
		return nil, false
	}
	return user, true
}

func (h *ManagerHandler) Employees(c *gin.Context) {
	employees, err := h.Users.Employees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load employees"})
		return
	}

	if c.Query("filter") == "absent" {
		today, err := h.Attendance.AttendanceByDate(utils.DateUTC(h.Now()))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load attendance"})
			return
		}

		recorded := make(map[uint]bool, len(today))
		for _, r := range today {
			recorded[r.UserID] = true
		}

		absent := make([]models.User, 0, len(employees))
		for _, e := range employees {
			if !recorded[e.ID] {
				absent = append(absent, e)
			}
		}
		employees = absent
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"employees": employees}})
}

func (h *ManagerHandler) EmployeeAttendance(c *gin.Context) {
	employee, ok := h.employeeOr404(c)
	if !ok {
		return
	}

	q := attendanceQueryFromContext(c)
	rows, total, err := h.Attendance.AttendanceByUser(employee.ID, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"records": rows, "total": total, "page": q.Page, "limit": q.Limit},
	})
}

func (h *ManagerHandler) EmployeeMonthly(c *gin.Context) {
	employee, ok := h.employeeOr404(c)
	if !ok {
		return
	}

	year, month := parseMonthParam(c.Query("month"), h.Now())
	records, err := h.Attendance.AttendanceByMonth(employee.ID, year, month)
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

// Export streams an employee's history as CSV. A well-formed month param
// scopes the export to that month; anything else exports everything.
func (h *ManagerHandler) Export(c *gin.Context) {
	employee, ok := h.employeeOr404(c)
	if !ok {
		return
	}

	var (
		records []models.Attendance
		err     error
	)
	if t, perr := time.Parse("2006-01", c.Query("month")); perr == nil {
		records, err = h.Attendance.AttendanceByMonth(employee.ID, t.Year(), int(t.Month()))
	} else {
		records, err = h.Attendance.AllAttendanceByUser(employee.ID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load attendance"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance_%d.csv"`, employee.ID))
	c.Status(http.StatusOK)

	if err := writeAttendanceCSV(c.Writer, records); err != nil {
		// Headers are gone already; nothing sensible left to answer.
		_ = c.Error(err)
	}
}

func (h *ManagerHandler) Dashboard(c *gin.Context) {
	now := h.Now().UTC()

	employees, err := h.Users.Employees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load employees"})
		return
	}

	todayRecords, err := h.Attendance.AttendanceByDate(utils.DateUTC(now))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load attendance"})
		return
	}

	monthRecords, err := h.Attendance.MonthAttendance(now.Year(), int(now.Month()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load attendance"})
		return
	}
	monthly := utils.SummarizeAttendance(monthRecords)

	recent, err := h.Attendance.RecentAttendance(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load attendance"})
		return
	}

	today := utils.SummarizeAttendance(todayRecords)

	// Employees with no record today are absent; absent is derived, not
	// stored.
	recorded := make(map[uint]bool, len(todayRecords))
	for _, r := range todayRecords {
		recorded[r.UserID] = true
	}
	absent := 0
	for _, e := range employees {
		if !recorded[e.ID] {
			absent++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_employees": len(employees),
			"today": gin.H{
				"present":  today.PresentCount,
				"late":     today.LateCount,
				"half_day": today.HalfDayCount,
				"absent":   absent,
			},
			"monthly": gin.H{
				"present":     monthly.PresentCount,
				"late":        monthly.LateCount,
				"half_day":    monthly.HalfDayCount,
				"total_hours": monthly.TotalHours,
			},
			"recent_activity": recent,
		},
	})
}
