// internal/handlers/helpers.go
package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"attendance_backend/internal/storage"
)

// parseMonthParam reads a "YYYY-MM" value, silently falling back to the
// current UTC month when it is missing or malformed.
func parseMonthParam(s string, now time.Time) (year, month int) {
	if t, err := time.Parse("2006-01", strings.TrimSpace(s)); err == nil {
		return t.Year(), int(t.Month())
	}
	utc := now.UTC()
	return utc.Year(), int(utc.Month())
}

// attendanceQueryFromContext pulls pagination and filters off the request:
// page >= 1, limit clamped to 1..100 with a default of 10.
func attendanceQueryFromContext(c *gin.Context) storage.AttendanceQuery {
	page, _ := strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	return storage.AttendanceQuery{
		Page:      page,
		Limit:     limit,
		StartDate: strings.TrimSpace(c.Query("start_date")),
		EndDate:   strings.TrimSpace(c.Query("end_date")),
		Status:    strings.TrimSpace(c.Query("status")),
	}
}
