// internal/routes/router.go
package routes

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"attendance_backend/internal/handlers"
	"attendance_backend/internal/middleware"
	"attendance_backend/internal/models"
	"attendance_backend/internal/storage"
)

func NewRouter(db *storage.DB) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(corsConfig()))

	authH := handlers.NewAuthHandler(db)
	empH := handlers.NewEmployeeHandler(db)
	mgrH := handlers.NewManagerHandler(db, db)

	r.GET("/", handlers.Health)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.GET("/me", middleware.AuthRequired(), authH.Me)
	}

	employee := r.Group("/api/employee")
	employee.Use(middleware.AuthRequired(), middleware.RequireRole(models.RoleEmployee))
	{
		employee.POST("/check-in", empH.CheckIn)
		employee.PUT("/check-out", empH.CheckOut)
		employee.GET("/attendance/today", empH.Today)
		employee.GET("/attendance/monthly", empH.Monthly)
		employee.GET("/attendance", empH.List)
		employee.GET("/dashboard", empH.Dashboard)
	}

	manager := r.Group("/api/manager")
	manager.Use(middleware.AuthRequired(), middleware.RequireRole(models.RoleManager))
	{
		manager.GET("/employees", mgrH.Employees)
		manager.GET("/employees/:id/attendance", mgrH.EmployeeAttendance)
		manager.GET("/employees/:id/monthly", mgrH.EmployeeMonthly)
		manager.GET("/employees/:id/export", mgrH.Export)
		manager.GET("/dashboard", mgrH.Dashboard)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
	})

	return r
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = []string{"http://localhost:5173"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		cfg.AllowOrigins = strings.Split(env, ",")
	}
	cfg.AllowCredentials = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	return cfg
}
