// internal/storage/db.go
package storage

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"attendance_backend/internal/models"
)

// Failure kinds callers can branch on. Everything else coming out of this
// package is an infrastructure error.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateCheckIn = errors.New("already checked in for this date")
	ErrEmailTaken       = errors.New("email already exists")
)

// DB wraps the gorm handle. It is built once in main and passed down;
// nothing in this package keeps a global.
type DB struct {
	gorm *gorm.DB
}

func Open() (*DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Attendance{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &DB{gorm: db}, nil
}

// Close releases the underlying connection pool.
func (d *DB) Close() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Postgres reports unique violations as SQLSTATE 23505; gorm wraps the
// driver error, so match on the message.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
