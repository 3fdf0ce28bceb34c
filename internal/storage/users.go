// internal/storage/users.go
package storage

import (
	"errors"

	"gorm.io/gorm"

	"attendance_backend/internal/models"
)

func (d *DB) CreateUser(u *models.User) error {
	if err := d.gorm.Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (d *DB) UserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := d.gorm.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (d *DB) UserByID(id uint) (*models.User, error) {
	var u models.User
	if err := d.gorm.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (d *DB) Employees() ([]models.User, error) {
	var rows []models.User
	err := d.gorm.Where("role = ?", models.RoleEmployee).
		Order("id asc").Find(&rows).Error
	return rows, err
}
