package main

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/slklaos/backoffice/internal/models"
)

func registerModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Project{},
		&models.Quote{},
		&models.Job{},
		&models.Contact{},
		&models.Post{},
	}
}

func runMigrations(db *gorm.DB) error {
	if err := enableUUIDExtension(db); err != nil {
		return err
	}
	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}
	return runCustomMigrations(db)
}

func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addQuoteAssigneeIndex,
	}
	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}
	return nil
}

// enableUUIDExtension ensures gen_random_uuid() is available.
func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

// addQuoteAssigneeIndex speeds up the per-assignee pipeline views.
func addQuoteAssigneeIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_quotes_assigned_status
		ON quotes(assigned_to, status)
		WHERE deleted_at IS NULL
	`).Error
}

// seedUsers creates the initial staff accounts when the users table is empty.
func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("users table is not empty; refusing to seed")
	}

	seeds := []struct {
		email, password, name, role, department, position string
		permissions                                       []byte
	}{
		{"admin@example.com", "admin123!", "Site Admin", models.RoleAdmin, "management", "Administrator", []byte(`["*"]`)},
		{"manager@example.com", "manager123!", "Sales Manager", models.RoleManager, "sales", "Manager", []byte(`["quotes","contacts","projects"]`)},
		{"employee@example.com", "employee123!", "Site Engineer", models.RoleEmployee, "engineering", "Engineer", []byte(`["projects"]`)},
	}

	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := models.User{
			Email:        s.email,
			PasswordHash: string(hash),
			Name:         s.name,
			Role:         s.role,
			Department:   s.department,
			Position:     s.position,
			Permissions:  datatypes.JSON(s.permissions),
		}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
	}
	return nil
}
