package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Staff roles. Each role logs into its own portal.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// User represents an internal staff member.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Name         string         `gorm:"not null" json:"name" validate:"required"`
	Role         string         `gorm:"type:varchar(16);index;not null" json:"role" validate:"required,oneof=admin employee manager"`
	Department   string         `gorm:"type:varchar(64)" json:"department"`
	Position     string         `gorm:"type:varchar(64)" json:"position"`
	Permissions  datatypes.JSON `gorm:"type:jsonb" json:"permissions"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
