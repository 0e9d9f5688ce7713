package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name    string    `gorm:"not null" json:"name" validate:"required"`
	Email   string    `gorm:"not null;index" json:"email" validate:"required,email"`
	Phone   string    `gorm:"type:varchar(32)" json:"phone"`
	Subject string    `gorm:"type:varchar(255)" json:"subject"`
	Message string    `gorm:"type:text" json:"message"`
	Status  string    `gorm:"type:varchar(16);index;default:new" json:"status" validate:"omitempty,oneof=new read replied"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
