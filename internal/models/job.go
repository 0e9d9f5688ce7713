package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Job posting statuses. Rows written before the status convention changed
// may still carry lowercase values; filters compare case-insensitively.
const (
	JobStatusOpen   = "Open"
	JobStatusClosed = "Closed"
)

// Job is a career posting on the public careers page.
type Job struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title          string         `gorm:"not null" json:"title" validate:"required"`
	Category       string         `gorm:"type:varchar(64);index" json:"category"`
	Location       string         `gorm:"type:varchar(128)" json:"location"`
	EmploymentType string         `gorm:"type:varchar(32)" json:"employment_type"`
	Description    string         `gorm:"type:text" json:"description"`
	Requirements   datatypes.JSON `gorm:"type:jsonb" json:"requirements"`
	Status         string         `gorm:"type:varchar(16);index;default:Open" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
