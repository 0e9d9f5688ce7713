package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project categories shown on the public site and in the admin screens.
const (
	ProjectCategoryResidential    = "residential"
	ProjectCategoryCommercial     = "commercial"
	ProjectCategoryInfrastructure = "infrastructure"
	ProjectCategoryHealthcare     = "healthcare"
	ProjectCategoryEducation      = "education"
)

// Project lifecycle statuses.
const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusOnHold     = "on_hold"
)

// Project is a construction project shown on the marketing site and managed
// from the admin back-office. Gallery is an ordered list of image URLs.
type Project struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id" validate:"required"`
	Title    string    `gorm:"not null;index" json:"title" validate:"required"`
	Slug     string    `gorm:"uniqueIndex;not null" json:"slug"`
	Category string    `gorm:"type:varchar(32);index;not null" json:"category" validate:"required,oneof=residential commercial infrastructure healthcare education"`
	Location string    `gorm:"type:varchar(128)" json:"location"`
	Year     string    `gorm:"type:varchar(8)" json:"year"`
	Duration string    `gorm:"type:varchar(64)" json:"duration"`
	Client   string    `gorm:"type:varchar(128)" json:"client"`
	Budget   float64   `json:"budget"`
	Status   string    `gorm:"type:varchar(32);index;default:planning" json:"status" validate:"omitempty,oneof=planning in_progress completed on_hold"`
	Priority string    `gorm:"type:varchar(16);default:medium" json:"priority" validate:"omitempty,oneof=low medium high"`
	Rating   int       `json:"rating" validate:"gte=0,lte=5"`

	// Hero image is mandatory before a project may be persisted.
	Image       string         `gorm:"not null" json:"image" validate:"required,url"`
	Gallery     datatypes.JSON `gorm:"type:jsonb" json:"gallery"`
	BrochureURL string         `json:"brochure_url"`

	IsPublished bool `gorm:"not null;default:false;index" json:"is_published"`

	Description      string `gorm:"type:text" json:"description"`
	KeyFeatures      string `gorm:"type:text" json:"key_features"`
	Challenge        string `gorm:"type:text" json:"challenge"`
	Solution         string `gorm:"type:text" json:"solution"`
	TechnicalDetails string `gorm:"type:text" json:"technical_details"`
	MaterialsUsed    string `gorm:"type:text" json:"materials_used"`
	Testimonial      string `gorm:"type:text" json:"testimonial"`

	ManagerID *uuid.UUID `gorm:"type:uuid;index" json:"manager_id,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
