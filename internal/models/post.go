package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Post is an article shown in the news section of the marketing site.
type Post struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AuthorID    uuid.UUID      `gorm:"type:uuid;index" json:"author_id"`
	Title       string         `gorm:"not null" json:"title" validate:"required"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt     string         `gorm:"type:text" json:"excerpt"`
	Body        string         `gorm:"type:text" json:"body"`
	Category    string         `gorm:"type:varchar(64);index" json:"category"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Published   bool           `gorm:"not null;default:false;index" json:"published"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
