package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quote pipeline statuses.
const (
	QuoteStatusNew       = "new"
	QuoteStatusReviewing = "reviewing"
	QuoteStatusQuoted    = "quoted"
	QuoteStatusAccepted  = "accepted"
	QuoteStatusRejected  = "rejected"
)

// Quote is a quote request captured from the public form or entered by
// staff. CustomerProfile, ProjectDetails, and SalesTracking denormalize
// top-level fields into JSON for reporting.
type Quote struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name    string    `gorm:"not null" json:"name" validate:"required"`
	Email   string    `gorm:"not null;index" json:"email" validate:"required,email"`
	Phone   string    `gorm:"type:varchar(32)" json:"phone"`
	Company string    `gorm:"type:varchar(128)" json:"company"`

	ProjectType string `gorm:"type:varchar(64)" json:"project_type"`
	BudgetRange string `gorm:"type:varchar(32)" json:"budget_range"`
	Timeline    string `gorm:"type:varchar(32)" json:"timeline"`

	Status         string  `gorm:"type:varchar(32);index;default:new" json:"status" validate:"omitempty,oneof=new reviewing quoted accepted rejected"`
	Priority       string  `gorm:"type:varchar(16);default:low" json:"priority" validate:"omitempty,oneof=low medium high"`
	LeadScore      int     `json:"lead_score" validate:"gte=0,lte=100"`
	WinProbability int     `json:"win_probability" validate:"gte=0,lte=100"`
	EstimatedValue float64 `json:"estimated_value"`
	QuotedAmount   float64 `json:"quoted_amount"`

	AssignedTo   *uuid.UUID `gorm:"type:uuid;index" json:"assigned_to,omitempty"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`

	Message string `gorm:"type:text" json:"message"`

	CustomerProfile datatypes.JSON `gorm:"type:jsonb" json:"customer_profile"`
	ProjectDetails  datatypes.JSON `gorm:"type:jsonb" json:"project_details"`
	SalesTracking   datatypes.JSON `gorm:"type:jsonb" json:"sales_tracking"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
