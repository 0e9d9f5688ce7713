package types

import "time"

type LoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	LoginType string `json:"login_type" validate:"omitempty,oneof=admin employee manager"`
}

type ProjectCreateRequest struct {
	Title    string   `json:"title" validate:"required"`
	Category string   `json:"category" validate:"required,oneof=residential commercial infrastructure healthcare education"`
	Location string   `json:"location"`
	Year     string   `json:"year"`
	Duration string   `json:"duration"`
	Client   string   `json:"client"`
	Budget   float64  `json:"budget"`
	Status   string   `json:"status" validate:"omitempty,oneof=planning in_progress completed on_hold"`
	Priority string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	Rating   int      `json:"rating" validate:"gte=0,lte=5"`
	Image    string   `json:"image"`
	Gallery  []string `json:"gallery"`
	// GalleryText is the raw comma-separated form value; it is rebuilt into
	// Gallery and never persisted itself.
	GalleryText string `json:"gallery_text"`
	BrochureURL string `json:"brochure_url"`

	Description      string `json:"description"`
	KeyFeatures      string `json:"key_features"`
	Challenge        string `json:"challenge"`
	Solution         string `json:"solution"`
	TechnicalDetails string `json:"technical_details"`
	MaterialsUsed    string `json:"materials_used"`
	Testimonial      string `json:"testimonial"`

	ManagerID string `json:"manager_id" validate:"omitempty,uuid4"`
}

type ProjectUpdateRequest struct {
	Title    *string  `json:"title"`
	Category *string  `json:"category" validate:"omitempty,oneof=residential commercial infrastructure healthcare education"`
	Location *string  `json:"location"`
	Year     *string  `json:"year"`
	Duration *string  `json:"duration"`
	Client   *string  `json:"client"`
	Budget   *float64 `json:"budget"`
	Status   *string  `json:"status" validate:"omitempty,oneof=planning in_progress completed on_hold"`
	Priority *string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	Rating   *int     `json:"rating" validate:"omitempty,gte=0,lte=5"`

	Image       *string  `json:"image"`
	Gallery     []string `json:"gallery"`
	GalleryText *string  `json:"gallery_text"`
	BrochureURL *string  `json:"brochure_url"`

	Description      *string `json:"description"`
	KeyFeatures      *string `json:"key_features"`
	Challenge        *string `json:"challenge"`
	Solution         *string `json:"solution"`
	TechnicalDetails *string `json:"technical_details"`
	MaterialsUsed    *string `json:"materials_used"`
	Testimonial      *string `json:"testimonial"`

	ManagerID *string `json:"manager_id" validate:"omitempty,uuid4"`
}

type QuoteCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	ProjectType string `json:"project_type"`
	BudgetRange string `json:"budget_range" validate:"omitempty,oneof=under-25000 25000-50000 50000-100000 100000-250000 250000-500000 over-500000"`
	Timeline    string `json:"timeline" validate:"omitempty,oneof=asap 1-3-months 3-6-months 6-12-months over-12-months"`
	Message     string `json:"message"`
}

type QuoteUpdateRequest struct {
	Name           *string    `json:"name"`
	Email          *string    `json:"email" validate:"omitempty,email"`
	Phone          *string    `json:"phone"`
	Company        *string    `json:"company"`
	ProjectType    *string    `json:"project_type"`
	BudgetRange    *string    `json:"budget_range" validate:"omitempty,oneof=under-25000 25000-50000 50000-100000 100000-250000 250000-500000 over-500000"`
	Timeline       *string    `json:"timeline" validate:"omitempty,oneof=asap 1-3-months 3-6-months 6-12-months over-12-months"`
	Priority       *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	WinProbability *int       `json:"win_probability" validate:"omitempty,gte=0,lte=100"`
	EstimatedValue *float64   `json:"estimated_value"`
	QuotedAmount   *float64   `json:"quoted_amount"`
	FollowUpDate   *time.Time `json:"follow_up_date"`
	Message        *string    `json:"message"`
}

type QuoteStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new reviewing quoted accepted rejected"`
}

type QuoteAssignRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
}

type JobCreateRequest struct {
	Title          string   `json:"title" validate:"required"`
	Category       string   `json:"category"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employment_type"`
	Description    string   `json:"description"`
	Requirements   []string `json:"requirements"`
	Status         string   `json:"status" validate:"omitempty,oneof=Open Closed"`
}

type JobUpdateRequest struct {
	Title          *string  `json:"title"`
	Category       *string  `json:"category"`
	Location       *string  `json:"location"`
	EmploymentType *string  `json:"employment_type"`
	Description    *string  `json:"description"`
	Requirements   []string `json:"requirements"`
	Status         *string  `json:"status" validate:"omitempty,oneof=Open Closed"`
}

type UserCreateRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	Name        string   `json:"name" validate:"required"`
	Role        string   `json:"role" validate:"required,oneof=admin employee manager"`
	Department  string   `json:"department"`
	Position    string   `json:"position"`
	Permissions []string `json:"permissions"`
}

type UserUpdateRequest struct {
	Name        *string  `json:"name"`
	Role        *string  `json:"role" validate:"omitempty,oneof=admin employee manager"`
	Department  *string  `json:"department"`
	Position    *string  `json:"position"`
	Permissions []string `json:"permissions"`
	Password    *string  `json:"password" validate:"omitempty,min=8"`
}

type ContactCreateRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

type PostCreateRequest struct {
	Title     string   `json:"title" validate:"required"`
	Excerpt   string   `json:"excerpt"`
	Body      string   `json:"body"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

type PostUpdateRequest struct {
	Title     *string  `json:"title"`
	Excerpt   *string  `json:"excerpt"`
	Body      *string  `json:"body"`
	Category  *string  `json:"category"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published"`
}
