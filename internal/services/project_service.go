package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/internal/repository"
	"github.com/slklaos/backoffice/internal/storage"
	appErr "github.com/slklaos/backoffice/pkg/errors"
	"github.com/slklaos/backoffice/pkg/logger"
	"github.com/slklaos/backoffice/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ProjectService manages construction projects for the admin screens.
type ProjectService interface {
	CreateProject(ctx context.Context, userID uuid.UUID, input *CreateProjectInput) (*models.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListPublishedProjects(ctx context.Context) ([]models.Project, error)
	GetPublishedProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	UpdateProject(ctx context.Context, projectID uuid.UUID, updates *UpdateProjectInput) (*models.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
	SetPublished(ctx context.Context, projectID uuid.UUID, published bool) error
}

type CreateProjectInput struct {
	Title    string
	Category string
	Location string
	Year     string
	Duration string
	Client   string
	Budget   float64
	Status   string
	Priority string
	Rating   int

	// Image is the hero image URL: either pasted into the form or the URL
	// returned by a preceding upload. Exactly one must be present.
	Image       string
	Gallery     []string
	BrochureURL string

	Description      string
	KeyFeatures      string
	Challenge        string
	Solution         string
	TechnicalDetails string
	MaterialsUsed    string
	Testimonial      string

	ManagerID *uuid.UUID
}

// UpdateProjectInput applies only its non-nil fields, so a partial edit
// never blanks stored values.
type UpdateProjectInput struct {
	Title    *string
	Category *string
	Location *string
	Year     *string
	Duration *string
	Client   *string
	Budget   *float64
	Status   *string
	Priority *string
	Rating   *int

	Image       *string
	Gallery     []string
	BrochureURL *string

	Description      *string
	KeyFeatures      *string
	Challenge        *string
	Solution         *string
	TechnicalDetails *string
	MaterialsUsed    *string
	Testimonial      *string

	ManagerID *uuid.UUID
}

type projectService struct {
	projectRepo repository.ProjectRepository
	files       *storage.Store
}

func NewProjectService(projectRepo repository.ProjectRepository, files *storage.Store) ProjectService {
	return &projectService{projectRepo: projectRepo, files: files}
}

var _ ProjectService = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, userID uuid.UUID, input *CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, appErr.New(appErr.CodeInvalid, "title is required")
	}
	// Hero image must exist before anything is persisted.
	if strings.TrimSpace(input.Image) == "" {
		return nil, appErr.New(appErr.CodeInvalid, "hero image is required")
	}

	gallery := input.Gallery
	if gallery == nil {
		gallery = []string{}
	}
	galleryJSON, err := json.Marshal(gallery)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInvalid, "invalid gallery")
	}

	status := input.Status
	if status == "" {
		status = models.ProjectStatusPlanning
	}
	priority := input.Priority
	if priority == "" {
		priority = "medium"
	}

	p := &models.Project{
		UserID:           userID,
		Title:            input.Title,
		Slug:             utils.Slugify(input.Title),
		Category:         input.Category,
		Location:         input.Location,
		Year:             input.Year,
		Duration:         input.Duration,
		Client:           input.Client,
		Budget:           input.Budget,
		Status:           status,
		Priority:         priority,
		Rating:           input.Rating,
		Image:            input.Image,
		Gallery:          datatypes.JSON(galleryJSON),
		BrochureURL:      input.BrochureURL,
		IsPublished:      false,
		Description:      input.Description,
		KeyFeatures:      input.KeyFeatures,
		Challenge:        input.Challenge,
		Solution:         input.Solution,
		TechnicalDetails: input.TechnicalDetails,
		MaterialsUsed:    input.MaterialsUsed,
		Testimonial:      input.Testimonial,
		ManagerID:        input.ManagerID,
	}

	if err := s.projectRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.L().Info("project created", zap.String("project_id", p.ID.String()), zap.String("user_id", userID.String()))
	return p, nil
}

func (s *projectService) GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	var p models.Project
	if err := s.projectRepo.GetByID(ctx, projectID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.ListAll(ctx)
}

func (s *projectService) ListPublishedProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.ListPublished(ctx)
}

func (s *projectService) GetPublishedProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var p models.Project
	if err := s.projectRepo.GetPublishedBySlug(ctx, slug, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *projectService) UpdateProject(ctx context.Context, projectID uuid.UUID, updates *UpdateProjectInput) (*models.Project, error) {
	var p models.Project
	if err := s.projectRepo.GetByID(ctx, projectID, &p); err != nil {
		return nil, err
	}

	if updates.Title != nil {
		if strings.TrimSpace(*updates.Title) == "" {
			return nil, appErr.New(appErr.CodeInvalid, "title is required")
		}
		p.Title = *updates.Title
		p.Slug = utils.Slugify(*updates.Title)
	}
	if updates.Image != nil {
		if strings.TrimSpace(*updates.Image) == "" {
			return nil, appErr.New(appErr.CodeInvalid, "hero image is required")
		}
		p.Image = *updates.Image
	}
	if updates.Category != nil {
		p.Category = *updates.Category
	}
	if updates.Location != nil {
		p.Location = *updates.Location
	}
	if updates.Year != nil {
		p.Year = *updates.Year
	}
	if updates.Duration != nil {
		p.Duration = *updates.Duration
	}
	if updates.Client != nil {
		p.Client = *updates.Client
	}
	if updates.Budget != nil {
		p.Budget = *updates.Budget
	}
	if updates.Status != nil {
		p.Status = *updates.Status
	}
	if updates.Priority != nil {
		p.Priority = *updates.Priority
	}
	if updates.Rating != nil {
		p.Rating = *updates.Rating
	}
	if updates.Gallery != nil {
		b, err := json.Marshal(updates.Gallery)
		if err != nil {
			return nil, appErr.Wrap(err, appErr.CodeInvalid, "invalid gallery")
		}
		p.Gallery = datatypes.JSON(b)
	}
	if updates.BrochureURL != nil {
		p.BrochureURL = *updates.BrochureURL
	}
	if updates.Description != nil {
		p.Description = *updates.Description
	}
	if updates.KeyFeatures != nil {
		p.KeyFeatures = *updates.KeyFeatures
	}
	if updates.Challenge != nil {
		p.Challenge = *updates.Challenge
	}
	if updates.Solution != nil {
		p.Solution = *updates.Solution
	}
	if updates.TechnicalDetails != nil {
		p.TechnicalDetails = *updates.TechnicalDetails
	}
	if updates.MaterialsUsed != nil {
		p.MaterialsUsed = *updates.MaterialsUsed
	}
	if updates.Testimonial != nil {
		p.Testimonial = *updates.Testimonial
	}
	if updates.ManagerID != nil {
		p.ManagerID = updates.ManagerID
	}

	if err := s.projectRepo.Update(ctx, &p); err != nil {
		return nil, err
	}

	logger.L().Info("project updated", zap.String("project_id", projectID.String()))
	return &p, nil
}

// DeleteProject removes the record, then removes the stored brochure and
// image files. File removal is best-effort and sequential; a storage failure
// after the record delete is logged, not rolled back.
func (s *projectService) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	var p models.Project
	if err := s.projectRepo.GetByID(ctx, projectID, &p); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return err
	}

	if s.files != nil {
		for _, url := range projectFileURLs(&p) {
			if err := s.files.RemoveURL(url); err != nil {
				logger.L().Warn("remove project file failed", zap.String("url", url), zap.Error(err))
			}
		}
	}

	logger.L().Info("project deleted", zap.String("project_id", projectID.String()))
	return nil
}

func (s *projectService) SetPublished(ctx context.Context, projectID uuid.UUID, published bool) error {
	return s.projectRepo.SetPublished(ctx, projectID, published)
}

func projectFileURLs(p *models.Project) []string {
	urls := make([]string, 0, 4)
	if p.BrochureURL != "" {
		urls = append(urls, p.BrochureURL)
	}
	if p.Image != "" {
		urls = append(urls, p.Image)
	}
	var gallery []string
	if len(p.Gallery) > 0 {
		_ = json.Unmarshal(p.Gallery, &gallery)
	}
	return append(urls, gallery...)
}
