package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/internal/repository"
	appErr "github.com/slklaos/backoffice/pkg/errors"
	"github.com/slklaos/backoffice/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// JobService manages career postings.
type JobService interface {
	CreateJob(ctx context.Context, input *CreateJobInput) (*models.Job, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (*models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	ListOpenJobs(ctx context.Context) ([]models.Job, error)
	UpdateJob(ctx context.Context, jobID uuid.UUID, updates *UpdateJobInput) (*models.Job, error)
	DeleteJob(ctx context.Context, jobID uuid.UUID) error
}

type CreateJobInput struct {
	Title          string
	Category       string
	Location       string
	EmploymentType string
	Description    string
	Requirements   []string
	Status         string
}

type UpdateJobInput struct {
	Title          *string
	Category       *string
	Location       *string
	EmploymentType *string
	Description    *string
	Requirements   []string
	Status         *string
}

type jobService struct {
	jobRepo repository.JobRepository
}

func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

var _ JobService = (*jobService)(nil)

func (s *jobService) CreateJob(ctx context.Context, input *CreateJobInput) (*models.Job, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, appErr.New(appErr.CodeInvalid, "title is required")
	}

	reqs := input.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	reqJSON, err := json.Marshal(reqs)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInvalid, "invalid requirements")
	}

	status := input.Status
	if status == "" {
		status = models.JobStatusOpen
	}

	j := &models.Job{
		Title:          input.Title,
		Category:       input.Category,
		Location:       input.Location,
		EmploymentType: input.EmploymentType,
		Description:    input.Description,
		Requirements:   datatypes.JSON(reqJSON),
		Status:         status,
	}
	if err := s.jobRepo.Create(ctx, j); err != nil {
		return nil, err
	}

	logger.L().Info("job created", zap.String("job_id", j.ID.String()), zap.String("title", j.Title))
	return j, nil
}

func (s *jobService) GetJob(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	var j models.Job
	if err := s.jobRepo.GetByID(ctx, jobID, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *jobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	return s.jobRepo.ListAll(ctx)
}

func (s *jobService) ListOpenJobs(ctx context.Context) ([]models.Job, error) {
	return s.jobRepo.ListOpen(ctx)
}

func (s *jobService) UpdateJob(ctx context.Context, jobID uuid.UUID, updates *UpdateJobInput) (*models.Job, error) {
	var j models.Job
	if err := s.jobRepo.GetByID(ctx, jobID, &j); err != nil {
		return nil, err
	}

	if updates.Title != nil {
		if strings.TrimSpace(*updates.Title) == "" {
			return nil, appErr.New(appErr.CodeInvalid, "title is required")
		}
		j.Title = *updates.Title
	}
	if updates.Category != nil {
		j.Category = *updates.Category
	}
	if updates.Location != nil {
		j.Location = *updates.Location
	}
	if updates.EmploymentType != nil {
		j.EmploymentType = *updates.EmploymentType
	}
	if updates.Description != nil {
		j.Description = *updates.Description
	}
	if updates.Requirements != nil {
		b, err := json.Marshal(updates.Requirements)
		if err != nil {
			return nil, appErr.Wrap(err, appErr.CodeInvalid, "invalid requirements")
		}
		j.Requirements = datatypes.JSON(b)
	}
	if updates.Status != nil {
		j.Status = *updates.Status
	}

	if err := s.jobRepo.Update(ctx, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *jobService) DeleteJob(ctx context.Context, jobID uuid.UUID) error {
	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return err
	}
	logger.L().Info("job deleted", zap.String("job_id", jobID.String()))
	return nil
}
