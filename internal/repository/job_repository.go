package repository

import (
	"context"

	"github.com/slklaos/backoffice/internal/models"
	appErr "github.com/slklaos/backoffice/pkg/errors"
	"gorm.io/gorm"
)

type JobRepository interface {
	BaseRepository[models.Job]
	ListAll(ctx context.Context) ([]models.Job, error)
	ListOpen(ctx context.Context) ([]models.Job, error)
}

type jobRepository struct {
	BaseRepository[models.Job]
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{BaseRepository: NewBaseRepository[models.Job](db), db: db}
}

func (r *jobRepository) ListAll(ctx context.Context) ([]models.Job, error) {
	var out []models.Job
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list jobs failed")
	}
	return out, nil
}

// ListOpen matches the status case-insensitively: rows created before the
// status convention changed still carry lowercase "open".
func (r *jobRepository) ListOpen(ctx context.Context) ([]models.Job, error) {
	var out []models.Job
	if err := r.db.WithContext(ctx).Where("LOWER(status) = LOWER(?)", models.JobStatusOpen).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list open jobs failed")
	}
	return out, nil
}
