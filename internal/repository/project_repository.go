package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/slklaos/backoffice/internal/models"
	appErr "github.com/slklaos/backoffice/pkg/errors"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	BaseRepository[models.Project]
	ListAll(ctx context.Context) ([]models.Project, error)
	ListPublished(ctx context.Context) ([]models.Project, error)
	GetPublishedBySlug(ctx context.Context, slug string, dest *models.Project) error
	SetPublished(ctx context.Context, projectID uuid.UUID, published bool) error
}

type projectRepository struct {
	BaseRepository[models.Project]
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{BaseRepository: NewBaseRepository[models.Project](db), db: db}
}

func (r *projectRepository) ListAll(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list projects failed")
	}
	return out, nil
}

func (r *projectRepository) ListPublished(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := r.db.WithContext(ctx).Where("is_published = true").Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list published projects failed")
	}
	return out, nil
}

func (r *projectRepository) GetPublishedBySlug(ctx context.Context, slug string, dest *models.Project) error {
	if err := r.db.WithContext(ctx).Where("slug = ? AND is_published = true", slug).First(dest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "project not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get project by slug failed")
	}
	return nil
}

func (r *projectRepository) SetPublished(ctx context.Context, projectID uuid.UUID, published bool) error {
	res := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", projectID).Update("is_published", published)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "set published failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "project not found")
	}
	return nil
}
