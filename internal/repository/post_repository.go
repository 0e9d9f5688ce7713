package repository

import (
	"context"

	"github.com/slklaos/backoffice/internal/models"
	appErr "github.com/slklaos/backoffice/pkg/errors"
	"gorm.io/gorm"
)

type PostRepository interface {
	BaseRepository[models.Post]
	ListAll(ctx context.Context) ([]models.Post, error)
	ListPublished(ctx context.Context) ([]models.Post, error)
	GetPublishedBySlug(ctx context.Context, slug string, dest *models.Post) error
}

type postRepository struct {
	BaseRepository[models.Post]
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{BaseRepository: NewBaseRepository[models.Post](db), db: db}
}

func (r *postRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	var out []models.Post
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list posts failed")
	}
	return out, nil
}

func (r *postRepository) ListPublished(ctx context.Context) ([]models.Post, error) {
	var out []models.Post
	if err := r.db.WithContext(ctx).Where("published = true").Order("published_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list published posts failed")
	}
	return out, nil
}

func (r *postRepository) GetPublishedBySlug(ctx context.Context, slug string, dest *models.Post) error {
	if err := r.db.WithContext(ctx).Where("slug = ? AND published = true", slug).First(dest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "post not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get post by slug failed")
	}
	return nil
}
