package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/slklaos/backoffice/internal/models"
	appErr "github.com/slklaos/backoffice/pkg/errors"
	"gorm.io/gorm"
)

type QuoteRepository interface {
	BaseRepository[models.Quote]
	ListAll(ctx context.Context) ([]models.Quote, error)
	UpdateStatus(ctx context.Context, quoteID uuid.UUID, status string) error
	Assign(ctx context.Context, quoteID, userID uuid.UUID) error
}

type quoteRepository struct {
	BaseRepository[models.Quote]
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &quoteRepository{BaseRepository: NewBaseRepository[models.Quote](db), db: db}
}

func (r *quoteRepository) ListAll(ctx context.Context) ([]models.Quote, error) {
	var out []models.Quote
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list quotes failed")
	}
	return out, nil
}

func (r *quoteRepository) UpdateStatus(ctx context.Context, quoteID uuid.UUID, status string) error {
	res := r.db.WithContext(ctx).Model(&models.Quote{}).Where("id = ?", quoteID).Update("status", status)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "update quote status failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "quote not found")
	}
	return nil
}

func (r *quoteRepository) Assign(ctx context.Context, quoteID, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&models.Quote{}).Where("id = ?", quoteID).Update("assigned_to", userID)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "assign quote failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "quote not found")
	}
	return nil
}
