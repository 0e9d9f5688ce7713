package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/slklaos/backoffice/internal/models"
	appErr "github.com/slklaos/backoffice/pkg/errors"
	"gorm.io/gorm"
)

type ContactRepository interface {
	BaseRepository[models.Contact]
	ListAll(ctx context.Context) ([]models.Contact, error)
	UpdateStatus(ctx context.Context, contactID uuid.UUID, status string) error
}

type contactRepository struct {
	BaseRepository[models.Contact]
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{BaseRepository: NewBaseRepository[models.Contact](db), db: db}
}

func (r *contactRepository) ListAll(ctx context.Context) ([]models.Contact, error) {
	var out []models.Contact
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list contacts failed")
	}
	return out, nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, contactID uuid.UUID, status string) error {
	res := r.db.WithContext(ctx).Model(&models.Contact{}).Where("id = ?", contactID).Update("status", status)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "update contact status failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "contact not found")
	}
	return nil
}
