package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/internal/queue/tasks"
	"github.com/slklaos/backoffice/internal/repository"
	appErr "github.com/slklaos/backoffice/pkg/errors"
	"github.com/slklaos/backoffice/pkg/logger"
	"go.uber.org/zap"
)

// ContactService handles public contact-form submissions and the admin inbox.
type ContactService interface {
	CreateContact(ctx context.Context, input *CreateContactInput) (*models.Contact, error)
	GetContact(ctx context.Context, contactID uuid.UUID) (*models.Contact, error)
	ListContacts(ctx context.Context) ([]models.Contact, error)
	UpdateStatus(ctx context.Context, contactID uuid.UUID, status string) error
	DeleteContact(ctx context.Context, contactID uuid.UUID) error
}

type CreateContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type contactService struct {
	contactRepo repository.ContactRepository
	asynqClient *asynq.Client
	salesEmail  string
}

func NewContactService(contactRepo repository.ContactRepository, client *asynq.Client, salesEmail string) ContactService {
	return &contactService{contactRepo: contactRepo, asynqClient: client, salesEmail: salesEmail}
}

var _ ContactService = (*contactService)(nil)

func (s *contactService) CreateContact(ctx context.Context, input *CreateContactInput) (*models.Contact, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, appErr.New(appErr.CodeInvalid, "name and email are required")
	}

	c := &models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
		Status:  "new",
	}
	if err := s.contactRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	// Fire-and-forget: the submission succeeds even when the notification
	// cannot be queued.
	if s.asynqClient != nil {
		payload, _ := json.Marshal(tasks.ContactEmailPayload{
			ContactID: c.ID.String(),
			To:        s.salesEmail,
		})
		if _, err := s.asynqClient.EnqueueContext(ctx, asynq.NewTask(tasks.TypeContactEmail, payload)); err != nil {
			logger.L().Error("enqueue contact email failed", zap.Error(err), zap.String("contact_id", c.ID.String()))
		}
	}

	logger.L().Info("contact created", zap.String("contact_id", c.ID.String()))
	return c, nil
}

func (s *contactService) GetContact(ctx context.Context, contactID uuid.UUID) (*models.Contact, error) {
	var c models.Contact
	if err := s.contactRepo.GetByID(ctx, contactID, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *contactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return s.contactRepo.ListAll(ctx)
}

func (s *contactService) UpdateStatus(ctx context.Context, contactID uuid.UUID, status string) error {
	return s.contactRepo.UpdateStatus(ctx, contactID, status)
}

func (s *contactService) DeleteContact(ctx context.Context, contactID uuid.UUID) error {
	return s.contactRepo.Delete(ctx, contactID)
}
