package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/internal/repository"
	"github.com/slklaos/backoffice/pkg/logger"
	"go.uber.org/zap"
)

// Task type names registered on the queue.
const (
	TypeQuoteEmail   = "email:quote"
	TypeContactEmail = "email:contact"
)

// QuoteEmailPayload identifies the quote to notify the sales inbox about.
type QuoteEmailPayload struct {
	QuoteID string `json:"quote_id"`
	To      string `json:"to"`
}

// ContactEmailPayload identifies the contact submission to forward.
type ContactEmailPayload struct {
	ContactID string `json:"contact_id"`
	To        string `json:"to"`
}

// Sender delivers a rendered message. The production implementation speaks
// SMTP; tests substitute a recorder.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// EmailTaskHandler renders and sends notification emails for quote and
// contact submissions.
type EmailTaskHandler struct {
	sender      Sender
	quoteRepo   repository.QuoteRepository
	contactRepo repository.ContactRepository
}

func NewEmailTaskHandler(sender Sender, quoteRepo repository.QuoteRepository, contactRepo repository.ContactRepository) *EmailTaskHandler {
	return &EmailTaskHandler{sender: sender, quoteRepo: quoteRepo, contactRepo: contactRepo}
}

func (h *EmailTaskHandler) HandleQuoteEmail(ctx context.Context, t *asynq.Task) error {
	var p QuoteEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		logger.L().Error("invalid quote email payload", zap.Error(err))
		return err
	}
	id, err := uuid.Parse(p.QuoteID)
	if err != nil {
		logger.L().Error("invalid quote id in email task", zap.Error(err))
		return err
	}

	var q models.Quote
	if err := h.quoteRepo.GetByID(ctx, id, &q); err != nil {
		logger.L().Error("load quote for email failed", zap.Error(err), zap.String("quote_id", p.QuoteID))
		return err
	}

	subject := fmt.Sprintf("New quote request from %s", q.Name)
	body := renderQuoteEmail(&q)
	if err := h.sender.Send(ctx, p.To, subject, body); err != nil {
		logger.L().Error("send quote email failed", zap.Error(err), zap.String("quote_id", p.QuoteID))
		return err
	}

	logger.L().Info("quote email sent", zap.String("quote_id", p.QuoteID), zap.String("to", p.To))
	return nil
}

func (h *EmailTaskHandler) HandleContactEmail(ctx context.Context, t *asynq.Task) error {
	var p ContactEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		logger.L().Error("invalid contact email payload", zap.Error(err))
		return err
	}
	id, err := uuid.Parse(p.ContactID)
	if err != nil {
		logger.L().Error("invalid contact id in email task", zap.Error(err))
		return err
	}

	var c models.Contact
	if err := h.contactRepo.GetByID(ctx, id, &c); err != nil {
		logger.L().Error("load contact for email failed", zap.Error(err), zap.String("contact_id", p.ContactID))
		return err
	}

	subject := fmt.Sprintf("New contact message from %s", c.Name)
	body := renderContactEmail(&c)
	if err := h.sender.Send(ctx, p.To, subject, body); err != nil {
		logger.L().Error("send contact email failed", zap.Error(err), zap.String("contact_id", p.ContactID))
		return err
	}

	logger.L().Info("contact email sent", zap.String("contact_id", p.ContactID), zap.String("to", p.To))
	return nil
}

func renderQuoteEmail(q *models.Quote) string {
	return fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nCompany: %s\nProject type: %s\nBudget range: %s\nTimeline: %s\nPriority: %s\nLead score: %d\n\n%s\n",
		q.Name, q.Email, q.Phone, q.Company, q.ProjectType, q.BudgetRange, q.Timeline, q.Priority, q.LeadScore, q.Message,
	)
}

func renderContactEmail(c *models.Contact) string {
	return fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nSubject: %s\n\n%s\n",
		c.Name, c.Email, c.Phone, c.Subject, c.Message,
	)
}
