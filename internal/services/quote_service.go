package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/internal/queue/tasks"
	"github.com/slklaos/backoffice/internal/repository"
	appErr "github.com/slklaos/backoffice/pkg/errors"
	"github.com/slklaos/backoffice/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// DeleteOutcome tags the result of a quote delete reconciliation.
type DeleteOutcome string

const (
	// DeleteApplied: the optimistic removal was confirmed by the backend.
	DeleteApplied DeleteOutcome = "applied"
	// DeleteReverted: the backend delete failed and the snapshot was
	// restored by a recovery refetch.
	DeleteReverted DeleteOutcome = "reverted"
	// DeleteFailed: the delete and the recovery refetch both failed; the
	// snapshot can no longer be trusted.
	DeleteFailed DeleteOutcome = "failed"
)

// Delay between a confirmed delete and the reconciling refetch, covering
// server-side cascades that complete just after the delete returns.
const reconcileDelay = 100 * time.Millisecond

// QuoteService manages the quote pipeline: intake from the public form,
// scoring, assignment, and the snapshot-cached admin list with its
// optimistic delete.
type QuoteService interface {
	CreateQuote(ctx context.Context, input *CreateQuoteInput) (*models.Quote, error)
	GetQuote(ctx context.Context, quoteID uuid.UUID) (*models.Quote, error)
	ListQuotes(ctx context.Context) ([]models.Quote, error)
	UpdateQuote(ctx context.Context, quoteID uuid.UUID, updates *UpdateQuoteInput) (*models.Quote, error)
	UpdateStatus(ctx context.Context, quoteID uuid.UUID, status string) error
	Assign(ctx context.Context, quoteID, userID uuid.UUID) error
	DeleteQuote(ctx context.Context, quoteID uuid.UUID) (DeleteOutcome, error)
	Snapshot() []models.Quote
	Invalidate()
}

type CreateQuoteInput struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	ProjectType string
	BudgetRange string
	Timeline    string
	Message     string
}

type UpdateQuoteInput struct {
	Name           *string
	Email          *string
	Phone          *string
	Company        *string
	ProjectType    *string
	BudgetRange    *string
	Timeline       *string
	Priority       *string
	WinProbability *int
	EstimatedValue *float64
	QuotedAmount   *float64
	FollowUpDate   *time.Time
	Message        *string
}

type quoteService struct {
	quoteRepo   repository.QuoteRepository
	asynqClient *asynq.Client
	salesEmail  string

	mu       sync.Mutex
	snapshot []models.Quote
	loaded   bool
}

func NewQuoteService(quoteRepo repository.QuoteRepository, client *asynq.Client, salesEmail string) QuoteService {
	return &quoteService{quoteRepo: quoteRepo, asynqClient: client, salesEmail: salesEmail}
}

var _ QuoteService = (*quoteService)(nil)

// DerivePriority buckets the budget range into a pipeline priority. Unknown
// or empty ranges stay low.
func DerivePriority(budgetRange string) string {
	switch budgetRange {
	case "over-500000", "250000-500000":
		return "high"
	case "100000-250000", "50000-100000":
		return "medium"
	default:
		return "low"
	}
}

// EstimateValue returns the midpoint of the budget bucket, used to seed the
// estimated deal value before a surveyor quotes.
func EstimateValue(budgetRange string) float64 {
	switch budgetRange {
	case "over-500000":
		return 750000
	case "250000-500000":
		return 375000
	case "100000-250000":
		return 175000
	case "50000-100000":
		return 75000
	case "25000-50000":
		return 37500
	case "under-25000":
		return 12500
	default:
		return 0
	}
}

// ScoreLead scores field completeness plus budget weight, capped at 100.
func ScoreLead(input *CreateQuoteInput) int {
	score := 20
	if strings.TrimSpace(input.Phone) != "" {
		score += 15
	}
	if strings.TrimSpace(input.Company) != "" {
		score += 15
	}
	if strings.TrimSpace(input.ProjectType) != "" {
		score += 10
	}
	if strings.TrimSpace(input.Timeline) != "" {
		score += 10
	}
	switch DerivePriority(input.BudgetRange) {
	case "high":
		score += 30
	case "medium":
		score += 20
	case "low":
		if input.BudgetRange != "" {
			score += 10
		}
	}
	if score > 100 {
		score = 100
	}
	return score
}

func (s *quoteService) CreateQuote(ctx context.Context, input *CreateQuoteInput) (*models.Quote, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, appErr.New(appErr.CodeInvalid, "name and email are required")
	}

	leadScore := ScoreLead(input)

	q := &models.Quote{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Company:        input.Company,
		ProjectType:    input.ProjectType,
		BudgetRange:    input.BudgetRange,
		Timeline:       input.Timeline,
		Status:         models.QuoteStatusNew,
		Priority:       DerivePriority(input.BudgetRange),
		LeadScore:      leadScore,
		WinProbability: leadScore / 2,
		EstimatedValue: EstimateValue(input.BudgetRange),
		Message:        input.Message,
	}

	q.CustomerProfile = mustJSON(map[string]any{
		"name":    input.Name,
		"email":   input.Email,
		"phone":   input.Phone,
		"company": input.Company,
	})
	q.ProjectDetails = mustJSON(map[string]any{
		"project_type": input.ProjectType,
		"budget_range": input.BudgetRange,
		"timeline":     input.Timeline,
		"message":      input.Message,
	})
	q.SalesTracking = mustJSON(map[string]any{
		"lead_score":      q.LeadScore,
		"win_probability": q.WinProbability,
		"estimated_value": q.EstimatedValue,
		"priority":        q.Priority,
	})

	if err := s.quoteRepo.Create(ctx, q); err != nil {
		return nil, err
	}
	s.Invalidate()

	s.enqueueEmail(ctx, q)

	logger.L().Info("quote created",
		zap.String("quote_id", q.ID.String()),
		zap.String("priority", q.Priority),
		zap.Int("lead_score", q.LeadScore),
	)
	return q, nil
}

// enqueueEmail notifies the sales inbox. The notification is fire-and-forget:
// a queue failure is logged and never fails the quote itself.
func (s *quoteService) enqueueEmail(ctx context.Context, q *models.Quote) {
	if s.asynqClient == nil {
		return
	}
	payload, _ := json.Marshal(tasks.QuoteEmailPayload{
		QuoteID: q.ID.String(),
		To:      s.salesEmail,
	})
	if _, err := s.asynqClient.EnqueueContext(ctx, asynq.NewTask(tasks.TypeQuoteEmail, payload)); err != nil {
		logger.L().Error("enqueue quote email failed", zap.Error(err), zap.String("quote_id", q.ID.String()))
	}
}

func (s *quoteService) GetQuote(ctx context.Context, quoteID uuid.UUID) (*models.Quote, error) {
	var q models.Quote
	if err := s.quoteRepo.GetByID(ctx, quoteID, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// ListQuotes refetches the full collection and replaces the snapshot.
func (s *quoteService) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	out, err := s.quoteRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.snapshot = out
	s.loaded = true
	s.mu.Unlock()
	return out, nil
}

// Snapshot returns a copy of the cached collection as of the last fetch.
func (s *quoteService) Snapshot() []models.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Quote, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// Invalidate drops the snapshot; the next list refetches.
func (s *quoteService) Invalidate() {
	s.mu.Lock()
	s.snapshot = nil
	s.loaded = false
	s.mu.Unlock()
}

func (s *quoteService) UpdateQuote(ctx context.Context, quoteID uuid.UUID, updates *UpdateQuoteInput) (*models.Quote, error) {
	var q models.Quote
	if err := s.quoteRepo.GetByID(ctx, quoteID, &q); err != nil {
		return nil, err
	}

	if updates.Name != nil {
		if strings.TrimSpace(*updates.Name) == "" {
			return nil, appErr.New(appErr.CodeInvalid, "name and email are required")
		}
		q.Name = *updates.Name
	}
	if updates.Email != nil {
		if strings.TrimSpace(*updates.Email) == "" {
			return nil, appErr.New(appErr.CodeInvalid, "name and email are required")
		}
		q.Email = *updates.Email
	}
	if updates.Phone != nil {
		q.Phone = *updates.Phone
	}
	if updates.Company != nil {
		q.Company = *updates.Company
	}
	if updates.ProjectType != nil {
		q.ProjectType = *updates.ProjectType
	}
	if updates.BudgetRange != nil {
		q.BudgetRange = *updates.BudgetRange
		q.Priority = DerivePriority(*updates.BudgetRange)
	}
	if updates.Timeline != nil {
		q.Timeline = *updates.Timeline
	}
	if updates.Priority != nil {
		q.Priority = *updates.Priority
	}
	if updates.WinProbability != nil {
		q.WinProbability = *updates.WinProbability
	}
	if updates.EstimatedValue != nil {
		q.EstimatedValue = *updates.EstimatedValue
	}
	if updates.QuotedAmount != nil {
		q.QuotedAmount = *updates.QuotedAmount
	}
	if updates.FollowUpDate != nil {
		q.FollowUpDate = updates.FollowUpDate
	}
	if updates.Message != nil {
		q.Message = *updates.Message
	}

	if err := s.quoteRepo.Update(ctx, &q); err != nil {
		return nil, err
	}
	s.Invalidate()
	return &q, nil
}

func (s *quoteService) UpdateStatus(ctx context.Context, quoteID uuid.UUID, status string) error {
	if err := s.quoteRepo.UpdateStatus(ctx, quoteID, status); err != nil {
		return err
	}
	s.Invalidate()
	return nil
}

func (s *quoteService) Assign(ctx context.Context, quoteID, userID uuid.UUID) error {
	if err := s.quoteRepo.Assign(ctx, quoteID, userID); err != nil {
		return err
	}
	s.Invalidate()
	return nil
}

// DeleteQuote removes the quote from the snapshot before the backend call
// resolves, then reconciles once and reports a single tagged outcome.
func (s *quoteService) DeleteQuote(ctx context.Context, quoteID uuid.UUID) (DeleteOutcome, error) {
	s.mu.Lock()
	if s.loaded {
		kept := s.snapshot[:0:0]
		for _, q := range s.snapshot {
			if q.ID != quoteID {
				kept = append(kept, q)
			}
		}
		s.snapshot = kept
	}
	s.mu.Unlock()

	deleteErr := s.quoteRepo.Delete(ctx, quoteID)
	if deleteErr == nil {
		time.Sleep(reconcileDelay)
		if _, err := s.ListQuotes(ctx); err != nil {
			// The delete stuck; only the snapshot refresh failed.
			logger.L().Warn("post-delete refetch failed", zap.Error(err), zap.String("quote_id", quoteID.String()))
			s.Invalidate()
		}
		return DeleteApplied, nil
	}

	// Backend refused the delete: restore the snapshot from a refetch.
	if _, err := s.ListQuotes(ctx); err != nil {
		s.Invalidate()
		logger.L().Error("quote delete and recovery refetch both failed",
			zap.Error(deleteErr), zap.NamedError("refetch", err), zap.String("quote_id", quoteID.String()))
		return DeleteFailed, deleteErr
	}

	logger.L().Warn("quote delete reverted", zap.Error(deleteErr), zap.String("quote_id", quoteID.String()))
	return DeleteReverted, deleteErr
}

func mustJSON(v map[string]any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}
