package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/pkg/logger"
)

func TestMain(m *testing.M) {
	_, err := logger.Init("info", "json")
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

type mockQuoteRepo struct {
	mock.Mock
}

func (m *mockQuoteRepo) Create(ctx context.Context, obj *models.Quote) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockQuoteRepo) GetByID(ctx context.Context, id any, dest *models.Quote) error {
	return m.Called(ctx, id, dest).Error(0)
}

func (m *mockQuoteRepo) Update(ctx context.Context, obj *models.Quote) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockQuoteRepo) Delete(ctx context.Context, id any) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockQuoteRepo) ListAll(ctx context.Context) ([]models.Quote, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Quote), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuoteRepo) UpdateStatus(ctx context.Context, quoteID uuid.UUID, status string) error {
	return m.Called(ctx, quoteID, status).Error(0)
}

func (m *mockQuoteRepo) Assign(ctx context.Context, quoteID, userID uuid.UUID) error {
	return m.Called(ctx, quoteID, userID).Error(0)
}

type mockContactRepo struct {
	mock.Mock
}

func (m *mockContactRepo) Create(ctx context.Context, obj *models.Contact) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockContactRepo) GetByID(ctx context.Context, id any, dest *models.Contact) error {
	return m.Called(ctx, id, dest).Error(0)
}

func (m *mockContactRepo) Update(ctx context.Context, obj *models.Contact) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockContactRepo) Delete(ctx context.Context, id any) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockContactRepo) ListAll(ctx context.Context) ([]models.Contact, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Contact), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContactRepo) UpdateStatus(ctx context.Context, contactID uuid.UUID, status string) error {
	return m.Called(ctx, contactID, status).Error(0)
}

func TestHandleQuoteEmail(t *testing.T) {
	quoteID := uuid.New()
	quoteRepo := new(mockQuoteRepo)
	quoteRepo.On("GetByID", mock.Anything, quoteID, mock.Anything).Run(func(args mock.Arguments) {
		dest := args.Get(2).(*models.Quote)
		*dest = models.Quote{
			ID:          quoteID,
			Name:        "Jane Builder",
			Email:       "jane@example.com",
			BudgetRange: "over-500000",
			Priority:    "high",
		}
	}).Return(nil)

	sender := new(mockSender)
	sender.On("Send", mock.Anything, "sales@example.com", "New quote request from Jane Builder", mock.MatchedBy(func(body string) bool {
		return len(body) > 0
	})).Return(nil)

	h := NewEmailTaskHandler(sender, quoteRepo, nil)

	payload, err := json.Marshal(QuoteEmailPayload{QuoteID: quoteID.String(), To: "sales@example.com"})
	require.NoError(t, err)

	err = h.HandleQuoteEmail(context.Background(), asynq.NewTask(TypeQuoteEmail, payload))
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestHandleQuoteEmailBadPayload(t *testing.T) {
	h := NewEmailTaskHandler(new(mockSender), new(mockQuoteRepo), nil)
	err := h.HandleQuoteEmail(context.Background(), asynq.NewTask(TypeQuoteEmail, []byte("{not json")))
	require.Error(t, err)
}

func TestHandleContactEmailSendFailure(t *testing.T) {
	contactID := uuid.New()
	contactRepo := new(mockContactRepo)
	contactRepo.On("GetByID", mock.Anything, contactID, mock.Anything).Run(func(args mock.Arguments) {
		dest := args.Get(2).(*models.Contact)
		*dest = models.Contact{ID: contactID, Name: "Kofi", Email: "kofi@example.com", Message: "hello"}
	}).Return(nil)

	sender := new(mockSender)
	sendErr := errors.New("smtp unavailable")
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(sendErr)

	h := NewEmailTaskHandler(sender, nil, contactRepo)

	payload, err := json.Marshal(ContactEmailPayload{ContactID: contactID.String(), To: "sales@example.com"})
	require.NoError(t, err)

	// The error propagates so asynq retries the delivery.
	err = h.HandleContactEmail(context.Background(), asynq.NewTask(TypeContactEmail, payload))
	require.ErrorIs(t, err, sendErr)
}
