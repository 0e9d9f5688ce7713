package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slklaos/backoffice/internal/models"
	appErr "github.com/slklaos/backoffice/pkg/errors"
	"github.com/slklaos/backoffice/pkg/logger"
)

func TestMain(m *testing.M) {
	_, err := logger.Init("info", "json")
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

type mockQuoteRepo struct {
	mock.Mock
}

func (m *mockQuoteRepo) Create(ctx context.Context, obj *models.Quote) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockQuoteRepo) GetByID(ctx context.Context, id any, dest *models.Quote) error {
	args := m.Called(ctx, id, dest)
	return args.Error(0)
}

func (m *mockQuoteRepo) Update(ctx context.Context, obj *models.Quote) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockQuoteRepo) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockQuoteRepo) ListAll(ctx context.Context) ([]models.Quote, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Quote), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuoteRepo) UpdateStatus(ctx context.Context, quoteID uuid.UUID, status string) error {
	args := m.Called(ctx, quoteID, status)
	return args.Error(0)
}

func (m *mockQuoteRepo) Assign(ctx context.Context, quoteID, userID uuid.UUID) error {
	args := m.Called(ctx, quoteID, userID)
	return args.Error(0)
}

func TestCreateQuoteRequiresNameAndEmail(t *testing.T) {
	repo := new(mockQuoteRepo)
	svc := NewQuoteService(repo, nil, "sales@example.com")

	cases := []CreateQuoteInput{
		{Name: "", Email: "a@b.com"},
		{Name: "Jane", Email: ""},
		{Name: "   ", Email: "a@b.com"},
		{Name: "", Email: ""},
	}
	for _, in := range cases {
		_, err := svc.CreateQuote(context.Background(), &in)
		require.Error(t, err)
		require.True(t, appErr.IsCode(err, appErr.CodeInvalid))
		require.EqualError(t, err, "invalid: name and email are required")
	}

	// Nothing reached the store.
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDerivePriority(t *testing.T) {
	require.Equal(t, "high", DerivePriority("over-500000"))
	require.Equal(t, "high", DerivePriority("250000-500000"))
	require.Equal(t, "medium", DerivePriority("100000-250000"))
	require.Equal(t, "medium", DerivePriority("50000-100000"))
	require.Equal(t, "low", DerivePriority("25000-50000"))
	require.Equal(t, "low", DerivePriority("under-25000"))
	require.Equal(t, "low", DerivePriority(""))
	require.Equal(t, "low", DerivePriority("not-a-bucket"))
}

func TestCreateQuoteDerivesScoringFields(t *testing.T) {
	repo := new(mockQuoteRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := NewQuoteService(repo, nil, "sales@example.com")

	q, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		Name:        "Jane Builder",
		Email:       "jane@example.com",
		Phone:       "0201234567",
		Company:     "Builder Ltd",
		ProjectType: "commercial",
		BudgetRange: "over-500000",
		Timeline:    "3-6-months",
	})
	require.NoError(t, err)
	require.Equal(t, models.QuoteStatusNew, q.Status)
	require.Equal(t, "high", q.Priority)
	require.Equal(t, 100, q.LeadScore)
	require.Equal(t, 50, q.WinProbability)
	require.Equal(t, 750000.0, q.EstimatedValue)
	require.NotEmpty(t, q.CustomerProfile)
	require.NotEmpty(t, q.ProjectDetails)
	require.NotEmpty(t, q.SalesTracking)
}

func TestCreateQuoteMinimalFieldsStayLow(t *testing.T) {
	repo := new(mockQuoteRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := NewQuoteService(repo, nil, "sales@example.com")

	q, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		Name:  "Kojo",
		Email: "kojo@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "low", q.Priority)
	require.Equal(t, 20, q.LeadScore)
	require.Equal(t, 0.0, q.EstimatedValue)
}

func seededQuotes(n int) []models.Quote {
	out := make([]models.Quote, n)
	for i := range out {
		out[i] = models.Quote{ID: uuid.New(), Name: "Q", Email: "q@example.com"}
	}
	return out
}

func TestDeleteQuoteApplied(t *testing.T) {
	quotes := seededQuotes(3)
	target := quotes[1].ID

	repo := new(mockQuoteRepo)
	repo.On("ListAll", mock.Anything).Return(quotes, nil).Once()

	svc := NewQuoteService(repo, nil, "sales@example.com").(*quoteService)
	_, err := svc.ListQuotes(context.Background())
	require.NoError(t, err)
	require.Len(t, svc.Snapshot(), 3)

	// The snapshot must already show N-1 when the backend delete runs.
	repo.On("Delete", mock.Anything, target).Run(func(args mock.Arguments) {
		require.Len(t, svc.Snapshot(), 2)
	}).Return(nil).Once()

	remaining := append([]models.Quote{quotes[0]}, quotes[2])
	repo.On("ListAll", mock.Anything).Return(remaining, nil).Once()

	outcome, err := svc.DeleteQuote(context.Background(), target)
	require.NoError(t, err)
	require.Equal(t, DeleteApplied, outcome)
	require.Len(t, svc.Snapshot(), 2)
	repo.AssertExpectations(t)
}

func TestDeleteQuoteReverted(t *testing.T) {
	quotes := seededQuotes(3)
	target := quotes[0].ID

	repo := new(mockQuoteRepo)
	repo.On("ListAll", mock.Anything).Return(quotes, nil).Once()

	svc := NewQuoteService(repo, nil, "sales@example.com").(*quoteService)
	_, err := svc.ListQuotes(context.Background())
	require.NoError(t, err)

	deleteErr := errors.New("violates foreign key constraint")
	repo.On("Delete", mock.Anything, target).Run(func(args mock.Arguments) {
		require.Len(t, svc.Snapshot(), 2)
	}).Return(deleteErr).Once()

	// Recovery refetch restores the full collection.
	repo.On("ListAll", mock.Anything).Return(quotes, nil).Once()

	outcome, err := svc.DeleteQuote(context.Background(), target)
	require.ErrorIs(t, err, deleteErr)
	require.Equal(t, DeleteReverted, outcome)
	require.Len(t, svc.Snapshot(), 3)
	repo.AssertExpectations(t)
}

func TestDeleteQuoteFailed(t *testing.T) {
	quotes := seededQuotes(2)
	target := quotes[0].ID

	repo := new(mockQuoteRepo)
	repo.On("ListAll", mock.Anything).Return(quotes, nil).Once()

	svc := NewQuoteService(repo, nil, "sales@example.com").(*quoteService)
	_, err := svc.ListQuotes(context.Background())
	require.NoError(t, err)

	deleteErr := errors.New("connection reset")
	repo.On("Delete", mock.Anything, target).Return(deleteErr).Once()
	repo.On("ListAll", mock.Anything).Return(nil, errors.New("still down")).Once()

	outcome, err := svc.DeleteQuote(context.Background(), target)
	require.ErrorIs(t, err, deleteErr)
	require.Equal(t, DeleteFailed, outcome)
	// The snapshot is invalidated, not trusted.
	require.Empty(t, svc.Snapshot())
	repo.AssertExpectations(t)
}

func TestUpdateQuoteRejectsBlankName(t *testing.T) {
	id := uuid.New()
	repo := new(mockQuoteRepo)
	repo.On("GetByID", mock.Anything, id, mock.Anything).Run(func(args mock.Arguments) {
		dest := args.Get(2).(*models.Quote)
		*dest = models.Quote{ID: id, Name: "Jane", Email: "jane@example.com"}
	}).Return(nil)

	svc := NewQuoteService(repo, nil, "sales@example.com")
	blank := "   "
	_, err := svc.UpdateQuote(context.Background(), id, &UpdateQuoteInput{Name: &blank})
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
