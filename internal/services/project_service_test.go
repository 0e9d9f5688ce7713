package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slklaos/backoffice/internal/models"
	appErr "github.com/slklaos/backoffice/pkg/errors"
)

type mockProjectRepo struct {
	mock.Mock
}

func (m *mockProjectRepo) Create(ctx context.Context, obj *models.Project) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id any, dest *models.Project) error {
	args := m.Called(ctx, id, dest)
	return args.Error(0)
}

func (m *mockProjectRepo) Update(ctx context.Context, obj *models.Project) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockProjectRepo) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProjectRepo) ListAll(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectRepo) ListPublished(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectRepo) GetPublishedBySlug(ctx context.Context, slug string, dest *models.Project) error {
	args := m.Called(ctx, slug, dest)
	return args.Error(0)
}

func (m *mockProjectRepo) SetPublished(ctx context.Context, projectID uuid.UUID, published bool) error {
	args := m.Called(ctx, projectID, published)
	return args.Error(0)
}

func TestCreateProjectRequiresHeroImage(t *testing.T) {
	repo := new(mockProjectRepo)
	svc := NewProjectService(repo, nil)

	_, err := svc.CreateProject(context.Background(), uuid.New(), &CreateProjectInput{
		Title:    "Accra Mall Extension",
		Category: "commercial",
		Image:    "   ",
	})
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	// The validation failure must short-circuit before any store call.
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProjectDefaults(t *testing.T) {
	userID := uuid.New()
	repo := new(mockProjectRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := NewProjectService(repo, nil)

	p, err := svc.CreateProject(context.Background(), userID, &CreateProjectInput{
		Title:    "Tema Harbour Warehouse",
		Category: "commercial",
		Image:    "https://cdn.example.com/hero.jpg",
	})
	require.NoError(t, err)
	require.Equal(t, userID, p.UserID)
	require.False(t, p.IsPublished)
	require.Equal(t, models.ProjectStatusPlanning, p.Status)
	require.Equal(t, "medium", p.Priority)
	require.Equal(t, "tema-harbour-warehouse", p.Slug)
	// Omitted gallery persists as an empty list, never null.
	require.JSONEq(t, `[]`, string(p.Gallery))
}

func TestUpdateProjectPartialPatch(t *testing.T) {
	id := uuid.New()
	repo := new(mockProjectRepo)
	repo.On("GetByID", mock.Anything, id, mock.Anything).Run(func(args mock.Arguments) {
		dest := args.Get(2).(*models.Project)
		*dest = models.Project{
			ID:       id,
			Title:    "Old Title",
			Slug:     "old-title",
			Location: "Kumasi",
			Image:    "https://cdn.example.com/hero.jpg",
		}
	}).Return(nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	svc := NewProjectService(repo, nil)

	loc := "Takoradi"
	p, err := svc.UpdateProject(context.Background(), id, &UpdateProjectInput{Location: &loc})
	require.NoError(t, err)
	require.Equal(t, "Takoradi", p.Location)
	// Untouched fields survive the patch.
	require.Equal(t, "Old Title", p.Title)
	require.Equal(t, "old-title", p.Slug)
}

func TestUpdateProjectRejectsBlankHeroImage(t *testing.T) {
	id := uuid.New()
	repo := new(mockProjectRepo)
	repo.On("GetByID", mock.Anything, id, mock.Anything).Run(func(args mock.Arguments) {
		dest := args.Get(2).(*models.Project)
		*dest = models.Project{ID: id, Title: "T", Image: "https://cdn.example.com/hero.jpg"}
	}).Return(nil)
	svc := NewProjectService(repo, nil)

	blank := ""
	_, err := svc.UpdateProject(context.Background(), id, &UpdateProjectInput{Image: &blank})
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
