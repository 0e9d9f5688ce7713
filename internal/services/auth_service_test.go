package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/slklaos/backoffice/internal/models"
	appErr "github.com/slklaos/backoffice/pkg/errors"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, obj *models.User) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id any, dest *models.User) error {
	return m.Called(ctx, id, dest).Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, obj *models.User) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id any) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	return m.Called(ctx, email, dest).Error(0)
}

func (m *mockUserRepo) ListAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func stubUser(role, password string) models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return models.User{
		ID:           uuid.New(),
		Email:        "staff@example.com",
		PasswordHash: string(hash),
		Name:         "Staff Member",
		Role:         role,
		Department:   "sales",
		Position:     "Surveyor",
		Permissions:  []byte(`["quotes"]`),
	}
}

func TestLoginIssuesTokenWithProfileClaims(t *testing.T) {
	user := stubUser(models.RoleManager, "s3cret-pass")
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, user.Email, mock.Anything).Run(func(args mock.Arguments) {
		dest := args.Get(2).(*models.User)
		*dest = user
	}).Return(nil)

	secret := []byte("unit-test-signing-secret")
	svc := NewAuthService(repo, secret)

	tokenString, got, err := svc.Login(context.Background(), user.Email, "s3cret-pass", "manager")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	require.Equal(t, user.ID.String(), claims["sub"])
	require.Equal(t, "manager", claims["role"])
	require.Equal(t, "manager", claims["login_type"])
	require.Equal(t, "sales", claims["department"])
	require.Equal(t, "Surveyor", claims["position"])
	require.Equal(t, []interface{}{"quotes"}, claims["permissions"])
}

func TestLoginWrongPassword(t *testing.T) {
	user := stubUser(models.RoleEmployee, "right-password")
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, user.Email, mock.Anything).Run(func(args mock.Arguments) {
		dest := args.Get(2).(*models.User)
		*dest = user
	}).Return(nil)

	svc := NewAuthService(repo, []byte("unit-test-signing-secret"))
	_, _, err := svc.Login(context.Background(), user.Email, "wrong-password", "")
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))
}

func TestLoginPortalMismatch(t *testing.T) {
	user := stubUser(models.RoleEmployee, "s3cret-pass")
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, user.Email, mock.Anything).Run(func(args mock.Arguments) {
		dest := args.Get(2).(*models.User)
		*dest = user
	}).Return(nil)

	svc := NewAuthService(repo, []byte("unit-test-signing-secret"))
	_, _, err := svc.Login(context.Background(), user.Email, "s3cret-pass", "manager")
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeForbidden))
}

func TestLoginAdminUsesAnyPortal(t *testing.T) {
	user := stubUser(models.RoleAdmin, "s3cret-pass")
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, user.Email, mock.Anything).Run(func(args mock.Arguments) {
		dest := args.Get(2).(*models.User)
		*dest = user
	}).Return(nil)

	svc := NewAuthService(repo, []byte("unit-test-signing-secret"))
	_, _, err := svc.Login(context.Background(), user.Email, "s3cret-pass", "employee")
	require.NoError(t, err)
}
