package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/internal/repository"
	appErr "github.com/slklaos/backoffice/pkg/errors"
	"github.com/slklaos/backoffice/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// UserService manages staff accounts. Only admins reach these operations;
// the router enforces that.
type UserService interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*models.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, updates *UpdateUserInput) (*models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type CreateUserInput struct {
	Email       string
	Password    string
	Name        string
	Role        string
	Department  string
	Position    string
	Permissions []string
}

type UpdateUserInput struct {
	Name        *string
	Role        *string
	Department  *string
	Position    *string
	Permissions []string
	Password    *string
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

var _ UserService = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, input *CreateUserInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || strings.TrimSpace(input.Name) == "" {
		return nil, appErr.New(appErr.CodeInvalid, "name and email are required")
	}

	var existing models.User
	if err := s.userRepo.GetByEmail(ctx, email, &existing); err == nil {
		return nil, appErr.New(appErr.CodeConflict, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}

	perms := input.Permissions
	if perms == nil {
		perms = []string{}
	}
	permJSON, err := json.Marshal(perms)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInvalid, "invalid permissions")
	}

	u := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Role:         input.Role,
		Department:   input.Department,
		Position:     input.Position,
		Permissions:  datatypes.JSON(permJSON),
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.L().Info("user created", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return u, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var u models.User
	if err := s.userRepo.GetByID(ctx, userID, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.ListAll(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, userID uuid.UUID, updates *UpdateUserInput) (*models.User, error) {
	var u models.User
	if err := s.userRepo.GetByID(ctx, userID, &u); err != nil {
		return nil, err
	}

	if updates.Name != nil {
		u.Name = *updates.Name
	}
	if updates.Role != nil {
		u.Role = *updates.Role
	}
	if updates.Department != nil {
		u.Department = *updates.Department
	}
	if updates.Position != nil {
		u.Position = *updates.Position
	}
	if updates.Permissions != nil {
		b, err := json.Marshal(updates.Permissions)
		if err != nil {
			return nil, appErr.Wrap(err, appErr.CodeInvalid, "invalid permissions")
		}
		u.Permissions = datatypes.JSON(b)
	}
	if updates.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*updates.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
		}
		u.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	logger.L().Info("user deleted", zap.String("user_id", userID.String()))
	return nil
}
