package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/internal/repository"
	appErr "github.com/slklaos/backoffice/pkg/errors"
)

const tokenTTL = 24 * time.Hour

// AuthService issues and describes staff sessions. Each role signs into its
// own portal; a portal/role mismatch is rejected even with a valid password.
type AuthService interface {
	Login(ctx context.Context, email, password, loginType string) (string, *models.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	hmacSecret []byte
}

func NewAuthService(userRepo repository.UserRepository, secret []byte) AuthService {
	return &authService{userRepo: userRepo, hmacSecret: secret}
}

func (s *authService) Login(ctx context.Context, email, password, loginType string) (string, *models.User, error) {
	var user models.User
	if err := s.userRepo.GetByEmail(ctx, email, &user); err != nil {
		return "", nil, appErr.New(appErr.CodeUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, appErr.New(appErr.CodeUnauthorized, "invalid credentials")
	}

	// Admins may use any portal; other roles only their own.
	if loginType != "" && loginType != user.Role && user.Role != models.RoleAdmin {
		return "", nil, appErr.New(appErr.CodeForbidden, "account is not enabled for this portal")
	}

	var permissions []string
	if len(user.Permissions) > 0 {
		_ = json.Unmarshal(user.Permissions, &permissions)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":         user.ID.String(),
		"exp":         time.Now().Add(tokenTTL).Unix(),
		"email":       user.Email,
		"name":        user.Name,
		"role":        user.Role,
		"login_type":  loginType,
		"department":  user.Department,
		"position":    user.Position,
		"permissions": permissions,
	})

	tokenString, err := token.SignedString(s.hmacSecret)
	if err != nil {
		return "", nil, appErr.Wrap(err, appErr.CodeInternal, "sign token failed")
	}

	return tokenString, &user, nil
}
