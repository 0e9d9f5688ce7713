package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type sessionKeyType string

const sessionKey sessionKeyType = "session"

// Session is the decoded view of a staff token, held in the request context
// for the lifetime of the request.
type Session struct {
	UserID      string   `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	LoginType   string   `json:"login_type"`
	Department  string   `json:"department"`
	Position    string   `json:"position"`
	Permissions []string `json:"permissions"`
}

// Auth validates a Bearer JWT using the provided HMAC secret and places the
// decoded session in the request context.
func Auth(hmacSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := r.Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			tokenStr := strings.TrimSpace(ah[len("Bearer "):])
			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return hmacSecret, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), sessionKey, sessionFromClaims(claims))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromClaims(claims jwt.MapClaims) *Session {
	s := &Session{}
	s.UserID, _ = claims["sub"].(string)
	s.Email, _ = claims["email"].(string)
	s.Name, _ = claims["name"].(string)
	s.Role, _ = claims["role"].(string)
	s.LoginType, _ = claims["login_type"].(string)
	s.Department, _ = claims["department"].(string)
	s.Position, _ = claims["position"].(string)
	if raw, ok := claims["permissions"].([]any); ok {
		for _, p := range raw {
			if str, ok := p.(string); ok {
				s.Permissions = append(s.Permissions, str)
			}
		}
	}
	return s
}

// GetSession returns the decoded session from context, or nil outside the
// auth middleware.
func GetSession(ctx context.Context) *Session {
	if v := ctx.Value(sessionKey); v != nil {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return nil
}

// GetUserID returns the authenticated user's id, or "" if unauthenticated.
func GetUserID(ctx context.Context) string {
	if s := GetSession(ctx); s != nil {
		return s.UserID
	}
	return ""
}
