package handlers

import (
	"net/http"

	"github.com/slklaos/backoffice/internal/api/middleware"
	"github.com/slklaos/backoffice/internal/api/types"
	"github.com/slklaos/backoffice/internal/api/validators"
	"github.com/slklaos/backoffice/internal/services"
)

type AuthHandler struct {
	auth services.AuthService
}

func NewAuthHandler(auth services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.Email, req.Password, req.LoginType)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data: map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   86400,
			"user": map[string]any{
				"id":         user.ID,
				"email":      user.Email,
				"name":       user.Name,
				"role":       user.Role,
				"department": user.Department,
				"position":   user.Position,
			},
		},
	})
}

// Logout is stateless: the client discards its token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}

// Session returns the decoded view of the caller's token.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSession(r.Context())
	if s == nil {
		writeErrorStr(w, http.StatusUnauthorized, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: s})
}
