package handlers

import (
	"net/http"

	"github.com/slklaos/backoffice/internal/api/middleware"
	"github.com/slklaos/backoffice/internal/api/types"
	"github.com/slklaos/backoffice/internal/api/validators"
	"github.com/slklaos/backoffice/internal/listing"
	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/internal/services"
)

type UsersHandler struct {
	svc services.UserService
}

func NewUsersHandler(svc services.UserService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	filtered := listing.Filter(items,
		listing.TextSearch(q.Get("q"), func(u models.User) []string {
			return []string{u.Name, u.Email, u.Department, u.Position}
		}),
		listing.Equals(q.Get("role"), func(u models.User) string { return u.Role }),
		listing.Equals(q.Get("department"), func(u models.User) string { return u.Department }),
	)

	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: filtered})
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: u})
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.UserCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.svc.CreateUser(r.Context(), &services.CreateUserInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Role:        req.Role,
		Department:  req.Department,
		Position:    req.Position,
		Permissions: req.Permissions,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: u})
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req types.UserUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.svc.UpdateUser(r.Context(), id, &services.UpdateUserInput{
		Name:        req.Name,
		Role:        req.Role,
		Department:  req.Department,
		Position:    req.Position,
		Permissions: req.Permissions,
		Password:    req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: u})
}

// Delete refuses self-deletion so an admin cannot lock themselves out.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if !confirmDelete(w, r) {
		return
	}
	if middleware.GetUserID(r.Context()) == id.String() {
		writeErrorStr(w, http.StatusBadRequest, "cannot delete your own account")
		return
	}
	if err := h.svc.DeleteUser(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}
