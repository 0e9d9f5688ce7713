package handlers

import (
	"net/http"

	"github.com/slklaos/backoffice/internal/api/types"
	"github.com/slklaos/backoffice/internal/api/validators"
	"github.com/slklaos/backoffice/internal/listing"
	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/internal/services"
)

type ContactsHandler struct {
	svc services.ContactService
}

func NewContactsHandler(svc services.ContactService) *ContactsHandler {
	return &ContactsHandler{svc: svc}
}

// Create is the public contact form endpoint.
func (h *ContactsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.ContactCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.svc.CreateContact(r.Context(), &services.CreateContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: c})
}

func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListContacts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	filtered := listing.Filter(items,
		listing.TextSearch(q.Get("q"), func(c models.Contact) []string {
			return []string{c.Name, c.Email, c.Subject, c.Message}
		}),
		listing.Equals(q.Get("status"), func(c models.Contact) string { return c.Status }),
	)

	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: filtered})
}

func (h *ContactsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	c, err := h.svc.GetContact(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: c})
}

func (h *ContactsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" validate:"required,oneof=new read replied"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}

func (h *ContactsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if !confirmDelete(w, r) {
		return
	}
	if err := h.svc.DeleteContact(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}
