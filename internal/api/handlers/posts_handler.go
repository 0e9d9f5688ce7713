package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/slklaos/backoffice/internal/api/middleware"
	"github.com/slklaos/backoffice/internal/api/types"
	"github.com/slklaos/backoffice/internal/api/validators"
	"github.com/slklaos/backoffice/internal/listing"
	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/internal/services"
)

type PostsHandler struct {
	svc services.PostService
}

func NewPostsHandler(svc services.PostService) *PostsHandler {
	return &PostsHandler{svc: svc}
}

func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListPosts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	filtered := listing.Filter(items,
		listing.TextSearch(q.Get("q"), func(p models.Post) []string {
			return []string{p.Title, p.Excerpt, p.Body}
		}),
		listing.Equals(q.Get("category"), func(p models.Post) string { return p.Category }),
	)

	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: filtered})
}

func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	p, err := h.svc.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: p})
}

func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.PostCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	authorID, _ := uuid.Parse(middleware.GetUserID(r.Context()))
	p, err := h.svc.CreatePost(r.Context(), authorID, &services.CreatePostInput{
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Body:      req.Body,
		Category:  req.Category,
		Tags:      req.Tags,
		Published: req.Published,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: p})
}

func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req types.PostUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.UpdatePost(r.Context(), id, &services.UpdatePostInput{
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Body:      req.Body,
		Category:  req.Category,
		Tags:      req.Tags,
		Published: req.Published,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: p})
}

func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if !confirmDelete(w, r) {
		return
	}
	if err := h.svc.DeletePost(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}
