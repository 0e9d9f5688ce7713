package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/slklaos/backoffice/internal/api/middleware"
	"github.com/slklaos/backoffice/internal/api/types"
	"github.com/slklaos/backoffice/internal/api/validators"
	"github.com/slklaos/backoffice/internal/listing"
	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/internal/sanitize"
	"github.com/slklaos/backoffice/internal/services"
)

type ProjectsHandler struct {
	svc      services.ProjectService
	pageSize int
}

func NewProjectsHandler(svc services.ProjectService, pageSize int) *ProjectsHandler {
	return &ProjectsHandler{svc: svc, pageSize: pageSize}
}

// List fetches the full collection and applies the search/category/status
// filters, sort, and pagination in memory.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	filtered := listing.Filter(items,
		listing.TextSearch(q.Get("q"), func(p models.Project) []string {
			return []string{p.Title, p.Client, p.Location, p.Description}
		}),
		listing.Equals(q.Get("category"), func(p models.Project) string { return p.Category }),
		listing.Equals(q.Get("status"), func(p models.Project) string { return p.Status }),
	)
	filtered = listing.Sort(filtered, projectComparator(q.Get("sort")))

	pageNum, _ := strconv.Atoi(q.Get("page"))
	page := listing.Paginate(filtered, pageNum, h.pageSize)

	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data:    page.Items,
		Meta: &types.Meta{
			Page:       page.PageNumber,
			PageSize:   page.PageSize,
			Total:      int64(page.Total),
			TotalPages: page.TotalPages,
		},
	})
}

func projectComparator(key string) func(a, b models.Project) bool {
	switch key {
	case "name":
		return func(a, b models.Project) bool { return a.Title < b.Title }
	case "status":
		return func(a, b models.Project) bool { return a.Status < b.Status }
	case "date":
		return func(a, b models.Project) bool { return a.CreatedAt.After(b.CreatedAt) }
	default:
		return nil
	}
}

func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	p, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: p})
}

func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.ProjectCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	gallery := req.Gallery
	if gallery == nil && req.GalleryText != "" {
		gallery = galleryFromText(req.GalleryText)
	}

	uid, _ := uuid.Parse(middleware.GetUserID(r.Context()))
	input := &services.CreateProjectInput{
		Title:            req.Title,
		Category:         req.Category,
		Location:         req.Location,
		Year:             req.Year,
		Duration:         req.Duration,
		Client:           req.Client,
		Budget:           req.Budget,
		Status:           req.Status,
		Priority:         req.Priority,
		Rating:           req.Rating,
		Image:            req.Image,
		Gallery:          gallery,
		BrochureURL:      req.BrochureURL,
		Description:      req.Description,
		KeyFeatures:      req.KeyFeatures,
		Challenge:        req.Challenge,
		Solution:         req.Solution,
		TechnicalDetails: req.TechnicalDetails,
		MaterialsUsed:    req.MaterialsUsed,
		Testimonial:      req.Testimonial,
	}
	if req.ManagerID != "" {
		if mid, err := uuid.Parse(req.ManagerID); err == nil {
			input.ManagerID = &mid
		}
	}

	p, err := h.svc.CreateProject(r.Context(), uid, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: p})
}

func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req types.ProjectUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	gallery := req.Gallery
	if gallery == nil && req.GalleryText != nil {
		gallery = galleryFromText(*req.GalleryText)
	}

	updates := &services.UpdateProjectInput{
		Title:            req.Title,
		Category:         req.Category,
		Location:         req.Location,
		Year:             req.Year,
		Duration:         req.Duration,
		Client:           req.Client,
		Budget:           req.Budget,
		Status:           req.Status,
		Priority:         req.Priority,
		Rating:           req.Rating,
		Image:            req.Image,
		Gallery:          gallery,
		BrochureURL:      req.BrochureURL,
		Description:      req.Description,
		KeyFeatures:      req.KeyFeatures,
		Challenge:        req.Challenge,
		Solution:         req.Solution,
		TechnicalDetails: req.TechnicalDetails,
		MaterialsUsed:    req.MaterialsUsed,
		Testimonial:      req.Testimonial,
	}
	if req.ManagerID != nil {
		if mid, err := uuid.Parse(*req.ManagerID); err == nil {
			updates.ManagerID = &mid
		}
	}

	p, err := h.svc.UpdateProject(r.Context(), id, updates)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: p})
}

func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if !confirmDelete(w, r) {
		return
	}
	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}

func (h *ProjectsHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req struct {
		Published bool `json:"published"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.svc.SetPublished(r.Context(), id, req.Published); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}

// galleryFromText reuses the sanitizer's comma-list reconstruction for the
// raw form value.
func galleryFromText(text string) []string {
	patch := sanitize.Apply(map[string]any{"gallery": text}, sanitize.Options{ListFields: []string{"gallery"}})
	if v, ok := patch["gallery"].([]string); ok {
		return v
	}
	if strings.TrimSpace(text) != "" {
		return []string{}
	}
	return nil
}
