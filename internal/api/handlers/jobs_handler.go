package handlers

import (
	"net/http"

	"github.com/slklaos/backoffice/internal/api/types"
	"github.com/slklaos/backoffice/internal/api/validators"
	"github.com/slklaos/backoffice/internal/listing"
	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/internal/services"
)

type JobsHandler struct {
	svc services.JobService
}

func NewJobsHandler(svc services.JobService) *JobsHandler {
	return &JobsHandler{svc: svc}
}

// List returns all postings for the admin screen; filters are optional.
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListJobs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	filtered := listing.Filter(items,
		listing.TextSearch(q.Get("q"), func(j models.Job) []string {
			return []string{j.Title, j.Location, j.Description}
		}),
		listing.Equals(q.Get("category"), func(j models.Job) string { return j.Category }),
		listing.EqualsFold(q.Get("status"), func(j models.Job) string { return j.Status }),
	)

	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: filtered})
}

func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	j, err := h.svc.GetJob(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: j})
}

func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.JobCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	j, err := h.svc.CreateJob(r.Context(), &services.CreateJobInput{
		Title:          req.Title,
		Category:       req.Category,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Status:         req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: j})
}

func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req types.JobUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	j, err := h.svc.UpdateJob(r.Context(), id, &services.UpdateJobInput{
		Title:          req.Title,
		Category:       req.Category,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Status:         req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: j})
}

func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if !confirmDelete(w, r) {
		return
	}
	if err := h.svc.DeleteJob(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}
