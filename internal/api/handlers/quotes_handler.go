package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/slklaos/backoffice/internal/api/types"
	"github.com/slklaos/backoffice/internal/api/validators"
	"github.com/slklaos/backoffice/internal/listing"
	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/internal/services"
)

type QuotesHandler struct {
	svc      services.QuoteService
	pageSize int
}

func NewQuotesHandler(svc services.QuoteService, pageSize int) *QuotesHandler {
	return &QuotesHandler{svc: svc, pageSize: pageSize}
}

// Create handles both the public quote-request form and admin entry.
func (h *QuotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.QuoteCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	q, err := h.svc.CreateQuote(r.Context(), &services.CreateQuoteInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ProjectType: req.ProjectType,
		BudgetRange: req.BudgetRange,
		Timeline:    req.Timeline,
		Message:     req.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: q})
}

func (h *QuotesHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListQuotes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	preds := []listing.Predicate[models.Quote]{
		listing.TextSearch(q.Get("q"), func(qt models.Quote) []string {
			return []string{qt.Name, qt.Email, qt.Company, qt.ProjectType}
		}),
		listing.Equals(q.Get("status"), func(qt models.Quote) string { return qt.Status }),
		listing.Equals(q.Get("priority"), func(qt models.Quote) string { return qt.Priority }),
	}
	if assignee := q.Get("assigned_to"); assignee != "" {
		if uid, err := uuid.Parse(assignee); err == nil {
			preds = append(preds, func(qt models.Quote) bool {
				return qt.AssignedTo != nil && *qt.AssignedTo == uid
			})
		}
	}

	filtered := listing.Filter(items, preds...)
	filtered = listing.Sort(filtered, quoteComparator(q.Get("sort")))

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

func quoteComparator(key string) func(a, b models.Quote) bool {
	switch key {
	case "name":
		return func(a, b models.Quote) bool { return a.Name < b.Name }
	case "status":
		return func(a, b models.Quote) bool { return a.Status < b.Status }
	case "lead_score":
		return func(a, b models.Quote) bool { return a.LeadScore > b.LeadScore }
	case "date":
		return func(a, b models.Quote) bool { return a.CreatedAt.After(b.CreatedAt) }
	default:
		return nil
	}
}

func (h *QuotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	q, err := h.svc.GetQuote(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: q})
}

func (h *QuotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req types.QuoteUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	q, err := h.svc.UpdateQuote(r.Context(), id, &services.UpdateQuoteInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Company:        req.Company,
		ProjectType:    req.ProjectType,
		BudgetRange:    req.BudgetRange,
		Timeline:       req.Timeline,
		Priority:       req.Priority,
		WinProbability: req.WinProbability,
		EstimatedValue: req.EstimatedValue,
		QuotedAmount:   req.QuotedAmount,
		FollowUpDate:   req.FollowUpDate,
		Message:        req.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: q})
}

func (h *QuotesHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req types.QuoteStatusRequest
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

func (h *QuotesHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req types.QuoteAssignRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	uid, _ := uuid.Parse(req.UserID)
	if err := h.svc.Assign(r.Context(), id, uid); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}

// Delete reports the single tagged reconciliation outcome instead of a bare
// success flag.
func (h *QuotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if !confirmDelete(w, r) {
		return
	}

	outcome, err := h.svc.DeleteQuote(r.Context(), id)
	data := map[string]any{"outcome": string(outcome)}
	switch outcome {
	case services.DeleteApplied:
		writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: data})
	case services.DeleteReverted:
		writeJSON(w, http.StatusConflict, types.APIResponse{Success: false, Data: data, Error: types.FromAppError(err)})
	default:
		writeJSON(w, http.StatusInternalServerError, types.APIResponse{Success: false, Data: data, Error: types.FromAppError(err)})
	}
}
