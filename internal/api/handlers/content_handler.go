package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/slklaos/backoffice/internal/api/types"
	"github.com/slklaos/backoffice/internal/listing"
	"github.com/slklaos/backoffice/internal/models"
	"github.com/slklaos/backoffice/internal/services"
)

// ContentHandler serves the read-only endpoints behind the marketing site:
// published projects, open careers, and published posts.
type ContentHandler struct {
	projects services.ProjectService
	jobs     services.JobService
	posts    services.PostService
	pageSize int
	siteURL  string
}

func NewContentHandler(projects services.ProjectService, jobs services.JobService, posts services.PostService, pageSize int, siteURL string) *ContentHandler {
	return &ContentHandler{projects: projects, jobs: jobs, posts: posts, pageSize: pageSize, siteURL: siteURL}
}

func (h *ContentHandler) Projects(w http.ResponseWriter, r *http.Request) {
	items, err := h.projects.ListPublishedProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	filtered := listing.Filter(items,
		listing.TextSearch(q.Get("q"), func(p models.Project) []string {
			return []string{p.Title, p.Location, p.Description}
		}),
		listing.Equals(q.Get("category"), func(p models.Project) string { return p.Category }),
	)

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

func (h *ContentHandler) ProjectBySlug(w http.ResponseWriter, r *http.Request) {
	p, err := h.projects.GetPublishedProjectBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: p})
}

// Careers lists open postings only.
func (h *ContentHandler) Careers(w http.ResponseWriter, r *http.Request) {
	items, err := h.jobs.ListOpenJobs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items})
}

func (h *ContentHandler) Posts(w http.ResponseWriter, r *http.Request) {
	items, err := h.posts.ListPublished(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items})
}

func (h *ContentHandler) PostBySlug(w http.ResponseWriter, r *http.Request) {
	p, err := h.posts.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: p})
}

type sitemapEntry struct {
	URL       string `json:"url"`
	UpdatedAt string `json:"updated_at"`
}

// Sitemap enumerates the canonical public URLs for the crawler feed.
func (h *ContentHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	entries := []sitemapEntry{
		{URL: h.siteURL + "/"},
		{URL: h.siteURL + "/projects"},
		{URL: h.siteURL + "/careers"},
		{URL: h.siteURL + "/news"},
		{URL: h.siteURL + "/contact"},
	}

	projects, err := h.projects.ListPublishedProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	for _, p := range projects {
		entries = append(entries, sitemapEntry{
			URL:       h.siteURL + "/projects/" + p.Slug,
			UpdatedAt: p.UpdatedAt.Format("2006-01-02"),
		})
	}

	posts, err := h.posts.ListPublished(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	for _, p := range posts {
		entries = append(entries, sitemapEntry{
			URL:       h.siteURL + "/news/" + p.Slug,
			UpdatedAt: p.UpdatedAt.Format("2006-01-02"),
		})
	}

	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: entries})
}
