package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/slklaos/backoffice/internal/api/handlers"
	mw "github.com/slklaos/backoffice/internal/api/middleware"
	"github.com/slklaos/backoffice/internal/models"
)

type Dependencies struct {
	HMACSecret []byte
	// StorageDir is served read-only under /storage so uploaded objects
	// resolve at their public URLs.
	StorageDir string

	AuthHandler     *handlers.AuthHandler
	ContentHandler  *handlers.ContentHandler
	ProjectsHandler *handlers.ProjectsHandler
	QuotesHandler   *handlers.QuotesHandler
	JobsHandler     *handlers.JobsHandler
	UsersHandler    *handlers.UsersHandler
	ContactsHandler *handlers.ContactsHandler
	PostsHandler    *handlers.PostsHandler
	UploadsHandler  *handlers.UploadsHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(10, 20))
	r.Use(chimid.Compress(5))

	hh := handlers.NewHealthHandler()
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	if dep.StorageDir != "" {
		fs := http.StripPrefix("/storage/", http.FileServer(http.Dir(dep.StorageDir)))
		r.Get("/storage/*", fs.ServeHTTP)
	}

	r.Route("/api/v1", func(api chi.Router) {
		// Auth (public)
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/login", dep.AuthHandler.Login)
			ar.Post("/logout", dep.AuthHandler.Logout)
			ar.With(mw.Auth(dep.HMACSecret)).Get("/session", dep.AuthHandler.Session)
		})

		// Marketing site content (public, read-only)
		api.Route("/content", func(cr chi.Router) {
			cr.Get("/projects", dep.ContentHandler.Projects)
			cr.Get("/projects/{slug}", dep.ContentHandler.ProjectBySlug)
			cr.Get("/careers", dep.ContentHandler.Careers)
			cr.Get("/posts", dep.ContentHandler.Posts)
			cr.Get("/posts/{slug}", dep.ContentHandler.PostBySlug)
			cr.Get("/sitemap", dep.ContentHandler.Sitemap)
		})

		// Public intake forms
		api.Post("/quotes", dep.QuotesHandler.Create)
		api.Post("/contacts", dep.ContactsHandler.Create)

		// Back-office (any staff role)
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(mw.Auth(dep.HMACSecret))

			admin.Route("/projects", func(pr chi.Router) {
				pr.Get("/", dep.ProjectsHandler.List)
				pr.Post("/", dep.ProjectsHandler.Create)
				pr.Get("/{id}", dep.ProjectsHandler.Get)
				pr.Put("/{id}", dep.ProjectsHandler.Update)
				pr.Patch("/{id}/publish", dep.ProjectsHandler.Publish)
				pr.With(mw.RequireRole(models.RoleAdmin)).Delete("/{id}", dep.ProjectsHandler.Delete)
			})

			admin.Route("/quotes", func(qr chi.Router) {
				qr.Get("/", dep.QuotesHandler.List)
				qr.Post("/", dep.QuotesHandler.Create)
				qr.Get("/{id}", dep.QuotesHandler.Get)
				qr.Put("/{id}", dep.QuotesHandler.Update)
				qr.Patch("/{id}/status", dep.QuotesHandler.UpdateStatus)
				qr.Patch("/{id}/assign", dep.QuotesHandler.Assign)
				qr.Delete("/{id}", dep.QuotesHandler.Delete)
			})

			admin.Route("/jobs", func(jr chi.Router) {
				jr.Get("/", dep.JobsHandler.List)
				jr.Post("/", dep.JobsHandler.Create)
				jr.Get("/{id}", dep.JobsHandler.Get)
				jr.Put("/{id}", dep.JobsHandler.Update)
				jr.Delete("/{id}", dep.JobsHandler.Delete)
			})

			admin.Route("/contacts", func(cr chi.Router) {
				cr.Get("/", dep.ContactsHandler.List)
				cr.Get("/{id}", dep.ContactsHandler.Get)
				cr.Patch("/{id}/status", dep.ContactsHandler.UpdateStatus)
				cr.Delete("/{id}", dep.ContactsHandler.Delete)
			})

			admin.Route("/posts", func(pr chi.Router) {
				pr.Get("/", dep.PostsHandler.List)
				pr.Post("/", dep.PostsHandler.Create)
				pr.Get("/{id}", dep.PostsHandler.Get)
				pr.Put("/{id}", dep.PostsHandler.Update)
				pr.Delete("/{id}", dep.PostsHandler.Delete)
			})

			// Staff accounts are admin-only
			admin.Route("/users", func(ur chi.Router) {
				ur.Use(mw.RequireRole(models.RoleAdmin))
				ur.Get("/", dep.UsersHandler.List)
				ur.Post("/", dep.UsersHandler.Create)
				ur.Get("/{id}", dep.UsersHandler.Get)
				ur.Put("/{id}", dep.UsersHandler.Update)
				ur.Delete("/{id}", dep.UsersHandler.Delete)
			})

			admin.Post("/uploads/{bucket}", dep.UploadsHandler.Upload)
		})
	})

	return r
}
