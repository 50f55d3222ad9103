package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mergington-high/activities/internal/service"
)

// NewRouter builds the full application router: middleware stack, API routes,
// root redirect, and static file serving. Tests exercise the same router the
// server runs.
func NewRouter(svc *service.ActivityService, staticDir string) *chi.Mux {
	h := NewActivityHandler(svc)

	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(Logger)                  // structured access log
	r.Use(CORS)                    // permissive CORS for the front-end

	// Root & health
	r.Get("/", RootRedirect)
	r.Get("/health", HealthCheck)

	// API routes
	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.ListActivities)
		r.Post("/{activityName}/signup", h.Signup)
		r.Delete("/{activityName}/participants/{email}", h.Unregister)
	})

	// Static front-end: index.html, app.js, styles.css under /static/.
	fs := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
	r.Handle("/static/*", fs)

	return r
}
