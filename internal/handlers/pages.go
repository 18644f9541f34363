package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/devfolio/apiserver/internal/logger"
	"github.com/devfolio/apiserver/internal/pages"
)

// PageRouter registers the page data routes. Each response carries the
// layout data next to the page payload.
func PageRouter(r chi.Router, loader *pages.Loader, log *logger.Logger) {
	r.Get("/layout", serve(log, "layout", loader.Layout))
	r.Get("/profile", serve(log, "profile page", loader.ProfileView))
	r.Get("/dashboard", serve(log, "dashboard page", loader.DashboardView))
}
