package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/devfolio/apiserver/internal/logger"
	"github.com/devfolio/apiserver/internal/services"
)

// PortfolioRouter registers the profile-side resource routes on the given router.
func PortfolioRouter(r chi.Router, portfolioService *services.PortfolioService, log *logger.Logger) {
	r.Get("/config", serve(log, "site config", portfolioService.SiteConfig))
	r.Get("/profile", serve(log, "profile", portfolioService.Profile))
	r.Get("/tech-stack", serve(log, "tech stack", portfolioService.TechStack))
	r.Get("/projects", serve(log, "projects", portfolioService.Projects))
	r.Get("/contributions", serve(log, "contributions", portfolioService.Contributions))
}
