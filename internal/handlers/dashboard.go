package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/devfolio/apiserver/internal/logger"
	"github.com/devfolio/apiserver/internal/services"
)

// DashboardRouter registers the dashboard resource routes on the given router.
func DashboardRouter(r chi.Router, dashboardService *services.DashboardService, log *logger.Logger) {
	r.Get("/metrics", serve(log, "dashboard metrics", dashboardService.Metrics))
	r.Get("/traffic", serve(log, "traffic analytics", dashboardService.Traffic))
	r.Get("/errors", serve(log, "error logs", dashboardService.Errors))
	r.Get("/deployments", serve(log, "deployments", dashboardService.Deployments))
}
