package services

import (
	"context"

	"github.com/devfolio/apiserver/internal/projection"
	"github.com/devfolio/apiserver/types"
)

// DashboardRepository defines read access to the dashboard documents.
type DashboardRepository interface {
	DashboardMetrics(ctx context.Context) (types.DashboardMetricsDocument, error)
	Traffic(ctx context.Context) (types.TrafficDocument, error)
	ErrorLogs(ctx context.Context) (types.ErrorLogsDocument, error)
	Deployments(ctx context.Context) (types.DeploymentsDocument, error)
}

// DashboardService serves the dashboard resources.
type DashboardService struct {
	repo DashboardRepository
}

func NewDashboardService(repo DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

func (s *DashboardService) Metrics(ctx context.Context) (types.DashboardMetricsResponse, error) {
	doc, err := s.repo.DashboardMetrics(ctx)
	if err != nil {
		return types.DashboardMetricsResponse{}, err
	}
	return projection.DashboardMetrics(doc), nil
}

func (s *DashboardService) Traffic(ctx context.Context) (types.TrafficResponse, error) {
	doc, err := s.repo.Traffic(ctx)
	if err != nil {
		return types.TrafficResponse{}, err
	}
	return projection.Traffic(doc), nil
}

// Errors returns every recent error entry; filtering is left to clients.
func (s *DashboardService) Errors(ctx context.Context) (types.ErrorLogsResponse, error) {
	doc, err := s.repo.ErrorLogs(ctx)
	if err != nil {
		return types.ErrorLogsResponse{}, err
	}
	return projection.ErrorLogs(doc), nil
}

func (s *DashboardService) Deployments(ctx context.Context) (types.DeploymentsResponse, error) {
	doc, err := s.repo.Deployments(ctx)
	if err != nil {
		return types.DeploymentsResponse{}, err
	}
	return projection.Deployments(doc), nil
}
