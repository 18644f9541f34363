package services

import (
	"context"

	"github.com/devfolio/apiserver/internal/projection"
	"github.com/devfolio/apiserver/types"
)

// PortfolioRepository defines read access to the profile-side documents.
type PortfolioRepository interface {
	Profile(ctx context.Context) (types.ProfileDocument, error)
	TechStack(ctx context.Context) (types.TechStackDocument, error)
	Projects(ctx context.Context) (types.ProjectsDocument, error)
	Contributions(ctx context.Context) (types.ContributionsDocument, error)
	SiteConfig(ctx context.Context) (types.SiteConfigDocument, error)
}

// PortfolioService serves the public profile resources.
type PortfolioService struct {
	repo PortfolioRepository
}

func NewPortfolioService(repo PortfolioRepository) *PortfolioService {
	return &PortfolioService{repo: repo}
}

func (s *PortfolioService) Profile(ctx context.Context) (types.ProfileResponse, error) {
	doc, err := s.repo.Profile(ctx)
	if err != nil {
		return types.ProfileResponse{}, err
	}
	return projection.Profile(doc), nil
}

func (s *PortfolioService) TechStack(ctx context.Context) (types.TechStackResponse, error) {
	doc, err := s.repo.TechStack(ctx)
	if err != nil {
		return types.TechStackResponse{}, err
	}
	return projection.TechStack(doc), nil
}

func (s *PortfolioService) Projects(ctx context.Context) (types.ProjectsResponse, error) {
	doc, err := s.repo.Projects(ctx)
	if err != nil {
		return types.ProjectsResponse{}, err
	}
	return projection.Projects(doc), nil
}

func (s *PortfolioService) Contributions(ctx context.Context) (types.ContributionsResponse, error) {
	doc, err := s.repo.Contributions(ctx)
	if err != nil {
		return types.ContributionsResponse{}, err
	}
	return projection.Contributions(doc), nil
}

func (s *PortfolioService) SiteConfig(ctx context.Context) (types.SiteConfigResponse, error) {
	doc, err := s.repo.SiteConfig(ctx)
	if err != nil {
		return types.SiteConfigResponse{}, err
	}
	return projection.SiteConfig(doc), nil
}
