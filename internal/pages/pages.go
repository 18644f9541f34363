// Package pages assembles the server-side render payloads of the site pages.
//
// Every resource is obtained through the same services the /api endpoints use,
// gathered concurrently and joined before returning. A single failing resource
// fails the whole page; partial payloads are never returned.
package pages

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/devfolio/apiserver/internal/services"
	"github.com/devfolio/apiserver/types"
)

const tracerName = "github.com/devfolio/apiserver/internal/pages"

// Loader builds page payloads.
type Loader struct {
	portfolio *services.PortfolioService
	dashboard *services.DashboardService
	tracer    trace.Tracer
}

func NewLoader(portfolio *services.PortfolioService, dashboard *services.DashboardService) *Loader {
	return &Loader{
		portfolio: portfolio,
		dashboard: dashboard,
		tracer:    otel.Tracer(tracerName),
	}
}

// Layout returns the data shared by every page.
func (l *Loader) Layout(ctx context.Context) (types.LayoutData, error) {
	siteConfig, err := l.portfolio.SiteConfig(ctx)
	if err != nil {
		return types.LayoutData{}, fmt.Errorf("site config: %w", err)
	}
	return types.LayoutData{SiteConfig: siteConfig}, nil
}

// Profile gathers profile, tech stack, projects and contributions.
func (l *Loader) Profile(ctx context.Context) (types.ProfilePage, error) {
	ctx, span := l.tracer.Start(ctx, "pages.Profile")
	defer span.End()

	var page types.ProfilePage
	g, gctx := errgroup.WithContext(ctx)
	gather(g, gctx, l.tracer, "profile", l.portfolio.Profile, &page.Profile)
	gather(g, gctx, l.tracer, "tech_stack", l.portfolio.TechStack, &page.TechStack)
	gather(g, gctx, l.tracer, "projects", l.portfolio.Projects, &page.Projects)
	gather(g, gctx, l.tracer, "contributions", l.portfolio.Contributions, &page.Contributions)

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "profile page failed")
		return types.ProfilePage{}, err
	}
	return page, nil
}

// Dashboard gathers metrics, deployments, traffic and error logs.
func (l *Loader) Dashboard(ctx context.Context) (types.DashboardPage, error) {
	ctx, span := l.tracer.Start(ctx, "pages.Dashboard")
	defer span.End()

	var page types.DashboardPage
	g, gctx := errgroup.WithContext(ctx)
	gather(g, gctx, l.tracer, "metrics", l.dashboard.Metrics, &page.Metrics)
	gather(g, gctx, l.tracer, "deployments", l.dashboard.Deployments, &page.Deployments)
	gather(g, gctx, l.tracer, "traffic", l.dashboard.Traffic, &page.Traffic)
	gather(g, gctx, l.tracer, "errors", l.dashboard.Errors, &page.Errors)

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dashboard page failed")
		return types.DashboardPage{}, err
	}
	return page, nil
}

// ProfileView returns the profile page together with the layout data.
func (l *Loader) ProfileView(ctx context.Context) (types.PageResponse[types.ProfilePage], error) {
	return withLayout(ctx, l, l.Profile)
}

// DashboardView returns the dashboard page together with the layout data.
func (l *Loader) DashboardView(ctx context.Context) (types.PageResponse[types.DashboardPage], error) {
	return withLayout(ctx, l, l.Dashboard)
}

func withLayout[T any](ctx context.Context, l *Loader, load func(context.Context) (T, error)) (types.PageResponse[T], error) {
	var resp types.PageResponse[T]
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		layout, err := l.Layout(gctx)
		if err != nil {
			return err
		}
		resp.Layout = layout
		return nil
	})
	g.Go(func() error {
		data, err := load(gctx)
		if err != nil {
			return err
		}
		resp.Data = data
		return nil
	})
	if err := g.Wait(); err != nil {
		return types.PageResponse[T]{}, err
	}
	return resp, nil
}

// gather runs fetch on the group and stores its result in dst.
// Each goroutine writes a distinct field, so no locking is needed.
func gather[T any](g *errgroup.Group, ctx context.Context, tracer trace.Tracer, name string, fetch func(context.Context) (T, error), dst *T) {
	g.Go(func() error {
		ctx, span := tracer.Start(ctx, "pages.gather."+name)
		defer span.End()

		value, err := fetch(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = value
		return nil
	})
}
