package pages

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/devfolio/apiserver/internal/services"
	"github.com/devfolio/apiserver/internal/store"
	"github.com/devfolio/apiserver/types"
)

func decode[T any](raw string) *T {
	doc := new(T)
	if err := json.Unmarshal([]byte(raw), doc); err != nil {
		panic(err)
	}
	return doc
}

func fixtureDocuments() store.Documents {
	return store.Documents{
		Profile:          decode[types.ProfileDocument](`{"personal": {"full_name": "Alex Rivera", "phone": "+351"}}`),
		TechStack:        decode[types.TechStackDocument](`{"categories": [{"id": "backend"}, {"id": "frontend"}]}`),
		Projects:         decode[types.ProjectsDocument](`{"featured": [{"id": "ledger", "tech_stack": ["1", "2", "3", "4", "5", "6"]}]}`),
		Contributions:    decode[types.ContributionsDocument](`{"year": 2024, "weekly": [{"week":1},{"week":2}]}`),
		SiteConfig:       decode[types.SiteConfigDocument](`{"site": {"title": "Folio"}}`),
		DashboardMetrics: decode[types.DashboardMetricsDocument](`{"overview": {"visits": 3}}`),
		Traffic:          decode[types.TrafficDocument](`{"monthly": []}`),
		ErrorLogs:        decode[types.ErrorLogsDocument](`{"recent": [{"id": "e1"}]}`),
		Deployments: decode[types.DeploymentsDocument](`{"deployments": [
			{"id": "dep-1"},
			{"id": "dep-2", "status_message": "Rolling back"}
		]}`),
	}
}

func newLoader(docs store.Documents) (*Loader, *services.PortfolioService, *services.DashboardService) {
	repo := store.New(docs)
	portfolio := services.NewPortfolioService(repo)
	dashboard := services.NewDashboardService(repo)
	return NewLoader(portfolio, dashboard), portfolio, dashboard
}

func topLevelKeys(t *testing.T, v any) []string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestLoader_Profile(t *testing.T) {
	ctx := context.Background()
	loader, portfolio, _ := newLoader(fixtureDocuments())

	page, err := loader.Profile(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"contributions", "profile", "projects", "tech_stack"}, topLevelKeys(t, page))

	profile, err := portfolio.Profile(ctx)
	require.NoError(t, err)
	techStack, err := portfolio.TechStack(ctx)
	require.NoError(t, err)
	projects, err := portfolio.Projects(ctx)
	require.NoError(t, err)
	contributions, err := portfolio.Contributions(ctx)
	require.NoError(t, err)

	assert.Equal(t, profile, page.Profile)
	assert.Equal(t, techStack, page.TechStack)
	assert.Equal(t, projects, page.Projects)
	assert.Equal(t, contributions, page.Contributions)
	assert.Len(t, page.Projects.Featured[0].TechStack, types.MaxProjectTechBadges)
}

func TestLoader_Dashboard(t *testing.T) {
	ctx := context.Background()
	loader, _, dashboard := newLoader(fixtureDocuments())

	page, err := loader.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"deployments", "errors", "metrics", "traffic"}, topLevelKeys(t, page))

	metrics, err := dashboard.Metrics(ctx)
	require.NoError(t, err)
	deployments, err := dashboard.Deployments(ctx)
	require.NoError(t, err)
	traffic, err := dashboard.Traffic(ctx)
	require.NoError(t, err)
	errorLogs, err := dashboard.Errors(ctx)
	require.NoError(t, err)

	assert.Equal(t, metrics, page.Metrics)
	assert.Equal(t, deployments, page.Deployments)
	assert.Equal(t, traffic, page.Traffic)
	assert.Equal(t, errorLogs, page.Errors)
	assert.Nil(t, page.Deployments.Deployments[0].StatusMessage)
}

func TestLoader_ProfileFailsFast(t *testing.T) {
	tests := []struct {
		name   string
		remove func(*store.Documents)
		key    string
	}{
		{name: "profile", remove: func(d *store.Documents) { d.Profile = nil }, key: "profile"},
		{name: "tech stack", remove: func(d *store.Documents) { d.TechStack = nil }, key: "tech_stack"},
		{name: "projects", remove: func(d *store.Documents) { d.Projects = nil }, key: "projects"},
		{name: "contributions", remove: func(d *store.Documents) { d.Contributions = nil }, key: "contributions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := fixtureDocuments()
			tt.remove(&docs)
			loader, _, _ := newLoader(docs)

			page, err := loader.Profile(context.Background())

			require.Error(t, err)
			assert.True(t, errors.Is(err, store.ErrNotFound))
			assert.Contains(t, err.Error(), tt.key)
			assert.Equal(t, types.ProfilePage{}, page)
		})
	}
}

func TestLoader_DashboardFailsFast(t *testing.T) {
	tests := []struct {
		name   string
		remove func(*store.Documents)
	}{
		{name: "metrics", remove: func(d *store.Documents) { d.DashboardMetrics = nil }},
		{name: "deployments", remove: func(d *store.Documents) { d.Deployments = nil }},
		{name: "traffic", remove: func(d *store.Documents) { d.Traffic = nil }},
		{name: "errors", remove: func(d *store.Documents) { d.ErrorLogs = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := fixtureDocuments()
			tt.remove(&docs)
			loader, _, _ := newLoader(docs)

			page, err := loader.Dashboard(context.Background())

			require.Error(t, err)
			assert.True(t, errors.Is(err, store.ErrNotFound))
			assert.Equal(t, types.DashboardPage{}, page)
		})
	}
}

func TestLoader_Views(t *testing.T) {
	ctx := context.Background()
	loader, _, _ := newLoader(fixtureDocuments())

	profileView, err := loader.ProfileView(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Folio"}`, string(profileView.Layout.SiteConfig.Site))
	assert.JSONEq(t, `"Alex Rivera"`, string(profileView.Data.Profile.Personal.FullName))
	assert.Equal(t, []string{"data", "layout"}, topLevelKeys(t, profileView))

	dashboardView, err := loader.DashboardView(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"visits":3}`, string(dashboardView.Data.Metrics.Overview))
}

func TestLoader_ViewFailsWithoutLayout(t *testing.T) {
	docs := fixtureDocuments()
	docs.SiteConfig = nil
	loader, _, _ := newLoader(docs)

	view, err := loader.ProfileView(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "site config")
	assert.Equal(t, types.PageResponse[types.ProfilePage]{}, view)
}

func TestLoader_TracesGathers(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	loader, _, _ := newLoader(fixtureDocuments())
	loader.tracer = provider.Tracer("test")

	_, err := loader.Dashboard(context.Background())
	require.NoError(t, err)

	var names []string
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}
	assert.ElementsMatch(t, []string{
		"pages.Dashboard",
		"pages.gather.metrics",
		"pages.gather.deployments",
		"pages.gather.traffic",
		"pages.gather.errors",
	}, names)
}

// barrier releases its callers only once n of them are waiting at the same time.
type barrier struct {
	wg      sync.WaitGroup
	all     chan struct{}
	timeout time.Duration
}

func newBarrier(n int) *barrier {
	b := &barrier{all: make(chan struct{}), timeout: 2 * time.Second}
	b.wg.Add(n)
	go func() {
		b.wg.Wait()
		close(b.all)
	}()
	return b
}

func (b *barrier) arrive(ctx context.Context) error {
	b.wg.Done()
	select {
	case <-b.all:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(b.timeout):
		return errors.New("reads were not in flight together")
	}
}

// overlapRepository blocks the page reads on a barrier before delegating to the documents.
type overlapRepository struct {
	*store.DocumentRepository
	profile   *barrier
	dashboard *barrier
}

func wait(ctx context.Context, b *barrier) error {
	if b == nil {
		return nil
	}
	return b.arrive(ctx)
}

func (r overlapRepository) Profile(ctx context.Context) (types.ProfileDocument, error) {
	if err := wait(ctx, r.profile); err != nil {
		return types.ProfileDocument{}, err
	}
	return r.DocumentRepository.Profile(ctx)
}

func (r overlapRepository) TechStack(ctx context.Context) (types.TechStackDocument, error) {
	if err := wait(ctx, r.profile); err != nil {
		return types.TechStackDocument{}, err
	}
	return r.DocumentRepository.TechStack(ctx)
}

func (r overlapRepository) Projects(ctx context.Context) (types.ProjectsDocument, error) {
	if err := wait(ctx, r.profile); err != nil {
		return types.ProjectsDocument{}, err
	}
	return r.DocumentRepository.Projects(ctx)
}

func (r overlapRepository) Contributions(ctx context.Context) (types.ContributionsDocument, error) {
	if err := wait(ctx, r.profile); err != nil {
		return types.ContributionsDocument{}, err
	}
	return r.DocumentRepository.Contributions(ctx)
}

func (r overlapRepository) DashboardMetrics(ctx context.Context) (types.DashboardMetricsDocument, error) {
	if err := wait(ctx, r.dashboard); err != nil {
		return types.DashboardMetricsDocument{}, err
	}
	return r.DocumentRepository.DashboardMetrics(ctx)
}

func (r overlapRepository) Traffic(ctx context.Context) (types.TrafficDocument, error) {
	if err := wait(ctx, r.dashboard); err != nil {
		return types.TrafficDocument{}, err
	}
	return r.DocumentRepository.Traffic(ctx)
}

func (r overlapRepository) ErrorLogs(ctx context.Context) (types.ErrorLogsDocument, error) {
	if err := wait(ctx, r.dashboard); err != nil {
		return types.ErrorLogsDocument{}, err
	}
	return r.DocumentRepository.ErrorLogs(ctx)
}

func (r overlapRepository) Deployments(ctx context.Context) (types.DeploymentsDocument, error) {
	if err := wait(ctx, r.dashboard); err != nil {
		return types.DeploymentsDocument{}, err
	}
	return r.DocumentRepository.Deployments(ctx)
}

func TestLoader_GathersRunConcurrently(t *testing.T) {
	t.Run("profile", func(t *testing.T) {
		repo := overlapRepository{DocumentRepository: store.New(fixtureDocuments()), profile: newBarrier(4)}
		loader := NewLoader(services.NewPortfolioService(repo), services.NewDashboardService(repo))

		page, err := loader.Profile(context.Background())

		require.NoError(t, err)
		assert.Len(t, page.TechStack.Categories, 2)
	})

	t.Run("dashboard", func(t *testing.T) {
		repo := overlapRepository{DocumentRepository: store.New(fixtureDocuments()), dashboard: newBarrier(4)}
		loader := NewLoader(services.NewPortfolioService(repo), services.NewDashboardService(repo))

		page, err := loader.Dashboard(context.Background())

		require.NoError(t, err)
		assert.Len(t, page.Deployments.Deployments, 2)
	})
}
