package store

import (
	"context"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/devfolio/apiserver/internal/logger"
	"github.com/devfolio/apiserver/internal/storage"
	"github.com/devfolio/apiserver/types"
)

// Document keys in the persisted layout.
const (
	KeyProfile          = "profile.json"
	KeyTechStack        = "tech_stack.json"
	KeyProjects         = "projects.json"
	KeyContributions    = "contributions.json"
	KeySiteConfig       = "site_config.json"
	KeyDashboardMetrics = "dashboard/metrics.json"
	KeyTraffic          = "dashboard/traffic.json"
	KeyErrorLogs        = "dashboard/errors.json"
	KeyDeployments      = "dashboard/deployments.json"
)

// DocumentKeys lists every document the store loads.
var DocumentKeys = []string{
	KeyProfile,
	KeyTechStack,
	KeyProjects,
	KeyContributions,
	KeySiteConfig,
	KeyDashboardMetrics,
	KeyTraffic,
	KeyErrorLogs,
	KeyDeployments,
}

// Reader is the read side of the object storage the documents live in.
type Reader interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// Documents is a decoded document set. Nil entries are reported as ErrNotFound.
type Documents struct {
	Profile          *types.ProfileDocument
	TechStack        *types.TechStackDocument
	Projects         *types.ProjectsDocument
	Contributions    *types.ContributionsDocument
	SiteConfig       *types.SiteConfigDocument
	DashboardMetrics *types.DashboardMetricsDocument
	Traffic          *types.TrafficDocument
	ErrorLogs        *types.ErrorLogsDocument
	Deployments      *types.DeploymentsDocument
}

// DocumentRepository serves the documents loaded at startup.
// The set is never mutated after construction, so reads need no locking.
type DocumentRepository struct {
	docs Documents
}

// New wraps an already decoded document set.
func New(docs Documents) *DocumentRepository {
	return &DocumentRepository{docs: docs}
}

// Load reads and decodes every document concurrently. Any missing or
// malformed document fails the whole load.
func Load(ctx context.Context, r Reader, log *logger.Logger) (*DocumentRepository, error) {
	var docs Documents
	g, gctx := errgroup.WithContext(ctx)

	load := func(key string, dst any) {
		g.Go(func() error {
			if err := decode(gctx, r, key, dst); err != nil {
				return err
			}
			log.Debug("document loaded", "key", key)
			return nil
		})
	}

	docs.Profile = new(types.ProfileDocument)
	load(KeyProfile, docs.Profile)
	docs.TechStack = new(types.TechStackDocument)
	load(KeyTechStack, docs.TechStack)
	docs.Projects = new(types.ProjectsDocument)
	load(KeyProjects, docs.Projects)
	docs.Contributions = new(types.ContributionsDocument)
	load(KeyContributions, docs.Contributions)
	docs.SiteConfig = new(types.SiteConfigDocument)
	load(KeySiteConfig, docs.SiteConfig)
	docs.DashboardMetrics = new(types.DashboardMetricsDocument)
	load(KeyDashboardMetrics, docs.DashboardMetrics)
	docs.Traffic = new(types.TrafficDocument)
	load(KeyTraffic, docs.Traffic)
	docs.ErrorLogs = new(types.ErrorLogsDocument)
	load(KeyErrorLogs, docs.ErrorLogs)
	docs.Deployments = new(types.DeploymentsDocument)
	load(KeyDeployments, docs.Deployments)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("document store loaded", "documents", len(DocumentKeys))
	return New(docs), nil
}

func decode(ctx context.Context, r Reader, key string, dst any) error {
	rc, err := r.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return errors.Wrapf(ErrNotFound, "document %s", key)
		}
		return errors.Wrapf(err, "failed to read document %s", key)
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return errors.Wrapf(err, "failed to read document %s", key)
	}
	// Unmarshal, unlike a streaming decoder, rejects trailing data after the value.
	if err := json.Unmarshal(body, dst); err != nil {
		return errors.Wrapf(err, "failed to parse document %s", key)
	}
	return nil
}

func get[T any](doc *T, key string) (T, error) {
	if doc == nil {
		var zero T
		return zero, errors.Wrapf(ErrNotFound, "document %s", key)
	}
	return *doc, nil
}

func (r *DocumentRepository) Profile(ctx context.Context) (types.ProfileDocument, error) {
	return get(r.docs.Profile, KeyProfile)
}

func (r *DocumentRepository) TechStack(ctx context.Context) (types.TechStackDocument, error) {
	return get(r.docs.TechStack, KeyTechStack)
}

func (r *DocumentRepository) Projects(ctx context.Context) (types.ProjectsDocument, error) {
	return get(r.docs.Projects, KeyProjects)
}

func (r *DocumentRepository) Contributions(ctx context.Context) (types.ContributionsDocument, error) {
	return get(r.docs.Contributions, KeyContributions)
}

func (r *DocumentRepository) SiteConfig(ctx context.Context) (types.SiteConfigDocument, error) {
	return get(r.docs.SiteConfig, KeySiteConfig)
}

func (r *DocumentRepository) DashboardMetrics(ctx context.Context) (types.DashboardMetricsDocument, error) {
	return get(r.docs.DashboardMetrics, KeyDashboardMetrics)
}

func (r *DocumentRepository) Traffic(ctx context.Context) (types.TrafficDocument, error) {
	return get(r.docs.Traffic, KeyTraffic)
}

func (r *DocumentRepository) ErrorLogs(ctx context.Context) (types.ErrorLogsDocument, error) {
	return get(r.docs.ErrorLogs, KeyErrorLogs)
}

func (r *DocumentRepository) Deployments(ctx context.Context) (types.DeploymentsDocument, error) {
	return get(r.docs.Deployments, KeyDeployments)
}
