// Package export prerenders every API resource and page payload to static
// JSON files, so the site can be served without a running API server.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devfolio/apiserver/internal/logger"
	"github.com/devfolio/apiserver/internal/pages"
	"github.com/devfolio/apiserver/internal/services"
)

// File is one exported artifact.
type File struct {
	// Path is relative to the output directory, using forward slashes.
	Path string
	Load func(ctx context.Context) (any, error)
}

func adapt[T any](load func(context.Context) (T, error)) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		return load(ctx)
	}
}

// Files lists every artifact in the layout mirrored from the HTTP routes.
func Files(portfolio *services.PortfolioService, dashboard *services.DashboardService, loader *pages.Loader) []File {
	return []File{
		{Path: "api/config.json", Load: adapt(portfolio.SiteConfig)},
		{Path: "api/profile.json", Load: adapt(portfolio.Profile)},
		{Path: "api/tech-stack.json", Load: adapt(portfolio.TechStack)},
		{Path: "api/projects.json", Load: adapt(portfolio.Projects)},
		{Path: "api/contributions.json", Load: adapt(portfolio.Contributions)},
		{Path: "api/dashboard/metrics.json", Load: adapt(dashboard.Metrics)},
		{Path: "api/dashboard/traffic.json", Load: adapt(dashboard.Traffic)},
		{Path: "api/dashboard/errors.json", Load: adapt(dashboard.Errors)},
		{Path: "api/dashboard/deployments.json", Load: adapt(dashboard.Deployments)},
		{Path: "pages/layout.json", Load: adapt(loader.Layout)},
		{Path: "pages/profile.json", Load: adapt(loader.ProfileView)},
		{Path: "pages/dashboard.json", Load: adapt(loader.DashboardView)},
	}
}

// Write renders files into outDir. It stops at the first failure.
func Write(ctx context.Context, outDir string, files []File, log *logger.Logger) error {
	for _, file := range files {
		value, err := file.Load(ctx)
		if err != nil {
			return fmt.Errorf("render %s: %w", file.Path, err)
		}

		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", file.Path, err)
		}

		target := filepath.Join(outDir, filepath.FromSlash(file.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", file.Path, err)
		}
		log.Debug("exported", "path", file.Path, "bytes", len(data))
	}

	log.Info("export complete", "dir", outDir, "files", len(files))
	return nil
}
