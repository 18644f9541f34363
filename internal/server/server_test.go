package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/devfolio/apiserver/config"
	"github.com/devfolio/apiserver/internal/logger"
	"github.com/devfolio/apiserver/internal/store"
	"github.com/devfolio/apiserver/types"
)

func bundledConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		ServerPort:     18080,
		AllowedOrigins: []string{"https://folio.example"},
		Data: config.DataConfig{
			Backend: config.BackendFS,
			Dir:     filepath.Join("..", "..", "data"),
		},
	}
}

func TestNew_LoadsBundledDocuments(t *testing.T) {
	srv, err := New(context.Background(), bundledConfig(t), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/projects")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body types.ProjectsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Featured)
	for _, project := range body.Featured {
		assert.LessOrEqual(t, len(project.TechStack), types.MaxProjectTechBadges)
	}
}

func TestNew_FailsOnMissingDocuments(t *testing.T) {
	cfg := bundledConfig(t)
	cfg.Data.Dir = t.TempDir()

	_, err := New(context.Background(), cfg, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestServer_HealthzAndAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	srv := NewWithRepository(bundledConfig(t), store.New(store.Documents{}), logger.FromZap(zap.New(core)))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/healthz", entries[0].ContextMap()["path"])
	assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])
}

func TestServer_CORSPreflight(t *testing.T) {
	srv := NewWithRepository(bundledConfig(t), store.New(store.Documents{}), logger.Nop())

	req := httptest.NewRequest(http.MethodOptions, "/api/dashboard/traffic", nil)
	req.Header.Set("Origin", "https://folio.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "https://folio.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_MissingDocumentIsServerError(t *testing.T) {
	srv := NewWithRepository(bundledConfig(t), store.New(store.Documents{}), logger.Nop())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_Routes(t *testing.T) {
	srv := NewWithRepository(bundledConfig(t), store.New(store.Documents{}), logger.Nop())

	var routes []string
	err := chi.Walk(srv.Router(), func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if method == http.MethodGet {
			routes = append(routes, route)
		}
		return nil
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"/healthz",
		"/api/config",
		"/api/profile",
		"/api/tech-stack",
		"/api/projects",
		"/api/contributions",
		"/api/dashboard/metrics",
		"/api/dashboard/traffic",
		"/api/dashboard/errors",
		"/api/dashboard/deployments",
		"/pages/layout",
		"/pages/profile",
		"/pages/dashboard",
	}, routes)
}

func TestServer_HeadRequests(t *testing.T) {
	srv := NewWithRepository(bundledConfig(t), store.New(store.Documents{}), logger.Nop())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
