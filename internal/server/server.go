package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/devfolio/apiserver/config"
	"github.com/devfolio/apiserver/internal/handlers"
	"github.com/devfolio/apiserver/internal/logger"
	"github.com/devfolio/apiserver/internal/pages"
	"github.com/devfolio/apiserver/internal/services"
	"github.com/devfolio/apiserver/internal/storage"
	"github.com/devfolio/apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	storage    *storage.Storage
	log        *logger.Logger
}

// New opens the configured document backend, loads every document once and
// wires the routes.
func New(ctx context.Context, cfg config.Config, log *logger.Logger) (*Server, error) {
	st, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repo, err := store.Load(ctx, st, log.With("component", "store"))
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("load documents: %w", err)
	}

	srv := NewWithRepository(cfg, repo, log)
	srv.storage = st
	return srv, nil
}

// Repository is the full read surface the routes depend on.
type Repository interface {
	services.PortfolioRepository
	services.DashboardRepository
}

// NewWithRepository wires the routes over an already loaded repository.
func NewWithRepository(cfg config.Config, repo Repository, log *logger.Logger) *Server {
	portfolioService := services.NewPortfolioService(repo)
	dashboardService := services.NewDashboardService(repo)
	pageLoader := pages.NewLoader(portfolioService, dashboardService)

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(log.With("component", "http")),
		middleware.Recoverer,
		middleware.Timeout(timeout),
		middleware.GetHead,
		cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/api", func(r chi.Router) {
		handlers.PortfolioRouter(r, portfolioService, log)
		r.Route("/dashboard", func(r chi.Router) {
			handlers.DashboardRouter(r, dashboardService, log)
		})
	})
	router.Route("/pages", func(r chi.Router) {
		handlers.PageRouter(r, pageLoader, log)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      otelhttp.NewHandler(router, "apiserver"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		log:        log,
	}
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Handler returns the fully wrapped root handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the HTTP server. It returns nil after a graceful shutdown.
func (s *Server) Start() error {
	s.log.Info("server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if s.storage != nil {
		_ = s.storage.Close()
	}
	return err
}
