// Package server exposes the HTTP API: recommendations, catalog browsing,
// the chat assistant and the office directory.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Daniel-Abiy/AfriDesk/internal/assistant"
	"github.com/Daniel-Abiy/AfriDesk/internal/catalog"
	"github.com/Daniel-Abiy/AfriDesk/internal/offices"
	"github.com/Daniel-Abiy/AfriDesk/internal/recommend"
	"github.com/Daniel-Abiy/AfriDesk/internal/session"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps are the collaborators the API serves.
type Deps struct {
	Catalog     *catalog.Catalog
	Recommender *recommend.Recommender
	Assistant   *assistant.Assistant
	Offices     *offices.Directory
	Sessions    *session.Store
	Logger      *zap.Logger
	Version     string
}

// Server is the HTTP front of the application.
type Server struct {
	deps   Deps
	router chi.Router
}

// New builds the server and mounts all routes.
func New(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	s := &Server{deps: deps}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(deps.Logger))

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommendations", s.handleRecommendations)
		r.Get("/catalog", s.handleCatalog)
		r.Get("/catalog/{country}", s.handleCatalogCountry)
		r.Post("/chat", s.handleChat)
		r.Get("/offices", s.handleOffices)
	})

	s.router = r
	return s
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.deps.Logger.Info("http server listening", zap.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.deps.Logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
