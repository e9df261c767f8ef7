// Package server serves the project catalog over HTTP for local use and
// end-to-end testing of the client.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/folio/internal/catalog"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoAPIKey is returned when the server is started without a key to
// check requests against.
var ErrNoAPIKey = errors.New("FOLIO_API_KEY must be set to serve the catalog")

const shutdownTimeout = 5 * time.Second

// Config configures a Server.
type Config struct {
	Addr   string
	APIKey string
}

// Server is the catalog HTTP server.
type Server struct {
	cfg      Config
	projects repository.ProjectRepo
	log      *zap.Logger
}

// New creates a Server reading from projects.
func New(cfg Config, projects repository.ProjectRepo, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{cfg: cfg, projects: projects, log: log.Named("server")}
}

// Handler returns the full middleware chain and routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID, s.requestLog)

	r.Get("/health", s.health)
	r.Group(func(r chi.Router) {
		r.Use(s.apiKey)
		r.Get("/project", s.listProjects)
		r.Get("/project/{id}", s.getProject)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{catalog.APIKeyHeader, catalog.RequestIDHeader, "Accept"},
		ExposedHeaders: []string{catalog.RequestIDHeader},
	}).Handler(r)
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if s.cfg.APIKey == "" {
		return ErrNoAPIKey
	}
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("catalog listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("catalog shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
