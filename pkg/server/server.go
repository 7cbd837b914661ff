// Package server exposes extraction and measurement over HTTP.
//
// Routes:
//
//	GET  /healthz      liveness and build information
//	POST /v1/rects     document → {"rects": [...]}
//	POST /v1/measure   {"document", "selected", "target"} → marks
//
// Every response carries an X-Request-ID header, taken from the request when
// present and generated otherwise. Failures are rendered as
//
//	{"error": {"code": "NOT_FOUND", "message": "no rectangle matches \"x\""}}
//
// with the HTTP status derived from the error code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/handoff/pkg/config"
	"github.com/matzehuels/handoff/pkg/pipeline"
)

// shutdownTimeout bounds graceful shutdown once the serve context ends.
const shutdownTimeout = 5 * time.Second

// Server serves the HTTP API.
type Server struct {
	opts   config.Options
	logger *log.Logger
	runner *pipeline.Runner
	router *chi.Mux
}

// New creates a server. opts should already have defaults applied; a nil
// logger uses log.Default().
func New(opts config.Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		opts:   opts,
		logger: logger,
		runner: pipeline.NewRunner(logger),
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(MaxBody(opts.Server.MaxBodyBytes))
	s.RegisterHTTP(r)
	s.router = r
	return s
}

// RegisterHTTP mounts the API routes on r.
func (s *Server) RegisterHTTP(r chi.Router) {
	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/rects", s.handleRects)
		r.Post("/measure", s.handleMeasure)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errNoRoute(r))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errMethod(r))
	})
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.opts.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  s.opts.Server.ReadTimeout,
		WriteTimeout: s.opts.Server.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
