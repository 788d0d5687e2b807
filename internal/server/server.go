// Package server exposes the analytics operations over HTTP. It is thin
// boundary glue: it validates and types raw request parameters, calls the
// engine, and maps engine errors onto status codes. The index is built
// before the listener starts, so handlers only ever read shared state.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/ppiankov/tagtrend/internal/analytics"
	"github.com/ppiankov/tagtrend/internal/model"
)

// Server serves the tagtrend query API.
type Server struct {
	engine   *analytics.Engine
	cfg      model.ServerConfig
	validate *validator.Validate
}

// New creates a Server around an engine.
func New(engine *analytics.Engine, cfg model.ServerConfig) *Server {
	return &Server{
		engine:   engine,
		cfg:      cfg,
		validate: validator.New(),
	}
}

// Router assembles the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/top", s.handleTop)
		r.Get("/stats", s.handleStats)
		r.Get("/ship", s.handleShip)
		r.Get("/drivers", s.handleDrivers)
		r.Get("/compare", s.handleCompare)
	})
	return r
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.WriteTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// statusFor maps engine errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, analytics.ErrYearOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, analytics.ErrTagNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
