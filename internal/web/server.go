// Package web exposes the converter over HTTP.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fixtureconv/internal/config"
	applog "fixtureconv/internal/log"
	"fixtureconv/internal/pipeline"
)

type Server struct {
	cfg    config.Config
	conv   *pipeline.Converter
	router chi.Router
}

func NewServer(cfg config.Config, conv *pipeline.Converter) *Server {
	s := &Server{cfg: cfg, conv: conv}
	s.router = s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(recoverer)
	r.Use(requestID)
	r.Use(accessLog)

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		if s.cfg.RateLimitPerMin > 0 {
			r.Use(rateLimit(s.cfg.RateLimitPerMin))
		}
		r.Get("/meta", s.handleMeta)
		r.Post("/preview", s.handlePreview)
		r.Post("/convert", s.handleConvert)
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight
// requests for up to 10 seconds.
func (s *Server) ListenAndServe(ctx context.Context) error {
	logger := applog.WithComponent("web")
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("listen", "http://"+s.cfg.ListenAddr).Str("version", s.cfg.AppVersion).Msg("starting HTTP server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
