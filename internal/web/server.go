// Package web serves the landing page, the server-rendered launch wizard
// and a small JSON API over the same wizard core.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/tokenstudio/tokenstudio/internal/config"
	"github.com/tokenstudio/tokenstudio/internal/observability"
	"github.com/tokenstudio/tokenstudio/internal/site"
)

// Server is the tokenstudio HTTP server.
type Server struct {
	cfg       *config.Config
	log       logr.Logger
	metrics   *observability.Metrics
	store     *Store
	templates *template.Template
	router    chi.Router
	now       func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(log logr.Logger) Option {
	return func(s *Server) { s.log = log }
}

// WithMetrics sets the metrics collectors.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithStore replaces the session store.
func WithStore(st *Store) Option {
	return func(s *Server) { s.store = st }
}

// WithNow sets the clock used for page content.
func WithNow(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New builds a server from cfg.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       cfg,
		log:       observability.NopLogger(),
		templates: tmpl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = observability.NewMetrics()
	}
	if s.store == nil {
		s.store = NewStore(cfg.Sessions.TTL, cfg.Sessions.Max, WithObserver(s.metrics))
	}

	s.router = s.routes()
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Store returns the session store.
func (s *Server) Store() *Store { return s.store }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Get("/", s.handleLanding)
	r.Route("/launch", func(r chi.Router) {
		r.Get("/", s.handleWizard)
		r.Post("/field", s.handleField)
		r.Post("/continue", s.handleAdvance("continue"))
		r.Post("/proceed", s.handleAdvance("proceed"))
		r.Post("/back", s.handleBack)
		r.Post("/launch", s.handleLaunch)
		r.Post("/another", s.handleAnother)
		r.Post("/close", s.handleClose)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/estimate", s.handleEstimate)
		r.Post("/preview", s.handlePreview)
		r.Post("/simulate", s.handleSimulate)
	})

	r.NotFound(s.handleNotFound)
	return r
}

// observe logs each request and records its metrics under the matched route pattern.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)

		s.metrics.RecordRequest(route, status, elapsed)
		s.log.V(1).Info("request served",
			"method", r.Method,
			"route", route,
			"status", status,
			"duration", elapsed,
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln and runs the session janitor until ctx is done, then
// shuts down gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.store.Run(gctx, s.cfg.Sessions.SweepInterval)
		return nil
	})

	g.Go(func() error {
		s.log.Info("server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.log.Info("shutting down server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func (s *Server) skin(r *http.Request) site.Skin {
	return site.SkinOrDefault(r.FormValue("skin"), site.SkinName(s.cfg.DefaultSkin))
}

func (s *Server) pageData(r *http.Request) pageData {
	skin := s.skin(r)
	return pageData{
		Page:    site.NewPage(s.now()),
		Skin:    skin,
		SkinCSS: skinCSS(skin),
	}
}
