package handlers

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/tokenstudio/tokenstudio/internal/config"
	"github.com/tokenstudio/tokenstudio/internal/observability"
	"github.com/tokenstudio/tokenstudio/internal/web"
)

// Factory function variables for serve - can be replaced in tests.
var (
	// loadConfig reads the file and environment configuration.
	loadConfig = config.Load

	// newLogger builds the process logger.
	newLogger = observability.NewLogger

	// runServer serves until ctx is done.
	runServer = func(ctx context.Context, srv *web.Server) error {
		return srv.Run(ctx)
	}
)

// Serve runs the web server until SIGINT or SIGTERM.
func Serve(ctx context.Context, configPath, addr string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if addr != "" {
		cfg.Addr = addr
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}

	log, err := newLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	metrics := observability.NewMetrics()
	srv, err := web.New(cfg, web.WithLogger(log), web.WithMetrics(metrics))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting tokenstudio",
		"addr", cfg.Addr,
		"session_ttl", cfg.Sessions.TTL.String(),
		"max_sessions", cfg.Sessions.Max,
		"default_skin", cfg.DefaultSkin,
	)
	if err := runServer(ctx, srv); err != nil {
		return err
	}
	log.Info("tokenstudio stopped")
	return nil
}
