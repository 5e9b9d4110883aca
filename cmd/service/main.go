// Package main runs the MDA landing site server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/web3infra-foundation/mda-site/internal/adapters/http"
	"github.com/web3infra-foundation/mda-site/internal/adapters/http/handlers"
	"github.com/web3infra-foundation/mda-site/internal/platform/telemetry"
	"github.com/web3infra-foundation/mda-site/internal/ports"
	"github.com/web3infra-foundation/mda-site/internal/site"
)

// Build-time variables, injected via ldflags:
//
//	go build -ldflags "-X main.Version=0.1.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := site.LoadConfig(site.Profile())
	if err != nil {
		return err
	}

	logger := site.Logger(cfg)

	logger.Info("starting mda-site",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if err := telProvider.Shutdown(ctx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	pages := site.PageService(&cfg.Site)

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(pages); err != nil {
		return fmt.Errorf("registering landing page health check: %w", err)
	}

	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		ServiceName:    cfg.Telemetry.ServiceName,
		LandingHandler: handlers.NewLandingHandler(pages),
		HealthHandler:  handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime)),
		RequestTimeout: cfg.Server.RequestTimeout,
		Telemetry:      telProvider.Enabled(),
	})

	return waitForShutdown(ctx, logger, server, server.Start(), cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until SIGINT/SIGTERM or a server error, then drains
// in-flight requests within shutdownTimeout.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		return nil

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
