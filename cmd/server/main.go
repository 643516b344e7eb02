// Package main is the entry point for the roster server. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/activity-roster/internal/adapters/http"
	"github.com/jsamuelsen11/activity-roster/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/activity-roster/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/activity-roster/internal/adapters/memory"
	"github.com/jsamuelsen11/activity-roster/internal/app"
	"github.com/jsamuelsen11/activity-roster/internal/domain/activity"
	"github.com/jsamuelsen11/activity-roster/internal/platform/config"
	"github.com/jsamuelsen11/activity-roster/internal/platform/health"
	"github.com/jsamuelsen11/activity-roster/internal/platform/logging"
	"github.com/jsamuelsen11/activity-roster/internal/platform/telemetry"
	"github.com/jsamuelsen11/activity-roster/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	providers, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(providers, logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	registerDependencies(injector, cfg, logger)

	// Invoking the server wires the whole graph.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	store := do.MustInvoke[*memory.RosterStore](injector)
	do.MustInvoke[ports.HealthRegistry](injector).Register(store)

	if err := logRoster(context.Background(), store, logger, cfg.Roster.SeedFile, profile); err != nil {
		return err
	}

	// Bind first so a busy port fails startup instead of the goroutine.
	if err := server.Listen(); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

// logRoster reports the loaded roster size at startup.
func logRoster(ctx context.Context, store ports.RosterStore, logger *slog.Logger, seedFile, profile string) error {
	activities, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("reading seeded roster: %w", err)
	}
	logger.InfoContext(ctx, "roster loaded",
		slog.Int("activities", len(activities)),
		slog.String("seed_file", seedFile),
		slog.String("profile", profile),
	)
	return nil
}

func flushTelemetry(p *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := p.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*memory.RosterStore, error) {
		seed, err := loadSeed(cfg.Roster)
		if err != nil {
			return nil, err
		}
		return memory.NewRosterStore(seed)
	})

	do.Provide(injector, func(i do.Injector) (ports.RosterStore, error) {
		return do.MustInvoke[*memory.RosterStore](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RosterService, error) {
		store := do.MustInvoke[ports.RosterStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewRosterService(store, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Health.CheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ActivityHandler, error) {
		svc := do.MustInvoke[ports.RosterService](i)
		return handlers.NewActivityHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		activityH := do.MustInvoke[*handlers.ActivityHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(activityH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// loadSeed returns the configured seed file's activities, or the built-in
// roster when no seed file is set.
func loadSeed(cfg config.RosterConfig) ([]activity.Activity, error) {
	if cfg.SeedFile == "" {
		return memory.DefaultSeed(), nil
	}
	seed, err := memory.LoadSeed(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("loading seed file: %w", err)
	}
	return seed, nil
}
