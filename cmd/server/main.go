package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/rebirth/internal/api"
	"github.com/mcoot/rebirth/internal/catalog"
	"github.com/mcoot/rebirth/internal/config"
	"github.com/mcoot/rebirth/internal/factory"
	redisstorage "github.com/mcoot/rebirth/internal/storage/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Error("failed to load catalog",
			slog.String("path", cfg.CatalogPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	// Already validated by config.Load
	loc, _ := cfg.Location()

	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		SQLitePath:  cfg.SQLitePath,
		Catalog:     cat,
		Location:    loc,
	}
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application",
			slog.String("storage", cfg.StorageType),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	defer func() {
		if err := app.Storage.Close(); err != nil {
			logger.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	router := api.NewRouter(api.RouterConfig{
		Logger:     logger,
		Identities: app.IdentityService,
		Schedule:   app.Scheduler,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	app.Scheduler.Start()
	logger.Info("reset scheduled",
		slog.String("timezone", loc.String()),
		slog.Time("next_reset", app.Scheduler.NextReset()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", cfg.StorageType),
	)

	exitCode := 0
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			exitCode = 1
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			exitCode = 1
		}
	}

	app.Scheduler.Stop()
	logger.Info("server stopped")

	if exitCode != 0 {
		_ = app.Storage.Close()
		os.Exit(exitCode)
	}
}
