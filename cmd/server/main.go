package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/skyfleet/starhunt/internal/api"
	"github.com/skyfleet/starhunt/internal/api/ws"
	"github.com/skyfleet/starhunt/internal/config"
	"github.com/skyfleet/starhunt/internal/factory"
)

func main() {
	// A local .env is optional; the real environment wins
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	// The event hub is the process's notifier: spawns and battle events
	// fan out to websocket subscribers
	hub := ws.NewHub(logger)
	go hub.Run()
	defer hub.Stop()

	app, err := factory.New(factory.FromEnv(cfg, logger, hub))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		CatalogService:    app.CatalogService,
		EconomyController: app.EconomyController,
		BattleEngine:      app.BattleEngine,
		SpawnerService:    app.SpawnerService,
		Slot:              app.Slot,
		Bus:               app.Bus,
		EventHub:          hub,
		AdminTokenHash:    cfg.AdminTokenHash,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Spawn scheduler runs for the life of the process
	go func() {
		if err := app.SpawnerService.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("spawner stopped", slog.String("error", err.Error()))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
