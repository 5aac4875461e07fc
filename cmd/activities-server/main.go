// cmd/activities-server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"mergington-activities/internal/activities"
	"mergington-activities/internal/api"
	"mergington-activities/internal/common/config"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/observability"
	"mergington-activities/pkg/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting activities server...",
		zap.String("app", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Seed the registry ---
	seed := registry.Default()
	if cfg.Registry.Path != "" {
		loaded, err := registry.LoadRegistry(cfg.Registry.Path)
		if err != nil {
			zapLog.Fatal("registry seed file failed", zap.String("path", cfg.Registry.Path), zap.Error(err))
		}
		seed = loaded
		zapLog.Info("registry seeded from file",
			zap.String("path", cfg.Registry.Path),
			zap.Int("activities", len(seed.Activities)),
		)
	} else {
		zapLog.Info("registry seeded with built-in activities", zap.Int("activities", len(seed.Activities)))
	}

	store := activities.NewStore(seed, log)

	// --- HTTP surface ---
	mux := http.NewServeMux()
	handler := api.NewHandler(store, log, obs, api.Config{
		StaticDir: cfg.Static.Dir,
		IndexPath: cfg.Static.IndexPath,
	})
	handler.RegisterRoutes(mux)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      mux,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
		IdleTimeout:  config.GetDuration(cfg.Server.IdleTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zapLog.Error("server shutdown error", zap.Error(err))
		os.Exit(1)
	}

	zapLog.Info("Server stopped")
}
