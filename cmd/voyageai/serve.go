package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/voyageai/voyageai/cache"
	"github.com/voyageai/voyageai/config"
	"github.com/voyageai/voyageai/dbsession"
	"github.com/voyageai/voyageai/logging"
	"github.com/voyageai/voyageai/memory"
	"github.com/voyageai/voyageai/pipeline"
	"github.com/voyageai/voyageai/server"
	"github.com/voyageai/voyageai/service"
	"github.com/voyageai/voyageai/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP planning API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	settings, err := config.Load(configFile)
	if err != nil {
		return err
	}

	logger := logging.New(settings.AppName, logging.Options{
		Level:  settings.LogLevel,
		Format: settings.LogFormat,
	})

	if err := telemetry.Init(settings.AppName); err != nil {
		logger.Warn("Telemetry init failed; continuing without tracing",
			map[string]interface{}{"error": err.Error()})
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		telemetry.Shutdown(ctx)
	}()

	startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Redis is optional on both collaborators; the service degrades to
	// in-process equivalents when no URL is configured or reachable.
	var planCache cache.Cache
	var store memory.VectorStore
	if settings.RedisURL != "" {
		rc, err := cache.NewRedisCache(startCtx, settings.RedisURL)
		if err != nil {
			logger.Warn("Redis cache unavailable; using in-memory cache",
				map[string]interface{}{"error": err.Error()})
		} else {
			planCache = rc
			defer rc.Close()
		}
		rs, err := memory.NewRedisStore(startCtx, settings.RedisURL, "voyageai:memory")
		if err != nil {
			logger.Warn("Redis memory store unavailable; using in-memory store",
				map[string]interface{}{"error": err.Error()})
		} else {
			store = rs
			defer rs.Close()
		}
	}
	if planCache == nil {
		planCache = cache.NewInMemoryCache(0)
	}
	if store == nil {
		store = memory.NewInMemoryStore()
	}

	// The session is surfaced through /health only; planning never
	// touches the database.
	var db server.DBPinger
	if settings.DatabaseURL != "" {
		session, err := dbsession.Open(startCtx, settings.DatabaseURL)
		if err != nil {
			logger.Warn("Database unavailable",
				map[string]interface{}{"error": err.Error()})
		} else {
			defer session.Close()
			db = session
		}
	}

	executor := pipeline.NewExecutor(pipeline.Deps{
		Memory:   store,
		Embedder: memory.DeterministicEmbedder{},
		Logger:   logger,
	})
	svc := service.New(executor, planCache, settings.CacheTTL, logger)
	srv := server.New(settings, svc, db, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-sigCh:
		logger.Info("Shutting down", map[string]interface{}{"signal": sig.String()})
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}
