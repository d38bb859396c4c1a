package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/intentradar/intent-radar/app/api"
	"github.com/intentradar/intent-radar/app/cfg"
	"github.com/intentradar/intent-radar/app/config"
	"github.com/intentradar/intent-radar/app/database"
	"github.com/intentradar/intent-radar/app/feed"
	"github.com/intentradar/intent-radar/app/pipeline"
	sig "github.com/intentradar/intent-radar/app/signal"
	"github.com/intentradar/intent-radar/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Intent Radar", "version", appCfg.Version)

	// Database connection
	db, err := database.NewConnection(
		appCfg.DBHost, appCfg.DBPort, appCfg.DBUser,
		appCfg.DBPassword, appCfg.DBName)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "migration_version", version, "dirty", dirty)

	// Watch configuration: companies and signal rules. Missing or empty
	// configuration is the one fatal condition.
	watch, err := config.NewLoader(appCfg.WatchConfigPath).Load()
	if err != nil {
		slog.Error("Failed to load watch configuration", "path", appCfg.WatchConfigPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Watch configuration loaded",
		"companies", len(watch.Companies), "signals", len(watch.Signals), "source", watch.Source)

	// Core components
	repo := database.NewSignalRepository(db)
	detector := sig.NewDetector(watch.Companies)
	classifier := sig.NewClassifier(watch.Signals)
	builder := sig.NewBuilder(watch.Source)
	ingestion := pipeline.New(detector, classifier, builder, repo, watch.MinScore)

	httpClient := &http.Client{}
	fetcher := feed.NewFetcher(httpClient, feed.NewParser(), appCfg.UserAgent)

	// Background scheduler
	scheduler := tasks.NewScheduler(watch, fetcher, ingestion)
	scheduler.Start()
	defer scheduler.Stop()
	slog.Info("Background scheduler started",
		"workers", appCfg.WorkerCount, "interval_seconds", appCfg.SchedulerInterval)

	// HTTP server
	handler := api.NewHandler(repo, watch, scheduler)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-sigChan:
		slog.Info("Received signal", "signal", s.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Scheduler is stopped via defer
	slog.Info("Shutdown complete")
}
