// Neon evaluation server — exposes the HTTP control plane, executes
// runs, and sweeps runs orphaned by crashed executors.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/neonhq/neon/pkg/api"
	"github.com/neonhq/neon/pkg/cleanup"
	"github.com/neonhq/neon/pkg/compare"
	"github.com/neonhq/neon/pkg/config"
	"github.com/neonhq/neon/pkg/database"
	"github.com/neonhq/neon/pkg/orchestrator"
	"github.com/neonhq/neon/pkg/scorer"
	"github.com/neonhq/neon/pkg/services"

	// Register the built-in stub agents.
	_ "github.com/neonhq/neon/pkg/agent/stubs"
)

func main() {
	envFile := flag.String("env-file", ".env", "Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	suiteService := services.NewSuiteService(dbClient.Client)
	runService := services.NewRunService(dbClient.Client)
	statsService := services.NewStatsService(dbClient)

	var judge scorer.Judge
	if cfg.JudgeAPIKey != "" {
		judge = scorer.NewOpenAIJudge(scorer.JudgeConfig{
			APIKey:  cfg.JudgeAPIKey,
			BaseURL: cfg.JudgeBaseURL,
			Model:   cfg.JudgeModel,
		})
		slog.Info("LLM judge configured", "model", cfg.JudgeModel)
	} else {
		slog.Warn("No judge API key set, LLM scorers run on deterministic fallbacks")
	}
	scorers := scorer.NewDefaultRegistry(judge)

	orch := orchestrator.New(dbClient.Client, runService, suiteService, nil, scorers, slog.Default(), orchestrator.Config{
		MaxParallelCases:  cfg.MaxParallelCases,
		HeartbeatInterval: cfg.HeartbeatInterval,
	})

	sweeper := cleanup.NewSweeper(runService, slog.Default(), cleanup.WithStaleAfter(cfg.StaleRunAfter))
	if err := sweeper.Start(ctx); err != nil {
		slog.Error("Failed to start stale-run sweeper", "error", err)
		os.Exit(1)
	}
	defer sweeper.Stop()

	comparator := compare.New(runService)
	server := api.NewServer(dbClient, suiteService, runService, statsService, orch, comparator, slog.Default())

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           server.Router(cfg.APIKeys),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Stop accepting requests, then let in-flight runs wind down. Runs
	// that outlive the budget are orphan-recovered by the next sweeper.
	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	runCtx, runCancel := context.WithTimeout(ctx, 30*time.Second)
	defer runCancel()
	if err := orch.Shutdown(runCtx); err != nil {
		slog.Warn("Shutdown timeout exceeded, unfinished runs will be orphan-recovered")
	}

	slog.Info("Shutdown complete")
}
