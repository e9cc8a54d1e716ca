package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/pkg/compare"
	"github.com/neonhq/neon/pkg/database"
	"github.com/neonhq/neon/pkg/orchestrator"
	"github.com/neonhq/neon/pkg/scorer"
	"github.com/neonhq/neon/pkg/services"
)

// localProjectSlug scopes everything the CLI touches. The embedded
// store is single-tenant; the project row exists to satisfy the schema.
const localProjectSlug = "local"

// engine bundles the embedded store and the services over it.
type engine struct {
	client     *database.Client
	project    *ent.Project
	suites     *services.SuiteService
	runs       *services.RunService
	stats      *services.StatsService
	comparator *compare.Comparator
	scorers    *scorer.Registry
	orch       *orchestrator.Orchestrator
}

// openEngine opens the SQLite store and wires the local engine. The
// judge is configured from NEON_JUDGE_* when present.
func openEngine(ctx context.Context) (*engine, error) {
	client, err := database.NewSQLiteClient(ctx, storePath)
	if err != nil {
		return nil, err
	}

	projects := services.NewProjectService(client.Client)
	project, err := projects.EnsureProject(ctx, "Local", localProjectSlug)
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	var judge scorer.Judge
	if key := os.Getenv("NEON_JUDGE_API_KEY"); key != "" {
		judge = scorer.NewOpenAIJudge(scorer.JudgeConfig{
			APIKey:  key,
			BaseURL: os.Getenv("NEON_JUDGE_BASE_URL"),
			Model:   os.Getenv("NEON_JUDGE_MODEL"),
		})
	}

	suites := services.NewSuiteService(client.Client)
	runs := services.NewRunService(client.Client)
	scorers := scorer.NewDefaultRegistry(judge)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	orch := orchestrator.New(client.Client, runs, suites, nil, scorers, logger, orchestrator.Config{
		LocalSuiteScope:   true,
		HeartbeatInterval: 2 * time.Second,
	})

	return &engine{
		client:     client,
		project:    project,
		suites:     suites,
		runs:       runs,
		stats:      services.NewStatsService(client),
		comparator: compare.New(runs),
		scorers:    scorers,
		orch:       orch,
	}, nil
}

func (e *engine) Close() {
	_ = e.client.Close()
}
