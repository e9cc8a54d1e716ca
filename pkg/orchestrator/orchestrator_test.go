package orchestrator

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/ent/result"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/pkg/agent"
	"github.com/neonhq/neon/pkg/database"
	"github.com/neonhq/neon/pkg/models"
	"github.com/neonhq/neon/pkg/scorer"
	"github.com/neonhq/neon/pkg/services"
	testdb "github.com/neonhq/neon/test/database"
)

type orchFixture struct {
	db       *database.Client
	suites   *services.SuiteService
	runs     *services.RunService
	registry *agent.Registry
	orch     *Orchestrator
	proj     *ent.Project
}

func newOrchFixture(t *testing.T) *orchFixture {
	t.Helper()
	ctx := context.Background()
	db := testdb.NewSQLiteTestDB(t)

	projects := services.NewProjectService(db.Client)
	proj, err := projects.CreateProject(ctx, models.CreateProjectRequest{Name: "Orch", Slug: "orch"})
	require.NoError(t, err)

	suites := services.NewSuiteService(db.Client)
	runs := services.NewRunService(db.Client)
	registry := agent.NewRegistry()

	f := &orchFixture{
		db:       db,
		suites:   suites,
		runs:     runs,
		registry: registry,
		proj:     proj,
	}
	f.orch = New(db.Client, runs, suites, agent.NewLoader(registry),
		scorer.NewDefaultRegistry(nil),
		slog.New(slog.DiscardHandler),
		Config{HeartbeatInterval: 50 * time.Millisecond})
	return f
}

func (f *orchFixture) seedSuite(t *testing.T, req models.CreateSuiteRequest, cases ...models.CreateCaseRequest) *ent.Suite {
	t.Helper()
	ctx := context.Background()
	st, err := f.suites.CreateSuite(ctx, f.proj.ID, req)
	require.NoError(t, err)
	for _, c := range cases {
		_, err := f.suites.CreateCase(ctx, f.proj.ID, st.ID, c)
		require.NoError(t, err)
	}
	return st
}

func (f *orchFixture) registerSearchAgent() {
	f.registry.Register("test.agents", "Search", agent.Func(
		func(ctx context.Context, query string, contextMap map[string]interface{}) (*agent.AgentOutput, error) {
			return &agent.AgentOutput{
				Output:      "resolved: " + query,
				ToolsCalled: []string{"search"},
			}, nil
		}))
}

// waitForStatus polls until the run reaches the wanted status or the
// deadline expires.
func (f *orchFixture) waitForStatus(t *testing.T, runID string, want run.Status) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		rn, err := f.runs.GetRun(context.Background(), f.proj.ID, runID)
		require.NoError(t, err)
		if rn.Status == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("run %s never reached status %s", runID, want)
}

func TestExecute_HappyPath(t *testing.T) {
	f := newOrchFixture(t)
	f.registerSearchAgent()
	ctx := context.Background()

	st := f.seedSuite(t,
		models.CreateSuiteRequest{
			Name:           "green",
			AgentID:        "test.agents:Search",
			DefaultScorers: []string{"tool_selection"},
		},
		models.CreateCaseRequest{
			Name:          "first",
			Input:         models.CaseInput{Query: "payments?"},
			ExpectedTools: &[]string{"search"},
		},
		models.CreateCaseRequest{
			Name:          "second",
			Input:         models.CaseInput{Query: "checkout?"},
			ExpectedTools: &[]string{"search"},
		},
	)

	rn, err := f.orch.CreateRun(ctx, f.proj.ID, models.CreateRunRequest{SuiteID: st.ID, AgentVersion: "v1"})
	require.NoError(t, err)
	require.NoError(t, f.orch.Execute(ctx, f.proj.ID, rn.ID))

	finished, err := f.runs.GetRun(ctx, f.proj.ID, rn.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, finished.Status)
	assert.NotNil(t, finished.StartedAt)
	assert.NotNil(t, finished.CompletedAt)

	require.NotNil(t, finished.Summary)
	assert.Equal(t, 2, finished.Summary.TotalCases)
	assert.Equal(t, 2, finished.Summary.Passed)
	assert.Zero(t, finished.Summary.Failed)
	assert.Zero(t, finished.Summary.Errored)
	assert.InDelta(t, 1.0, finished.Summary.AvgScore, 1e-9)
	assert.InDelta(t, 1.0, finished.Summary.ScoresByType["tool_selection"], 1e-9)

	results, err := f.runs.ListResults(ctx, f.proj.ID, rn.ID, false)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, res := range results {
		assert.Equal(t, result.StatusSuccess, res.Status)
		assert.True(t, res.Passed)
	}
}

func TestExecute_AgentLoadFailureFailsRun(t *testing.T) {
	f := newOrchFixture(t)
	ctx := context.Background()

	st := f.seedSuite(t,
		models.CreateSuiteRequest{Name: "ghost", AgentID: "ghost.module:Missing"},
		models.CreateCaseRequest{Name: "never-runs", Input: models.CaseInput{Query: "q"}},
	)

	rn, err := f.orch.CreateRun(ctx, f.proj.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)
	assert.Error(t, f.orch.Execute(ctx, f.proj.ID, rn.ID))

	finished, err := f.runs.GetRun(ctx, f.proj.ID, rn.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, finished.Status)
	require.NotNil(t, finished.Summary)
	assert.Contains(t, finished.Summary.Error, "agent load failed")

	results, err := f.runs.ListResults(ctx, f.proj.ID, rn.ID, false)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestExecute_TimeoutCountsAsErrored(t *testing.T) {
	f := newOrchFixture(t)
	ctx := context.Background()

	f.registry.Register("test.agents", "Stuck", agent.Func(
		func(ctx context.Context, query string, contextMap map[string]interface{}) (*agent.AgentOutput, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}))

	st := f.seedSuite(t,
		models.CreateSuiteRequest{
			Name:           "slow",
			AgentID:        "test.agents:Stuck",
			DefaultScorers: []string{"tool_selection"},
		},
		models.CreateCaseRequest{
			Name:           "hangs",
			Input:          models.CaseInput{Query: "q"},
			TimeoutSeconds: intPtr(1),
		},
	)

	rn, err := f.orch.CreateRun(ctx, f.proj.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)
	require.NoError(t, f.orch.Execute(ctx, f.proj.ID, rn.ID))

	finished, err := f.runs.GetRun(ctx, f.proj.ID, rn.ID)
	require.NoError(t, err)
	// The run itself completes; the timeout is a case-level outcome.
	assert.Equal(t, run.StatusCompleted, finished.Status)
	require.NotNil(t, finished.Summary)
	assert.Equal(t, 1, finished.Summary.TotalCases)
	assert.Equal(t, 1, finished.Summary.Errored)
	assert.Zero(t, finished.Summary.Passed)

	results, err := f.runs.ListResults(ctx, f.proj.ID, rn.ID, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, result.StatusTimeout, results[0].Status)
	require.NotNil(t, results[0].Error)
	assert.Contains(t, *results[0].Error, "1s")
}

func TestExecute_StopOnFailureHaltsSequentialRun(t *testing.T) {
	f := newOrchFixture(t)
	f.registerSearchAgent()
	ctx := context.Background()

	st := f.seedSuite(t,
		models.CreateSuiteRequest{
			Name:           "gated",
			AgentID:        "test.agents:Search",
			Parallel:       boolPtr(false),
			StopOnFailure:  boolPtr(true),
			DefaultScorers: []string{"tool_selection"},
		},
		models.CreateCaseRequest{
			Name:     "impossible-bar",
			Input:    models.CaseInput{Query: "q"},
			MinScore: floatPtr(0.99), // neutral 0.8 cannot clear this
		},
		models.CreateCaseRequest{
			Name:          "never-reached",
			Input:         models.CaseInput{Query: "q"},
			ExpectedTools: &[]string{"search"},
		},
	)

	rn, err := f.orch.CreateRun(ctx, f.proj.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)
	require.NoError(t, f.orch.Execute(ctx, f.proj.ID, rn.ID))

	finished, err := f.runs.GetRun(ctx, f.proj.ID, rn.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, finished.Status)
	require.NotNil(t, finished.Summary)
	// Only the executed case is aggregated.
	assert.Equal(t, 1, finished.Summary.TotalCases)
	assert.Equal(t, 1, finished.Summary.Failed)

	results, err := f.runs.ListResults(ctx, f.proj.ID, rn.ID, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "impossible-bar", results[0].CaseName)
}

func TestCancelRun_InterruptsLocalExecution(t *testing.T) {
	f := newOrchFixture(t)
	ctx := context.Background()

	started := make(chan struct{}, 8)
	f.registry.Register("test.agents", "Blocker", agent.Func(
		func(ctx context.Context, query string, contextMap map[string]interface{}) (*agent.AgentOutput, error) {
			started <- struct{}{}
			<-ctx.Done()
			return nil, ctx.Err()
		}))

	st := f.seedSuite(t,
		models.CreateSuiteRequest{
			Name:           "cancellable",
			AgentID:        "test.agents:Blocker",
			DefaultScorers: []string{"tool_selection"},
		},
		models.CreateCaseRequest{Name: "blocks", Input: models.CaseInput{Query: "q"}},
	)

	rn, err := f.orch.CreateRun(ctx, f.proj.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)
	f.orch.Start(ctx, f.proj.ID, rn.ID)

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("agent never started")
	}

	cancelled, err := f.orch.CancelRun(ctx, f.proj.ID, rn.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, cancelled.Status)

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, f.orch.Shutdown(shutdownCtx))

	finished, err := f.runs.GetRun(ctx, f.proj.ID, rn.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, finished.Status)
	assert.Nil(t, finished.Summary, "a cancelled run gets no summary")
	assert.NotNil(t, finished.CompletedAt)
}

func TestExecute_ExternalCancelObservedViaHeartbeat(t *testing.T) {
	f := newOrchFixture(t)
	ctx := context.Background()

	started := make(chan struct{}, 8)
	f.registry.Register("test.agents", "Blocker", agent.Func(
		func(ctx context.Context, query string, contextMap map[string]interface{}) (*agent.AgentOutput, error) {
			started <- struct{}{}
			<-ctx.Done()
			return nil, ctx.Err()
		}))

	st := f.seedSuite(t,
		models.CreateSuiteRequest{Name: "remote-cancel", AgentID: "test.agents:Blocker"},
		models.CreateCaseRequest{Name: "blocks", Input: models.CaseInput{Query: "q"}},
	)

	rn, err := f.orch.CreateRun(ctx, f.proj.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)
	f.orch.Start(ctx, f.proj.ID, rn.ID)

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("agent never started")
	}

	// Cancel through the store only, as another process would.
	_, err = f.runs.CancelRun(ctx, f.proj.ID, rn.ID)
	require.NoError(t, err)

	// The heartbeat loop notices the flipped status and interrupts.
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, f.orch.Shutdown(shutdownCtx))

	finished, err := f.runs.GetRun(ctx, f.proj.ID, rn.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, finished.Status)
}

func TestExecute_BoundedParallelism(t *testing.T) {
	f := newOrchFixture(t)
	ctx := context.Background()

	var current, peak atomic.Int32
	f.registry.Register("test.agents", "Counting", agent.Func(
		func(ctx context.Context, query string, contextMap map[string]interface{}) (*agent.AgentOutput, error) {
			n := current.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(50 * time.Millisecond)
			current.Add(-1)
			return &agent.AgentOutput{Output: "ok", ToolsCalled: []string{}}, nil
		}))

	cases := make([]models.CreateCaseRequest, 0, 6)
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		cases = append(cases, models.CreateCaseRequest{
			Name:          name,
			Input:         models.CaseInput{Query: "q"},
			ExpectedTools: &[]string{},
		})
	}
	st := f.seedSuite(t,
		models.CreateSuiteRequest{
			Name:           "wide",
			AgentID:        "test.agents:Counting",
			DefaultScorers: []string{"tool_selection"},
		},
		cases...,
	)

	rn, err := f.orch.CreateRun(ctx, f.proj.ID, models.CreateRunRequest{
		SuiteID: st.ID,
		Config:  &models.RunConfig{MaxParallelCases: intPtr(2)},
	})
	require.NoError(t, err)
	require.NoError(t, f.orch.Execute(ctx, f.proj.ID, rn.ID))

	assert.LessOrEqual(t, peak.Load(), int32(2), "worker pool must respect max_parallel_cases")

	finished, err := f.runs.GetRun(ctx, f.proj.ID, rn.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, finished.Status)
	require.NotNil(t, finished.Summary)
	assert.Equal(t, 6, finished.Summary.TotalCases)
	assert.Equal(t, 6, finished.Summary.Passed)
}

func TestExecute_NotClaimableIsNoOp(t *testing.T) {
	f := newOrchFixture(t)
	f.registerSearchAgent()
	ctx := context.Background()

	st := f.seedSuite(t,
		models.CreateSuiteRequest{Name: "dead", AgentID: "test.agents:Search"},
		models.CreateCaseRequest{Name: "c", Input: models.CaseInput{Query: "q"}},
	)
	rn, err := f.orch.CreateRun(ctx, f.proj.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)
	_, err = f.runs.CancelRun(ctx, f.proj.ID, rn.ID)
	require.NoError(t, err)

	// Executing an already-cancelled run must not resurrect it.
	require.NoError(t, f.orch.Execute(ctx, f.proj.ID, rn.ID))
	finished, err := f.runs.GetRun(ctx, f.proj.ID, rn.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, finished.Status)
}

func TestExecute_ResultWriteFailureFailsRun(t *testing.T) {
	f := newOrchFixture(t)
	f.registerSearchAgent()
	ctx := context.Background()

	st := f.seedSuite(t,
		models.CreateSuiteRequest{
			Name:           "collision",
			AgentID:        "test.agents:Search",
			DefaultScorers: []string{"tool_selection"},
		},
		models.CreateCaseRequest{Name: "first", Input: models.CaseInput{Query: "q"}},
		models.CreateCaseRequest{Name: "second", Input: models.CaseInput{Query: "q"}},
	)
	cases, err := f.suites.ListCases(ctx, f.proj.ID, st.ID)
	require.NoError(t, err)

	rn, err := f.orch.CreateRun(ctx, f.proj.ID, models.CreateRunRequest{
		SuiteID: st.ID,
		Config:  &models.RunConfig{MaxParallelCases: intPtr(1)},
	})
	require.NoError(t, err)

	// Occupy the (run_id, case_id) slot of the first case so the worker's
	// result write hits the unique index.
	_, err = f.db.Result.Create().
		SetID(uuid.New().String()).
		SetRunID(rn.ID).
		SetCaseID(cases[0].ID).
		SetCaseName(cases[0].Name).
		SetStatus(result.StatusSuccess).
		Save(ctx)
	require.NoError(t, err)

	// Execute must surface the store error instead of blocking on the
	// case feed once the only worker has died.
	done := make(chan error, 1)
	go func() { done <- f.orch.Execute(ctx, f.proj.ID, rn.ID) }()
	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to persist result")
	case <-time.After(10 * time.Second):
		t.Fatal("Execute never returned after a result write failure")
	}

	finished, err := f.runs.GetRun(ctx, f.proj.ID, rn.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, finished.Status)
	require.NotNil(t, finished.Summary)
	assert.Contains(t, finished.Summary.Error, "failed to persist result")
}

func boolPtr(v bool) *bool        { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
