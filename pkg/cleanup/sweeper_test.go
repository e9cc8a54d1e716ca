package cleanup

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/pkg/models"
	"github.com/neonhq/neon/pkg/services"
	testdb "github.com/neonhq/neon/test/database"
)

type sweeperFixture struct {
	runs  *services.RunService
	proj  *ent.Project
	suite *ent.Suite
	db    *ent.Client
}

func newSweeperFixture(t *testing.T) *sweeperFixture {
	t.Helper()
	ctx := context.Background()
	db := testdb.NewSQLiteTestDB(t)

	projects := services.NewProjectService(db.Client)
	proj, err := projects.CreateProject(ctx, models.CreateProjectRequest{Name: "Sweep", Slug: "sweep"})
	require.NoError(t, err)

	suites := services.NewSuiteService(db.Client)
	st, err := suites.CreateSuite(ctx, proj.ID, models.CreateSuiteRequest{
		Name:    "swept",
		AgentID: "neon.stubs:EchoAgent",
	})
	require.NoError(t, err)
	_, err = suites.CreateCase(ctx, proj.ID, st.ID, models.CreateCaseRequest{
		Name:  "c",
		Input: models.CaseInput{Query: "q"},
	})
	require.NoError(t, err)

	return &sweeperFixture{
		runs:  services.NewRunService(db.Client),
		proj:  proj,
		suite: st,
		db:    db.Client,
	}
}

// runningRun creates a claimed run with its heartbeat set to age ago.
func (f *sweeperFixture) runningRun(t *testing.T, age time.Duration) *ent.Run {
	t.Helper()
	ctx := context.Background()

	rn, err := f.runs.CreateRun(ctx, f.proj.ID, models.CreateRunRequest{SuiteID: f.suite.ID})
	require.NoError(t, err)
	claimed, err := f.runs.ClaimRun(ctx, rn.ID)
	require.NoError(t, err)
	require.True(t, claimed)

	_, err = f.db.Run.UpdateOneID(rn.ID).
		SetLastHeartbeatAt(time.Now().Add(-age)).
		Save(ctx)
	require.NoError(t, err)
	return rn
}

func TestSweep_FailsOrphanedRuns(t *testing.T) {
	f := newSweeperFixture(t)
	ctx := context.Background()

	orphan := f.runningRun(t, time.Hour)
	healthy := f.runningRun(t, 0)

	s := NewSweeper(f.runs, slog.New(slog.DiscardHandler), WithStaleAfter(2*time.Minute))
	assert.Equal(t, 1, s.Sweep(ctx))

	failed, err := f.runs.GetRun(ctx, f.proj.ID, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, failed.Status)
	require.NotNil(t, failed.Summary)
	assert.Contains(t, failed.Summary.Error, "orphaned")
	assert.NotNil(t, failed.CompletedAt)

	alive, err := f.runs.GetRun(ctx, f.proj.ID, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, alive.Status)

	// Nothing left to sweep.
	assert.Equal(t, 0, s.Sweep(ctx))
}

func TestSweep_IgnoresPendingAndTerminalRuns(t *testing.T) {
	f := newSweeperFixture(t)
	ctx := context.Background()

	// Pending: created but never claimed, no heartbeat at all.
	pending, err := f.runs.CreateRun(ctx, f.proj.ID, models.CreateRunRequest{SuiteID: f.suite.ID})
	require.NoError(t, err)

	// Terminal: cancelled before the sweep.
	doomed := f.runningRun(t, time.Hour)
	_, err = f.runs.CancelRun(ctx, f.proj.ID, doomed.ID)
	require.NoError(t, err)

	s := NewSweeper(f.runs, slog.New(slog.DiscardHandler), WithStaleAfter(2*time.Minute))
	assert.Equal(t, 0, s.Sweep(ctx))

	loaded, err := f.runs.GetRun(ctx, f.proj.ID, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, loaded.Status)

	cancelled, err := f.runs.GetRun(ctx, f.proj.ID, doomed.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, cancelled.Status)
}

func TestSweeper_StartRunsAnImmediateSweep(t *testing.T) {
	f := newSweeperFixture(t)
	ctx := context.Background()

	orphan := f.runningRun(t, time.Hour)

	s := NewSweeper(f.runs, slog.New(slog.DiscardHandler), WithStaleAfter(2*time.Minute))
	require.NoError(t, s.Start(ctx))
	defer s.Stop()

	// Start sweeps synchronously before arming the schedule.
	failed, err := f.runs.GetRun(ctx, f.proj.ID, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, failed.Status)
}
