package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/ent/result"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/pkg/models"
)

func TestRunService_CreateRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "create")

	rn, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{
		SuiteID:      st.ID,
		AgentVersion: "v2.1.0",
		Trigger:      "ci",
		TriggerRef:   "build-512",
	})
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, rn.Status)
	assert.Equal(t, run.TriggerCi, rn.Trigger)
	require.NotNil(t, rn.AgentVersion)
	assert.Equal(t, "v2.1.0", *rn.AgentVersion)
	require.NotNil(t, rn.TriggerRef)
	assert.Equal(t, "build-512", *rn.TriggerRef)
	assert.Nil(t, rn.StartedAt)
	assert.Nil(t, rn.Summary)

	// Trigger defaults to api when the request leaves it empty.
	byDefault, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)
	assert.Equal(t, run.TriggerAPI, byDefault.Trigger)
}

func TestRunService_CreateRun_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "invalid")

	_, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: st.ID, Trigger: "webhook"})
	assert.True(t, IsValidationError(err), "unknown trigger")

	_, err = f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{
		SuiteID: st.ID,
		Config:  &models.RunConfig{MaxParallelCases: intPtr(0)},
	})
	assert.True(t, IsValidationError(err), "non-positive parallelism override")

	// A suite with zero cases cannot be run.
	empty, err := f.suites.CreateSuite(ctx, f.project.ID, models.CreateSuiteRequest{
		Name:    "empty",
		AgentID: "neon.stubs:EchoAgent",
	})
	require.NoError(t, err)
	_, err = f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: empty.ID})
	assert.True(t, IsValidationError(err))
}

func TestRunService_ClaimRun_SingleWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "claim")
	rn, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)

	claimed, err := f.runs.ClaimRun(ctx, rn.ID)
	require.NoError(t, err)
	assert.True(t, claimed)

	again, err := f.runs.ClaimRun(ctx, rn.ID)
	require.NoError(t, err)
	assert.False(t, again, "second claim must lose")

	loaded, err := f.runs.GetRun(ctx, f.project.ID, rn.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, loaded.Status)
	assert.NotNil(t, loaded.StartedAt)
	assert.NotNil(t, loaded.LastHeartbeatAt)
}

func TestRunService_CompleteRun_GuardedOnRunning(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "complete")
	rn, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)

	// Completing a pending run does not match the guard.
	swapped, err := f.runs.CompleteRun(ctx, rn.ID, run.StatusCompleted, &models.RunSummary{TotalCases: 1})
	require.NoError(t, err)
	assert.False(t, swapped)

	claimed, err := f.runs.ClaimRun(ctx, rn.ID)
	require.NoError(t, err)
	require.True(t, claimed)

	swapped, err = f.runs.CompleteRun(ctx, rn.ID, run.StatusCompleted, &models.RunSummary{TotalCases: 1, Passed: 1, AvgScore: 0.91})
	require.NoError(t, err)
	assert.True(t, swapped)

	loaded, err := f.runs.GetRun(ctx, f.project.ID, rn.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, loaded.Status)
	assert.NotNil(t, loaded.CompletedAt)
	require.NotNil(t, loaded.Summary)
	assert.Equal(t, 1, loaded.Summary.Passed)

	_, err = f.runs.CompleteRun(ctx, rn.ID, run.StatusPending, nil)
	assert.True(t, IsValidationError(err), "pending is not a terminal status")
}

func TestRunService_CancelWinsOverLateCompletion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "race")
	rn, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)

	claimed, err := f.runs.ClaimRun(ctx, rn.ID)
	require.NoError(t, err)
	require.True(t, claimed)

	cancelled, err := f.runs.CancelRun(ctx, f.project.ID, rn.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, cancelled.Status)

	// The engine's terminal write arrives after the cancel and must lose.
	swapped, err := f.runs.CompleteRun(ctx, rn.ID, run.StatusCompleted, &models.RunSummary{TotalCases: 3})
	require.NoError(t, err)
	assert.False(t, swapped)

	loaded, err := f.runs.GetRun(ctx, f.project.ID, rn.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, loaded.Status)
	assert.Nil(t, loaded.Summary)
}

func TestRunService_CancelRun_States(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "cancel")

	// Pending runs cancel directly.
	pending, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)
	cancelled, err := f.runs.CancelRun(ctx, f.project.ID, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CompletedAt)

	// Cancelling twice is an error.
	_, err = f.runs.CancelRun(ctx, f.project.ID, pending.ID)
	assert.ErrorIs(t, err, ErrNotCancellable)

	// Completed runs are not cancellable either.
	done, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)
	_, err = f.runs.ClaimRun(ctx, done.ID)
	require.NoError(t, err)
	_, err = f.runs.CompleteRun(ctx, done.ID, run.StatusCompleted, nil)
	require.NoError(t, err)
	_, err = f.runs.CancelRun(ctx, f.project.ID, done.ID)
	assert.ErrorIs(t, err, ErrNotCancellable)

	_, err = f.runs.CancelRun(ctx, f.project.ID, "no-such-run")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunService_ListRuns_FiltersAndPagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "history")
	other := f.seedSuite(t, "noise")

	var last *ent.Run
	for i := 0; i < 5; i++ {
		rn, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: st.ID})
		require.NoError(t, err)
		last = rn
	}
	_, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: other.ID})
	require.NoError(t, err)

	_, err = f.runs.CancelRun(ctx, f.project.ID, last.ID)
	require.NoError(t, err)

	runs, total, err := f.runs.ListRuns(ctx, f.project.ID, models.ListRunsParams{SuiteID: st.ID})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, runs, 5)

	// total reflects the filter, not the page.
	page, total, err := f.runs.ListRuns(ctx, f.project.ID, models.ListRunsParams{SuiteID: st.ID, Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, page, 1)

	cancelledOnly, total, err := f.runs.ListRuns(ctx, f.project.ID, models.ListRunsParams{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, cancelledOnly, 1)
	assert.Equal(t, last.ID, cancelledOnly[0].ID)

	_, _, err = f.runs.ListRuns(ctx, f.project.ID, models.ListRunsParams{Status: "exploded"})
	assert.True(t, IsValidationError(err))
}

func TestRunService_ListResults_FailedOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "results")
	cases, err := f.suites.ListCases(ctx, f.project.ID, st.ID)
	require.NoError(t, err)
	rn, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)

	extra, err := f.suites.CreateCase(ctx, f.project.ID, st.ID, models.CreateCaseRequest{
		Name:  "below-threshold",
		Input: models.CaseInput{Query: "q"},
	})
	require.NoError(t, err)

	_, err = f.db.Result.Create().
		SetID(uuid.New().String()).
		SetRunID(rn.ID).
		SetCaseID(cases[0].ID).
		SetCaseName(cases[0].Name).
		SetStatus(result.StatusSuccess).
		SetScores(map[string]float64{"tool_selection": 0.95}).
		SetPassed(true).
		Save(ctx)
	require.NoError(t, err)

	_, err = f.db.Result.Create().
		SetID(uuid.New().String()).
		SetRunID(rn.ID).
		SetCaseID(extra.ID).
		SetCaseName(extra.Name).
		SetStatus(result.StatusSuccess).
		SetScores(map[string]float64{"tool_selection": 0.2}).
		SetPassed(false).
		Save(ctx)
	require.NoError(t, err)

	all, err := f.runs.ListResults(ctx, f.project.ID, rn.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	failed, err := f.runs.ListResults(ctx, f.project.ID, rn.ID, true)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "below-threshold", failed[0].CaseName)

	_, err = f.runs.ListResults(ctx, f.project.ID, "no-such-run", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunService_StaleRuns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "stale")

	orphan, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)
	_, err = f.runs.ClaimRun(ctx, orphan.ID)
	require.NoError(t, err)
	// Backdate the heartbeat past any reasonable cutoff.
	_, err = f.db.Run.UpdateOneID(orphan.ID).
		SetLastHeartbeatAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	healthy, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)
	_, err = f.runs.ClaimRun(ctx, healthy.ID)
	require.NoError(t, err)
	require.NoError(t, f.runs.Heartbeat(ctx, healthy.ID))

	stale, err := f.runs.FindStaleRuns(ctx, time.Now().Add(-2*time.Minute))
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, orphan.ID, stale[0].ID)

	swapped, err := f.runs.FailStaleRun(ctx, orphan.ID)
	require.NoError(t, err)
	assert.True(t, swapped)

	loaded, err := f.runs.GetRun(ctx, f.project.ID, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, loaded.Status)
	require.NotNil(t, loaded.Summary)
	assert.Contains(t, loaded.Summary.Error, "orphaned")

	// Already terminal: the guard does not match a second time.
	swapped, err = f.runs.FailStaleRun(ctx, orphan.ID)
	require.NoError(t, err)
	assert.False(t, swapped)
}
