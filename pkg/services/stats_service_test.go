package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/pkg/models"
)

func (f *fixture) completedRun(t *testing.T, suiteID string, summary *models.RunSummary) *ent.Run {
	t.Helper()
	ctx := context.Background()

	rn, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: suiteID})
	require.NoError(t, err)
	claimed, err := f.runs.ClaimRun(ctx, rn.ID)
	require.NoError(t, err)
	require.True(t, claimed)
	swapped, err := f.runs.CompleteRun(ctx, rn.ID, run.StatusCompleted, summary)
	require.NoError(t, err)
	require.True(t, swapped)
	return rn
}

func TestStatsService_Dashboard_EmptyProject(t *testing.T) {
	f := newFixture(t)

	stats, err := f.stats.Dashboard(context.Background(), f.project.ID, models.DashboardParams{})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalRuns)
	assert.Zero(t, stats.PassRate)
	assert.Zero(t, stats.FailRate)
	assert.Zero(t, stats.AvgScore)
	assert.Equal(t, 0, stats.RunsThisWeek)
}

func TestStatsService_Dashboard_Aggregation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "metrics")

	// One fully green run, one completed run with a below-threshold case,
	// one failed run, one still pending.
	f.completedRun(t, st.ID, &models.RunSummary{TotalCases: 2, Passed: 2, AvgScore: 0.913})
	f.completedRun(t, st.ID, &models.RunSummary{TotalCases: 2, Passed: 1, Failed: 1, AvgScore: 0.562})

	broken, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)
	_, err = f.runs.ClaimRun(ctx, broken.ID)
	require.NoError(t, err)
	_, err = f.runs.CompleteRun(ctx, broken.ID, run.StatusFailed, &models.RunSummary{Error: "agent load failed"})
	require.NoError(t, err)

	_, err = f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)

	stats, err := f.stats.Dashboard(ctx, f.project.ID, models.DashboardParams{})
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalRuns)
	assert.Equal(t, 1, stats.PassedRuns)
	assert.Equal(t, 2, stats.FailedRuns, "status=failed plus completed-with-failures")
	assert.InDelta(t, 25.0, stats.PassRate, 1e-9)
	assert.InDelta(t, 50.0, stats.FailRate, 1e-9)
	// AVG over completed runs only: (0.913 + 0.562) / 2 rounded to 2 places.
	assert.InDelta(t, 0.74, stats.AvgScore, 1e-9)
	assert.Equal(t, 4, stats.RunsThisWeek)
}

func TestStatsService_Dashboard_WindowExcludesOldRuns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "window")

	old := f.completedRun(t, st.ID, &models.RunSummary{TotalCases: 1, Passed: 1, AvgScore: 0.9})
	f.completedRun(t, st.ID, &models.RunSummary{TotalCases: 1, Passed: 1, AvgScore: 0.8})

	// Push the first run outside both the query window and the trailing week.
	_, err := f.db.DB().ExecContext(ctx,
		`UPDATE runs SET created_at = ? WHERE run_id = ?`,
		time.Now().Add(-8*24*time.Hour), old.ID)
	require.NoError(t, err)

	from := time.Now().Add(-24 * time.Hour)
	stats, err := f.stats.Dashboard(ctx, f.project.ID, models.DashboardParams{From: &from})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalRuns)
	assert.Equal(t, 1, stats.RunsThisWeek, "runs_this_week ignores the from/to window but honors the trailing week")

	// Without a window the old run is counted again, but not for the week.
	stats, err = f.stats.Dashboard(ctx, f.project.ID, models.DashboardParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRuns)
	assert.Equal(t, 1, stats.RunsThisWeek)
}

func TestStatsService_Dashboard_InvalidWindow(t *testing.T) {
	f := newFixture(t)

	from := time.Now()
	to := from.Add(-time.Hour)
	_, err := f.stats.Dashboard(context.Background(), f.project.ID, models.DashboardParams{From: &from, To: &to})
	assert.True(t, IsValidationError(err))
}

func TestStatsService_CountRunsSince(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "counts")

	f.completedRun(t, st.ID, &models.RunSummary{TotalCases: 1, Passed: 1, AvgScore: 1})
	f.completedRun(t, st.ID, &models.RunSummary{TotalCases: 1, Passed: 1, AvgScore: 1})

	n, err := f.stats.CountRunsSince(ctx, f.project.ID, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = f.stats.CountRunsSince(ctx, f.project.ID, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
