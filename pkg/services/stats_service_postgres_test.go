package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/pkg/models"
	"github.com/neonhq/neon/test/util"
)

// The dashboard SQL differs by dialect; this exercises the PostgreSQL
// variant (FILTER clauses, ->> JSON projection, ::timestamptz casts)
// end to end against a real server.
func TestStatsService_Dashboard_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("needs Docker or NEON_TEST_DATABASE_URL")
	}
	f := newFixtureOn(t, util.SetupPostgresTestDB(t))
	ctx := context.Background()
	st := f.seedSuite(t, "pg-metrics")

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
	assert.Equal(t, 2, stats.FailedRuns)
	assert.InDelta(t, 25.0, stats.PassRate, 1e-9)
	assert.InDelta(t, 50.0, stats.FailRate, 1e-9)
	assert.InDelta(t, 0.74, stats.AvgScore, 1e-9)
	assert.Equal(t, 4, stats.RunsThisWeek)

	// NULL window bounds must be accepted by the ::timestamptz casts,
	// and a bound window must filter.
	from := time.Now().Add(time.Minute)
	stats, err = f.stats.Dashboard(ctx, f.project.ID, models.DashboardParams{From: &from})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalRuns)
	assert.Equal(t, 4, stats.RunsThisWeek)

	n, err := f.stats.CountRunsSince(ctx, f.project.ID, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
