package compare

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/pkg/models"
	"github.com/neonhq/neon/pkg/services"
	testdb "github.com/neonhq/neon/test/database"
)

func TestDiff_RegressionOnToolChoice(t *testing.T) {
	baseline := map[string]map[string]float64{
		"pick-the-right-tool": {"tool_selection": 1.0},
	}
	candidate := map[string]map[string]float64{
		"pick-the-right-tool": {"tool_selection": 0.0},
	}

	report := Diff(baseline, candidate, 0.05)

	require.Len(t, report.Regressions, 1)
	assert.Equal(t, "pick-the-right-tool", report.Regressions[0].CaseName)
	assert.Equal(t, -1.0, report.Regressions[0].Delta)
	assert.False(t, report.Passed)
	assert.Empty(t, report.Improvements)
	assert.Zero(t, report.Unchanged)
}

func TestDiff_ClassificationBoundaries(t *testing.T) {
	baseline := map[string]map[string]float64{
		"a": {"s": 0.50},
		"b": {"s": 0.50},
		"c": {"s": 0.50},
	}
	candidate := map[string]map[string]float64{
		"a": {"s": 0.44}, // delta -0.06 < -0.05
		"b": {"s": 0.55}, // delta 0.05, within threshold
		"c": {"s": 0.56}, // delta +0.06 > 0.05
	}

	report := Diff(baseline, candidate, 0.05)

	require.Len(t, report.Regressions, 1)
	assert.Equal(t, "a", report.Regressions[0].CaseName)
	require.Len(t, report.Improvements, 1)
	assert.Equal(t, "c", report.Improvements[0].CaseName)
	assert.Equal(t, 1, report.Unchanged)
}

func TestDiff_OneSidedCasesAndScorersIgnored(t *testing.T) {
	baseline := map[string]map[string]float64{
		"shared":        {"s": 0.9, "baseline_only_scorer": 0.1},
		"baseline_only": {"s": 0.9},
	}
	candidate := map[string]map[string]float64{
		"shared":         {"s": 0.9, "candidate_only_scorer": 0.1},
		"candidate_only": {"s": 0.9},
	}

	report := Diff(baseline, candidate, 0.05)

	assert.True(t, report.Passed)
	assert.Empty(t, report.Regressions)
	assert.Empty(t, report.Improvements)
	assert.Equal(t, 1, report.Unchanged)
}

func TestDiff_SortOrder(t *testing.T) {
	baseline := map[string]map[string]float64{
		"a": {"s": 1.0},
		"b": {"s": 1.0},
		"c": {"s": 0.0},
		"d": {"s": 0.0},
	}
	candidate := map[string]map[string]float64{
		"a": {"s": 0.2}, // -0.8
		"b": {"s": 0.7}, // -0.3
		"c": {"s": 0.9}, // +0.9
		"d": {"s": 0.4}, // +0.4
	}

	report := Diff(baseline, candidate, 0.05)

	require.Len(t, report.Regressions, 2)
	assert.Equal(t, "a", report.Regressions[0].CaseName, "worst regression first")
	assert.Equal(t, "b", report.Regressions[1].CaseName)

	require.Len(t, report.Improvements, 2)
	assert.Equal(t, "c", report.Improvements[0].CaseName, "best improvement first")
	assert.Equal(t, "d", report.Improvements[1].CaseName)
}

func TestDiff_Idempotent(t *testing.T) {
	baseline := map[string]map[string]float64{
		"a": {"s": 0.8, "t": 0.3},
		"b": {"s": 0.2},
	}
	candidate := map[string]map[string]float64{
		"a": {"s": 0.4, "t": 0.9},
		"b": {"s": 0.2},
	}

	first := Diff(baseline, candidate, 0.1)
	second := Diff(baseline, candidate, 0.1)

	assert.Equal(t, first, second)
}

func TestDiff_ThresholdMonotonicity(t *testing.T) {
	baseline := map[string]map[string]float64{
		"a": {"s": 0.9}, "b": {"s": 0.8}, "c": {"s": 0.7}, "d": {"s": 0.6},
	}
	candidate := map[string]map[string]float64{
		"a": {"s": 0.2}, "b": {"s": 0.7}, "c": {"s": 0.65}, "d": {"s": 0.61},
	}

	prevRegressions := len(baseline) + 1
	prevUnchanged := -1
	for _, threshold := range []float64{0.0, 0.01, 0.05, 0.1, 0.5, 1.0} {
		report := Diff(baseline, candidate, threshold)
		assert.LessOrEqual(t, len(report.Regressions), prevRegressions, "threshold %v", threshold)
		assert.GreaterOrEqual(t, report.Unchanged, prevUnchanged, "threshold %v", threshold)
		prevRegressions = len(report.Regressions)
		prevUnchanged = report.Unchanged
	}
}

func TestDiff_EmptyRuns(t *testing.T) {
	report := Diff(map[string]map[string]float64{}, map[string]map[string]float64{}, 0.05)
	assert.True(t, report.Passed)
	assert.Empty(t, report.Regressions)
	assert.Empty(t, report.Improvements)
	assert.Zero(t, report.Unchanged)
}

func TestCompare_RejectsUnfinishedRuns(t *testing.T) {
	db := testdb.NewSQLiteTestDB(t)
	ctx := context.Background()

	projects := services.NewProjectService(db.Client)
	proj, err := projects.CreateProject(ctx, models.CreateProjectRequest{Name: "Compare", Slug: "compare"})
	require.NoError(t, err)

	suites := services.NewSuiteService(db.Client)
	st, err := suites.CreateSuite(ctx, proj.ID, models.CreateSuiteRequest{Name: "gate", AgentID: "neon.stubs:EchoAgent"})
	require.NoError(t, err)
	_, err = suites.CreateCase(ctx, proj.ID, st.ID, models.CreateCaseRequest{
		Name:  "only-case",
		Input: models.CaseInput{Query: "q"},
	})
	require.NoError(t, err)

	runs := services.NewRunService(db.Client)
	baseline, err := runs.CreateRun(ctx, proj.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)
	claimed, err := runs.ClaimRun(ctx, baseline.ID)
	require.NoError(t, err)
	require.True(t, claimed)
	_, err = runs.CompleteRun(ctx, baseline.ID, run.StatusCompleted, &models.RunSummary{TotalCases: 1, AvgScore: 0.9})
	require.NoError(t, err)

	candidate, err := runs.CreateRun(ctx, proj.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)

	cmp := New(runs)

	// Pending candidate.
	_, err = cmp.Compare(ctx, proj.ID, baseline.ID, candidate.ID, 0.05)
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))

	// Running candidate diffs partial results; still rejected.
	claimed, err = runs.ClaimRun(ctx, candidate.ID)
	require.NoError(t, err)
	require.True(t, claimed)
	_, err = cmp.Compare(ctx, proj.ID, baseline.ID, candidate.ID, 0.05)
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
	assert.Contains(t, err.Error(), "running")

	// Completion clears the rejection.
	_, err = runs.CompleteRun(ctx, candidate.ID, run.StatusCompleted, &models.RunSummary{TotalCases: 1, AvgScore: 0.9})
	require.NoError(t, err)
	report, err := cmp.Compare(ctx, proj.ID, baseline.ID, candidate.ID, 0.05)
	require.NoError(t, err)
	assert.True(t, report.Passed)
}
