package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/ent/result"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/pkg/models"
)

func TestSuiteService_CreateAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	st, err := f.suites.CreateSuite(ctx, f.project.ID, models.CreateSuiteRequest{
		Name:            "smoke",
		AgentID:         "neon.stubs:EchoAgent",
		Description:     "smoke coverage",
		Parallel:        boolPtr(true),
		DefaultScorers:  []string{"tool_selection"},
		DefaultMinScore: floatPtr(0.6),
	})
	require.NoError(t, err)
	assert.True(t, st.Parallel)
	assert.Equal(t, []string{"tool_selection"}, st.DefaultScorers)
	assert.InDelta(t, 0.6, st.DefaultMinScore, 1e-9)

	byID, err := f.suites.GetSuite(ctx, f.project.ID, st.ID)
	require.NoError(t, err)
	assert.Equal(t, st.Name, byID.Name)

	byName, err := f.suites.GetSuiteByName(ctx, f.project.ID, "smoke")
	require.NoError(t, err)
	assert.Equal(t, st.ID, byName.ID)
}

func TestSuiteService_CreateSuite_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.suites.CreateSuite(ctx, f.project.ID, models.CreateSuiteRequest{AgentID: "a:b"})
	assert.True(t, IsValidationError(err))

	_, err = f.suites.CreateSuite(ctx, f.project.ID, models.CreateSuiteRequest{Name: "x"})
	assert.True(t, IsValidationError(err))

	_, err = f.suites.CreateSuite(ctx, f.project.ID, models.CreateSuiteRequest{
		Name: "x", AgentID: "a:b", DefaultMinScore: floatPtr(1.5),
	})
	assert.True(t, IsValidationError(err))

	_, err = f.suites.CreateSuite(ctx, f.project.ID, models.CreateSuiteRequest{
		Name: "x", AgentID: "a:b", DefaultTimeoutSeconds: intPtr(0),
	})
	assert.True(t, IsValidationError(err))
}

func TestSuiteService_DuplicateNameInProject(t *testing.T) {
	f := newFixture(t)
	f.seedSuite(t, "regression")

	_, err := f.suites.CreateSuite(context.Background(), f.project.ID, models.CreateSuiteRequest{
		Name:    "regression",
		AgentID: "neon.stubs:EchoAgent",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestSuiteService_CrossProjectScoping(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "scoped")

	other, err := f.projects.CreateProject(ctx, models.CreateProjectRequest{Name: "Other", Slug: "other"})
	require.NoError(t, err)

	// A suite id from another project reads as not found, not forbidden.
	_, err = f.suites.GetSuite(ctx, other.ID, st.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = f.suites.DeleteSuite(ctx, other.ID, st.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Same suite name is allowed in a different project.
	_, err = f.suites.CreateSuite(ctx, other.ID, models.CreateSuiteRequest{
		Name:    "scoped",
		AgentID: "neon.stubs:EchoAgent",
	})
	assert.NoError(t, err)
}

func TestSuiteService_UpdateSuite_PartialFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "tuning")

	updated, err := f.suites.UpdateSuite(ctx, f.project.ID, st.ID, models.UpdateSuiteRequest{
		StopOnFailure: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.StopOnFailure)
	// Untouched fields keep their values.
	assert.Equal(t, st.Name, updated.Name)
	assert.Equal(t, st.AgentID, updated.AgentID)

	_, err = f.suites.UpdateSuite(ctx, f.project.ID, st.ID, models.UpdateSuiteRequest{Name: strPtr("")})
	assert.True(t, IsValidationError(err))
}

func TestSuiteService_ListSuites_OrderedByName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedSuite(t, "zeta")
	f.seedSuite(t, "alpha")

	suites, err := f.suites.ListSuites(ctx, f.project.ID)
	require.NoError(t, err)
	require.Len(t, suites, 2)
	assert.Equal(t, "alpha", suites[0].Name)
	assert.Equal(t, "zeta", suites[1].Name)
}

func TestSuiteService_CreateCase_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "cases")

	_, err := f.suites.CreateCase(ctx, f.project.ID, st.ID, models.CreateCaseRequest{
		Input: models.CaseInput{Query: "q"},
	})
	assert.True(t, IsValidationError(err), "missing name")

	_, err = f.suites.CreateCase(ctx, f.project.ID, st.ID, models.CreateCaseRequest{Name: "no-query"})
	assert.True(t, IsValidationError(err), "missing input.query")

	_, err = f.suites.CreateCase(ctx, f.project.ID, st.ID, models.CreateCaseRequest{
		Name:                  "bad-pattern",
		Input:                 models.CaseInput{Query: "q"},
		ExpectedOutputPattern: "([unclosed",
	})
	assert.True(t, IsValidationError(err), "invalid regex")

	_, err = f.suites.CreateCase(ctx, f.project.ID, st.ID, models.CreateCaseRequest{
		Name:     "bad-threshold",
		Input:    models.CaseInput{Query: "q"},
		MinScore: floatPtr(-0.1),
	})
	assert.True(t, IsValidationError(err), "min_score out of range")

	_, err = f.suites.CreateCase(ctx, f.project.ID, st.ID, models.CreateCaseRequest{
		Name:           "bad-timeout",
		Input:          models.CaseInput{Query: "q"},
		TimeoutSeconds: intPtr(-5),
	})
	assert.True(t, IsValidationError(err), "timeout must be positive")
}

func TestSuiteService_CreateCase_PreservesNilVsEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "expectations")

	// expected_tools explicitly empty, sequence never set.
	tc, err := f.suites.CreateCase(ctx, f.project.ID, st.ID, models.CreateCaseRequest{
		Name:          "no-tools-expected",
		Input:         models.CaseInput{Query: "q"},
		ExpectedTools: slicePtr([]string{}),
	})
	require.NoError(t, err)

	loaded, err := f.suites.GetCase(ctx, f.project.ID, tc.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.ExpectedTools)
	assert.Empty(t, loaded.ExpectedTools)
	assert.Nil(t, loaded.ExpectedToolSequence)

	// Defaults apply when thresholds are omitted.
	assert.InDelta(t, 0.7, loaded.MinScore, 1e-9)
	assert.Equal(t, 300, loaded.TimeoutSeconds)
}

func TestSuiteService_DuplicateCaseNameInSuite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "dupes")

	_, err := f.suites.CreateCase(ctx, f.project.ID, st.ID, models.CreateCaseRequest{
		Name:  "baseline-case", // seeded by the fixture
		Input: models.CaseInput{Query: "q"},
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestSuiteService_ListCases_CreationOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "ordered")

	for _, name := range []string{"second", "third"} {
		_, err := f.suites.CreateCase(ctx, f.project.ID, st.ID, models.CreateCaseRequest{
			Name:  name,
			Input: models.CaseInput{Query: "q"},
		})
		require.NoError(t, err)
	}

	cases, err := f.suites.ListCases(ctx, f.project.ID, st.ID)
	require.NoError(t, err)
	require.Len(t, cases, 3)
	assert.Equal(t, "baseline-case", cases[0].Name)
	assert.Equal(t, "second", cases[1].Name)
	assert.Equal(t, "third", cases[2].Name)
}

func TestSuiteService_UpdateAndDeleteCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "mutable")

	cases, err := f.suites.ListCases(ctx, f.project.ID, st.ID)
	require.NoError(t, err)
	tc := cases[0]

	updated, err := f.suites.UpdateCase(ctx, f.project.ID, tc.ID, models.UpdateCaseRequest{
		MinScore:      floatPtr(0.9),
		ExpectedTools: slicePtr([]string{"search"}),
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.9, updated.MinScore, 1e-9)
	assert.Equal(t, []string{"search"}, updated.ExpectedTools)

	_, err = f.suites.UpdateCase(ctx, f.project.ID, tc.ID, models.UpdateCaseRequest{
		ExpectedOutputPattern: strPtr("([bad"),
	})
	assert.True(t, IsValidationError(err))

	require.NoError(t, f.suites.DeleteCase(ctx, f.project.ID, tc.ID))
	_, err = f.suites.GetCase(ctx, f.project.ID, tc.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSuiteService_DeleteSuite_CascadesCases(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "doomed")

	cases, err := f.suites.ListCases(ctx, f.project.ID, st.ID)
	require.NoError(t, err)
	require.Len(t, cases, 1)

	require.NoError(t, f.suites.DeleteSuite(ctx, f.project.ID, st.ID))
	_, err = f.suites.GetCase(ctx, f.project.ID, cases[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSuiteService_CasesFrozenWhileRunActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "frozen")

	cases, err := f.suites.ListCases(ctx, f.project.ID, st.ID)
	require.NoError(t, err)
	tc := cases[0]

	rn, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)

	// Pending run blocks mutation.
	_, err = f.suites.UpdateCase(ctx, f.project.ID, tc.ID, models.UpdateCaseRequest{Description: strPtr("edited")})
	assert.ErrorIs(t, err, ErrSuiteBusy)
	assert.ErrorIs(t, f.suites.DeleteCase(ctx, f.project.ID, tc.ID), ErrSuiteBusy)

	// So does a running one.
	claimed, err := f.runs.ClaimRun(ctx, rn.ID)
	require.NoError(t, err)
	require.True(t, claimed)
	_, err = f.suites.UpdateCase(ctx, f.project.ID, tc.ID, models.UpdateCaseRequest{Description: strPtr("edited")})
	assert.ErrorIs(t, err, ErrSuiteBusy)

	// Terminal run unlocks the suite.
	_, err = f.runs.CompleteRun(ctx, rn.ID, run.StatusCompleted, &models.RunSummary{TotalCases: 1})
	require.NoError(t, err)
	updated, err := f.suites.UpdateCase(ctx, f.project.ID, tc.ID, models.UpdateCaseRequest{Description: strPtr("edited")})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Description)
}

func TestSuiteService_DeleteCaseKeepsCompletedResults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedSuite(t, "history")

	cases, err := f.suites.ListCases(ctx, f.project.ID, st.ID)
	require.NoError(t, err)
	tc := cases[0]

	rn, err := f.runs.CreateRun(ctx, f.project.ID, models.CreateRunRequest{SuiteID: st.ID})
	require.NoError(t, err)
	claimed, err := f.runs.ClaimRun(ctx, rn.ID)
	require.NoError(t, err)
	require.True(t, claimed)

	_, err = f.db.Result.Create().
		SetID(uuid.New().String()).
		SetRunID(rn.ID).
		SetCaseID(tc.ID).
		SetCaseName(tc.Name).
		SetStatus(result.StatusSuccess).
		SetScores(map[string]float64{"tool_selection": 1.0}).
		SetPassed(true).
		Save(ctx)
	require.NoError(t, err)
	_, err = f.runs.CompleteRun(ctx, rn.ID, run.StatusCompleted, &models.RunSummary{TotalCases: 1, Passed: 1, AvgScore: 1.0})
	require.NoError(t, err)

	require.NoError(t, f.suites.DeleteCase(ctx, f.project.ID, tc.ID))

	// The audit row survives with the reference cleared; the comparator's
	// join key is the denormalized name.
	results, err := f.runs.ListResults(ctx, f.project.ID, rn.ID, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "baseline-case", results[0].CaseName)
	assert.Empty(t, results[0].CaseID)
	assert.InDelta(t, 1.0, results[0].Scores["tool_selection"], 1e-9)
}
