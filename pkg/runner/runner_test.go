package runner

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/ent/result"
	"github.com/neonhq/neon/pkg/agent"
	"github.com/neonhq/neon/pkg/database"
	"github.com/neonhq/neon/pkg/models"
	"github.com/neonhq/neon/pkg/scorer"
	"github.com/neonhq/neon/pkg/services"
	"github.com/neonhq/neon/pkg/trace"
	testdb "github.com/neonhq/neon/test/database"
)

type runnerFixture struct {
	db     *database.Client
	suites *services.SuiteService
	runs   *services.RunService
	proj   *ent.Project
	suite  *ent.Suite
	run    *ent.Run
}

func newRunnerFixture(t *testing.T, suiteReq models.CreateSuiteRequest) *runnerFixture {
	t.Helper()
	ctx := context.Background()
	db := testdb.NewSQLiteTestDB(t)

	projects := services.NewProjectService(db.Client)
	proj, err := projects.CreateProject(ctx, models.CreateProjectRequest{Name: "Runner", Slug: "runner"})
	require.NoError(t, err)

	suites := services.NewSuiteService(db.Client)
	st, err := suites.CreateSuite(ctx, proj.ID, suiteReq)
	require.NoError(t, err)

	return &runnerFixture{
		db:     db,
		suites: suites,
		runs:   services.NewRunService(db.Client),
		proj:   proj,
		suite:  st,
	}
}

func (f *runnerFixture) addCase(t *testing.T, req models.CreateCaseRequest) *ent.TestCase {
	t.Helper()
	tc, err := f.suites.CreateCase(context.Background(), f.proj.ID, f.suite.ID, req)
	require.NoError(t, err)
	return tc
}

func (f *runnerFixture) newRun(t *testing.T) *ent.Run {
	t.Helper()
	rn, err := f.runs.CreateRun(context.Background(), f.proj.ID, models.CreateRunRequest{SuiteID: f.suite.ID})
	require.NoError(t, err)
	f.run = rn
	return rn
}

func newTestRunner(db *database.Client, scorers *scorer.Registry) *Runner {
	logger := slog.New(slog.DiscardHandler)
	return NewRunner(db.Client, scorers, trace.NewClient("runner-test"), logger)
}

func searchingAgent() agent.Agent {
	return agent.Func(func(ctx context.Context, query string, contextMap map[string]interface{}) (*agent.AgentOutput, error) {
		return &agent.AgentOutput{
			Output:      "payments are degraded in us-east-1",
			ToolsCalled: []string{"search"},
		}, nil
	})
}

func TestRunCase_SuccessPersistsScoredResult(t *testing.T) {
	f := newRunnerFixture(t, models.CreateSuiteRequest{
		Name:           "happy",
		AgentID:        "neon.stubs:EchoAgent",
		DefaultScorers: []string{"tool_selection"},
	})
	tc := f.addCase(t, models.CreateCaseRequest{
		Name:          "finds-degradation",
		Input:         models.CaseInput{Query: "what is wrong with payments?"},
		ExpectedTools: &[]string{"search"},
	})
	rn := f.newRun(t)

	r := newTestRunner(f.db, scorer.NewDefaultRegistry(nil))
	res, err := r.RunCase(context.Background(), rn, f.suite, tc, searchingAgent())
	require.NoError(t, err)

	assert.Equal(t, result.StatusSuccess, res.Status)
	assert.Equal(t, "finds-degradation", res.CaseName)
	assert.True(t, res.Passed)
	require.Contains(t, res.Scores, "tool_selection")
	assert.InDelta(t, 1.0, res.Scores["tool_selection"], 1e-9)
	require.Contains(t, res.ScoreDetails, "tool_selection")
	assert.NotNil(t, res.TraceRunID)
	assert.NotNil(t, res.TraceID)
	assert.GreaterOrEqual(t, res.ExecutionTimeMs, int64(0))
	require.NotNil(t, res.Output)
	assert.Equal(t, "payments are degraded in us-east-1", res.Output["output"])

	// Exactly one row persisted.
	persisted, err := f.runs.ListResults(context.Background(), f.proj.ID, rn.ID, false)
	require.NoError(t, err)
	assert.Len(t, persisted, 1)
}

func TestRunCase_CaseScorersOverrideSuiteDefaults(t *testing.T) {
	f := newRunnerFixture(t, models.CreateSuiteRequest{
		Name:           "overrides",
		AgentID:        "neon.stubs:EchoAgent",
		DefaultScorers: []string{"tool_selection", "grounding"},
	})
	tc := f.addCase(t, models.CreateCaseRequest{
		Name:          "tools-only",
		Input:         models.CaseInput{Query: "q"},
		ExpectedTools: &[]string{"search"},
		Scorers:       []string{"tool_selection"},
	})
	rn := f.newRun(t)

	r := newTestRunner(f.db, scorer.NewDefaultRegistry(nil))
	res, err := r.RunCase(context.Background(), rn, f.suite, tc, searchingAgent())
	require.NoError(t, err)

	assert.Len(t, res.Scores, 1)
	assert.Contains(t, res.Scores, "tool_selection")
}

func TestRunCase_TimeoutIsClassifiedAndExplained(t *testing.T) {
	f := newRunnerFixture(t, models.CreateSuiteRequest{
		Name:           "slow",
		AgentID:        "neon.stubs:SlowAgent",
		DefaultScorers: []string{"tool_selection"},
	})
	tc := f.addCase(t, models.CreateCaseRequest{
		Name:           "times-out",
		Input:          models.CaseInput{Query: "q"},
		TimeoutSeconds: intPtr(1),
	})
	rn := f.newRun(t)

	stuck := agent.Func(func(ctx context.Context, query string, contextMap map[string]interface{}) (*agent.AgentOutput, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	r := newTestRunner(f.db, scorer.NewDefaultRegistry(nil))
	res, err := r.RunCase(context.Background(), rn, f.suite, tc, stuck)
	require.NoError(t, err)

	assert.Equal(t, result.StatusTimeout, res.Status)
	assert.False(t, res.Passed)
	assert.Empty(t, res.Scores, "timed-out executions are not scored")
	require.NotNil(t, res.Error)
	assert.Contains(t, *res.Error, "1s")
	assert.GreaterOrEqual(t, res.ExecutionTimeMs, int64(1000))
}

func TestRunCase_AgentErrorIsRecorded(t *testing.T) {
	f := newRunnerFixture(t, models.CreateSuiteRequest{
		Name:           "broken",
		AgentID:        "neon.stubs:EchoAgent",
		DefaultScorers: []string{"tool_selection"},
	})
	tc := f.addCase(t, models.CreateCaseRequest{
		Name:  "agent-explodes",
		Input: models.CaseInput{Query: "q"},
	})
	rn := f.newRun(t)

	failing := agent.Func(func(ctx context.Context, query string, contextMap map[string]interface{}) (*agent.AgentOutput, error) {
		return nil, errors.New("upstream connection refused")
	})

	r := newTestRunner(f.db, scorer.NewDefaultRegistry(nil))
	res, err := r.RunCase(context.Background(), rn, f.suite, tc, failing)
	require.NoError(t, err)

	assert.Equal(t, result.StatusError, res.Status)
	assert.False(t, res.Passed)
	require.NotNil(t, res.Error)
	assert.Contains(t, *res.Error, "upstream connection refused")
}

func TestRunCase_UnknownScorerIsSkipped(t *testing.T) {
	f := newRunnerFixture(t, models.CreateSuiteRequest{
		Name:    "partial",
		AgentID: "neon.stubs:EchoAgent",
	})
	tc := f.addCase(t, models.CreateCaseRequest{
		Name:          "half-scored",
		Input:         models.CaseInput{Query: "q"},
		ExpectedTools: &[]string{"search"},
		Scorers:       []string{"tool_selection", "hallucinated_scorer"},
	})
	rn := f.newRun(t)

	r := newTestRunner(f.db, scorer.NewDefaultRegistry(nil))
	res, err := r.RunCase(context.Background(), rn, f.suite, tc, searchingAgent())
	require.NoError(t, err)

	assert.Len(t, res.Scores, 1)
	assert.Contains(t, res.Scores, "tool_selection")
	assert.NotContains(t, res.ScoreDetails, "hallucinated_scorer")
	assert.True(t, res.Passed, "average over applied scorers only")
}

// explodingScorer always fails; used to verify a scorer failure is
// surfaced in the details without sinking the whole case.
type explodingScorer struct{}

func (explodingScorer) Name() string { return "exploding" }

func (explodingScorer) Score(ctx context.Context, spec *scorer.CaseSpec, output *agent.AgentOutput) (models.ScoreDetail, error) {
	return models.ScoreDetail{}, errors.New("judge unavailable: 503")
}

func TestRunCase_ScorerFailureLeavesEvidence(t *testing.T) {
	f := newRunnerFixture(t, models.CreateSuiteRequest{
		Name:    "flaky-scorer",
		AgentID: "neon.stubs:EchoAgent",
	})
	tc := f.addCase(t, models.CreateCaseRequest{
		Name:          "scored-despite-failure",
		Input:         models.CaseInput{Query: "q"},
		ExpectedTools: &[]string{"search"},
		Scorers:       []string{"exploding", "tool_selection"},
	})
	rn := f.newRun(t)

	registry := scorer.NewRegistry(explodingScorer{}, scorer.NewToolSelectionScorer())
	r := newTestRunner(f.db, registry)
	res, err := r.RunCase(context.Background(), rn, f.suite, tc, searchingAgent())
	require.NoError(t, err)

	// The failed scorer contributes no score but leaves an audit trail.
	assert.NotContains(t, res.Scores, "exploding")
	require.Contains(t, res.ScoreDetails, "exploding")
	detail := res.ScoreDetails["exploding"]
	assert.Zero(t, detail.Score)
	assert.Equal(t, "scorer failed", detail.Reason)
	require.NotEmpty(t, detail.Evidence)
	assert.Contains(t, detail.Evidence[0], "judge unavailable")

	// The healthy scorer still decides the outcome.
	assert.InDelta(t, 1.0, res.Scores["tool_selection"], 1e-9)
	assert.True(t, res.Passed)
}

func TestRunCase_PassedRequiresThreshold(t *testing.T) {
	f := newRunnerFixture(t, models.CreateSuiteRequest{
		Name:           "strict",
		AgentID:        "neon.stubs:EchoAgent",
		DefaultScorers: []string{"tool_selection"},
	})
	tc := f.addCase(t, models.CreateCaseRequest{
		Name:     "too-strict",
		Input:    models.CaseInput{Query: "q"},
		MinScore: floatPtr(0.95),
		// No expectations set: tool_selection lands on its neutral 0.8.
	})
	rn := f.newRun(t)

	r := newTestRunner(f.db, scorer.NewDefaultRegistry(nil))
	res, err := r.RunCase(context.Background(), rn, f.suite, tc, searchingAgent())
	require.NoError(t, err)

	assert.Equal(t, result.StatusSuccess, res.Status)
	assert.InDelta(t, 0.8, res.Scores["tool_selection"], 1e-9)
	assert.False(t, res.Passed)
}

func TestRunCase_NoAppliedScoresNeverPasses(t *testing.T) {
	f := newRunnerFixture(t, models.CreateSuiteRequest{
		Name:    "unscored",
		AgentID: "neon.stubs:EchoAgent",
	})
	tc := f.addCase(t, models.CreateCaseRequest{
		Name:     "free-pass-attempt",
		Input:    models.CaseInput{Query: "q"},
		Scorers:  []string{"hallucinated_scorer"},
		MinScore: floatPtr(0.0), // an empty average still must not clear this
	})
	rn := f.newRun(t)

	r := newTestRunner(f.db, scorer.NewDefaultRegistry(nil))
	res, err := r.RunCase(context.Background(), rn, f.suite, tc, searchingAgent())
	require.NoError(t, err)

	assert.Equal(t, result.StatusSuccess, res.Status)
	assert.Empty(t, res.Scores)
	assert.False(t, res.Passed)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
