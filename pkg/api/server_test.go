package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/pkg/agent"
	"github.com/neonhq/neon/pkg/compare"
	"github.com/neonhq/neon/pkg/models"
	"github.com/neonhq/neon/pkg/orchestrator"
	"github.com/neonhq/neon/pkg/scorer"
	"github.com/neonhq/neon/pkg/services"
	testdb "github.com/neonhq/neon/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	readerToken = "reader-tok"
	writerToken = "writer-tok"
	runnerToken = "runner-tok"
	otherToken  = "other-tok"
)

type apiFixture struct {
	router *gin.Engine
	runs   *services.RunService
	proj   *ent.Project
	other  *ent.Project
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	ctx := context.Background()
	db := testdb.NewSQLiteTestDB(t)

	projects := services.NewProjectService(db.Client)
	proj, err := projects.CreateProject(ctx, models.CreateProjectRequest{Name: "API", Slug: "api"})
	require.NoError(t, err)
	other, err := projects.CreateProject(ctx, models.CreateProjectRequest{Name: "Other", Slug: "other"})
	require.NoError(t, err)

	registry := agent.NewRegistry()
	registry.Register("test.agents", "Search", agent.Func(
		func(ctx context.Context, query string, contextMap map[string]interface{}) (*agent.AgentOutput, error) {
			return &agent.AgentOutput{Output: "resolved", ToolsCalled: []string{"search"}}, nil
		}))

	suites := services.NewSuiteService(db.Client)
	runs := services.NewRunService(db.Client)
	stats := services.NewStatsService(db)
	logger := slog.New(slog.DiscardHandler)
	orch := orchestrator.New(db.Client, runs, suites, agent.NewLoader(registry),
		scorer.NewDefaultRegistry(nil), logger,
		orchestrator.Config{HeartbeatInterval: 50 * time.Millisecond})

	server := NewServer(db, suites, runs, stats, orch, compare.New(runs), logger)
	router := server.Router(map[string]models.Principal{
		readerToken: {ProjectID: proj.ID, Scopes: []string{models.ScopeRead}},
		writerToken: {ProjectID: proj.ID, Scopes: []string{models.ScopeRead, models.ScopeWrite}},
		runnerToken: {ProjectID: proj.ID, Scopes: []string{models.ScopeRead, models.ScopeExecute}},
		otherToken:  {ProjectID: other.ID, Scopes: []string{models.ScopeAdmin}},
	})

	return &apiFixture{router: router, runs: runs, proj: proj, other: other}
}

// do issues a request with an optional bearer token and JSON body.
func (f *apiFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func (f *apiFixture) createSuite(t *testing.T, req models.CreateSuiteRequest) map[string]interface{} {
	t.Helper()
	w := f.do(t, http.MethodPost, "/api/v1/suites", writerToken, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[map[string]interface{}](t, w)
}

func TestHealthAndMetricsAreUnauthenticated(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]interface{}](t, w)
	assert.Equal(t, "healthy", body["status"])

	w = f.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestAuth_MissingAndInvalidTokens(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/suites", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/suites", "forged", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ScopeEnforcement(t *testing.T) {
	f := newAPIFixture(t)

	// read scope cannot write or execute.
	w := f.do(t, http.MethodPost, "/api/v1/suites", readerToken, models.CreateSuiteRequest{
		Name: "nope", AgentID: "a:b",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodPost, "/api/v1/runs", readerToken, models.CreateRunRequest{SuiteID: "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// write scope cannot execute.
	w = f.do(t, http.MethodPost, "/api/v1/runs", writerToken, models.CreateRunRequest{SuiteID: "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSuiteLifecycle(t *testing.T) {
	f := newAPIFixture(t)

	suite := f.createSuite(t, models.CreateSuiteRequest{
		Name:           "smoke",
		AgentID:        "test.agents:Search",
		DefaultScorers: []string{"tool_selection"},
	})
	suiteID := suite["id"].(string)

	w := f.do(t, http.MethodGet, "/api/v1/suites", readerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	listing := decode[map[string][]map[string]interface{}](t, w)
	require.Len(t, listing["suites"], 1)

	w = f.do(t, http.MethodGet, "/api/v1/suites/"+suiteID, readerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodPut, "/api/v1/suites/"+suiteID, writerToken, models.UpdateSuiteRequest{
		Description: strPtr("updated"),
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[map[string]interface{}](t, w)
	assert.Equal(t, "updated", updated["description"])

	// Duplicate name conflicts.
	w = f.do(t, http.MethodPost, "/api/v1/suites", writerToken, models.CreateSuiteRequest{
		Name: "smoke", AgentID: "test.agents:Search",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Missing required fields fail binding.
	w = f.do(t, http.MethodPost, "/api/v1/suites", writerToken, map[string]string{"name": "incomplete"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodDelete, "/api/v1/suites/"+suiteID, writerToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/suites/"+suiteID, readerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCaseLifecycle(t *testing.T) {
	f := newAPIFixture(t)
	suite := f.createSuite(t, models.CreateSuiteRequest{Name: "cases", AgentID: "test.agents:Search"})
	suiteID := suite["id"].(string)

	w := f.do(t, http.MethodPost, "/api/v1/suites/"+suiteID+"/cases", writerToken, models.CreateCaseRequest{
		Name:          "finds-it",
		Input:         models.CaseInput{Query: "where is the outage?"},
		ExpectedTools: &[]string{"search"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]interface{}](t, w)
	caseID := created["id"].(string)

	w = f.do(t, http.MethodGet, "/api/v1/suites/"+suiteID+"/cases", readerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodPut, "/api/v1/cases/"+caseID, writerToken, models.UpdateCaseRequest{
		MinScore: floatPtr(0.9),
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Invalid regex is a validation error, not a 500.
	w = f.do(t, http.MethodPut, "/api/v1/cases/"+caseID, writerToken, models.UpdateCaseRequest{
		ExpectedOutputPattern: strPtr("([bad"),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodDelete, "/api/v1/cases/"+caseID, writerToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = f.do(t, http.MethodGet, "/api/v1/cases/"+caseID, readerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCrossTenantIsolation(t *testing.T) {
	f := newAPIFixture(t)
	suite := f.createSuite(t, models.CreateSuiteRequest{Name: "private", AgentID: "test.agents:Search"})
	suiteID := suite["id"].(string)

	// Another tenant's token sees not-found, never someone else's data.
	w := f.do(t, http.MethodGet, "/api/v1/suites/"+suiteID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/suites", otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	listing := decode[map[string][]map[string]interface{}](t, w)
	assert.Empty(t, listing["suites"])
}

func TestRunExecutionOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	suite := f.createSuite(t, models.CreateSuiteRequest{
		Name:           "live",
		AgentID:        "test.agents:Search",
		DefaultScorers: []string{"tool_selection"},
	})
	suiteID := suite["id"].(string)

	w := f.do(t, http.MethodPost, "/api/v1/suites/"+suiteID+"/cases", writerToken, models.CreateCaseRequest{
		Name:          "resolves",
		Input:         models.CaseInput{Query: "q"},
		ExpectedTools: &[]string{"search"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodPost, "/api/v1/runs", runnerToken, models.CreateRunRequest{SuiteID: suiteID})
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	created := decode[map[string]interface{}](t, w)
	runID := created["id"].(string)
	assert.Equal(t, "pending", created["status"])

	// The run executes asynchronously after the 202.
	run := f.waitForTerminalRun(t, runID)
	assert.Equal(t, "completed", run["status"])
	summary := run["summary"].(map[string]interface{})
	assert.EqualValues(t, 1, summary["total_cases"])
	assert.EqualValues(t, 1, summary["passed"])

	w = f.do(t, http.MethodGet, "/api/v1/runs/"+runID+"/results", readerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	results := decode[map[string][]map[string]interface{}](t, w)
	require.Len(t, results["results"], 1)
	assert.Equal(t, "resolves", results["results"][0]["case_name"])

	w = f.do(t, http.MethodGet, "/api/v1/runs?suite_id="+suiteID, readerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[map[string]interface{}](t, w)
	assert.EqualValues(t, 1, page["total_count"])

	// A finished run cannot be cancelled.
	w = f.do(t, http.MethodPost, "/api/v1/runs/"+runID+"/cancel", runnerToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCompareOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	suite := f.createSuite(t, models.CreateSuiteRequest{
		Name:           "gate",
		AgentID:        "test.agents:Search",
		DefaultScorers: []string{"tool_selection"},
	})
	suiteID := suite["id"].(string)
	w := f.do(t, http.MethodPost, "/api/v1/suites/"+suiteID+"/cases", writerToken, models.CreateCaseRequest{
		Name:          "stable",
		Input:         models.CaseInput{Query: "q"},
		ExpectedTools: &[]string{"search"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var runIDs []string
	for i := 0; i < 2; i++ {
		w = f.do(t, http.MethodPost, "/api/v1/runs", runnerToken, models.CreateRunRequest{SuiteID: suiteID})
		require.Equal(t, http.StatusAccepted, w.Code)
		created := decode[map[string]interface{}](t, w)
		runID := created["id"].(string)
		f.waitForTerminalRun(t, runID)
		runIDs = append(runIDs, runID)
	}

	w = f.do(t, http.MethodGet,
		fmt.Sprintf("/api/v1/compare?baseline=%s&candidate=%s", runIDs[0], runIDs[1]),
		readerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	report := decode[models.CompareResult](t, w)
	assert.True(t, report.Passed)
	assert.Empty(t, report.Regressions)
	assert.Equal(t, 1, report.Unchanged)

	w = f.do(t, http.MethodGet, "/api/v1/compare?baseline="+runIDs[0], readerToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardOverHTTP(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/dashboard", readerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[models.DashboardStats](t, w)
	assert.Zero(t, stats.TotalRuns)

	w = f.do(t, http.MethodGet, "/api/v1/dashboard?from=yesterday", readerToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// waitForTerminalRun polls the run endpoint until the run leaves the
// pending/running states.
func (f *apiFixture) waitForTerminalRun(t *testing.T, runID string) map[string]interface{} {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		w := f.do(t, http.MethodGet, "/api/v1/runs/"+runID, readerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		run := decode[map[string]interface{}](t, w)
		switch run["status"] {
		case "pending", "running":
			time.Sleep(20 * time.Millisecond)
		default:
			return run
		}
	}
	t.Fatalf("run %s never finished", runID)
	return nil
}

func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
