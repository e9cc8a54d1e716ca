package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/pkg/database"
	"github.com/neonhq/neon/pkg/models"
	testdb "github.com/neonhq/neon/test/database"
)

// fixture bundles an isolated store, the services over it, and a
// pre-created project to scope everything to.
type fixture struct {
	db       *database.Client
	projects *ProjectService
	suites   *SuiteService
	runs     *RunService
	stats    *StatsService
	project  *ent.Project
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureOn(t, testdb.NewSQLiteTestDB(t))
}

func newFixtureOn(t *testing.T, db *database.Client) *fixture {
	t.Helper()

	projects := NewProjectService(db.Client)
	p, err := projects.CreateProject(context.Background(), models.CreateProjectRequest{
		Name: "Fixture Project",
		Slug: "fixture",
	})
	require.NoError(t, err)

	return &fixture{
		db:       db,
		projects: projects,
		suites:   NewSuiteService(db.Client),
		runs:     NewRunService(db.Client),
		stats:    NewStatsService(db),
		project:  p,
	}
}

// seedSuite creates a suite with one valid case so runs can be created
// against it.
func (f *fixture) seedSuite(t *testing.T, name string) *ent.Suite {
	t.Helper()
	ctx := context.Background()

	st, err := f.suites.CreateSuite(ctx, f.project.ID, models.CreateSuiteRequest{
		Name:    name,
		AgentID: "neon.stubs:EchoAgent",
	})
	require.NoError(t, err)

	_, err = f.suites.CreateCase(ctx, f.project.ID, st.ID, models.CreateCaseRequest{
		Name:  "baseline-case",
		Input: models.CaseInput{Query: "what is the status of payments?"},
	})
	require.NoError(t, err)
	return st
}

func boolPtr(v bool) *bool          { return &v }
func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
func strPtr(v string) *string       { return &v }
func slicePtr(v []string) *[]string { return &v }
