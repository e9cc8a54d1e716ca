// Code generated by ent, DO NOT EDIT.

package suite

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the suite type in the database.
	Label = "suite"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "suite_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldParallel holds the string denoting the parallel field in the database.
	FieldParallel = "parallel"
	// FieldStopOnFailure holds the string denoting the stop_on_failure field in the database.
	FieldStopOnFailure = "stop_on_failure"
	// FieldDefaultScorers holds the string denoting the default_scorers field in the database.
	FieldDefaultScorers = "default_scorers"
	// FieldDefaultMinScore holds the string denoting the default_min_score field in the database.
	FieldDefaultMinScore = "default_min_score"
	// FieldDefaultTimeoutSeconds holds the string denoting the default_timeout_seconds field in the database.
	FieldDefaultTimeoutSeconds = "default_timeout_seconds"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeCases holds the string denoting the cases edge name in mutations.
	EdgeCases = "cases"
	// EdgeRuns holds the string denoting the runs edge name in mutations.
	EdgeRuns = "runs"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// TestCaseFieldID holds the string denoting the ID field of the TestCase.
	TestCaseFieldID = "case_id"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// Table holds the table name of the suite in the database.
	Table = "suites"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "suites"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// CasesTable is the table that holds the cases relation/edge.
	CasesTable = "test_cases"
	// CasesInverseTable is the table name for the TestCase entity.
	// It exists in this package in order to avoid circular dependency with the "testcase" package.
	CasesInverseTable = "test_cases"
	// CasesColumn is the table column denoting the cases relation/edge.
	CasesColumn = "suite_id"
	// RunsTable is the table that holds the runs relation/edge.
	RunsTable = "runs"
	// RunsInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunsInverseTable = "runs"
	// RunsColumn is the table column denoting the runs relation/edge.
	RunsColumn = "suite_id"
)

// Columns holds all SQL columns for suite fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldName,
	FieldAgentID,
	FieldDescription,
	FieldParallel,
	FieldStopOnFailure,
	FieldDefaultScorers,
	FieldDefaultMinScore,
	FieldDefaultTimeoutSeconds,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultParallel holds the default value on creation for the "parallel" field.
	DefaultParallel bool
	// DefaultStopOnFailure holds the default value on creation for the "stop_on_failure" field.
	DefaultStopOnFailure bool
	// DefaultDefaultMinScore holds the default value on creation for the "default_min_score" field.
	DefaultDefaultMinScore float64
	// DefaultDefaultTimeoutSeconds holds the default value on creation for the "default_timeout_seconds" field.
	DefaultDefaultTimeoutSeconds int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Suite queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByParallel orders the results by the parallel field.
func ByParallel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParallel, opts...).ToFunc()
}

// ByStopOnFailure orders the results by the stop_on_failure field.
func ByStopOnFailure(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStopOnFailure, opts...).ToFunc()
}

// ByDefaultMinScore orders the results by the default_min_score field.
func ByDefaultMinScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultMinScore, opts...).ToFunc()
}

// ByDefaultTimeoutSeconds orders the results by the default_timeout_seconds field.
func ByDefaultTimeoutSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultTimeoutSeconds, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByCasesCount orders the results by cases count.
func ByCasesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCasesStep(), opts...)
	}
}

// ByCases orders the results by cases terms.
func ByCases(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCasesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRunsCount orders the results by runs count.
func ByRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRunsStep(), opts...)
	}
}

// ByRuns orders the results by runs terms.
func ByRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newCasesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CasesInverseTable, TestCaseFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CasesTable, CasesColumn),
	)
}
func newRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunsInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
	)
}
