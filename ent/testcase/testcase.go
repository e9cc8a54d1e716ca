// Code generated by ent, DO NOT EDIT.

package testcase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the testcase type in the database.
	Label = "test_case"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "case_id"
	// FieldSuiteID holds the string denoting the suite_id field in the database.
	FieldSuiteID = "suite_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldInput holds the string denoting the input field in the database.
	FieldInput = "input"
	// FieldExpectedTools holds the string denoting the expected_tools field in the database.
	FieldExpectedTools = "expected_tools"
	// FieldExpectedToolSequence holds the string denoting the expected_tool_sequence field in the database.
	FieldExpectedToolSequence = "expected_tool_sequence"
	// FieldExpectedOutputContains holds the string denoting the expected_output_contains field in the database.
	FieldExpectedOutputContains = "expected_output_contains"
	// FieldExpectedOutputPattern holds the string denoting the expected_output_pattern field in the database.
	FieldExpectedOutputPattern = "expected_output_pattern"
	// FieldScorers holds the string denoting the scorers field in the database.
	FieldScorers = "scorers"
	// FieldScorerConfig holds the string denoting the scorer_config field in the database.
	FieldScorerConfig = "scorer_config"
	// FieldMinScore holds the string denoting the min_score field in the database.
	FieldMinScore = "min_score"
	// FieldTimeoutSeconds holds the string denoting the timeout_seconds field in the database.
	FieldTimeoutSeconds = "timeout_seconds"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSuite holds the string denoting the suite edge name in mutations.
	EdgeSuite = "suite"
	// EdgeResults holds the string denoting the results edge name in mutations.
	EdgeResults = "results"
	// SuiteFieldID holds the string denoting the ID field of the Suite.
	SuiteFieldID = "suite_id"
	// ResultFieldID holds the string denoting the ID field of the Result.
	ResultFieldID = "result_id"
	// Table holds the table name of the testcase in the database.
	Table = "test_cases"
	// SuiteTable is the table that holds the suite relation/edge.
	SuiteTable = "test_cases"
	// SuiteInverseTable is the table name for the Suite entity.
	// It exists in this package in order to avoid circular dependency with the "suite" package.
	SuiteInverseTable = "suites"
	// SuiteColumn is the table column denoting the suite relation/edge.
	SuiteColumn = "suite_id"
	// ResultsTable is the table that holds the results relation/edge.
	ResultsTable = "results"
	// ResultsInverseTable is the table name for the Result entity.
	// It exists in this package in order to avoid circular dependency with the "result" package.
	ResultsInverseTable = "results"
	// ResultsColumn is the table column denoting the results relation/edge.
	ResultsColumn = "case_id"
)

// Columns holds all SQL columns for testcase fields.
var Columns = []string{
	FieldID,
	FieldSuiteID,
	FieldName,
	FieldDescription,
	FieldInput,
	FieldExpectedTools,
	FieldExpectedToolSequence,
	FieldExpectedOutputContains,
	FieldExpectedOutputPattern,
	FieldScorers,
	FieldScorerConfig,
	FieldMinScore,
	FieldTimeoutSeconds,
	FieldTags,
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
	// DefaultMinScore holds the default value on creation for the "min_score" field.
	DefaultMinScore float64
	// DefaultTimeoutSeconds holds the default value on creation for the "timeout_seconds" field.
	DefaultTimeoutSeconds int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the TestCase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySuiteID orders the results by the suite_id field.
func BySuiteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuiteID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByExpectedOutputPattern orders the results by the expected_output_pattern field.
func ByExpectedOutputPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedOutputPattern, opts...).ToFunc()
}

// ByMinScore orders the results by the min_score field.
func ByMinScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinScore, opts...).ToFunc()
}

// ByTimeoutSeconds orders the results by the timeout_seconds field.
func ByTimeoutSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutSeconds, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySuiteField orders the results by suite field.
func BySuiteField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSuiteStep(), sql.OrderByField(field, opts...))
	}
}

// ByResultsCount orders the results by results count.
func ByResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResultsStep(), opts...)
	}
}

// ByResults orders the results by results terms.
func ByResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSuiteStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SuiteInverseTable, SuiteFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SuiteTable, SuiteColumn),
	)
}
func newResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResultsInverseTable, ResultFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
	)
}
