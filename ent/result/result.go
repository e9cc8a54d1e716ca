// Code generated by ent, DO NOT EDIT.

package result

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the result type in the database.
	Label = "result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "result_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldCaseName holds the string denoting the case_name field in the database.
	FieldCaseName = "case_name"
	// FieldTraceRunID holds the string denoting the trace_run_id field in the database.
	FieldTraceRunID = "trace_run_id"
	// FieldTraceID holds the string denoting the trace_id field in the database.
	FieldTraceID = "trace_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldScores holds the string denoting the scores field in the database.
	FieldScores = "scores"
	// FieldScoreDetails holds the string denoting the score_details field in the database.
	FieldScoreDetails = "score_details"
	// FieldTraceSummary holds the string denoting the trace_summary field in the database.
	FieldTraceSummary = "trace_summary"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldExecutionTimeMs holds the string denoting the execution_time_ms field in the database.
	FieldExecutionTimeMs = "execution_time_ms"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// EdgeTestCase holds the string denoting the test_case edge name in mutations.
	EdgeTestCase = "test_case"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// TestCaseFieldID holds the string denoting the ID field of the TestCase.
	TestCaseFieldID = "case_id"
	// Table holds the table name of the result in the database.
	Table = "results"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "results"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
	// TestCaseTable is the table that holds the test_case relation/edge.
	TestCaseTable = "results"
	// TestCaseInverseTable is the table name for the TestCase entity.
	// It exists in this package in order to avoid circular dependency with the "testcase" package.
	TestCaseInverseTable = "test_cases"
	// TestCaseColumn is the table column denoting the test_case relation/edge.
	TestCaseColumn = "case_id"
)

// Columns holds all SQL columns for result fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldCaseID,
	FieldCaseName,
	FieldTraceRunID,
	FieldTraceID,
	FieldStatus,
	FieldOutput,
	FieldScores,
	FieldScoreDetails,
	FieldTraceSummary,
	FieldPassed,
	FieldExecutionTimeMs,
	FieldError,
	FieldCreatedAt,
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
	// DefaultPassed holds the default value on creation for the "passed" field.
	DefaultPassed bool
	// DefaultExecutionTimeMs holds the default value on creation for the "execution_time_ms" field.
	DefaultExecutionTimeMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusTimeout Status = "timeout"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSuccess, StatusError, StatusTimeout:
		return nil
	default:
		return fmt.Errorf("result: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Result queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByCaseName orders the results by the case_name field.
func ByCaseName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseName, opts...).ToFunc()
}

// ByTraceRunID orders the results by the trace_run_id field.
func ByTraceRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTraceRunID, opts...).ToFunc()
}

// ByTraceID orders the results by the trace_id field.
func ByTraceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTraceID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByExecutionTimeMs orders the results by the execution_time_ms field.
func ByExecutionTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionTimeMs, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}

// ByTestCaseField orders the results by test_case field.
func ByTestCaseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTestCaseStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
func newTestCaseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TestCaseInverseTable, TestCaseFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TestCaseTable, TestCaseColumn),
	)
}
