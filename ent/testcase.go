// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/neonhq/neon/ent/suite"
	"github.com/neonhq/neon/ent/testcase"
	"github.com/neonhq/neon/pkg/models"
)

// TestCase is the model entity for the TestCase schema.
type TestCase struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SuiteID holds the value of the "suite_id" field.
	SuiteID string `json:"suite_id,omitempty"`
	// Unique per suite; stable join key across runs
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Input holds the value of the "input" field.
	Input models.CaseInput `json:"input,omitempty"`
	// ExpectedTools holds the value of the "expected_tools" field.
	ExpectedTools []string `json:"expected_tools,omitempty"`
	// ExpectedToolSequence holds the value of the "expected_tool_sequence" field.
	ExpectedToolSequence []string `json:"expected_tool_sequence,omitempty"`
	// ExpectedOutputContains holds the value of the "expected_output_contains" field.
	ExpectedOutputContains []string `json:"expected_output_contains,omitempty"`
	// ExpectedOutputPattern holds the value of the "expected_output_pattern" field.
	ExpectedOutputPattern string `json:"expected_output_pattern,omitempty"`
	// Scorers holds the value of the "scorers" field.
	Scorers []string `json:"scorers,omitempty"`
	// ScorerConfig holds the value of the "scorer_config" field.
	ScorerConfig map[string]interface{} `json:"scorer_config,omitempty"`
	// MinScore holds the value of the "min_score" field.
	MinScore float64 `json:"min_score,omitempty"`
	// TimeoutSeconds holds the value of the "timeout_seconds" field.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TestCaseQuery when eager-loading is set.
	Edges        TestCaseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TestCaseEdges holds the relations/edges for other nodes in the graph.
type TestCaseEdges struct {
	// Suite holds the value of the suite edge.
	Suite *Suite `json:"suite,omitempty"`
	// Results holds the value of the results edge.
	Results []*Result `json:"results,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SuiteOrErr returns the Suite value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TestCaseEdges) SuiteOrErr() (*Suite, error) {
	if e.Suite != nil {
		return e.Suite, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: suite.Label}
	}
	return nil, &NotLoadedError{edge: "suite"}
}

// ResultsOrErr returns the Results value or an error if the edge
// was not loaded in eager-loading.
func (e TestCaseEdges) ResultsOrErr() ([]*Result, error) {
	if e.loadedTypes[1] {
		return e.Results, nil
	}
	return nil, &NotLoadedError{edge: "results"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testcase.FieldInput, testcase.FieldExpectedTools, testcase.FieldExpectedToolSequence, testcase.FieldExpectedOutputContains, testcase.FieldScorers, testcase.FieldScorerConfig, testcase.FieldTags:
			values[i] = new([]byte)
		case testcase.FieldMinScore:
			values[i] = new(sql.NullFloat64)
		case testcase.FieldTimeoutSeconds:
			values[i] = new(sql.NullInt64)
		case testcase.FieldID, testcase.FieldSuiteID, testcase.FieldName, testcase.FieldDescription, testcase.FieldExpectedOutputPattern:
			values[i] = new(sql.NullString)
		case testcase.FieldCreatedAt, testcase.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestCase fields.
func (_m *TestCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testcase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case testcase.FieldSuiteID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suite_id", values[i])
			} else if value.Valid {
				_m.SuiteID = value.String
			}
		case testcase.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case testcase.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case testcase.FieldInput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Input); err != nil {
					return fmt.Errorf("unmarshal field input: %w", err)
				}
			}
		case testcase.FieldExpectedTools:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field expected_tools", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExpectedTools); err != nil {
					return fmt.Errorf("unmarshal field expected_tools: %w", err)
				}
			}
		case testcase.FieldExpectedToolSequence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field expected_tool_sequence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExpectedToolSequence); err != nil {
					return fmt.Errorf("unmarshal field expected_tool_sequence: %w", err)
				}
			}
		case testcase.FieldExpectedOutputContains:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field expected_output_contains", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExpectedOutputContains); err != nil {
					return fmt.Errorf("unmarshal field expected_output_contains: %w", err)
				}
			}
		case testcase.FieldExpectedOutputPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected_output_pattern", values[i])
			} else if value.Valid {
				_m.ExpectedOutputPattern = value.String
			}
		case testcase.FieldScorers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scorers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scorers); err != nil {
					return fmt.Errorf("unmarshal field scorers: %w", err)
				}
			}
		case testcase.FieldScorerConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scorer_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ScorerConfig); err != nil {
					return fmt.Errorf("unmarshal field scorer_config: %w", err)
				}
			}
		case testcase.FieldMinScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_score", values[i])
			} else if value.Valid {
				_m.MinScore = value.Float64
			}
		case testcase.FieldTimeoutSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_seconds", values[i])
			} else if value.Valid {
				_m.TimeoutSeconds = int(value.Int64)
			}
		case testcase.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case testcase.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case testcase.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestCase.
// This includes values selected through modifiers, order, etc.
func (_m *TestCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySuite queries the "suite" edge of the TestCase entity.
func (_m *TestCase) QuerySuite() *SuiteQuery {
	return NewTestCaseClient(_m.config).QuerySuite(_m)
}

// QueryResults queries the "results" edge of the TestCase entity.
func (_m *TestCase) QueryResults() *ResultQuery {
	return NewTestCaseClient(_m.config).QueryResults(_m)
}

// Update returns a builder for updating this TestCase.
// Note that you need to call TestCase.Unwrap() before calling this method if this TestCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestCase) Update() *TestCaseUpdateOne {
	return NewTestCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestCase) Unwrap() *TestCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TestCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestCase) String() string {
	var builder strings.Builder
	builder.WriteString("TestCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("suite_id=")
	builder.WriteString(_m.SuiteID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("input=")
	builder.WriteString(fmt.Sprintf("%v", _m.Input))
	builder.WriteString(", ")
	builder.WriteString("expected_tools=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedTools))
	builder.WriteString(", ")
	builder.WriteString("expected_tool_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedToolSequence))
	builder.WriteString(", ")
	builder.WriteString("expected_output_contains=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedOutputContains))
	builder.WriteString(", ")
	builder.WriteString("expected_output_pattern=")
	builder.WriteString(_m.ExpectedOutputPattern)
	builder.WriteString(", ")
	builder.WriteString("scorers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scorers))
	builder.WriteString(", ")
	builder.WriteString("scorer_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScorerConfig))
	builder.WriteString(", ")
	builder.WriteString("min_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinScore))
	builder.WriteString(", ")
	builder.WriteString("timeout_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutSeconds))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TestCases is a parsable slice of TestCase.
type TestCases []*TestCase
