// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/neonhq/neon/ent/project"
	"github.com/neonhq/neon/ent/suite"
)

// Suite is the model entity for the Suite schema.
type Suite struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Unique per project
	Name string `json:"name,omitempty"`
	// Agent locator, '<module>:<attribute>'
	AgentID string `json:"agent_id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Parallel holds the value of the "parallel" field.
	Parallel bool `json:"parallel,omitempty"`
	// StopOnFailure holds the value of the "stop_on_failure" field.
	StopOnFailure bool `json:"stop_on_failure,omitempty"`
	// DefaultScorers holds the value of the "default_scorers" field.
	DefaultScorers []string `json:"default_scorers,omitempty"`
	// DefaultMinScore holds the value of the "default_min_score" field.
	DefaultMinScore float64 `json:"default_min_score,omitempty"`
	// DefaultTimeoutSeconds holds the value of the "default_timeout_seconds" field.
	DefaultTimeoutSeconds int `json:"default_timeout_seconds,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SuiteQuery when eager-loading is set.
	Edges        SuiteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SuiteEdges holds the relations/edges for other nodes in the graph.
type SuiteEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Cases holds the value of the cases edge.
	Cases []*TestCase `json:"cases,omitempty"`
	// Runs holds the value of the runs edge.
	Runs []*Run `json:"runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SuiteEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// CasesOrErr returns the Cases value or an error if the edge
// was not loaded in eager-loading.
func (e SuiteEdges) CasesOrErr() ([]*TestCase, error) {
	if e.loadedTypes[1] {
		return e.Cases, nil
	}
	return nil, &NotLoadedError{edge: "cases"}
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e SuiteEdges) RunsOrErr() ([]*Run, error) {
	if e.loadedTypes[2] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Suite) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case suite.FieldDefaultScorers:
			values[i] = new([]byte)
		case suite.FieldParallel, suite.FieldStopOnFailure:
			values[i] = new(sql.NullBool)
		case suite.FieldDefaultMinScore:
			values[i] = new(sql.NullFloat64)
		case suite.FieldDefaultTimeoutSeconds:
			values[i] = new(sql.NullInt64)
		case suite.FieldID, suite.FieldProjectID, suite.FieldName, suite.FieldAgentID, suite.FieldDescription:
			values[i] = new(sql.NullString)
		case suite.FieldCreatedAt, suite.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Suite fields.
func (_m *Suite) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case suite.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case suite.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case suite.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case suite.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case suite.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case suite.FieldParallel:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field parallel", values[i])
			} else if value.Valid {
				_m.Parallel = value.Bool
			}
		case suite.FieldStopOnFailure:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field stop_on_failure", values[i])
			} else if value.Valid {
				_m.StopOnFailure = value.Bool
			}
		case suite.FieldDefaultScorers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field default_scorers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DefaultScorers); err != nil {
					return fmt.Errorf("unmarshal field default_scorers: %w", err)
				}
			}
		case suite.FieldDefaultMinScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field default_min_score", values[i])
			} else if value.Valid {
				_m.DefaultMinScore = value.Float64
			}
		case suite.FieldDefaultTimeoutSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_timeout_seconds", values[i])
			} else if value.Valid {
				_m.DefaultTimeoutSeconds = int(value.Int64)
			}
		case suite.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case suite.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Suite.
// This includes values selected through modifiers, order, etc.
func (_m *Suite) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Suite entity.
func (_m *Suite) QueryProject() *ProjectQuery {
	return NewSuiteClient(_m.config).QueryProject(_m)
}

// QueryCases queries the "cases" edge of the Suite entity.
func (_m *Suite) QueryCases() *TestCaseQuery {
	return NewSuiteClient(_m.config).QueryCases(_m)
}

// QueryRuns queries the "runs" edge of the Suite entity.
func (_m *Suite) QueryRuns() *RunQuery {
	return NewSuiteClient(_m.config).QueryRuns(_m)
}

// Update returns a builder for updating this Suite.
// Note that you need to call Suite.Unwrap() before calling this method if this Suite
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Suite) Update() *SuiteUpdateOne {
	return NewSuiteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Suite entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Suite) Unwrap() *Suite {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Suite is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Suite) String() string {
	var builder strings.Builder
	builder.WriteString("Suite(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("parallel=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parallel))
	builder.WriteString(", ")
	builder.WriteString("stop_on_failure=")
	builder.WriteString(fmt.Sprintf("%v", _m.StopOnFailure))
	builder.WriteString(", ")
	builder.WriteString("default_scorers=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultScorers))
	builder.WriteString(", ")
	builder.WriteString("default_min_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultMinScore))
	builder.WriteString(", ")
	builder.WriteString("default_timeout_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultTimeoutSeconds))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Suites is a parsable slice of Suite.
type Suites []*Suite
