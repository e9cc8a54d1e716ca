// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/neonhq/neon/ent/predicate"
	"github.com/neonhq/neon/ent/result"
	"github.com/neonhq/neon/ent/suite"
	"github.com/neonhq/neon/ent/testcase"
	"github.com/neonhq/neon/pkg/models"
)

// TestCaseUpdate is the builder for updating TestCase entities.
type TestCaseUpdate struct {
	config
	hooks    []Hook
	mutation *TestCaseMutation
}

// Where appends a list predicates to the TestCaseUpdate builder.
func (_u *TestCaseUpdate) Where(ps ...predicate.TestCase) *TestCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSuiteID sets the "suite_id" field.
func (_u *TestCaseUpdate) SetSuiteID(v string) *TestCaseUpdate {
	_u.mutation.SetSuiteID(v)
	return _u
}

// SetNillableSuiteID sets the "suite_id" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableSuiteID(v *string) *TestCaseUpdate {
	if v != nil {
		_u.SetSuiteID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TestCaseUpdate) SetName(v string) *TestCaseUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableName(v *string) *TestCaseUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TestCaseUpdate) SetDescription(v string) *TestCaseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableDescription(v *string) *TestCaseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TestCaseUpdate) ClearDescription() *TestCaseUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetInput sets the "input" field.
func (_u *TestCaseUpdate) SetInput(v models.CaseInput) *TestCaseUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableInput(v *models.CaseInput) *TestCaseUpdate {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetExpectedTools sets the "expected_tools" field.
func (_u *TestCaseUpdate) SetExpectedTools(v []string) *TestCaseUpdate {
	_u.mutation.SetExpectedTools(v)
	return _u
}

// AppendExpectedTools appends value to the "expected_tools" field.
func (_u *TestCaseUpdate) AppendExpectedTools(v []string) *TestCaseUpdate {
	_u.mutation.AppendExpectedTools(v)
	return _u
}

// ClearExpectedTools clears the value of the "expected_tools" field.
func (_u *TestCaseUpdate) ClearExpectedTools() *TestCaseUpdate {
	_u.mutation.ClearExpectedTools()
	return _u
}

// SetExpectedToolSequence sets the "expected_tool_sequence" field.
func (_u *TestCaseUpdate) SetExpectedToolSequence(v []string) *TestCaseUpdate {
	_u.mutation.SetExpectedToolSequence(v)
	return _u
}

// AppendExpectedToolSequence appends value to the "expected_tool_sequence" field.
func (_u *TestCaseUpdate) AppendExpectedToolSequence(v []string) *TestCaseUpdate {
	_u.mutation.AppendExpectedToolSequence(v)
	return _u
}

// ClearExpectedToolSequence clears the value of the "expected_tool_sequence" field.
func (_u *TestCaseUpdate) ClearExpectedToolSequence() *TestCaseUpdate {
	_u.mutation.ClearExpectedToolSequence()
	return _u
}

// SetExpectedOutputContains sets the "expected_output_contains" field.
func (_u *TestCaseUpdate) SetExpectedOutputContains(v []string) *TestCaseUpdate {
	_u.mutation.SetExpectedOutputContains(v)
	return _u
}

// AppendExpectedOutputContains appends value to the "expected_output_contains" field.
func (_u *TestCaseUpdate) AppendExpectedOutputContains(v []string) *TestCaseUpdate {
	_u.mutation.AppendExpectedOutputContains(v)
	return _u
}

// ClearExpectedOutputContains clears the value of the "expected_output_contains" field.
func (_u *TestCaseUpdate) ClearExpectedOutputContains() *TestCaseUpdate {
	_u.mutation.ClearExpectedOutputContains()
	return _u
}

// SetExpectedOutputPattern sets the "expected_output_pattern" field.
func (_u *TestCaseUpdate) SetExpectedOutputPattern(v string) *TestCaseUpdate {
	_u.mutation.SetExpectedOutputPattern(v)
	return _u
}

// SetNillableExpectedOutputPattern sets the "expected_output_pattern" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableExpectedOutputPattern(v *string) *TestCaseUpdate {
	if v != nil {
		_u.SetExpectedOutputPattern(*v)
	}
	return _u
}

// ClearExpectedOutputPattern clears the value of the "expected_output_pattern" field.
func (_u *TestCaseUpdate) ClearExpectedOutputPattern() *TestCaseUpdate {
	_u.mutation.ClearExpectedOutputPattern()
	return _u
}

// SetScorers sets the "scorers" field.
func (_u *TestCaseUpdate) SetScorers(v []string) *TestCaseUpdate {
	_u.mutation.SetScorers(v)
	return _u
}

// AppendScorers appends value to the "scorers" field.
func (_u *TestCaseUpdate) AppendScorers(v []string) *TestCaseUpdate {
	_u.mutation.AppendScorers(v)
	return _u
}

// ClearScorers clears the value of the "scorers" field.
func (_u *TestCaseUpdate) ClearScorers() *TestCaseUpdate {
	_u.mutation.ClearScorers()
	return _u
}

// SetScorerConfig sets the "scorer_config" field.
func (_u *TestCaseUpdate) SetScorerConfig(v map[string]interface{}) *TestCaseUpdate {
	_u.mutation.SetScorerConfig(v)
	return _u
}

// ClearScorerConfig clears the value of the "scorer_config" field.
func (_u *TestCaseUpdate) ClearScorerConfig() *TestCaseUpdate {
	_u.mutation.ClearScorerConfig()
	return _u
}

// SetMinScore sets the "min_score" field.
func (_u *TestCaseUpdate) SetMinScore(v float64) *TestCaseUpdate {
	_u.mutation.ResetMinScore()
	_u.mutation.SetMinScore(v)
	return _u
}

// SetNillableMinScore sets the "min_score" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableMinScore(v *float64) *TestCaseUpdate {
	if v != nil {
		_u.SetMinScore(*v)
	}
	return _u
}

// AddMinScore adds value to the "min_score" field.
func (_u *TestCaseUpdate) AddMinScore(v float64) *TestCaseUpdate {
	_u.mutation.AddMinScore(v)
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *TestCaseUpdate) SetTimeoutSeconds(v int) *TestCaseUpdate {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableTimeoutSeconds(v *int) *TestCaseUpdate {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *TestCaseUpdate) AddTimeoutSeconds(v int) *TestCaseUpdate {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetTags sets the "tags" field.
func (_u *TestCaseUpdate) SetTags(v []string) *TestCaseUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *TestCaseUpdate) AppendTags(v []string) *TestCaseUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *TestCaseUpdate) ClearTags() *TestCaseUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestCaseUpdate) SetUpdatedAt(v time.Time) *TestCaseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSuite sets the "suite" edge to the Suite entity.
func (_u *TestCaseUpdate) SetSuite(v *Suite) *TestCaseUpdate {
	return _u.SetSuiteID(v.ID)
}

// AddResultIDs adds the "results" edge to the Result entity by IDs.
func (_u *TestCaseUpdate) AddResultIDs(ids ...string) *TestCaseUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the Result entity.
func (_u *TestCaseUpdate) AddResults(v ...*Result) *TestCaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the TestCaseMutation object of the builder.
func (_u *TestCaseUpdate) Mutation() *TestCaseMutation {
	return _u.mutation
}

// ClearSuite clears the "suite" edge to the Suite entity.
func (_u *TestCaseUpdate) ClearSuite() *TestCaseUpdate {
	_u.mutation.ClearSuite()
	return _u
}

// ClearResults clears all "results" edges to the Result entity.
func (_u *TestCaseUpdate) ClearResults() *TestCaseUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to Result entities by IDs.
func (_u *TestCaseUpdate) RemoveResultIDs(ids ...string) *TestCaseUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to Result entities.
func (_u *TestCaseUpdate) RemoveResults(v ...*Result) *TestCaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestCaseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestCaseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := testcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestCaseUpdate) check() error {
	if _u.mutation.SuiteCleared() && len(_u.mutation.SuiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TestCase.suite"`)
	}
	return nil
}

func (_u *TestCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testcase.Table, testcase.Columns, sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(testcase.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(testcase.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(testcase.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(testcase.FieldInput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ExpectedTools(); ok {
		_spec.SetField(testcase.FieldExpectedTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpectedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testcase.FieldExpectedTools, value)
		})
	}
	if _u.mutation.ExpectedToolsCleared() {
		_spec.ClearField(testcase.FieldExpectedTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpectedToolSequence(); ok {
		_spec.SetField(testcase.FieldExpectedToolSequence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpectedToolSequence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testcase.FieldExpectedToolSequence, value)
		})
	}
	if _u.mutation.ExpectedToolSequenceCleared() {
		_spec.ClearField(testcase.FieldExpectedToolSequence, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpectedOutputContains(); ok {
		_spec.SetField(testcase.FieldExpectedOutputContains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpectedOutputContains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testcase.FieldExpectedOutputContains, value)
		})
	}
	if _u.mutation.ExpectedOutputContainsCleared() {
		_spec.ClearField(testcase.FieldExpectedOutputContains, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpectedOutputPattern(); ok {
		_spec.SetField(testcase.FieldExpectedOutputPattern, field.TypeString, value)
	}
	if _u.mutation.ExpectedOutputPatternCleared() {
		_spec.ClearField(testcase.FieldExpectedOutputPattern, field.TypeString)
	}
	if value, ok := _u.mutation.Scorers(); ok {
		_spec.SetField(testcase.FieldScorers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScorers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testcase.FieldScorers, value)
		})
	}
	if _u.mutation.ScorersCleared() {
		_spec.ClearField(testcase.FieldScorers, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScorerConfig(); ok {
		_spec.SetField(testcase.FieldScorerConfig, field.TypeJSON, value)
	}
	if _u.mutation.ScorerConfigCleared() {
		_spec.ClearField(testcase.FieldScorerConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.MinScore(); ok {
		_spec.SetField(testcase.FieldMinScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinScore(); ok {
		_spec.AddField(testcase.FieldMinScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(testcase.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(testcase.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(testcase.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testcase.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(testcase.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(testcase.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SuiteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testcase.SuiteTable,
			Columns: []string{testcase.SuiteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suite.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuiteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testcase.SuiteTable,
			Columns: []string{testcase.SuiteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suite.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   testcase.ResultsTable,
			Columns: []string{testcase.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(result.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   testcase.ResultsTable,
			Columns: []string{testcase.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(result.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   testcase.ResultsTable,
			Columns: []string{testcase.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(result.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestCaseUpdateOne is the builder for updating a single TestCase entity.
type TestCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestCaseMutation
}

// SetSuiteID sets the "suite_id" field.
func (_u *TestCaseUpdateOne) SetSuiteID(v string) *TestCaseUpdateOne {
	_u.mutation.SetSuiteID(v)
	return _u
}

// SetNillableSuiteID sets the "suite_id" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableSuiteID(v *string) *TestCaseUpdateOne {
	if v != nil {
		_u.SetSuiteID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TestCaseUpdateOne) SetName(v string) *TestCaseUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableName(v *string) *TestCaseUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TestCaseUpdateOne) SetDescription(v string) *TestCaseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableDescription(v *string) *TestCaseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TestCaseUpdateOne) ClearDescription() *TestCaseUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetInput sets the "input" field.
func (_u *TestCaseUpdateOne) SetInput(v models.CaseInput) *TestCaseUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableInput(v *models.CaseInput) *TestCaseUpdateOne {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetExpectedTools sets the "expected_tools" field.
func (_u *TestCaseUpdateOne) SetExpectedTools(v []string) *TestCaseUpdateOne {
	_u.mutation.SetExpectedTools(v)
	return _u
}

// AppendExpectedTools appends value to the "expected_tools" field.
func (_u *TestCaseUpdateOne) AppendExpectedTools(v []string) *TestCaseUpdateOne {
	_u.mutation.AppendExpectedTools(v)
	return _u
}

// ClearExpectedTools clears the value of the "expected_tools" field.
func (_u *TestCaseUpdateOne) ClearExpectedTools() *TestCaseUpdateOne {
	_u.mutation.ClearExpectedTools()
	return _u
}

// SetExpectedToolSequence sets the "expected_tool_sequence" field.
func (_u *TestCaseUpdateOne) SetExpectedToolSequence(v []string) *TestCaseUpdateOne {
	_u.mutation.SetExpectedToolSequence(v)
	return _u
}

// AppendExpectedToolSequence appends value to the "expected_tool_sequence" field.
func (_u *TestCaseUpdateOne) AppendExpectedToolSequence(v []string) *TestCaseUpdateOne {
	_u.mutation.AppendExpectedToolSequence(v)
	return _u
}

// ClearExpectedToolSequence clears the value of the "expected_tool_sequence" field.
func (_u *TestCaseUpdateOne) ClearExpectedToolSequence() *TestCaseUpdateOne {
	_u.mutation.ClearExpectedToolSequence()
	return _u
}

// SetExpectedOutputContains sets the "expected_output_contains" field.
func (_u *TestCaseUpdateOne) SetExpectedOutputContains(v []string) *TestCaseUpdateOne {
	_u.mutation.SetExpectedOutputContains(v)
	return _u
}

// AppendExpectedOutputContains appends value to the "expected_output_contains" field.
func (_u *TestCaseUpdateOne) AppendExpectedOutputContains(v []string) *TestCaseUpdateOne {
	_u.mutation.AppendExpectedOutputContains(v)
	return _u
}

// ClearExpectedOutputContains clears the value of the "expected_output_contains" field.
func (_u *TestCaseUpdateOne) ClearExpectedOutputContains() *TestCaseUpdateOne {
	_u.mutation.ClearExpectedOutputContains()
	return _u
}

// SetExpectedOutputPattern sets the "expected_output_pattern" field.
func (_u *TestCaseUpdateOne) SetExpectedOutputPattern(v string) *TestCaseUpdateOne {
	_u.mutation.SetExpectedOutputPattern(v)
	return _u
}

// SetNillableExpectedOutputPattern sets the "expected_output_pattern" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableExpectedOutputPattern(v *string) *TestCaseUpdateOne {
	if v != nil {
		_u.SetExpectedOutputPattern(*v)
	}
	return _u
}

// ClearExpectedOutputPattern clears the value of the "expected_output_pattern" field.
func (_u *TestCaseUpdateOne) ClearExpectedOutputPattern() *TestCaseUpdateOne {
	_u.mutation.ClearExpectedOutputPattern()
	return _u
}

// SetScorers sets the "scorers" field.
func (_u *TestCaseUpdateOne) SetScorers(v []string) *TestCaseUpdateOne {
	_u.mutation.SetScorers(v)
	return _u
}

// AppendScorers appends value to the "scorers" field.
func (_u *TestCaseUpdateOne) AppendScorers(v []string) *TestCaseUpdateOne {
	_u.mutation.AppendScorers(v)
	return _u
}

// ClearScorers clears the value of the "scorers" field.
func (_u *TestCaseUpdateOne) ClearScorers() *TestCaseUpdateOne {
	_u.mutation.ClearScorers()
	return _u
}

// SetScorerConfig sets the "scorer_config" field.
func (_u *TestCaseUpdateOne) SetScorerConfig(v map[string]interface{}) *TestCaseUpdateOne {
	_u.mutation.SetScorerConfig(v)
	return _u
}

// ClearScorerConfig clears the value of the "scorer_config" field.
func (_u *TestCaseUpdateOne) ClearScorerConfig() *TestCaseUpdateOne {
	_u.mutation.ClearScorerConfig()
	return _u
}

// SetMinScore sets the "min_score" field.
func (_u *TestCaseUpdateOne) SetMinScore(v float64) *TestCaseUpdateOne {
	_u.mutation.ResetMinScore()
	_u.mutation.SetMinScore(v)
	return _u
}

// SetNillableMinScore sets the "min_score" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableMinScore(v *float64) *TestCaseUpdateOne {
	if v != nil {
		_u.SetMinScore(*v)
	}
	return _u
}

// AddMinScore adds value to the "min_score" field.
func (_u *TestCaseUpdateOne) AddMinScore(v float64) *TestCaseUpdateOne {
	_u.mutation.AddMinScore(v)
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *TestCaseUpdateOne) SetTimeoutSeconds(v int) *TestCaseUpdateOne {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableTimeoutSeconds(v *int) *TestCaseUpdateOne {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *TestCaseUpdateOne) AddTimeoutSeconds(v int) *TestCaseUpdateOne {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetTags sets the "tags" field.
func (_u *TestCaseUpdateOne) SetTags(v []string) *TestCaseUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *TestCaseUpdateOne) AppendTags(v []string) *TestCaseUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *TestCaseUpdateOne) ClearTags() *TestCaseUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestCaseUpdateOne) SetUpdatedAt(v time.Time) *TestCaseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSuite sets the "suite" edge to the Suite entity.
func (_u *TestCaseUpdateOne) SetSuite(v *Suite) *TestCaseUpdateOne {
	return _u.SetSuiteID(v.ID)
}

// AddResultIDs adds the "results" edge to the Result entity by IDs.
func (_u *TestCaseUpdateOne) AddResultIDs(ids ...string) *TestCaseUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the Result entity.
func (_u *TestCaseUpdateOne) AddResults(v ...*Result) *TestCaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the TestCaseMutation object of the builder.
func (_u *TestCaseUpdateOne) Mutation() *TestCaseMutation {
	return _u.mutation
}

// ClearSuite clears the "suite" edge to the Suite entity.
func (_u *TestCaseUpdateOne) ClearSuite() *TestCaseUpdateOne {
	_u.mutation.ClearSuite()
	return _u
}

// ClearResults clears all "results" edges to the Result entity.
func (_u *TestCaseUpdateOne) ClearResults() *TestCaseUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to Result entities by IDs.
func (_u *TestCaseUpdateOne) RemoveResultIDs(ids ...string) *TestCaseUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to Result entities.
func (_u *TestCaseUpdateOne) RemoveResults(v ...*Result) *TestCaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the TestCaseUpdate builder.
func (_u *TestCaseUpdateOne) Where(ps ...predicate.TestCase) *TestCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestCaseUpdateOne) Select(field string, fields ...string) *TestCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestCase entity.
func (_u *TestCaseUpdateOne) Save(ctx context.Context) (*TestCase, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestCaseUpdateOne) SaveX(ctx context.Context) *TestCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestCaseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := testcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestCaseUpdateOne) check() error {
	if _u.mutation.SuiteCleared() && len(_u.mutation.SuiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TestCase.suite"`)
	}
	return nil
}

func (_u *TestCaseUpdateOne) sqlSave(ctx context.Context) (_node *TestCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testcase.Table, testcase.Columns, sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testcase.FieldID)
		for _, f := range fields {
			if !testcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testcase.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(testcase.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(testcase.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(testcase.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(testcase.FieldInput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ExpectedTools(); ok {
		_spec.SetField(testcase.FieldExpectedTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpectedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testcase.FieldExpectedTools, value)
		})
	}
	if _u.mutation.ExpectedToolsCleared() {
		_spec.ClearField(testcase.FieldExpectedTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpectedToolSequence(); ok {
		_spec.SetField(testcase.FieldExpectedToolSequence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpectedToolSequence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testcase.FieldExpectedToolSequence, value)
		})
	}
	if _u.mutation.ExpectedToolSequenceCleared() {
		_spec.ClearField(testcase.FieldExpectedToolSequence, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpectedOutputContains(); ok {
		_spec.SetField(testcase.FieldExpectedOutputContains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpectedOutputContains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testcase.FieldExpectedOutputContains, value)
		})
	}
	if _u.mutation.ExpectedOutputContainsCleared() {
		_spec.ClearField(testcase.FieldExpectedOutputContains, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpectedOutputPattern(); ok {
		_spec.SetField(testcase.FieldExpectedOutputPattern, field.TypeString, value)
	}
	if _u.mutation.ExpectedOutputPatternCleared() {
		_spec.ClearField(testcase.FieldExpectedOutputPattern, field.TypeString)
	}
	if value, ok := _u.mutation.Scorers(); ok {
		_spec.SetField(testcase.FieldScorers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScorers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testcase.FieldScorers, value)
		})
	}
	if _u.mutation.ScorersCleared() {
		_spec.ClearField(testcase.FieldScorers, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScorerConfig(); ok {
		_spec.SetField(testcase.FieldScorerConfig, field.TypeJSON, value)
	}
	if _u.mutation.ScorerConfigCleared() {
		_spec.ClearField(testcase.FieldScorerConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.MinScore(); ok {
		_spec.SetField(testcase.FieldMinScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinScore(); ok {
		_spec.AddField(testcase.FieldMinScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(testcase.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(testcase.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(testcase.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testcase.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(testcase.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(testcase.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SuiteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testcase.SuiteTable,
			Columns: []string{testcase.SuiteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suite.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuiteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testcase.SuiteTable,
			Columns: []string{testcase.SuiteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suite.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   testcase.ResultsTable,
			Columns: []string{testcase.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(result.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   testcase.ResultsTable,
			Columns: []string{testcase.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(result.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   testcase.ResultsTable,
			Columns: []string{testcase.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(result.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TestCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
