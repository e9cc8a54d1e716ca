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
	"github.com/neonhq/neon/ent/project"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/ent/suite"
	"github.com/neonhq/neon/ent/testcase"
)

// SuiteUpdate is the builder for updating Suite entities.
type SuiteUpdate struct {
	config
	hooks    []Hook
	mutation *SuiteMutation
}

// Where appends a list predicates to the SuiteUpdate builder.
func (_u *SuiteUpdate) Where(ps ...predicate.Suite) *SuiteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *SuiteUpdate) SetProjectID(v string) *SuiteUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SuiteUpdate) SetNillableProjectID(v *string) *SuiteUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SuiteUpdate) SetName(v string) *SuiteUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SuiteUpdate) SetNillableName(v *string) *SuiteUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *SuiteUpdate) SetAgentID(v string) *SuiteUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *SuiteUpdate) SetNillableAgentID(v *string) *SuiteUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SuiteUpdate) SetDescription(v string) *SuiteUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SuiteUpdate) SetNillableDescription(v *string) *SuiteUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SuiteUpdate) ClearDescription() *SuiteUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetParallel sets the "parallel" field.
func (_u *SuiteUpdate) SetParallel(v bool) *SuiteUpdate {
	_u.mutation.SetParallel(v)
	return _u
}

// SetNillableParallel sets the "parallel" field if the given value is not nil.
func (_u *SuiteUpdate) SetNillableParallel(v *bool) *SuiteUpdate {
	if v != nil {
		_u.SetParallel(*v)
	}
	return _u
}

// SetStopOnFailure sets the "stop_on_failure" field.
func (_u *SuiteUpdate) SetStopOnFailure(v bool) *SuiteUpdate {
	_u.mutation.SetStopOnFailure(v)
	return _u
}

// SetNillableStopOnFailure sets the "stop_on_failure" field if the given value is not nil.
func (_u *SuiteUpdate) SetNillableStopOnFailure(v *bool) *SuiteUpdate {
	if v != nil {
		_u.SetStopOnFailure(*v)
	}
	return _u
}

// SetDefaultScorers sets the "default_scorers" field.
func (_u *SuiteUpdate) SetDefaultScorers(v []string) *SuiteUpdate {
	_u.mutation.SetDefaultScorers(v)
	return _u
}

// AppendDefaultScorers appends value to the "default_scorers" field.
func (_u *SuiteUpdate) AppendDefaultScorers(v []string) *SuiteUpdate {
	_u.mutation.AppendDefaultScorers(v)
	return _u
}

// ClearDefaultScorers clears the value of the "default_scorers" field.
func (_u *SuiteUpdate) ClearDefaultScorers() *SuiteUpdate {
	_u.mutation.ClearDefaultScorers()
	return _u
}

// SetDefaultMinScore sets the "default_min_score" field.
func (_u *SuiteUpdate) SetDefaultMinScore(v float64) *SuiteUpdate {
	_u.mutation.ResetDefaultMinScore()
	_u.mutation.SetDefaultMinScore(v)
	return _u
}

// SetNillableDefaultMinScore sets the "default_min_score" field if the given value is not nil.
func (_u *SuiteUpdate) SetNillableDefaultMinScore(v *float64) *SuiteUpdate {
	if v != nil {
		_u.SetDefaultMinScore(*v)
	}
	return _u
}

// AddDefaultMinScore adds value to the "default_min_score" field.
func (_u *SuiteUpdate) AddDefaultMinScore(v float64) *SuiteUpdate {
	_u.mutation.AddDefaultMinScore(v)
	return _u
}

// SetDefaultTimeoutSeconds sets the "default_timeout_seconds" field.
func (_u *SuiteUpdate) SetDefaultTimeoutSeconds(v int) *SuiteUpdate {
	_u.mutation.ResetDefaultTimeoutSeconds()
	_u.mutation.SetDefaultTimeoutSeconds(v)
	return _u
}

// SetNillableDefaultTimeoutSeconds sets the "default_timeout_seconds" field if the given value is not nil.
func (_u *SuiteUpdate) SetNillableDefaultTimeoutSeconds(v *int) *SuiteUpdate {
	if v != nil {
		_u.SetDefaultTimeoutSeconds(*v)
	}
	return _u
}

// AddDefaultTimeoutSeconds adds value to the "default_timeout_seconds" field.
func (_u *SuiteUpdate) AddDefaultTimeoutSeconds(v int) *SuiteUpdate {
	_u.mutation.AddDefaultTimeoutSeconds(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SuiteUpdate) SetUpdatedAt(v time.Time) *SuiteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *SuiteUpdate) SetProject(v *Project) *SuiteUpdate {
	return _u.SetProjectID(v.ID)
}

// AddCaseIDs adds the "cases" edge to the TestCase entity by IDs.
func (_u *SuiteUpdate) AddCaseIDs(ids ...string) *SuiteUpdate {
	_u.mutation.AddCaseIDs(ids...)
	return _u
}

// AddCases adds the "cases" edges to the TestCase entity.
func (_u *SuiteUpdate) AddCases(v ...*TestCase) *SuiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCaseIDs(ids...)
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_u *SuiteUpdate) AddRunIDs(ids ...string) *SuiteUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the Run entity.
func (_u *SuiteUpdate) AddRuns(v ...*Run) *SuiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the SuiteMutation object of the builder.
func (_u *SuiteUpdate) Mutation() *SuiteMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *SuiteUpdate) ClearProject() *SuiteUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearCases clears all "cases" edges to the TestCase entity.
func (_u *SuiteUpdate) ClearCases() *SuiteUpdate {
	_u.mutation.ClearCases()
	return _u
}

// RemoveCaseIDs removes the "cases" edge to TestCase entities by IDs.
func (_u *SuiteUpdate) RemoveCaseIDs(ids ...string) *SuiteUpdate {
	_u.mutation.RemoveCaseIDs(ids...)
	return _u
}

// RemoveCases removes "cases" edges to TestCase entities.
func (_u *SuiteUpdate) RemoveCases(v ...*TestCase) *SuiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCaseIDs(ids...)
}

// ClearRuns clears all "runs" edges to the Run entity.
func (_u *SuiteUpdate) ClearRuns() *SuiteUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to Run entities by IDs.
func (_u *SuiteUpdate) RemoveRunIDs(ids ...string) *SuiteUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to Run entities.
func (_u *SuiteUpdate) RemoveRuns(v ...*Run) *SuiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SuiteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuiteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SuiteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuiteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SuiteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := suite.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SuiteUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Suite.project"`)
	}
	return nil
}

func (_u *SuiteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suite.Table, suite.Columns, sqlgraph.NewFieldSpec(suite.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(suite.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(suite.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(suite.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(suite.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Parallel(); ok {
		_spec.SetField(suite.FieldParallel, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StopOnFailure(); ok {
		_spec.SetField(suite.FieldStopOnFailure, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DefaultScorers(); ok {
		_spec.SetField(suite.FieldDefaultScorers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDefaultScorers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, suite.FieldDefaultScorers, value)
		})
	}
	if _u.mutation.DefaultScorersCleared() {
		_spec.ClearField(suite.FieldDefaultScorers, field.TypeJSON)
	}
	if value, ok := _u.mutation.DefaultMinScore(); ok {
		_spec.SetField(suite.FieldDefaultMinScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDefaultMinScore(); ok {
		_spec.AddField(suite.FieldDefaultMinScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DefaultTimeoutSeconds(); ok {
		_spec.SetField(suite.FieldDefaultTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultTimeoutSeconds(); ok {
		_spec.AddField(suite.FieldDefaultTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(suite.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   suite.ProjectTable,
			Columns: []string{suite.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   suite.ProjectTable,
			Columns: []string{suite.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   suite.CasesTable,
			Columns: []string{suite.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCasesIDs(); len(nodes) > 0 && !_u.mutation.CasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   suite.CasesTable,
			Columns: []string{suite.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   suite.CasesTable,
			Columns: []string{suite.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   suite.RunsTable,
			Columns: []string{suite.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   suite.RunsTable,
			Columns: []string{suite.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   suite.RunsTable,
			Columns: []string{suite.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suite.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SuiteUpdateOne is the builder for updating a single Suite entity.
type SuiteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SuiteMutation
}

// SetProjectID sets the "project_id" field.
func (_u *SuiteUpdateOne) SetProjectID(v string) *SuiteUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SuiteUpdateOne) SetNillableProjectID(v *string) *SuiteUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SuiteUpdateOne) SetName(v string) *SuiteUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SuiteUpdateOne) SetNillableName(v *string) *SuiteUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *SuiteUpdateOne) SetAgentID(v string) *SuiteUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *SuiteUpdateOne) SetNillableAgentID(v *string) *SuiteUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SuiteUpdateOne) SetDescription(v string) *SuiteUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SuiteUpdateOne) SetNillableDescription(v *string) *SuiteUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SuiteUpdateOne) ClearDescription() *SuiteUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetParallel sets the "parallel" field.
func (_u *SuiteUpdateOne) SetParallel(v bool) *SuiteUpdateOne {
	_u.mutation.SetParallel(v)
	return _u
}

// SetNillableParallel sets the "parallel" field if the given value is not nil.
func (_u *SuiteUpdateOne) SetNillableParallel(v *bool) *SuiteUpdateOne {
	if v != nil {
		_u.SetParallel(*v)
	}
	return _u
}

// SetStopOnFailure sets the "stop_on_failure" field.
func (_u *SuiteUpdateOne) SetStopOnFailure(v bool) *SuiteUpdateOne {
	_u.mutation.SetStopOnFailure(v)
	return _u
}

// SetNillableStopOnFailure sets the "stop_on_failure" field if the given value is not nil.
func (_u *SuiteUpdateOne) SetNillableStopOnFailure(v *bool) *SuiteUpdateOne {
	if v != nil {
		_u.SetStopOnFailure(*v)
	}
	return _u
}

// SetDefaultScorers sets the "default_scorers" field.
func (_u *SuiteUpdateOne) SetDefaultScorers(v []string) *SuiteUpdateOne {
	_u.mutation.SetDefaultScorers(v)
	return _u
}

// AppendDefaultScorers appends value to the "default_scorers" field.
func (_u *SuiteUpdateOne) AppendDefaultScorers(v []string) *SuiteUpdateOne {
	_u.mutation.AppendDefaultScorers(v)
	return _u
}

// ClearDefaultScorers clears the value of the "default_scorers" field.
func (_u *SuiteUpdateOne) ClearDefaultScorers() *SuiteUpdateOne {
	_u.mutation.ClearDefaultScorers()
	return _u
}

// SetDefaultMinScore sets the "default_min_score" field.
func (_u *SuiteUpdateOne) SetDefaultMinScore(v float64) *SuiteUpdateOne {
	_u.mutation.ResetDefaultMinScore()
	_u.mutation.SetDefaultMinScore(v)
	return _u
}

// SetNillableDefaultMinScore sets the "default_min_score" field if the given value is not nil.
func (_u *SuiteUpdateOne) SetNillableDefaultMinScore(v *float64) *SuiteUpdateOne {
	if v != nil {
		_u.SetDefaultMinScore(*v)
	}
	return _u
}

// AddDefaultMinScore adds value to the "default_min_score" field.
func (_u *SuiteUpdateOne) AddDefaultMinScore(v float64) *SuiteUpdateOne {
	_u.mutation.AddDefaultMinScore(v)
	return _u
}

// SetDefaultTimeoutSeconds sets the "default_timeout_seconds" field.
func (_u *SuiteUpdateOne) SetDefaultTimeoutSeconds(v int) *SuiteUpdateOne {
	_u.mutation.ResetDefaultTimeoutSeconds()
	_u.mutation.SetDefaultTimeoutSeconds(v)
	return _u
}

// SetNillableDefaultTimeoutSeconds sets the "default_timeout_seconds" field if the given value is not nil.
func (_u *SuiteUpdateOne) SetNillableDefaultTimeoutSeconds(v *int) *SuiteUpdateOne {
	if v != nil {
		_u.SetDefaultTimeoutSeconds(*v)
	}
	return _u
}

// AddDefaultTimeoutSeconds adds value to the "default_timeout_seconds" field.
func (_u *SuiteUpdateOne) AddDefaultTimeoutSeconds(v int) *SuiteUpdateOne {
	_u.mutation.AddDefaultTimeoutSeconds(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SuiteUpdateOne) SetUpdatedAt(v time.Time) *SuiteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *SuiteUpdateOne) SetProject(v *Project) *SuiteUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddCaseIDs adds the "cases" edge to the TestCase entity by IDs.
func (_u *SuiteUpdateOne) AddCaseIDs(ids ...string) *SuiteUpdateOne {
	_u.mutation.AddCaseIDs(ids...)
	return _u
}

// AddCases adds the "cases" edges to the TestCase entity.
func (_u *SuiteUpdateOne) AddCases(v ...*TestCase) *SuiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCaseIDs(ids...)
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_u *SuiteUpdateOne) AddRunIDs(ids ...string) *SuiteUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the Run entity.
func (_u *SuiteUpdateOne) AddRuns(v ...*Run) *SuiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the SuiteMutation object of the builder.
func (_u *SuiteUpdateOne) Mutation() *SuiteMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *SuiteUpdateOne) ClearProject() *SuiteUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearCases clears all "cases" edges to the TestCase entity.
func (_u *SuiteUpdateOne) ClearCases() *SuiteUpdateOne {
	_u.mutation.ClearCases()
	return _u
}

// RemoveCaseIDs removes the "cases" edge to TestCase entities by IDs.
func (_u *SuiteUpdateOne) RemoveCaseIDs(ids ...string) *SuiteUpdateOne {
	_u.mutation.RemoveCaseIDs(ids...)
	return _u
}

// RemoveCases removes "cases" edges to TestCase entities.
func (_u *SuiteUpdateOne) RemoveCases(v ...*TestCase) *SuiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCaseIDs(ids...)
}

// ClearRuns clears all "runs" edges to the Run entity.
func (_u *SuiteUpdateOne) ClearRuns() *SuiteUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to Run entities by IDs.
func (_u *SuiteUpdateOne) RemoveRunIDs(ids ...string) *SuiteUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to Run entities.
func (_u *SuiteUpdateOne) RemoveRuns(v ...*Run) *SuiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Where appends a list predicates to the SuiteUpdate builder.
func (_u *SuiteUpdateOne) Where(ps ...predicate.Suite) *SuiteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SuiteUpdateOne) Select(field string, fields ...string) *SuiteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Suite entity.
func (_u *SuiteUpdateOne) Save(ctx context.Context) (*Suite, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuiteUpdateOne) SaveX(ctx context.Context) *Suite {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SuiteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuiteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SuiteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := suite.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SuiteUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Suite.project"`)
	}
	return nil
}

func (_u *SuiteUpdateOne) sqlSave(ctx context.Context) (_node *Suite, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suite.Table, suite.Columns, sqlgraph.NewFieldSpec(suite.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Suite.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, suite.FieldID)
		for _, f := range fields {
			if !suite.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != suite.FieldID {
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
		_spec.SetField(suite.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(suite.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(suite.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(suite.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Parallel(); ok {
		_spec.SetField(suite.FieldParallel, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StopOnFailure(); ok {
		_spec.SetField(suite.FieldStopOnFailure, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DefaultScorers(); ok {
		_spec.SetField(suite.FieldDefaultScorers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDefaultScorers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, suite.FieldDefaultScorers, value)
		})
	}
	if _u.mutation.DefaultScorersCleared() {
		_spec.ClearField(suite.FieldDefaultScorers, field.TypeJSON)
	}
	if value, ok := _u.mutation.DefaultMinScore(); ok {
		_spec.SetField(suite.FieldDefaultMinScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDefaultMinScore(); ok {
		_spec.AddField(suite.FieldDefaultMinScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DefaultTimeoutSeconds(); ok {
		_spec.SetField(suite.FieldDefaultTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultTimeoutSeconds(); ok {
		_spec.AddField(suite.FieldDefaultTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(suite.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   suite.ProjectTable,
			Columns: []string{suite.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   suite.ProjectTable,
			Columns: []string{suite.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   suite.CasesTable,
			Columns: []string{suite.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCasesIDs(); len(nodes) > 0 && !_u.mutation.CasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   suite.CasesTable,
			Columns: []string{suite.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   suite.CasesTable,
			Columns: []string{suite.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   suite.RunsTable,
			Columns: []string{suite.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   suite.RunsTable,
			Columns: []string{suite.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   suite.RunsTable,
			Columns: []string{suite.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Suite{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suite.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
