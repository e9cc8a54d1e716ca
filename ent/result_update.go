// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/neonhq/neon/ent/predicate"
	"github.com/neonhq/neon/ent/result"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/ent/testcase"
	"github.com/neonhq/neon/pkg/models"
)

// ResultUpdate is the builder for updating Result entities.
type ResultUpdate struct {
	config
	hooks    []Hook
	mutation *ResultMutation
}

// Where appends a list predicates to the ResultUpdate builder.
func (_u *ResultUpdate) Where(ps ...predicate.Result) *ResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ResultUpdate) SetRunID(v string) *ResultUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableRunID(v *string) *ResultUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *ResultUpdate) SetCaseID(v string) *ResultUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableCaseID(v *string) *ResultUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// ClearCaseID clears the value of the "case_id" field.
func (_u *ResultUpdate) ClearCaseID() *ResultUpdate {
	_u.mutation.ClearCaseID()
	return _u
}

// SetCaseName sets the "case_name" field.
func (_u *ResultUpdate) SetCaseName(v string) *ResultUpdate {
	_u.mutation.SetCaseName(v)
	return _u
}

// SetNillableCaseName sets the "case_name" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableCaseName(v *string) *ResultUpdate {
	if v != nil {
		_u.SetCaseName(*v)
	}
	return _u
}

// SetTraceRunID sets the "trace_run_id" field.
func (_u *ResultUpdate) SetTraceRunID(v string) *ResultUpdate {
	_u.mutation.SetTraceRunID(v)
	return _u
}

// SetNillableTraceRunID sets the "trace_run_id" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableTraceRunID(v *string) *ResultUpdate {
	if v != nil {
		_u.SetTraceRunID(*v)
	}
	return _u
}

// ClearTraceRunID clears the value of the "trace_run_id" field.
func (_u *ResultUpdate) ClearTraceRunID() *ResultUpdate {
	_u.mutation.ClearTraceRunID()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *ResultUpdate) SetTraceID(v string) *ResultUpdate {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableTraceID(v *string) *ResultUpdate {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *ResultUpdate) ClearTraceID() *ResultUpdate {
	_u.mutation.ClearTraceID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResultUpdate) SetStatus(v result.Status) *ResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableStatus(v *result.Status) *ResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *ResultUpdate) SetOutput(v map[string]interface{}) *ResultUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ResultUpdate) ClearOutput() *ResultUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetScores sets the "scores" field.
func (_u *ResultUpdate) SetScores(v map[string]float64) *ResultUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *ResultUpdate) ClearScores() *ResultUpdate {
	_u.mutation.ClearScores()
	return _u
}

// SetScoreDetails sets the "score_details" field.
func (_u *ResultUpdate) SetScoreDetails(v map[string]models.ScoreDetail) *ResultUpdate {
	_u.mutation.SetScoreDetails(v)
	return _u
}

// ClearScoreDetails clears the value of the "score_details" field.
func (_u *ResultUpdate) ClearScoreDetails() *ResultUpdate {
	_u.mutation.ClearScoreDetails()
	return _u
}

// SetTraceSummary sets the "trace_summary" field.
func (_u *ResultUpdate) SetTraceSummary(v *models.TraceSummary) *ResultUpdate {
	_u.mutation.SetTraceSummary(v)
	return _u
}

// ClearTraceSummary clears the value of the "trace_summary" field.
func (_u *ResultUpdate) ClearTraceSummary() *ResultUpdate {
	_u.mutation.ClearTraceSummary()
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ResultUpdate) SetPassed(v bool) *ResultUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ResultUpdate) SetNillablePassed(v *bool) *ResultUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *ResultUpdate) SetExecutionTimeMs(v int64) *ResultUpdate {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableExecutionTimeMs(v *int64) *ResultUpdate {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *ResultUpdate) AddExecutionTimeMs(v int64) *ResultUpdate {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// SetError sets the "error" field.
func (_u *ResultUpdate) SetError(v string) *ResultUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableError(v *string) *ResultUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ResultUpdate) ClearError() *ResultUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetRun sets the "run" edge to the Run entity.
func (_u *ResultUpdate) SetRun(v *Run) *ResultUpdate {
	return _u.SetRunID(v.ID)
}

// SetTestCaseID sets the "test_case" edge to the TestCase entity by ID.
func (_u *ResultUpdate) SetTestCaseID(id string) *ResultUpdate {
	_u.mutation.SetTestCaseID(id)
	return _u
}

// SetNillableTestCaseID sets the "test_case" edge to the TestCase entity by ID if the given value is not nil.
func (_u *ResultUpdate) SetNillableTestCaseID(id *string) *ResultUpdate {
	if id != nil {
		_u = _u.SetTestCaseID(*id)
	}
	return _u
}

// SetTestCase sets the "test_case" edge to the TestCase entity.
func (_u *ResultUpdate) SetTestCase(v *TestCase) *ResultUpdate {
	return _u.SetTestCaseID(v.ID)
}

// Mutation returns the ResultMutation object of the builder.
func (_u *ResultUpdate) Mutation() *ResultMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the Run entity.
func (_u *ResultUpdate) ClearRun() *ResultUpdate {
	_u.mutation.ClearRun()
	return _u
}

// ClearTestCase clears the "test_case" edge to the TestCase entity.
func (_u *ResultUpdate) ClearTestCase() *ResultUpdate {
	_u.mutation.ClearTestCase()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := result.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Result.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Result.run"`)
	}
	return nil
}

func (_u *ResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(result.Table, result.Columns, sqlgraph.NewFieldSpec(result.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseName(); ok {
		_spec.SetField(result.FieldCaseName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TraceRunID(); ok {
		_spec.SetField(result.FieldTraceRunID, field.TypeString, value)
	}
	if _u.mutation.TraceRunIDCleared() {
		_spec.ClearField(result.FieldTraceRunID, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(result.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(result.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(result.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(result.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(result.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(result.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(result.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScoreDetails(); ok {
		_spec.SetField(result.FieldScoreDetails, field.TypeJSON, value)
	}
	if _u.mutation.ScoreDetailsCleared() {
		_spec.ClearField(result.FieldScoreDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.TraceSummary(); ok {
		_spec.SetField(result.FieldTraceSummary, field.TypeJSON, value)
	}
	if _u.mutation.TraceSummaryCleared() {
		_spec.ClearField(result.FieldTraceSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(result.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(result.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(result.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(result.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(result.FieldError, field.TypeString)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   result.RunTable,
			Columns: []string{result.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   result.RunTable,
			Columns: []string{result.RunColumn},
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
	if _u.mutation.TestCaseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   result.TestCaseTable,
			Columns: []string{result.TestCaseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestCaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   result.TestCaseTable,
			Columns: []string{result.TestCaseColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{result.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultUpdateOne is the builder for updating a single Result entity.
type ResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultMutation
}

// SetRunID sets the "run_id" field.
func (_u *ResultUpdateOne) SetRunID(v string) *ResultUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableRunID(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *ResultUpdateOne) SetCaseID(v string) *ResultUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableCaseID(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// ClearCaseID clears the value of the "case_id" field.
func (_u *ResultUpdateOne) ClearCaseID() *ResultUpdateOne {
	_u.mutation.ClearCaseID()
	return _u
}

// SetCaseName sets the "case_name" field.
func (_u *ResultUpdateOne) SetCaseName(v string) *ResultUpdateOne {
	_u.mutation.SetCaseName(v)
	return _u
}

// SetNillableCaseName sets the "case_name" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableCaseName(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetCaseName(*v)
	}
	return _u
}

// SetTraceRunID sets the "trace_run_id" field.
func (_u *ResultUpdateOne) SetTraceRunID(v string) *ResultUpdateOne {
	_u.mutation.SetTraceRunID(v)
	return _u
}

// SetNillableTraceRunID sets the "trace_run_id" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableTraceRunID(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetTraceRunID(*v)
	}
	return _u
}

// ClearTraceRunID clears the value of the "trace_run_id" field.
func (_u *ResultUpdateOne) ClearTraceRunID() *ResultUpdateOne {
	_u.mutation.ClearTraceRunID()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *ResultUpdateOne) SetTraceID(v string) *ResultUpdateOne {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableTraceID(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *ResultUpdateOne) ClearTraceID() *ResultUpdateOne {
	_u.mutation.ClearTraceID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResultUpdateOne) SetStatus(v result.Status) *ResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableStatus(v *result.Status) *ResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *ResultUpdateOne) SetOutput(v map[string]interface{}) *ResultUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ResultUpdateOne) ClearOutput() *ResultUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetScores sets the "scores" field.
func (_u *ResultUpdateOne) SetScores(v map[string]float64) *ResultUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *ResultUpdateOne) ClearScores() *ResultUpdateOne {
	_u.mutation.ClearScores()
	return _u
}

// SetScoreDetails sets the "score_details" field.
func (_u *ResultUpdateOne) SetScoreDetails(v map[string]models.ScoreDetail) *ResultUpdateOne {
	_u.mutation.SetScoreDetails(v)
	return _u
}

// ClearScoreDetails clears the value of the "score_details" field.
func (_u *ResultUpdateOne) ClearScoreDetails() *ResultUpdateOne {
	_u.mutation.ClearScoreDetails()
	return _u
}

// SetTraceSummary sets the "trace_summary" field.
func (_u *ResultUpdateOne) SetTraceSummary(v *models.TraceSummary) *ResultUpdateOne {
	_u.mutation.SetTraceSummary(v)
	return _u
}

// ClearTraceSummary clears the value of the "trace_summary" field.
func (_u *ResultUpdateOne) ClearTraceSummary() *ResultUpdateOne {
	_u.mutation.ClearTraceSummary()
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ResultUpdateOne) SetPassed(v bool) *ResultUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillablePassed(v *bool) *ResultUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *ResultUpdateOne) SetExecutionTimeMs(v int64) *ResultUpdateOne {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableExecutionTimeMs(v *int64) *ResultUpdateOne {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *ResultUpdateOne) AddExecutionTimeMs(v int64) *ResultUpdateOne {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// SetError sets the "error" field.
func (_u *ResultUpdateOne) SetError(v string) *ResultUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableError(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ResultUpdateOne) ClearError() *ResultUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetRun sets the "run" edge to the Run entity.
func (_u *ResultUpdateOne) SetRun(v *Run) *ResultUpdateOne {
	return _u.SetRunID(v.ID)
}

// SetTestCaseID sets the "test_case" edge to the TestCase entity by ID.
func (_u *ResultUpdateOne) SetTestCaseID(id string) *ResultUpdateOne {
	_u.mutation.SetTestCaseID(id)
	return _u
}

// SetNillableTestCaseID sets the "test_case" edge to the TestCase entity by ID if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableTestCaseID(id *string) *ResultUpdateOne {
	if id != nil {
		_u = _u.SetTestCaseID(*id)
	}
	return _u
}

// SetTestCase sets the "test_case" edge to the TestCase entity.
func (_u *ResultUpdateOne) SetTestCase(v *TestCase) *ResultUpdateOne {
	return _u.SetTestCaseID(v.ID)
}

// Mutation returns the ResultMutation object of the builder.
func (_u *ResultUpdateOne) Mutation() *ResultMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the Run entity.
func (_u *ResultUpdateOne) ClearRun() *ResultUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// ClearTestCase clears the "test_case" edge to the TestCase entity.
func (_u *ResultUpdateOne) ClearTestCase() *ResultUpdateOne {
	_u.mutation.ClearTestCase()
	return _u
}

// Where appends a list predicates to the ResultUpdate builder.
func (_u *ResultUpdateOne) Where(ps ...predicate.Result) *ResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultUpdateOne) Select(field string, fields ...string) *ResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Result entity.
func (_u *ResultUpdateOne) Save(ctx context.Context) (*Result, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultUpdateOne) SaveX(ctx context.Context) *Result {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := result.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Result.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Result.run"`)
	}
	return nil
}

func (_u *ResultUpdateOne) sqlSave(ctx context.Context) (_node *Result, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(result.Table, result.Columns, sqlgraph.NewFieldSpec(result.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Result.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, result.FieldID)
		for _, f := range fields {
			if !result.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != result.FieldID {
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
	if value, ok := _u.mutation.CaseName(); ok {
		_spec.SetField(result.FieldCaseName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TraceRunID(); ok {
		_spec.SetField(result.FieldTraceRunID, field.TypeString, value)
	}
	if _u.mutation.TraceRunIDCleared() {
		_spec.ClearField(result.FieldTraceRunID, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(result.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(result.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(result.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(result.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(result.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(result.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(result.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScoreDetails(); ok {
		_spec.SetField(result.FieldScoreDetails, field.TypeJSON, value)
	}
	if _u.mutation.ScoreDetailsCleared() {
		_spec.ClearField(result.FieldScoreDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.TraceSummary(); ok {
		_spec.SetField(result.FieldTraceSummary, field.TypeJSON, value)
	}
	if _u.mutation.TraceSummaryCleared() {
		_spec.ClearField(result.FieldTraceSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(result.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(result.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(result.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(result.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(result.FieldError, field.TypeString)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   result.RunTable,
			Columns: []string{result.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   result.RunTable,
			Columns: []string{result.RunColumn},
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
	if _u.mutation.TestCaseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   result.TestCaseTable,
			Columns: []string{result.TestCaseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestCaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   result.TestCaseTable,
			Columns: []string{result.TestCaseColumn},
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
	_node = &Result{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{result.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
