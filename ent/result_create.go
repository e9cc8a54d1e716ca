// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/neonhq/neon/ent/result"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/ent/testcase"
	"github.com/neonhq/neon/pkg/models"
)

// ResultCreate is the builder for creating a Result entity.
type ResultCreate struct {
	config
	mutation *ResultMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ResultCreate) SetRunID(v string) *ResultCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetCaseID sets the "case_id" field.
func (_c *ResultCreate) SetCaseID(v string) *ResultCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_c *ResultCreate) SetNillableCaseID(v *string) *ResultCreate {
	if v != nil {
		_c.SetCaseID(*v)
	}
	return _c
}

// SetCaseName sets the "case_name" field.
func (_c *ResultCreate) SetCaseName(v string) *ResultCreate {
	_c.mutation.SetCaseName(v)
	return _c
}

// SetTraceRunID sets the "trace_run_id" field.
func (_c *ResultCreate) SetTraceRunID(v string) *ResultCreate {
	_c.mutation.SetTraceRunID(v)
	return _c
}

// SetNillableTraceRunID sets the "trace_run_id" field if the given value is not nil.
func (_c *ResultCreate) SetNillableTraceRunID(v *string) *ResultCreate {
	if v != nil {
		_c.SetTraceRunID(*v)
	}
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *ResultCreate) SetTraceID(v string) *ResultCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_c *ResultCreate) SetNillableTraceID(v *string) *ResultCreate {
	if v != nil {
		_c.SetTraceID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ResultCreate) SetStatus(v result.Status) *ResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *ResultCreate) SetOutput(v map[string]interface{}) *ResultCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetScores sets the "scores" field.
func (_c *ResultCreate) SetScores(v map[string]float64) *ResultCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetScoreDetails sets the "score_details" field.
func (_c *ResultCreate) SetScoreDetails(v map[string]models.ScoreDetail) *ResultCreate {
	_c.mutation.SetScoreDetails(v)
	return _c
}

// SetTraceSummary sets the "trace_summary" field.
func (_c *ResultCreate) SetTraceSummary(v *models.TraceSummary) *ResultCreate {
	_c.mutation.SetTraceSummary(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *ResultCreate) SetPassed(v bool) *ResultCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_c *ResultCreate) SetNillablePassed(v *bool) *ResultCreate {
	if v != nil {
		_c.SetPassed(*v)
	}
	return _c
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_c *ResultCreate) SetExecutionTimeMs(v int64) *ResultCreate {
	_c.mutation.SetExecutionTimeMs(v)
	return _c
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_c *ResultCreate) SetNillableExecutionTimeMs(v *int64) *ResultCreate {
	if v != nil {
		_c.SetExecutionTimeMs(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *ResultCreate) SetError(v string) *ResultCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *ResultCreate) SetNillableError(v *string) *ResultCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResultCreate) SetCreatedAt(v time.Time) *ResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResultCreate) SetNillableCreatedAt(v *time.Time) *ResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResultCreate) SetID(v string) *ResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *ResultCreate) SetRun(v *Run) *ResultCreate {
	return _c.SetRunID(v.ID)
}

// SetTestCaseID sets the "test_case" edge to the TestCase entity by ID.
func (_c *ResultCreate) SetTestCaseID(id string) *ResultCreate {
	_c.mutation.SetTestCaseID(id)
	return _c
}

// SetNillableTestCaseID sets the "test_case" edge to the TestCase entity by ID if the given value is not nil.
func (_c *ResultCreate) SetNillableTestCaseID(id *string) *ResultCreate {
	if id != nil {
		_c = _c.SetTestCaseID(*id)
	}
	return _c
}

// SetTestCase sets the "test_case" edge to the TestCase entity.
func (_c *ResultCreate) SetTestCase(v *TestCase) *ResultCreate {
	return _c.SetTestCaseID(v.ID)
}

// Mutation returns the ResultMutation object of the builder.
func (_c *ResultCreate) Mutation() *ResultMutation {
	return _c.mutation
}

// Save creates the Result in the database.
func (_c *ResultCreate) Save(ctx context.Context) (*Result, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultCreate) SaveX(ctx context.Context) *Result {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultCreate) defaults() {
	if _, ok := _c.mutation.Passed(); !ok {
		v := result.DefaultPassed
		_c.mutation.SetPassed(v)
	}
	if _, ok := _c.mutation.ExecutionTimeMs(); !ok {
		v := result.DefaultExecutionTimeMs
		_c.mutation.SetExecutionTimeMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := result.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "Result.run_id"`)}
	}
	if _, ok := _c.mutation.CaseName(); !ok {
		return &ValidationError{Name: "case_name", err: errors.New(`ent: missing required field "Result.case_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Result.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := result.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Result.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "Result.passed"`)}
	}
	if _, ok := _c.mutation.ExecutionTimeMs(); !ok {
		return &ValidationError{Name: "execution_time_ms", err: errors.New(`ent: missing required field "Result.execution_time_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Result.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "Result.run"`)}
	}
	return nil
}

func (_c *ResultCreate) sqlSave(ctx context.Context) (*Result, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Result.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResultCreate) createSpec() (*Result, *sqlgraph.CreateSpec) {
	var (
		_node = &Result{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(result.Table, sqlgraph.NewFieldSpec(result.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CaseName(); ok {
		_spec.SetField(result.FieldCaseName, field.TypeString, value)
		_node.CaseName = value
	}
	if value, ok := _c.mutation.TraceRunID(); ok {
		_spec.SetField(result.FieldTraceRunID, field.TypeString, value)
		_node.TraceRunID = &value
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(result.FieldTraceID, field.TypeString, value)
		_node.TraceID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(result.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(result.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(result.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.ScoreDetails(); ok {
		_spec.SetField(result.FieldScoreDetails, field.TypeJSON, value)
		_node.ScoreDetails = value
	}
	if value, ok := _c.mutation.TraceSummary(); ok {
		_spec.SetField(result.FieldTraceSummary, field.TypeJSON, value)
		_node.TraceSummary = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(result.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(result.FieldExecutionTimeMs, field.TypeInt64, value)
		_node.ExecutionTimeMs = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(result.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(result.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
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
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TestCaseIDs(); len(nodes) > 0 {
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
		_node.CaseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ResultCreateBulk is the builder for creating many Result entities in bulk.
type ResultCreateBulk struct {
	config
	err      error
	builders []*ResultCreate
}

// Save creates the Result entities in the database.
func (_c *ResultCreateBulk) Save(ctx context.Context) ([]*Result, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Result, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResultCreateBulk) SaveX(ctx context.Context) []*Result {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
