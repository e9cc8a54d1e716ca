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
	"github.com/neonhq/neon/ent/suite"
	"github.com/neonhq/neon/ent/testcase"
	"github.com/neonhq/neon/pkg/models"
)

// TestCaseCreate is the builder for creating a TestCase entity.
type TestCaseCreate struct {
	config
	mutation *TestCaseMutation
	hooks    []Hook
}

// SetSuiteID sets the "suite_id" field.
func (_c *TestCaseCreate) SetSuiteID(v string) *TestCaseCreate {
	_c.mutation.SetSuiteID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *TestCaseCreate) SetName(v string) *TestCaseCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TestCaseCreate) SetDescription(v string) *TestCaseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableDescription(v *string) *TestCaseCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetInput sets the "input" field.
func (_c *TestCaseCreate) SetInput(v models.CaseInput) *TestCaseCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetExpectedTools sets the "expected_tools" field.
func (_c *TestCaseCreate) SetExpectedTools(v []string) *TestCaseCreate {
	_c.mutation.SetExpectedTools(v)
	return _c
}

// SetExpectedToolSequence sets the "expected_tool_sequence" field.
func (_c *TestCaseCreate) SetExpectedToolSequence(v []string) *TestCaseCreate {
	_c.mutation.SetExpectedToolSequence(v)
	return _c
}

// SetExpectedOutputContains sets the "expected_output_contains" field.
func (_c *TestCaseCreate) SetExpectedOutputContains(v []string) *TestCaseCreate {
	_c.mutation.SetExpectedOutputContains(v)
	return _c
}

// SetExpectedOutputPattern sets the "expected_output_pattern" field.
func (_c *TestCaseCreate) SetExpectedOutputPattern(v string) *TestCaseCreate {
	_c.mutation.SetExpectedOutputPattern(v)
	return _c
}

// SetNillableExpectedOutputPattern sets the "expected_output_pattern" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableExpectedOutputPattern(v *string) *TestCaseCreate {
	if v != nil {
		_c.SetExpectedOutputPattern(*v)
	}
	return _c
}

// SetScorers sets the "scorers" field.
func (_c *TestCaseCreate) SetScorers(v []string) *TestCaseCreate {
	_c.mutation.SetScorers(v)
	return _c
}

// SetScorerConfig sets the "scorer_config" field.
func (_c *TestCaseCreate) SetScorerConfig(v map[string]interface{}) *TestCaseCreate {
	_c.mutation.SetScorerConfig(v)
	return _c
}

// SetMinScore sets the "min_score" field.
func (_c *TestCaseCreate) SetMinScore(v float64) *TestCaseCreate {
	_c.mutation.SetMinScore(v)
	return _c
}

// SetNillableMinScore sets the "min_score" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableMinScore(v *float64) *TestCaseCreate {
	if v != nil {
		_c.SetMinScore(*v)
	}
	return _c
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_c *TestCaseCreate) SetTimeoutSeconds(v int) *TestCaseCreate {
	_c.mutation.SetTimeoutSeconds(v)
	return _c
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableTimeoutSeconds(v *int) *TestCaseCreate {
	if v != nil {
		_c.SetTimeoutSeconds(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *TestCaseCreate) SetTags(v []string) *TestCaseCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestCaseCreate) SetCreatedAt(v time.Time) *TestCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableCreatedAt(v *time.Time) *TestCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TestCaseCreate) SetUpdatedAt(v time.Time) *TestCaseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableUpdatedAt(v *time.Time) *TestCaseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TestCaseCreate) SetID(v string) *TestCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSuite sets the "suite" edge to the Suite entity.
func (_c *TestCaseCreate) SetSuite(v *Suite) *TestCaseCreate {
	return _c.SetSuiteID(v.ID)
}

// AddResultIDs adds the "results" edge to the Result entity by IDs.
func (_c *TestCaseCreate) AddResultIDs(ids ...string) *TestCaseCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the Result entity.
func (_c *TestCaseCreate) AddResults(v ...*Result) *TestCaseCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// Mutation returns the TestCaseMutation object of the builder.
func (_c *TestCaseCreate) Mutation() *TestCaseMutation {
	return _c.mutation
}

// Save creates the TestCase in the database.
func (_c *TestCaseCreate) Save(ctx context.Context) (*TestCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestCaseCreate) SaveX(ctx context.Context) *TestCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestCaseCreate) defaults() {
	if _, ok := _c.mutation.MinScore(); !ok {
		v := testcase.DefaultMinScore
		_c.mutation.SetMinScore(v)
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		v := testcase.DefaultTimeoutSeconds
		_c.mutation.SetTimeoutSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testcase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := testcase.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestCaseCreate) check() error {
	if _, ok := _c.mutation.SuiteID(); !ok {
		return &ValidationError{Name: "suite_id", err: errors.New(`ent: missing required field "TestCase.suite_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "TestCase.name"`)}
	}
	if _, ok := _c.mutation.Input(); !ok {
		return &ValidationError{Name: "input", err: errors.New(`ent: missing required field "TestCase.input"`)}
	}
	if _, ok := _c.mutation.MinScore(); !ok {
		return &ValidationError{Name: "min_score", err: errors.New(`ent: missing required field "TestCase.min_score"`)}
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		return &ValidationError{Name: "timeout_seconds", err: errors.New(`ent: missing required field "TestCase.timeout_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TestCase.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TestCase.updated_at"`)}
	}
	if len(_c.mutation.SuiteIDs()) == 0 {
		return &ValidationError{Name: "suite", err: errors.New(`ent: missing required edge "TestCase.suite"`)}
	}
	return nil
}

func (_c *TestCaseCreate) sqlSave(ctx context.Context) (*TestCase, error) {
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
			return nil, fmt.Errorf("unexpected TestCase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestCaseCreate) createSpec() (*TestCase, *sqlgraph.CreateSpec) {
	var (
		_node = &TestCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testcase.Table, sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(testcase.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(testcase.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(testcase.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.ExpectedTools(); ok {
		_spec.SetField(testcase.FieldExpectedTools, field.TypeJSON, value)
		_node.ExpectedTools = value
	}
	if value, ok := _c.mutation.ExpectedToolSequence(); ok {
		_spec.SetField(testcase.FieldExpectedToolSequence, field.TypeJSON, value)
		_node.ExpectedToolSequence = value
	}
	if value, ok := _c.mutation.ExpectedOutputContains(); ok {
		_spec.SetField(testcase.FieldExpectedOutputContains, field.TypeJSON, value)
		_node.ExpectedOutputContains = value
	}
	if value, ok := _c.mutation.ExpectedOutputPattern(); ok {
		_spec.SetField(testcase.FieldExpectedOutputPattern, field.TypeString, value)
		_node.ExpectedOutputPattern = value
	}
	if value, ok := _c.mutation.Scorers(); ok {
		_spec.SetField(testcase.FieldScorers, field.TypeJSON, value)
		_node.Scorers = value
	}
	if value, ok := _c.mutation.ScorerConfig(); ok {
		_spec.SetField(testcase.FieldScorerConfig, field.TypeJSON, value)
		_node.ScorerConfig = value
	}
	if value, ok := _c.mutation.MinScore(); ok {
		_spec.SetField(testcase.FieldMinScore, field.TypeFloat64, value)
		_node.MinScore = value
	}
	if value, ok := _c.mutation.TimeoutSeconds(); ok {
		_spec.SetField(testcase.FieldTimeoutSeconds, field.TypeInt, value)
		_node.TimeoutSeconds = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(testcase.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testcase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(testcase.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SuiteIDs(); len(nodes) > 0 {
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
		_node.SuiteID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TestCaseCreateBulk is the builder for creating many TestCase entities in bulk.
type TestCaseCreateBulk struct {
	config
	err      error
	builders []*TestCaseCreate
}

// Save creates the TestCase entities in the database.
func (_c *TestCaseCreateBulk) Save(ctx context.Context) ([]*TestCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestCaseMutation)
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
func (_c *TestCaseCreateBulk) SaveX(ctx context.Context) []*TestCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
