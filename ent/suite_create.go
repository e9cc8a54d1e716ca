// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/neonhq/neon/ent/project"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/ent/suite"
	"github.com/neonhq/neon/ent/testcase"
)

// SuiteCreate is the builder for creating a Suite entity.
type SuiteCreate struct {
	config
	mutation *SuiteMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *SuiteCreate) SetProjectID(v string) *SuiteCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SuiteCreate) SetName(v string) *SuiteCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *SuiteCreate) SetAgentID(v string) *SuiteCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SuiteCreate) SetDescription(v string) *SuiteCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SuiteCreate) SetNillableDescription(v *string) *SuiteCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetParallel sets the "parallel" field.
func (_c *SuiteCreate) SetParallel(v bool) *SuiteCreate {
	_c.mutation.SetParallel(v)
	return _c
}

// SetNillableParallel sets the "parallel" field if the given value is not nil.
func (_c *SuiteCreate) SetNillableParallel(v *bool) *SuiteCreate {
	if v != nil {
		_c.SetParallel(*v)
	}
	return _c
}

// SetStopOnFailure sets the "stop_on_failure" field.
func (_c *SuiteCreate) SetStopOnFailure(v bool) *SuiteCreate {
	_c.mutation.SetStopOnFailure(v)
	return _c
}

// SetNillableStopOnFailure sets the "stop_on_failure" field if the given value is not nil.
func (_c *SuiteCreate) SetNillableStopOnFailure(v *bool) *SuiteCreate {
	if v != nil {
		_c.SetStopOnFailure(*v)
	}
	return _c
}

// SetDefaultScorers sets the "default_scorers" field.
func (_c *SuiteCreate) SetDefaultScorers(v []string) *SuiteCreate {
	_c.mutation.SetDefaultScorers(v)
	return _c
}

// SetDefaultMinScore sets the "default_min_score" field.
func (_c *SuiteCreate) SetDefaultMinScore(v float64) *SuiteCreate {
	_c.mutation.SetDefaultMinScore(v)
	return _c
}

// SetNillableDefaultMinScore sets the "default_min_score" field if the given value is not nil.
func (_c *SuiteCreate) SetNillableDefaultMinScore(v *float64) *SuiteCreate {
	if v != nil {
		_c.SetDefaultMinScore(*v)
	}
	return _c
}

// SetDefaultTimeoutSeconds sets the "default_timeout_seconds" field.
func (_c *SuiteCreate) SetDefaultTimeoutSeconds(v int) *SuiteCreate {
	_c.mutation.SetDefaultTimeoutSeconds(v)
	return _c
}

// SetNillableDefaultTimeoutSeconds sets the "default_timeout_seconds" field if the given value is not nil.
func (_c *SuiteCreate) SetNillableDefaultTimeoutSeconds(v *int) *SuiteCreate {
	if v != nil {
		_c.SetDefaultTimeoutSeconds(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SuiteCreate) SetCreatedAt(v time.Time) *SuiteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SuiteCreate) SetNillableCreatedAt(v *time.Time) *SuiteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SuiteCreate) SetUpdatedAt(v time.Time) *SuiteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SuiteCreate) SetNillableUpdatedAt(v *time.Time) *SuiteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SuiteCreate) SetID(v string) *SuiteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *SuiteCreate) SetProject(v *Project) *SuiteCreate {
	return _c.SetProjectID(v.ID)
}

// AddCaseIDs adds the "cases" edge to the TestCase entity by IDs.
func (_c *SuiteCreate) AddCaseIDs(ids ...string) *SuiteCreate {
	_c.mutation.AddCaseIDs(ids...)
	return _c
}

// AddCases adds the "cases" edges to the TestCase entity.
func (_c *SuiteCreate) AddCases(v ...*TestCase) *SuiteCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCaseIDs(ids...)
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_c *SuiteCreate) AddRunIDs(ids ...string) *SuiteCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the Run entity.
func (_c *SuiteCreate) AddRuns(v ...*Run) *SuiteCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// Mutation returns the SuiteMutation object of the builder.
func (_c *SuiteCreate) Mutation() *SuiteMutation {
	return _c.mutation
}

// Save creates the Suite in the database.
func (_c *SuiteCreate) Save(ctx context.Context) (*Suite, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SuiteCreate) SaveX(ctx context.Context) *Suite {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuiteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuiteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SuiteCreate) defaults() {
	if _, ok := _c.mutation.Parallel(); !ok {
		v := suite.DefaultParallel
		_c.mutation.SetParallel(v)
	}
	if _, ok := _c.mutation.StopOnFailure(); !ok {
		v := suite.DefaultStopOnFailure
		_c.mutation.SetStopOnFailure(v)
	}
	if _, ok := _c.mutation.DefaultMinScore(); !ok {
		v := suite.DefaultDefaultMinScore
		_c.mutation.SetDefaultMinScore(v)
	}
	if _, ok := _c.mutation.DefaultTimeoutSeconds(); !ok {
		v := suite.DefaultDefaultTimeoutSeconds
		_c.mutation.SetDefaultTimeoutSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := suite.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := suite.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SuiteCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Suite.project_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Suite.name"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Suite.agent_id"`)}
	}
	if _, ok := _c.mutation.Parallel(); !ok {
		return &ValidationError{Name: "parallel", err: errors.New(`ent: missing required field "Suite.parallel"`)}
	}
	if _, ok := _c.mutation.StopOnFailure(); !ok {
		return &ValidationError{Name: "stop_on_failure", err: errors.New(`ent: missing required field "Suite.stop_on_failure"`)}
	}
	if _, ok := _c.mutation.DefaultMinScore(); !ok {
		return &ValidationError{Name: "default_min_score", err: errors.New(`ent: missing required field "Suite.default_min_score"`)}
	}
	if _, ok := _c.mutation.DefaultTimeoutSeconds(); !ok {
		return &ValidationError{Name: "default_timeout_seconds", err: errors.New(`ent: missing required field "Suite.default_timeout_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Suite.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Suite.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Suite.project"`)}
	}
	return nil
}

func (_c *SuiteCreate) sqlSave(ctx context.Context) (*Suite, error) {
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
			return nil, fmt.Errorf("unexpected Suite.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SuiteCreate) createSpec() (*Suite, *sqlgraph.CreateSpec) {
	var (
		_node = &Suite{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(suite.Table, sqlgraph.NewFieldSpec(suite.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(suite.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(suite.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(suite.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Parallel(); ok {
		_spec.SetField(suite.FieldParallel, field.TypeBool, value)
		_node.Parallel = value
	}
	if value, ok := _c.mutation.StopOnFailure(); ok {
		_spec.SetField(suite.FieldStopOnFailure, field.TypeBool, value)
		_node.StopOnFailure = value
	}
	if value, ok := _c.mutation.DefaultScorers(); ok {
		_spec.SetField(suite.FieldDefaultScorers, field.TypeJSON, value)
		_node.DefaultScorers = value
	}
	if value, ok := _c.mutation.DefaultMinScore(); ok {
		_spec.SetField(suite.FieldDefaultMinScore, field.TypeFloat64, value)
		_node.DefaultMinScore = value
	}
	if value, ok := _c.mutation.DefaultTimeoutSeconds(); ok {
		_spec.SetField(suite.FieldDefaultTimeoutSeconds, field.TypeInt, value)
		_node.DefaultTimeoutSeconds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(suite.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(suite.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CasesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SuiteCreateBulk is the builder for creating many Suite entities in bulk.
type SuiteCreateBulk struct {
	config
	err      error
	builders []*SuiteCreate
}

// Save creates the Suite entities in the database.
func (_c *SuiteCreateBulk) Save(ctx context.Context) ([]*Suite, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Suite, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SuiteMutation)
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
func (_c *SuiteCreateBulk) SaveX(ctx context.Context) []*Suite {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuiteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuiteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
