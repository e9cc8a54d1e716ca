// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/neonhq/neon/ent/predicate"
	"github.com/neonhq/neon/ent/project"
	"github.com/neonhq/neon/ent/result"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/ent/suite"
	"github.com/neonhq/neon/ent/testcase"
	"github.com/neonhq/neon/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeProject  = "Project"
	TypeResult   = "Result"
	TypeRun      = "Run"
	TypeSuite    = "Suite"
	TypeTestCase = "TestCase"
)

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	slug          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	suites        map[string]struct{}
	removedsuites map[string]struct{}
	clearedsuites bool
	runs          map[string]struct{}
	removedruns   map[string]struct{}
	clearedruns   bool
	done          bool
	oldValue      func(context.Context) (*Project, error)
	predicates    []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *ProjectMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *ProjectMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *ProjectMutation) ResetSlug() {
	m.slug = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddSuiteIDs adds the "suites" edge to the Suite entity by ids.
func (m *ProjectMutation) AddSuiteIDs(ids ...string) {
	if m.suites == nil {
		m.suites = make(map[string]struct{})
	}
	for i := range ids {
		m.suites[ids[i]] = struct{}{}
	}
}

// ClearSuites clears the "suites" edge to the Suite entity.
func (m *ProjectMutation) ClearSuites() {
	m.clearedsuites = true
}

// SuitesCleared reports if the "suites" edge to the Suite entity was cleared.
func (m *ProjectMutation) SuitesCleared() bool {
	return m.clearedsuites
}

// RemoveSuiteIDs removes the "suites" edge to the Suite entity by IDs.
func (m *ProjectMutation) RemoveSuiteIDs(ids ...string) {
	if m.removedsuites == nil {
		m.removedsuites = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.suites, ids[i])
		m.removedsuites[ids[i]] = struct{}{}
	}
}

// RemovedSuites returns the removed IDs of the "suites" edge to the Suite entity.
func (m *ProjectMutation) RemovedSuitesIDs() (ids []string) {
	for id := range m.removedsuites {
		ids = append(ids, id)
	}
	return
}

// SuitesIDs returns the "suites" edge IDs in the mutation.
func (m *ProjectMutation) SuitesIDs() (ids []string) {
	for id := range m.suites {
		ids = append(ids, id)
	}
	return
}

// ResetSuites resets all changes to the "suites" edge.
func (m *ProjectMutation) ResetSuites() {
	m.suites = nil
	m.clearedsuites = false
	m.removedsuites = nil
}

// AddRunIDs adds the "runs" edge to the Run entity by ids.
func (m *ProjectMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the Run entity.
func (m *ProjectMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the Run entity was cleared.
func (m *ProjectMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the Run entity by IDs.
func (m *ProjectMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the Run entity.
func (m *ProjectMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *ProjectMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *ProjectMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, project.FieldSlug)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldSlug:
		return m.Slug()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldSlug:
		return m.OldSlug(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldSlug:
		m.ResetSlug()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.suites != nil {
		edges = append(edges, project.EdgeSuites)
	}
	if m.runs != nil {
		edges = append(edges, project.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeSuites:
		ids := make([]ent.Value, 0, len(m.suites))
		for id := range m.suites {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsuites != nil {
		edges = append(edges, project.EdgeSuites)
	}
	if m.removedruns != nil {
		edges = append(edges, project.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeSuites:
		ids := make([]ent.Value, 0, len(m.removedsuites))
		for id := range m.removedsuites {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsuites {
		edges = append(edges, project.EdgeSuites)
	}
	if m.clearedruns {
		edges = append(edges, project.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeSuites:
		return m.clearedsuites
	case project.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeSuites:
		m.ResetSuites()
		return nil
	case project.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// ResultMutation represents an operation that mutates the Result nodes in the graph.
type ResultMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	case_name            *string
	trace_run_id         *string
	trace_id             *string
	status               *result.Status
	output               *map[string]interface{}
	scores               *map[string]float64
	score_details        *map[string]models.ScoreDetail
	trace_summary        **models.TraceSummary
	passed               *bool
	execution_time_ms    *int64
	addexecution_time_ms *int64
	error                *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	run                  *string
	clearedrun           bool
	test_case            *string
	clearedtest_case     bool
	done                 bool
	oldValue             func(context.Context) (*Result, error)
	predicates           []predicate.Result
}

var _ ent.Mutation = (*ResultMutation)(nil)

// resultOption allows management of the mutation configuration using functional options.
type resultOption func(*ResultMutation)

// newResultMutation creates new mutation for the Result entity.
func newResultMutation(c config, op Op, opts ...resultOption) *ResultMutation {
	m := &ResultMutation{
		config:        c,
		op:            op,
		typ:           TypeResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResultID sets the ID field of the mutation.
func withResultID(id string) resultOption {
	return func(m *ResultMutation) {
		var (
			err   error
			once  sync.Once
			value *Result
		)
		m.oldValue = func(ctx context.Context) (*Result, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Result.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResult sets the old Result of the mutation.
func withResult(node *Result) resultOption {
	return func(m *ResultMutation) {
		m.oldValue = func(context.Context) (*Result, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Result entities.
func (m *ResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Result.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ResultMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ResultMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ResultMutation) ResetRunID() {
	m.run = nil
}

// SetCaseID sets the "case_id" field.
func (m *ResultMutation) SetCaseID(s string) {
	m.test_case = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *ResultMutation) CaseID() (r string, exists bool) {
	v := m.test_case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ClearCaseID clears the value of the "case_id" field.
func (m *ResultMutation) ClearCaseID() {
	m.test_case = nil
	m.clearedFields[result.FieldCaseID] = struct{}{}
}

// CaseIDCleared returns if the "case_id" field was cleared in this mutation.
func (m *ResultMutation) CaseIDCleared() bool {
	_, ok := m.clearedFields[result.FieldCaseID]
	return ok
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *ResultMutation) ResetCaseID() {
	m.test_case = nil
	delete(m.clearedFields, result.FieldCaseID)
}

// SetCaseName sets the "case_name" field.
func (m *ResultMutation) SetCaseName(s string) {
	m.case_name = &s
}

// CaseName returns the value of the "case_name" field in the mutation.
func (m *ResultMutation) CaseName() (r string, exists bool) {
	v := m.case_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseName returns the old "case_name" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldCaseName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseName: %w", err)
	}
	return oldValue.CaseName, nil
}

// ResetCaseName resets all changes to the "case_name" field.
func (m *ResultMutation) ResetCaseName() {
	m.case_name = nil
}

// SetTraceRunID sets the "trace_run_id" field.
func (m *ResultMutation) SetTraceRunID(s string) {
	m.trace_run_id = &s
}

// TraceRunID returns the value of the "trace_run_id" field in the mutation.
func (m *ResultMutation) TraceRunID() (r string, exists bool) {
	v := m.trace_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceRunID returns the old "trace_run_id" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldTraceRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceRunID: %w", err)
	}
	return oldValue.TraceRunID, nil
}

// ClearTraceRunID clears the value of the "trace_run_id" field.
func (m *ResultMutation) ClearTraceRunID() {
	m.trace_run_id = nil
	m.clearedFields[result.FieldTraceRunID] = struct{}{}
}

// TraceRunIDCleared returns if the "trace_run_id" field was cleared in this mutation.
func (m *ResultMutation) TraceRunIDCleared() bool {
	_, ok := m.clearedFields[result.FieldTraceRunID]
	return ok
}

// ResetTraceRunID resets all changes to the "trace_run_id" field.
func (m *ResultMutation) ResetTraceRunID() {
	m.trace_run_id = nil
	delete(m.clearedFields, result.FieldTraceRunID)
}

// SetTraceID sets the "trace_id" field.
func (m *ResultMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *ResultMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldTraceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ClearTraceID clears the value of the "trace_id" field.
func (m *ResultMutation) ClearTraceID() {
	m.trace_id = nil
	m.clearedFields[result.FieldTraceID] = struct{}{}
}

// TraceIDCleared returns if the "trace_id" field was cleared in this mutation.
func (m *ResultMutation) TraceIDCleared() bool {
	_, ok := m.clearedFields[result.FieldTraceID]
	return ok
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *ResultMutation) ResetTraceID() {
	m.trace_id = nil
	delete(m.clearedFields, result.FieldTraceID)
}

// SetStatus sets the "status" field.
func (m *ResultMutation) SetStatus(r result.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ResultMutation) Status() (r result.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldStatus(ctx context.Context) (v result.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ResultMutation) ResetStatus() {
	m.status = nil
}

// SetOutput sets the "output" field.
func (m *ResultMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *ResultMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *ResultMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[result.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *ResultMutation) OutputCleared() bool {
	_, ok := m.clearedFields[result.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *ResultMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, result.FieldOutput)
}

// SetScores sets the "scores" field.
func (m *ResultMutation) SetScores(value map[string]float64) {
	m.scores = &value
}

// Scores returns the value of the "scores" field in the mutation.
func (m *ResultMutation) Scores() (r map[string]float64, exists bool) {
	v := m.scores
	if v == nil {
		return
	}
	return *v, true
}

// OldScores returns the old "scores" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScores: %w", err)
	}
	return oldValue.Scores, nil
}

// ClearScores clears the value of the "scores" field.
func (m *ResultMutation) ClearScores() {
	m.scores = nil
	m.clearedFields[result.FieldScores] = struct{}{}
}

// ScoresCleared returns if the "scores" field was cleared in this mutation.
func (m *ResultMutation) ScoresCleared() bool {
	_, ok := m.clearedFields[result.FieldScores]
	return ok
}

// ResetScores resets all changes to the "scores" field.
func (m *ResultMutation) ResetScores() {
	m.scores = nil
	delete(m.clearedFields, result.FieldScores)
}

// SetScoreDetails sets the "score_details" field.
func (m *ResultMutation) SetScoreDetails(md map[string]models.ScoreDetail) {
	m.score_details = &md
}

// ScoreDetails returns the value of the "score_details" field in the mutation.
func (m *ResultMutation) ScoreDetails() (r map[string]models.ScoreDetail, exists bool) {
	v := m.score_details
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreDetails returns the old "score_details" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldScoreDetails(ctx context.Context) (v map[string]models.ScoreDetail, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreDetails: %w", err)
	}
	return oldValue.ScoreDetails, nil
}

// ClearScoreDetails clears the value of the "score_details" field.
func (m *ResultMutation) ClearScoreDetails() {
	m.score_details = nil
	m.clearedFields[result.FieldScoreDetails] = struct{}{}
}

// ScoreDetailsCleared returns if the "score_details" field was cleared in this mutation.
func (m *ResultMutation) ScoreDetailsCleared() bool {
	_, ok := m.clearedFields[result.FieldScoreDetails]
	return ok
}

// ResetScoreDetails resets all changes to the "score_details" field.
func (m *ResultMutation) ResetScoreDetails() {
	m.score_details = nil
	delete(m.clearedFields, result.FieldScoreDetails)
}

// SetTraceSummary sets the "trace_summary" field.
func (m *ResultMutation) SetTraceSummary(ms *models.TraceSummary) {
	m.trace_summary = &ms
}

// TraceSummary returns the value of the "trace_summary" field in the mutation.
func (m *ResultMutation) TraceSummary() (r *models.TraceSummary, exists bool) {
	v := m.trace_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceSummary returns the old "trace_summary" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldTraceSummary(ctx context.Context) (v *models.TraceSummary, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceSummary: %w", err)
	}
	return oldValue.TraceSummary, nil
}

// ClearTraceSummary clears the value of the "trace_summary" field.
func (m *ResultMutation) ClearTraceSummary() {
	m.trace_summary = nil
	m.clearedFields[result.FieldTraceSummary] = struct{}{}
}

// TraceSummaryCleared returns if the "trace_summary" field was cleared in this mutation.
func (m *ResultMutation) TraceSummaryCleared() bool {
	_, ok := m.clearedFields[result.FieldTraceSummary]
	return ok
}

// ResetTraceSummary resets all changes to the "trace_summary" field.
func (m *ResultMutation) ResetTraceSummary() {
	m.trace_summary = nil
	delete(m.clearedFields, result.FieldTraceSummary)
}

// SetPassed sets the "passed" field.
func (m *ResultMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *ResultMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *ResultMutation) ResetPassed() {
	m.passed = nil
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (m *ResultMutation) SetExecutionTimeMs(i int64) {
	m.execution_time_ms = &i
	m.addexecution_time_ms = nil
}

// ExecutionTimeMs returns the value of the "execution_time_ms" field in the mutation.
func (m *ResultMutation) ExecutionTimeMs() (r int64, exists bool) {
	v := m.execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionTimeMs returns the old "execution_time_ms" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldExecutionTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionTimeMs: %w", err)
	}
	return oldValue.ExecutionTimeMs, nil
}

// AddExecutionTimeMs adds i to the "execution_time_ms" field.
func (m *ResultMutation) AddExecutionTimeMs(i int64) {
	if m.addexecution_time_ms != nil {
		*m.addexecution_time_ms += i
	} else {
		m.addexecution_time_ms = &i
	}
}

// AddedExecutionTimeMs returns the value that was added to the "execution_time_ms" field in this mutation.
func (m *ResultMutation) AddedExecutionTimeMs() (r int64, exists bool) {
	v := m.addexecution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutionTimeMs resets all changes to the "execution_time_ms" field.
func (m *ResultMutation) ResetExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
}

// SetError sets the "error" field.
func (m *ResultMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *ResultMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *ResultMutation) ClearError() {
	m.error = nil
	m.clearedFields[result.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *ResultMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[result.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *ResultMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, result.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *ResultMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[result.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *ResultMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ResultMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ResultMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// SetTestCaseID sets the "test_case" edge to the TestCase entity by id.
func (m *ResultMutation) SetTestCaseID(id string) {
	m.test_case = &id
}

// ClearTestCase clears the "test_case" edge to the TestCase entity.
func (m *ResultMutation) ClearTestCase() {
	m.clearedtest_case = true
	m.clearedFields[result.FieldCaseID] = struct{}{}
}

// TestCaseCleared reports if the "test_case" edge to the TestCase entity was cleared.
func (m *ResultMutation) TestCaseCleared() bool {
	return m.CaseIDCleared() || m.clearedtest_case
}

// TestCaseID returns the "test_case" edge ID in the mutation.
func (m *ResultMutation) TestCaseID() (id string, exists bool) {
	if m.test_case != nil {
		return *m.test_case, true
	}
	return
}

// TestCaseIDs returns the "test_case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TestCaseID instead. It exists only for internal usage by the builders.
func (m *ResultMutation) TestCaseIDs() (ids []string) {
	if id := m.test_case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTestCase resets all changes to the "test_case" edge.
func (m *ResultMutation) ResetTestCase() {
	m.test_case = nil
	m.clearedtest_case = false
}

// Where appends a list predicates to the ResultMutation builder.
func (m *ResultMutation) Where(ps ...predicate.Result) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Result, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Result).
func (m *ResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResultMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.run != nil {
		fields = append(fields, result.FieldRunID)
	}
	if m.test_case != nil {
		fields = append(fields, result.FieldCaseID)
	}
	if m.case_name != nil {
		fields = append(fields, result.FieldCaseName)
	}
	if m.trace_run_id != nil {
		fields = append(fields, result.FieldTraceRunID)
	}
	if m.trace_id != nil {
		fields = append(fields, result.FieldTraceID)
	}
	if m.status != nil {
		fields = append(fields, result.FieldStatus)
	}
	if m.output != nil {
		fields = append(fields, result.FieldOutput)
	}
	if m.scores != nil {
		fields = append(fields, result.FieldScores)
	}
	if m.score_details != nil {
		fields = append(fields, result.FieldScoreDetails)
	}
	if m.trace_summary != nil {
		fields = append(fields, result.FieldTraceSummary)
	}
	if m.passed != nil {
		fields = append(fields, result.FieldPassed)
	}
	if m.execution_time_ms != nil {
		fields = append(fields, result.FieldExecutionTimeMs)
	}
	if m.error != nil {
		fields = append(fields, result.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, result.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case result.FieldRunID:
		return m.RunID()
	case result.FieldCaseID:
		return m.CaseID()
	case result.FieldCaseName:
		return m.CaseName()
	case result.FieldTraceRunID:
		return m.TraceRunID()
	case result.FieldTraceID:
		return m.TraceID()
	case result.FieldStatus:
		return m.Status()
	case result.FieldOutput:
		return m.Output()
	case result.FieldScores:
		return m.Scores()
	case result.FieldScoreDetails:
		return m.ScoreDetails()
	case result.FieldTraceSummary:
		return m.TraceSummary()
	case result.FieldPassed:
		return m.Passed()
	case result.FieldExecutionTimeMs:
		return m.ExecutionTimeMs()
	case result.FieldError:
		return m.Error()
	case result.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case result.FieldRunID:
		return m.OldRunID(ctx)
	case result.FieldCaseID:
		return m.OldCaseID(ctx)
	case result.FieldCaseName:
		return m.OldCaseName(ctx)
	case result.FieldTraceRunID:
		return m.OldTraceRunID(ctx)
	case result.FieldTraceID:
		return m.OldTraceID(ctx)
	case result.FieldStatus:
		return m.OldStatus(ctx)
	case result.FieldOutput:
		return m.OldOutput(ctx)
	case result.FieldScores:
		return m.OldScores(ctx)
	case result.FieldScoreDetails:
		return m.OldScoreDetails(ctx)
	case result.FieldTraceSummary:
		return m.OldTraceSummary(ctx)
	case result.FieldPassed:
		return m.OldPassed(ctx)
	case result.FieldExecutionTimeMs:
		return m.OldExecutionTimeMs(ctx)
	case result.FieldError:
		return m.OldError(ctx)
	case result.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Result field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case result.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case result.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case result.FieldCaseName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseName(v)
		return nil
	case result.FieldTraceRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceRunID(v)
		return nil
	case result.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case result.FieldStatus:
		v, ok := value.(result.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case result.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case result.FieldScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScores(v)
		return nil
	case result.FieldScoreDetails:
		v, ok := value.(map[string]models.ScoreDetail)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreDetails(v)
		return nil
	case result.FieldTraceSummary:
		v, ok := value.(*models.TraceSummary)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceSummary(v)
		return nil
	case result.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case result.FieldExecutionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionTimeMs(v)
		return nil
	case result.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case result.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Result field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResultMutation) AddedFields() []string {
	var fields []string
	if m.addexecution_time_ms != nil {
		fields = append(fields, result.FieldExecutionTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case result.FieldExecutionTimeMs:
		return m.AddedExecutionTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case result.FieldExecutionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown Result numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(result.FieldCaseID) {
		fields = append(fields, result.FieldCaseID)
	}
	if m.FieldCleared(result.FieldTraceRunID) {
		fields = append(fields, result.FieldTraceRunID)
	}
	if m.FieldCleared(result.FieldTraceID) {
		fields = append(fields, result.FieldTraceID)
	}
	if m.FieldCleared(result.FieldOutput) {
		fields = append(fields, result.FieldOutput)
	}
	if m.FieldCleared(result.FieldScores) {
		fields = append(fields, result.FieldScores)
	}
	if m.FieldCleared(result.FieldScoreDetails) {
		fields = append(fields, result.FieldScoreDetails)
	}
	if m.FieldCleared(result.FieldTraceSummary) {
		fields = append(fields, result.FieldTraceSummary)
	}
	if m.FieldCleared(result.FieldError) {
		fields = append(fields, result.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResultMutation) ClearField(name string) error {
	switch name {
	case result.FieldCaseID:
		m.ClearCaseID()
		return nil
	case result.FieldTraceRunID:
		m.ClearTraceRunID()
		return nil
	case result.FieldTraceID:
		m.ClearTraceID()
		return nil
	case result.FieldOutput:
		m.ClearOutput()
		return nil
	case result.FieldScores:
		m.ClearScores()
		return nil
	case result.FieldScoreDetails:
		m.ClearScoreDetails()
		return nil
	case result.FieldTraceSummary:
		m.ClearTraceSummary()
		return nil
	case result.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown Result nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResultMutation) ResetField(name string) error {
	switch name {
	case result.FieldRunID:
		m.ResetRunID()
		return nil
	case result.FieldCaseID:
		m.ResetCaseID()
		return nil
	case result.FieldCaseName:
		m.ResetCaseName()
		return nil
	case result.FieldTraceRunID:
		m.ResetTraceRunID()
		return nil
	case result.FieldTraceID:
		m.ResetTraceID()
		return nil
	case result.FieldStatus:
		m.ResetStatus()
		return nil
	case result.FieldOutput:
		m.ResetOutput()
		return nil
	case result.FieldScores:
		m.ResetScores()
		return nil
	case result.FieldScoreDetails:
		m.ResetScoreDetails()
		return nil
	case result.FieldTraceSummary:
		m.ResetTraceSummary()
		return nil
	case result.FieldPassed:
		m.ResetPassed()
		return nil
	case result.FieldExecutionTimeMs:
		m.ResetExecutionTimeMs()
		return nil
	case result.FieldError:
		m.ResetError()
		return nil
	case result.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Result field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, result.EdgeRun)
	}
	if m.test_case != nil {
		edges = append(edges, result.EdgeTestCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case result.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case result.EdgeTestCase:
		if id := m.test_case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, result.EdgeRun)
	}
	if m.clearedtest_case {
		edges = append(edges, result.EdgeTestCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResultMutation) EdgeCleared(name string) bool {
	switch name {
	case result.EdgeRun:
		return m.clearedrun
	case result.EdgeTestCase:
		return m.clearedtest_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResultMutation) ClearEdge(name string) error {
	switch name {
	case result.EdgeRun:
		m.ClearRun()
		return nil
	case result.EdgeTestCase:
		m.ClearTestCase()
		return nil
	}
	return fmt.Errorf("unknown Result unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResultMutation) ResetEdge(name string) error {
	switch name {
	case result.EdgeRun:
		m.ResetRun()
		return nil
	case result.EdgeTestCase:
		m.ResetTestCase()
		return nil
	}
	return fmt.Errorf("unknown Result edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                Op
	typ               string
	id                *string
	agent_version     *string
	trigger           *run.Trigger
	trigger_ref       *string
	status            *run.Status
	_config           **models.RunConfig
	summary           **models.RunSummary
	started_at        *time.Time
	completed_at      *time.Time
	last_heartbeat_at *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	project           *string
	clearedproject    bool
	suite             *string
	clearedsuite      bool
	results           map[string]struct{}
	removedresults    map[string]struct{}
	clearedresults    bool
	done              bool
	oldValue          func(context.Context) (*Run, error)
	predicates        []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *RunMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *RunMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *RunMutation) ResetProjectID() {
	m.project = nil
}

// SetSuiteID sets the "suite_id" field.
func (m *RunMutation) SetSuiteID(s string) {
	m.suite = &s
}

// SuiteID returns the value of the "suite_id" field in the mutation.
func (m *RunMutation) SuiteID() (r string, exists bool) {
	v := m.suite
	if v == nil {
		return
	}
	return *v, true
}

// OldSuiteID returns the old "suite_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldSuiteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuiteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuiteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuiteID: %w", err)
	}
	return oldValue.SuiteID, nil
}

// ResetSuiteID resets all changes to the "suite_id" field.
func (m *RunMutation) ResetSuiteID() {
	m.suite = nil
}

// SetAgentVersion sets the "agent_version" field.
func (m *RunMutation) SetAgentVersion(s string) {
	m.agent_version = &s
}

// AgentVersion returns the value of the "agent_version" field in the mutation.
func (m *RunMutation) AgentVersion() (r string, exists bool) {
	v := m.agent_version
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentVersion returns the old "agent_version" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldAgentVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentVersion: %w", err)
	}
	return oldValue.AgentVersion, nil
}

// ClearAgentVersion clears the value of the "agent_version" field.
func (m *RunMutation) ClearAgentVersion() {
	m.agent_version = nil
	m.clearedFields[run.FieldAgentVersion] = struct{}{}
}

// AgentVersionCleared returns if the "agent_version" field was cleared in this mutation.
func (m *RunMutation) AgentVersionCleared() bool {
	_, ok := m.clearedFields[run.FieldAgentVersion]
	return ok
}

// ResetAgentVersion resets all changes to the "agent_version" field.
func (m *RunMutation) ResetAgentVersion() {
	m.agent_version = nil
	delete(m.clearedFields, run.FieldAgentVersion)
}

// SetTrigger sets the "trigger" field.
func (m *RunMutation) SetTrigger(r run.Trigger) {
	m.trigger = &r
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *RunMutation) Trigger() (r run.Trigger, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTrigger(ctx context.Context) (v run.Trigger, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *RunMutation) ResetTrigger() {
	m.trigger = nil
}

// SetTriggerRef sets the "trigger_ref" field.
func (m *RunMutation) SetTriggerRef(s string) {
	m.trigger_ref = &s
}

// TriggerRef returns the value of the "trigger_ref" field in the mutation.
func (m *RunMutation) TriggerRef() (r string, exists bool) {
	v := m.trigger_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerRef returns the old "trigger_ref" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTriggerRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerRef: %w", err)
	}
	return oldValue.TriggerRef, nil
}

// ClearTriggerRef clears the value of the "trigger_ref" field.
func (m *RunMutation) ClearTriggerRef() {
	m.trigger_ref = nil
	m.clearedFields[run.FieldTriggerRef] = struct{}{}
}

// TriggerRefCleared returns if the "trigger_ref" field was cleared in this mutation.
func (m *RunMutation) TriggerRefCleared() bool {
	_, ok := m.clearedFields[run.FieldTriggerRef]
	return ok
}

// ResetTriggerRef resets all changes to the "trigger_ref" field.
func (m *RunMutation) ResetTriggerRef() {
	m.trigger_ref = nil
	delete(m.clearedFields, run.FieldTriggerRef)
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetConfig sets the "config" field.
func (m *RunMutation) SetConfig(mc *models.RunConfig) {
	m._config = &mc
}

// Config returns the value of the "config" field in the mutation.
func (m *RunMutation) Config() (r *models.RunConfig, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldConfig(ctx context.Context) (v *models.RunConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *RunMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[run.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *RunMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[run.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *RunMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, run.FieldConfig)
}

// SetSummary sets the "summary" field.
func (m *RunMutation) SetSummary(ms *models.RunSummary) {
	m.summary = &ms
}

// Summary returns the value of the "summary" field in the mutation.
func (m *RunMutation) Summary() (r *models.RunSummary, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldSummary(ctx context.Context) (v *models.RunSummary, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *RunMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[run.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *RunMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[run.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *RunMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, run.FieldSummary)
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[run.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, run.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[run.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, run.FieldCompletedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *RunMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *RunMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *RunMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[run.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *RunMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[run.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *RunMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, run.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *RunMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[run.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *RunMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *RunMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *RunMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearSuite clears the "suite" edge to the Suite entity.
func (m *RunMutation) ClearSuite() {
	m.clearedsuite = true
	m.clearedFields[run.FieldSuiteID] = struct{}{}
}

// SuiteCleared reports if the "suite" edge to the Suite entity was cleared.
func (m *RunMutation) SuiteCleared() bool {
	return m.clearedsuite
}

// SuiteIDs returns the "suite" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SuiteID instead. It exists only for internal usage by the builders.
func (m *RunMutation) SuiteIDs() (ids []string) {
	if id := m.suite; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSuite resets all changes to the "suite" edge.
func (m *RunMutation) ResetSuite() {
	m.suite = nil
	m.clearedsuite = false
}

// AddResultIDs adds the "results" edge to the Result entity by ids.
func (m *RunMutation) AddResultIDs(ids ...string) {
	if m.results == nil {
		m.results = make(map[string]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the Result entity.
func (m *RunMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the Result entity was cleared.
func (m *RunMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the Result entity by IDs.
func (m *RunMutation) RemoveResultIDs(ids ...string) {
	if m.removedresults == nil {
		m.removedresults = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the Result entity.
func (m *RunMutation) RemovedResultsIDs() (ids []string) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *RunMutation) ResultsIDs() (ids []string) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *RunMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.project != nil {
		fields = append(fields, run.FieldProjectID)
	}
	if m.suite != nil {
		fields = append(fields, run.FieldSuiteID)
	}
	if m.agent_version != nil {
		fields = append(fields, run.FieldAgentVersion)
	}
	if m.trigger != nil {
		fields = append(fields, run.FieldTrigger)
	}
	if m.trigger_ref != nil {
		fields = append(fields, run.FieldTriggerRef)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m._config != nil {
		fields = append(fields, run.FieldConfig)
	}
	if m.summary != nil {
		fields = append(fields, run.FieldSummary)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, run.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, run.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldProjectID:
		return m.ProjectID()
	case run.FieldSuiteID:
		return m.SuiteID()
	case run.FieldAgentVersion:
		return m.AgentVersion()
	case run.FieldTrigger:
		return m.Trigger()
	case run.FieldTriggerRef:
		return m.TriggerRef()
	case run.FieldStatus:
		return m.Status()
	case run.FieldConfig:
		return m.Config()
	case run.FieldSummary:
		return m.Summary()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldCompletedAt:
		return m.CompletedAt()
	case run.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case run.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldProjectID:
		return m.OldProjectID(ctx)
	case run.FieldSuiteID:
		return m.OldSuiteID(ctx)
	case run.FieldAgentVersion:
		return m.OldAgentVersion(ctx)
	case run.FieldTrigger:
		return m.OldTrigger(ctx)
	case run.FieldTriggerRef:
		return m.OldTriggerRef(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldConfig:
		return m.OldConfig(ctx)
	case run.FieldSummary:
		return m.OldSummary(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case run.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case run.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case run.FieldSuiteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuiteID(v)
		return nil
	case run.FieldAgentVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentVersion(v)
		return nil
	case run.FieldTrigger:
		v, ok := value.(run.Trigger)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case run.FieldTriggerRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerRef(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldConfig:
		v, ok := value.(*models.RunConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case run.FieldSummary:
		v, ok := value.(*models.RunSummary)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case run.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case run.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldAgentVersion) {
		fields = append(fields, run.FieldAgentVersion)
	}
	if m.FieldCleared(run.FieldTriggerRef) {
		fields = append(fields, run.FieldTriggerRef)
	}
	if m.FieldCleared(run.FieldConfig) {
		fields = append(fields, run.FieldConfig)
	}
	if m.FieldCleared(run.FieldSummary) {
		fields = append(fields, run.FieldSummary)
	}
	if m.FieldCleared(run.FieldStartedAt) {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.FieldCleared(run.FieldCompletedAt) {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.FieldCleared(run.FieldLastHeartbeatAt) {
		fields = append(fields, run.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldAgentVersion:
		m.ClearAgentVersion()
		return nil
	case run.FieldTriggerRef:
		m.ClearTriggerRef()
		return nil
	case run.FieldConfig:
		m.ClearConfig()
		return nil
	case run.FieldSummary:
		m.ClearSummary()
		return nil
	case run.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case run.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldProjectID:
		m.ResetProjectID()
		return nil
	case run.FieldSuiteID:
		m.ResetSuiteID()
		return nil
	case run.FieldAgentVersion:
		m.ResetAgentVersion()
		return nil
	case run.FieldTrigger:
		m.ResetTrigger()
		return nil
	case run.FieldTriggerRef:
		m.ResetTriggerRef()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldConfig:
		m.ResetConfig()
		return nil
	case run.FieldSummary:
		m.ResetSummary()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case run.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case run.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, run.EdgeProject)
	}
	if m.suite != nil {
		edges = append(edges, run.EdgeSuite)
	}
	if m.results != nil {
		edges = append(edges, run.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case run.EdgeSuite:
		if id := m.suite; id != nil {
			return []ent.Value{*id}
		}
	case run.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedresults != nil {
		edges = append(edges, run.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, run.EdgeProject)
	}
	if m.clearedsuite {
		edges = append(edges, run.EdgeSuite)
	}
	if m.clearedresults {
		edges = append(edges, run.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgeProject:
		return m.clearedproject
	case run.EdgeSuite:
		return m.clearedsuite
	case run.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	case run.EdgeProject:
		m.ClearProject()
		return nil
	case run.EdgeSuite:
		m.ClearSuite()
		return nil
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgeProject:
		m.ResetProject()
		return nil
	case run.EdgeSuite:
		m.ResetSuite()
		return nil
	case run.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}

// SuiteMutation represents an operation that mutates the Suite nodes in the graph.
type SuiteMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	name                       *string
	agent_id                   *string
	description                *string
	parallel                   *bool
	stop_on_failure            *bool
	default_scorers            *[]string
	appenddefault_scorers      []string
	default_min_score          *float64
	adddefault_min_score       *float64
	default_timeout_seconds    *int
	adddefault_timeout_seconds *int
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	project                    *string
	clearedproject             bool
	cases                      map[string]struct{}
	removedcases               map[string]struct{}
	clearedcases               bool
	runs                       map[string]struct{}
	removedruns                map[string]struct{}
	clearedruns                bool
	done                       bool
	oldValue                   func(context.Context) (*Suite, error)
	predicates                 []predicate.Suite
}

var _ ent.Mutation = (*SuiteMutation)(nil)

// suiteOption allows management of the mutation configuration using functional options.
type suiteOption func(*SuiteMutation)

// newSuiteMutation creates new mutation for the Suite entity.
func newSuiteMutation(c config, op Op, opts ...suiteOption) *SuiteMutation {
	m := &SuiteMutation{
		config:        c,
		op:            op,
		typ:           TypeSuite,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSuiteID sets the ID field of the mutation.
func withSuiteID(id string) suiteOption {
	return func(m *SuiteMutation) {
		var (
			err   error
			once  sync.Once
			value *Suite
		)
		m.oldValue = func(ctx context.Context) (*Suite, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Suite.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSuite sets the old Suite of the mutation.
func withSuite(node *Suite) suiteOption {
	return func(m *SuiteMutation) {
		m.oldValue = func(context.Context) (*Suite, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SuiteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SuiteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Suite entities.
func (m *SuiteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SuiteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SuiteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Suite.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *SuiteMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SuiteMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Suite entity.
// If the Suite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SuiteMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *SuiteMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SuiteMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Suite entity.
// If the Suite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SuiteMutation) ResetName() {
	m.name = nil
}

// SetAgentID sets the "agent_id" field.
func (m *SuiteMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *SuiteMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Suite entity.
// If the Suite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *SuiteMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetDescription sets the "description" field.
func (m *SuiteMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SuiteMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Suite entity.
// If the Suite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SuiteMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[suite.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SuiteMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[suite.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SuiteMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, suite.FieldDescription)
}

// SetParallel sets the "parallel" field.
func (m *SuiteMutation) SetParallel(b bool) {
	m.parallel = &b
}

// Parallel returns the value of the "parallel" field in the mutation.
func (m *SuiteMutation) Parallel() (r bool, exists bool) {
	v := m.parallel
	if v == nil {
		return
	}
	return *v, true
}

// OldParallel returns the old "parallel" field's value of the Suite entity.
// If the Suite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteMutation) OldParallel(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParallel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParallel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParallel: %w", err)
	}
	return oldValue.Parallel, nil
}

// ResetParallel resets all changes to the "parallel" field.
func (m *SuiteMutation) ResetParallel() {
	m.parallel = nil
}

// SetStopOnFailure sets the "stop_on_failure" field.
func (m *SuiteMutation) SetStopOnFailure(b bool) {
	m.stop_on_failure = &b
}

// StopOnFailure returns the value of the "stop_on_failure" field in the mutation.
func (m *SuiteMutation) StopOnFailure() (r bool, exists bool) {
	v := m.stop_on_failure
	if v == nil {
		return
	}
	return *v, true
}

// OldStopOnFailure returns the old "stop_on_failure" field's value of the Suite entity.
// If the Suite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteMutation) OldStopOnFailure(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStopOnFailure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStopOnFailure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStopOnFailure: %w", err)
	}
	return oldValue.StopOnFailure, nil
}

// ResetStopOnFailure resets all changes to the "stop_on_failure" field.
func (m *SuiteMutation) ResetStopOnFailure() {
	m.stop_on_failure = nil
}

// SetDefaultScorers sets the "default_scorers" field.
func (m *SuiteMutation) SetDefaultScorers(s []string) {
	m.default_scorers = &s
	m.appenddefault_scorers = nil
}

// DefaultScorers returns the value of the "default_scorers" field in the mutation.
func (m *SuiteMutation) DefaultScorers() (r []string, exists bool) {
	v := m.default_scorers
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultScorers returns the old "default_scorers" field's value of the Suite entity.
// If the Suite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteMutation) OldDefaultScorers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultScorers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultScorers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultScorers: %w", err)
	}
	return oldValue.DefaultScorers, nil
}

// AppendDefaultScorers adds s to the "default_scorers" field.
func (m *SuiteMutation) AppendDefaultScorers(s []string) {
	m.appenddefault_scorers = append(m.appenddefault_scorers, s...)
}

// AppendedDefaultScorers returns the list of values that were appended to the "default_scorers" field in this mutation.
func (m *SuiteMutation) AppendedDefaultScorers() ([]string, bool) {
	if len(m.appenddefault_scorers) == 0 {
		return nil, false
	}
	return m.appenddefault_scorers, true
}

// ClearDefaultScorers clears the value of the "default_scorers" field.
func (m *SuiteMutation) ClearDefaultScorers() {
	m.default_scorers = nil
	m.appenddefault_scorers = nil
	m.clearedFields[suite.FieldDefaultScorers] = struct{}{}
}

// DefaultScorersCleared returns if the "default_scorers" field was cleared in this mutation.
func (m *SuiteMutation) DefaultScorersCleared() bool {
	_, ok := m.clearedFields[suite.FieldDefaultScorers]
	return ok
}

// ResetDefaultScorers resets all changes to the "default_scorers" field.
func (m *SuiteMutation) ResetDefaultScorers() {
	m.default_scorers = nil
	m.appenddefault_scorers = nil
	delete(m.clearedFields, suite.FieldDefaultScorers)
}

// SetDefaultMinScore sets the "default_min_score" field.
func (m *SuiteMutation) SetDefaultMinScore(f float64) {
	m.default_min_score = &f
	m.adddefault_min_score = nil
}

// DefaultMinScore returns the value of the "default_min_score" field in the mutation.
func (m *SuiteMutation) DefaultMinScore() (r float64, exists bool) {
	v := m.default_min_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultMinScore returns the old "default_min_score" field's value of the Suite entity.
// If the Suite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteMutation) OldDefaultMinScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultMinScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultMinScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultMinScore: %w", err)
	}
	return oldValue.DefaultMinScore, nil
}

// AddDefaultMinScore adds f to the "default_min_score" field.
func (m *SuiteMutation) AddDefaultMinScore(f float64) {
	if m.adddefault_min_score != nil {
		*m.adddefault_min_score += f
	} else {
		m.adddefault_min_score = &f
	}
}

// AddedDefaultMinScore returns the value that was added to the "default_min_score" field in this mutation.
func (m *SuiteMutation) AddedDefaultMinScore() (r float64, exists bool) {
	v := m.adddefault_min_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetDefaultMinScore resets all changes to the "default_min_score" field.
func (m *SuiteMutation) ResetDefaultMinScore() {
	m.default_min_score = nil
	m.adddefault_min_score = nil
}

// SetDefaultTimeoutSeconds sets the "default_timeout_seconds" field.
func (m *SuiteMutation) SetDefaultTimeoutSeconds(i int) {
	m.default_timeout_seconds = &i
	m.adddefault_timeout_seconds = nil
}

// DefaultTimeoutSeconds returns the value of the "default_timeout_seconds" field in the mutation.
func (m *SuiteMutation) DefaultTimeoutSeconds() (r int, exists bool) {
	v := m.default_timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultTimeoutSeconds returns the old "default_timeout_seconds" field's value of the Suite entity.
// If the Suite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteMutation) OldDefaultTimeoutSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultTimeoutSeconds: %w", err)
	}
	return oldValue.DefaultTimeoutSeconds, nil
}

// AddDefaultTimeoutSeconds adds i to the "default_timeout_seconds" field.
func (m *SuiteMutation) AddDefaultTimeoutSeconds(i int) {
	if m.adddefault_timeout_seconds != nil {
		*m.adddefault_timeout_seconds += i
	} else {
		m.adddefault_timeout_seconds = &i
	}
}

// AddedDefaultTimeoutSeconds returns the value that was added to the "default_timeout_seconds" field in this mutation.
func (m *SuiteMutation) AddedDefaultTimeoutSeconds() (r int, exists bool) {
	v := m.adddefault_timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetDefaultTimeoutSeconds resets all changes to the "default_timeout_seconds" field.
func (m *SuiteMutation) ResetDefaultTimeoutSeconds() {
	m.default_timeout_seconds = nil
	m.adddefault_timeout_seconds = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SuiteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SuiteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Suite entity.
// If the Suite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SuiteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SuiteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SuiteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Suite entity.
// If the Suite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SuiteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *SuiteMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[suite.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *SuiteMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *SuiteMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *SuiteMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddCaseIDs adds the "cases" edge to the TestCase entity by ids.
func (m *SuiteMutation) AddCaseIDs(ids ...string) {
	if m.cases == nil {
		m.cases = make(map[string]struct{})
	}
	for i := range ids {
		m.cases[ids[i]] = struct{}{}
	}
}

// ClearCases clears the "cases" edge to the TestCase entity.
func (m *SuiteMutation) ClearCases() {
	m.clearedcases = true
}

// CasesCleared reports if the "cases" edge to the TestCase entity was cleared.
func (m *SuiteMutation) CasesCleared() bool {
	return m.clearedcases
}

// RemoveCaseIDs removes the "cases" edge to the TestCase entity by IDs.
func (m *SuiteMutation) RemoveCaseIDs(ids ...string) {
	if m.removedcases == nil {
		m.removedcases = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.cases, ids[i])
		m.removedcases[ids[i]] = struct{}{}
	}
}

// RemovedCases returns the removed IDs of the "cases" edge to the TestCase entity.
func (m *SuiteMutation) RemovedCasesIDs() (ids []string) {
	for id := range m.removedcases {
		ids = append(ids, id)
	}
	return
}

// CasesIDs returns the "cases" edge IDs in the mutation.
func (m *SuiteMutation) CasesIDs() (ids []string) {
	for id := range m.cases {
		ids = append(ids, id)
	}
	return
}

// ResetCases resets all changes to the "cases" edge.
func (m *SuiteMutation) ResetCases() {
	m.cases = nil
	m.clearedcases = false
	m.removedcases = nil
}

// AddRunIDs adds the "runs" edge to the Run entity by ids.
func (m *SuiteMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the Run entity.
func (m *SuiteMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the Run entity was cleared.
func (m *SuiteMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the Run entity by IDs.
func (m *SuiteMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the Run entity.
func (m *SuiteMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *SuiteMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *SuiteMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the SuiteMutation builder.
func (m *SuiteMutation) Where(ps ...predicate.Suite) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SuiteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SuiteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Suite, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SuiteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SuiteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Suite).
func (m *SuiteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SuiteMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.project != nil {
		fields = append(fields, suite.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, suite.FieldName)
	}
	if m.agent_id != nil {
		fields = append(fields, suite.FieldAgentID)
	}
	if m.description != nil {
		fields = append(fields, suite.FieldDescription)
	}
	if m.parallel != nil {
		fields = append(fields, suite.FieldParallel)
	}
	if m.stop_on_failure != nil {
		fields = append(fields, suite.FieldStopOnFailure)
	}
	if m.default_scorers != nil {
		fields = append(fields, suite.FieldDefaultScorers)
	}
	if m.default_min_score != nil {
		fields = append(fields, suite.FieldDefaultMinScore)
	}
	if m.default_timeout_seconds != nil {
		fields = append(fields, suite.FieldDefaultTimeoutSeconds)
	}
	if m.created_at != nil {
		fields = append(fields, suite.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, suite.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SuiteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case suite.FieldProjectID:
		return m.ProjectID()
	case suite.FieldName:
		return m.Name()
	case suite.FieldAgentID:
		return m.AgentID()
	case suite.FieldDescription:
		return m.Description()
	case suite.FieldParallel:
		return m.Parallel()
	case suite.FieldStopOnFailure:
		return m.StopOnFailure()
	case suite.FieldDefaultScorers:
		return m.DefaultScorers()
	case suite.FieldDefaultMinScore:
		return m.DefaultMinScore()
	case suite.FieldDefaultTimeoutSeconds:
		return m.DefaultTimeoutSeconds()
	case suite.FieldCreatedAt:
		return m.CreatedAt()
	case suite.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SuiteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case suite.FieldProjectID:
		return m.OldProjectID(ctx)
	case suite.FieldName:
		return m.OldName(ctx)
	case suite.FieldAgentID:
		return m.OldAgentID(ctx)
	case suite.FieldDescription:
		return m.OldDescription(ctx)
	case suite.FieldParallel:
		return m.OldParallel(ctx)
	case suite.FieldStopOnFailure:
		return m.OldStopOnFailure(ctx)
	case suite.FieldDefaultScorers:
		return m.OldDefaultScorers(ctx)
	case suite.FieldDefaultMinScore:
		return m.OldDefaultMinScore(ctx)
	case suite.FieldDefaultTimeoutSeconds:
		return m.OldDefaultTimeoutSeconds(ctx)
	case suite.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case suite.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Suite field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuiteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case suite.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case suite.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case suite.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case suite.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case suite.FieldParallel:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParallel(v)
		return nil
	case suite.FieldStopOnFailure:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStopOnFailure(v)
		return nil
	case suite.FieldDefaultScorers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultScorers(v)
		return nil
	case suite.FieldDefaultMinScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultMinScore(v)
		return nil
	case suite.FieldDefaultTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultTimeoutSeconds(v)
		return nil
	case suite.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case suite.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Suite field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SuiteMutation) AddedFields() []string {
	var fields []string
	if m.adddefault_min_score != nil {
		fields = append(fields, suite.FieldDefaultMinScore)
	}
	if m.adddefault_timeout_seconds != nil {
		fields = append(fields, suite.FieldDefaultTimeoutSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SuiteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case suite.FieldDefaultMinScore:
		return m.AddedDefaultMinScore()
	case suite.FieldDefaultTimeoutSeconds:
		return m.AddedDefaultTimeoutSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuiteMutation) AddField(name string, value ent.Value) error {
	switch name {
	case suite.FieldDefaultMinScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDefaultMinScore(v)
		return nil
	case suite.FieldDefaultTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDefaultTimeoutSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Suite numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SuiteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(suite.FieldDescription) {
		fields = append(fields, suite.FieldDescription)
	}
	if m.FieldCleared(suite.FieldDefaultScorers) {
		fields = append(fields, suite.FieldDefaultScorers)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SuiteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SuiteMutation) ClearField(name string) error {
	switch name {
	case suite.FieldDescription:
		m.ClearDescription()
		return nil
	case suite.FieldDefaultScorers:
		m.ClearDefaultScorers()
		return nil
	}
	return fmt.Errorf("unknown Suite nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SuiteMutation) ResetField(name string) error {
	switch name {
	case suite.FieldProjectID:
		m.ResetProjectID()
		return nil
	case suite.FieldName:
		m.ResetName()
		return nil
	case suite.FieldAgentID:
		m.ResetAgentID()
		return nil
	case suite.FieldDescription:
		m.ResetDescription()
		return nil
	case suite.FieldParallel:
		m.ResetParallel()
		return nil
	case suite.FieldStopOnFailure:
		m.ResetStopOnFailure()
		return nil
	case suite.FieldDefaultScorers:
		m.ResetDefaultScorers()
		return nil
	case suite.FieldDefaultMinScore:
		m.ResetDefaultMinScore()
		return nil
	case suite.FieldDefaultTimeoutSeconds:
		m.ResetDefaultTimeoutSeconds()
		return nil
	case suite.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case suite.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Suite field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SuiteMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, suite.EdgeProject)
	}
	if m.cases != nil {
		edges = append(edges, suite.EdgeCases)
	}
	if m.runs != nil {
		edges = append(edges, suite.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SuiteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case suite.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case suite.EdgeCases:
		ids := make([]ent.Value, 0, len(m.cases))
		for id := range m.cases {
			ids = append(ids, id)
		}
		return ids
	case suite.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SuiteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedcases != nil {
		edges = append(edges, suite.EdgeCases)
	}
	if m.removedruns != nil {
		edges = append(edges, suite.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SuiteMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case suite.EdgeCases:
		ids := make([]ent.Value, 0, len(m.removedcases))
		for id := range m.removedcases {
			ids = append(ids, id)
		}
		return ids
	case suite.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SuiteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, suite.EdgeProject)
	}
	if m.clearedcases {
		edges = append(edges, suite.EdgeCases)
	}
	if m.clearedruns {
		edges = append(edges, suite.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SuiteMutation) EdgeCleared(name string) bool {
	switch name {
	case suite.EdgeProject:
		return m.clearedproject
	case suite.EdgeCases:
		return m.clearedcases
	case suite.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SuiteMutation) ClearEdge(name string) error {
	switch name {
	case suite.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Suite unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SuiteMutation) ResetEdge(name string) error {
	switch name {
	case suite.EdgeProject:
		m.ResetProject()
		return nil
	case suite.EdgeCases:
		m.ResetCases()
		return nil
	case suite.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown Suite edge %s", name)
}

// TestCaseMutation represents an operation that mutates the TestCase nodes in the graph.
type TestCaseMutation struct {
	config
	op                             Op
	typ                            string
	id                             *string
	name                           *string
	description                    *string
	input                          *models.CaseInput
	expected_tools                 *[]string
	appendexpected_tools           []string
	expected_tool_sequence         *[]string
	appendexpected_tool_sequence   []string
	expected_output_contains       *[]string
	appendexpected_output_contains []string
	expected_output_pattern        *string
	scorers                        *[]string
	appendscorers                  []string
	scorer_config                  *map[string]interface{}
	min_score                      *float64
	addmin_score                   *float64
	timeout_seconds                *int
	addtimeout_seconds             *int
	tags                           *[]string
	appendtags                     []string
	created_at                     *time.Time
	updated_at                     *time.Time
	clearedFields                  map[string]struct{}
	suite                          *string
	clearedsuite                   bool
	results                        map[string]struct{}
	removedresults                 map[string]struct{}
	clearedresults                 bool
	done                           bool
	oldValue                       func(context.Context) (*TestCase, error)
	predicates                     []predicate.TestCase
}

var _ ent.Mutation = (*TestCaseMutation)(nil)

// testcaseOption allows management of the mutation configuration using functional options.
type testcaseOption func(*TestCaseMutation)

// newTestCaseMutation creates new mutation for the TestCase entity.
func newTestCaseMutation(c config, op Op, opts ...testcaseOption) *TestCaseMutation {
	m := &TestCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeTestCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestCaseID sets the ID field of the mutation.
func withTestCaseID(id string) testcaseOption {
	return func(m *TestCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *TestCase
		)
		m.oldValue = func(ctx context.Context) (*TestCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestCase sets the old TestCase of the mutation.
func withTestCase(node *TestCase) testcaseOption {
	return func(m *TestCaseMutation) {
		m.oldValue = func(context.Context) (*TestCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TestCase entities.
func (m *TestCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSuiteID sets the "suite_id" field.
func (m *TestCaseMutation) SetSuiteID(s string) {
	m.suite = &s
}

// SuiteID returns the value of the "suite_id" field in the mutation.
func (m *TestCaseMutation) SuiteID() (r string, exists bool) {
	v := m.suite
	if v == nil {
		return
	}
	return *v, true
}

// OldSuiteID returns the old "suite_id" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldSuiteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuiteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuiteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuiteID: %w", err)
	}
	return oldValue.SuiteID, nil
}

// ResetSuiteID resets all changes to the "suite_id" field.
func (m *TestCaseMutation) ResetSuiteID() {
	m.suite = nil
}

// SetName sets the "name" field.
func (m *TestCaseMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TestCaseMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TestCaseMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TestCaseMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TestCaseMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TestCaseMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[testcase.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TestCaseMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[testcase.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TestCaseMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, testcase.FieldDescription)
}

// SetInput sets the "input" field.
func (m *TestCaseMutation) SetInput(mi models.CaseInput) {
	m.input = &mi
}

// Input returns the value of the "input" field in the mutation.
func (m *TestCaseMutation) Input() (r models.CaseInput, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldInput(ctx context.Context) (v models.CaseInput, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ResetInput resets all changes to the "input" field.
func (m *TestCaseMutation) ResetInput() {
	m.input = nil
}

// SetExpectedTools sets the "expected_tools" field.
func (m *TestCaseMutation) SetExpectedTools(s []string) {
	m.expected_tools = &s
	m.appendexpected_tools = nil
}

// ExpectedTools returns the value of the "expected_tools" field in the mutation.
func (m *TestCaseMutation) ExpectedTools() (r []string, exists bool) {
	v := m.expected_tools
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedTools returns the old "expected_tools" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldExpectedTools(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedTools: %w", err)
	}
	return oldValue.ExpectedTools, nil
}

// AppendExpectedTools adds s to the "expected_tools" field.
func (m *TestCaseMutation) AppendExpectedTools(s []string) {
	m.appendexpected_tools = append(m.appendexpected_tools, s...)
}

// AppendedExpectedTools returns the list of values that were appended to the "expected_tools" field in this mutation.
func (m *TestCaseMutation) AppendedExpectedTools() ([]string, bool) {
	if len(m.appendexpected_tools) == 0 {
		return nil, false
	}
	return m.appendexpected_tools, true
}

// ClearExpectedTools clears the value of the "expected_tools" field.
func (m *TestCaseMutation) ClearExpectedTools() {
	m.expected_tools = nil
	m.appendexpected_tools = nil
	m.clearedFields[testcase.FieldExpectedTools] = struct{}{}
}

// ExpectedToolsCleared returns if the "expected_tools" field was cleared in this mutation.
func (m *TestCaseMutation) ExpectedToolsCleared() bool {
	_, ok := m.clearedFields[testcase.FieldExpectedTools]
	return ok
}

// ResetExpectedTools resets all changes to the "expected_tools" field.
func (m *TestCaseMutation) ResetExpectedTools() {
	m.expected_tools = nil
	m.appendexpected_tools = nil
	delete(m.clearedFields, testcase.FieldExpectedTools)
}

// SetExpectedToolSequence sets the "expected_tool_sequence" field.
func (m *TestCaseMutation) SetExpectedToolSequence(s []string) {
	m.expected_tool_sequence = &s
	m.appendexpected_tool_sequence = nil
}

// ExpectedToolSequence returns the value of the "expected_tool_sequence" field in the mutation.
func (m *TestCaseMutation) ExpectedToolSequence() (r []string, exists bool) {
	v := m.expected_tool_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedToolSequence returns the old "expected_tool_sequence" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldExpectedToolSequence(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedToolSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedToolSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedToolSequence: %w", err)
	}
	return oldValue.ExpectedToolSequence, nil
}

// AppendExpectedToolSequence adds s to the "expected_tool_sequence" field.
func (m *TestCaseMutation) AppendExpectedToolSequence(s []string) {
	m.appendexpected_tool_sequence = append(m.appendexpected_tool_sequence, s...)
}

// AppendedExpectedToolSequence returns the list of values that were appended to the "expected_tool_sequence" field in this mutation.
func (m *TestCaseMutation) AppendedExpectedToolSequence() ([]string, bool) {
	if len(m.appendexpected_tool_sequence) == 0 {
		return nil, false
	}
	return m.appendexpected_tool_sequence, true
}

// ClearExpectedToolSequence clears the value of the "expected_tool_sequence" field.
func (m *TestCaseMutation) ClearExpectedToolSequence() {
	m.expected_tool_sequence = nil
	m.appendexpected_tool_sequence = nil
	m.clearedFields[testcase.FieldExpectedToolSequence] = struct{}{}
}

// ExpectedToolSequenceCleared returns if the "expected_tool_sequence" field was cleared in this mutation.
func (m *TestCaseMutation) ExpectedToolSequenceCleared() bool {
	_, ok := m.clearedFields[testcase.FieldExpectedToolSequence]
	return ok
}

// ResetExpectedToolSequence resets all changes to the "expected_tool_sequence" field.
func (m *TestCaseMutation) ResetExpectedToolSequence() {
	m.expected_tool_sequence = nil
	m.appendexpected_tool_sequence = nil
	delete(m.clearedFields, testcase.FieldExpectedToolSequence)
}

// SetExpectedOutputContains sets the "expected_output_contains" field.
func (m *TestCaseMutation) SetExpectedOutputContains(s []string) {
	m.expected_output_contains = &s
	m.appendexpected_output_contains = nil
}

// ExpectedOutputContains returns the value of the "expected_output_contains" field in the mutation.
func (m *TestCaseMutation) ExpectedOutputContains() (r []string, exists bool) {
	v := m.expected_output_contains
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedOutputContains returns the old "expected_output_contains" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldExpectedOutputContains(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedOutputContains is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedOutputContains requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedOutputContains: %w", err)
	}
	return oldValue.ExpectedOutputContains, nil
}

// AppendExpectedOutputContains adds s to the "expected_output_contains" field.
func (m *TestCaseMutation) AppendExpectedOutputContains(s []string) {
	m.appendexpected_output_contains = append(m.appendexpected_output_contains, s...)
}

// AppendedExpectedOutputContains returns the list of values that were appended to the "expected_output_contains" field in this mutation.
func (m *TestCaseMutation) AppendedExpectedOutputContains() ([]string, bool) {
	if len(m.appendexpected_output_contains) == 0 {
		return nil, false
	}
	return m.appendexpected_output_contains, true
}

// ClearExpectedOutputContains clears the value of the "expected_output_contains" field.
func (m *TestCaseMutation) ClearExpectedOutputContains() {
	m.expected_output_contains = nil
	m.appendexpected_output_contains = nil
	m.clearedFields[testcase.FieldExpectedOutputContains] = struct{}{}
}

// ExpectedOutputContainsCleared returns if the "expected_output_contains" field was cleared in this mutation.
func (m *TestCaseMutation) ExpectedOutputContainsCleared() bool {
	_, ok := m.clearedFields[testcase.FieldExpectedOutputContains]
	return ok
}

// ResetExpectedOutputContains resets all changes to the "expected_output_contains" field.
func (m *TestCaseMutation) ResetExpectedOutputContains() {
	m.expected_output_contains = nil
	m.appendexpected_output_contains = nil
	delete(m.clearedFields, testcase.FieldExpectedOutputContains)
}

// SetExpectedOutputPattern sets the "expected_output_pattern" field.
func (m *TestCaseMutation) SetExpectedOutputPattern(s string) {
	m.expected_output_pattern = &s
}

// ExpectedOutputPattern returns the value of the "expected_output_pattern" field in the mutation.
func (m *TestCaseMutation) ExpectedOutputPattern() (r string, exists bool) {
	v := m.expected_output_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedOutputPattern returns the old "expected_output_pattern" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldExpectedOutputPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedOutputPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedOutputPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedOutputPattern: %w", err)
	}
	return oldValue.ExpectedOutputPattern, nil
}

// ClearExpectedOutputPattern clears the value of the "expected_output_pattern" field.
func (m *TestCaseMutation) ClearExpectedOutputPattern() {
	m.expected_output_pattern = nil
	m.clearedFields[testcase.FieldExpectedOutputPattern] = struct{}{}
}

// ExpectedOutputPatternCleared returns if the "expected_output_pattern" field was cleared in this mutation.
func (m *TestCaseMutation) ExpectedOutputPatternCleared() bool {
	_, ok := m.clearedFields[testcase.FieldExpectedOutputPattern]
	return ok
}

// ResetExpectedOutputPattern resets all changes to the "expected_output_pattern" field.
func (m *TestCaseMutation) ResetExpectedOutputPattern() {
	m.expected_output_pattern = nil
	delete(m.clearedFields, testcase.FieldExpectedOutputPattern)
}

// SetScorers sets the "scorers" field.
func (m *TestCaseMutation) SetScorers(s []string) {
	m.scorers = &s
	m.appendscorers = nil
}

// Scorers returns the value of the "scorers" field in the mutation.
func (m *TestCaseMutation) Scorers() (r []string, exists bool) {
	v := m.scorers
	if v == nil {
		return
	}
	return *v, true
}

// OldScorers returns the old "scorers" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldScorers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScorers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScorers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScorers: %w", err)
	}
	return oldValue.Scorers, nil
}

// AppendScorers adds s to the "scorers" field.
func (m *TestCaseMutation) AppendScorers(s []string) {
	m.appendscorers = append(m.appendscorers, s...)
}

// AppendedScorers returns the list of values that were appended to the "scorers" field in this mutation.
func (m *TestCaseMutation) AppendedScorers() ([]string, bool) {
	if len(m.appendscorers) == 0 {
		return nil, false
	}
	return m.appendscorers, true
}

// ClearScorers clears the value of the "scorers" field.
func (m *TestCaseMutation) ClearScorers() {
	m.scorers = nil
	m.appendscorers = nil
	m.clearedFields[testcase.FieldScorers] = struct{}{}
}

// ScorersCleared returns if the "scorers" field was cleared in this mutation.
func (m *TestCaseMutation) ScorersCleared() bool {
	_, ok := m.clearedFields[testcase.FieldScorers]
	return ok
}

// ResetScorers resets all changes to the "scorers" field.
func (m *TestCaseMutation) ResetScorers() {
	m.scorers = nil
	m.appendscorers = nil
	delete(m.clearedFields, testcase.FieldScorers)
}

// SetScorerConfig sets the "scorer_config" field.
func (m *TestCaseMutation) SetScorerConfig(value map[string]interface{}) {
	m.scorer_config = &value
}

// ScorerConfig returns the value of the "scorer_config" field in the mutation.
func (m *TestCaseMutation) ScorerConfig() (r map[string]interface{}, exists bool) {
	v := m.scorer_config
	if v == nil {
		return
	}
	return *v, true
}

// OldScorerConfig returns the old "scorer_config" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldScorerConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScorerConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScorerConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScorerConfig: %w", err)
	}
	return oldValue.ScorerConfig, nil
}

// ClearScorerConfig clears the value of the "scorer_config" field.
func (m *TestCaseMutation) ClearScorerConfig() {
	m.scorer_config = nil
	m.clearedFields[testcase.FieldScorerConfig] = struct{}{}
}

// ScorerConfigCleared returns if the "scorer_config" field was cleared in this mutation.
func (m *TestCaseMutation) ScorerConfigCleared() bool {
	_, ok := m.clearedFields[testcase.FieldScorerConfig]
	return ok
}

// ResetScorerConfig resets all changes to the "scorer_config" field.
func (m *TestCaseMutation) ResetScorerConfig() {
	m.scorer_config = nil
	delete(m.clearedFields, testcase.FieldScorerConfig)
}

// SetMinScore sets the "min_score" field.
func (m *TestCaseMutation) SetMinScore(f float64) {
	m.min_score = &f
	m.addmin_score = nil
}

// MinScore returns the value of the "min_score" field in the mutation.
func (m *TestCaseMutation) MinScore() (r float64, exists bool) {
	v := m.min_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMinScore returns the old "min_score" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldMinScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinScore: %w", err)
	}
	return oldValue.MinScore, nil
}

// AddMinScore adds f to the "min_score" field.
func (m *TestCaseMutation) AddMinScore(f float64) {
	if m.addmin_score != nil {
		*m.addmin_score += f
	} else {
		m.addmin_score = &f
	}
}

// AddedMinScore returns the value that was added to the "min_score" field in this mutation.
func (m *TestCaseMutation) AddedMinScore() (r float64, exists bool) {
	v := m.addmin_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinScore resets all changes to the "min_score" field.
func (m *TestCaseMutation) ResetMinScore() {
	m.min_score = nil
	m.addmin_score = nil
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (m *TestCaseMutation) SetTimeoutSeconds(i int) {
	m.timeout_seconds = &i
	m.addtimeout_seconds = nil
}

// TimeoutSeconds returns the value of the "timeout_seconds" field in the mutation.
func (m *TestCaseMutation) TimeoutSeconds() (r int, exists bool) {
	v := m.timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutSeconds returns the old "timeout_seconds" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldTimeoutSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutSeconds: %w", err)
	}
	return oldValue.TimeoutSeconds, nil
}

// AddTimeoutSeconds adds i to the "timeout_seconds" field.
func (m *TestCaseMutation) AddTimeoutSeconds(i int) {
	if m.addtimeout_seconds != nil {
		*m.addtimeout_seconds += i
	} else {
		m.addtimeout_seconds = &i
	}
}

// AddedTimeoutSeconds returns the value that was added to the "timeout_seconds" field in this mutation.
func (m *TestCaseMutation) AddedTimeoutSeconds() (r int, exists bool) {
	v := m.addtimeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutSeconds resets all changes to the "timeout_seconds" field.
func (m *TestCaseMutation) ResetTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
}

// SetTags sets the "tags" field.
func (m *TestCaseMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *TestCaseMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *TestCaseMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *TestCaseMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *TestCaseMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[testcase.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *TestCaseMutation) TagsCleared() bool {
	_, ok := m.clearedFields[testcase.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *TestCaseMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, testcase.FieldTags)
}

// SetCreatedAt sets the "created_at" field.
func (m *TestCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TestCaseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TestCaseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TestCaseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSuite clears the "suite" edge to the Suite entity.
func (m *TestCaseMutation) ClearSuite() {
	m.clearedsuite = true
	m.clearedFields[testcase.FieldSuiteID] = struct{}{}
}

// SuiteCleared reports if the "suite" edge to the Suite entity was cleared.
func (m *TestCaseMutation) SuiteCleared() bool {
	return m.clearedsuite
}

// SuiteIDs returns the "suite" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SuiteID instead. It exists only for internal usage by the builders.
func (m *TestCaseMutation) SuiteIDs() (ids []string) {
	if id := m.suite; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSuite resets all changes to the "suite" edge.
func (m *TestCaseMutation) ResetSuite() {
	m.suite = nil
	m.clearedsuite = false
}

// AddResultIDs adds the "results" edge to the Result entity by ids.
func (m *TestCaseMutation) AddResultIDs(ids ...string) {
	if m.results == nil {
		m.results = make(map[string]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the Result entity.
func (m *TestCaseMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the Result entity was cleared.
func (m *TestCaseMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the Result entity by IDs.
func (m *TestCaseMutation) RemoveResultIDs(ids ...string) {
	if m.removedresults == nil {
		m.removedresults = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the Result entity.
func (m *TestCaseMutation) RemovedResultsIDs() (ids []string) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *TestCaseMutation) ResultsIDs() (ids []string) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *TestCaseMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the TestCaseMutation builder.
func (m *TestCaseMutation) Where(ps ...predicate.TestCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestCase).
func (m *TestCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestCaseMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.suite != nil {
		fields = append(fields, testcase.FieldSuiteID)
	}
	if m.name != nil {
		fields = append(fields, testcase.FieldName)
	}
	if m.description != nil {
		fields = append(fields, testcase.FieldDescription)
	}
	if m.input != nil {
		fields = append(fields, testcase.FieldInput)
	}
	if m.expected_tools != nil {
		fields = append(fields, testcase.FieldExpectedTools)
	}
	if m.expected_tool_sequence != nil {
		fields = append(fields, testcase.FieldExpectedToolSequence)
	}
	if m.expected_output_contains != nil {
		fields = append(fields, testcase.FieldExpectedOutputContains)
	}
	if m.expected_output_pattern != nil {
		fields = append(fields, testcase.FieldExpectedOutputPattern)
	}
	if m.scorers != nil {
		fields = append(fields, testcase.FieldScorers)
	}
	if m.scorer_config != nil {
		fields = append(fields, testcase.FieldScorerConfig)
	}
	if m.min_score != nil {
		fields = append(fields, testcase.FieldMinScore)
	}
	if m.timeout_seconds != nil {
		fields = append(fields, testcase.FieldTimeoutSeconds)
	}
	if m.tags != nil {
		fields = append(fields, testcase.FieldTags)
	}
	if m.created_at != nil {
		fields = append(fields, testcase.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, testcase.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testcase.FieldSuiteID:
		return m.SuiteID()
	case testcase.FieldName:
		return m.Name()
	case testcase.FieldDescription:
		return m.Description()
	case testcase.FieldInput:
		return m.Input()
	case testcase.FieldExpectedTools:
		return m.ExpectedTools()
	case testcase.FieldExpectedToolSequence:
		return m.ExpectedToolSequence()
	case testcase.FieldExpectedOutputContains:
		return m.ExpectedOutputContains()
	case testcase.FieldExpectedOutputPattern:
		return m.ExpectedOutputPattern()
	case testcase.FieldScorers:
		return m.Scorers()
	case testcase.FieldScorerConfig:
		return m.ScorerConfig()
	case testcase.FieldMinScore:
		return m.MinScore()
	case testcase.FieldTimeoutSeconds:
		return m.TimeoutSeconds()
	case testcase.FieldTags:
		return m.Tags()
	case testcase.FieldCreatedAt:
		return m.CreatedAt()
	case testcase.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testcase.FieldSuiteID:
		return m.OldSuiteID(ctx)
	case testcase.FieldName:
		return m.OldName(ctx)
	case testcase.FieldDescription:
		return m.OldDescription(ctx)
	case testcase.FieldInput:
		return m.OldInput(ctx)
	case testcase.FieldExpectedTools:
		return m.OldExpectedTools(ctx)
	case testcase.FieldExpectedToolSequence:
		return m.OldExpectedToolSequence(ctx)
	case testcase.FieldExpectedOutputContains:
		return m.OldExpectedOutputContains(ctx)
	case testcase.FieldExpectedOutputPattern:
		return m.OldExpectedOutputPattern(ctx)
	case testcase.FieldScorers:
		return m.OldScorers(ctx)
	case testcase.FieldScorerConfig:
		return m.OldScorerConfig(ctx)
	case testcase.FieldMinScore:
		return m.OldMinScore(ctx)
	case testcase.FieldTimeoutSeconds:
		return m.OldTimeoutSeconds(ctx)
	case testcase.FieldTags:
		return m.OldTags(ctx)
	case testcase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case testcase.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TestCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testcase.FieldSuiteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuiteID(v)
		return nil
	case testcase.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case testcase.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case testcase.FieldInput:
		v, ok := value.(models.CaseInput)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case testcase.FieldExpectedTools:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedTools(v)
		return nil
	case testcase.FieldExpectedToolSequence:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedToolSequence(v)
		return nil
	case testcase.FieldExpectedOutputContains:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedOutputContains(v)
		return nil
	case testcase.FieldExpectedOutputPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedOutputPattern(v)
		return nil
	case testcase.FieldScorers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScorers(v)
		return nil
	case testcase.FieldScorerConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScorerConfig(v)
		return nil
	case testcase.FieldMinScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinScore(v)
		return nil
	case testcase.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutSeconds(v)
		return nil
	case testcase.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case testcase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case testcase.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TestCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestCaseMutation) AddedFields() []string {
	var fields []string
	if m.addmin_score != nil {
		fields = append(fields, testcase.FieldMinScore)
	}
	if m.addtimeout_seconds != nil {
		fields = append(fields, testcase.FieldTimeoutSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestCaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case testcase.FieldMinScore:
		return m.AddedMinScore()
	case testcase.FieldTimeoutSeconds:
		return m.AddedTimeoutSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case testcase.FieldMinScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinScore(v)
		return nil
	case testcase.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown TestCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(testcase.FieldDescription) {
		fields = append(fields, testcase.FieldDescription)
	}
	if m.FieldCleared(testcase.FieldExpectedTools) {
		fields = append(fields, testcase.FieldExpectedTools)
	}
	if m.FieldCleared(testcase.FieldExpectedToolSequence) {
		fields = append(fields, testcase.FieldExpectedToolSequence)
	}
	if m.FieldCleared(testcase.FieldExpectedOutputContains) {
		fields = append(fields, testcase.FieldExpectedOutputContains)
	}
	if m.FieldCleared(testcase.FieldExpectedOutputPattern) {
		fields = append(fields, testcase.FieldExpectedOutputPattern)
	}
	if m.FieldCleared(testcase.FieldScorers) {
		fields = append(fields, testcase.FieldScorers)
	}
	if m.FieldCleared(testcase.FieldScorerConfig) {
		fields = append(fields, testcase.FieldScorerConfig)
	}
	if m.FieldCleared(testcase.FieldTags) {
		fields = append(fields, testcase.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestCaseMutation) ClearField(name string) error {
	switch name {
	case testcase.FieldDescription:
		m.ClearDescription()
		return nil
	case testcase.FieldExpectedTools:
		m.ClearExpectedTools()
		return nil
	case testcase.FieldExpectedToolSequence:
		m.ClearExpectedToolSequence()
		return nil
	case testcase.FieldExpectedOutputContains:
		m.ClearExpectedOutputContains()
		return nil
	case testcase.FieldExpectedOutputPattern:
		m.ClearExpectedOutputPattern()
		return nil
	case testcase.FieldScorers:
		m.ClearScorers()
		return nil
	case testcase.FieldScorerConfig:
		m.ClearScorerConfig()
		return nil
	case testcase.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown TestCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestCaseMutation) ResetField(name string) error {
	switch name {
	case testcase.FieldSuiteID:
		m.ResetSuiteID()
		return nil
	case testcase.FieldName:
		m.ResetName()
		return nil
	case testcase.FieldDescription:
		m.ResetDescription()
		return nil
	case testcase.FieldInput:
		m.ResetInput()
		return nil
	case testcase.FieldExpectedTools:
		m.ResetExpectedTools()
		return nil
	case testcase.FieldExpectedToolSequence:
		m.ResetExpectedToolSequence()
		return nil
	case testcase.FieldExpectedOutputContains:
		m.ResetExpectedOutputContains()
		return nil
	case testcase.FieldExpectedOutputPattern:
		m.ResetExpectedOutputPattern()
		return nil
	case testcase.FieldScorers:
		m.ResetScorers()
		return nil
	case testcase.FieldScorerConfig:
		m.ResetScorerConfig()
		return nil
	case testcase.FieldMinScore:
		m.ResetMinScore()
		return nil
	case testcase.FieldTimeoutSeconds:
		m.ResetTimeoutSeconds()
		return nil
	case testcase.FieldTags:
		m.ResetTags()
		return nil
	case testcase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case testcase.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TestCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.suite != nil {
		edges = append(edges, testcase.EdgeSuite)
	}
	if m.results != nil {
		edges = append(edges, testcase.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestCaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case testcase.EdgeSuite:
		if id := m.suite; id != nil {
			return []ent.Value{*id}
		}
	case testcase.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedresults != nil {
		edges = append(edges, testcase.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestCaseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case testcase.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsuite {
		edges = append(edges, testcase.EdgeSuite)
	}
	if m.clearedresults {
		edges = append(edges, testcase.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestCaseMutation) EdgeCleared(name string) bool {
	switch name {
	case testcase.EdgeSuite:
		return m.clearedsuite
	case testcase.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestCaseMutation) ClearEdge(name string) error {
	switch name {
	case testcase.EdgeSuite:
		m.ClearSuite()
		return nil
	}
	return fmt.Errorf("unknown TestCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestCaseMutation) ResetEdge(name string) error {
	switch name {
	case testcase.EdgeSuite:
		m.ResetSuite()
		return nil
	case testcase.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown TestCase edge %s", name)
}
