// Code generated by ent, DO NOT EDIT.

package suite

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/neonhq/neon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Suite {
	return predicate.Suite(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Suite {
	return predicate.Suite(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Suite {
	return predicate.Suite(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Suite {
	return predicate.Suite(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Suite {
	return predicate.Suite(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Suite {
	return predicate.Suite(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Suite {
	return predicate.Suite(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Suite {
	return predicate.Suite(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Suite {
	return predicate.Suite(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldProjectID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldName, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldAgentID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldDescription, v))
}

// Parallel applies equality check predicate on the "parallel" field. It's identical to ParallelEQ.
func Parallel(v bool) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldParallel, v))
}

// StopOnFailure applies equality check predicate on the "stop_on_failure" field. It's identical to StopOnFailureEQ.
func StopOnFailure(v bool) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldStopOnFailure, v))
}

// DefaultMinScore applies equality check predicate on the "default_min_score" field. It's identical to DefaultMinScoreEQ.
func DefaultMinScore(v float64) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldDefaultMinScore, v))
}

// DefaultTimeoutSeconds applies equality check predicate on the "default_timeout_seconds" field. It's identical to DefaultTimeoutSecondsEQ.
func DefaultTimeoutSeconds(v int) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldDefaultTimeoutSeconds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Suite {
	return predicate.Suite(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Suite {
	return predicate.Suite(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Suite {
	return predicate.Suite(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Suite {
	return predicate.Suite(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Suite {
	return predicate.Suite(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Suite {
	return predicate.Suite(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Suite {
	return predicate.Suite(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Suite {
	return predicate.Suite(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Suite {
	return predicate.Suite(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Suite {
	return predicate.Suite(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Suite {
	return predicate.Suite(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Suite {
	return predicate.Suite(sql.FieldContainsFold(FieldProjectID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Suite {
	return predicate.Suite(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Suite {
	return predicate.Suite(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Suite {
	return predicate.Suite(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Suite {
	return predicate.Suite(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Suite {
	return predicate.Suite(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Suite {
	return predicate.Suite(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Suite {
	return predicate.Suite(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Suite {
	return predicate.Suite(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Suite {
	return predicate.Suite(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Suite {
	return predicate.Suite(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Suite {
	return predicate.Suite(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Suite {
	return predicate.Suite(sql.FieldContainsFold(FieldName, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Suite {
	return predicate.Suite(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Suite {
	return predicate.Suite(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Suite {
	return predicate.Suite(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Suite {
	return predicate.Suite(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Suite {
	return predicate.Suite(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Suite {
	return predicate.Suite(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Suite {
	return predicate.Suite(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Suite {
	return predicate.Suite(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Suite {
	return predicate.Suite(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Suite {
	return predicate.Suite(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Suite {
	return predicate.Suite(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Suite {
	return predicate.Suite(sql.FieldContainsFold(FieldAgentID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Suite {
	return predicate.Suite(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Suite {
	return predicate.Suite(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Suite {
	return predicate.Suite(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Suite {
	return predicate.Suite(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Suite {
	return predicate.Suite(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Suite {
	return predicate.Suite(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Suite {
	return predicate.Suite(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Suite {
	return predicate.Suite(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Suite {
	return predicate.Suite(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Suite {
	return predicate.Suite(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Suite {
	return predicate.Suite(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Suite {
	return predicate.Suite(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Suite {
	return predicate.Suite(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Suite {
	return predicate.Suite(sql.FieldContainsFold(FieldDescription, v))
}

// ParallelEQ applies the EQ predicate on the "parallel" field.
func ParallelEQ(v bool) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldParallel, v))
}

// ParallelNEQ applies the NEQ predicate on the "parallel" field.
func ParallelNEQ(v bool) predicate.Suite {
	return predicate.Suite(sql.FieldNEQ(FieldParallel, v))
}

// StopOnFailureEQ applies the EQ predicate on the "stop_on_failure" field.
func StopOnFailureEQ(v bool) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldStopOnFailure, v))
}

// StopOnFailureNEQ applies the NEQ predicate on the "stop_on_failure" field.
func StopOnFailureNEQ(v bool) predicate.Suite {
	return predicate.Suite(sql.FieldNEQ(FieldStopOnFailure, v))
}

// DefaultScorersIsNil applies the IsNil predicate on the "default_scorers" field.
func DefaultScorersIsNil() predicate.Suite {
	return predicate.Suite(sql.FieldIsNull(FieldDefaultScorers))
}

// DefaultScorersNotNil applies the NotNil predicate on the "default_scorers" field.
func DefaultScorersNotNil() predicate.Suite {
	return predicate.Suite(sql.FieldNotNull(FieldDefaultScorers))
}

// DefaultMinScoreEQ applies the EQ predicate on the "default_min_score" field.
func DefaultMinScoreEQ(v float64) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldDefaultMinScore, v))
}

// DefaultMinScoreNEQ applies the NEQ predicate on the "default_min_score" field.
func DefaultMinScoreNEQ(v float64) predicate.Suite {
	return predicate.Suite(sql.FieldNEQ(FieldDefaultMinScore, v))
}

// DefaultMinScoreIn applies the In predicate on the "default_min_score" field.
func DefaultMinScoreIn(vs ...float64) predicate.Suite {
	return predicate.Suite(sql.FieldIn(FieldDefaultMinScore, vs...))
}

// DefaultMinScoreNotIn applies the NotIn predicate on the "default_min_score" field.
func DefaultMinScoreNotIn(vs ...float64) predicate.Suite {
	return predicate.Suite(sql.FieldNotIn(FieldDefaultMinScore, vs...))
}

// DefaultMinScoreGT applies the GT predicate on the "default_min_score" field.
func DefaultMinScoreGT(v float64) predicate.Suite {
	return predicate.Suite(sql.FieldGT(FieldDefaultMinScore, v))
}

// DefaultMinScoreGTE applies the GTE predicate on the "default_min_score" field.
func DefaultMinScoreGTE(v float64) predicate.Suite {
	return predicate.Suite(sql.FieldGTE(FieldDefaultMinScore, v))
}

// DefaultMinScoreLT applies the LT predicate on the "default_min_score" field.
func DefaultMinScoreLT(v float64) predicate.Suite {
	return predicate.Suite(sql.FieldLT(FieldDefaultMinScore, v))
}

// DefaultMinScoreLTE applies the LTE predicate on the "default_min_score" field.
func DefaultMinScoreLTE(v float64) predicate.Suite {
	return predicate.Suite(sql.FieldLTE(FieldDefaultMinScore, v))
}

// DefaultTimeoutSecondsEQ applies the EQ predicate on the "default_timeout_seconds" field.
func DefaultTimeoutSecondsEQ(v int) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldDefaultTimeoutSeconds, v))
}

// DefaultTimeoutSecondsNEQ applies the NEQ predicate on the "default_timeout_seconds" field.
func DefaultTimeoutSecondsNEQ(v int) predicate.Suite {
	return predicate.Suite(sql.FieldNEQ(FieldDefaultTimeoutSeconds, v))
}

// DefaultTimeoutSecondsIn applies the In predicate on the "default_timeout_seconds" field.
func DefaultTimeoutSecondsIn(vs ...int) predicate.Suite {
	return predicate.Suite(sql.FieldIn(FieldDefaultTimeoutSeconds, vs...))
}

// DefaultTimeoutSecondsNotIn applies the NotIn predicate on the "default_timeout_seconds" field.
func DefaultTimeoutSecondsNotIn(vs ...int) predicate.Suite {
	return predicate.Suite(sql.FieldNotIn(FieldDefaultTimeoutSeconds, vs...))
}

// DefaultTimeoutSecondsGT applies the GT predicate on the "default_timeout_seconds" field.
func DefaultTimeoutSecondsGT(v int) predicate.Suite {
	return predicate.Suite(sql.FieldGT(FieldDefaultTimeoutSeconds, v))
}

// DefaultTimeoutSecondsGTE applies the GTE predicate on the "default_timeout_seconds" field.
func DefaultTimeoutSecondsGTE(v int) predicate.Suite {
	return predicate.Suite(sql.FieldGTE(FieldDefaultTimeoutSeconds, v))
}

// DefaultTimeoutSecondsLT applies the LT predicate on the "default_timeout_seconds" field.
func DefaultTimeoutSecondsLT(v int) predicate.Suite {
	return predicate.Suite(sql.FieldLT(FieldDefaultTimeoutSeconds, v))
}

// DefaultTimeoutSecondsLTE applies the LTE predicate on the "default_timeout_seconds" field.
func DefaultTimeoutSecondsLTE(v int) predicate.Suite {
	return predicate.Suite(sql.FieldLTE(FieldDefaultTimeoutSeconds, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Suite {
	return predicate.Suite(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Suite {
	return predicate.Suite(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Suite {
	return predicate.Suite(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCases applies the HasEdge predicate on the "cases" edge.
func HasCases() predicate.Suite {
	return predicate.Suite(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CasesTable, CasesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCasesWith applies the HasEdge predicate on the "cases" edge with a given conditions (other predicates).
func HasCasesWith(preds ...predicate.TestCase) predicate.Suite {
	return predicate.Suite(func(s *sql.Selector) {
		step := newCasesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.Suite {
	return predicate.Suite(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.Run) predicate.Suite {
	return predicate.Suite(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Suite) predicate.Suite {
	return predicate.Suite(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Suite) predicate.Suite {
	return predicate.Suite(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Suite) predicate.Suite {
	return predicate.Suite(sql.NotPredicates(p))
}
