// Code generated by ent, DO NOT EDIT.

package testcase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/neonhq/neon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldID, id))
}

// SuiteID applies equality check predicate on the "suite_id" field. It's identical to SuiteIDEQ.
func SuiteID(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldSuiteID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldDescription, v))
}

// ExpectedOutputPattern applies equality check predicate on the "expected_output_pattern" field. It's identical to ExpectedOutputPatternEQ.
func ExpectedOutputPattern(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldExpectedOutputPattern, v))
}

// MinScore applies equality check predicate on the "min_score" field. It's identical to MinScoreEQ.
func MinScore(v float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldMinScore, v))
}

// TimeoutSeconds applies equality check predicate on the "timeout_seconds" field. It's identical to TimeoutSecondsEQ.
func TimeoutSeconds(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldUpdatedAt, v))
}

// SuiteIDEQ applies the EQ predicate on the "suite_id" field.
func SuiteIDEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldSuiteID, v))
}

// SuiteIDNEQ applies the NEQ predicate on the "suite_id" field.
func SuiteIDNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldSuiteID, v))
}

// SuiteIDIn applies the In predicate on the "suite_id" field.
func SuiteIDIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldSuiteID, vs...))
}

// SuiteIDNotIn applies the NotIn predicate on the "suite_id" field.
func SuiteIDNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldSuiteID, vs...))
}

// SuiteIDGT applies the GT predicate on the "suite_id" field.
func SuiteIDGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldSuiteID, v))
}

// SuiteIDGTE applies the GTE predicate on the "suite_id" field.
func SuiteIDGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldSuiteID, v))
}

// SuiteIDLT applies the LT predicate on the "suite_id" field.
func SuiteIDLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldSuiteID, v))
}

// SuiteIDLTE applies the LTE predicate on the "suite_id" field.
func SuiteIDLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldSuiteID, v))
}

// SuiteIDContains applies the Contains predicate on the "suite_id" field.
func SuiteIDContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldSuiteID, v))
}

// SuiteIDHasPrefix applies the HasPrefix predicate on the "suite_id" field.
func SuiteIDHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldSuiteID, v))
}

// SuiteIDHasSuffix applies the HasSuffix predicate on the "suite_id" field.
func SuiteIDHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldSuiteID, v))
}

// SuiteIDEqualFold applies the EqualFold predicate on the "suite_id" field.
func SuiteIDEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldSuiteID, v))
}

// SuiteIDContainsFold applies the ContainsFold predicate on the "suite_id" field.
func SuiteIDContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldSuiteID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldDescription, v))
}

// ExpectedToolsIsNil applies the IsNil predicate on the "expected_tools" field.
func ExpectedToolsIsNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldIsNull(FieldExpectedTools))
}

// ExpectedToolsNotNil applies the NotNil predicate on the "expected_tools" field.
func ExpectedToolsNotNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldNotNull(FieldExpectedTools))
}

// ExpectedToolSequenceIsNil applies the IsNil predicate on the "expected_tool_sequence" field.
func ExpectedToolSequenceIsNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldIsNull(FieldExpectedToolSequence))
}

// ExpectedToolSequenceNotNil applies the NotNil predicate on the "expected_tool_sequence" field.
func ExpectedToolSequenceNotNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldNotNull(FieldExpectedToolSequence))
}

// ExpectedOutputContainsIsNil applies the IsNil predicate on the "expected_output_contains" field.
func ExpectedOutputContainsIsNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldIsNull(FieldExpectedOutputContains))
}

// ExpectedOutputContainsNotNil applies the NotNil predicate on the "expected_output_contains" field.
func ExpectedOutputContainsNotNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldNotNull(FieldExpectedOutputContains))
}

// ExpectedOutputPatternEQ applies the EQ predicate on the "expected_output_pattern" field.
func ExpectedOutputPatternEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldExpectedOutputPattern, v))
}

// ExpectedOutputPatternNEQ applies the NEQ predicate on the "expected_output_pattern" field.
func ExpectedOutputPatternNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldExpectedOutputPattern, v))
}

// ExpectedOutputPatternIn applies the In predicate on the "expected_output_pattern" field.
func ExpectedOutputPatternIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldExpectedOutputPattern, vs...))
}

// ExpectedOutputPatternNotIn applies the NotIn predicate on the "expected_output_pattern" field.
func ExpectedOutputPatternNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldExpectedOutputPattern, vs...))
}

// ExpectedOutputPatternGT applies the GT predicate on the "expected_output_pattern" field.
func ExpectedOutputPatternGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldExpectedOutputPattern, v))
}

// ExpectedOutputPatternGTE applies the GTE predicate on the "expected_output_pattern" field.
func ExpectedOutputPatternGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldExpectedOutputPattern, v))
}

// ExpectedOutputPatternLT applies the LT predicate on the "expected_output_pattern" field.
func ExpectedOutputPatternLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldExpectedOutputPattern, v))
}

// ExpectedOutputPatternLTE applies the LTE predicate on the "expected_output_pattern" field.
func ExpectedOutputPatternLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldExpectedOutputPattern, v))
}

// ExpectedOutputPatternContains applies the Contains predicate on the "expected_output_pattern" field.
func ExpectedOutputPatternContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldExpectedOutputPattern, v))
}

// ExpectedOutputPatternHasPrefix applies the HasPrefix predicate on the "expected_output_pattern" field.
func ExpectedOutputPatternHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldExpectedOutputPattern, v))
}

// ExpectedOutputPatternHasSuffix applies the HasSuffix predicate on the "expected_output_pattern" field.
func ExpectedOutputPatternHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldExpectedOutputPattern, v))
}

// ExpectedOutputPatternIsNil applies the IsNil predicate on the "expected_output_pattern" field.
func ExpectedOutputPatternIsNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldIsNull(FieldExpectedOutputPattern))
}

// ExpectedOutputPatternNotNil applies the NotNil predicate on the "expected_output_pattern" field.
func ExpectedOutputPatternNotNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldNotNull(FieldExpectedOutputPattern))
}

// ExpectedOutputPatternEqualFold applies the EqualFold predicate on the "expected_output_pattern" field.
func ExpectedOutputPatternEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldExpectedOutputPattern, v))
}

// ExpectedOutputPatternContainsFold applies the ContainsFold predicate on the "expected_output_pattern" field.
func ExpectedOutputPatternContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldExpectedOutputPattern, v))
}

// ScorersIsNil applies the IsNil predicate on the "scorers" field.
func ScorersIsNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldIsNull(FieldScorers))
}

// ScorersNotNil applies the NotNil predicate on the "scorers" field.
func ScorersNotNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldNotNull(FieldScorers))
}

// ScorerConfigIsNil applies the IsNil predicate on the "scorer_config" field.
func ScorerConfigIsNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldIsNull(FieldScorerConfig))
}

// ScorerConfigNotNil applies the NotNil predicate on the "scorer_config" field.
func ScorerConfigNotNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldNotNull(FieldScorerConfig))
}

// MinScoreEQ applies the EQ predicate on the "min_score" field.
func MinScoreEQ(v float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldMinScore, v))
}

// MinScoreNEQ applies the NEQ predicate on the "min_score" field.
func MinScoreNEQ(v float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldMinScore, v))
}

// MinScoreIn applies the In predicate on the "min_score" field.
func MinScoreIn(vs ...float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldMinScore, vs...))
}

// MinScoreNotIn applies the NotIn predicate on the "min_score" field.
func MinScoreNotIn(vs ...float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldMinScore, vs...))
}

// MinScoreGT applies the GT predicate on the "min_score" field.
func MinScoreGT(v float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldMinScore, v))
}

// MinScoreGTE applies the GTE predicate on the "min_score" field.
func MinScoreGTE(v float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldMinScore, v))
}

// MinScoreLT applies the LT predicate on the "min_score" field.
func MinScoreLT(v float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldMinScore, v))
}

// MinScoreLTE applies the LTE predicate on the "min_score" field.
func MinScoreLTE(v float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldMinScore, v))
}

// TimeoutSecondsEQ applies the EQ predicate on the "timeout_seconds" field.
func TimeoutSecondsEQ(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsNEQ applies the NEQ predicate on the "timeout_seconds" field.
func TimeoutSecondsNEQ(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsIn applies the In predicate on the "timeout_seconds" field.
func TimeoutSecondsIn(vs ...int) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsNotIn applies the NotIn predicate on the "timeout_seconds" field.
func TimeoutSecondsNotIn(vs ...int) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsGT applies the GT predicate on the "timeout_seconds" field.
func TimeoutSecondsGT(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsGTE applies the GTE predicate on the "timeout_seconds" field.
func TimeoutSecondsGTE(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLT applies the LT predicate on the "timeout_seconds" field.
func TimeoutSecondsLT(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLTE applies the LTE predicate on the "timeout_seconds" field.
func TimeoutSecondsLTE(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldTimeoutSeconds, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldNotNull(FieldTags))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSuite applies the HasEdge predicate on the "suite" edge.
func HasSuite() predicate.TestCase {
	return predicate.TestCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SuiteTable, SuiteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSuiteWith applies the HasEdge predicate on the "suite" edge with a given conditions (other predicates).
func HasSuiteWith(preds ...predicate.Suite) predicate.TestCase {
	return predicate.TestCase(func(s *sql.Selector) {
		step := newSuiteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.TestCase {
	return predicate.TestCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.Result) predicate.TestCase {
	return predicate.TestCase(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestCase) predicate.TestCase {
	return predicate.TestCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestCase) predicate.TestCase {
	return predicate.TestCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestCase) predicate.TestCase {
	return predicate.TestCase(sql.NotPredicates(p))
}
