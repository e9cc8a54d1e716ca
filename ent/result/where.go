// Code generated by ent, DO NOT EDIT.

package result

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/neonhq/neon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldRunID, v))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldCaseID, v))
}

// CaseName applies equality check predicate on the "case_name" field. It's identical to CaseNameEQ.
func CaseName(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldCaseName, v))
}

// TraceRunID applies equality check predicate on the "trace_run_id" field. It's identical to TraceRunIDEQ.
func TraceRunID(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTraceRunID, v))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTraceID, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldPassed, v))
}

// ExecutionTimeMs applies equality check predicate on the "execution_time_ms" field. It's identical to ExecutionTimeMsEQ.
func ExecutionTimeMs(v int64) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldRunID, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDIsNil applies the IsNil predicate on the "case_id" field.
func CaseIDIsNil() predicate.Result {
	return predicate.Result(sql.FieldIsNull(FieldCaseID))
}

// CaseIDNotNil applies the NotNil predicate on the "case_id" field.
func CaseIDNotNil() predicate.Result {
	return predicate.Result(sql.FieldNotNull(FieldCaseID))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldCaseID, v))
}

// CaseNameEQ applies the EQ predicate on the "case_name" field.
func CaseNameEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldCaseName, v))
}

// CaseNameNEQ applies the NEQ predicate on the "case_name" field.
func CaseNameNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldCaseName, v))
}

// CaseNameIn applies the In predicate on the "case_name" field.
func CaseNameIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldCaseName, vs...))
}

// CaseNameNotIn applies the NotIn predicate on the "case_name" field.
func CaseNameNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldCaseName, vs...))
}

// CaseNameGT applies the GT predicate on the "case_name" field.
func CaseNameGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldCaseName, v))
}

// CaseNameGTE applies the GTE predicate on the "case_name" field.
func CaseNameGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldCaseName, v))
}

// CaseNameLT applies the LT predicate on the "case_name" field.
func CaseNameLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldCaseName, v))
}

// CaseNameLTE applies the LTE predicate on the "case_name" field.
func CaseNameLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldCaseName, v))
}

// CaseNameContains applies the Contains predicate on the "case_name" field.
func CaseNameContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldCaseName, v))
}

// CaseNameHasPrefix applies the HasPrefix predicate on the "case_name" field.
func CaseNameHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldCaseName, v))
}

// CaseNameHasSuffix applies the HasSuffix predicate on the "case_name" field.
func CaseNameHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldCaseName, v))
}

// CaseNameEqualFold applies the EqualFold predicate on the "case_name" field.
func CaseNameEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldCaseName, v))
}

// CaseNameContainsFold applies the ContainsFold predicate on the "case_name" field.
func CaseNameContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldCaseName, v))
}

// TraceRunIDEQ applies the EQ predicate on the "trace_run_id" field.
func TraceRunIDEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTraceRunID, v))
}

// TraceRunIDNEQ applies the NEQ predicate on the "trace_run_id" field.
func TraceRunIDNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldTraceRunID, v))
}

// TraceRunIDIn applies the In predicate on the "trace_run_id" field.
func TraceRunIDIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldTraceRunID, vs...))
}

// TraceRunIDNotIn applies the NotIn predicate on the "trace_run_id" field.
func TraceRunIDNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldTraceRunID, vs...))
}

// TraceRunIDGT applies the GT predicate on the "trace_run_id" field.
func TraceRunIDGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldTraceRunID, v))
}

// TraceRunIDGTE applies the GTE predicate on the "trace_run_id" field.
func TraceRunIDGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldTraceRunID, v))
}

// TraceRunIDLT applies the LT predicate on the "trace_run_id" field.
func TraceRunIDLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldTraceRunID, v))
}

// TraceRunIDLTE applies the LTE predicate on the "trace_run_id" field.
func TraceRunIDLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldTraceRunID, v))
}

// TraceRunIDContains applies the Contains predicate on the "trace_run_id" field.
func TraceRunIDContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldTraceRunID, v))
}

// TraceRunIDHasPrefix applies the HasPrefix predicate on the "trace_run_id" field.
func TraceRunIDHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldTraceRunID, v))
}

// TraceRunIDHasSuffix applies the HasSuffix predicate on the "trace_run_id" field.
func TraceRunIDHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldTraceRunID, v))
}

// TraceRunIDIsNil applies the IsNil predicate on the "trace_run_id" field.
func TraceRunIDIsNil() predicate.Result {
	return predicate.Result(sql.FieldIsNull(FieldTraceRunID))
}

// TraceRunIDNotNil applies the NotNil predicate on the "trace_run_id" field.
func TraceRunIDNotNil() predicate.Result {
	return predicate.Result(sql.FieldNotNull(FieldTraceRunID))
}

// TraceRunIDEqualFold applies the EqualFold predicate on the "trace_run_id" field.
func TraceRunIDEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldTraceRunID, v))
}

// TraceRunIDContainsFold applies the ContainsFold predicate on the "trace_run_id" field.
func TraceRunIDContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldTraceRunID, v))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDIsNil applies the IsNil predicate on the "trace_id" field.
func TraceIDIsNil() predicate.Result {
	return predicate.Result(sql.FieldIsNull(FieldTraceID))
}

// TraceIDNotNil applies the NotNil predicate on the "trace_id" field.
func TraceIDNotNil() predicate.Result {
	return predicate.Result(sql.FieldNotNull(FieldTraceID))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldTraceID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldStatus, vs...))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.Result {
	return predicate.Result(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.Result {
	return predicate.Result(sql.FieldNotNull(FieldOutput))
}

// ScoresIsNil applies the IsNil predicate on the "scores" field.
func ScoresIsNil() predicate.Result {
	return predicate.Result(sql.FieldIsNull(FieldScores))
}

// ScoresNotNil applies the NotNil predicate on the "scores" field.
func ScoresNotNil() predicate.Result {
	return predicate.Result(sql.FieldNotNull(FieldScores))
}

// ScoreDetailsIsNil applies the IsNil predicate on the "score_details" field.
func ScoreDetailsIsNil() predicate.Result {
	return predicate.Result(sql.FieldIsNull(FieldScoreDetails))
}

// ScoreDetailsNotNil applies the NotNil predicate on the "score_details" field.
func ScoreDetailsNotNil() predicate.Result {
	return predicate.Result(sql.FieldNotNull(FieldScoreDetails))
}

// TraceSummaryIsNil applies the IsNil predicate on the "trace_summary" field.
func TraceSummaryIsNil() predicate.Result {
	return predicate.Result(sql.FieldIsNull(FieldTraceSummary))
}

// TraceSummaryNotNil applies the NotNil predicate on the "trace_summary" field.
func TraceSummaryNotNil() predicate.Result {
	return predicate.Result(sql.FieldNotNull(FieldTraceSummary))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldPassed, v))
}

// ExecutionTimeMsEQ applies the EQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsEQ(v int64) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsNEQ applies the NEQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsNEQ(v int64) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIn applies the In predicate on the "execution_time_ms" field.
func ExecutionTimeMsIn(vs ...int64) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsNotIn applies the NotIn predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotIn(vs ...int64) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsGT applies the GT predicate on the "execution_time_ms" field.
func ExecutionTimeMsGT(v int64) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsGTE applies the GTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsGTE(v int64) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLT applies the LT predicate on the "execution_time_ms" field.
func ExecutionTimeMsLT(v int64) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLTE applies the LTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsLTE(v int64) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldExecutionTimeMs, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.Result {
	return predicate.Result(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.Result {
	return predicate.Result(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.Result {
	return predicate.Result(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.Result {
	return predicate.Result(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTestCase applies the HasEdge predicate on the "test_case" edge.
func HasTestCase() predicate.Result {
	return predicate.Result(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TestCaseTable, TestCaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTestCaseWith applies the HasEdge predicate on the "test_case" edge with a given conditions (other predicates).
func HasTestCaseWith(preds ...predicate.TestCase) predicate.Result {
	return predicate.Result(func(s *sql.Selector) {
		step := newTestCaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Result) predicate.Result {
	return predicate.Result(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Result) predicate.Result {
	return predicate.Result(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Result) predicate.Result {
	return predicate.Result(sql.NotPredicates(p))
}
