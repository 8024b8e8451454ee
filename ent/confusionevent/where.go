// Code generated by ent, DO NOT EDIT.

package confusionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/stepwiselabs/stepwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldSessionID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldStudentID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldSource, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldReason, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v float64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldSeverity, v))
}

// StepIDHint applies equality check predicate on the "step_id_hint" field. It's identical to StepIDHintEQ.
func StepIDHint(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldStepIDHint, v))
}

// ResolvedStepID applies equality check predicate on the "resolved_step_id" field. It's identical to ResolvedStepIDEQ.
func ResolvedStepID(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldResolvedStepID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldAction, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldContainsFold(FieldSource, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldContainsFold(FieldReason, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v float64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v float64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...float64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...float64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v float64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v float64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v float64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v float64) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLTE(FieldSeverity, v))
}

// StepIDHintEQ applies the EQ predicate on the "step_id_hint" field.
func StepIDHintEQ(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldStepIDHint, v))
}

// StepIDHintNEQ applies the NEQ predicate on the "step_id_hint" field.
func StepIDHintNEQ(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNEQ(FieldStepIDHint, v))
}

// StepIDHintIn applies the In predicate on the "step_id_hint" field.
func StepIDHintIn(vs ...string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldIn(FieldStepIDHint, vs...))
}

// StepIDHintNotIn applies the NotIn predicate on the "step_id_hint" field.
func StepIDHintNotIn(vs ...string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNotIn(FieldStepIDHint, vs...))
}

// StepIDHintGT applies the GT predicate on the "step_id_hint" field.
func StepIDHintGT(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGT(FieldStepIDHint, v))
}

// StepIDHintGTE applies the GTE predicate on the "step_id_hint" field.
func StepIDHintGTE(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGTE(FieldStepIDHint, v))
}

// StepIDHintLT applies the LT predicate on the "step_id_hint" field.
func StepIDHintLT(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLT(FieldStepIDHint, v))
}

// StepIDHintLTE applies the LTE predicate on the "step_id_hint" field.
func StepIDHintLTE(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLTE(FieldStepIDHint, v))
}

// StepIDHintContains applies the Contains predicate on the "step_id_hint" field.
func StepIDHintContains(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldContains(FieldStepIDHint, v))
}

// StepIDHintHasPrefix applies the HasPrefix predicate on the "step_id_hint" field.
func StepIDHintHasPrefix(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldHasPrefix(FieldStepIDHint, v))
}

// StepIDHintHasSuffix applies the HasSuffix predicate on the "step_id_hint" field.
func StepIDHintHasSuffix(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldHasSuffix(FieldStepIDHint, v))
}

// StepIDHintEqualFold applies the EqualFold predicate on the "step_id_hint" field.
func StepIDHintEqualFold(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEqualFold(FieldStepIDHint, v))
}

// StepIDHintContainsFold applies the ContainsFold predicate on the "step_id_hint" field.
func StepIDHintContainsFold(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldContainsFold(FieldStepIDHint, v))
}

// ResolvedStepIDEQ applies the EQ predicate on the "resolved_step_id" field.
func ResolvedStepIDEQ(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldResolvedStepID, v))
}

// ResolvedStepIDNEQ applies the NEQ predicate on the "resolved_step_id" field.
func ResolvedStepIDNEQ(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNEQ(FieldResolvedStepID, v))
}

// ResolvedStepIDIn applies the In predicate on the "resolved_step_id" field.
func ResolvedStepIDIn(vs ...string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldIn(FieldResolvedStepID, vs...))
}

// ResolvedStepIDNotIn applies the NotIn predicate on the "resolved_step_id" field.
func ResolvedStepIDNotIn(vs ...string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNotIn(FieldResolvedStepID, vs...))
}

// ResolvedStepIDGT applies the GT predicate on the "resolved_step_id" field.
func ResolvedStepIDGT(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGT(FieldResolvedStepID, v))
}

// ResolvedStepIDGTE applies the GTE predicate on the "resolved_step_id" field.
func ResolvedStepIDGTE(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGTE(FieldResolvedStepID, v))
}

// ResolvedStepIDLT applies the LT predicate on the "resolved_step_id" field.
func ResolvedStepIDLT(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLT(FieldResolvedStepID, v))
}

// ResolvedStepIDLTE applies the LTE predicate on the "resolved_step_id" field.
func ResolvedStepIDLTE(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLTE(FieldResolvedStepID, v))
}

// ResolvedStepIDContains applies the Contains predicate on the "resolved_step_id" field.
func ResolvedStepIDContains(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldContains(FieldResolvedStepID, v))
}

// ResolvedStepIDHasPrefix applies the HasPrefix predicate on the "resolved_step_id" field.
func ResolvedStepIDHasPrefix(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldHasPrefix(FieldResolvedStepID, v))
}

// ResolvedStepIDHasSuffix applies the HasSuffix predicate on the "resolved_step_id" field.
func ResolvedStepIDHasSuffix(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldHasSuffix(FieldResolvedStepID, v))
}

// ResolvedStepIDEqualFold applies the EqualFold predicate on the "resolved_step_id" field.
func ResolvedStepIDEqualFold(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEqualFold(FieldResolvedStepID, v))
}

// ResolvedStepIDContainsFold applies the ContainsFold predicate on the "resolved_step_id" field.
func ResolvedStepIDContainsFold(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldContainsFold(FieldResolvedStepID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.FieldContainsFold(FieldAction, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConfusionEvent) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConfusionEvent) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConfusionEvent) predicate.ConfusionEvent {
	return predicate.ConfusionEvent(sql.NotPredicates(p))
}
