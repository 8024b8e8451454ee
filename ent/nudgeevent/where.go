// Code generated by ent, DO NOT EDIT.

package nudgeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/stepwiselabs/stepwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldSessionID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldStudentID, v))
}

// OfferID applies equality check predicate on the "offer_id" field. It's identical to OfferIDEQ.
func OfferID(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldOfferID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldStepID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldSource, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldReason, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v float64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldSeverity, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldAction, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// OfferIDEQ applies the EQ predicate on the "offer_id" field.
func OfferIDEQ(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldOfferID, v))
}

// OfferIDNEQ applies the NEQ predicate on the "offer_id" field.
func OfferIDNEQ(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNEQ(FieldOfferID, v))
}

// OfferIDIn applies the In predicate on the "offer_id" field.
func OfferIDIn(vs ...string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldIn(FieldOfferID, vs...))
}

// OfferIDNotIn applies the NotIn predicate on the "offer_id" field.
func OfferIDNotIn(vs ...string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNotIn(FieldOfferID, vs...))
}

// OfferIDGT applies the GT predicate on the "offer_id" field.
func OfferIDGT(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGT(FieldOfferID, v))
}

// OfferIDGTE applies the GTE predicate on the "offer_id" field.
func OfferIDGTE(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGTE(FieldOfferID, v))
}

// OfferIDLT applies the LT predicate on the "offer_id" field.
func OfferIDLT(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLT(FieldOfferID, v))
}

// OfferIDLTE applies the LTE predicate on the "offer_id" field.
func OfferIDLTE(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLTE(FieldOfferID, v))
}

// OfferIDContains applies the Contains predicate on the "offer_id" field.
func OfferIDContains(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldContains(FieldOfferID, v))
}

// OfferIDHasPrefix applies the HasPrefix predicate on the "offer_id" field.
func OfferIDHasPrefix(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldHasPrefix(FieldOfferID, v))
}

// OfferIDHasSuffix applies the HasSuffix predicate on the "offer_id" field.
func OfferIDHasSuffix(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldHasSuffix(FieldOfferID, v))
}

// OfferIDEqualFold applies the EqualFold predicate on the "offer_id" field.
func OfferIDEqualFold(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEqualFold(FieldOfferID, v))
}

// OfferIDContainsFold applies the ContainsFold predicate on the "offer_id" field.
func OfferIDContainsFold(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldContainsFold(FieldOfferID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldContainsFold(FieldStepID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldContainsFold(FieldSource, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldContainsFold(FieldReason, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v float64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v float64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...float64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...float64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v float64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v float64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v float64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v float64) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLTE(FieldSeverity, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.FieldContainsFold(FieldAction, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NudgeEvent) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NudgeEvent) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NudgeEvent) predicate.NudgeEvent {
	return predicate.NudgeEvent(sql.NotPredicates(p))
}
