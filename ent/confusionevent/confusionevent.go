// Code generated by ent, DO NOT EDIT.

package confusionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the confusionevent type in the database.
	Label = "confusion_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldStepIDHint holds the string denoting the step_id_hint field in the database.
	FieldStepIDHint = "step_id_hint"
	// FieldResolvedStepID holds the string denoting the resolved_step_id field in the database.
	FieldResolvedStepID = "resolved_step_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// Table holds the table name of the confusionevent in the database.
	Table = "confusion_events"
)

// Columns holds all SQL columns for confusionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldStudentID,
	FieldSource,
	FieldReason,
	FieldSeverity,
	FieldStepIDHint,
	FieldResolvedStepID,
	FieldAction,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultStudentID holds the default value on creation for the "student_id" field.
	DefaultStudentID string
	// DefaultReason holds the default value on creation for the "reason" field.
	DefaultReason string
	// DefaultSeverity holds the default value on creation for the "severity" field.
	DefaultSeverity float64
	// DefaultStepIDHint holds the default value on creation for the "step_id_hint" field.
	DefaultStepIDHint string
	// DefaultResolvedStepID holds the default value on creation for the "resolved_step_id" field.
	DefaultResolvedStepID string
)

// OrderOption defines the ordering options for the ConfusionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByStepIDHint orders the results by the step_id_hint field.
func ByStepIDHint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepIDHint, opts...).ToFunc()
}

// ByResolvedStepID orders the results by the resolved_step_id field.
func ByResolvedStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedStepID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}
