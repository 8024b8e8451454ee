// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
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
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldStepsEmitted holds the string denoting the steps_emitted field in the database.
	FieldStepsEmitted = "steps_emitted"
	// FieldInterruptions holds the string denoting the interruptions field in the database.
	FieldInterruptions = "interruptions"
	// FieldNudgesOffered holds the string denoting the nudges_offered field in the database.
	FieldNudgesOffered = "nudges_offered"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldStudentID,
	FieldAction,
	FieldStepsEmitted,
	FieldInterruptions,
	FieldNudgesOffered,
	FieldDurationMs,
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
	// DefaultStepsEmitted holds the default value on creation for the "steps_emitted" field.
	DefaultStepsEmitted int
	// DefaultInterruptions holds the default value on creation for the "interruptions" field.
	DefaultInterruptions int
	// DefaultNudgesOffered holds the default value on creation for the "nudges_offered" field.
	DefaultNudgesOffered int
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
)

// OrderOption defines the ordering options for the SessionEvent queries.
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

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByStepsEmitted orders the results by the steps_emitted field.
func ByStepsEmitted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepsEmitted, opts...).ToFunc()
}

// ByInterruptions orders the results by the interruptions field.
func ByInterruptions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterruptions, opts...).ToFunc()
}

// ByNudgesOffered orders the results by the nudges_offered field.
func ByNudgesOffered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNudgesOffered, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}
