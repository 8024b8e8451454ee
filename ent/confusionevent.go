// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stepwiselabs/stepwise/ent/confusionevent"
)

// ConfusionEvent is the model entity for the ConfusionEvent schema.
type ConfusionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Session the signal belongs to
	SessionID string `json:"session_id,omitempty"`
	// Student identifier, empty for anonymous sessions
	StudentID string `json:"student_id,omitempty"`
	// Signal source: verbal, facial, behavioral
	Source string `json:"source,omitempty"`
	// Detector-provided reason string
	Reason string `json:"reason,omitempty"`
	// Severity in [0,1]
	Severity float64 `json:"severity,omitempty"`
	// Step the detector attributed the signal to, if any
	StepIDHint string `json:"step_id_hint,omitempty"`
	// Step the resolver settled on, if any
	ResolvedStepID string `json:"resolved_step_id,omitempty"`
	// How it was handled: nudge_offered, suppressed, ignored
	Action       string `json:"action,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConfusionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case confusionevent.FieldSeverity:
			values[i] = new(sql.NullFloat64)
		case confusionevent.FieldID, confusionevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case confusionevent.FieldSessionID, confusionevent.FieldStudentID, confusionevent.FieldSource, confusionevent.FieldReason, confusionevent.FieldStepIDHint, confusionevent.FieldResolvedStepID, confusionevent.FieldAction:
			values[i] = new(sql.NullString)
		case confusionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConfusionEvent fields.
func (_m *ConfusionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case confusionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case confusionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case confusionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case confusionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case confusionevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case confusionevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case confusionevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case confusionevent.FieldSeverity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.Float64
			}
		case confusionevent.FieldStepIDHint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id_hint", values[i])
			} else if value.Valid {
				_m.StepIDHint = value.String
			}
		case confusionevent.FieldResolvedStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_step_id", values[i])
			} else if value.Valid {
				_m.ResolvedStepID = value.String
			}
		case confusionevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConfusionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ConfusionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConfusionEvent.
// Note that you need to call ConfusionEvent.Unwrap() before calling this method if this ConfusionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConfusionEvent) Update() *ConfusionEventUpdateOne {
	return NewConfusionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConfusionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConfusionEvent) Unwrap() *ConfusionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConfusionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConfusionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ConfusionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("step_id_hint=")
	builder.WriteString(_m.StepIDHint)
	builder.WriteString(", ")
	builder.WriteString("resolved_step_id=")
	builder.WriteString(_m.ResolvedStepID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteByte(')')
	return builder.String()
}

// ConfusionEvents is a parsable slice of ConfusionEvent.
type ConfusionEvents []*ConfusionEvent
