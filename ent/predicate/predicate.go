// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ConfusionEvent is the predicate function for confusionevent builders.
type ConfusionEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// NudgeEvent is the predicate function for nudgeevent builders.
type NudgeEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// StudentDoc is the predicate function for studentdoc builders.
type StudentDoc func(*sql.Selector)
