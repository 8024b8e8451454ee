package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records tutoring session lifecycle: start, end, and
// summary counters for what happened in between.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Session identifier"),
		field.String("student_id").
			Default("").
			Comment("Student identifier, empty for anonymous sessions"),
		field.String("action").
			Comment("Lifecycle action: started, ended, reset"),
		field.Int("steps_emitted").
			Default(0).
			Comment("Equation steps extracted during the session"),
		field.Int("interruptions").
			Default(0).
			Comment("User interrupts during the session"),
		field.Int("nudges_offered").
			Default(0).
			Comment("Proactive help offers made during the session"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Session duration, only set on 'ended'"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("student_id"),
		index.Fields("action"),
	}
}
