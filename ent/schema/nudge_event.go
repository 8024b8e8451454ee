package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NudgeEvent records the lifecycle of a proactive help offer: the offer
// itself and the student's response to it. Dismiss rates computed from
// these events feed back into the nudge policy.
type NudgeEvent struct {
	ent.Schema
}

func (NudgeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (NudgeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Session the nudge belongs to"),
		field.String("student_id").
			Default("").
			Comment("Student identifier, empty for anonymous sessions"),
		field.String("offer_id").
			Comment("Identifier linking offer and response"),
		field.String("step_id").
			Default("").
			Comment("Step the nudge is about, if any"),
		field.String("source").
			Default("").
			Comment("Signal source: verbal, facial, behavioral"),
		field.String("reason").
			Default("").
			Comment("Why the nudge was offered"),
		field.Float("severity").
			Default(0).
			Comment("Confusion severity in [0,1] at offer time"),
		field.String("action").
			Comment("offered, accepted, dismissed, or expired"),
	}
}

func (NudgeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("offer_id"),
		index.Fields("action"),
	}
}
