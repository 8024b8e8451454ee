package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConfusionEvent records a detected confusion signal and how it was
// handled, whether or not it produced a nudge.
type ConfusionEvent struct {
	ent.Schema
}

func (ConfusionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ConfusionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Session the signal belongs to"),
		field.String("student_id").
			Default("").
			Comment("Student identifier, empty for anonymous sessions"),
		field.String("source").
			Comment("Signal source: verbal, facial, behavioral"),
		field.String("reason").
			Default("").
			Comment("Detector-provided reason string"),
		field.Float("severity").
			Default(0).
			Comment("Severity in [0,1]"),
		field.String("step_id_hint").
			Default("").
			Comment("Step the detector attributed the signal to, if any"),
		field.String("resolved_step_id").
			Default("").
			Comment("Step the resolver settled on, if any"),
		field.String("action").
			Comment("How it was handled: nudge_offered, suppressed, ignored"),
	}
}

func (ConfusionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("source"),
	}
}
