package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudentDoc is a versioned JSON document keyed by student and kind.
// It holds the long-lived cross-session state: the memory document and
// the explicit preference document. Payloads are validated against a
// JSON schema on load; an invalid payload is discarded, not repaired.
type StudentDoc struct {
	ent.Schema
}

func (StudentDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			Comment("Student identifier"),
		field.String("kind").
			Comment("Document kind: memory or preferences"),
		field.Int("schema_version").
			Comment("Schema version of the payload"),
		field.Bytes("payload").
			Comment("JSON document body"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}

func (StudentDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "kind").Unique(),
	}
}
