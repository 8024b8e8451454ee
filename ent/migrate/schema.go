// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConfusionEventsColumns holds the columns for the "confusion_events" table.
	ConfusionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString, Default: ""},
		{Name: "source", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "severity", Type: field.TypeFloat64, Default: 0},
		{Name: "step_id_hint", Type: field.TypeString, Default: ""},
		{Name: "resolved_step_id", Type: field.TypeString, Default: ""},
		{Name: "action", Type: field.TypeString},
	}
	// ConfusionEventsTable holds the schema information for the "confusion_events" table.
	ConfusionEventsTable = &schema.Table{
		Name:       "confusion_events",
		Columns:    ConfusionEventsColumns,
		PrimaryKey: []*schema.Column{ConfusionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "confusionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ConfusionEventsColumns[1]},
			},
			{
				Name:    "confusionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ConfusionEventsColumns[2]},
			},
			{
				Name:    "confusionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ConfusionEventsColumns[3]},
			},
			{
				Name:    "confusionevent_source",
				Unique:  false,
				Columns: []*schema.Column{ConfusionEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// NudgeEventsColumns holds the columns for the "nudge_events" table.
	NudgeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString, Default: ""},
		{Name: "offer_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString, Default: ""},
		{Name: "source", Type: field.TypeString, Default: ""},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "severity", Type: field.TypeFloat64, Default: 0},
		{Name: "action", Type: field.TypeString},
	}
	// NudgeEventsTable holds the schema information for the "nudge_events" table.
	NudgeEventsTable = &schema.Table{
		Name:       "nudge_events",
		Columns:    NudgeEventsColumns,
		PrimaryKey: []*schema.Column{NudgeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "nudgeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{NudgeEventsColumns[1]},
			},
			{
				Name:    "nudgeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{NudgeEventsColumns[2]},
			},
			{
				Name:    "nudgeevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{NudgeEventsColumns[3]},
			},
			{
				Name:    "nudgeevent_offer_id",
				Unique:  false,
				Columns: []*schema.Column{NudgeEventsColumns[5]},
			},
			{
				Name:    "nudgeevent_action",
				Unique:  false,
				Columns: []*schema.Column{NudgeEventsColumns[10]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString, Default: ""},
		{Name: "action", Type: field.TypeString},
		{Name: "steps_emitted", Type: field.TypeInt, Default: 0},
		{Name: "interruptions", Type: field.TypeInt, Default: 0},
		{Name: "nudges_offered", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// StudentDocsColumns holds the columns for the "student_docs" table.
	StudentDocsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "schema_version", Type: field.TypeInt},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StudentDocsTable holds the schema information for the "student_docs" table.
	StudentDocsTable = &schema.Table{
		Name:       "student_docs",
		Columns:    StudentDocsColumns,
		PrimaryKey: []*schema.Column{StudentDocsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studentdoc_student_id_kind",
				Unique:  true,
				Columns: []*schema.Column{StudentDocsColumns[1], StudentDocsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConfusionEventsTable,
		LlmRequestEventsTable,
		NudgeEventsTable,
		SessionEventsTable,
		StudentDocsTable,
	}
)

func init() {
}
