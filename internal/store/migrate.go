package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// KvRecordsColumns holds the columns for the "kv_records" table.
	KvRecordsColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// KvRecordsTable holds the schema information for the "kv_records" table.
	KvRecordsTable = &schema.Table{
		Name:       "kv_records",
		Columns:    KvRecordsColumns,
		PrimaryKey: []*schema.Column{KvRecordsColumns[0]},
	}

	// PracticeAttemptsColumns holds the columns for the "practice_attempts" table.
	PracticeAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "response_chars", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// PracticeAttemptsTable holds the schema information for the "practice_attempts" table.
	PracticeAttemptsTable = &schema.Table{
		Name:       "practice_attempts",
		Columns:    PracticeAttemptsColumns,
		PrimaryKey: []*schema.Column{PracticeAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practiceattempt_task_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeAttemptsColumns[4]},
			},
			{
				Name:    "practiceattempt_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeAttemptsColumns[2]},
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
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
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
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		KvRecordsTable,
		PracticeAttemptsTable,
		LlmRequestEventsTable,
	}
)
