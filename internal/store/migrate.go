package store

import (
	"context"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// WordEventsColumns holds the columns for the "word_events" table.
	WordEventsColumns = []*schema.Column{
		{Name: "sequence", Type: field.TypeInt64, Increment: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "action", Type: field.TypeString},
		{Name: "word", Type: field.TypeString, Default: ""},
		{Name: "detail", Type: field.TypeString, Default: ""},
	}
	// WordEventsTable holds the schema information for the "word_events" table.
	WordEventsTable = &schema.Table{
		Name:       "word_events",
		Columns:    WordEventsColumns,
		PrimaryKey: []*schema.Column{WordEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "wordevent_timestamp", Columns: []*schema.Column{WordEventsColumns[1]}},
			{Name: "wordevent_action", Columns: []*schema.Column{WordEventsColumns[3]}},
			{Name: "wordevent_word", Columns: []*schema.Column{WordEventsColumns[4]}},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "sequence", Type: field.TypeInt64, Increment: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_timestamp", Columns: []*schema.Column{LlmRequestEventsColumns[1]}},
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{LlmRequestEventsColumns[4]}},
		},
	}
	// Tables holds all the tables of the activity log.
	Tables = []*schema.Table{
		WordEventsTable,
		LlmRequestEventsTable,
	}
)

// migrate creates missing tables, columns and indexes.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, Tables...)
}
