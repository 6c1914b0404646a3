package schema_test

import (
	"testing"

	"entgo.io/ent"
	entschema "entgo.io/ent/dialect/sql/schema"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/pteprep/ent/schema"
	"github.com/abhisek/pteprep/internal/store"
)

type entity interface {
	Fields() []ent.Field
}

func fieldNames(e entity, mixins ...ent.Mixin) []string {
	var names []string
	for _, m := range mixins {
		for _, f := range m.Fields() {
			names = append(names, f.Descriptor().Name)
		}
	}
	for _, f := range e.Fields() {
		names = append(names, f.Descriptor().Name)
	}
	return names
}

func columnNames(t *entschema.Table) []string {
	var names []string
	for _, c := range t.Columns {
		if c.Name == "id" {
			continue
		}
		names = append(names, c.Name)
	}
	return names
}

func TestSchemasMatchMigrationTables(t *testing.T) {
	tests := []struct {
		name  string
		want  []string
		table *entschema.Table
	}{
		{"kv_records", fieldNames(schema.KVRecord{}), store.KvRecordsTable},
		{"practice_attempts", fieldNames(schema.PracticeAttempt{}, schema.PracticeAttempt{}.Mixin()...), store.PracticeAttemptsTable},
		{"llm_request_events", fieldNames(schema.LLMRequestEvent{}, schema.LLMRequestEvent{}.Mixin()...), store.LlmRequestEventsTable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.table.Name)
			assert.Equal(t, tt.want, columnNames(tt.table))
		})
	}
}
