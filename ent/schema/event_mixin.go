package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin adds the append-only columns shared by the event tables:
// a sequence drawn from global_sequence and a UTC timestamp.
type EventMixin struct {
	mixin.Schema
}

func nowUTC() time.Time { return time.Now().UTC() }

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Position in global_sequence, shared by practice and LLM events"),
		field.Time("timestamp").
			Default(nowUTC).
			Immutable().
			Comment("When the event was appended"),
	}
}

// Indexes covers the QueryOpts filters: After on sequence, From/To on timestamp.
func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
