package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// KVRecord holds one JSON document per storage key: the profile, the
// study sessions, the vocabulary deck, task progress and mock history.
type KVRecord struct {
	ent.Schema
}

func (KVRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Immutable().
			Comment("Storage key, e.g. pteProfile"),
		field.JSON("value", map[string]any{}).
			Comment("The stored document"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last save"),
	}
}
