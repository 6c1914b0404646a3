package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeAttempt records one finished practice session.
type PracticeAttempt struct {
	ent.Schema
}

func (PracticeAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PracticeAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID of the practice session"),
		field.String("task_id").
			NotEmpty().
			Comment("Catalog task that was practised"),
		field.Int("score").
			Comment("Placeholder score, 30-90"),
		field.Int("response_chars").
			Default(0).
			Comment("Length of the typed response"),
		field.Int("duration_secs").
			Default(0).
			Comment("Seconds from start to completion"),
	}
}

func (PracticeAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
	}
}
