package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records assessment session lifecycle events.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in an assessment session"),
		field.String("action").
			NotEmpty().
			Comment("started, reset, or completed"),
		field.String("category").
			Default("").
			Comment("Onboarding category chosen at start"),
		field.String("symptom").
			Default("").
			Comment("Symptom selection chosen at start"),
		field.String("phase").
			Default("").
			Comment("Session phase when the event was recorded"),
		field.Int("response_count").
			Default(0).
			Comment("Responses collected so far (on reset/completed)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
