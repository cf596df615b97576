package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagnosisEvent records one ranked condition from a completed diagnosis.
type DiagnosisEvent struct {
	ent.Schema
}

func (DiagnosisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DiagnosisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("condition").NotEmpty(),
		field.Float("similarity").
			Comment("Cosine similarity against the reference profile, 0.0-1.0"),
		field.Int("confidence").
			Comment("Bounded confidence percentage, 0-100"),
		field.Int("rank").
			Comment("Position in the ranked result, 1-based"),
		field.Int("recommendation_count").
			Default(0),
	}
}

func (DiagnosisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("condition"),
	}
}
