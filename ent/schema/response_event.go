package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records a single answered question within a session.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("question").NotEmpty(),
		field.String("answer").NotEmpty(),
		field.JSON("options", []string{}).
			Comment("The option list the question was presented with"),
		field.String("phase").
			NotEmpty().
			Comment("initial or detailed"),
		field.Bool("open_ended").
			Default(false).
			Comment("True when the answer came through the Other option"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
