package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubmissionEvent records a practice-question answer submission.
// Append-only; feeds the pyq_master achievement aggregate.
type SubmissionEvent struct {
	ent.Schema
}

func (SubmissionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}, OwnerMixin{}}
}

func (SubmissionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Immutable(),
		field.String("subject").
			Default("General").
			Immutable(),
		field.Text("answer_text").
			Immutable(),
		field.Float("score").
			Optional().
			Nillable().
			Immutable().
			Comment("Evaluated score, when available"),
	}
}

func (SubmissionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
	}
}
