package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewItem is a spaced-repetition flashcard. Scheduling fields are
// mutated only by the review scheduler; deletion is an explicit
// learner action, never implicit.
type ReviewItem struct {
	ent.Schema
}

func (ReviewItem) Mixin() []ent.Mixin {
	return []ent.Mixin{OwnerMixin{}}
}

func (ReviewItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Text("question").NotEmpty(),
		field.Text("answer").NotEmpty(),
		field.String("difficulty").
			Default("medium").
			Comment("easy, medium, or hard"),
		field.String("hint").
			Optional().
			Nillable(),
		field.Int("interval_days").
			Default(1).
			Min(1).
			Comment("Current review interval in days"),
		field.Time("next_review_at").
			Default(time.Now),
		field.Int("review_count").
			Default(0).
			Comment("Cumulative number of reviews"),
		field.Int("correct_count").
			Default(0).
			Comment("Reviews rated good or easy"),
		field.Time("last_reviewed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ReviewItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "next_review_at"),
	}
}
