package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records one review outcome. Append-only.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}, OwnerMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty().
			Immutable(),
		field.String("rating").
			NotEmpty().
			Immutable().
			Comment("again, hard, good, or easy"),
		field.Int("interval_days").
			Immutable().
			Comment("Interval produced by this review"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
	}
}
