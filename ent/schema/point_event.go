package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PointEvent is one entry in the append-only point ledger. Totals are
// always derived by summation; there is no stored balance to race on.
type PointEvent struct {
	ent.Schema
}

func (PointEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}, OwnerMixin{}}
}

func (PointEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("amount").
			Immutable().
			Comment("Signed point amount, almost always positive"),
		field.String("action_type").
			NotEmpty().
			Immutable(),
		field.String("reference_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Achievement type, item batch, or submission that produced the award"),
		field.String("idempotency_key").
			Optional().
			Nillable().
			Unique().
			Immutable().
			Comment("Caller-supplied token making retried awards safe"),
	}
}

func (PointEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "timestamp"),
		index.Fields("action_type"),
	}
}
