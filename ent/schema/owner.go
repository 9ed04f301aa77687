package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Owner is a learner account known to the engine.
type Owner struct {
	ent.Schema
}

func (Owner) Fields() []ent.Field {
	return []ent.Field{
		field.String("owner_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("display_name").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
