package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Note is a learner-authored note. The engine only counts notes for
// achievement thresholds; note content itself is pass-through data.
type Note struct {
	ent.Schema
}

func (Note) Mixin() []ent.Mixin {
	return []ent.Mixin{OwnerMixin{}}
}

func (Note) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").NotEmpty(),
		field.Text("content").Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
