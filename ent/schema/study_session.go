package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession records one study session. The single permitted
// mutation is the open -> closed transition, applied as a predicate
// update so concurrent closes cannot both win.
type StudySession struct {
	ent.Schema
}

func (StudySession) Mixin() []ent.Mixin {
	return []ent.Mixin{OwnerMixin{}}
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Time("start_time").
			Default(time.Now).
			Immutable(),
		field.Time("end_time").
			Optional().
			Nillable().
			Comment("Nil while the session is open"),
		field.Int("duration_secs").
			Default(0).
			Comment("end - start in seconds, clamped at zero"),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "start_time"),
	}
}
