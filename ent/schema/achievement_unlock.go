package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AchievementUnlock records a one-time achievement unlock. The unique
// (owner_id, achievement_type) index is the guard against concurrent
// double-unlocks: the second insert fails and the engine treats that
// as a benign duplicate.
type AchievementUnlock struct {
	ent.Schema
}

func (AchievementUnlock) Mixin() []ent.Mixin {
	return []ent.Mixin{OwnerMixin{}}
}

func (AchievementUnlock) Fields() []ent.Field {
	return []ent.Field{
		field.String("achievement_type").
			NotEmpty().
			Immutable(),
		field.String("title").NotEmpty(),
		field.String("description").Default(""),
		field.String("icon").Default(""),
		field.String("rarity").NotEmpty(),
		field.Time("unlocked_at").
			Default(time.Now).
			Immutable(),
	}
}

func (AchievementUnlock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "achievement_type").
			Unique(),
	}
}
