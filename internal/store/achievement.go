package store

import (
	"context"
	"fmt"

	"github.com/prepmate/engine/ent"
	"github.com/prepmate/engine/ent/achievementunlock"
	"github.com/prepmate/engine/internal/errs"
)

type achievementRepo struct {
	client *ent.Client
}

func (r *achievementRepo) Insert(ctx context.Context, data UnlockData) error {
	_, err := r.client.AchievementUnlock.Create().
		SetOwnerID(data.OwnerID).
		SetAchievementType(data.Type).
		SetTitle(data.Title).
		SetDescription(data.Description).
		SetIcon(data.Icon).
		SetRarity(data.Rarity).
		SetUnlockedAt(data.UnlockedAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return &errs.ConflictError{Entity: "achievement unlock", Key: data.Type}
		}
		return fmt.Errorf("save achievement unlock: %w", err)
	}
	return nil
}

func (r *achievementRepo) TypesForOwner(ctx context.Context, ownerID string) (map[string]bool, error) {
	unlocks, err := r.client.AchievementUnlock.Query().
		Where(achievementunlock.OwnerID(ownerID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievement unlocks: %w", err)
	}

	types := make(map[string]bool, len(unlocks))
	for _, u := range unlocks {
		types[u.AchievementType] = true
	}
	return types, nil
}

func (r *achievementRepo) ForOwner(ctx context.Context, ownerID string) ([]UnlockRecord, error) {
	unlocks, err := r.client.AchievementUnlock.Query().
		Where(achievementunlock.OwnerID(ownerID)).
		Order(ent.Desc(achievementunlock.FieldUnlockedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievement unlocks: %w", err)
	}

	records := make([]UnlockRecord, len(unlocks))
	for i, u := range unlocks {
		records[i] = UnlockRecord{
			OwnerID:     u.OwnerID,
			Type:        u.AchievementType,
			Title:       u.Title,
			Description: u.Description,
			Icon:        u.Icon,
			Rarity:      u.Rarity,
			UnlockedAt:  u.UnlockedAt,
		}
	}
	return records, nil
}
