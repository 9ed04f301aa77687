package store

import (
	"context"
	"fmt"

	"github.com/prepmate/engine/ent"
	"github.com/prepmate/engine/ent/owner"
)

type ownerRepo struct {
	client *ent.Client
}

func (r *ownerRepo) Ensure(ctx context.Context, ownerID, displayName string) error {
	_, err := r.client.Owner.Create().
		SetOwnerID(ownerID).
		SetDisplayName(displayName).
		Save(ctx)
	if err != nil {
		// Already registered is fine.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("save owner: %w", err)
	}
	return nil
}

func (r *ownerRepo) DisplayNames(ctx context.Context, ownerIDs []string) (map[string]string, error) {
	if len(ownerIDs) == 0 {
		return map[string]string{}, nil
	}

	owners, err := r.client.Owner.Query().
		Where(owner.OwnerIDIn(ownerIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query owners: %w", err)
	}

	names := make(map[string]string, len(owners))
	for _, o := range owners {
		names[o.OwnerID] = o.DisplayName
	}
	return names, nil
}
