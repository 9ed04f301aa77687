package store

import (
	"context"
	"fmt"

	"github.com/prepmate/engine/ent"
	"github.com/prepmate/engine/ent/note"
)

type noteRepo struct {
	client *ent.Client
}

func (r *noteRepo) Create(ctx context.Context, ownerID, title, content string) error {
	_, err := r.client.Note.Create().
		SetOwnerID(ownerID).
		SetTitle(title).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	return nil
}

func (r *noteRepo) CountForOwner(ctx context.Context, ownerID string) (int, error) {
	n, err := r.client.Note.Query().
		Where(note.OwnerID(ownerID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return n, nil
}
