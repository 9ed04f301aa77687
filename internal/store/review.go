package store

import (
	"context"
	"fmt"
	"time"

	"github.com/prepmate/engine/ent"
	"github.com/prepmate/engine/ent/reviewitem"
	"github.com/prepmate/engine/internal/errs"
)

type reviewRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *reviewRepo) CreateBatch(ctx context.Context, items []ReviewItemData) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	builders := make([]*ent.ReviewItemCreate, len(items))
	for i, item := range items {
		b := r.client.ReviewItem.Create().
			SetItemID(item.ItemID).
			SetOwnerID(item.OwnerID).
			SetQuestion(item.Question).
			SetAnswer(item.Answer).
			SetDifficulty(item.Difficulty)
		if item.Hint != nil {
			b = b.SetHint(*item.Hint)
		}
		builders[i] = b
	}

	created, err := r.client.ReviewItem.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save review items: %w", err)
	}
	return len(created), nil
}

func (r *reviewRepo) Get(ctx context.Context, itemID string) (*ReviewItemRecord, error) {
	item, err := r.client.ReviewItem.Query().
		Where(reviewitem.ItemID(itemID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &errs.NotFoundError{Entity: "review item", ID: itemID}
		}
		return nil, fmt.Errorf("query review item: %w", err)
	}
	return toReviewItemRecord(item), nil
}

func (r *reviewRepo) Delete(ctx context.Context, ownerID, itemID string) error {
	n, err := r.client.ReviewItem.Delete().
		Where(
			reviewitem.ItemID(itemID),
			reviewitem.OwnerID(ownerID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete review item: %w", err)
	}
	if n == 0 {
		return &errs.NotFoundError{Entity: "review item", ID: itemID}
	}
	return nil
}

func (r *reviewRepo) RecordReview(ctx context.Context, upd ReviewUpdate) error {
	// Item schedule first (last-writer-wins per item), then the
	// immutable review event.
	builder := r.client.ReviewItem.Update().
		Where(reviewitem.ItemID(upd.ItemID)).
		SetIntervalDays(upd.IntervalDays).
		SetNextReviewAt(upd.NextReviewAt).
		SetLastReviewedAt(upd.ReviewedAt).
		AddReviewCount(1)
	if upd.Correct {
		builder = builder.AddCorrectCount(1)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("update review item: %w", err)
	}
	if n == 0 {
		return &errs.NotFoundError{Entity: "review item", ID: upd.ItemID}
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetOwnerID(upd.OwnerID).
		SetItemID(upd.ItemID).
		SetRating(upd.Rating).
		SetIntervalDays(upd.IntervalDays).
		SetTimestamp(upd.ReviewedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *reviewRepo) CountForOwner(ctx context.Context, ownerID string) (int, error) {
	n, err := r.client.ReviewItem.Query().
		Where(reviewitem.OwnerID(ownerID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count review items: %w", err)
	}
	return n, nil
}

func (r *reviewRepo) DueForOwner(ctx context.Context, ownerID string, now time.Time, limit int) ([]ReviewItemRecord, error) {
	query := r.client.ReviewItem.Query().
		Where(
			reviewitem.OwnerID(ownerID),
			reviewitem.NextReviewAtLTE(now),
		).
		Order(ent.Asc(reviewitem.FieldNextReviewAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	items, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due review items: %w", err)
	}

	records := make([]ReviewItemRecord, len(items))
	for i, item := range items {
		records[i] = *toReviewItemRecord(item)
	}
	return records, nil
}

func toReviewItemRecord(item *ent.ReviewItem) *ReviewItemRecord {
	return &ReviewItemRecord{
		ItemID:         item.ItemID,
		OwnerID:        item.OwnerID,
		Question:       item.Question,
		Answer:         item.Answer,
		Difficulty:     item.Difficulty,
		Hint:           item.Hint,
		IntervalDays:   item.IntervalDays,
		NextReviewAt:   item.NextReviewAt,
		ReviewCount:    item.ReviewCount,
		CorrectCount:   item.CorrectCount,
		LastReviewedAt: item.LastReviewedAt,
	}
}
