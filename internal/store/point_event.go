package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/prepmate/engine/ent"
	"github.com/prepmate/engine/ent/pointevent"
	"github.com/prepmate/engine/internal/errs"
)

type pointRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *pointRepo) Append(ctx context.Context, data PointEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.PointEvent.Create().
		SetSequence(seqNum).
		SetOwnerID(data.OwnerID).
		SetAmount(data.Amount).
		SetActionType(data.ActionType)

	if data.ReferenceID != nil {
		builder = builder.SetReferenceID(*data.ReferenceID)
	}
	if data.IdempotencyKey != nil {
		builder = builder.SetIdempotencyKey(*data.IdempotencyKey)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			key := ""
			if data.IdempotencyKey != nil {
				key = *data.IdempotencyKey
			}
			return &errs.ConflictError{Entity: "point event", Key: key}
		}
		return fmt.Errorf("save point event: %w", err)
	}
	return nil
}

func (r *pointRepo) TotalForOwner(ctx context.Context, ownerID string) (int, error) {
	// SUM over no rows is NULL, so scan through a nullable field.
	var rows []struct {
		Sum *int `json:"sum"`
	}
	err := r.client.PointEvent.Query().
		Where(pointevent.OwnerID(ownerID)).
		Aggregate(ent.Sum(pointevent.FieldAmount)).
		Scan(ctx, &rows)
	if err != nil {
		return 0, fmt.Errorf("sum point events: %w", err)
	}
	if len(rows) == 0 || rows[0].Sum == nil {
		return 0, nil
	}
	return *rows[0].Sum, nil
}

func (r *pointRepo) SumByOwner(ctx context.Context, since time.Time) ([]OwnerPoints, error) {
	query := r.client.PointEvent.Query()
	if !since.IsZero() {
		query = query.Where(pointevent.TimestampGTE(since))
	}

	var rows []struct {
		OwnerID string `json:"owner_id"`
		Sum     int    `json:"sum"`
	}
	err := query.
		GroupBy(pointevent.FieldOwnerID).
		Aggregate(ent.Sum(pointevent.FieldAmount)).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("sum point events: %w", err)
	}

	out := make([]OwnerPoints, len(rows))
	for i, row := range rows {
		out[i] = OwnerPoints{OwnerID: row.OwnerID, Points: row.Sum}
	}
	// Deterministic order for callers; the aggregator re-sorts by points.
	sort.Slice(out, func(i, j int) bool { return out[i].OwnerID < out[j].OwnerID })
	return out, nil
}

func (r *pointRepo) QueryForOwner(ctx context.Context, ownerID string, opts QueryOpts) ([]PointEventRecord, error) {
	query := r.client.PointEvent.Query().
		Where(pointevent.OwnerID(ownerID)).
		Order(ent.Desc(pointevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(pointevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(pointevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(pointevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(pointevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query point events: %w", err)
	}

	records := make([]PointEventRecord, len(events))
	for i, e := range events {
		records[i] = PointEventRecord{
			OwnerID:     e.OwnerID,
			Amount:      e.Amount,
			ActionType:  e.ActionType,
			ReferenceID: e.ReferenceID,
			Sequence:    e.Sequence,
			Timestamp:   e.Timestamp,
		}
	}
	return records, nil
}
