// Package leaderboard ranks owners by point totals over a time window.
package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/prepmate/engine/internal/errs"
	"github.com/prepmate/engine/internal/points"
	"github.com/prepmate/engine/internal/store"
	"github.com/prepmate/engine/internal/streak"
)

// MaxLimit caps how many entries one query may request. Larger
// requests are rejected, not clamped — silent clamping hides caller
// bugs.
const MaxLimit = 100

// Entry is one ranked leaderboard row. Derived per query, never
// persisted.
type Entry struct {
	Rank        int
	OwnerID     string
	DisplayName string

	// Points summed within the query window.
	Points int

	// Level and Streak reflect current state at query time, not the
	// windowed sum.
	Level  int
	Streak int
}

// Aggregator produces ranked leaderboards from the point ledger.
type Aggregator struct {
	points  store.PointRepo
	owners  store.OwnerRepo
	streaks *streak.Calculator
}

// NewAggregator creates a leaderboard aggregator.
func NewAggregator(pointRepo store.PointRepo, owners store.OwnerRepo, streaks *streak.Calculator) *Aggregator {
	return &Aggregator{points: pointRepo, owners: owners, streaks: streaks}
}

// Rank aggregates point events with timestamp >= windowStart (zero
// windowStart = all-time), sorts by summed points descending with
// ties broken by owner id ascending, and truncates to limit.
func (a *Aggregator) Rank(ctx context.Context, windowStart time.Time, limit int, now time.Time) ([]Entry, error) {
	if limit <= 0 {
		return nil, &errs.ValidationError{Field: "limit", Msg: "must be positive"}
	}
	if limit > MaxLimit {
		return nil, &errs.ValidationError{Field: "limit", Msg: fmt.Sprintf("must be at most %d", MaxLimit)}
	}

	sums, err := a.points.SumByOwner(ctx, windowStart)
	if err != nil {
		return nil, fmt.Errorf("sum points: %w", err)
	}

	// Stable, deterministic order: points descending, then owner id
	// ascending. Never insertion order.
	sort.Slice(sums, func(i, j int) bool {
		if sums[i].Points != sums[j].Points {
			return sums[i].Points > sums[j].Points
		}
		return sums[i].OwnerID < sums[j].OwnerID
	})

	if len(sums) > limit {
		sums = sums[:limit]
	}

	ids := make([]string, len(sums))
	for i, s := range sums {
		ids[i] = s.OwnerID
	}
	names, err := a.owners.DisplayNames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve display names: %w", err)
	}

	entries := make([]Entry, len(sums))
	for i, s := range sums {
		name, ok := names[s.OwnerID]
		if !ok {
			name = "Anonymous"
		}

		current, err := a.streaks.Current(ctx, s.OwnerID, now)
		if err != nil {
			return nil, fmt.Errorf("streak for %s: %w", s.OwnerID, err)
		}

		// Level comes from the lifetime total, not the windowed sum: a
		// quiet week must not demote anyone on the weekly board.
		lifetime, err := a.points.TotalForOwner(ctx, s.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("lifetime points for %s: %w", s.OwnerID, err)
		}

		entries[i] = Entry{
			Rank:        i + 1,
			OwnerID:     s.OwnerID,
			DisplayName: name,
			Points:      s.Points,
			Level:       points.Level(lifetime),
			Streak:      current,
		}
	}
	return entries, nil
}

// WindowStart converts a named period to an aggregation window start.
// Unknown periods are rejected; "all_time" returns the zero time.
func WindowStart(period string, now time.Time) (time.Time, error) {
	switch period {
	case "", "all_time":
		return time.Time{}, nil
	case "weekly":
		return now.AddDate(0, 0, -7), nil
	case "monthly":
		return now.AddDate(0, 0, -30), nil
	}
	return time.Time{}, &errs.ValidationError{Field: "period", Msg: "must be all_time, weekly, or monthly"}
}
