package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prepmate/engine/internal/errs"
	"github.com/prepmate/engine/internal/store"
	"github.com/prepmate/engine/internal/streak"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

// fakePointRepo holds timestamped point events so SumByOwner can honor
// the window start like the real store.
type fakePointRepo struct {
	events []store.PointEventRecord
}

func (f *fakePointRepo) add(ownerID string, amount int, at time.Time) {
	f.events = append(f.events, store.PointEventRecord{
		OwnerID: ownerID, Amount: amount, Timestamp: at,
	})
}

func (f *fakePointRepo) Append(_ context.Context, _ store.PointEventData) error { return nil }

func (f *fakePointRepo) TotalForOwner(_ context.Context, ownerID string) (int, error) {
	total := 0
	for _, e := range f.events {
		if e.OwnerID == ownerID {
			total += e.Amount
		}
	}
	return total, nil
}

func (f *fakePointRepo) SumByOwner(_ context.Context, since time.Time) ([]store.OwnerPoints, error) {
	byOwner := make(map[string]int)
	var order []string
	for _, e := range f.events {
		if !since.IsZero() && e.Timestamp.Before(since) {
			continue
		}
		if _, ok := byOwner[e.OwnerID]; !ok {
			order = append(order, e.OwnerID)
		}
		byOwner[e.OwnerID] += e.Amount
	}
	var out []store.OwnerPoints
	for _, id := range order {
		out = append(out, store.OwnerPoints{OwnerID: id, Points: byOwner[id]})
	}
	return out, nil
}

func (f *fakePointRepo) QueryForOwner(_ context.Context, _ string, _ store.QueryOpts) ([]store.PointEventRecord, error) {
	return nil, nil
}

type fakeOwnerRepo struct {
	names map[string]string
}

func (f *fakeOwnerRepo) Ensure(_ context.Context, ownerID, displayName string) error {
	if f.names == nil {
		f.names = make(map[string]string)
	}
	f.names[ownerID] = displayName
	return nil
}

func (f *fakeOwnerRepo) DisplayNames(_ context.Context, ownerIDs []string) (map[string]string, error) {
	out := make(map[string]string)
	for _, id := range ownerIDs {
		if name, ok := f.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

// fakeSessionRepo only serves StartTimesForOwner; the aggregator needs
// nothing else from sessions.
type fakeSessionRepo struct {
	starts map[string][]time.Time
}

func (f *fakeSessionRepo) Start(_ context.Context, _, _ string, _ time.Time) error { return nil }

func (f *fakeSessionRepo) Close(_ context.Context, _ string, _ time.Time) (*store.SessionRecord, error) {
	return nil, nil
}

func (f *fakeSessionRepo) StartTimesForOwner(_ context.Context, ownerID string, _ int) ([]time.Time, error) {
	return f.starts[ownerID], nil
}

func (f *fakeSessionRepo) DurationSince(_ context.Context, _ string, _ time.Time) (int, error) {
	return 0, nil
}

func newTestAggregator(pointRepo *fakePointRepo, owners *fakeOwnerRepo, sessions *fakeSessionRepo) *Aggregator {
	if sessions == nil {
		sessions = &fakeSessionRepo{}
	}
	return NewAggregator(pointRepo, owners, streak.NewCalculator(sessions))
}

func TestRankOrdersByPointsWithOwnerIDTieBreak(t *testing.T) {
	pointRepo := &fakePointRepo{}
	pointRepo.add("carol", 120, testNow)
	pointRepo.add("bob", 300, testNow)
	pointRepo.add("alice", 120, testNow)

	owners := &fakeOwnerRepo{names: map[string]string{
		"alice": "Alice", "bob": "Bob", "carol": "Carol",
	}}
	agg := newTestAggregator(pointRepo, owners, nil)

	entries, err := agg.Rank(context.Background(), time.Time{}, 10, testNow)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}

	wantOrder := []string{"bob", "alice", "carol"}
	if len(entries) != len(wantOrder) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantOrder))
	}
	for i, want := range wantOrder {
		if entries[i].OwnerID != want {
			t.Errorf("entries[%d].OwnerID = %s, want %s", i, entries[i].OwnerID, want)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("entries[%d].Rank = %d, want %d", i, entries[i].Rank, i+1)
		}
	}
	if entries[0].DisplayName != "Bob" {
		t.Errorf("DisplayName = %s, want Bob", entries[0].DisplayName)
	}
	// 300 points: floor(sqrt(3))+1 = 2.
	if entries[0].Level != 2 {
		t.Errorf("Level = %d, want 2", entries[0].Level)
	}
}

func TestRankTruncatesToLimit(t *testing.T) {
	pointRepo := &fakePointRepo{}
	pointRepo.add("a", 30, testNow)
	pointRepo.add("b", 20, testNow)
	pointRepo.add("c", 10, testNow)

	agg := newTestAggregator(pointRepo, &fakeOwnerRepo{}, nil)

	entries, err := agg.Rank(context.Background(), time.Time{}, 2, testNow)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].OwnerID != "a" || entries[1].OwnerID != "b" {
		t.Errorf("got %s, %s; want a, b", entries[0].OwnerID, entries[1].OwnerID)
	}
}

func TestRankRejectsBadLimits(t *testing.T) {
	agg := newTestAggregator(&fakePointRepo{}, &fakeOwnerRepo{}, nil)

	for _, limit := range []int{0, -1, MaxLimit + 1} {
		_, err := agg.Rank(context.Background(), time.Time{}, limit, testNow)
		var ve *errs.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("limit %d: got %v, want ValidationError", limit, err)
		}
	}
}

func TestRankHonorsWindowStart(t *testing.T) {
	pointRepo := &fakePointRepo{}
	// Old points for alice, fresh points for bob.
	pointRepo.add("alice", 500, testNow.AddDate(0, 0, -20))
	pointRepo.add("alice", 10, testNow.AddDate(0, 0, -1))
	pointRepo.add("bob", 40, testNow.AddDate(0, 0, -2))

	agg := newTestAggregator(pointRepo, &fakeOwnerRepo{}, nil)

	weekStart, err := WindowStart("weekly", testNow)
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	entries, err := agg.Rank(context.Background(), weekStart, 10, testNow)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].OwnerID != "bob" || entries[0].Points != 40 {
		t.Errorf("entries[0] = %s/%d, want bob/40", entries[0].OwnerID, entries[0].Points)
	}
	if entries[1].OwnerID != "alice" || entries[1].Points != 10 {
		t.Errorf("entries[1] = %s/%d, want alice/10", entries[1].OwnerID, entries[1].Points)
	}
}

func TestRankLevelUsesLifetimePoints(t *testing.T) {
	pointRepo := &fakePointRepo{}
	// 500 points before the window, 10 inside it: lifetime 510.
	pointRepo.add("alice", 500, testNow.AddDate(0, 0, -20))
	pointRepo.add("alice", 10, testNow.AddDate(0, 0, -1))

	agg := newTestAggregator(pointRepo, &fakeOwnerRepo{}, nil)

	weekStart, err := WindowStart("weekly", testNow)
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	entries, err := agg.Rank(context.Background(), weekStart, 10, testNow)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Points != 10 {
		t.Errorf("Points = %d, want 10 (windowed sum)", entries[0].Points)
	}
	// floor(sqrt(510/100))+1 = 3; the windowed 10 points would give 1.
	if entries[0].Level != 3 {
		t.Errorf("Level = %d, want 3 (from lifetime total)", entries[0].Level)
	}
}

func TestRankFillsStreakAndAnonymousName(t *testing.T) {
	pointRepo := &fakePointRepo{}
	pointRepo.add("ghost", 50, testNow)

	sessions := &fakeSessionRepo{starts: map[string][]time.Time{
		"ghost": {
			testNow,
			testNow.AddDate(0, 0, -1),
			testNow.AddDate(0, 0, -2),
		},
	}}
	agg := newTestAggregator(pointRepo, &fakeOwnerRepo{}, sessions)

	entries, err := agg.Rank(context.Background(), time.Time{}, 10, testNow)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].DisplayName != "Anonymous" {
		t.Errorf("DisplayName = %s, want Anonymous", entries[0].DisplayName)
	}
	if entries[0].Streak != 3 {
		t.Errorf("Streak = %d, want 3", entries[0].Streak)
	}
}

func TestWindowStart(t *testing.T) {
	tests := []struct {
		period  string
		want    time.Time
		wantErr bool
	}{
		{"all_time", time.Time{}, false},
		{"", time.Time{}, false},
		{"weekly", testNow.AddDate(0, 0, -7), false},
		{"monthly", testNow.AddDate(0, 0, -30), false},
		{"yearly", time.Time{}, true},
		{"Weekly", time.Time{}, true},
	}
	for _, tt := range tests {
		got, err := WindowStart(tt.period, testNow)
		if tt.wantErr {
			var ve *errs.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("WindowStart(%q): got %v, want ValidationError", tt.period, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("WindowStart(%q): %v", tt.period, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("WindowStart(%q) = %v, want %v", tt.period, got, tt.want)
		}
	}
}
