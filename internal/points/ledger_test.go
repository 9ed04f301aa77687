package points

import (
	"context"
	"testing"
	"time"

	"github.com/prepmate/engine/internal/errs"
	"github.com/prepmate/engine/internal/store"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
		{10000, 11},
		{-10, 1},
	}

	for _, tt := range tests {
		if got := Level(tt.points); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := 0
	for p := 0; p <= 5000; p++ {
		l := Level(p)
		if l < prev {
			t.Fatalf("Level(%d) = %d decreased from %d", p, l, prev)
		}
		prev = l
	}
}

func TestToNextLevel(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 100},   // level 1 -> 100 total
		{99, 1},
		{100, 300}, // level 2 -> 400 total
		{350, 50},
	}

	for _, tt := range tests {
		if got := ToNextLevel(tt.points); got != tt.want {
			t.Errorf("ToNextLevel(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}

	for p := 0; p <= 5000; p++ {
		if got := ToNextLevel(p); got < 0 {
			t.Fatalf("ToNextLevel(%d) = %d, want >= 0", p, got)
		}
	}
}

// fakePointRepo is an in-memory store.PointRepo.
type fakePointRepo struct {
	events []store.PointEventData
	keys   map[string]bool
}

func newFakePointRepo() *fakePointRepo {
	return &fakePointRepo{keys: make(map[string]bool)}
}

func (f *fakePointRepo) Append(_ context.Context, data store.PointEventData) error {
	if data.IdempotencyKey != nil {
		if f.keys[*data.IdempotencyKey] {
			return &errs.ConflictError{Entity: "point event", Key: *data.IdempotencyKey}
		}
		f.keys[*data.IdempotencyKey] = true
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakePointRepo) TotalForOwner(_ context.Context, ownerID string) (int, error) {
	total := 0
	for _, e := range f.events {
		if e.OwnerID == ownerID {
			total += e.Amount
		}
	}
	return total, nil
}

func (f *fakePointRepo) SumByOwner(_ context.Context, _ time.Time) ([]store.OwnerPoints, error) {
	return nil, nil
}

func (f *fakePointRepo) QueryForOwner(_ context.Context, _ string, _ store.QueryOpts) ([]store.PointEventRecord, error) {
	return nil, nil
}

func TestLedgerRoundTrip(t *testing.T) {
	ledger := NewLedger(newFakePointRepo())
	ctx := context.Background()

	for _, amount := range []int{10, 25, -5} {
		err := ledger.Append(ctx, Award{
			OwnerID:    "owner-1",
			Amount:     amount,
			ActionType: ActionSessionCompleted,
		})
		if err != nil {
			t.Fatalf("append %d: %v", amount, err)
		}
	}

	total, err := ledger.Total(ctx, "owner-1")
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 30 {
		t.Errorf("total = %d, want 30", total)
	}
}

func TestLedgerIdempotentRetry(t *testing.T) {
	ledger := NewLedger(newFakePointRepo())
	ctx := context.Background()

	award := Award{
		OwnerID:        "owner-1",
		Amount:         50,
		ActionType:     ActionAchievementUnlocked,
		IdempotencyKey: "token-1",
	}

	if err := ledger.Append(ctx, award); err != nil {
		t.Fatalf("first append: %v", err)
	}
	// Retry with the same key is a benign no-op, not an error.
	if err := ledger.Append(ctx, award); err != nil {
		t.Fatalf("retried append: %v", err)
	}

	total, _ := ledger.Total(ctx, "owner-1")
	if total != 50 {
		t.Errorf("total = %d, want 50", total)
	}
}

func TestLedgerValidation(t *testing.T) {
	ledger := NewLedger(newFakePointRepo())

	err := ledger.Append(context.Background(), Award{Amount: 10, ActionType: "x"})
	if err == nil {
		t.Fatal("missing owner must be rejected")
	}
	err = ledger.Append(context.Background(), Award{OwnerID: "o", Amount: 10})
	if err == nil {
		t.Fatal("missing action type must be rejected")
	}
}
