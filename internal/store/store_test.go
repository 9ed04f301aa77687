package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prepmate/engine/internal/errs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPointLedgerAppendAndTotal(t *testing.T) {
	s := openTestStore(t)
	repo := s.Points()
	ctx := context.Background()

	amounts := []int{10, 25, -5}
	for _, a := range amounts {
		err := repo.Append(ctx, PointEventData{
			OwnerID:    "owner-1",
			Amount:     a,
			ActionType: "test",
		})
		if err != nil {
			t.Fatalf("append %d: %v", a, err)
		}
	}

	total, err := repo.TotalForOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 30 {
		t.Errorf("total = %d, want 30", total)
	}

	// Other owners are unaffected.
	total, err = repo.TotalForOwner(ctx, "owner-2")
	if err != nil {
		t.Fatalf("total (empty): %v", err)
	}
	if total != 0 {
		t.Errorf("total for empty owner = %d, want 0", total)
	}
}

func TestPointSumByOwnerGroupsInStore(t *testing.T) {
	s := openTestStore(t)
	repo := s.Points()
	ctx := context.Background()

	appends := []struct {
		owner  string
		amount int
	}{
		{"owner-1", 10},
		{"owner-1", 20},
		{"owner-2", 5},
	}
	for _, a := range appends {
		err := repo.Append(ctx, PointEventData{
			OwnerID:    a.owner,
			Amount:     a.amount,
			ActionType: "test",
		})
		if err != nil {
			t.Fatalf("append %s/%d: %v", a.owner, a.amount, err)
		}
	}

	sums, err := repo.SumByOwner(ctx, time.Time{})
	if err != nil {
		t.Fatalf("sum by owner: %v", err)
	}
	want := []OwnerPoints{
		{OwnerID: "owner-1", Points: 30},
		{OwnerID: "owner-2", Points: 5},
	}
	if len(sums) != len(want) {
		t.Fatalf("got %d owners, want %d", len(sums), len(want))
	}
	for i, w := range want {
		if sums[i] != w {
			t.Errorf("sums[%d] = %+v, want %+v", i, sums[i], w)
		}
	}

	// A window starting after every event matches nothing.
	sums, err = repo.SumByOwner(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("sum by owner (future window): %v", err)
	}
	if len(sums) != 0 {
		t.Errorf("got %d owners for future window, want 0", len(sums))
	}
}

func TestPointLedgerIdempotencyKey(t *testing.T) {
	s := openTestStore(t)
	repo := s.Points()
	ctx := context.Background()

	key := "retry-token-1"
	data := PointEventData{
		OwnerID:        "owner-1",
		Amount:         50,
		ActionType:     "achievement_unlocked",
		IdempotencyKey: &key,
	}

	if err := repo.Append(ctx, data); err != nil {
		t.Fatalf("first append: %v", err)
	}

	err := repo.Append(ctx, data)
	var conflict *errs.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("second append: got %v, want ConflictError", err)
	}

	total, err := repo.TotalForOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 50 {
		t.Errorf("total = %d, want 50 (duplicate must not double-pay)", total)
	}
}

func TestSessionCloseIsConditional(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	start := time.Now().UTC().Add(-30 * time.Minute)
	if err := repo.Start(ctx, "owner-1", "sess-1", start); err != nil {
		t.Fatalf("start: %v", err)
	}

	end := start.Add(25 * time.Minute)
	rec, err := repo.Close(ctx, "sess-1", end)
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if rec.DurationSecs != 25*60 {
		t.Errorf("duration = %d, want %d", rec.DurationSecs, 25*60)
	}

	// Second close must fail as a conflict, not recompute duration.
	_, err = repo.Close(ctx, "sess-1", end.Add(time.Hour))
	var conflict *errs.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("double close: got %v, want ConflictError", err)
	}

	// Unknown session is a not-found, not a conflict.
	_, err = repo.Close(ctx, "sess-404", end)
	var notFound *errs.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("close unknown: got %v, want NotFoundError", err)
	}
}

func TestSessionCloseClampsClockSkew(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	start := time.Now().UTC()
	if err := repo.Start(ctx, "owner-1", "sess-skew", start); err != nil {
		t.Fatalf("start: %v", err)
	}

	rec, err := repo.Close(ctx, "sess-skew", start.Add(-time.Minute))
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if rec.DurationSecs != 0 {
		t.Errorf("duration = %d, want 0 for end < start", rec.DurationSecs)
	}
}

func TestAchievementUnlockUniqueness(t *testing.T) {
	s := openTestStore(t)
	repo := s.Achievements()
	ctx := context.Background()

	data := UnlockData{
		OwnerID:    "owner-1",
		Type:       "first_note",
		Title:      "First Note",
		Rarity:     "common",
		UnlockedAt: time.Now().UTC(),
	}
	if err := repo.Insert(ctx, data); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	err := repo.Insert(ctx, data)
	var conflict *errs.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("duplicate insert: got %v, want ConflictError", err)
	}

	// Same type for a different owner is allowed.
	data.OwnerID = "owner-2"
	if err := repo.Insert(ctx, data); err != nil {
		t.Fatalf("other owner insert: %v", err)
	}

	types, err := repo.TypesForOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("types: %v", err)
	}
	if !types["first_note"] || len(types) != 1 {
		t.Errorf("types = %v, want {first_note}", types)
	}
}

func TestReviewItemLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.Reviews()
	ctx := context.Background()

	n, err := repo.CreateBatch(ctx, []ReviewItemData{
		{OwnerID: "owner-1", ItemID: "card-1", Question: "What is WAL?", Answer: "Write-ahead logging", Difficulty: "medium"},
		{OwnerID: "owner-1", ItemID: "card-2", Question: "What is MVCC?", Answer: "Multi-version concurrency control", Difficulty: "hard"},
	})
	if err != nil {
		t.Fatalf("create batch: %v", err)
	}
	if n != 2 {
		t.Fatalf("created = %d, want 2", n)
	}

	item, err := repo.Get(ctx, "card-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if item.IntervalDays != 1 {
		t.Errorf("initial interval = %d, want 1", item.IntervalDays)
	}

	now := time.Now().UTC()
	err = repo.RecordReview(ctx, ReviewUpdate{
		OwnerID:      "owner-1",
		ItemID:       "card-1",
		Rating:       "good",
		IntervalDays: 2,
		NextReviewAt: now.AddDate(0, 0, 2),
		ReviewedAt:   now,
		Correct:      true,
	})
	if err != nil {
		t.Fatalf("record review: %v", err)
	}

	item, err = repo.Get(ctx, "card-1")
	if err != nil {
		t.Fatalf("get after review: %v", err)
	}
	if item.ReviewCount != 1 || item.CorrectCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", item.ReviewCount, item.CorrectCount)
	}
	if item.IntervalDays != 2 {
		t.Errorf("interval = %d, want 2", item.IntervalDays)
	}

	_, err = repo.Get(ctx, "card-404")
	var notFound *errs.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("get unknown: got %v, want NotFoundError", err)
	}

	if err := repo.Delete(ctx, "owner-1", "card-2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	count, err := repo.CountForOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestOwnerEnsureIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Owners()
	ctx := context.Background()

	if err := repo.Ensure(ctx, "owner-1", "Asha"); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if err := repo.Ensure(ctx, "owner-1", "Asha"); err != nil {
		t.Fatalf("second ensure: %v", err)
	}

	names, err := repo.DisplayNames(ctx, []string{"owner-1", "owner-404"})
	if err != nil {
		t.Fatalf("display names: %v", err)
	}
	if names["owner-1"] != "Asha" {
		t.Errorf("name = %q, want Asha", names["owner-1"])
	}
	if _, ok := names["owner-404"]; ok {
		t.Error("unknown owner should be absent from result")
	}
}
