package srs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prepmate/engine/internal/errs"
	"github.com/prepmate/engine/internal/store"
)

// fakeReviewRepo is an in-memory store.ReviewRepo.
type fakeReviewRepo struct {
	items   map[string]*store.ReviewItemRecord
	updates []store.ReviewUpdate
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{items: make(map[string]*store.ReviewItemRecord)}
}

func (f *fakeReviewRepo) CreateBatch(_ context.Context, items []store.ReviewItemData) (int, error) {
	for _, it := range items {
		f.items[it.ItemID] = &store.ReviewItemRecord{
			ItemID:       it.ItemID,
			OwnerID:      it.OwnerID,
			Question:     it.Question,
			Answer:       it.Answer,
			Difficulty:   it.Difficulty,
			IntervalDays: 1,
		}
	}
	return len(items), nil
}

func (f *fakeReviewRepo) Get(_ context.Context, itemID string) (*store.ReviewItemRecord, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, &errs.NotFoundError{Entity: "review item", ID: itemID}
	}
	cp := *item
	return &cp, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, ownerID, itemID string) error {
	delete(f.items, itemID)
	return nil
}

func (f *fakeReviewRepo) RecordReview(_ context.Context, upd store.ReviewUpdate) error {
	item, ok := f.items[upd.ItemID]
	if !ok {
		return &errs.NotFoundError{Entity: "review item", ID: upd.ItemID}
	}
	item.IntervalDays = upd.IntervalDays
	item.NextReviewAt = upd.NextReviewAt
	item.ReviewCount++
	if upd.Correct {
		item.CorrectCount++
	}
	f.updates = append(f.updates, upd)
	return nil
}

func (f *fakeReviewRepo) CountForOwner(_ context.Context, ownerID string) (int, error) {
	n := 0
	for _, it := range f.items {
		if it.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (f *fakeReviewRepo) DueForOwner(_ context.Context, ownerID string, now time.Time, limit int) ([]store.ReviewItemRecord, error) {
	var due []store.ReviewItemRecord
	for _, it := range f.items {
		if it.OwnerID == ownerID && !it.NextReviewAt.After(now) {
			due = append(due, *it)
		}
	}
	return due, nil
}

func seedItem(f *fakeReviewRepo, itemID string, interval int) {
	f.items[itemID] = &store.ReviewItemRecord{
		ItemID:       itemID,
		OwnerID:      "owner-1",
		Question:     "q",
		Answer:       "a",
		Difficulty:   "medium",
		IntervalDays: interval,
	}
}

func TestScheduleReview(t *testing.T) {
	repo := newFakeReviewRepo()
	seedItem(repo, "card-1", 4)
	sched := NewScheduler(repo)

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	res, err := sched.ScheduleReview(context.Background(), "card-1", "good", now)
	if err != nil {
		t.Fatalf("schedule review: %v", err)
	}

	if res.NewIntervalDays != 10 { // floor(4 * 2.5)
		t.Errorf("interval = %d, want 10", res.NewIntervalDays)
	}
	if want := now.AddDate(0, 0, 10); !res.NextReviewAt.Equal(want) {
		t.Errorf("next review = %v, want %v", res.NextReviewAt, want)
	}

	if len(repo.updates) != 1 {
		t.Fatalf("updates = %d, want 1", len(repo.updates))
	}
	upd := repo.updates[0]
	if !upd.Correct {
		t.Error("good rating should count as correct")
	}
	if upd.Rating != "good" {
		t.Errorf("persisted rating = %q, want good", upd.Rating)
	}
}

func TestScheduleReviewRejectsUnknownRating(t *testing.T) {
	repo := newFakeReviewRepo()
	seedItem(repo, "card-1", 4)
	sched := NewScheduler(repo)

	_, err := sched.ScheduleReview(context.Background(), "card-1", "banana", time.Now())
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if len(repo.updates) != 0 {
		t.Error("invalid rating must not persist a review")
	}
}

func TestScheduleReviewUnknownItem(t *testing.T) {
	sched := NewScheduler(newFakeReviewRepo())

	_, err := sched.ScheduleReview(context.Background(), "card-404", "easy", time.Now())
	var notFound *errs.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}
