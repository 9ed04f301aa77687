package srs

import (
	"context"
	"fmt"
	"time"

	"github.com/prepmate/engine/internal/store"
)

// Scheduler applies review outcomes to stored flashcards.
type Scheduler struct {
	reviews store.ReviewRepo
}

// NewScheduler creates a scheduler over the given review repo.
func NewScheduler(reviews store.ReviewRepo) *Scheduler {
	return &Scheduler{reviews: reviews}
}

// Result describes the schedule produced by one review.
type Result struct {
	ItemID          string
	OwnerID         string
	Rating          Rating
	NewIntervalDays int
	NextReviewAt    time.Time
}

// ScheduleReview records a review outcome for an item: it validates
// the rating, computes the new interval, persists the review event,
// and updates the item's schedule (last-writer-wins per item).
func (s *Scheduler) ScheduleReview(ctx context.Context, itemID, rating string, now time.Time) (*Result, error) {
	r, err := ParseRating(rating)
	if err != nil {
		return nil, err
	}

	item, err := s.reviews.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}

	interval, nextAt := Schedule(item.IntervalDays, r, now)

	err = s.reviews.RecordReview(ctx, store.ReviewUpdate{
		OwnerID:      item.OwnerID,
		ItemID:       item.ItemID,
		Rating:       string(r),
		IntervalDays: interval,
		NextReviewAt: nextAt,
		ReviewedAt:   now,
		Correct:      r.Correct(),
	})
	if err != nil {
		return nil, fmt.Errorf("record review: %w", err)
	}

	return &Result{
		ItemID:          item.ItemID,
		OwnerID:         item.OwnerID,
		Rating:          r,
		NewIntervalDays: interval,
		NextReviewAt:    nextAt,
	}, nil
}

// Due returns an owner's flashcards due for review, most overdue first.
func (s *Scheduler) Due(ctx context.Context, ownerID string, now time.Time, limit int) ([]store.ReviewItemRecord, error) {
	return s.reviews.DueForOwner(ctx, ownerID, now, limit)
}
