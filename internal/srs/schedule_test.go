package srs

import (
	"errors"
	"testing"
	"time"

	"github.com/prepmate/engine/internal/errs"
)

func TestNextInterval(t *testing.T) {
	tests := []struct {
		current int
		rating  Rating
		want    int
	}{
		{1, RatingAgain, 1},
		{30, RatingAgain, 1},
		{1, RatingHard, 1},   // floor(1.2) = 1
		{5, RatingHard, 6},   // floor(6.0)
		{10, RatingHard, 12},
		{1, RatingGood, 2},   // floor(2.5)
		{3, RatingGood, 7},   // floor(7.5)
		{10, RatingGood, 25},
		{1, RatingEasy, 3},
		{7, RatingEasy, 21},
		{0, RatingGood, 2}, // corrupt interval clamped to 1 first
	}

	for _, tt := range tests {
		got := NextInterval(tt.current, tt.rating)
		if got != tt.want {
			t.Errorf("NextInterval(%d, %s) = %d, want %d", tt.current, tt.rating, got, tt.want)
		}
	}
}

func TestNextIntervalMonotonicInSeverity(t *testing.T) {
	// interval(again) <= interval(hard) <= interval(good) <= interval(easy)
	// for every starting interval.
	for current := 1; current <= 365; current++ {
		prev := 0
		for _, r := range AllRatings() {
			got := NextInterval(current, r)
			if got < prev {
				t.Fatalf("NextInterval(%d, %s) = %d, less than previous rating's %d", current, r, got, prev)
			}
			if got < 1 {
				t.Fatalf("NextInterval(%d, %s) = %d, below one-day floor", current, r, got)
			}
			prev = got
		}
	}
}

func TestNextIntervalPanicsOnInvalidRating(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NextInterval accepted an invalid rating")
		}
	}()
	NextInterval(5, Rating("banana"))
}

func TestScheduleNeverBeforeNow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, r := range AllRatings() {
		interval, next := Schedule(4, r, now)
		if next.Before(now) {
			t.Errorf("Schedule(4, %s): next review %v before now %v", r, next, now)
		}
		if want := now.AddDate(0, 0, interval); !next.Equal(want) {
			t.Errorf("Schedule(4, %s): next = %v, want %v", r, next, want)
		}
	}
}

func TestParseRating(t *testing.T) {
	for _, r := range AllRatings() {
		got, err := ParseRating(string(r))
		if err != nil || got != r {
			t.Errorf("ParseRating(%q) = %v, %v", r, got, err)
		}
	}

	_, err := ParseRating("banana")
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ParseRating(banana): got %v, want ValidationError", err)
	}
}

func TestRatingCorrect(t *testing.T) {
	tests := []struct {
		rating Rating
		want   bool
	}{
		{RatingAgain, false},
		{RatingHard, false},
		{RatingGood, true},
		{RatingEasy, true},
	}
	for _, tt := range tests {
		if got := tt.rating.Correct(); got != tt.want {
			t.Errorf("%s.Correct() = %v, want %v", tt.rating, got, tt.want)
		}
	}
}
