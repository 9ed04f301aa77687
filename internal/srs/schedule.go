package srs

import (
	"fmt"
	"time"
)

// Interval multipliers per rating. "again" resets to one day; the
// rest grow the current interval multiplicatively, floored to an
// integer with a minimum of one day.
const (
	hardMultiplier = 1.2
	goodMultiplier = 2.5
	easyMultiplier = 3.0
)

// NextInterval computes the new review interval in days. The current
// interval is clamped to the one-day floor before scaling so a
// corrupt stored value can't produce a zero interval.
func NextInterval(current int, rating Rating) int {
	if current < 1 {
		current = 1
	}

	switch rating {
	case RatingAgain:
		return 1
	case RatingHard:
		return scaled(current, hardMultiplier)
	case RatingGood:
		return scaled(current, goodMultiplier)
	case RatingEasy:
		return scaled(current, easyMultiplier)
	default:
		// Ratings reach here through ParseRating; anything else is a
		// programming error, never something to default.
		panic(fmt.Sprintf("srs: invalid rating %q", rating))
	}
}

func scaled(current int, multiplier float64) int {
	next := int(float64(current) * multiplier)
	if next < 1 {
		next = 1
	}
	return next
}

// Schedule computes the new interval and the absolute next-review
// time (now + interval days). The returned time is always at or after
// now, so an item can never be scheduled before the review that
// produced it.
func Schedule(current int, rating Rating, now time.Time) (int, time.Time) {
	interval := NextInterval(current, rating)
	return interval, now.AddDate(0, 0, interval)
}
