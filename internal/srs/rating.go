package srs

import "github.com/prepmate/engine/internal/errs"

// Rating is the learner's self-reported recall difficulty for one
// review, ordered again < hard < good < easy.
type Rating string

const (
	RatingAgain Rating = "again"
	RatingHard  Rating = "hard"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// AllRatings returns the ratings in severity order.
func AllRatings() []Rating {
	return []Rating{RatingAgain, RatingHard, RatingGood, RatingEasy}
}

// ParseRating validates a caller-supplied rating string. Unknown
// values are rejected, never defaulted.
func ParseRating(s string) (Rating, error) {
	switch Rating(s) {
	case RatingAgain, RatingHard, RatingGood, RatingEasy:
		return Rating(s), nil
	}
	return "", &errs.ValidationError{Field: "rating", Msg: "must be one of again, hard, good, easy"}
}

// Correct reports whether the rating counts as a correct recall for
// accuracy statistics.
func (r Rating) Correct() bool {
	return r == RatingGood || r == RatingEasy
}

// Points returns the reward for completing a review at this rating.
// Harder recalls pay less; an easy recall pays the most.
func (r Rating) Points() int {
	switch r {
	case RatingAgain:
		return 1
	case RatingHard:
		return 2
	case RatingGood:
		return 3
	case RatingEasy:
		return 5
	default:
		return 0
	}
}
