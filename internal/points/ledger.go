// Package points implements the append-only reward-point ledger and
// its derived level curve.
package points

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/prepmate/engine/internal/errs"
	"github.com/prepmate/engine/internal/store"
)

// Action-type tags recorded on point events.
const (
	ActionAchievementUnlocked = "achievement_unlocked"
	ActionFlashcardsGenerated = "flashcards_generated"
	ActionFlashcardReviewed   = "flashcard_reviewed"
	ActionQuestionSubmitted   = "question_submitted"
	ActionSessionCompleted    = "session_completed"
)

// Level computes the experience level for a point total:
// floor(sqrt(points/100)) + 1. Level 1 at zero points, then
// square-root growth. Negative totals clamp to level 1.
func Level(points int) int {
	if points < 0 {
		points = 0
	}
	return int(math.Sqrt(float64(points)/100.0)) + 1
}

// ToNextLevel returns the points still needed to reach the next
// level: level² × 100 − points. Always >= 0.
func ToNextLevel(points int) int {
	level := Level(points)
	next := level*level*100 - points
	if next < 0 {
		next = 0
	}
	return next
}

// Award is the payload for one ledger append.
type Award struct {
	OwnerID    string
	Amount     int
	ActionType string

	// ReferenceID links the award to what produced it (achievement
	// type, flashcard batch, submission id). Optional.
	ReferenceID string

	// IdempotencyKey makes a retried award safe: the second append
	// with the same key is a benign no-op. Optional.
	IdempotencyKey string
}

// Ledger is the point ledger over the persistent store. Totals are
// always re-derived by summation, so concurrent appends never race.
type Ledger struct {
	repo store.PointRepo
}

// NewLedger creates a ledger over the given point repo.
func NewLedger(repo store.PointRepo) *Ledger {
	return &Ledger{repo: repo}
}

// Total sums all point events for an owner.
func (l *Ledger) Total(ctx context.Context, ownerID string) (int, error) {
	return l.repo.TotalForOwner(ctx, ownerID)
}

// Append records an award. A duplicate idempotency key means the
// award already landed on a previous attempt and is swallowed.
func (l *Ledger) Append(ctx context.Context, award Award) error {
	if award.OwnerID == "" {
		return &errs.ValidationError{Field: "owner id", Msg: "must not be empty"}
	}
	if award.ActionType == "" {
		return &errs.ValidationError{Field: "action type", Msg: "must not be empty"}
	}

	data := store.PointEventData{
		OwnerID:    award.OwnerID,
		Amount:     award.Amount,
		ActionType: award.ActionType,
	}
	if award.ReferenceID != "" {
		data.ReferenceID = &award.ReferenceID
	}
	if award.IdempotencyKey != "" {
		data.IdempotencyKey = &award.IdempotencyKey
	}

	err := l.repo.Append(ctx, data)
	if err != nil {
		var conflict *errs.ConflictError
		if award.IdempotencyKey != "" && errors.As(err, &conflict) {
			return nil
		}
		return fmt.Errorf("append point event: %w", err)
	}
	return nil
}
