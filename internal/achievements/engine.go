// Package achievements evaluates the achievement catalog against
// owner aggregates and unlocks qualifying achievements at most once.
package achievements

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prepmate/engine/internal/errs"
	"github.com/prepmate/engine/internal/points"
	"github.com/prepmate/engine/internal/store"
)

// AggregateSource produces the owner aggregates the rule predicates
// inspect.
type AggregateSource interface {
	Aggregates(ctx context.Context, ownerID string) (Aggregates, error)
}

// Unlocked describes one newly unlocked achievement.
type Unlocked struct {
	Type        string
	Title       string
	Description string
	Icon        string
	Rarity      Rarity
	Bonus       int
	UnlockedAt  time.Time
}

// Engine runs the rule catalog for an owner.
type Engine struct {
	catalog []Rule
	unlocks store.AchievementRepo
	ledger  *points.Ledger
	source  AggregateSource
}

// NewEngine creates an achievement engine over the standard catalog.
func NewEngine(unlocks store.AchievementRepo, ledger *points.Ledger, source AggregateSource) *Engine {
	return &Engine{
		catalog: Catalog(),
		unlocks: unlocks,
		ledger:  ledger,
		source:  source,
	}
}

// Evaluate checks every catalog rule for the owner and unlocks each
// qualifying achievement not yet present, awarding the rarity bonus as
// a follow-up point event. Safe to call repeatedly: with no new
// qualifying activity, nothing unlocks. A concurrent evaluation that
// wins the unlock race is detected through the store's uniqueness
// constraint and treated as a benign duplicate — the loser skips the
// point award rather than double-paying it.
func (e *Engine) Evaluate(ctx context.Context, ownerID string, now time.Time) ([]Unlocked, error) {
	existing, err := e.unlocks.TypesForOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load unlocked types: %w", err)
	}

	agg, err := e.source.Aggregates(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load aggregates: %w", err)
	}

	var unlocked []Unlocked
	for _, rule := range e.catalog {
		if existing[rule.Type] {
			continue
		}
		if !rule.Qualifies(agg) {
			continue
		}

		err := e.unlocks.Insert(ctx, store.UnlockData{
			OwnerID:     ownerID,
			Type:        rule.Type,
			Title:       rule.Title,
			Description: rule.Description,
			Icon:        rule.Icon,
			Rarity:      string(rule.Rarity),
			UnlockedAt:  now,
		})
		if err != nil {
			var conflict *errs.ConflictError
			if errors.As(err, &conflict) {
				// A concurrent evaluation unlocked it first.
				continue
			}
			return unlocked, fmt.Errorf("unlock %s: %w", rule.Type, err)
		}

		bonus := rule.Rarity.BonusPoints()
		err = e.ledger.Append(ctx, points.Award{
			OwnerID:        ownerID,
			Amount:         bonus,
			ActionType:     points.ActionAchievementUnlocked,
			ReferenceID:    rule.Type,
			IdempotencyKey: bonusKey(ownerID, rule.Type),
		})
		if err != nil {
			// The unlock stands; the bonus can be retried independently
			// (the deterministic idempotency key makes the retry safe).
			return unlocked, fmt.Errorf("award bonus for %s: %w", rule.Type, err)
		}

		unlocked = append(unlocked, Unlocked{
			Type:        rule.Type,
			Title:       rule.Title,
			Description: rule.Description,
			Icon:        rule.Icon,
			Rarity:      rule.Rarity,
			Bonus:       bonus,
			UnlockedAt:  now,
		})
	}

	return unlocked, nil
}

// bonusKey is the idempotency key for an achievement bonus award.
// One per (owner, achievement), so a retried evaluation can never
// double-pay.
func bonusKey(ownerID, achievementType string) string {
	return "achievement:" + ownerID + ":" + achievementType
}
