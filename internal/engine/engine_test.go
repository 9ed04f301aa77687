package engine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prepmate/engine/internal/errs"
	"github.com/prepmate/engine/internal/llm"
	"github.com/prepmate/engine/internal/resources"
	"github.com/prepmate/engine/internal/store"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func openTestEngine(t *testing.T, gen llm.Generator) *Engine {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return New(s, gen)
}

const cardJSON = `[
	{"question": "What is a mutex?", "answer": "A mutual exclusion lock", "difficulty": "medium", "hint": null},
	{"question": "What is a semaphore?", "answer": "A counting synchronization primitive", "difficulty": "medium", "hint": null}
]`

func TestGenerateReviewAndPointsFlow(t *testing.T) {
	mock := llm.NewMockGenerator(llm.MockResult{Content: json.RawMessage(cardJSON)})
	e := openTestEngine(t, mock)
	ctx := context.Background()
	owner := "flow-owner"

	if err := e.RegisterOwner(ctx, owner, "Flow Owner"); err != nil {
		t.Fatalf("register: %v", err)
	}

	batch, err := e.GenerateFlashcards(ctx, owner, "mutexes and semaphores", 2, "medium", testNow)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(batch.ItemIDs) != 2 || batch.PointsAwarded != 10 {
		t.Fatalf("batch = %+v", batch)
	}

	// Review one card: good on the initial 1-day interval gives 2
	// days (floor(1×2.5) clamps via floor to 2).
	result, err := e.ScheduleReview(ctx, batch.ItemIDs[0], "good", testNow)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if result.NewIntervalDays != 2 {
		t.Errorf("NewIntervalDays = %d, want 2", result.NewIntervalDays)
	}
	if result.OwnerID != owner {
		t.Errorf("OwnerID = %s", result.OwnerID)
	}

	// 10 generation points + 3 for a good review.
	total, err := e.TotalPoints(ctx, owner)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 13 {
		t.Errorf("total = %d, want 13", total)
	}

	// The unreviewed card is still due; the reviewed one moved out.
	due, err := e.DueReviews(ctx, owner, testNow, 0)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 1 || due[0].ItemID != batch.ItemIDs[1] {
		t.Errorf("due = %+v", due)
	}
}

func TestScheduleReviewRejectsUnknownRatingAndItem(t *testing.T) {
	e := openTestEngine(t, nil)
	ctx := context.Background()

	_, err := e.ScheduleReview(ctx, "missing-item", "banana", testNow)
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("bad rating: got %v, want ValidationError", err)
	}

	_, err = e.ScheduleReview(ctx, "missing-item", "good", testNow)
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("unknown item: got %v, want NotFoundError", err)
	}
}

func TestSessionLifecycleAndStats(t *testing.T) {
	e := openTestEngine(t, nil)
	ctx := context.Background()
	owner := "session-owner"

	if err := e.RegisterOwner(ctx, owner, "Session Owner"); err != nil {
		t.Fatalf("register: %v", err)
	}

	start := testNow.Add(-1 * time.Hour)
	sessionID, err := e.StartSession(ctx, owner, start)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	rec, err := e.EndSession(ctx, sessionID, testNow)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if rec.DurationSecs != 3600 {
		t.Errorf("DurationSecs = %d, want 3600", rec.DurationSecs)
	}

	// Double close loses the conditional update.
	_, err = e.EndSession(ctx, sessionID, testNow.Add(time.Minute))
	var conflict *errs.ConflictError
	if !errors.As(err, &conflict) {
		t.Errorf("double close: got %v, want ConflictError", err)
	}

	stats, err := e.Stats(ctx, owner, testNow)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Streak != 1 {
		t.Errorf("Streak = %d, want 1", stats.Streak)
	}
	if stats.TotalPoints != sessionPoints {
		t.Errorf("TotalPoints = %d, want %d", stats.TotalPoints, sessionPoints)
	}
	if stats.Level != 1 {
		t.Errorf("Level = %d, want 1", stats.Level)
	}
	// One hour of a two-hour goal.
	if stats.DailyGoalProgress != 50 {
		t.Errorf("DailyGoalProgress = %v, want 50", stats.DailyGoalProgress)
	}
	if stats.WeeklyStudyHours != 1 {
		t.Errorf("WeeklyStudyHours = %v, want 1", stats.WeeklyStudyHours)
	}
}

func TestAchievementsUnlockThroughFacade(t *testing.T) {
	e := openTestEngine(t, nil)
	ctx := context.Background()
	owner := "achiever"

	if err := e.CreateNote(ctx, owner, "First note", "content"); err != nil {
		t.Fatalf("note: %v", err)
	}

	unlocked, err := e.EvaluateAchievements(ctx, owner, testNow)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(unlocked) != 1 || unlocked[0].Type != "first_note" {
		t.Fatalf("unlocked = %+v", unlocked)
	}

	// Second run unlocks nothing and pays nothing.
	again, err := e.EvaluateAchievements(ctx, owner, testNow)
	if err != nil {
		t.Fatalf("re-evaluate: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("re-evaluate unlocked %d", len(again))
	}

	total, _ := e.TotalPoints(ctx, owner)
	if total != 10 {
		t.Errorf("total = %d, want 10 (one common bonus)", total)
	}
}

func TestLeaderboardThroughFacade(t *testing.T) {
	e := openTestEngine(t, nil)
	ctx := context.Background()

	for _, owner := range []string{"lb-a", "lb-b"} {
		if err := e.RegisterOwner(ctx, owner, "Owner "+owner); err != nil {
			t.Fatalf("register: %v", err)
		}
		sessionID, err := e.StartSession(ctx, owner, testNow.Add(-time.Hour))
		if err != nil {
			t.Fatalf("start: %v", err)
		}
		if _, err := e.EndSession(ctx, sessionID, testNow); err != nil {
			t.Fatalf("end: %v", err)
		}
	}

	entries, err := e.Leaderboard(ctx, "all_time", 10, testNow)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) < 2 {
		t.Fatalf("got %d entries", len(entries))
	}

	_, err = e.Leaderboard(ctx, "fortnightly", 10, testNow)
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("bad period: got %v, want ValidationError", err)
	}
	_, err = e.Leaderboard(ctx, "weekly", 500, testNow)
	if !errors.As(err, &ve) {
		t.Errorf("oversized limit: got %v, want ValidationError", err)
	}
}

func TestGenerationRequiresGenerator(t *testing.T) {
	e := openTestEngine(t, nil)

	_, err := e.GenerateFlashcards(context.Background(), "owner", "content", 3, "medium", testNow)
	var upstream *errs.UpstreamGenerationError
	if !errors.As(err, &upstream) {
		t.Errorf("got %v, want UpstreamGenerationError", err)
	}
}

func TestSnippetScoringThroughFacade(t *testing.T) {
	e := openTestEngine(t, nil)

	scored := e.ScoreSnippet(resources.Snippet{
		Title:     "DSA tutorial",
		Body:      "algorithm complexity and data structure basics",
		URL:       "https://geeksforgeeks.org/dsa",
		BaseScore: 0.5,
	}, resources.Filters{Subject: "DSA"})

	if scored.QualityScore <= 0 || scored.QualityScore > 1 {
		t.Errorf("QualityScore = %v", scored.QualityScore)
	}
	if scored.RelevanceScore != 0.75 {
		t.Errorf("RelevanceScore = %v, want 0.75", scored.RelevanceScore)
	}
	if scored.ResourceType != resources.TypePractice {
		t.Errorf("ResourceType = %s, want practice", scored.ResourceType)
	}
}
