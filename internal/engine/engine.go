// Package engine is the façade over the scoring and scheduling core:
// one entry point wiring the store, the spaced-repetition scheduler,
// the streak calculator, the point ledger, the achievement engine,
// the leaderboard, and the content generators.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prepmate/engine/internal/achievements"
	"github.com/prepmate/engine/internal/errs"
	"github.com/prepmate/engine/internal/flashcards"
	"github.com/prepmate/engine/internal/leaderboard"
	"github.com/prepmate/engine/internal/llm"
	"github.com/prepmate/engine/internal/points"
	"github.com/prepmate/engine/internal/questions"
	"github.com/prepmate/engine/internal/resources"
	"github.com/prepmate/engine/internal/srs"
	"github.com/prepmate/engine/internal/store"
	"github.com/prepmate/engine/internal/streak"
)

// dailyGoalSecs is the daily study target: two hours counts as 100%.
const dailyGoalSecs = 2 * 3600

// sessionPoints is the flat reward for closing a study session.
const sessionPoints = 10

// Engine wires the domain services over one store. Construct with
// New; the zero value is not usable.
type Engine struct {
	store        *store.Store
	scheduler    *srs.Scheduler
	streaks      *streak.Calculator
	ledger       *points.Ledger
	achievements *achievements.Engine
	board        *leaderboard.Aggregator
	scorer       *resources.Scorer
	cards        *flashcards.Generator
	questions    *questions.Service
}

// New assembles an Engine over the store. gen may be nil, in which
// case the generation operations fail and everything else works; the
// read paths must not require an API key.
func New(st *store.Store, gen llm.Generator) *Engine {
	streaks := streak.NewCalculator(st.Sessions())
	ledger := points.NewLedger(st.Points())

	e := &Engine{
		store:     st,
		scheduler: srs.NewScheduler(st.Reviews()),
		streaks:   streaks,
		ledger:    ledger,
		board:     leaderboard.NewAggregator(st.Points(), st.Owners(), streaks),
		scorer:    resources.NewScorer(),
	}
	e.achievements = achievements.NewEngine(st.Achievements(), ledger, &aggregateSource{engine: e})

	if gen != nil {
		e.cards = flashcards.NewGenerator(gen, st.Reviews(), ledger)
		e.questions = questions.NewService(gen, st.Submissions(), ledger)
	}
	return e
}

// aggregateSource feeds the achievement rules from store counts and
// the live streak.
type aggregateSource struct {
	engine *Engine
}

func (s *aggregateSource) Aggregates(ctx context.Context, ownerID string) (achievements.Aggregates, error) {
	st := s.engine.store

	noteCount, err := st.Notes().CountForOwner(ctx, ownerID)
	if err != nil {
		return achievements.Aggregates{}, fmt.Errorf("count notes: %w", err)
	}
	cardCount, err := st.Reviews().CountForOwner(ctx, ownerID)
	if err != nil {
		return achievements.Aggregates{}, fmt.Errorf("count flashcards: %w", err)
	}
	subCount, err := st.Submissions().CountForOwner(ctx, ownerID)
	if err != nil {
		return achievements.Aggregates{}, fmt.Errorf("count submissions: %w", err)
	}
	current, err := s.engine.streaks.Current(ctx, ownerID, time.Now())
	if err != nil {
		return achievements.Aggregates{}, err
	}

	return achievements.Aggregates{
		NoteCount:       noteCount,
		FlashcardCount:  cardCount,
		SubmissionCount: subCount,
		Streak:          current,
	}, nil
}

// RegisterOwner ensures a learner account exists. Idempotent.
func (e *Engine) RegisterOwner(ctx context.Context, ownerID, displayName string) error {
	if ownerID == "" {
		return &errs.ValidationError{Field: "owner id", Msg: "must not be empty"}
	}
	return e.store.Owners().Ensure(ctx, ownerID, displayName)
}

// ScheduleReview applies a review outcome to a flashcard and awards
// the rating's review points.
func (e *Engine) ScheduleReview(ctx context.Context, itemID, rating string, now time.Time) (*srs.Result, error) {
	result, err := e.scheduler.ScheduleReview(ctx, itemID, rating, now)
	if err != nil {
		return nil, err
	}

	err = e.ledger.Append(ctx, points.Award{
		OwnerID:     result.OwnerID,
		Amount:      result.Rating.Points(),
		ActionType:  points.ActionFlashcardReviewed,
		ReferenceID: result.ItemID,
	})
	if err != nil {
		// The review itself stands; report the award failure.
		return result, fmt.Errorf("award review points: %w", err)
	}
	return result, nil
}

// DueReviews returns the owner's flashcards due for review.
func (e *Engine) DueReviews(ctx context.Context, ownerID string, now time.Time, limit int) ([]store.ReviewItemRecord, error) {
	return e.scheduler.Due(ctx, ownerID, now, limit)
}

// ComputeStreak returns the owner's current consecutive-day streak.
func (e *Engine) ComputeStreak(ctx context.Context, ownerID string, now time.Time) (int, error) {
	return e.streaks.Current(ctx, ownerID, now)
}

// TotalPoints sums the owner's point ledger.
func (e *Engine) TotalPoints(ctx context.Context, ownerID string) (int, error) {
	return e.ledger.Total(ctx, ownerID)
}

// Level converts a point total into an experience level.
func (e *Engine) Level(pts int) int { return points.Level(pts) }

// PointsToNextLevel returns points still needed for the next level.
func (e *Engine) PointsToNextLevel(pts int) int { return points.ToNextLevel(pts) }

// EvaluateAchievements runs the achievement catalog for the owner.
// Safe to call repeatedly.
func (e *Engine) EvaluateAchievements(ctx context.Context, ownerID string, now time.Time) ([]achievements.Unlocked, error) {
	return e.achievements.Evaluate(ctx, ownerID, now)
}

// Leaderboard ranks owners by points over a named period (all_time,
// weekly, monthly).
func (e *Engine) Leaderboard(ctx context.Context, period string, limit int, now time.Time) ([]leaderboard.Entry, error) {
	windowStart, err := leaderboard.WindowStart(period, now)
	if err != nil {
		return nil, err
	}
	return e.board.Rank(ctx, windowStart, limit, now)
}

// ScoreSnippet scores one retrieved content snippet.
func (e *Engine) ScoreSnippet(snip resources.Snippet, f resources.Filters) resources.Scored {
	return e.scorer.Score(snip, f)
}

// RankSnippets scores and orders retrieved snippets by quality then
// relevance.
func (e *Engine) RankSnippets(snips []resources.Snippet, f resources.Filters) []resources.Scored {
	return e.scorer.Rank(snips, f)
}

// GenerateFlashcards produces and persists flashcards from content.
func (e *Engine) GenerateFlashcards(ctx context.Context, ownerID, content string, count int, difficulty string, now time.Time) (*flashcards.Batch, error) {
	if e.cards == nil {
		return nil, errNoGenerator()
	}
	return e.cards.Generate(ctx, ownerID, content, count, difficulty, now)
}

// GenerateFlashcardsFromNote produces flashcards from a stored note's
// title and body.
func (e *Engine) GenerateFlashcardsFromNote(ctx context.Context, ownerID, noteTitle, noteContent string, count int, now time.Time) (*flashcards.Batch, error) {
	if e.cards == nil {
		return nil, errNoGenerator()
	}
	return e.cards.GenerateFromNote(ctx, ownerID, noteTitle, noteContent, count, now)
}

// GenerateQuestions produces exam-style practice questions.
func (e *Engine) GenerateQuestions(ctx context.Context, subject, topic, difficulty string, count int) ([]questions.Question, error) {
	if e.questions == nil {
		return nil, errNoGenerator()
	}
	return e.questions.Generate(ctx, subject, topic, difficulty, count)
}

// SubmitAnswer grades a practice answer, records the submission, and
// awards points proportional to the score.
func (e *Engine) SubmitAnswer(ctx context.Context, ownerID, questionID, questionText, answerText, subject string, maxMarks int) (*questions.Submission, error) {
	if e.questions == nil {
		return nil, errNoGenerator()
	}
	return e.questions.SubmitAnswer(ctx, ownerID, questionID, questionText, answerText, subject, maxMarks)
}

// QuestionHints returns progressive hints for a question, degrading
// to generic advice when generation fails.
func (e *Engine) QuestionHints(ctx context.Context, questionText, subject string) []string {
	if e.questions == nil {
		return nil
	}
	return e.questions.Hints(ctx, questionText, subject)
}

// StartSession opens a study session and returns its id.
func (e *Engine) StartSession(ctx context.Context, ownerID string, now time.Time) (string, error) {
	if ownerID == "" {
		return "", &errs.ValidationError{Field: "owner id", Msg: "must not be empty"}
	}
	sessionID := uuid.NewString()
	if err := e.store.Sessions().Start(ctx, ownerID, sessionID, now); err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}
	return sessionID, nil
}

// EndSession closes a study session and awards the completion
// reward. Closing an already-closed session returns
// *errs.ConflictError; the award uses the session id as idempotency
// key so a retried close can never double-pay.
func (e *Engine) EndSession(ctx context.Context, sessionID string, now time.Time) (*store.SessionRecord, error) {
	rec, err := e.store.Sessions().Close(ctx, sessionID, now)
	if err != nil {
		return nil, err
	}

	err = e.ledger.Append(ctx, points.Award{
		OwnerID:        rec.OwnerID,
		Amount:         sessionPoints,
		ActionType:     points.ActionSessionCompleted,
		ReferenceID:    sessionID,
		IdempotencyKey: "session:" + sessionID,
	})
	if err != nil {
		return rec, fmt.Errorf("award session points: %w", err)
	}
	return rec, nil
}

// CreateNote stores a learner note. Notes feed the note-count
// achievement aggregates.
func (e *Engine) CreateNote(ctx context.Context, ownerID, title, content string) error {
	if ownerID == "" {
		return &errs.ValidationError{Field: "owner id", Msg: "must not be empty"}
	}
	if strings.TrimSpace(title) == "" {
		return &errs.ValidationError{Field: "title", Msg: "must not be empty"}
	}
	return e.store.Notes().Create(ctx, ownerID, title, content)
}

// OwnerStats is the combined progress snapshot for one learner.
type OwnerStats struct {
	Streak          int
	TotalPoints     int
	Level           int
	NextLevelPoints int
	Achievements    []store.UnlockRecord

	// DailyGoalProgress is percent of the two-hour daily target
	// reached today, capped at 100.
	DailyGoalProgress float64

	// WeeklyStudyHours is total closed-session time over the trailing
	// seven days.
	WeeklyStudyHours float64
}

// Stats assembles the owner's progress snapshot as of now.
func (e *Engine) Stats(ctx context.Context, ownerID string, now time.Time) (*OwnerStats, error) {
	current, err := e.streaks.Current(ctx, ownerID, now)
	if err != nil {
		return nil, err
	}

	total, err := e.ledger.Total(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("total points: %w", err)
	}

	unlocks, err := e.store.Achievements().ForOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}

	y, m, d := now.UTC().Date()
	todayStart := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	secsToday, err := e.store.Sessions().DurationSince(ctx, ownerID, todayStart)
	if err != nil {
		return nil, fmt.Errorf("today's study time: %w", err)
	}

	secsWeek, err := e.store.Sessions().DurationSince(ctx, ownerID, now.Add(-7*24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("weekly study time: %w", err)
	}

	dailyProgress := float64(secsToday) / dailyGoalSecs * 100
	if dailyProgress > 100 {
		dailyProgress = 100
	}

	return &OwnerStats{
		Streak:            current,
		TotalPoints:       total,
		Level:             points.Level(total),
		NextLevelPoints:   points.ToNextLevel(total),
		Achievements:      unlocks,
		DailyGoalProgress: round2(dailyProgress),
		WeeklyStudyHours:  round2(float64(secsWeek) / 3600),
	}, nil
}

func errNoGenerator() error {
	return &errs.UpstreamGenerationError{Err: errors.New("no generator configured; set an API key or PREPMATE_LLM_PROVIDER")}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
