package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// PointEventData is the payload for a point-ledger append.
type PointEventData struct {
	OwnerID        string
	Amount         int
	ActionType     string
	ReferenceID    *string
	IdempotencyKey *string
}

// PointEventRecord is a stored point event.
type PointEventRecord struct {
	OwnerID     string
	Amount      int
	ActionType  string
	ReferenceID *string
	Sequence    int64
	Timestamp   time.Time
}

// OwnerPoints is a per-owner point sum.
type OwnerPoints struct {
	OwnerID string
	Points  int
}

// PointRepo is the append-only point ledger. Appends are always
// inserts; totals are derived by summation.
type PointRepo interface {
	// Append records a point event. A duplicate idempotency key
	// returns *errs.ConflictError.
	Append(ctx context.Context, data PointEventData) error

	// TotalForOwner sums all point amounts for an owner.
	TotalForOwner(ctx context.Context, ownerID string) (int, error)

	// SumByOwner sums point amounts per owner for events with
	// timestamp >= since. A zero since aggregates all-time.
	SumByOwner(ctx context.Context, since time.Time) ([]OwnerPoints, error)

	// QueryForOwner returns an owner's point events, newest first.
	QueryForOwner(ctx context.Context, ownerID string, opts QueryOpts) ([]PointEventRecord, error)
}

// SessionRecord is a stored study session.
type SessionRecord struct {
	SessionID    string
	OwnerID      string
	StartTime    time.Time
	EndTime      *time.Time
	DurationSecs int
}

// SessionRepo manages study-session lifecycle records.
type SessionRepo interface {
	// Start opens a new session.
	Start(ctx context.Context, ownerID, sessionID string, startAt time.Time) error

	// Close transitions a session from open to closed. The update only
	// applies while end_time is still nil, so concurrent closes cannot
	// both win: the loser gets *errs.ConflictError. A missing session
	// returns *errs.NotFoundError.
	Close(ctx context.Context, sessionID string, endAt time.Time) (*SessionRecord, error)

	// StartTimesForOwner returns session start timestamps, newest
	// first, up to limit (0 = unlimited).
	StartTimesForOwner(ctx context.Context, ownerID string, limit int) ([]time.Time, error)

	// DurationSince sums closed-session durations (seconds) for
	// sessions started at or after since.
	DurationSince(ctx context.Context, ownerID string, since time.Time) (int, error)
}

// ReviewItemData is the payload for creating a flashcard.
type ReviewItemData struct {
	OwnerID    string
	ItemID     string
	Question   string
	Answer     string
	Difficulty string
	Hint       *string
}

// ReviewItemRecord is a stored flashcard with scheduling state.
type ReviewItemRecord struct {
	ItemID         string
	OwnerID        string
	Question       string
	Answer         string
	Difficulty     string
	Hint           *string
	IntervalDays   int
	NextReviewAt   time.Time
	ReviewCount    int
	CorrectCount   int
	LastReviewedAt *time.Time
}

// ReviewUpdate carries the result of one scheduled review.
type ReviewUpdate struct {
	OwnerID      string
	ItemID       string
	Rating       string
	IntervalDays int
	NextReviewAt time.Time
	ReviewedAt   time.Time
	Correct      bool
}

// ReviewRepo manages flashcards and their review history.
type ReviewRepo interface {
	// CreateBatch inserts a batch of new flashcards and returns the
	// number created.
	CreateBatch(ctx context.Context, items []ReviewItemData) (int, error)

	// Get returns a flashcard by id, or *errs.NotFoundError.
	Get(ctx context.Context, itemID string) (*ReviewItemRecord, error)

	// Delete removes an owner's flashcard. Explicit learner action only.
	Delete(ctx context.Context, ownerID, itemID string) error

	// RecordReview appends a ReviewEvent and applies the new schedule
	// to the item (last-writer-wins per item).
	RecordReview(ctx context.Context, upd ReviewUpdate) error

	// CountForOwner counts an owner's flashcards.
	CountForOwner(ctx context.Context, ownerID string) (int, error)

	// DueForOwner returns flashcards due at or before now, most
	// overdue first.
	DueForOwner(ctx context.Context, ownerID string, now time.Time, limit int) ([]ReviewItemRecord, error)
}

// UnlockData is the payload for an achievement unlock insert.
type UnlockData struct {
	OwnerID     string
	Type        string
	Title       string
	Description string
	Icon        string
	Rarity      string
	UnlockedAt  time.Time
}

// UnlockRecord is a stored achievement unlock.
type UnlockRecord struct {
	OwnerID     string
	Type        string
	Title       string
	Description string
	Icon        string
	Rarity      string
	UnlockedAt  time.Time
}

// AchievementRepo manages at-most-once achievement unlocks.
type AchievementRepo interface {
	// Insert records an unlock. A duplicate (owner, type) returns
	// *errs.ConflictError; the caller decides whether that's benign.
	Insert(ctx context.Context, data UnlockData) error

	// TypesForOwner returns the set of unlocked achievement types.
	TypesForOwner(ctx context.Context, ownerID string) (map[string]bool, error)

	// ForOwner returns an owner's unlocks, newest first.
	ForOwner(ctx context.Context, ownerID string) ([]UnlockRecord, error)
}

// SubmissionEventData is the payload for a practice-answer submission.
type SubmissionEventData struct {
	OwnerID    string
	QuestionID string
	Subject    string
	AnswerText string
	Score      *float64
}

// SubmissionRepo manages practice-question submissions.
type SubmissionRepo interface {
	Append(ctx context.Context, data SubmissionEventData) error
	CountForOwner(ctx context.Context, ownerID string) (int, error)
}

// NoteRepo manages learner notes. The engine only needs creation and
// counting; note content is pass-through.
type NoteRepo interface {
	Create(ctx context.Context, ownerID, title, content string) error
	CountForOwner(ctx context.Context, ownerID string) (int, error)
}

// OwnerRepo manages learner accounts.
type OwnerRepo interface {
	// Ensure registers an owner if not already present.
	Ensure(ctx context.Context, ownerID, displayName string) error

	// DisplayNames resolves display names for the given owner ids.
	// Unknown ids are absent from the result.
	DisplayNames(ctx context.Context, ownerIDs []string) (map[string]string, error)
}

// LLMRequestEventData captures the data for a single generator call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestRecord is a stored generator API call.
type LLMRequestRecord struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRepo records and inspects generator API calls.
type LLMEventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMRequests returns generation events, newest first.
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)
}
