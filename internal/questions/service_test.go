package questions

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prepmate/engine/internal/errs"
	"github.com/prepmate/engine/internal/llm"
	"github.com/prepmate/engine/internal/points"
	"github.com/prepmate/engine/internal/store"
)

type fakeSubmissionRepo struct {
	events []store.SubmissionEventData
}

func (f *fakeSubmissionRepo) Append(_ context.Context, data store.SubmissionEventData) error {
	f.events = append(f.events, data)
	return nil
}

func (f *fakeSubmissionRepo) CountForOwner(_ context.Context, _ string) (int, error) {
	return len(f.events), nil
}

type fakePointRepo struct {
	events []store.PointEventData
}

func (f *fakePointRepo) Append(_ context.Context, data store.PointEventData) error {
	f.events = append(f.events, data)
	return nil
}

func (f *fakePointRepo) TotalForOwner(_ context.Context, _ string) (int, error) { return 0, nil }

func (f *fakePointRepo) SumByOwner(_ context.Context, _ time.Time) ([]store.OwnerPoints, error) {
	return nil, nil
}

func (f *fakePointRepo) QueryForOwner(_ context.Context, _ string, _ store.QueryOpts) ([]store.PointEventRecord, error) {
	return nil, nil
}

func newTestService(mock *llm.MockGenerator) (*Service, *fakeSubmissionRepo, *fakePointRepo) {
	subs := &fakeSubmissionRepo{}
	pointRepo := &fakePointRepo{}
	return NewService(mock, subs, points.NewLedger(pointRepo)), subs, pointRepo
}

const questionJSON = `[
	{"id": "q1", "question": "Explain process scheduling.", "marks": 5, "topic": "Scheduling", "year": 2023, "difficulty": "medium", "key_points": ["context switch", "ready queue"]},
	{"question": "Derive the formula.", "marks": 10},
	{"question": "", "marks": 5},
	{"question": "zero marks", "marks": 0}
]`

func TestGenerateParsesAndDefaults(t *testing.T) {
	mock := llm.NewMockGenerator(llm.MockResult{Content: json.RawMessage(questionJSON)})
	svc, _, _ := newTestService(mock)

	qs, err := svc.Generate(context.Background(), "OS", "Scheduling", "medium", 4)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2 (invalid dropped)", len(qs))
	}

	if qs[0].ID != "q1" || qs[0].Year != 2023 {
		t.Errorf("explicit fields overridden: %+v", qs[0])
	}

	// The second question had only text and marks.
	q := qs[1]
	if q.ID == "" || q.ID == "q1" {
		t.Errorf("missing id not defaulted uniquely: %q", q.ID)
	}
	if q.Topic != "Scheduling" || q.Difficulty != "medium" || q.Year != defaultYear {
		t.Errorf("defaults not applied: %+v", q)
	}
	if q.KeyPoints == nil || len(q.KeyPoints) != 0 {
		t.Errorf("KeyPoints = %v, want empty slice", q.KeyPoints)
	}
}

func TestGenerateFailsOnUnparseableOutput(t *testing.T) {
	mock := llm.NewMockGenerator(llm.MockResult{Content: json.RawMessage("I'd rather write prose.")})
	svc, _, _ := newTestService(mock)

	_, err := svc.Generate(context.Background(), "OS", "Scheduling", "medium", 4)
	var upstream *errs.UpstreamGenerationError
	if !errors.As(err, &upstream) {
		t.Fatalf("got %v, want UpstreamGenerationError", err)
	}
}

func TestGenerateValidatesInput(t *testing.T) {
	svc, _, _ := newTestService(llm.NewMockGenerator())
	var ve *errs.ValidationError

	if _, err := svc.Generate(context.Background(), "", "Scheduling", "medium", 4); !errors.As(err, &ve) {
		t.Errorf("empty subject: got %v, want ValidationError", err)
	}
	if _, err := svc.Generate(context.Background(), "OS", "", "medium", 4); !errors.As(err, &ve) {
		t.Errorf("empty topic: got %v, want ValidationError", err)
	}
}

const evaluationJSON = `{
	"score": 7.5, "max_score": 10,
	"feedback": "Solid answer with minor gaps.",
	"strengths": ["clear structure"],
	"improvements": ["cover edge cases"]
}`

func TestSubmitAnswerRecordsAndAwards(t *testing.T) {
	mock := llm.NewMockGenerator(llm.MockResult{Content: json.RawMessage(evaluationJSON)})
	svc, subs, pointRepo := newTestService(mock)

	sub, err := svc.SubmitAnswer(context.Background(), "owner-1", "q1", "Explain paging.", "Paging divides memory into frames...", "OS", 10)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if sub.Evaluation.Score != 7.5 {
		t.Errorf("Score = %v, want 7.5", sub.Evaluation.Score)
	}
	// Absent list fields default to empty, never nil.
	if sub.Evaluation.MissingConcepts == nil || sub.Evaluation.ExamTips == nil {
		t.Error("absent evaluation lists not defaulted")
	}
	if sub.PointsAwarded != 75 {
		t.Errorf("PointsAwarded = %d, want 75", sub.PointsAwarded)
	}

	if len(subs.events) != 1 {
		t.Fatalf("recorded %d submissions, want 1", len(subs.events))
	}
	ev := subs.events[0]
	if ev.OwnerID != "owner-1" || ev.QuestionID != "q1" || ev.Subject != "OS" {
		t.Errorf("submission = %+v", ev)
	}
	if ev.Score == nil || *ev.Score != 7.5 {
		t.Error("score not recorded on submission")
	}

	if len(pointRepo.events) != 1 || pointRepo.events[0].Amount != 75 {
		t.Fatalf("point events = %+v", pointRepo.events)
	}
	if pointRepo.events[0].ActionType != points.ActionQuestionSubmitted {
		t.Errorf("action = %s", pointRepo.events[0].ActionType)
	}
}

func TestSubmitAnswerClampsScore(t *testing.T) {
	overgraded := `{"score": 14, "max_score": 10, "feedback": "generous"}`
	mock := llm.NewMockGenerator(llm.MockResult{Content: json.RawMessage(overgraded)})
	svc, _, _ := newTestService(mock)

	sub, err := svc.SubmitAnswer(context.Background(), "owner-1", "q1", "q", "a long enough answer", "OS", 10)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if sub.Evaluation.Score != 10 {
		t.Errorf("Score = %v, want clamped 10", sub.Evaluation.Score)
	}
	if sub.PointsAwarded != 100 {
		t.Errorf("PointsAwarded = %d, want 100", sub.PointsAwarded)
	}
}

func TestSubmitAnswerValidatesAnswer(t *testing.T) {
	svc, subs, _ := newTestService(llm.NewMockGenerator())

	_, err := svc.SubmitAnswer(context.Background(), "owner-1", "q1", "q", "   ", "OS", 10)
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if len(subs.events) != 0 {
		t.Error("invalid submission must persist nothing")
	}
}

func TestHintsDegradeGracefully(t *testing.T) {
	// Generator failure falls back to canned hints.
	svc, _, _ := newTestService(llm.NewMockGenerator(llm.MockResult{Err: &llm.UnavailableError{}}))
	hints := svc.Hints(context.Background(), "Explain deadlock.", "OS")
	if len(hints) != 3 {
		t.Fatalf("got %d fallback hints, want 3", len(hints))
	}

	// Clean output passes through.
	svc2, _, _ := newTestService(llm.NewMockGenerator(llm.MockResult{
		Content: json.RawMessage(`["Consider the four conditions", "Draw the wait-for graph", "Check for cycles"]`),
	}))
	hints = svc2.Hints(context.Background(), "Explain deadlock.", "OS")
	if len(hints) != 3 || hints[0] != "Consider the four conditions" {
		t.Errorf("hints = %v", hints)
	}
}

func TestParseEvaluationDefaultsMaxScore(t *testing.T) {
	eval, err := ParseEvaluation(`{"score": 3, "feedback": "ok"}`, 5)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if eval.MaxScore != 5 {
		t.Errorf("MaxScore = %v, want 5", eval.MaxScore)
	}
}
