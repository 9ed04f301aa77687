package flashcards

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prepmate/engine/internal/errs"
	"github.com/prepmate/engine/internal/llm"
	"github.com/prepmate/engine/internal/points"
	"github.com/prepmate/engine/internal/store"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

type fakeReviewRepo struct {
	created []store.ReviewItemData
}

func (f *fakeReviewRepo) CreateBatch(_ context.Context, items []store.ReviewItemData) (int, error) {
	f.created = append(f.created, items...)
	return len(items), nil
}

func (f *fakeReviewRepo) Get(_ context.Context, itemID string) (*store.ReviewItemRecord, error) {
	return nil, &errs.NotFoundError{Entity: "review item", ID: itemID}
}

func (f *fakeReviewRepo) Delete(_ context.Context, _, _ string) error { return nil }

func (f *fakeReviewRepo) RecordReview(_ context.Context, _ store.ReviewUpdate) error { return nil }

func (f *fakeReviewRepo) CountForOwner(_ context.Context, _ string) (int, error) {
	return len(f.created), nil
}

func (f *fakeReviewRepo) DueForOwner(_ context.Context, _ string, _ time.Time, _ int) ([]store.ReviewItemRecord, error) {
	return nil, nil
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

func newTestGenerator(mock *llm.MockGenerator) (*Generator, *fakeReviewRepo, *fakePointRepo) {
	items := &fakeReviewRepo{}
	pointRepo := &fakePointRepo{}
	return NewGenerator(mock, items, points.NewLedger(pointRepo)), items, pointRepo
}

const twoCardJSON = `[
	{"question": "What is a goroutine?", "answer": "A lightweight thread managed by the Go runtime", "difficulty": "medium", "hint": null},
	{"question": "What is a channel?", "answer": "A typed conduit for goroutine communication", "difficulty": "medium", "hint": "think pipes"}
]`

func TestGeneratePersistsCardsAndAwardsPoints(t *testing.T) {
	mock := llm.NewMockGenerator(llm.MockResult{Content: json.RawMessage(twoCardJSON)})
	gen, items, pointRepo := newTestGenerator(mock)

	batch, err := gen.Generate(context.Background(), "owner-1", "goroutines and channels", 2, "medium", testNow)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(batch.Cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(batch.Cards))
	}
	if batch.Fallback {
		t.Error("Fallback = true on clean parse")
	}
	if batch.PointsAwarded != 10 {
		t.Errorf("PointsAwarded = %d, want 10", batch.PointsAwarded)
	}
	if len(batch.ItemIDs) != 2 || batch.ItemIDs[0] == "" || batch.ItemIDs[0] == batch.ItemIDs[1] {
		t.Errorf("bad item ids: %v", batch.ItemIDs)
	}

	if len(items.created) != 2 {
		t.Fatalf("persisted %d items, want 2", len(items.created))
	}
	if items.created[0].OwnerID != "owner-1" {
		t.Errorf("OwnerID = %s", items.created[0].OwnerID)
	}
	if items.created[1].Hint == nil || *items.created[1].Hint != "think pipes" {
		t.Errorf("hint not carried through")
	}

	if len(pointRepo.events) != 1 {
		t.Fatalf("appended %d point events, want 1", len(pointRepo.events))
	}
	ev := pointRepo.events[0]
	if ev.Amount != 10 || ev.ActionType != points.ActionFlashcardsGenerated {
		t.Errorf("point event = %+v", ev)
	}
	if ev.IdempotencyKey == nil {
		t.Error("point event missing idempotency key")
	}
}

func TestGenerateStripsMarkdownFences(t *testing.T) {
	fenced := "```json\n" + twoCardJSON + "\n```"
	mock := llm.NewMockGenerator(llm.MockResult{Content: json.RawMessage(fenced)})
	gen, _, _ := newTestGenerator(mock)

	batch, err := gen.Generate(context.Background(), "owner-1", "content", 2, "medium", testNow)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(batch.Cards) != 2 || batch.Fallback {
		t.Errorf("cards = %d, fallback = %v", len(batch.Cards), batch.Fallback)
	}
}

func TestGenerateFallsBackToExtraction(t *testing.T) {
	mock := llm.NewMockGenerator(llm.MockResult{Content: json.RawMessage("Sorry, I cannot produce JSON today.")})
	gen, items, _ := newTestGenerator(mock)

	content := "A goroutine is a lightweight thread managed by the runtime. Channels are typed conduits for communication between goroutines."
	batch, err := gen.Generate(context.Background(), "owner-1", content, 5, "easy", testNow)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !batch.Fallback {
		t.Error("Fallback = false, want true")
	}
	if len(batch.Cards) != 2 {
		t.Fatalf("got %d fallback cards, want 2", len(batch.Cards))
	}
	if batch.Cards[0].Question != "What is A goroutine?" {
		t.Errorf("question = %q", batch.Cards[0].Question)
	}
	if batch.Cards[0].Difficulty != "easy" {
		t.Errorf("difficulty = %q, want easy", batch.Cards[0].Difficulty)
	}
	if len(items.created) != 2 {
		t.Errorf("persisted %d, want 2", len(items.created))
	}
}

func TestGenerateFailsWhenNothingExtractable(t *testing.T) {
	mock := llm.NewMockGenerator(llm.MockResult{Content: json.RawMessage("garbage")})
	gen, items, pointRepo := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), "owner-1", "short text without definitions", 5, "medium", testNow)
	var upstream *errs.UpstreamGenerationError
	if !errors.As(err, &upstream) {
		t.Fatalf("got %v, want UpstreamGenerationError", err)
	}
	if len(items.created) != 0 || len(pointRepo.events) != 0 {
		t.Error("failed generation must persist nothing")
	}
}

func TestGenerateWrapsProviderFailure(t *testing.T) {
	mock := llm.NewMockGenerator(llm.MockResult{Err: &llm.UnavailableError{}})
	gen, _, _ := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), "owner-1", "anything here at all", 3, "medium", testNow)
	var upstream *errs.UpstreamGenerationError
	if !errors.As(err, &upstream) {
		t.Fatalf("got %v, want UpstreamGenerationError", err)
	}
	var unavail *llm.UnavailableError
	if !errors.As(err, &unavail) {
		t.Errorf("cause not preserved: %v", err)
	}
}

func TestGenerateValidatesInput(t *testing.T) {
	gen, _, _ := newTestGenerator(llm.NewMockGenerator())

	_, err := gen.Generate(context.Background(), "", "content", 3, "medium", testNow)
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("empty owner: got %v, want ValidationError", err)
	}

	_, err = gen.Generate(context.Background(), "owner-1", "   ", 3, "medium", testNow)
	if !errors.As(err, &ve) {
		t.Errorf("blank content: got %v, want ValidationError", err)
	}
}

func TestGenerateFromNotePrependsTitle(t *testing.T) {
	mock := llm.NewMockGenerator(llm.MockResult{Content: json.RawMessage(twoCardJSON)})
	gen, _, _ := newTestGenerator(mock)

	_, err := gen.GenerateFromNote(context.Background(), "owner-1", "Concurrency", "goroutines galore", 2, testNow)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	prompt := mock.Calls[0].Prompt
	if want := "Note Title: Concurrency"; !strings.Contains(prompt, want) {
		t.Errorf("prompt missing %q", want)
	}
}
