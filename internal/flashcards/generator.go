// Package flashcards generates spaced-repetition flashcards from
// study material through a text generator, persisting the results as
// review items.
package flashcards

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prepmate/engine/internal/errs"
	"github.com/prepmate/engine/internal/llm"
	"github.com/prepmate/engine/internal/points"
	"github.com/prepmate/engine/internal/store"
)

// Card is one generated flashcard before persistence.
type Card struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Difficulty string  `json:"difficulty"`
	Hint       *string `json:"hint"`
}

// Batch is the outcome of one generation request.
type Batch struct {
	Cards []Card

	// ItemIDs are the persisted review-item ids, index-aligned with
	// Cards.
	ItemIDs []string

	// Fallback is true when the generator output was unusable and the
	// cards came from heuristic extraction instead.
	Fallback bool

	PointsAwarded int
}

// pointsPerCard is the reward for each card in a persisted batch.
const pointsPerCard = 5

// defaultCount is used when the caller does not ask for a specific
// batch size.
const defaultCount = 5

// Generator turns raw content into persisted flashcards.
type Generator struct {
	gen    llm.Generator
	items  store.ReviewRepo
	ledger *points.Ledger
}

// NewGenerator creates a flashcard generator.
func NewGenerator(gen llm.Generator, items store.ReviewRepo, ledger *points.Ledger) *Generator {
	return &Generator{gen: gen, items: items, ledger: ledger}
}

// Generate produces up to count flashcards from the content, persists
// them for the owner, and awards generation points. When the
// generator returns unparseable output the batch degrades to
// heuristic extraction; only if that also yields nothing does the
// call fail with *errs.UpstreamGenerationError.
func (g *Generator) Generate(ctx context.Context, ownerID, content string, count int, difficulty string, now time.Time) (*Batch, error) {
	if ownerID == "" {
		return nil, &errs.ValidationError{Field: "owner id", Msg: "must not be empty"}
	}
	if strings.TrimSpace(content) == "" {
		return nil, &errs.ValidationError{Field: "content", Msg: "must not be empty"}
	}
	if count <= 0 {
		count = defaultCount
	}
	if difficulty == "" {
		difficulty = "medium"
	}

	cards, fallback, err := g.produce(ctx, content, count, difficulty)
	if err != nil {
		return nil, err
	}

	batchID := uuid.NewString()
	itemIDs := make([]string, len(cards))
	itemData := make([]store.ReviewItemData, len(cards))
	for i, card := range cards {
		itemIDs[i] = uuid.NewString()
		itemData[i] = store.ReviewItemData{
			OwnerID:    ownerID,
			ItemID:     itemIDs[i],
			Question:   card.Question,
			Answer:     card.Answer,
			Difficulty: card.Difficulty,
			Hint:       card.Hint,
		}
	}

	if _, err := g.items.CreateBatch(ctx, itemData); err != nil {
		return nil, fmt.Errorf("persist flashcards: %w", err)
	}

	awarded := len(cards) * pointsPerCard
	err = g.ledger.Append(ctx, points.Award{
		OwnerID:        ownerID,
		Amount:         awarded,
		ActionType:     points.ActionFlashcardsGenerated,
		ReferenceID:    batchID,
		IdempotencyKey: "flashcards:" + batchID,
	})
	if err != nil {
		return nil, fmt.Errorf("award generation points: %w", err)
	}

	return &Batch{
		Cards:         cards,
		ItemIDs:       itemIDs,
		Fallback:      fallback,
		PointsAwarded: awarded,
	}, nil
}

// GenerateFromNote wraps note title and body into generation content.
func (g *Generator) GenerateFromNote(ctx context.Context, ownerID, noteTitle, noteContent string, count int, now time.Time) (*Batch, error) {
	content := fmt.Sprintf("Note Title: %s\n\nContent:\n%s", noteTitle, noteContent)
	return g.Generate(ctx, ownerID, content, count, "medium", now)
}

// produce calls the generator and parses its output, degrading to
// heuristic extraction when the output is unusable.
func (g *Generator) produce(ctx context.Context, content string, count int, difficulty string) ([]Card, bool, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeFlashcards)

	res, err := g.gen.Generate(ctx, llm.Request{
		System:    "You are a study assistant that writes precise, self-contained flashcards.",
		Prompt:    buildPrompt(content, count, difficulty),
		MaxTokens: 2048,
	})
	if err != nil {
		// Provider-level failure: nothing to parse, no degraded path.
		return nil, false, &errs.UpstreamGenerationError{Err: err}
	}

	cards, parseErr := ParseCards(string(res.Content), difficulty)
	if parseErr == nil && len(cards) > 0 {
		return cards, false, nil
	}

	// Unusable output. Mine the source content for definition
	// sentences instead of failing the whole request.
	extracted := ExtractCards(content, count, difficulty)
	if len(extracted) == 0 {
		if parseErr == nil {
			parseErr = fmt.Errorf("generator returned no cards")
		}
		return nil, false, &errs.UpstreamGenerationError{Err: parseErr}
	}
	return extracted, true, nil
}

func buildPrompt(content string, count int, difficulty string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d high-quality flashcards from the following content.\n", count)
	fmt.Fprintf(&b, "Difficulty level: %s\n\n", difficulty)
	b.WriteString("Requirements:\n")
	b.WriteString("- Create clear, specific questions that test understanding\n")
	b.WriteString("- Provide concise, accurate answers\n")
	b.WriteString("- Include helpful hints where appropriate\n")
	b.WriteString("- Vary question types (definition, application, comparison)\n")
	b.WriteString("- Ensure questions are self-contained and unambiguous\n\n")
	b.WriteString("Format the output as a JSON array with this exact structure:\n")
	fmt.Fprintf(&b, "[{\"question\": \"...\", \"answer\": \"...\", \"difficulty\": %q, \"hint\": \"optional, can be null\"}]\n\n", difficulty)
	b.WriteString("Content to generate flashcards from:\n")
	b.WriteString(content)
	b.WriteString("\n\nReturn ONLY the JSON array, no additional text or markdown formatting.")
	return b.String()
}
