package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var cardSchema = &Schema{
	Name:        "card-batch-test",
	Description: "a batch of flashcards",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"flashcards"},
		"properties": map[string]any{
			"flashcards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"question", "answer"},
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"answer":   map[string]any{"type": "string"},
					},
				},
			},
		},
	},
}

func TestValidateOutputAcceptsConformingJSON(t *testing.T) {
	raw := json.RawMessage(`{"flashcards":[{"question":"q","answer":"a"}]}`)
	if err := validateOutput(cardSchema, raw); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateOutputRejectsMalformedJSON(t *testing.T) {
	err := validateOutput(cardSchema, json.RawMessage("not json at all"))
	var bad *BadOutputError
	if !errors.As(err, &bad) {
		t.Fatalf("got %v, want BadOutputError", err)
	}
}

func TestValidateOutputRejectsSchemaViolation(t *testing.T) {
	err := validateOutput(cardSchema, json.RawMessage(`{"flashcards":[{"question":"q"}]}`))
	var bad *BadOutputError
	if !errors.As(err, &bad) {
		t.Fatalf("got %v, want BadOutputError", err)
	}
}

func TestValidateOutputSkipsWithoutSchema(t *testing.T) {
	if err := validateOutput(nil, json.RawMessage("anything goes")); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
