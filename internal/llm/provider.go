// Package llm abstracts the text-generation backends used to produce
// flashcards and practice questions. Callers describe one generation
// turn; providers return JSON, optionally validated against a schema.
package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Generator is the provider abstraction. Implementations wrap one
// vendor SDK; decorators add retry and event logging.
type Generator interface {
	// Generate runs a single generation turn. When the request carries
	// a Schema, the returned Content is JSON validated against it;
	// otherwise Content is the raw text.
	Generate(ctx context.Context, req Request) (*Result, error)

	// Name returns the provider name ("gemini", "openai", ...).
	Name() string

	// Model returns the configured model identifier.
	Model() string
}

// Request describes one generation turn. All generation here is
// single-turn: a system role plus one user prompt.
type Request struct {
	System string
	Prompt string

	// Schema, when set, selects the provider's structured-output
	// mechanism and turns on response validation.
	Schema *Schema

	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Schema is a named JSON Schema the output must conform to.
type Schema struct {
	// Name identifies the schema (kebab-case, e.g. "flashcard-batch").
	Name string

	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Result is one generation outcome.
type Result struct {
	// Content is validated JSON when the request had a Schema,
	// otherwise the raw text wrapped as a JSON string.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Purpose labels recorded with each generation event.
const (
	PurposeFlashcards = "flashcards"
	PurposeQuestions  = "questions"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label to the context for event
// logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// resolveModel maps a friendly model name to a provider model ID.
// Names not in the map pass through, so direct model IDs work too.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}

// StripFences removes a surrounding markdown code fence, with or
// without a json language tag. Models wrap JSON output in fences no
// matter how firmly the prompt forbids it.
func StripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	}
	if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-len("```")]
	}
	return strings.TrimSpace(text)
}
