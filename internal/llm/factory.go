package llm

import (
	"context"
	"fmt"

	"github.com/prepmate/engine/internal/store"
)

// NewGenerator creates a Generator from configuration, wrapped with
// retry and event-logging middleware.
func NewGenerator(ctx context.Context, cfg Config, events store.LLMEventRepo) (Generator, error) {
	var base Generator
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiGenerator(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIGenerator(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicGenerator(cfg.Anthropic)
	case "mock":
		return NewMockGenerator(), nil
	default:
		return nil, fmt.Errorf("unknown generator provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base, so every attempt is recorded.
	logged := WithLogging(base, events)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}
