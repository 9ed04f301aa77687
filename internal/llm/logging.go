package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prepmate/engine/internal/store"
)

// loggingGenerator records every generation call as a store event.
type loggingGenerator struct {
	inner  Generator
	events store.LLMEventRepo
}

// WithLogging wraps a Generator with event logging.
func WithLogging(g Generator, events store.LLMEventRepo) Generator {
	return &loggingGenerator{inner: g, events: events}
}

func (l *loggingGenerator) Generate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	res, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.inner.Name(),
		Model:     l.inner.Model(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if res != nil {
		data.InputTokens = res.Usage.InputTokens
		data.OutputTokens = res.Usage.OutputTokens
		data.Model = res.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A failed event append must not fail the generation itself.
	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record generation event: %v\n", logErr)
	}

	return res, err
}

func (l *loggingGenerator) Name() string  { return l.inner.Name() }
func (l *loggingGenerator) Model() string { return l.inner.Model() }
