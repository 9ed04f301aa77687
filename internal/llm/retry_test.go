package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

// flakyGenerator fails a fixed number of times before succeeding.
type flakyGenerator struct {
	failures int
	err      error
	calls    int
}

func (f *flakyGenerator) Generate(_ context.Context, _ Request) (*Result, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return &Result{Content: json.RawMessage(`"ok"`), Model: "flaky"}, nil
}

func (f *flakyGenerator) Name() string  { return "flaky" }
func (f *flakyGenerator) Model() string { return "flaky" }

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	inner := &flakyGenerator{failures: 2, err: &UnavailableError{Err: errors.New("boom")}}
	g := WithRetry(inner, fastRetryConfig())

	res, err := g.Generate(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(res.Content) != `"ok"` {
		t.Errorf("content = %s", res.Content)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	inner := &flakyGenerator{failures: 10, err: &UnavailableError{Err: errors.New("down")}}
	g := WithRetry(inner, fastRetryConfig())

	_, err := g.Generate(context.Background(), Request{Prompt: "hi"})
	var unavail *UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("got %v, want UnavailableError", err)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetryBadOutputOnlyOnce(t *testing.T) {
	inner := &flakyGenerator{failures: 10, err: &BadOutputError{Err: errors.New("not json")}}
	g := WithRetry(inner, fastRetryConfig())

	_, err := g.Generate(context.Background(), Request{Prompt: "hi"})
	var bad *BadOutputError
	if !errors.As(err, &bad) {
		t.Fatalf("got %v, want BadOutputError", err)
	}
	// One initial attempt plus exactly one retry.
	if inner.calls != 2 {
		t.Errorf("calls = %d, want 2", inner.calls)
	}
}

func TestRetryNeverRetriesTruncation(t *testing.T) {
	inner := &flakyGenerator{failures: 10, err: &TruncatedError{}}
	g := WithRetry(inner, fastRetryConfig())

	_, err := g.Generate(context.Background(), Request{Prompt: "hi"})
	var trunc *TruncatedError
	if !errors.As(err, &trunc) {
		t.Fatalf("got %v, want TruncatedError", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	inner := &flakyGenerator{failures: 10, err: &UnavailableError{Err: errors.New("down")}}
	g := WithRetry(inner, RetryConfig{
		MaxAttempts: 5,
		InitialWait: time.Hour,
		MaxWait:     time.Hour,
		Multiplier:  1.0,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, Request{Prompt: "hi"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	r := &retryGenerator{config: fastRetryConfig()}
	wait := r.backoff(0, &RateLimitError{RetryAfter: 42 * time.Millisecond})
	if wait != 42*time.Millisecond {
		t.Errorf("backoff = %v, want 42ms", wait)
	}
}
