package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryGenerator retries transient failures with exponential backoff
// and jitter.
type retryGenerator struct {
	inner  Generator
	config RetryConfig
}

// WithRetry wraps a Generator with retry logic.
func WithRetry(g Generator, cfg RetryConfig) Generator {
	return &retryGenerator{inner: g, config: cfg}
}

func (r *retryGenerator) Generate(ctx context.Context, req Request) (*Result, error) {
	var lastErr error
	badOutputRetried := false

	for attempt := range r.config.MaxAttempts {
		res, err := r.inner.Generate(ctx, req)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if !r.shouldRetry(err, &badOutputRetried) {
			return nil, err
		}

		// Last attempt: no point sleeping.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func (r *retryGenerator) Name() string  { return r.inner.Name() }
func (r *retryGenerator) Model() string { return r.inner.Model() }

// shouldRetry decides whether an error is worth another attempt.
func (r *retryGenerator) shouldRetry(err error, badOutputRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Truncation is a configuration problem, not transient.
	var trunc *TruncatedError
	if errors.As(err, &trunc) {
		return false
	}

	// Unusable output gets exactly one retry; models sometimes emit
	// malformed JSON once and recover on the next attempt.
	var bad *BadOutputError
	if errors.As(err, &bad) {
		if *badOutputRetried {
			return false
		}
		*badOutputRetried = true
		return true
	}

	// Rate limits, outages, and unclassified network errors are all
	// transient.
	return true
}

// backoff computes the wait before the next attempt.
func (r *retryGenerator) backoff(attempt int, err error) time.Duration {
	var rl *RateLimitError
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
