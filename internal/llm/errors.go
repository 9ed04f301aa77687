package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// RateLimitError indicates the provider returned 429.
type RateLimitError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// BadOutputError indicates the generator returned content that could
// not be used: malformed JSON or a schema violation.
type BadOutputError struct {
	Content json.RawMessage
	Err     error
}

func (e *BadOutputError) Error() string {
	return fmt.Sprintf("unusable generator output: %v", e.Err)
}

func (e *BadOutputError) Unwrap() error { return e.Err }

// UnavailableError indicates the provider is down or unreachable.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generator unavailable: %v", e.Err)
	}
	return "generator unavailable"
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// TruncatedError indicates the output was cut off at the MaxTokens
// limit. Not retryable; the request configuration is wrong.
type TruncatedError struct {
	Content json.RawMessage
}

func (e *TruncatedError) Error() string {
	return "generator output truncated at the token limit"
}
