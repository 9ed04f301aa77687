// Package errs defines the error taxonomy shared by the engine's
// domain packages. Callers branch on error kind with errors.As.
package errs

import "fmt"

// ValidationError indicates bad caller input. Input is rejected,
// never coerced into a plausible value.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
	}
	return fmt.Sprintf("invalid input: %s", e.Msg)
}

// NotFoundError indicates a referenced entity is absent from the store.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// ConflictError indicates a uniqueness violation, e.g. a duplicate
// achievement unlock or a reused idempotency key. Some callers treat
// it as a benign duplicate; others surface it.
type ConflictError struct {
	Entity string
	Key    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict on %q", e.Entity, e.Key)
}

// UpstreamGenerationError indicates the external content generator
// returned empty or unparseable output. Callers with a fallback
// extraction path recover from it; others propagate it.
type UpstreamGenerationError struct {
	Err error
}

func (e *UpstreamGenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content generation failed: %v", e.Err)
	}
	return "content generation failed"
}

func (e *UpstreamGenerationError) Unwrap() error { return e.Err }

// StoreUnavailableError indicates a transient store failure.
// Idempotent reads may be retried; point-affecting writes require a
// caller-supplied idempotency key before retry.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }
