package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search pipeline.
var (
	// ErrConfigMissing: a required credential or setting is absent. Detected
	// before any network call; never retried without operator intervention.
	ErrConfigMissing = errors.New("required configuration missing")

	// ErrUpstream: the search-provider call failed (non-success HTTP status,
	// malformed or unexpected response shape). Not retried automatically.
	ErrUpstream = errors.New("search provider error")

	// ErrFetch: a per-hit page fetch failed (network error, timeout,
	// non-text content). Recoverable: the batch skips the hit and continues.
	ErrFetch = errors.New("content fetch failed")

	ErrTimeout      = errors.New("operation timed out")
	ErrInvalidInput = errors.New("invalid input")
	ErrToolNotFound = errors.New("tool not found")
	ErrSSRFBlocked  = errors.New("request to private/reserved IP blocked")
)

// DomainError wraps a sentinel error with operation context.
type DomainError struct {
	Op     string // operation name (e.g. "MetaphorBackend.Search")
	Err    error  // underlying sentinel or wrapped error
	Detail string // human-readable detail
}

func (e *DomainError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *DomainError) Unwrap() error { return e.Err }

// NewDomainError creates a new DomainError.
func NewDomainError(op string, err error, detail string) *DomainError {
	return &DomainError{Op: op, Err: err, Detail: detail}
}

// WrapOp adds operation context to an error. Returns nil if err is nil,
// enabling idiomatic use: return domain.WrapOp("op", err)
func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// IsRecoverable reports whether err is a per-hit failure that should not
// abort the surrounding batch.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrFetch) || errors.Is(err, ErrTimeout)
}
