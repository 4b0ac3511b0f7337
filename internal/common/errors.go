package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Sentinel errors. The inference categories (rate limit, quota, authentication)
// are surfaced to the caller as-is and never retried inside the core; the rest
// drive the orchestrator's strategy fallback.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	// ErrNoData is the terminal "all strategies exhausted" outcome for a
	// document. It is an outcome, not a failure of the pipeline itself.
	ErrNoData = errors.New("no invoice data extracted")

	// ErrUnavailable marks a strategy that cannot run for this document
	// (no text layer, no rendering capability). The orchestrator skips it.
	ErrUnavailable = errors.New("strategy unavailable")

	// Transient inference-service failures.
	ErrRateLimited    = errors.New("inference rate limit exceeded")
	ErrQuotaExceeded  = errors.New("inference quota exceeded")
	ErrAuthentication = errors.New("inference authentication failed")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsInferenceError reports whether err belongs to the transient
// inference-service category that must be surfaced to the caller verbatim.
func IsInferenceError(err error) bool {
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrQuotaExceeded) ||
		errors.Is(err, ErrAuthentication)
}
