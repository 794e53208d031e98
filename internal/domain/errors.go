package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrRateLimited   = errors.New("rate limited")
)

// Ballot submission outcomes. They are computed from the principal and the
// catalog before anything is written, so a caller may fix the condition and
// submit again.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrEmailNotVerified = errors.New("email not verified")
	ErrIneligibleDomain = errors.New("email domain not eligible")
	ErrAlreadyVoted     = errors.New("already voted")
	ErrIncompleteBallot = errors.New("incomplete ballot")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// BallotError attaches the offending position to a ballot outcome.
// Kind is one of the ballot sentinels above.
type BallotError struct {
	Kind       error
	PositionID PositionID
	Detail     string
}

func (e *BallotError) Error() string {
	if e.PositionID == "" {
		return e.Kind.Error()
	}
	if e.Detail == "" {
		return fmt.Sprintf("%s: position %q", e.Kind, e.PositionID)
	}
	return fmt.Sprintf("%s: position %q: %s", e.Kind, e.PositionID, e.Detail)
}

func (e *BallotError) Unwrap() error { return e.Kind }

// TransportError reports a failure of the backing store. When it is returned
// from a submission the caller cannot tell whether anything was recorded.
type TransportError struct {
	Op    string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: store unavailable: %v", e.Op, e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// Retryable reports whether the operation may be attempted again.
func (e *TransportError) Retryable() bool { return true }

// NewTransportError wraps cause unless it already is a TransportError.
func NewTransportError(op string, cause error) error {
	var te *TransportError
	if errors.As(cause, &te) {
		return cause
	}
	return &TransportError{Op: op, Cause: cause}
}
