// Package errs provides the unified error type used across all of pgstruct.
//
// Every subsystem (database, schema, generate, …) wraps its native errors
// into *errs.Error before returning them to callers. Callers use the Is*
// predicates to handle errors without importing driver-specific packages.
//
// Usage:
//
//	// In the generator — produce a domain error:
//	return errs.New(errs.ErrKindUnknownType, fmt.Sprintf("unknown postgres type %q", udt))
//
//	// In the CLI — check error kind:
//	if errs.IsUnknownType(err) {
//	    log.Error("add the type to the mapper vocabulary or fix the schema")
//	}
package errs

import (
	"errors"
	"fmt"
)

// ErrKind categorises an error without exposing subsystem-specific codes.
// All layers (pgx driver, metadata source, generator core) map their native
// errors to one of these kinds, giving callers a single consistent API.
type ErrKind int

const (
	ErrKindUnknown          ErrKind = iota
	ErrKindUnknownType              // native column type outside the mapper vocabulary
	ErrKindMalformedSchema          // grouping precondition violated (unsorted input, bad ordinals)
	ErrKindConnectionFailed         // cannot reach or authenticate to the database
	ErrKindTimeout                  // context deadline / cancellation
	ErrKindQueryFailed              // SQL execution error
	ErrKindInvalidInput             // bad arguments from the caller
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindUnknownType:
		return "unknown_type"
	case ErrKindMalformedSchema:
		return "malformed_schema"
	case ErrKindConnectionFailed:
		return "connection_failed"
	case ErrKindTimeout:
		return "timeout"
	case ErrKindQueryFailed:
		return "query_failed"
	case ErrKindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by all pgstruct subsystems.
// Producers create it via New/Wrap; callers inspect it via the Is* predicates.
type Error struct {
	Kind    ErrKind
	Message string
	Cause   error // original lower-level error, preserved for logging
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is / errors.As to traverse the cause chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// --- Constructors ---

// New creates an *Error with the given kind and message and no cause.
func New(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf creates an *Error with a formatted message and no cause.
func Newf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error with the given kind, message, and an underlying cause.
func Wrap(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// --- Predicates ---

// IsUnknownType reports whether err was caused by a native column type
// that is not part of the mapper's closed vocabulary.
func IsUnknownType(err error) bool {
	return kindOf(err) == ErrKindUnknownType
}

// IsMalformedSchema reports whether err was caused by column metadata
// that violates the sorted-stream precondition (fragmented table groups,
// duplicate or regressing ordinal positions).
func IsMalformedSchema(err error) bool {
	return kindOf(err) == ErrKindMalformedSchema
}

// IsConnectionFailed reports whether err is a connectivity or auth failure.
func IsConnectionFailed(err error) bool {
	return kindOf(err) == ErrKindConnectionFailed
}

// IsTimeout reports whether err was caused by a deadline or context cancellation.
func IsTimeout(err error) bool {
	return kindOf(err) == ErrKindTimeout
}

// IsQueryFailed reports whether err is a SQL execution failure.
func IsQueryFailed(err error) bool {
	return kindOf(err) == ErrKindQueryFailed
}

// IsInvalidInput reports whether err was caused by bad input from the caller.
func IsInvalidInput(err error) bool {
	return kindOf(err) == ErrKindInvalidInput
}

// kindOf extracts the ErrKind from any error in the chain.
func kindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}
