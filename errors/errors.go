// Package errors defines the failure family raised by lens operations.
// Every failure is a *DomainError carrying a Cause; callers match on the
// cause with errors.Is against the sentinels below.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Cause identifies why a lens could not reach its focus.
type Cause string

// Causes for all lens failures.
const (
	CauseEmptySequence   Cause = "EMPTY_SEQUENCE"
	CauseIndexOutOfRange Cause = "INDEX_OUT_OF_RANGE"
	CauseNoMatch         Cause = "NO_MATCH"
	CauseSlotOutOfRange  Cause = "SLOT_OUT_OF_RANGE"
	CauseInvalidFormat   Cause = "INVALID_FORMAT"
	CauseLengthMismatch  Cause = "LENGTH_MISMATCH"

	// Raised by type-erased chains and positional slots.
	CauseTypeMismatch Cause = "TYPE_MISMATCH"
	// Raised by document field lookups.
	CauseMissingKey Cause = "MISSING_KEY"
)

// Sentinels for errors.Is. They match any DomainError with the same cause.
var (
	ErrEmptySequence   = &DomainError{Cause: CauseEmptySequence}
	ErrIndexOutOfRange = &DomainError{Cause: CauseIndexOutOfRange}
	ErrNoMatch         = &DomainError{Cause: CauseNoMatch}
	ErrSlotOutOfRange  = &DomainError{Cause: CauseSlotOutOfRange}
	ErrInvalidFormat   = &DomainError{Cause: CauseInvalidFormat}
	ErrLengthMismatch  = &DomainError{Cause: CauseLengthMismatch}
	ErrTypeMismatch    = &DomainError{Cause: CauseTypeMismatch}
	ErrMissingKey      = &DomainError{Cause: CauseMissingKey}
)

// DomainError reports that a value lies outside a lens's domain.
type DomainError struct {
	Cause   Cause
	Message string
	Details map[string]any
	cause   error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(string(e.Cause))
	b.WriteString("]")
	if e.Message != "" {
		b.WriteString(" ")
		b.WriteString(e.Message)
	}
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, e.Details[k])
		}
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is matches another DomainError with the same Cause.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Cause == t.Cause
	}
	return false
}

// WithDetail returns a copy of the error with a detail added. The
// receiver, which may be a sentinel, is left unchanged.
func (e *DomainError) WithDetail(key string, value any) *DomainError {
	c := e.clone()
	c.Details[key] = value
	return c
}

// WithCause returns a copy of the error with the underlying error set.
func (e *DomainError) WithCause(cause error) *DomainError {
	c := e.clone()
	c.cause = cause
	return c
}

func (e *DomainError) clone() *DomainError {
	c := *e
	c.Details = make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		c.Details[k] = v
	}
	return &c
}

// AsType is a generic error type assertion over the error chain.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// CauseOf returns the cause of the first DomainError in err's chain.
func CauseOf(err error) (Cause, bool) {
	if de, ok := AsType[*DomainError](err); ok {
		return de.Cause, true
	}
	return "", false
}

// IsDomainError reports whether err's chain holds a DomainError.
func IsDomainError(err error) bool {
	_, ok := AsType[*DomainError](err)
	return ok
}
