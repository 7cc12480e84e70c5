package errors

import "fmt"

// New creates a DomainError with the given cause and message.
func New(cause Cause, message string) *DomainError {
	return &DomainError{Cause: cause, Message: message}
}

// EmptySequence reports head or tail applied to an empty sequence.
func EmptySequence(op string) *DomainError {
	return New(CauseEmptySequence, op+" of empty sequence")
}

// IndexOutOfRange reports a 1-origin index outside [1, length].
func IndexOutOfRange(n, length int) *DomainError {
	return New(CauseIndexOutOfRange, "index out of range").
		WithDetail("index", n).
		WithDetail("length", length)
}

// NoMatch reports a predicate that matched no element.
func NoMatch(length int) *DomainError {
	return New(CauseNoMatch, "no element satisfies predicate").
		WithDetail("length", length)
}

// SlotOutOfRange reports a record position outside [1, arity].
func SlotOutOfRange(n, arity int) *DomainError {
	return New(CauseSlotOutOfRange, "slot out of range").
		WithDetail("slot", n).
		WithDetail("arity", arity)
}

// InvalidFormat reports input that does not parse.
func InvalidFormat(input string, cause error) *DomainError {
	return New(CauseInvalidFormat, fmt.Sprintf("cannot parse %q", input)).WithCause(cause)
}

// LengthMismatch reports a replacement sequence of the wrong length.
func LengthMismatch(want, got int) *DomainError {
	return New(CauseLengthMismatch, "replacement length differs from original").
		WithDetail("want", want).
		WithDetail("got", got)
}

// TypeMismatch reports a dynamic value of an unexpected type.
func TypeMismatch(want string, got any) *DomainError {
	return New(CauseTypeMismatch, fmt.Sprintf("expected %s, got %T", want, got))
}

// MissingKey reports a document field that is not present.
func MissingKey(key string) *DomainError {
	return New(CauseMissingKey, fmt.Sprintf("key %q not present", key))
}
