package lens

import (
	lenserrors "github.com/authcorp/lens/errors"
	"github.com/authcorp/lens/functional"
)

// Positional is implemented by fixed-size records whose fields are
// addressed by position, counting from 1. With must return a copy of the
// record with slot n replaced and leave the receiver untouched.
type Positional[R any] interface {
	Arity() int
	At(n int) any
	With(n int, v any) R
}

// Slot focuses the n-th slot of a positional record. The slot value must
// have dynamic type T.
func Slot[R Positional[R], T any](n int) Lens[R, T] {
	return Complete(
		func(r R) (T, error) {
			if n < 1 || n > r.Arity() {
				var zero T
				return zero, lenserrors.SlotOutOfRange(n, r.Arity())
			}
			return cast[T](r.At(n))
		},
		func(r R, v T) (R, error) {
			if n < 1 || n > r.Arity() {
				var zero R
				return zero, lenserrors.SlotOutOfRange(n, r.Arity())
			}
			return r.With(n, v), nil
		},
	)
}

// PairFirst focuses the first component of a pair.
func PairFirst[A, B any]() Lens[functional.Pair[A, B], A] {
	return NewLens(
		func(p functional.Pair[A, B]) A { return p.First },
		func(p functional.Pair[A, B], a A) functional.Pair[A, B] { return functional.NewPair(a, p.Second) },
	)
}

// PairSecond focuses the second component of a pair.
func PairSecond[A, B any]() Lens[functional.Pair[A, B], B] {
	return NewLens(
		func(p functional.Pair[A, B]) B { return p.Second },
		func(p functional.Pair[A, B], b B) functional.Pair[A, B] { return functional.NewPair(p.First, b) },
	)
}

// TripleFirst focuses the first component of a triple.
func TripleFirst[A, B, C any]() Lens[functional.Triple[A, B, C], A] {
	return NewLens(
		func(t functional.Triple[A, B, C]) A { return t.First },
		func(t functional.Triple[A, B, C], a A) functional.Triple[A, B, C] {
			return functional.NewTriple(a, t.Second, t.Third)
		},
	)
}

// TripleSecond focuses the second component of a triple.
func TripleSecond[A, B, C any]() Lens[functional.Triple[A, B, C], B] {
	return NewLens(
		func(t functional.Triple[A, B, C]) B { return t.Second },
		func(t functional.Triple[A, B, C], b B) functional.Triple[A, B, C] {
			return functional.NewTriple(t.First, b, t.Third)
		},
	)
}

// TripleThird focuses the third component of a triple.
func TripleThird[A, B, C any]() Lens[functional.Triple[A, B, C], C] {
	return NewLens(
		func(t functional.Triple[A, B, C]) C { return t.Third },
		func(t functional.Triple[A, B, C], c C) functional.Triple[A, B, C] {
			return functional.NewTriple(t.First, t.Second, c)
		},
	)
}
