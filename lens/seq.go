package lens

import (
	lenserrors "github.com/authcorp/lens/errors"
)

// Head focuses the first element of a non-empty slice.
func Head[T any]() Lens[[]T, T] {
	return Complete(
		func(s []T) (T, error) {
			if len(s) == 0 {
				var zero T
				return zero, lenserrors.EmptySequence("head")
			}
			return s[0], nil
		},
		func(s []T, v T) ([]T, error) {
			if len(s) == 0 {
				return nil, lenserrors.EmptySequence("head")
			}
			return replaceAt(s, 0, v), nil
		},
	)
}

// Tail focuses everything after the first element of a non-empty slice.
// Put keeps the first element and replaces the remainder.
func Tail[T any]() Lens[[]T, []T] {
	return Complete(
		func(s []T) ([]T, error) {
			if len(s) == 0 {
				return nil, lenserrors.EmptySequence("tail")
			}
			return s[1:len(s):len(s)], nil
		},
		func(s []T, rest []T) ([]T, error) {
			if len(s) == 0 {
				return nil, lenserrors.EmptySequence("tail")
			}
			out := make([]T, 0, len(rest)+1)
			out = append(out, s[0])
			return append(out, rest...), nil
		},
	)
}

// Index focuses the n-th element of a slice, counting from 1.
func Index[T any](n int) Lens[[]T, T] {
	return focusAt(func(s []T) (int, error) {
		if n < 1 || n > len(s) {
			return 0, lenserrors.IndexOutOfRange(n, len(s))
		}
		return n - 1, nil
	})
}

// Where focuses the first element satisfying pred.
func Where[T any](pred func(T) bool) Lens[[]T, T] {
	return focusAt(func(s []T) (int, error) {
		for i, v := range s {
			if pred(v) {
				return i, nil
			}
		}
		return 0, lenserrors.NoMatch(len(s))
	})
}

// All lifts a lens over T to a lens over []T, applied element by element.
// Put takes one replacement per element and fails with LengthMismatch
// otherwise. The first element error aborts the whole operation.
// Update receives the whole []U; use UpdateEach to apply one function to
// every element's focus.
func All[T, U any](elem Lens[T, U]) Lens[[]T, []U] {
	return Complete(
		func(s []T) ([]U, error) {
			out := make([]U, len(s))
			for i, v := range s {
				u, err := elem.get(v)
				if err != nil {
					return nil, err
				}
				out[i] = u
			}
			return out, nil
		},
		func(s []T, us []U) ([]T, error) {
			if len(us) != len(s) {
				return nil, lenserrors.LengthMismatch(len(s), len(us))
			}
			out := make([]T, len(s))
			for i, v := range s {
				r, err := elem.put(v, us[i])
				if err != nil {
					return nil, err
				}
				out[i] = r
			}
			return out, nil
		},
	)
}

// UpdateEach applies elem's update with the same fn to every element of s.
func UpdateEach[T, U any](elem Lens[T, U], s []T, fn func(U) U) ([]T, error) {
	out := make([]T, len(s))
	for i, v := range s {
		r, err := elem.Update(v, fn)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// focusAt builds an element lens from a locator. Get, Put and Update all
// run the same locator, so they always target the same element.
func focusAt[T any](locate func([]T) (int, error)) Lens[[]T, T] {
	return Complete(
		func(s []T) (T, error) {
			i, err := locate(s)
			if err != nil {
				var zero T
				return zero, err
			}
			return s[i], nil
		},
		func(s []T, v T) ([]T, error) {
			i, err := locate(s)
			if err != nil {
				return nil, err
			}
			return replaceAt(s, i, v), nil
		},
	)
}

func replaceAt[T any](s []T, i int, v T) []T {
	out := make([]T, len(s))
	copy(out, s)
	out[i] = v
	return out
}
