package lens

import (
	"reflect"

	lenserrors "github.com/authcorp/lens/errors"
)

// Compose creates a lens focusing through outer and then inner.
//
// Put re-reads the outer focus on every call; nothing is cached between
// calls. Update nests the inner update inside the outer one. Any error
// from either lens aborts the operation and is returned unchanged.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) (B, error) {
			a, err := outer.get(s)
			if err != nil {
				var zero B
				return zero, err
			}
			return inner.get(a)
		},
		put: func(s S, b B) (S, error) {
			a, err := outer.get(s)
			if err != nil {
				var zero S
				return zero, err
			}
			a, err = inner.put(a, b)
			if err != nil {
				var zero S
				return zero, err
			}
			return outer.put(s, a)
		},
		update: func(s S, fn func(B) (B, error)) (S, error) {
			return outer.update(s, func(a A) (A, error) {
				return inner.update(a, fn)
			})
		},
	}
}

// Chain composes any number of type-erased lenses, left to right. It is a
// left fold of Compose, so a single lens is returned as is. There is no
// zero-length chain; use Identity.
func Chain(first Lens[any, any], rest ...Lens[any, any]) Lens[any, any] {
	acc := first
	for _, l := range rest {
		acc = Compose(acc, l)
	}
	return acc
}

// Erase hides the static types of l so it can take part in a Chain.
// Values of the wrong dynamic type fail with a TypeMismatch error.
func Erase[S, A any](l Lens[S, A]) Lens[any, any] {
	return Lens[any, any]{
		get: func(s any) (any, error) {
			ts, err := cast[S](s)
			if err != nil {
				return nil, err
			}
			a, err := l.get(ts)
			if err != nil {
				return nil, err
			}
			return a, nil
		},
		put: func(s any, a any) (any, error) {
			ts, err := cast[S](s)
			if err != nil {
				return nil, err
			}
			ta, err := cast[A](a)
			if err != nil {
				return nil, err
			}
			r, err := l.put(ts, ta)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
		update: func(s any, fn func(any) (any, error)) (any, error) {
			ts, err := cast[S](s)
			if err != nil {
				return nil, err
			}
			r, err := l.update(ts, func(a A) (A, error) {
				v, err := fn(a)
				if err != nil {
					var zero A
					return zero, err
				}
				return cast[A](v)
			})
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	}
}

// Typed restores static types on an erased lens.
func Typed[S, A any](l Lens[any, any]) Lens[S, A] {
	return Lens[S, A]{
		get: func(s S) (A, error) {
			v, err := l.get(s)
			if err != nil {
				var zero A
				return zero, err
			}
			return cast[A](v)
		},
		put: func(s S, a A) (S, error) {
			r, err := l.put(s, a)
			if err != nil {
				var zero S
				return zero, err
			}
			return cast[S](r)
		},
		update: func(s S, fn func(A) (A, error)) (S, error) {
			r, err := l.update(s, func(v any) (any, error) {
				a, err := cast[A](v)
				if err != nil {
					return nil, err
				}
				return fn(a)
			})
			if err != nil {
				var zero S
				return zero, err
			}
			return cast[S](r)
		},
	}
}

// cast asserts v to T. A nil v is the zero T for every nillable kind.
func cast[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if v == nil && nillable(typ.Kind()) {
		return zero, nil
	}
	return zero, lenserrors.TypeMismatch(typ.String(), v)
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return true
	}
	return false
}
