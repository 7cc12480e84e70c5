// Package lens provides composable lenses: first-class accessors that read,
// replace or transform one focused part of an immutable value.
//
// A Lens never mutates its input. Put and Update return a new whole that
// shares every part outside the focus with the original. The only failure a
// lens may report is a *errors.DomainError when the focus does not exist in
// the given value.
//
// Lenses are expected to satisfy, for every s in their domain:
//
//	Get(Put(s, a)) == a
//	Put(s, Get(s)) == s
//	Update(s, f)   == Put(s, f(Get(s)))
//
// The laws are not checked at runtime.
package lens

// Lens focuses a value of type A inside a whole of type S.
type Lens[S, A any] struct {
	get    func(S) (A, error)
	put    func(S, A) (S, error)
	update func(S, func(A) (A, error)) (S, error)
}

// Complete builds a lens from a getter and a setter. Update is derived as
// put(s, fn(get(s))).
func Complete[S, A any](get func(S) (A, error), put func(S, A) (S, error)) Lens[S, A] {
	return Lens[S, A]{
		get: get,
		put: put,
		update: func(s S, fn func(A) (A, error)) (S, error) {
			a, err := get(s)
			if err != nil {
				var zero S
				return zero, err
			}
			b, err := fn(a)
			if err != nil {
				var zero S
				return zero, err
			}
			return put(s, b)
		},
	}
}

// NewLens creates a lens that cannot fail from get and set functions.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Complete(
		func(s S) (A, error) { return get(s), nil },
		func(s S, a A) (S, error) { return set(s, a), nil },
	)
}

// Get retrieves the focused value.
func (l Lens[S, A]) Get(source S) (A, error) {
	return l.get(source)
}

// Put returns a new whole with the focused value replaced.
func (l Lens[S, A]) Put(source S, value A) (S, error) {
	return l.put(source, value)
}

// Update returns a new whole with fn applied to the focused value.
func (l Lens[S, A]) Update(source S, fn func(A) A) (S, error) {
	return l.update(source, func(a A) (A, error) {
		return fn(a), nil
	})
}

// TryUpdate is Update with a function that may fail. An error from fn is
// returned unchanged.
func (l Lens[S, A]) TryUpdate(source S, fn func(A) (A, error)) (S, error) {
	return l.update(source, fn)
}

// Identity creates an identity lens. It is the unit of Compose.
func Identity[S any]() Lens[S, S] {
	return NewLens(
		func(s S) S { return s },
		func(_ S, s S) S { return s },
	)
}
