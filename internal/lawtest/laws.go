package lawtest

import (
	"reflect"

	"github.com/authcorp/lens/lens"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

// Equal compares two values structurally. Nil and empty slices or maps are
// equal and unexported fields take part in the comparison.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty(), cmp.Exporter(func(reflect.Type) bool { return true }))
}

// Diff renders the difference between two values for failure messages.
func Diff(a, b any) string {
	return cmp.Diff(a, b, cmpopts.EquateEmpty(), cmp.Exporter(func(reflect.Type) bool { return true }))
}

// Laws returns a property checking the lens laws for l on wholes drawn from
// whole and replacement foci drawn from focus. Every drawn whole must lie
// in l's domain. fn is the pure function used for the update laws.
func Laws[S, A any](l lens.Lens[S, A], whole *rapid.Generator[S], focus *rapid.Generator[A], fn func(A) A) func(*rapid.T) {
	return LawsWith(l, whole, focus, fn, func(x, y S) bool { return Equal(x, y) })
}

// LawsWith is Laws with a caller-supplied equality on wholes, for types
// such as persistent maps whose internal layout is not comparable.
func LawsWith[S, A any](l lens.Lens[S, A], whole *rapid.Generator[S], focus *rapid.Generator[A], fn func(A) A, eq func(S, S) bool) func(*rapid.T) {
	return func(t *rapid.T) {
		s := whole.Draw(t, "whole")
		b := focus.Draw(t, "focus")

		a, err := l.Get(s)
		if err != nil {
			t.Fatalf("get: %v", err)
		}

		// put(s, get(s)) == s
		same, err := l.Put(s, a)
		if err != nil {
			t.Fatalf("put: %v", err)
		}
		if !eq(same, s) {
			t.Fatalf("put(s, get(s)) != s:\n%s", Diff(s, same))
		}

		// get(put(s, b)) == b
		replaced, err := l.Put(s, b)
		if err != nil {
			t.Fatalf("put: %v", err)
		}
		got, err := l.Get(replaced)
		if err != nil {
			t.Fatalf("get after put: %v", err)
		}
		if !Equal(got, b) {
			t.Fatalf("get(put(s, b)) != b:\n%s", Diff(b, got))
		}

		// update(s, fn) == put(s, fn(get(s)))
		updated, err := l.Update(s, fn)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		expected, err := l.Put(s, fn(a))
		if err != nil {
			t.Fatalf("put: %v", err)
		}
		if !eq(updated, expected) {
			t.Fatalf("update(s, fn) != put(s, fn(get(s))):\n%s", Diff(expected, updated))
		}

		// put(s, b) == update(s, const b)
		constant, err := l.Update(s, func(A) A { return b })
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if !eq(constant, replaced) {
			t.Fatalf("put(s, b) != update(s, const b):\n%s", Diff(replaced, constant))
		}
	}
}
