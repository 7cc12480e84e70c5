// Package lawtest provides rapid generators for lens foci and a reusable
// checker for the lens laws.
package lawtest

import (
	"github.com/authcorp/lens/functional"
	"pgregory.net/rapid"
)

// OptionGen generates Option[T] values.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return functional.Some(valueGen.Draw(t, "value"))
		}
		return functional.None[T]()
	})
}

// PairGen generates Pair[A, B] values.
func PairGen[A, B any](firstGen *rapid.Generator[A], secondGen *rapid.Generator[B]) *rapid.Generator[functional.Pair[A, B]] {
	return rapid.Custom(func(t *rapid.T) functional.Pair[A, B] {
		return functional.NewPair(
			firstGen.Draw(t, "first"),
			secondGen.Draw(t, "second"),
		)
	})
}

// TripleGen generates Triple[A, B, C] values.
func TripleGen[A, B, C any](firstGen *rapid.Generator[A], secondGen *rapid.Generator[B], thirdGen *rapid.Generator[C]) *rapid.Generator[functional.Triple[A, B, C]] {
	return rapid.Custom(func(t *rapid.T) functional.Triple[A, B, C] {
		return functional.NewTriple(
			firstGen.Draw(t, "first"),
			secondGen.Draw(t, "second"),
			thirdGen.Draw(t, "third"),
		)
	})
}

// NonEmptySliceGen generates slices with at least one element.
func NonEmptySliceGen[T any](elemGen *rapid.Generator[T]) *rapid.Generator[[]T] {
	return rapid.SliceOfN(elemGen, 1, 20)
}

// SliceOfLenGen generates slices of exactly n elements.
func SliceOfLenGen[T any](elemGen *rapid.Generator[T], n int) *rapid.Generator[[]T] {
	return rapid.SliceOfN(elemGen, n, n)
}

// MapGen generates small maps whose keys are drawn from keyGen.
func MapGen[K comparable, V any](keyGen *rapid.Generator[K], valueGen *rapid.Generator[V]) *rapid.Generator[map[K]V] {
	return rapid.MapOfN(keyGen, valueGen, 0, 8)
}

// DigitStringGen generates decimal integer literals that fit in an int.
func DigitStringGen() *rapid.Generator[string] {
	return rapid.StringMatching(`-?[1-9][0-9]{0,15}|0`)
}
