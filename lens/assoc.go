package lens

import (
	"github.com/authcorp/lens/functional"
	"github.com/benbjohnson/immutable"
)

// Key focuses the optional value stored under key in a Go map. Absence is
// a value, not a failure: Put(None) deletes the key and Put(Some(v))
// inserts or overwrites it. Update only runs fn when the key is present.
// The input map is copied, never modified.
func Key[K comparable, V any](key K) Lens[map[K]V, functional.Option[V]] {
	get := func(m map[K]V) (functional.Option[V], error) {
		v, ok := m[key]
		return functional.FromComma(v, ok), nil
	}
	put := func(m map[K]V, opt functional.Option[V]) (map[K]V, error) {
		result := make(map[K]V, len(m)+1)
		for k, v := range m {
			result[k] = v
		}
		if v, ok := opt.Get(); ok {
			result[key] = v
		} else {
			delete(result, key)
		}
		return result, nil
	}
	return Lens[map[K]V, functional.Option[V]]{
		get: get,
		put: put,
		update: func(m map[K]V, fn func(functional.Option[V]) (functional.Option[V], error)) (map[K]V, error) {
			v, ok := m[key]
			if !ok {
				return m, nil
			}
			opt, err := fn(functional.Some(v))
			if err != nil {
				return nil, err
			}
			return put(m, opt)
		},
	}
}

// MapAt focuses the value under key, reading def when the key is absent.
// Put always stores the value.
func MapAt[K comparable, V any](key K, def V) Lens[map[K]V, V] {
	return NewLens(
		func(m map[K]V) V {
			if v, ok := m[key]; ok {
				return v
			}
			return def
		},
		func(m map[K]V, v V) map[K]V {
			result := make(map[K]V, len(m)+1)
			for k, val := range m {
				result[k] = val
			}
			result[key] = v
			return result
		},
	)
}

// Assoc is a persistent associative map: Set and Delete return a new map
// and leave the receiver unchanged.
type Assoc[K, V, M any] interface {
	Get(key K) (V, bool)
	Set(key K, value V) M
	Delete(key K) M
}

// Lookup is Key for any persistent associative map.
func Lookup[M Assoc[K, V, M], K, V any](key K) Lens[M, functional.Option[V]] {
	put := func(m M, opt functional.Option[V]) (M, error) {
		if v, ok := opt.Get(); ok {
			return m.Set(key, v), nil
		}
		if _, ok := m.Get(key); !ok {
			return m, nil
		}
		return m.Delete(key), nil
	}
	return Lens[M, functional.Option[V]]{
		get: func(m M) (functional.Option[V], error) {
			v, ok := m.Get(key)
			return functional.FromComma(v, ok), nil
		},
		put: put,
		update: func(m M, fn func(functional.Option[V]) (functional.Option[V], error)) (M, error) {
			v, ok := m.Get(key)
			if !ok {
				return m, nil
			}
			opt, err := fn(functional.Some(v))
			if err != nil {
				var zero M
				return zero, err
			}
			return put(m, opt)
		},
	}
}

// SortedKey is Key for an ordered persistent tree map. A nil map is read
// as an empty one.
func SortedKey[K, V any](key K) Lens[*immutable.SortedMap[K, V], functional.Option[V]] {
	inner := Lookup[*immutable.SortedMap[K, V], K, V](key)
	orEmpty := func(m *immutable.SortedMap[K, V]) *immutable.SortedMap[K, V] {
		if m == nil {
			return immutable.NewSortedMap[K, V](nil)
		}
		return m
	}
	return Lens[*immutable.SortedMap[K, V], functional.Option[V]]{
		get: func(m *immutable.SortedMap[K, V]) (functional.Option[V], error) {
			return inner.get(orEmpty(m))
		},
		put: func(m *immutable.SortedMap[K, V], opt functional.Option[V]) (*immutable.SortedMap[K, V], error) {
			return inner.put(orEmpty(m), opt)
		},
		update: func(m *immutable.SortedMap[K, V], fn func(functional.Option[V]) (functional.Option[V], error)) (*immutable.SortedMap[K, V], error) {
			return inner.update(orEmpty(m), fn)
		},
	}
}
