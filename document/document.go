// Package document provides lenses over decoded YAML and JSON documents.
//
// A document is the generic tree produced by decoding into an any:
// mappings are map[string]any, sequences are []any and everything else is
// a scalar. Paths such as "spec.containers[2].image" are parsed into a
// chain of Field and Element lenses. Element positions count from 1, like
// lens.Index.
package document

import (
	lenserrors "github.com/authcorp/lens/errors"
	"github.com/authcorp/lens/lens"
)

// Field focuses the value stored under name in a mapping node. Get fails
// with MissingKey when the key is absent; Put inserts it.
func Field(name string) lens.Lens[any, any] {
	return lens.Complete(
		func(node any) (any, error) {
			m, err := mapping(node)
			if err != nil {
				return nil, err
			}
			v, ok := m[name]
			if !ok {
				return nil, lenserrors.MissingKey(name)
			}
			return v, nil
		},
		func(node any, v any) (any, error) {
			m, err := mapping(node)
			if err != nil {
				return nil, err
			}
			result := make(map[string]any, len(m)+1)
			for k, val := range m {
				result[k] = val
			}
			result[name] = v
			return result, nil
		},
	)
}

// Element focuses the n-th item of a sequence node, counting from 1.
func Element(n int) lens.Lens[any, any] {
	return lens.Erase(lens.Index[any](n))
}

func mapping(node any) (map[string]any, error) {
	m, ok := node.(map[string]any)
	if !ok {
		return nil, lenserrors.TypeMismatch("mapping", node)
	}
	return m, nil
}
