package document

import (
	"fmt"
	"strconv"
	"strings"

	lenserrors "github.com/authcorp/lens/errors"
	"github.com/authcorp/lens/lens"
)

// Path parses expr into a single lens. The grammar is
//
//	path    = [ segment { "." segment } ]
//	segment = [ name ] { "[" digits "]" }
//
// where name is any run of characters other than '.', '[' and ']'. An
// empty expression is the identity lens. Malformed expressions fail with
// InvalidFormat.
func Path(expr string) (lens.Lens[any, any], error) {
	steps, err := parse(expr)
	if err != nil {
		return lens.Lens[any, any]{}, err
	}
	return lens.Chain(lens.Identity[any](), steps...), nil
}

// MustPath is Path for expressions known to be valid. It panics otherwise.
func MustPath(expr string) lens.Lens[any, any] {
	l, err := Path(expr)
	if err != nil {
		panic(err)
	}
	return l
}

func parse(expr string) ([]lens.Lens[any, any], error) {
	if expr == "" {
		return nil, nil
	}
	var steps []lens.Lens[any, any]
	for i, segment := range strings.Split(expr, ".") {
		name, _, _ := strings.Cut(segment, "[")
		if strings.Contains(name, "]") {
			return nil, syntaxError(expr, "unexpected ']' in segment %d", i+1)
		}
		if name == "" && (i > 0 || !strings.HasPrefix(segment, "[")) {
			return nil, syntaxError(expr, "empty segment %d", i+1)
		}
		if name != "" {
			steps = append(steps, Field(name))
		}
		if len(segment) == len(name) {
			continue
		}
		indexes, err := parseIndexes(expr, segment[len(name):])
		if err != nil {
			return nil, err
		}
		for _, n := range indexes {
			steps = append(steps, Element(n))
		}
	}
	return steps, nil
}

// parseIndexes reads a run of "[n]" groups.
func parseIndexes(expr, s string) ([]int, error) {
	var out []int
	for s != "" {
		if s[0] != '[' {
			return nil, syntaxError(expr, "expected '[' at %q", s)
		}
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, syntaxError(expr, "unterminated index at %q", s)
		}
		n, err := strconv.Atoi(s[1:end])
		if err != nil {
			return nil, lenserrors.InvalidFormat(expr, err)
		}
		out = append(out, n)
		s = s[end+1:]
	}
	return out, nil
}

func syntaxError(expr, format string, args ...any) error {
	return lenserrors.InvalidFormat(expr, fmt.Errorf(format, args...))
}
