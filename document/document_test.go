package document_test

import (
	"testing"

	"github.com/authcorp/lens/document"
	lenserrors "github.com/authcorp/lens/errors"
	"github.com/authcorp/lens/lens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifest = `
spec:
  replicas: 2
  containers:
    - name: app
      image: app:1
    - name: sidecar
      image: proxy:1
`

func decodeManifest(t *testing.T) any {
	t.Helper()
	doc, err := document.NewYAMLCodec().Decode([]byte(manifest))
	require.NoError(t, err)
	return doc
}

func TestPathGet(t *testing.T) {
	doc := decodeManifest(t)

	tests := []struct {
		path string
		want any
	}{
		{"spec.replicas", 2},
		{"spec.containers[2].image", "proxy:1"},
		{"spec.containers[1].name", "app"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, err := document.MustPath(tc.path).Get(doc)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPathPutLeavesInputUnchanged(t *testing.T) {
	doc := decodeManifest(t)
	l := document.MustPath("spec.containers[2].image")

	updated, err := l.Put(doc, "proxy:2")
	require.NoError(t, err)

	got, err := l.Get(updated)
	require.NoError(t, err)
	assert.Equal(t, "proxy:2", got)

	original, err := l.Get(doc)
	require.NoError(t, err)
	assert.Equal(t, "proxy:1", original)

	sibling, err := document.MustPath("spec.containers[1].image").Get(updated)
	require.NoError(t, err)
	assert.Equal(t, "app:1", sibling)
}

func TestPathFailures(t *testing.T) {
	doc := decodeManifest(t)

	_, err := document.MustPath("spec.volumes").Get(doc)
	assert.ErrorIs(t, err, lenserrors.ErrMissingKey)

	_, err = document.MustPath("spec.containers[3]").Get(doc)
	assert.ErrorIs(t, err, lenserrors.ErrIndexOutOfRange)

	_, err = document.MustPath("spec.replicas.count").Get(doc)
	assert.ErrorIs(t, err, lenserrors.ErrTypeMismatch)

	_, err = document.MustPath("spec[1]").Get(doc)
	assert.ErrorIs(t, err, lenserrors.ErrTypeMismatch)
}

func TestPathSyntax(t *testing.T) {
	for _, expr := range []string{".a", "a.", "a..b", "a[", "a[x]", "a]b", "a[1]b", "a.[1]"} {
		_, err := document.Path(expr)
		assert.ErrorIs(t, err, lenserrors.ErrInvalidFormat, expr)
	}

	for _, expr := range []string{"", "a", "[1]", "[1][2]", "a.b[3][1].c"} {
		_, err := document.Path(expr)
		assert.NoError(t, err, expr)
	}
}

func TestEmptyPathIsIdentity(t *testing.T) {
	got, err := document.MustPath("").Get("scalar")
	require.NoError(t, err)
	assert.Equal(t, "scalar", got)
}

func TestFieldPutInsertsMissingKey(t *testing.T) {
	node := map[string]any{"a": 1}
	updated, err := document.Field("b").Put(node, 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, updated)
	assert.Equal(t, map[string]any{"a": 1}, node)
}

func TestPathComposesWithTypedLenses(t *testing.T) {
	doc := decodeManifest(t)
	replicas := lens.Compose(document.MustPath("spec.replicas"), lens.Erase(lens.IntegerDigits()))

	digits, err := replicas.Get(doc)
	require.NoError(t, err)
	assert.Equal(t, "2", digits)

	scaled, err := replicas.Put(doc, "12")
	require.NoError(t, err)
	got, err := document.MustPath("spec.replicas").Get(scaled)
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	_, err = replicas.Put(doc, "twelve")
	assert.ErrorIs(t, err, lenserrors.ErrInvalidFormat)
}

func TestRewriteYAML(t *testing.T) {
	codec := document.NewYAMLCodec()
	out, err := document.Rewrite(codec, []byte(manifest), "spec.containers[1].image", func(v any) any {
		return v.(string) + "-patched"
	})
	require.NoError(t, err)

	got, err := document.Read(codec, out, "spec.containers[1].image")
	require.NoError(t, err)
	assert.Equal(t, "app:1-patched", got)

	replicas, err := document.Read(codec, out, "spec.replicas")
	require.NoError(t, err)
	assert.Equal(t, 2, replicas)
}

func TestRewriteJSON(t *testing.T) {
	codec := document.NewJSONCodec()
	in := []byte(`{"items":[{"n":1},{"n":2}]}`)

	out, err := document.Rewrite(codec, in, "items[2].n", func(v any) any { return v.(float64) * 10 })
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"n":1},{"n":20}]}`, string(out))

	_, err = document.Rewrite(codec, in, "items[3].n", func(v any) any { return v })
	assert.ErrorIs(t, err, lenserrors.ErrIndexOutOfRange)

	_, err = document.Read(codec, []byte(`{`), "items")
	assert.Error(t, err)
	assert.False(t, lenserrors.IsDomainError(err))
}

func TestJSONPrettyEncode(t *testing.T) {
	out, err := document.NewJSONCodec().WithPretty().Encode(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(out))
}

func TestYAMLIndent(t *testing.T) {
	doc := map[string]any{"spec": map[string]any{"replicas": 3}}

	out, err := document.NewYAMLCodec().WithIndent(4).Encode(doc)
	require.NoError(t, err)
	assert.Equal(t, "spec:\n    replicas: 3\n", string(out))

	got, err := document.Read(document.NewYAMLCodec(), out, "spec.replicas")
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}
