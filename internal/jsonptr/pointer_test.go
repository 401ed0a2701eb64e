package jsonptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeUnescapeToken(t *testing.T) {
	assert.Equal(t, "a~1b", EscapeToken("a/b"))
	assert.Equal(t, "a~0b", EscapeToken("a~b"))
	assert.Equal(t, "a~01", EscapeToken("a~1"))
	assert.Equal(t, "a/b", UnescapeToken("a~1b"))
	assert.Equal(t, "a~b", UnescapeToken("a~0b"))
	assert.Equal(t, "a~1", UnescapeToken("a~01"))
}

func TestSplit(t *testing.T) {
	assert.Nil(t, Split(""))
	assert.Nil(t, Split("/"))
	assert.Equal(t, []string{"a", "b"}, Split("/a/b"))
	assert.Equal(t, []string{"a/b"}, Split("/a~1b"))
}

func TestGetHas(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{
			"b": []any{1.0, 2.0, 3.0},
		},
	}
	v, ok := Get(doc, Split("/a/b/1"))
	require.True(t, ok)
	assert.Equal(t, 2.0, v)

	assert.True(t, Has(doc, Split("/a/b")))
	assert.False(t, Has(doc, Split("/a/c")))

	_, ok = Get(doc, Split("/a/b/9"))
	assert.False(t, ok)
}

func TestEnsureParents(t *testing.T) {
	doc := map[string]any{}
	err := EnsureParents(doc, Split("/a/b/c"))
	require.NoError(t, err)
	assert.True(t, Has(doc, Split("/a/b")))

	doc2 := map[string]any{"a": "scalar"}
	err = EnsureParents(doc2, Split("/a/b"))
	assert.Error(t, err)
}

func TestAddAppendAndIndex(t *testing.T) {
	doc := map[string]any{"items": []any{1.0, 2.0}}
	root, err := Add(doc, Split("/items/-"), 3.0)
	require.NoError(t, err)
	items := root.(map[string]any)["items"].([]any)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, items)

	root, err = Add(root, Split("/items/0"), 0.0)
	require.NoError(t, err)
	items = root.(map[string]any)["items"].([]any)
	assert.Equal(t, []any{0.0, 1.0, 2.0, 3.0}, items)
}

func TestAddNestedArrayReallocationPropagates(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{
			"b": []any{"x", "y"},
		},
	}
	root, err := Add(doc, Split("/a/b/0"), "w")
	require.NoError(t, err)
	b := root.(map[string]any)["a"].(map[string]any)["b"].([]any)
	assert.Equal(t, []any{"w", "x", "y"}, b)
}

func TestReplace(t *testing.T) {
	doc := map[string]any{"a": "old"}
	root, err := Replace(doc, Split("/a"), "new")
	require.NoError(t, err)
	assert.Equal(t, "new", root.(map[string]any)["a"])

	_, err = Replace(doc, Split("/missing"), "x")
	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	doc := map[string]any{"items": []any{1.0, 2.0, 3.0}}
	root, err := Remove(doc, Split("/items/1"))
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 3.0}, root.(map[string]any)["items"])

	_, err = Remove(doc, Split("/items/99"))
	assert.Error(t, err)
}

func TestRemoveNestedPropagatesReallocation(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{"b": []any{"x", "y", "z"}},
	}
	root, err := Remove(doc, Split("/a/b/1"))
	require.NoError(t, err)
	b := root.(map[string]any)["a"].(map[string]any)["b"].([]any)
	assert.Equal(t, []any{"x", "z"}, b)
}

func TestApplyAtRootRejected(t *testing.T) {
	_, err := Add(map[string]any{}, nil, "x")
	assert.Error(t, err)
}
