package jsonptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepCopyIndependence(t *testing.T) {
	orig := map[string]any{
		"a": []any{1.0, map[string]any{"b": "c"}},
	}
	cp := DeepCopy(orig).(map[string]any)
	cp["a"].([]any)[1].(map[string]any)["b"] = "mutated"

	assert.Equal(t, "c", orig["a"].([]any)[1].(map[string]any)["b"])
	assert.Equal(t, "mutated", cp["a"].([]any)[1].(map[string]any)["b"])
}

func TestDeepEqual(t *testing.T) {
	a := map[string]any{"x": 1.0, "y": []any{1.0, 2.0}}
	b := map[string]any{"x": 1, "y": []any{1.0, 2.0}}
	assert.True(t, DeepEqual(a, b), "numeric types should compare loosely")

	c := map[string]any{"x": 1.0, "y": []any{1.0, 3.0}}
	assert.False(t, DeepEqual(a, c))

	assert.True(t, DeepEqual(nil, nil))
	assert.False(t, DeepEqual("a", "b"))
	assert.True(t, DeepEqual("a", "a"))
}
