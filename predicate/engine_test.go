package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAndTestMatch(t *testing.T) {
	e := New()
	p, err := e.Compile(map[string]any{
		"type":       "object",
		"properties": map[string]any{"add": map[string]any{"const": true}},
		"required":   []any{"add"},
	})
	require.NoError(t, err)

	assert.True(t, p.Test(map[string]any{"add": true}))
	assert.False(t, p.Test(map[string]any{"add": false}))
	assert.NotEmpty(t, p.Errors())
}

func TestCompileCachesIdenticalFragments(t *testing.T) {
	e := New()
	schema := map[string]any{"type": "object"}
	p1, err := e.Compile(schema)
	require.NoError(t, err)
	p2, err := e.Compile(schema)
	require.NoError(t, err)

	assert.True(t, p1.Test(map[string]any{}))
	assert.True(t, p2.Test(map[string]any{}))
}

func TestCompiledPredicateRejectsMismatchedType(t *testing.T) {
	e := New()
	p, err := e.Compile(map[string]any{"type": "string"})
	require.NoError(t, err)
	assert.False(t, p.Test(42.0))
}

func TestAllErrorsFlattening(t *testing.T) {
	e := New()
	p, err := e.Compile(map[string]any{
		"type":     "object",
		"required": []any{"a", "b"},
	})
	require.NoError(t, err)

	assert.False(t, p.Test(map[string]any{}))
	assert.NotEmpty(t, p.Errors())
}
