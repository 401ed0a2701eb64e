package jsonptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDotted(t *testing.T) {
	assert.Equal(t, []string{"event", "groupId"}, SplitDotted("event.groupId"))
	assert.Equal(t, []string{"vars", "id"}, SplitDotted(" vars . id "))
	assert.Equal(t, []string{"a"}, SplitDotted("a"))
}

func TestEvalDotted(t *testing.T) {
	root := map[string]any{
		"event": map[string]any{
			"groupId": "g1",
		},
	}
	v, ok := EvalDotted(root, "event.groupId")
	assert.True(t, ok)
	assert.Equal(t, "g1", v)

	_, ok = EvalDotted(root, "event.missing")
	assert.False(t, ok)

	_, ok = EvalDotted(root, "event.groupId.nested")
	assert.False(t, ok)
}
