package jsonpatchadapter_test

import (
	"testing"

	"github.com/hollowcore/xform/engine"
	"github.com/hollowcore/xform/engine/jsonpatchadapter"
)

func TestApplySucceeds(t *testing.T) {
	a := jsonpatchadapter.Applier{}
	root := map[string]any{}
	ops := []engine.PreparedOperation{
		{Op: "add", Path: "/a", Value: float64(1)},
		{Op: "add", Path: "/b", Value: "two"},
	}
	newRoot, failedIndex, err := a.Apply(root, ops)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if failedIndex != -1 {
		t.Errorf("failedIndex = %d, want -1", failedIndex)
	}
	got := newRoot.(map[string]any)
	if got["a"] != float64(1) || got["b"] != "two" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestApplyFailureReportsIndexZero(t *testing.T) {
	a := jsonpatchadapter.Applier{}
	root := map[string]any{}
	ops := []engine.PreparedOperation{
		{Op: "remove", Path: "/missing"},
	}
	_, failedIndex, err := a.Apply(root, ops)
	if err == nil {
		t.Fatal("expected an error")
	}
	if failedIndex != 0 {
		t.Errorf("failedIndex = %d, want 0", failedIndex)
	}
}

func TestApplyEmptyOpsNoop(t *testing.T) {
	a := jsonpatchadapter.Applier{}
	root := map[string]any{"x": 1}
	newRoot, failedIndex, err := a.Apply(root, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if failedIndex != -1 {
		t.Errorf("failedIndex = %d, want -1", failedIndex)
	}
	if newRoot.(map[string]any)["x"] != 1 {
		t.Errorf("unexpected mutation: %v", newRoot)
	}
}
