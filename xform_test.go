package xform_test

import (
	"testing"

	"github.com/hollowcore/xform"
)

func TestValidatePlanAcceptsMinimalPlan(t *testing.T) {
	plan := map[string]any{
		"when": []any{
			map[string]any{
				"if":   map[string]any{"const": true},
				"then": map[string]any{"ops": []any{}},
			},
		},
	}
	valid, errs, err := xform.ValidatePlan(plan)
	if err != nil {
		t.Fatalf("ValidatePlan: %v", err)
	}
	if !valid {
		t.Errorf("plan rejected: %v", errs)
	}
}

func TestValidatePlanRejectsMissingWhen(t *testing.T) {
	valid, errs, err := xform.ValidatePlan(map[string]any{})
	if err != nil {
		t.Fatalf("ValidatePlan: %v", err)
	}
	if valid {
		t.Fatal("expected plan without \"when\" to be rejected")
	}
	if len(errs) == 0 {
		t.Error("expected diagnostics")
	}
}

func TestTransformNoMatch(t *testing.T) {
	plan := map[string]any{
		"when": []any{
			map[string]any{
				"if":   map[string]any{"const": false},
				"then": map[string]any{"ops": []any{}},
			},
		},
	}
	state := map[string]any{"x": 1}
	res, err := xform.Transform(plan, map[string]any{"event": map[string]any{}, "state": state})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if len(res.Ops) != 0 {
		t.Errorf("ops = %v, want empty", res.Ops)
	}
	if res.CorrelationID == "" {
		t.Error("expected a non-empty correlation id")
	}
}
