package jsonptr

// DeepCopy produces a structural copy of a decoded-JSON value
// (map[string]any / []any / scalar). It is used to snapshot state before
// applying a plan's operations, so that an atomic plan can restore the
// caller's document on failure without the applier's partial effects
// leaking through.
func DeepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = DeepCopy(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = DeepCopy(child)
		}
		return out
	default:
		// Scalars (string, float64, bool, nil, json.Number) are immutable values.
		return val
	}
}

// DeepEqual compares two decoded-JSON values for structural equality,
// treating numeric values loosely (int/float of equal magnitude compare
// equal) since encoding/json, YAML decoders, and hand-built Go literals
// disagree on which concrete numeric type a JSON number becomes.
func DeepEqual(a, b any) bool {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, aval := range av {
			bval, exists := bv[k]
			if !exists || !DeepEqual(aval, bval) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !DeepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		an, aIsNum := asFloat(a)
		bn, bIsNum := asFloat(b)
		if aIsNum && bIsNum {
			return an == bn
		}
		return a == b
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}
