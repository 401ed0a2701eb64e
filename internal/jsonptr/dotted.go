package jsonptr

import "strings"

// SplitDotted breaks a dotted expression ("event.groupId", "vars.id") into
// its identifier segments. Each segment is trimmed of surrounding
// whitespace, matching the interpolation-token grammar of §4.3 ("each
// token's inner text is trimmed").
func SplitDotted(expr string) []string {
	parts := strings.Split(expr, ".")
	segments := make([]string, len(parts))
	for i, p := range parts {
		segments[i] = strings.TrimSpace(p)
	}
	return segments
}

// EvalDotted resolves a dotted expression against root by walking map keys
// left to right. A nullish value at any step (missing key, or a
// non-object/non-indexable intermediate) yields (nil, false) — the caller
// is responsible for turning that into an empty string or an "undefined"
// value per the rules of the calling component (interpolation vs valueFrom).
func EvalDotted(root any, expr string) (any, bool) {
	cur := root
	for _, seg := range SplitDotted(expr) {
		if seg == "" {
			return nil, false
		}
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		next, exists := m[seg]
		if !exists {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
