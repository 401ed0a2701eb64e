package pathresolve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hollowcore/xform/internal/jsonptr"
)

// tokenBounds finds the next {...} token in s starting at or after offset,
// returning its byte bounds (inclusive of braces) or ok=false if none remain.
func tokenBounds(s string, offset int) (start, end int, ok bool) {
	start = strings.IndexByte(s[offset:], '{')
	if start < 0 {
		return 0, 0, false
	}
	start += offset
	rel := strings.IndexByte(s[start:], '}')
	if rel < 0 {
		return 0, 0, false
	}
	return start, start + rel + 1, true
}

// stringify converts a resolved token value to its string form the way a
// template author would expect to see it substituted: integral floats
// render without a trailing ".0", everything else uses Go's default
// formatting for the underlying decoded-JSON type.
func stringify(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case float64:
		if n == float64(int64(n)) {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(n)
	default:
		// Arrays/objects are rare substitutions; fmt's default verb gives a
		// stable, if unspecified, rendering rather than panicking.
		return fmt.Sprint(v)
	}
}

// resolveToken evaluates a single trimmed dotted expression against ctx,
// returning the empty string for any nullish result per §4.3 step 2.
func resolveToken(expr string, ctx any) string {
	v, ok := jsonptr.EvalDotted(ctx, expr)
	if !ok {
		return ""
	}
	return stringify(v)
}

// Interpolate performs string-level token replacement with no
// pointer-escaping; used for non-pointer message strings (§6).
func Interpolate(template string, ctx any) string {
	var b strings.Builder
	offset := 0
	for {
		start, end, ok := tokenBounds(template, offset)
		if !ok {
			b.WriteString(template[offset:])
			break
		}
		b.WriteString(template[offset:start])
		inner := strings.TrimSpace(template[start+1 : end-1])
		b.WriteString(resolveToken(inner, ctx))
		offset = end
	}
	return b.String()
}

// ToPointer resolves a PathTemplate to a concrete RFC 6901 pointer per
// §4.3: each {dotted.expr} token is evaluated, stringified, and escaped
// (~ -> ~0 first, then / -> ~1) before substitution; the surrounding
// template text is never escaped. If the final string does not begin with
// "/", one is prepended.
func ToPointer(template string, ctx any) string {
	var b strings.Builder
	offset := 0
	for {
		start, end, ok := tokenBounds(template, offset)
		if !ok {
			b.WriteString(template[offset:])
			break
		}
		b.WriteString(template[offset:start])
		inner := strings.TrimSpace(template[start+1 : end-1])
		resolved := resolveToken(inner, ctx)
		b.WriteString(jsonptr.EscapeToken(resolved))
		offset = end
	}
	result := b.String()
	if !strings.HasPrefix(result, "/") {
		result = "/" + result
	}
	return result
}
