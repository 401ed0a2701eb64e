// Package xformerrors provides the structured error taxonomy for the xform
// transform engine.
//
// The four kinds below are the only exceptional outcomes a call to
// [xform.Transform] or [xform.ValidatePlan] can produce; callers distinguish
// them with errors.Is/errors.As rather than string matching.
//
// # Usage with errors.As
//
//	result, err := xform.Transform(plan, ctxDoc)
//	if err != nil {
//	    var failed *xformerrors.OpFailedError
//	    if errors.As(err, &failed) {
//	        log.Printf("operation %d failed: %s", failed.Index, failed.Message)
//	    }
//	}
package xformerrors
