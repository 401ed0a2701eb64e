package xform

import (
	"sync"

	"github.com/hollowcore/xform/engine"
)

var (
	defaultOnce   sync.Once
	defaultEngine *engine.Engine
	defaultErr    error
)

func getDefault() (*engine.Engine, error) {
	defaultOnce.Do(func() {
		defaultEngine, defaultErr = engine.New()
	})
	return defaultEngine, defaultErr
}

// Transform runs plan against ctxDoc using the package-level default
// Engine, constructing it on first use. ctxDoc must contain "event" and
// "state" keys.
func Transform(plan any, ctxDoc map[string]any) (*engine.Result, error) {
	e, err := getDefault()
	if err != nil {
		return nil, err
	}
	return e.Transform(plan, ctxDoc)
}

// ValidatePlan confirms plan conforms to the Transform Plan meta-schema,
// using the package-level default Engine.
func ValidatePlan(plan any) (valid bool, errs []string, err error) {
	e, err := getDefault()
	if err != nil {
		return false, nil, err
	}
	valid, errs = e.ValidatePlan(plan)
	return valid, errs, nil
}
