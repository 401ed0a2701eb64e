package predicate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Predicate is a compiled schema fragment callable over a working context.
// Errors returns the validator's diagnostics from the most recent Test
// call that returned false; it is nil after a true result.
type Predicate interface {
	Test(data any) bool
	Errors() []string
}

// Engine compiles schema fragments into Predicates. It is safe for
// concurrent use by callers that do not share a single state document
// (§5's sharing rule).
type Engine struct {
	compiler *jsonschema.Compiler
	mu       sync.Mutex
	cache    map[string]*jsonschema.Schema
	seq      atomic.Uint64
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithCompiler substitutes an alternative, pre-configured compiler
// instance. It must be draft-2020-12 capable, per §6's Options contract.
func WithCompiler(c *jsonschema.Compiler) Option {
	return func(e *Engine) { e.compiler = c }
}

// New builds the default predicate engine: draft 2020-12, allErrors
// semantics (via the validation error's Causes slice), non-strict mode.
func New(opts ...Option) *Engine {
	e := &Engine{cache: make(map[string]*jsonschema.Schema)}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	e.compiler = compiler
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compile turns an arbitrary decoded JSON Schema fragment into a callable
// Predicate. Compilation results are cached within this Engine instance,
// keyed by the fragment's canonical JSON encoding, so that repeated use of
// an identical schema fragment (e.g. the same branch "if" across calls
// sharing an Engine) only compiles once.
func (e *Engine) Compile(schema any) (Predicate, error) {
	canon, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("predicate: schema fragment is not JSON-encodable: %w", err)
	}
	key := string(canon)

	// The lock spans cache lookup, compilation, and cache insertion: the
	// underlying jsonschema.Compiler is not safe for concurrent
	// AddResource/Compile calls, and PrecompileBranches compiles many
	// fragments concurrently via errgroup against this same Engine.
	e.mu.Lock()
	defer e.mu.Unlock()

	if compiled, ok := e.cache[key]; ok {
		return &predicate{schema: compiled}, nil
	}

	resourceURL := fmt.Sprintf("mem://predicate/%d", e.seq.Add(1))
	if err := e.compiler.AddResource(resourceURL, bytes.NewReader(canon)); err != nil {
		return nil, fmt.Errorf("predicate: adding schema resource: %w", err)
	}
	compiled, err := e.compiler.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("predicate: compiling schema: %w", err)
	}

	e.cache[key] = compiled

	return &predicate{schema: compiled}, nil
}

type predicate struct {
	schema *jsonschema.Schema
	errs   []string
}

func (p *predicate) Test(data any) bool {
	if err := p.schema.Validate(data); err != nil {
		p.errs = flattenValidationErrors(err)
		return false
	}
	p.errs = nil
	return true
}

func (p *predicate) Errors() []string {
	return p.errs
}

// flattenValidationErrors renders a jsonschema.ValidationError tree (which
// nests one entry per violated subschema under allErrors) into a flat,
// human-readable diagnostic list.
func flattenValidationErrors(err error) []string {
	valErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{err.Error()}
	}
	var out []string
	var walk func(*jsonschema.ValidationError)
	walk = func(v *jsonschema.ValidationError) {
		if len(v.Causes) == 0 {
			out = append(out, fmt.Sprintf("%s: %s", v.InstanceLocation, v.Message))
			return
		}
		for _, cause := range v.Causes {
			walk(cause)
		}
	}
	walk(valErr)
	return out
}
