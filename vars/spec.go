package vars

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Spec is a single VariableSpec: exactly one of Get or Value is set.
// Plan validation (planschema) rejects plans where this invariant does
// not hold; this type trusts that and simply exposes whichever was
// present.
type Spec struct {
	Get      string
	HasGet   bool
	Value    any
	HasValue bool
}

// UnmarshalJSON decodes a VariableSpec's two mutually-exclusive forms.
func (s *Spec) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if g, ok := raw["get"]; ok {
		str, ok := g.(string)
		if !ok {
			return fmt.Errorf("vars: \"get\" must be a string")
		}
		s.Get = str
		s.HasGet = true
	}
	if v, ok := raw["value"]; ok {
		s.Value = v
		s.HasValue = true
	}
	return nil
}

// Decl pairs a variable's declared name with its spec, preserving the
// position it held in the source mapping.
type Decl struct {
	Name string
	Spec Spec
}

// Set is an ordered collection of variable declarations. encoding/json
// decodes JSON objects into unordered maps, but §4.5 requires variables be
// evaluated "in the iteration order of the specification's mapping" so
// that a later variable may reference an earlier one via {vars.earlier} —
// Set's UnmarshalJSON walks the raw token stream to recover that order.
type Set []Decl

// UnmarshalJSON decodes a JSON object into a Set, preserving key order.
func (s *Set) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("vars: expected a JSON object for a variables mapping")
	}

	var out Set
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("vars: variable names must be strings")
		}
		var spec Spec
		if err := dec.Decode(&spec); err != nil {
			return fmt.Errorf("vars: decoding variable %q: %w", key, err)
		}
		out = append(out, Decl{Name: key, Spec: spec})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}
