// Package commands provides CLI command handlers for xformctl.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/hollowcore/xform/internal/cliutil"
	"github.com/hollowcore/xform/internal/fileutil"
)

// Output format constants.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// Writef writes formatted output to the writer, logging to stderr if the
// write itself fails.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// LoadDocument reads a plan, event, or state document from path, or from
// stdin when path is StdinFilePath. Both JSON and YAML are accepted —
// YAML is a superset of JSON, so a single yaml.Unmarshal call handles
// both, decoding numbers into float64 and objects into map[string]any to
// match what the engine package expects.
func LoadDocument(path string) (any, error) {
	var data []byte
	var err error
	if path == StdinFilePath {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FormatSpecPath(path), err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", FormatSpecPath(path), err)
	}
	return normalize(doc), nil
}

// normalize walks a yaml.Unmarshal result and converts map[any]any (which
// go.yaml.in/yaml/v4 produces for non-string-keyed mappings) into
// map[string]any, and json.Number-free numeric scalars into float64,
// matching the shape internal/jsonptr and vars expect.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, vv := range val {
			out[k] = normalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, vv := range val {
			out[fmt.Sprint(k)] = normalize(vv)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, vv := range val {
			out[i] = normalize(vv)
		}
		return out
	case int:
		return float64(val)
	default:
		return val
	}
}

// OutputStructured writes data to stdout in the requested format.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error
	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}
	fmt.Println(string(bytes))
	return nil
}

// WriteStructuredFile marshals data in the requested format and writes it
// to path, owner read/write only since a resulting state document may
// carry sensitive application data.
func WriteStructuredFile(path string, data any, format string) error {
	var bytes []byte
	var err error
	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return os.WriteFile(path, bytes, fileutil.OwnerReadWrite)
}

// FormatSpecPath returns a display-friendly path, rendering StdinFilePath
// as "<stdin>".
func FormatSpecPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}
