package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hollowcore/xform"
	"github.com/hollowcore/xform/internal/options"
)

// ApplyFlags contains flags for the apply command.
type ApplyFlags struct {
	ContextPath string
	EventPath   string
	StatePath   string
	OutputPath  string
	Format      string
}

// SetupApplyFlags creates and configures a FlagSet for the apply command.
func SetupApplyFlags() (*flag.FlagSet, *ApplyFlags) {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	flags := &ApplyFlags{}
	fs.StringVar(&flags.ContextPath, "context", "", "path to a document with \"event\" and \"state\" keys")
	fs.StringVar(&flags.EventPath, "event", "", "path to the event document (used with -state)")
	fs.StringVar(&flags.StatePath, "state", "", "path to the state document (used with -event)")
	fs.StringVar(&flags.OutputPath, "output", "", "write the result to this file instead of stdout")
	fs.StringVar(&flags.Format, "format", FormatYAML, "output format: json or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: xformctl apply [flags] <plan-file|->\n\n")
		Writef(fs.Output(), "Apply a Transform Plan to an event/state pair and print the resulting state.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  xformctl apply plan.yaml -context ctx.yaml\n")
		Writef(fs.Output(), "  xformctl apply plan.yaml -event event.json -state state.json\n")
	}
	return fs, flags
}

// HandleApply executes the apply command.
func HandleApply(args []string) error {
	fs, flags := SetupApplyFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("apply command requires exactly one plan file path or '-' for stdin")
	}
	if flags.Format != FormatJSON && flags.Format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", flags.Format, FormatJSON, FormatYAML)
	}
	if (flags.EventPath != "") != (flags.StatePath != "") {
		return fmt.Errorf("-event and -state must be given together")
	}
	if err := options.ValidateSingleInputSource(
		"specify either -context, or both -event and -state",
		"specify either -context, or both -event and -state, not both",
		flags.ContextPath != "",
		flags.EventPath != "" && flags.StatePath != "",
	); err != nil {
		return err
	}

	planPath := fs.Arg(0)
	plan, err := LoadDocument(planPath)
	if err != nil {
		return err
	}

	ctxDoc, err := loadContext(flags)
	if err != nil {
		return err
	}

	result, err := xform.Transform(plan, ctxDoc)
	if err != nil {
		if result != nil {
			Writef(os.Stderr, "partial state (before failure):\n")
			_ = OutputStructured(result.State, flags.Format)
		}
		return fmt.Errorf("applying plan: %w", err)
	}

	out := map[string]any{
		"state":         result.State,
		"ops":           result.Ops,
		"correlationId": result.CorrelationID,
	}
	if flags.OutputPath != "" {
		return WriteStructuredFile(flags.OutputPath, out, flags.Format)
	}
	return OutputStructured(out, flags.Format)
}

func loadContext(flags *ApplyFlags) (map[string]any, error) {
	if flags.ContextPath != "" {
		doc, err := LoadDocument(flags.ContextPath)
		if err != nil {
			return nil, err
		}
		ctxDoc, ok := doc.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("context document must be a JSON/YAML object with \"event\" and \"state\" keys")
		}
		return ctxDoc, nil
	}

	event, err := LoadDocument(flags.EventPath)
	if err != nil {
		return nil, err
	}
	state, err := LoadDocument(flags.StatePath)
	if err != nil {
		return nil, err
	}
	return map[string]any{"event": event, "state": state}, nil
}
