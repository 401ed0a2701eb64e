package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hollowcore/xform"
)

// ValidateFlags contains flags for the validate command.
type ValidateFlags struct {
	Format string
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: xformctl validate [flags] <file|->\n\n")
		Writef(fs.Output(), "Validate a Transform Plan document against the bundled meta-schema.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  xformctl validate plan.yaml\n")
		Writef(fs.Output(), "  cat plan.json | xformctl validate -\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Plan is valid\n")
		Writef(fs.Output(), "  1    Plan failed meta-schema validation\n")
	}
	return fs, flags
}

// HandleValidate executes the validate command.
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one plan file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	planPath := fs.Arg(0)
	plan, err := LoadDocument(planPath)
	if err != nil {
		return err
	}

	valid, errs, err := xform.ValidatePlan(plan)
	if err != nil {
		return fmt.Errorf("validating plan: %w", err)
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		result := map[string]any{"valid": valid, "violations": errs}
		if err := OutputStructured(result, flags.Format); err != nil {
			return err
		}
		if !valid {
			os.Exit(1)
		}
		return nil
	}

	if valid {
		Writef(os.Stdout, "✓ %s is a valid plan\n", FormatSpecPath(planPath))
		return nil
	}
	Writef(os.Stderr, "✗ %s failed meta-schema validation: %d violation(s)\n", FormatSpecPath(planPath), len(errs))
	for _, e := range errs {
		Writef(os.Stderr, "  %s\n", e)
	}
	os.Exit(1)
	return nil
}
