package commands

import (
	"fmt"
	"os"

	"github.com/hollowcore/xform/planschema"
)

// HandleSchema prints the bundled Transform Plan meta-schema verbatim to
// stdout.
func HandleSchema(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("schema command takes no arguments")
	}
	_, err := os.Stdout.Write(planschema.MetaSchemaJSON)
	return err
}
