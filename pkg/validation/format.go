// Package validation checks user-supplied inputs before they reach the
// simulation: output formats, rent lists and parameter sanity warnings.
package validation

import (
	"fmt"

	"github.com/iwvelando/rental-forecast/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %q",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}
