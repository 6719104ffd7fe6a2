// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Keep failure reporting consistent across command handlers.
package command

import (
	"fmt"
	"io"
)

// exitWithError prints an error message to the error writer and returns
// exit code 1 for CLI error handling.
func exitWithError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "✗ %v\n", err)
	return 1
}
