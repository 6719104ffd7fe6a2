// Where: cmd/lambda-cli/main.go
// What: CLI entrypoint.
// Why: Execute lambda-cli commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru/lambda-function-cli/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
