// Where: cmd/lambda-cli/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru/lambda-function-cli/internal/command"
	"github.com/poruru/lambda-function-cli/internal/interaction"
	"github.com/poruru/lambda-function-cli/internal/platform"
)

// buildDependencies constructs all runtime dependencies required by the CLI.
// The platform clients are created lazily per command, so commands that
// never touch the network never build an AWS session.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:        os.Stdout,
		ErrOut:     os.Stderr,
		Prompter:   interaction.NewTerminalPrompter(),
		Getwd:      os.Getwd,
		NewClients: platform.NewClients,
	}
}
