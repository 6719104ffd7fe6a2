// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/poruru/lambda-function-cli/internal/deploy"
	"github.com/poruru/lambda-function-cli/internal/interaction"
	"github.com/poruru/lambda-function-cli/internal/meta"
	"github.com/poruru/lambda-function-cli/internal/platform"
	"github.com/poruru/lambda-function-cli/internal/ui"
	"github.com/poruru/lambda-function-cli/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. It enables swapping the platform clients and the prompter in
// tests.
type Dependencies struct {
	Out        io.Writer
	ErrOut     io.Writer
	Prompter   interaction.Prompter
	Getwd      func() (string, error)
	ConfigPath string // empty means the default store location
	NewClients func(context.Context, platform.Options) (deploy.FunctionAPI, deploy.ObjectStore, error)
	// WaitInterval overrides the release poll interval; zero means 1s.
	WaitInterval time.Duration
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Profile         string `short:"p" help:"The AWS CLI profile to use if available."`
	Region          string `short:"r" help:"The AWS region to use."`
	AccessKeyID     string `name:"aws-access-key-id" help:"Use an explicit API key."`
	SecretAccessKey string `name:"aws-secret-access-key" help:"Use an explicit API key."`
	SessionToken    string `name:"aws-session-token" help:"Use a session token."`
	Quiet           int    `short:"q" type:"counter" help:"Only print warnings and errors. Pass twice to silence warnings."`
	Verbose         bool   `short:"v" help:"Increase output information."`
	Force           bool   `short:"f" help:"Bypass confirmation and safety prompts."`

	Function FunctionCmd `cmd:"" aliases:"func" help:"Build and optionally upload AWS Lambda function code."`
	Config   ConfigCmd   `cmd:"" aliases:"configure" help:"Set or read the saved configuration."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

type (
	// FunctionCmd defines the function command arguments and flags.
	FunctionCmd struct {
		Upload  bool   `default:"true" negatable:"" help:"Upload the build result to AWS."`
		Publish bool   `help:"Publish a new function version."`
		Bucket  string `name:"aws-s3-bucket" help:"Stage the archive through this S3 bucket."`
		Key     string `name:"aws-s3-key" help:"Object key to use when staging. Generated when omitted."`
		Out     string `short:"o" type:"path" help:"Write the built zip to this file. Required with --no-upload."`
		Wait    bool   `default:"true" negatable:"" help:"Wait for the new code to become valid."`

		Name   string `arg:"" help:"The AWS function name or ARN."`
		Source string `arg:"" type:"path" help:"The source file or directory to package."`
	}

	// ConfigCmd groups the configuration store subcommands. Values for
	// 'set' come from the global credential flags.
	ConfigCmd struct {
		Set    ConfigSetCmd    `cmd:"" help:"Save the global credential flags as defaults for the current directory."`
		Get    ConfigGetCmd    `cmd:"" help:"Show the effective configuration for a directory."`
		Delete ConfigDeleteCmd `cmd:"" help:"Delete the configuration saved for a directory."`
		List   ConfigListCmd   `cmd:"" help:"Print all saved configurations."`
	}

	ConfigSetCmd struct{}

	ConfigGetCmd struct {
		Path string `short:"P" type:"path" help:"Resolve for this directory instead of the current one."`
	}

	ConfigDeleteCmd struct {
		Path string `short:"P" type:"path" help:"Delete the entry for this directory instead of the current one."`
	}

	ConfigListCmd struct{}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Prompter == nil {
		deps.Prompter = interaction.NewTerminalPrompter()
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	if deps.NewClients == nil {
		deps.NewClients = platform.NewClients
	}

	if len(args) == 0 {
		return runNoArgs(deps.Out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("A simple CLI for building and publishing AWS Lambda functions."),
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	command := normalizeCommand(ctx.Command())
	if exitCode, handled := dispatchCommand(command, cli, deps); handled {
		return exitCode
	}

	return exitWithError(deps.ErrOut, fmt.Errorf("unknown command: %s", command))
}

type commandHandler func(CLI, Dependencies) int

func dispatchCommand(command string, cli CLI, deps Dependencies) (int, bool) {
	handlers := map[string]commandHandler{
		"function":      runFunction,
		"config set":    runConfigSet,
		"config get":    runConfigGet,
		"config delete": runConfigDelete,
		"config list":   runConfigList,
		"version":       func(cli CLI, deps Dependencies) int { return runVersion(cli, deps.Out) },
	}

	if handler, ok := handlers[command]; ok {
		return handler(cli, deps), true
	}
	return 1, false
}

// normalizeCommand strips positional-argument placeholders from Kong's
// command path, e.g. "function <name> <source>" becomes "function".
func normalizeCommand(command string) string {
	fields := strings.Fields(command)
	kept := fields[:0]
	for _, field := range fields {
		if strings.HasPrefix(field, "<") {
			continue
		}
		kept = append(kept, field)
	}
	return strings.Join(kept, " ")
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, out io.Writer) int {
	ui.New(out).Info(version.GetVersion())
	return 0
}

// runNoArgs handles the case when the CLI is invoked without arguments.
func runNoArgs(out io.Writer) int {
	console := ui.New(out)
	console.Info("Usage:")
	console.Info(fmt.Sprintf("  %s function <function> <source> [flags]", meta.AppName))
	console.Info(fmt.Sprintf("  %s config <set|get|delete|list>", meta.AppName))
	console.Info("")
	console.Info(fmt.Sprintf("Try: %s function --help", meta.AppName))
	return 0
}

// outputLevel maps the -q/-v global flags to a console level.
func outputLevel(cli CLI) ui.Level {
	switch {
	case cli.Verbose:
		return ui.LevelDebug
	case cli.Quiet >= 2:
		return ui.LevelError
	case cli.Quiet == 1:
		return ui.LevelWarn
	}
	return ui.LevelInfo
}

func consoleFor(cli CLI, deps Dependencies) ui.UserInterface {
	return ui.NewWithLevel(deps.Out, outputLevel(cli))
}
