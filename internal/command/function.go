// Where: internal/command/function.go
// What: Function command implementation.
// Why: Orchestrate the build→stage→publish pipeline from parsed flags.
package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/poruru/lambda-function-cli/internal/config"
	"github.com/poruru/lambda-function-cli/internal/deploy"
	"github.com/poruru/lambda-function-cli/internal/platform"
	"github.com/poruru/lambda-function-cli/internal/ui"
)

var errAborted = errors.New("aborted")

// runFunction executes the 'function' command.
func runFunction(cli CLI, deps Dependencies) int {
	console := consoleFor(cli, deps)
	flags := cli.Function

	if !flags.Upload && flags.Out == "" {
		return exitWithError(deps.ErrOut,
			errors.New("when uploading is not enabled, you must specify an output file (--out)"))
	}

	if err := confirmOverwrite(cli, deps, console); err != nil {
		if errors.Is(err, errAborted) {
			console.Warn("aborted")
			return 1
		}
		return exitWithError(deps.ErrOut, err)
	}

	opts, err := resolveOptions(cli, deps, console)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	ctx := context.Background()
	pipeline := &deploy.Pipeline{UI: console}
	if flags.Upload {
		functions, objects, err := deps.NewClients(ctx, opts)
		if err != nil {
			return exitWithError(deps.ErrOut, err)
		}
		pipeline.Publisher = &deploy.Publisher{
			Functions:    functions,
			Objects:      objects,
			WaitInterval: deps.WaitInterval,
		}
	}

	result, err := pipeline.Run(ctx, deploy.Request{
		Function:   flags.Name,
		SourcePath: flags.Source,
		OutPath:    flags.Out,
		Upload:     flags.Upload,
		Publish:    flags.Publish,
		Wait:       flags.Wait,
		Bucket:     flags.Bucket,
		ObjectKey:  flags.Key,
	})
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	if result.Phase == deploy.PhaseSkippedUpload {
		console.Success(fmt.Sprintf("Done! You can find your zip-file at: %s", flags.Out))
		return 0
	}

	rows := []ui.KeyValue{
		{Key: "Function", Value: result.FunctionArn},
		{Key: "Archive size", Value: humanize.IBytes(uint64(result.SizeBytes))},
		{Key: "Entries", Value: result.EntryCount},
	}
	if result.VersionID != "" {
		rows = append(rows, ui.KeyValue{Key: "Published version", Value: result.VersionID})
	}
	if result.StagingKey != "" {
		rows = append(rows, ui.KeyValue{Key: "Staged object", Value: result.StagingKey})
	}
	console.Block("Deployment summary", rows)

	if !flags.Wait && result.VersionID == "" {
		console.Info("Code upload done. Make sure to wait till the code is valid before using it.")
		return 0
	}
	console.Success("All done!")
	return 0
}

// confirmOverwrite asks before clobbering an existing --out file.
func confirmOverwrite(cli CLI, deps Dependencies, console ui.UserInterface) error {
	out := cli.Function.Out
	if out == "" {
		return nil
	}
	info, err := os.Stat(out)
	if err != nil || info.IsDir() {
		return nil
	}
	if !cli.Force {
		ok, err := deps.Prompter.Confirm("The output file already exists, overwrite?")
		if err != nil {
			return err
		}
		if !ok {
			return errAborted
		}
	}
	console.Warn(fmt.Sprintf("overwriting file: %s", out))
	return nil
}

// resolveOptions merges the global credential flags over any entry saved for
// the current working directory.
func resolveOptions(cli CLI, deps Dependencies, console ui.UserInterface) (platform.Options, error) {
	opts := platform.Options{
		Profile:         cli.Profile,
		Region:          cli.Region,
		AccessKeyID:     cli.AccessKeyID,
		SecretAccessKey: cli.SecretAccessKey,
		SessionToken:    cli.SessionToken,
	}

	path, err := storePath(deps)
	if err != nil {
		return platform.Options{}, err
	}
	store, err := config.Load(path)
	if err != nil {
		return platform.Options{}, err
	}

	cwd, err := deps.Getwd()
	if err != nil {
		return platform.Options{}, err
	}
	entry, matched, ok := store.Effective(cwd)
	if !ok || entry.IsZero() {
		return opts, nil
	}

	console.Info(fmt.Sprintf("Using saved configuration from %s", matched))
	if opts.Profile == "" {
		opts.Profile = entry.Profile
	}
	if opts.Region == "" {
		opts.Region = entry.Region
	}
	if opts.AccessKeyID == "" {
		opts.AccessKeyID = entry.AccessKeyID
		opts.SecretAccessKey = entry.SecretAccessKey
		opts.SessionToken = entry.SessionToken
	}
	return opts, nil
}

func storePath(deps Dependencies) (string, error) {
	if deps.ConfigPath != "" {
		return deps.ConfigPath, nil
	}
	return config.DefaultPath()
}
