// Where: internal/command/config_cmd.go
// What: Configuration store subcommands.
// Why: Let users persist per-directory credential defaults, git-style.
package command

import (
	"fmt"
	"sort"

	"github.com/poruru/lambda-function-cli/internal/config"
	"github.com/poruru/lambda-function-cli/internal/ui"
)

// runConfigSet saves the global credential flags for the current directory.
func runConfigSet(cli CLI, deps Dependencies) int {
	console := consoleFor(cli, deps)

	path, err := storePath(deps)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	store, err := config.Load(path)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	cwd, err := deps.Getwd()
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	if _, exists := store.Exact(cwd); exists && !cli.Force {
		ok, err := deps.Prompter.Confirm(fmt.Sprintf("An entry already exists for %s, overwrite?", cwd))
		if err != nil {
			return exitWithError(deps.ErrOut, err)
		}
		if !ok {
			console.Warn("aborted")
			return 1
		}
	}

	entry := config.Entry{
		Profile:         cli.Profile,
		Region:          cli.Region,
		AccessKeyID:     cli.AccessKeyID,
		SecretAccessKey: cli.SecretAccessKey,
		SessionToken:    cli.SessionToken,
	}
	if err := store.Set(cwd, entry); err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	if err := config.Save(path, store); err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	console.Success(fmt.Sprintf("Successfully updated configuration for %s", cwd))
	return 0
}

// runConfigGet shows the effective configuration for a directory.
func runConfigGet(cli CLI, deps Dependencies) int {
	console := consoleFor(cli, deps)

	path, err := storePath(deps)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	store, err := config.Load(path)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	dir := cli.Config.Get.Path
	if dir == "" {
		if dir, err = deps.Getwd(); err != nil {
			return exitWithError(deps.ErrOut, err)
		}
	}

	entry, matched, ok := store.Effective(dir)
	if !ok {
		console.Info("No default configuration found.")
		return 0
	}
	console.Block(fmt.Sprintf("Configuration from %s", matched), entryRows(entry))
	return 0
}

// runConfigDelete removes the entry saved for a directory.
func runConfigDelete(cli CLI, deps Dependencies) int {
	console := consoleFor(cli, deps)

	path, err := storePath(deps)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	store, err := config.Load(path)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	dir := cli.Config.Delete.Path
	if dir == "" {
		if dir, err = deps.Getwd(); err != nil {
			return exitWithError(deps.ErrOut, err)
		}
	}

	if _, ok := store.Exact(dir); !ok {
		console.Info("No configuration found for the specified path.")
		return 0
	}
	if !cli.Force {
		ok, err := deps.Prompter.Confirm(fmt.Sprintf("Found config for %s, delete?", dir))
		if err != nil {
			return exitWithError(deps.ErrOut, err)
		}
		if !ok {
			console.Warn("aborted")
			return 1
		}
	}

	store.Delete(dir)
	if err := config.Save(path, store); err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	console.Success("Configuration deleted")
	return 0
}

// runConfigList prints every saved configuration.
func runConfigList(cli CLI, deps Dependencies) int {
	console := consoleFor(cli, deps)

	path, err := storePath(deps)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	store, err := config.Load(path)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	if len(store.Entries) == 0 {
		console.Info("Configuration file does not exist, nothing to do.")
		return 0
	}

	dirs := make([]string, 0, len(store.Entries))
	for dir := range store.Entries {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	for _, dir := range dirs {
		console.Block(dir, entryRows(store.Entries[dir]))
	}
	return 0
}

// entryRows renders an entry without leaking secret values.
func entryRows(entry config.Entry) []ui.KeyValue {
	rows := []ui.KeyValue{}
	if entry.Profile != "" {
		rows = append(rows, ui.KeyValue{Key: "profile_name", Value: entry.Profile})
	}
	if entry.Region != "" {
		rows = append(rows, ui.KeyValue{Key: "region_name", Value: entry.Region})
	}
	if entry.AccessKeyID != "" {
		rows = append(rows, ui.KeyValue{Key: "aws_access_key_id", Value: entry.AccessKeyID})
	}
	if entry.SecretAccessKey != "" {
		rows = append(rows, ui.KeyValue{Key: "aws_secret_access_key", Value: "(hidden)"})
	}
	if entry.SessionToken != "" {
		rows = append(rows, ui.KeyValue{Key: "aws_session_token", Value: "(hidden)"})
	}
	if len(rows) == 0 {
		rows = append(rows, ui.KeyValue{Key: "entry", Value: "(empty)"})
	}
	return rows
}
