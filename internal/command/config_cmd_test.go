// Where: internal/command/config_cmd_test.go
// What: Tests for the config subcommands.
// Why: Cover set/get/delete/list against an injected store path.
package command

import (
	"strings"
	"testing"
)

func TestConfigSetThenGet(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"-p", "dev", "-r", "eu-west-1", "config", "set", "-f"}, env.deps)
	if code != 0 {
		t.Fatalf("set exit code: %d, stderr: %s", code, env.errOut.String())
	}
	if !strings.Contains(env.out.String(), "Successfully updated configuration") {
		t.Fatalf("set output: %s", env.out.String())
	}

	env.out.Reset()
	code = Run([]string{"config", "get"}, env.deps)
	if code != 0 {
		t.Fatalf("get exit code: %d, stderr: %s", code, env.errOut.String())
	}
	got := env.out.String()
	if !strings.Contains(got, "profile_name") || !strings.Contains(got, "dev") {
		t.Fatalf("get output missing entry: %s", got)
	}
	if !strings.Contains(got, "eu-west-1") {
		t.Fatalf("get output missing region: %s", got)
	}
}

func TestConfigGetWithoutEntry(t *testing.T) {
	env := newTestEnv(t)
	code := Run([]string{"config", "get"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code: %d", code)
	}
	if !strings.Contains(env.out.String(), "No default configuration found.") {
		t.Fatalf("output: %s", env.out.String())
	}
}

func TestConfigSetPromptsBeforeOverwrite(t *testing.T) {
	env := newTestEnv(t)
	if code := Run([]string{"-p", "dev", "config", "set", "-f"}, env.deps); code != 0 {
		t.Fatalf("first set: %d", code)
	}

	env.prompter.answer = false
	code := Run([]string{"-p", "prod", "config", "set"}, env.deps)
	if code != 1 {
		t.Fatalf("declined overwrite exit code: %d", code)
	}
	if len(env.prompter.asked) != 1 {
		t.Fatalf("expected one confirmation, got %v", env.prompter.asked)
	}

	env.out.Reset()
	if code := Run([]string{"config", "get"}, env.deps); code != 0 {
		t.Fatalf("get: %d", code)
	}
	if !strings.Contains(env.out.String(), "dev") {
		t.Fatalf("original entry lost: %s", env.out.String())
	}
}

func TestConfigDeleteRemovesEntry(t *testing.T) {
	env := newTestEnv(t)
	if code := Run([]string{"-p", "dev", "config", "set", "-f"}, env.deps); code != 0 {
		t.Fatalf("set: %d", code)
	}

	env.out.Reset()
	code := Run([]string{"config", "delete", "-f"}, env.deps)
	if code != 0 {
		t.Fatalf("delete exit code: %d, stderr: %s", code, env.errOut.String())
	}
	if !strings.Contains(env.out.String(), "Configuration deleted") {
		t.Fatalf("delete output: %s", env.out.String())
	}

	env.out.Reset()
	if code := Run([]string{"config", "get"}, env.deps); code != 0 {
		t.Fatalf("get: %d", code)
	}
	if !strings.Contains(env.out.String(), "No default configuration found.") {
		t.Fatalf("entry survived delete: %s", env.out.String())
	}
}

func TestConfigDeleteWithoutEntry(t *testing.T) {
	env := newTestEnv(t)
	code := Run([]string{"config", "delete", "-f"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code: %d", code)
	}
	if !strings.Contains(env.out.String(), "No configuration found") {
		t.Fatalf("output: %s", env.out.String())
	}
}

func TestConfigListShowsAllEntries(t *testing.T) {
	env := newTestEnv(t)
	if code := Run([]string{"-p", "dev", "-r", "eu-west-1", "config", "set", "-f"}, env.deps); code != 0 {
		t.Fatalf("set: %d", code)
	}

	env.out.Reset()
	code := Run([]string{"config", "list"}, env.deps)
	if code != 0 {
		t.Fatalf("list exit code: %d", code)
	}
	got := env.out.String()
	if !strings.Contains(got, "dev") || !strings.Contains(got, "eu-west-1") {
		t.Fatalf("list output missing entry: %s", got)
	}
}

func TestConfigListSecretsAreHidden(t *testing.T) {
	env := newTestEnv(t)
	code := Run([]string{
		"--aws-access-key-id", "AKIA123",
		"--aws-secret-access-key", "supersecret",
		"config", "set", "-f",
	}, env.deps)
	if code != 0 {
		t.Fatalf("set: %d", code)
	}

	env.out.Reset()
	if code := Run([]string{"config", "list"}, env.deps); code != 0 {
		t.Fatalf("list: %d", code)
	}
	got := env.out.String()
	if strings.Contains(got, "supersecret") {
		t.Fatalf("secret leaked in list output: %s", got)
	}
	if !strings.Contains(got, "(hidden)") {
		t.Fatalf("hidden marker missing: %s", got)
	}
}

func TestConfigureAliasDispatches(t *testing.T) {
	env := newTestEnv(t)
	code := Run([]string{"configure", "list"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code: %d, stderr: %s", code, env.errOut.String())
	}
}
