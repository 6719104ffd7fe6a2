// Where: internal/command/app_test.go
// What: Tests for the command dispatcher.
// Why: Pin exit codes, usage output, and command normalization.
package command

import (
	"strings"
	"testing"

	"github.com/poruru/lambda-function-cli/internal/ui"
)

func TestRunWithoutArgsShowsUsage(t *testing.T) {
	env := newTestEnv(t)
	code := Run(nil, env.deps)
	if code != 0 {
		t.Fatalf("exit code: %d", code)
	}
	if !strings.Contains(env.out.String(), "Usage:") {
		t.Fatalf("usage missing: %s", env.out.String())
	}
}

func TestRunVersionCommand(t *testing.T) {
	env := newTestEnv(t)
	code := Run([]string{"version"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code: %d, stderr: %s", code, env.errOut.String())
	}
	if strings.TrimSpace(env.out.String()) == "" {
		t.Fatal("version output empty")
	}
}

func TestRunUnknownCommandFails(t *testing.T) {
	env := newTestEnv(t)
	code := Run([]string{"bogus"}, env.deps)
	if code != 1 {
		t.Fatalf("exit code: %d", code)
	}
	if strings.TrimSpace(env.errOut.String()) == "" {
		t.Fatal("expected an error message on stderr")
	}
}

func TestNormalizeCommand(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "function <name> <source>", want: "function"},
		{in: "config set", want: "config set"},
		{in: "version", want: "version"},
	}
	for _, tc := range tests {
		if got := normalizeCommand(tc.in); got != tc.want {
			t.Fatalf("normalize %q: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestOutputLevelMapping(t *testing.T) {
	tests := []struct {
		name string
		cli  CLI
		want ui.Level
	}{
		{name: "default", cli: CLI{}, want: ui.LevelInfo},
		{name: "verbose", cli: CLI{Verbose: true}, want: ui.LevelDebug},
		{name: "quiet", cli: CLI{Quiet: 1}, want: ui.LevelWarn},
		{name: "double quiet", cli: CLI{Quiet: 2}, want: ui.LevelError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := outputLevel(tc.cli); got != tc.want {
				t.Fatalf("level: got %d want %d", got, tc.want)
			}
		})
	}
}
