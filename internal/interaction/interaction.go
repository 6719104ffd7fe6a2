// Where: internal/interaction/interaction.go
// What: Interactive primitives for CLI confirmation prompts.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Prompter asks the user for a yes/no confirmation.
type Prompter interface {
	Confirm(message string) (bool, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewTerminalPrompter returns a Prompter reading answers from stdin.
// When stdin is not a terminal the answer defaults to no, so scripted
// invocations never hang on a hidden prompt.
func NewTerminalPrompter() Prompter {
	return terminalPrompter{}
}

type terminalPrompter struct{}

func (terminalPrompter) Confirm(message string) (bool, error) {
	if !IsTerminal(os.Stdin) {
		return false, nil
	}
	reader := bufio.NewReader(os.Stdin)
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", message)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	trimmed := strings.TrimSpace(strings.ToLower(line))
	return trimmed == "y" || trimmed == "yes", nil
}
