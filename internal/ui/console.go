// Where: internal/ui/console.go
// What: Console output helpers with verbosity filtering.
// Why: Standardize CLI output and honor -q/-v without a global logger.
package ui

import (
	"fmt"
	"io"
)

// Level controls which messages a Console emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by commands and the
// deploy pipeline.
type UserInterface interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Success(msg string)
	Block(title string, rows []KeyValue)
}

// Console writes formatted output to a single writer, dropping messages
// below its minimum level.
type Console struct {
	Out      io.Writer
	MinLevel Level
}

// New creates a Console at the default Info level.
func New(out io.Writer) *Console {
	return &Console{Out: out, MinLevel: LevelInfo}
}

// NewWithLevel creates a Console with an explicit minimum level.
func NewWithLevel(out io.Writer, level Level) *Console {
	return &Console{Out: out, MinLevel: level}
}

func (c *Console) Debug(msg string) {
	if c.MinLevel > LevelDebug {
		return
	}
	fmt.Fprintf(c.Out, "[debug] %s\n", msg)
}

func (c *Console) Info(msg string) {
	if c.MinLevel > LevelInfo {
		return
	}
	fmt.Fprintln(c.Out, msg)
}

func (c *Console) Warn(msg string) {
	if c.MinLevel > LevelWarn {
		return
	}
	fmt.Fprintf(c.Out, "[warn] %s\n", msg)
}

func (c *Console) Error(msg string) {
	fmt.Fprintf(c.Out, "[error] %s\n", msg)
}

func (c *Console) Success(msg string) {
	if c.MinLevel > LevelInfo {
		return
	}
	fmt.Fprintf(c.Out, "✅ %s\n", msg)
}

// Block prints a titled group of key/value rows with indentation.
func (c *Console) Block(title string, rows []KeyValue) {
	if c.MinLevel > LevelInfo {
		return
	}
	fmt.Fprintln(c.Out)
	fmt.Fprintf(c.Out, "%s\n", title)
	for _, kv := range rows {
		fmt.Fprintf(c.Out, "   %-18s %v\n", kv.Key+":", kv.Value)
	}
	fmt.Fprintln(c.Out)
}
