// Package controller renders the playground: console transcript, module
// listings and the interactive editor.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "zephyr.dev/pkg/playground/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeBatch StartMode = iota
	ModePlay
)

// RunHandler compiles and runs buffer on behalf of the interactive UI.
type RunHandler func(ctx context.Context, buffer string)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	buffer string
	onRun  RunHandler
}

// WithBatchMode sets the UI to print results and return.
func WithBatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBatch
	}
}

// WithPlayMode sets the UI to the interactive editor, seeded with buffer.
// onRun is called whenever the user asks for a run.
func WithPlayMode(buffer string, onRun RunHandler) StartOption {
	return func(c *StartConfig) {
		c.mode = ModePlay
		c.buffer = buffer
		c.onRun = onRun
	}
}

// ApplyStartOptions folds options over the default batch configuration.
func ApplyStartOptions(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeBatch}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// Mode returns the configured mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// Buffer returns the initial editor text of play mode.
func (c StartConfig) Buffer() string {
	return c.buffer
}

// RunHandler returns the play mode run callback, if any.
func (c StartConfig) RunHandler() RunHandler {
	return c.onRun
}

// UI displays the playground session.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayConsoleLine(ctx context.Context, line m.ConsoleLine)
	DisplayState(ctx context.Context, state m.State)
	DisplayExports(ctx context.Context, exports []m.Export)
	DisplayModule(ctx context.Context, root, path string, module m.ResolvedModule)
	DisplayModules(ctx context.Context, entries []m.ModuleEntry)
}

// NewUI picks the UI for cmd: the interactive TUI on a terminal, plain
// text otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout(), NewSimpleUI(cmd, true))
	}

	return NewSimpleUI(cmd, false)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
