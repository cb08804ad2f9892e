package domain

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	m "zephyr.dev/pkg/playground/internal/model"
	"zephyr.dev/pkg/playground/pkg"
)

// LogSink receives console output from the orchestrator and the harness.
type LogSink interface {
	Log(content string, kind m.LineKind)
}

// NopSink discards everything.
type NopSink struct{}

// Log implements LogSink.
func (NopSink) Log(string, m.LineKind) {}

// LineListener is notified of every line appended to a Console, in order.
type LineListener func(line m.ConsoleLine)

// Console is the append-only transcript of a playground session. Line IDs
// start at 1 and are never reused, whatever is later hidden from display.
type Console struct {
	mu        sync.Mutex
	lines     pkg.EventLog[m.ConsoleLine]
	listeners []LineListener
}

// NewConsole returns an empty console.
func NewConsole() *Console {
	return &Console{lines: pkg.NewEventLog[m.ConsoleLine]("console")}
}

// Subscribe registers fn for every line appended from now on. Listeners run
// while the console is locked and must not append to it.
func (c *Console) Subscribe(fn LineListener) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listeners = append(c.listeners, fn)
}

// Append adds a line and returns it with its assigned ID.
func (c *Console) Append(content string, kind m.LineKind) (m.ConsoleLine, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line := m.ConsoleLine{
		ID:      c.lines.Len() + 1,
		Content: content,
		Kind:    kind,
	}

	if _, err := c.lines.Append(line); err != nil {
		return m.ConsoleLine{}, fmt.Errorf("append console line: %w", err)
	}

	for _, fn := range c.listeners {
		fn(line)
	}

	return line, nil
}

// Log implements LogSink.
func (c *Console) Log(content string, kind m.LineKind) {
	if _, err := c.Append(content, kind); err != nil {
		slog.Warn("Dropped console line", "kind", kind, "content", content, "error", err)
	}
}

// Lines returns the whole transcript.
func (c *Console) Lines() []m.ConsoleLine {
	return c.Filter()
}

// Filter returns the lines of the given kinds, or all lines when none are given.
func (c *Console) Filter(kinds ...m.LineKind) []m.ConsoleLine {
	var lines []m.ConsoleLine

	_ = c.lines.Range(func(_ uint64, line m.ConsoleLine) error {
		if len(kinds) == 0 || slices.Contains(kinds, line.Kind) {
			lines = append(lines, line)
		}

		return nil
	})

	return lines
}

// Len returns the number of lines appended so far.
func (c *Console) Len() int {
	return int(c.lines.Len())
}

// Close stops accepting lines. The transcript stays readable.
func (c *Console) Close() error {
	return c.lines.Close()
}
