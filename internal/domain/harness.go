package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"zephyr.dev/pkg/playground/internal/adapter"
	m "zephyr.dev/pkg/playground/internal/model"
)

// Harness executes compiled binaries and reports what happened as console lines.
type Harness interface {
	// Run instantiates binary and, when it has exactly one callable export,
	// invokes it. The returned error is an instantiation failure, already
	// reported to the sink; traps during invocation are only reported.
	Run(ctx context.Context, binary m.Binary) ([]m.Export, error)
}

type harness struct {
	sandbox adapter.Sandbox
	sink    LogSink
}

// NewHarness constructs a Harness. A nil sink discards output.
func NewHarness(sandbox adapter.Sandbox, sink LogSink) Harness {
	if sink == nil {
		sink = NopSink{}
	}

	return &harness{sandbox: sandbox, sink: sink}
}

func (h *harness) Run(ctx context.Context, binary m.Binary) ([]m.Export, error) {
	stdout := newLineWriter(h.sink)

	inst, err := h.sandbox.Instantiate(ctx, binary, stdout)
	if err != nil {
		slog.Error("Failed to instantiate binary", "size", len(binary), "error", err)
		h.sink.Log(fmt.Sprintf("instantiation failed: %v", err), m.LineError)

		return nil, fmt.Errorf("instantiate binary: %w", err)
	}

	defer func() {
		if err := inst.Close(ctx); err != nil {
			slog.Warn("Failed to close instance", "error", err)
		}
	}()

	exports := inst.ListCallableExports()
	slog.Debug("Instantiated binary", "exports", len(exports))

	if len(exports) != 1 {
		return exports, nil
	}

	name := exports[0].Name
	h.sink.Log(fmt.Sprintf("> %s()", name), m.LineInput)

	result, err := invoke(ctx, inst, name)

	stdout.Flush()

	if err != nil {
		slog.Error("Export trapped", "export", name, "error", err)
		h.sink.Log(err.Error(), m.LineError)

		return exports, nil
	}

	h.sink.Log(result, m.LineOutput)

	return exports, nil
}

func invoke(ctx context.Context, inst adapter.Instance, name string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s() panicked: %v", name, r)
		}
	}()

	return inst.Invoke(ctx, name)
}

// lineWriter turns guest stdout into output lines, one per newline.
type lineWriter struct {
	mu   sync.Mutex
	sink LogSink
	buf  bytes.Buffer
}

func newLineWriter(sink LogSink) *lineWriter {
	return &lineWriter{sink: sink}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)

	for {
		idx := bytes.IndexByte(w.buf.Bytes(), '\n')
		if idx < 0 {
			break
		}

		line := string(w.buf.Next(idx + 1))
		w.sink.Log(strings.TrimRight(line, "\r\n"), m.LineOutput)
	}

	return len(p), nil
}

// Flush emits a trailing partial line.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() == 0 {
		return
	}

	w.sink.Log(strings.TrimRight(w.buf.String(), "\r"), m.LineOutput)
	w.buf.Reset()
}
