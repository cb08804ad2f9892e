package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	m "zephyr.dev/pkg/playground/internal/model"
)

// ErrNoToolchain is returned when a compile is requested without a configured toolchain.
var ErrNoToolchain = errors.New("no toolchain configured")

// ToolchainLoader is a Compiler that loads the WebAssembly toolchain on the
// first compile. Failed loads are retried on the next compile.
type ToolchainLoader struct {
	files SourceTreeAdapter
	path  func() m.Path

	mu        sync.Mutex
	toolchain *WasmToolchain
}

// NewToolchainLoader creates a loader reading the toolchain binary at path()
// through files.
func NewToolchainLoader(files SourceTreeAdapter, path func() m.Path) *ToolchainLoader {
	return &ToolchainLoader{files: files, path: path}
}

// Compile implements Compiler.
func (l *ToolchainLoader) Compile(ctx context.Context, req CompileRequest) (m.Binary, error) {
	toolchain, err := l.load(ctx)
	if err != nil {
		return nil, err
	}

	return toolchain.Compile(ctx, req)
}

func (l *ToolchainLoader) load(ctx context.Context) (*WasmToolchain, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.toolchain != nil {
		return l.toolchain, nil
	}

	path := l.path()
	if path == "" {
		return nil, ErrNoToolchain
	}

	binary, err := l.files.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read toolchain", "path", path, "error", err)
		return nil, fmt.Errorf("failed to read toolchain: %w", err)
	}

	toolchain, err := NewWasmToolchain(ctx, binary)
	if err != nil {
		return nil, err
	}

	slog.Info("Loaded toolchain", "path", path, "size", len(binary))
	l.toolchain = toolchain

	return toolchain, nil
}

// Close releases the loaded toolchain, if any.
func (l *ToolchainLoader) Close(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.toolchain == nil {
		return nil
	}

	err := l.toolchain.Close(ctx)
	l.toolchain = nil

	return err
}
