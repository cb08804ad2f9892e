package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "zephyr.dev/pkg/playground/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd, false), &buf
}

func TestSimpleUI_DisplayConsoleLine(t *testing.T) {
	ui, buf := newTestSimpleUI()
	ctx := context.Background()

	ui.DisplayConsoleLine(ctx, m.ConsoleLine{ID: 1, Content: "> main()", Kind: m.LineInput})
	ui.DisplayConsoleLine(ctx, m.ConsoleLine{ID: 2, Content: "42", Kind: m.LineOutput})
	ui.DisplayConsoleLine(ctx, m.ConsoleLine{ID: 3, Content: "boom", Kind: m.LineError})

	assert.Equal(t, "> main()\n42\nboom\n", buf.String())
}

func TestSimpleUI_DisplayConsoleLine_CanceledContext(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui.DisplayConsoleLine(ctx, m.ConsoleLine{ID: 1, Content: "dropped"})
	assert.Empty(t, buf.String())
	assert.Error(t, ui.Start(ctx))
}

func TestSimpleUI_DisplayExports(t *testing.T) {
	tests := []struct {
		name         string
		exports      []m.Export
		wantContains []string
	}{
		{
			name:         "no exports",
			exports:      nil,
			wantContains: []string{"no callable exports"},
		},
		{
			name: "several exports",
			exports: []m.Export{
				{Name: "add", Arity: 2, Results: []m.ValueKind{m.ValueI32}},
				{Name: "pair", Arity: 0, Results: []m.ValueKind{m.ValueI64, m.ValueF64}},
			},
			wantContains: []string{"EXPORT", "ARITY", "add", "2", "pair", "i64, f64"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newTestSimpleUI()
			ui.DisplayExports(context.Background(), tt.exports)

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestSimpleUI_DisplayModule(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayModule(context.Background(), "core", "mem", m.ResolvedModule{
		Files: []m.ResolvedFile{
			{Code: "a\nb\n", FileName: "utils", FileID: 3},
			{Code: "i32.load", FileName: "raw", FileID: 4, IsAsm: true},
		},
	})

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "core/mem (aggregate)\n"), out)
	assert.Contains(t, out, "utils")
	assert.Contains(t, out, "asm")
	assert.Contains(t, out, "source")

	buf.Reset()
	ui.DisplayModule(context.Background(), "std", "r/wasi", m.ResolvedModule{
		Files:        []m.ResolvedFile{{Code: "x", FileName: "wasi", FileID: 1}},
		IsStandalone: true,
	})
	assert.True(t, strings.HasPrefix(buf.String(), "std/r/wasi (standalone)\n"))
}

func TestSimpleUI_DisplayModules(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayModules(context.Background(), []m.ModuleEntry{
		{Root: "std", Path: "r/wasi", Files: 1},
		{Root: "core", Path: "mem", Files: 3, Aggregate: true},
		{Root: "core", Path: "mem/raw", Files: 1, IsAsm: true},
	})

	out := buf.String()
	for _, want := range []string{"ROOT", "MODULE", "r/wasi", "mem/raw", "aggregate", "asm"} {
		assert.Contains(t, out, want)
	}

	assert.Contains(t, strings.ToUpper(out), "TOTAL 3")
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"", 0},
		{"one", 1},
		{"one\n", 1},
		{"one\ntwo", 2},
		{"one\ntwo\n\n", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, countLines(tt.code), "%q", tt.code)
	}
}

func TestApplyStartOptions(t *testing.T) {
	cfg := ApplyStartOptions()
	assert.Equal(t, ModeBatch, cfg.Mode())
	assert.Nil(t, cfg.RunHandler())

	var got string

	cfg = ApplyStartOptions(WithBatchMode(), WithPlayMode("seed", func(_ context.Context, buffer string) {
		got = buffer
	}))
	assert.Equal(t, ModePlay, cfg.Mode())
	assert.Equal(t, "seed", cfg.Buffer())

	require.NotNil(t, cfg.RunHandler())
	cfg.RunHandler()(context.Background(), "edited")
	assert.Equal(t, "edited", got)
}

func TestNewUI_NonTerminalIsSimple(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	_, ok := NewUI(cmd, false).(*SimpleUI)
	assert.True(t, ok)

	_, ok = NewUI(cmd, true).(*TUI)
	assert.True(t, ok)

	assert.False(t, IsTTY(&bytes.Buffer{}))
}
