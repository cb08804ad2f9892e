package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "zephyr.dev/pkg/playground/internal/model"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeLines   = 4 // title, separator, status, help
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	inputStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	outputStyle = lipgloss.NewStyle()
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea. Batch output goes through a SimpleUI;
// play mode runs the interactive editor.
type TUI struct {
	output io.Writer
	batch  *SimpleUI

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, batch *SimpleUI) *TUI {
	return &TUI{output: output, batch: batch}
}

// Start implements UI.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	cfg := ApplyStartOptions(options...)
	if cfg.mode != ModePlay {
		return t.batch.Start(ctx, options...)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("playground already started")
	}

	program := tea.NewProgram(
		newPlayModel(ctx, cfg.buffer, cfg.onRun),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("Playground UI stopped", "error", err)
		}
	}()

	t.program = program
	t.done = done

	return nil
}

// Close implements UI.
func (t *TUI) Close(ctx context.Context) {
	program, done := t.running()
	if program == nil {
		t.batch.Close(ctx)
		return
	}

	program.Quit()
	<-done

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()
}

// Wait implements UI. It returns once the user quits the playground.
func (t *TUI) Wait(ctx context.Context) {
	_, done := t.running()
	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DisplayConsoleLine implements UI.
func (t *TUI) DisplayConsoleLine(ctx context.Context, line m.ConsoleLine) {
	if program, _ := t.running(); program != nil {
		program.Send(lineMsg(line))
		return
	}

	t.batch.DisplayConsoleLine(ctx, line)
}

// DisplayState implements UI.
func (t *TUI) DisplayState(ctx context.Context, state m.State) {
	if program, _ := t.running(); program != nil {
		program.Send(stateMsg(state))
		return
	}

	t.batch.DisplayState(ctx, state)
}

// DisplayExports implements UI.
func (t *TUI) DisplayExports(ctx context.Context, exports []m.Export) {
	if program, _ := t.running(); program != nil {
		program.Send(exportsMsg(exports))
		return
	}

	t.batch.DisplayExports(ctx, exports)
}

// DisplayModule implements UI.
func (t *TUI) DisplayModule(ctx context.Context, root, path string, module m.ResolvedModule) {
	t.batch.DisplayModule(ctx, root, path, module)
}

// DisplayModules implements UI.
func (t *TUI) DisplayModules(ctx context.Context, entries []m.ModuleEntry) {
	t.batch.DisplayModules(ctx, entries)
}

func (t *TUI) running() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}

type lineMsg m.ConsoleLine
type stateMsg m.State
type exportsMsg []m.Export
type runDoneMsg struct{}

// playModel is the editor plus console transcript.
type playModel struct {
	ctx     context.Context
	onRun   RunHandler
	editor  textarea.Model
	console viewport.Model
	spinner spinner.Model

	lines     []m.ConsoleLine
	clearedAt uint64 // lines up to this ID are hidden
	state     m.State
	exports   []m.Export
	running   bool

	width  int
	height int
}

func newPlayModel(ctx context.Context, buffer string, onRun RunHandler) playModel {
	editor := textarea.New()
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.ShowLineNumbers = true
	editor.SetValue(buffer)
	editor.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = inputStyle

	pm := playModel{
		ctx:     ctx,
		onRun:   onRun,
		editor:  editor,
		console: viewport.New(defaultWidth, defaultHeight/2),
		spinner: sp,
	}

	return pm.resize(defaultWidth, defaultHeight)
}

func (pm playModel) Init() tea.Cmd {
	return textarea.Blink
}

func (pm playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return pm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)

	case lineMsg:
		pm.lines = append(pm.lines, m.ConsoleLine(msg))
		return pm.refresh(), nil

	case stateMsg:
		pm.state = m.State(msg)
		return pm, nil

	case exportsMsg:
		pm.exports = append([]m.Export{}, msg...)
		return pm, nil

	case runDoneMsg:
		pm.running = false
		return pm, nil

	case spinner.TickMsg:
		if !pm.running {
			return pm, nil
		}

		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	var cmd tea.Cmd
	pm.editor, cmd = pm.editor.Update(msg)

	return pm, cmd
}

//nolint:exhaustive // only the playground shortcuts are handled here
func (pm playModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return pm, tea.Quit

	case tea.KeyCtrlR:
		if pm.running || pm.onRun == nil {
			return pm, nil
		}

		pm.running = true
		pm.exports = nil

		return pm, tea.Batch(pm.spinner.Tick, pm.runCmd(pm.editor.Value()))

	case tea.KeyCtrlL:
		if n := len(pm.lines); n > 0 {
			pm.clearedAt = pm.lines[n-1].ID
		}

		return pm.refresh(), nil
	}

	var cmd tea.Cmd
	pm.editor, cmd = pm.editor.Update(msg)

	return pm, cmd
}

func (pm playModel) runCmd(buffer string) tea.Cmd {
	ctx, onRun := pm.ctx, pm.onRun

	return func() tea.Msg {
		onRun(ctx, buffer)
		return runDoneMsg{}
	}
}

func (pm playModel) resize(width, height int) playModel {
	pm.width = width
	pm.height = height

	body := height - chromeLines
	if body < 2 {
		body = 2
	}

	editorHeight := body / 2
	pm.editor.SetWidth(width)
	pm.editor.SetHeight(editorHeight)

	pm.console.Width = width
	pm.console.Height = body - editorHeight

	return pm.refresh()
}

func (pm playModel) refresh() playModel {
	pm.console.SetContent(pm.renderConsole())
	pm.console.GotoBottom()

	return pm
}

func (pm playModel) visibleLines() []m.ConsoleLine {
	var visible []m.ConsoleLine

	for _, line := range pm.lines {
		if line.ID > pm.clearedAt {
			visible = append(visible, line)
		}
	}

	return visible
}

func (pm playModel) renderConsole() string {
	var b strings.Builder

	for _, line := range pm.visibleLines() {
		b.WriteString(styleLine(line.Kind).Render(line.Content))
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func styleLine(kind m.LineKind) lipgloss.Style {
	switch kind {
	case m.LineInput:
		return inputStyle
	case m.LineError:
		return errorStyle
	}

	return outputStyle
}

func (pm playModel) View() string {
	var b strings.Builder

	header := "Zephyr playground"
	if pm.running {
		header = fmt.Sprintf("%s %s", pm.spinner.View(), header)
	}

	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(pm.editor.View())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", max(pm.width, 1))))
	b.WriteString("\n")
	b.WriteString(pm.console.View())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(pm.statusLine()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("ctrl+r run • ctrl+l clear • esc quit"))

	return b.String()
}

func (pm playModel) statusLine() string {
	status := pm.state.String()

	if pm.exports != nil && len(pm.exports) == 0 {
		status += " • no callable exports"
	}

	if len(pm.exports) > 1 {
		names := make([]string, 0, len(pm.exports))
		for _, export := range pm.exports {
			names = append(names, fmt.Sprintf("%s/%d", export.Name, export.Arity))
		}

		status += " • exports: " + strings.Join(names, ", ")
	}

	return status
}
