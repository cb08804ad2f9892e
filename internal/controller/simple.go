package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "zephyr.dev/pkg/playground/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	input  *color.Color
	output *color.Color
	errors *color.Color
}

// NewSimpleUI creates a new SimpleUI. Console lines are coloured when
// colored is set.
func NewSimpleUI(cmd *cobra.Command, colored bool) *SimpleUI {
	s := &SimpleUI{
		cmd:    cmd,
		input:  color.New(color.FgCyan, color.Bold),
		output: color.New(color.Reset),
		errors: color.New(color.FgRed),
	}

	for _, c := range []*color.Color{s.input, s.output, s.errors} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayConsoleLine prints one transcript line.
func (s *SimpleUI) DisplayConsoleLine(ctx context.Context, line m.ConsoleLine) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = s.colorFor(line.Kind).Fprintln(s.cmd.OutOrStdout(), line.Content)
}

func (s *SimpleUI) colorFor(kind m.LineKind) *color.Color {
	switch kind {
	case m.LineInput:
		return s.input
	case m.LineError:
		return s.errors
	}

	return s.output
}

// DisplayState is a no-op; batch runs only show the transcript.
func (s *SimpleUI) DisplayState(_ context.Context, _ m.State) {}

// DisplayExports lists the callable exports of a binary that was not auto-run.
func (s *SimpleUI) DisplayExports(ctx context.Context, exports []m.Export) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(exports) == 0 {
		s.printf("no callable exports\n")
		return
	}

	s.printf("%s", renderExportsTable(exports))
}

// DisplayModule prints the files a module reference resolved to.
func (s *SimpleUI) DisplayModule(ctx context.Context, root, path string, module m.ResolvedModule) {
	if err := ctx.Err(); err != nil {
		return
	}

	kind := "aggregate"
	if module.IsStandalone {
		kind = "standalone"
	}

	s.printf("%s/%s (%s)\n", root, path, kind)
	s.printf("%s", renderModuleTable(module))
}

// DisplayModules prints the flattened tree listing.
func (s *SimpleUI) DisplayModules(ctx context.Context, entries []m.ModuleEntry) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", renderModulesTable(entries))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderExportsTable(exports []m.Export) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Export", "Arity", "Results"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, export := range exports {
		results := make([]string, 0, len(export.Results))
		for _, kind := range export.Results {
			results = append(results, string(kind))
		}

		table.Append([]string{export.Name, fmt.Sprintf("%d", export.Arity), strings.Join(results, ", ")})
	}

	table.Render()

	return buf.String()
}

func renderModuleTable(module m.ResolvedModule) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"ID", "File", "Kind", "Lines"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, file := range module.Files {
		table.Append([]string{
			fmt.Sprintf("%d", file.FileID),
			file.FileName,
			sourceKind(file.IsAsm),
			fmt.Sprintf("%d", countLines(file.Code)),
		})
	}

	table.Render()

	return buf.String()
}

func renderModulesTable(entries []m.ModuleEntry) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Root", "Module", "Files", "Kind"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, entry := range entries {
		kind := sourceKind(entry.IsAsm)
		if entry.Aggregate {
			kind = "aggregate"
		}

		table.Append([]string{entry.Root, entry.Path, fmt.Sprintf("%d", entry.Files), kind})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total %d", len(entries)), "", ""})
	table.Render()

	return buf.String()
}

func sourceKind(isAsm bool) string {
	if isAsm {
		return "asm"
	}

	return "source"
}

func countLines(code string) int {
	if code == "" {
		return 0
	}

	return strings.Count(strings.TrimRight(code, "\n"), "\n") + 1
}
