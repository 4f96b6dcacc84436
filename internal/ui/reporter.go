package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/fmgr/internal/tui"
	"github.com/vvka-141/fmgr/pkg/fmgr"
)

// MenuTitle is printed above the menu.
const MenuTitle = "--- File Explorer ---"

// ConsoleReporter writes session output to a terminal or any io.Writer.
// With styling off the output is plain text, suitable for pipes and tests.
type ConsoleReporter struct {
	output io.Writer
	styled bool
}

// NewConsoleReporter creates a ConsoleReporter. styled enables lipgloss colors.
func NewConsoleReporter(output io.Writer, styled bool) *ConsoleReporter {
	return &ConsoleReporter{output: output, styled: styled}
}

func (r *ConsoleReporter) render(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}

func (r *ConsoleReporter) ShowMenu(items []string) {
	fmt.Fprintf(r.output, "\n%s\n", r.render(tui.TitleStyle, MenuTitle))
	for i, item := range items {
		fmt.Fprintf(r.output, "%d. %s\n", i+1, item)
	}
}

func (r *ConsoleReporter) ShowDirectory(path string, entries []fmgr.Entry) {
	fmt.Fprintf(r.output, "\nCurrent Directory: %s\n", r.render(tui.PathStyle, path))
	fmt.Fprintln(r.output, r.render(tui.RuleStyle, strings.Repeat("-", fmgr.ListingRuleWidth)))
	for _, e := range entries {
		if e.IsDir {
			fmt.Fprintf(r.output, "%d. %s Folder: %s\n", e.Index, tui.SymbolFolder, r.render(tui.FolderStyle, e.Name))
			continue
		}
		fmt.Fprintf(r.output, "%d. %s File: %s\n", e.Index, tui.SymbolFile, r.render(tui.FileStyle, e.Name))
	}
}

func (r *ConsoleReporter) ShowSelection(paths []string) {
	fmt.Fprintln(r.output, "Selected files:")
	for _, p := range paths {
		fmt.Fprintf(r.output, " - %s\n", filepath.Base(p))
	}
}

func (r *ConsoleReporter) ShowActionResult(result fmgr.ActionResult) {
	noun := "file(s)"
	if result.Kind == fmgr.ActionDelete {
		noun = "file(s)/folder(s)"
	}
	fmt.Fprintln(r.output, r.render(tui.SuccessStyle,
		fmt.Sprintf("%d %s %s", result.Processed, noun, result.Kind.PastTense())))

	if n := len(result.Skipped); n > 0 {
		fmt.Fprintln(r.output, r.render(tui.WarningStyle,
			fmt.Sprintf("%d item(s) skipped (no longer present)", n)))
	}
	if n := len(result.Failures); n > 0 {
		fmt.Fprintln(r.output, r.render(tui.ErrorStyle,
			fmt.Sprintf("%s %d item(s) failed", tui.SymbolCross, n)))
	}
}

func (r *ConsoleReporter) ShowItemFailure(kind fmgr.ActionKind, path string, err error) {
	fmt.Fprintln(r.output, r.render(tui.ErrorStyle,
		fmt.Sprintf("%s error: %s: %v", capitalize(kind.String()), filepath.Base(path), err)))
}

func (r *ConsoleReporter) ShowError(message string) {
	fmt.Fprintln(r.output, r.render(tui.ErrorStyle, message))
}

func (r *ConsoleReporter) Notify(format string, args ...interface{}) {
	fmt.Fprintf(r.output, format+"\n", args...)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var _ fmgr.Reporter = (*ConsoleReporter)(nil)
