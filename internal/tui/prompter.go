package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/fmgr/internal/tui/components"
	"github.com/vvka-141/fmgr/pkg/fmgr"
)

// Prompter decorates a line prompter with a completing path prompt.
// Plain line reads are delegated unchanged.
type Prompter struct {
	line   fmgr.Prompter
	lister components.Lister
	base   func() string
	input  io.Reader
	output io.Writer
}

// NewPrompter creates a Prompter. base returns the directory relative paths
// are completed against, normally the browser's current directory.
func NewPrompter(line fmgr.Prompter, lister components.Lister, base func() string, input io.Reader, output io.Writer) *Prompter {
	return &Prompter{
		line:   line,
		lister: lister,
		base:   base,
		input:  input,
		output: output,
	}
}

// ReadLine delegates to the wrapped prompter.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	return p.line.ReadLine(ctx, prompt)
}

// ReadPath runs the path prompt until the operator confirms or cancels.
// Cancelling yields fmgr.ErrActionDeclined.
func (p *Prompter) ReadPath(ctx context.Context, prompt string) (string, error) {
	completer := components.NewPathCompleter(p.lister, p.base(), true)
	program := tea.NewProgram(
		NewPathPrompt(prompt, completer),
		tea.WithContext(ctx),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
	)

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("path prompt: %w", err)
	}

	model, ok := final.(PathPrompt)
	if !ok || model.Cancelled() {
		return "", fmt.Errorf("%w: path prompt cancelled", fmgr.ErrActionDeclined)
	}
	return model.Value(), nil
}

var _ fmgr.Prompter = (*Prompter)(nil)
