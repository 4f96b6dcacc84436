package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/fmgr/internal/tui/components"
)

// PathPrompt is a single-line path input with tab completion.
type PathPrompt struct {
	label     string
	input     textinput.Model
	completer *components.PathCompleter
	keys      KeyMap
	submitted bool
	cancelled bool
}

// NewPathPrompt creates a focused path prompt.
func NewPathPrompt(label string, completer *components.PathCompleter) PathPrompt {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 4096
	ti.Width = 60
	ti.Focus()

	return PathPrompt{
		label:     label,
		input:     ti,
		completer: completer,
		keys:      DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (p PathPrompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p PathPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, p.keys.Cancel):
			p.cancelled = true
			return p, tea.Quit
		case key.Matches(msg, p.keys.Submit):
			p.submitted = true
			return p, tea.Quit
		case key.Matches(msg, p.keys.Complete):
			p.input.SetValue(p.completer.Next(p.input.Value()))
			p.input.CursorEnd()
			return p, nil
		}
		p.completer.Reset()
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p PathPrompt) View() string {
	var b strings.Builder
	b.WriteString(PromptStyle.Render(p.label))

	if p.submitted || p.cancelled {
		// final frame stays on screen like a plain prompt line
		b.WriteString(p.input.Value())
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(InputStyle.Render(p.input.View()))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(p.keys.HelpText()))
	return b.String()
}

// Value returns the current input.
func (p PathPrompt) Value() string {
	return p.input.Value()
}

// Submitted reports whether the operator confirmed the input.
func (p PathPrompt) Submitted() bool {
	return p.submitted
}

// Cancelled reports whether the operator aborted the prompt.
func (p PathPrompt) Cancelled() bool {
	return p.cancelled
}
