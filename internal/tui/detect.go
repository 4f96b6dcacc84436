package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for fmgr.
type Mode int

const (
	// ModePlain is used for scripts, piped input and terminals that opt out
	// of colors: line prompts only, no styling.
	ModePlain Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// DetectMode determines whether fmgr should style its output and offer the
// completing path prompt.
//
// Returns ModePlain if:
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdin or stdout is not a terminal (piped input, redirected output)
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModePlain
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModePlain
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
