package fmgr

import "context"

// Reporter renders session output for the operator.
type Reporter interface {
	ShowMenu(items []string)
	ShowDirectory(path string, entries []Entry)
	ShowSelection(paths []string)
	ShowActionResult(result ActionResult)
	ShowItemFailure(kind ActionKind, path string, err error)
	ShowError(message string)
	Notify(format string, args ...interface{})
}

// Prompter reads operator input one line at a time.
type Prompter interface {
	// ReadLine prints prompt and returns the next line without its line ending.
	// Returns io.EOF when the input is exhausted.
	ReadLine(ctx context.Context, prompt string) (string, error)

	// ReadPath prompts for a filesystem path. Implementations may offer
	// completion; the plain implementation behaves like ReadLine.
	ReadPath(ctx context.Context, prompt string) (string, error)
}
