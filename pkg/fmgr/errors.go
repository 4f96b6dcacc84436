package fmgr

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure scenarios the session knows how to report.
// Callers distinguish them with errors.Is(); producers wrap them with context
// using fmt.Errorf("...: %w", ...).
//
// Example usage:
//
//	if err := browser.SetPath(p); errors.Is(err, fmgr.ErrAccessDenied) {
//	    // keep the previous directory and tell the operator
//	}
var (
	// ErrInvalidIndexFormat indicates index input that is not a (comma-separated)
	// list of integers.
	ErrInvalidIndexFormat = errors.New("invalid index format")

	// ErrIndexOutOfRange indicates a navigation index outside the current listing.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrAccessDenied indicates the operating system refused to list a directory.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotADirectory indicates a path that was expected to be a directory is not one.
	ErrNotADirectory = errors.New("not a directory")

	// ErrDestinationExists indicates a copy or move target that is already taken.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrRecursiveTarget indicates an attempt to copy or move a directory into itself.
	ErrRecursiveTarget = errors.New("cannot copy or move a directory into itself")

	// ErrActionDeclined indicates the operator declined a confirmation prompt.
	ErrActionDeclined = errors.New("action declined")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrJournalUnavailable indicates the action journal could not be opened or read.
	ErrJournalUnavailable = errors.New("journal unavailable")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrJournalUnavailable):
		return ExitJournalError
	}

	// cobra reports flag and argument misuse as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}
