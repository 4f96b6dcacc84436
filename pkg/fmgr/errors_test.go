package fmgr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/fmgr/pkg/fmgr"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, fmgr.ExitSuccess},
		{"unknown flag", errors.New("unknown flag: --foo"), fmgr.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), fmgr.ExitUsageError},
		{"unknown command", errors.New(`unknown command "frob" for "fmgr"`), fmgr.ExitUsageError},
		{"accepts args", errors.New("accepts 0 arg(s), received 1"), fmgr.ExitUsageError},
		{"missing flag value", errors.New("flag needs an argument: --config"), fmgr.ExitUsageError},
		{"invalid config", fmt.Errorf("load: %w", fmgr.ErrInvalidConfig), fmgr.ExitConfigError},
		{"journal", fmt.Errorf("open: %w", fmgr.ErrJournalUnavailable), fmgr.ExitJournalError},
		{"general error", errors.New("something went wrong"), fmgr.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmgr.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	sentinels := []error{
		fmgr.ErrInvalidIndexFormat,
		fmgr.ErrIndexOutOfRange,
		fmgr.ErrAccessDenied,
		fmgr.ErrNotADirectory,
		fmgr.ErrDestinationExists,
		fmgr.ErrRecursiveTarget,
	}

	for _, sentinel := range sentinels {
		wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", sentinel))
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, sentinel)
		}
	}
}
