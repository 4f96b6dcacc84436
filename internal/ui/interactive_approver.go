package ui

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vvka-141/fmgr/pkg/fmgr"
)

// ConfirmationWord is what the operator types to approve a destructive action.
const ConfirmationWord = "yes"

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It lists the affected paths and asks the
// operator to type ConfirmationWord.
type InteractiveApprover struct {
	prompter fmgr.Prompter
	output   io.Writer
}

// NewInteractiveApprover creates an InteractiveApprover that reads the answer
// through prompter, so it shares the session's input stream.
func NewInteractiveApprover(prompter fmgr.Prompter, output io.Writer) *InteractiveApprover {
	return &InteractiveApprover{prompter: prompter, output: output}
}

// RequestApproval prints the pending paths and waits for the confirmation word.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, kind fmgr.ActionKind, paths []string) (bool, error) {
	fmt.Fprintf(a.output, "\n⚠️  WARNING: You are about to %s %d item(s):\n", kind, len(paths))
	for _, p := range paths {
		fmt.Fprintf(a.output, " - %s\n", filepath.Base(p))
	}
	if kind == fmgr.ActionDelete {
		fmt.Fprintln(a.output, "Folders are removed with everything inside them. This cannot be undone!")
	}

	answer, err := a.prompter.ReadLine(ctx, fmt.Sprintf("Type '%s' to confirm: ", ConfirmationWord))
	if err != nil {
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	if strings.EqualFold(strings.TrimSpace(answer), ConfirmationWord) {
		fmt.Fprintln(a.output, "✓ Confirmed.")
		return true, nil
	}
	fmt.Fprintf(a.output, "✗ %s cancelled.\n", capitalize(kind.String()))
	return false, nil
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ fmgr.Approver = (*InteractiveApprover)(nil)
