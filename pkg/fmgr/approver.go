package fmgr

import "context"

// Approver handles operator confirmation before a destructive bulk action.
//
// Implementations:
//   - AutoApprover: approves immediately (the default, no prompt)
//   - InteractiveApprover: asks the operator to type "yes"
type Approver interface {
	// RequestApproval asks for confirmation before running kind against paths.
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred while asking (e.g. input closed)
	RequestApproval(ctx context.Context, kind ActionKind, paths []string) (bool, error)
}
