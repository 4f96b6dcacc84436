package ui

import (
	"context"

	"github.com/vvka-141/fmgr/pkg/fmgr"
)

// AutoApprover approves every request without asking. It is the default
// when --confirm-delete is not set.
type AutoApprover struct{}

// NewAutoApprover creates a new AutoApprover.
func NewAutoApprover() *AutoApprover {
	return &AutoApprover{}
}

// RequestApproval always approves.
func (a *AutoApprover) RequestApproval(ctx context.Context, kind fmgr.ActionKind, paths []string) (bool, error) {
	return true, nil
}

// Verify AutoApprover implements the Approver interface at compile time
var _ fmgr.Approver = (*AutoApprover)(nil)
