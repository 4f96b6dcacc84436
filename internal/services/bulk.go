package services

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/fmgr/pkg/fmgr"
)

// Selection is the part of the selection set the executor drains.
type Selection interface {
	Paths() []string
	Consume() []string
}

// BulkExecutor applies copy, move and delete to the current selection.
// Individual item failures are reported and the batch continues.
// Thread-Safety: NOT safe for concurrent use; the session drives it from a
// single goroutine.
type BulkExecutor struct {
	gateway   fmgr.Gateway
	selection Selection
	journal   fmgr.Journal
	approver  fmgr.Approver
	reporter  fmgr.Reporter
	logger    fmgr.Logger
	sessionID string
	now       func() time.Time
}

// NewBulkExecutor creates a BulkExecutor with all dependencies injected.
// Nil dependencies are programmer errors and panic at startup.
func NewBulkExecutor(
	gateway fmgr.Gateway,
	selection Selection,
	journal fmgr.Journal,
	approver fmgr.Approver,
	reporter fmgr.Reporter,
	logger fmgr.Logger,
) *BulkExecutor {
	if gateway == nil {
		panic("gateway cannot be nil")
	}
	if selection == nil {
		panic("selection cannot be nil")
	}
	if journal == nil {
		panic("journal cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if reporter == nil {
		panic("reporter cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &BulkExecutor{
		gateway:   gateway,
		selection: selection,
		journal:   journal,
		approver:  approver,
		reporter:  reporter,
		logger:    logger,
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
}

// SessionID identifies this executor's entries in the journal.
func (e *BulkExecutor) SessionID() string {
	return e.sessionID
}

// Copy copies every selected path into destDir.
func (e *BulkExecutor) Copy(ctx context.Context, destDir string) (fmgr.ActionResult, error) {
	return e.transfer(ctx, fmgr.ActionCopy, destDir, e.gateway.Copy)
}

// Move moves every selected path into destDir.
func (e *BulkExecutor) Move(ctx context.Context, destDir string) (fmgr.ActionResult, error) {
	return e.transfer(ctx, fmgr.ActionMove, destDir, e.gateway.Move)
}

// transfer validates destDir before the selection is consumed, so a bad
// destination leaves the selection in place. An empty selection processes
// nothing whatever the destination.
func (e *BulkExecutor) transfer(ctx context.Context, kind fmgr.ActionKind, destDir string, op func(src, destDir string) error) (fmgr.ActionResult, error) {
	result := fmgr.ActionResult{Kind: kind}
	if len(e.selection.Paths()) == 0 {
		e.logger.Verbose("%s: nothing selected", kind)
		return result, nil
	}
	if !e.gateway.IsDirectory(destDir) {
		return result, fmt.Errorf("%w: %s", fmgr.ErrNotADirectory, destDir)
	}

	paths := e.selection.Consume()
	result.Processed = len(paths)
	e.logger.Verbose("%s %d item(s) to %s", kind, len(paths), destDir)

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if !e.gateway.Exists(p) {
			e.skip(ctx, &result, p, destDir)
			continue
		}
		if err := op(p, destDir); err != nil {
			e.fail(ctx, &result, p, destDir, err)
			continue
		}
		e.logger.Verbose("%s %s -> %s", kind.PastTense(), p, destDir)
		e.record(ctx, kind, p, destDir, fmgr.OutcomeOK, nil)
	}
	return result, nil
}

// Delete removes every selected path. Directories are removed recursively.
// When the approver declines, the selection is kept and ErrActionDeclined is
// returned.
func (e *BulkExecutor) Delete(ctx context.Context) (fmgr.ActionResult, error) {
	result := fmgr.ActionResult{Kind: fmgr.ActionDelete}

	if pending := e.selection.Paths(); len(pending) > 0 {
		approved, err := e.approver.RequestApproval(ctx, fmgr.ActionDelete, pending)
		if err != nil {
			return result, fmt.Errorf("delete approval: %w", err)
		}
		if !approved {
			return result, fmgr.ErrActionDeclined
		}
	}

	paths := e.selection.Consume()
	result.Processed = len(paths)
	e.logger.Verbose("delete %d item(s)", len(paths))

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		info, err := e.gateway.Lstat(p)
		if err != nil {
			e.skip(ctx, &result, p, "")
			continue
		}

		switch {
		case info.Mode()&fs.ModeSymlink != 0:
			// the link itself goes, never its target
			if !e.gateway.Exists(p) {
				e.skip(ctx, &result, p, "")
				continue
			}
			err = e.gateway.Remove(p)
		case info.Mode().IsRegular():
			err = e.gateway.Remove(p)
		case info.IsDir():
			err = e.gateway.RemoveAll(p)
		default:
			e.logger.Verbose("Skipping %s: unsupported file type %s", p, info.Mode().Type())
			e.skip(ctx, &result, p, "")
			continue
		}

		if err != nil {
			e.fail(ctx, &result, p, "", err)
			continue
		}
		e.logger.Verbose("deleted %s", p)
		e.record(ctx, fmgr.ActionDelete, p, "", fmgr.OutcomeOK, nil)
	}
	return result, nil
}

func (e *BulkExecutor) skip(ctx context.Context, result *fmgr.ActionResult, path, dest string) {
	result.Skipped = append(result.Skipped, path)
	e.logger.Verbose("Skipping %s: no longer exists", path)
	e.record(ctx, result.Kind, path, dest, fmgr.OutcomeSkipped, nil)
}

func (e *BulkExecutor) fail(ctx context.Context, result *fmgr.ActionResult, path, dest string, err error) {
	result.Failures = append(result.Failures, fmgr.ItemFailure{Path: path, Err: err})
	e.reporter.ShowItemFailure(result.Kind, path, err)
	e.logger.Error("%s %s: %v", result.Kind, path, err)
	e.record(ctx, result.Kind, path, dest, fmgr.OutcomeFailed, err)
}

// record writes a journal entry. Journal problems never fail the batch.
func (e *BulkExecutor) record(ctx context.Context, kind fmgr.ActionKind, path, dest string, outcome fmgr.Outcome, itemErr error) {
	entry := fmgr.JournalEntry{
		SessionID:   e.sessionID,
		Timestamp:   e.now().UTC(),
		Action:      kind.String(),
		Path:        path,
		Destination: dest,
		Outcome:     outcome,
	}
	if itemErr != nil {
		entry.Error = itemErr.Error()
	}
	if err := e.journal.Record(ctx, entry); err != nil {
		e.logger.Error("journal: %v", err)
	}
}
