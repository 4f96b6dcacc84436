package fmgr

import (
	"fmt"
	"time"
)

// DirectoryState is a snapshot of one directory: its absolute path and the
// names of its immediate children, taken when the path was last set.
type DirectoryState struct {
	Path     string
	Children []string
}

// Entry is one row of a directory listing.
type Entry struct {
	// Index is the zero-based position in DirectoryState.Children.
	Index int
	Name  string
	// Path is the absolute path of the entry.
	Path  string
	IsDir bool
}

// ActionKind identifies a bulk action.
type ActionKind int

const (
	ActionCopy ActionKind = iota
	ActionMove
	ActionDelete
)

// String returns the lowercase action name used in logs and the journal.
func (k ActionKind) String() string {
	switch k {
	case ActionCopy:
		return "copy"
	case ActionMove:
		return "move"
	case ActionDelete:
		return "delete"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// PastTense returns the verb used in result reports ("copied", "moved", "deleted").
func (k ActionKind) PastTense() string {
	switch k {
	case ActionCopy:
		return "copied"
	case ActionMove:
		return "moved"
	case ActionDelete:
		return "deleted"
	default:
		return k.String()
	}
}

// ItemFailure records one path a bulk action could not process.
type ItemFailure struct {
	Path string
	Err  error
}

// ActionResult summarizes one bulk action invocation.
//
// Processed is the size of the selection at the moment it was consumed,
// regardless of how many items succeeded. Skipped lists paths that had
// vanished (or were of an unsupported type) and Failures the paths the
// gateway rejected.
type ActionResult struct {
	Kind      ActionKind
	Processed int
	Skipped   []string
	Failures  []ItemFailure
}

// Succeeded returns the number of items that were neither skipped nor failed.
func (r ActionResult) Succeeded() int {
	return r.Processed - len(r.Skipped) - len(r.Failures)
}

// Outcome is the per-item result recorded in the journal.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// JournalEntry is one processed item of a bulk action.
type JournalEntry struct {
	ID          int64
	SessionID   string
	Timestamp   time.Time
	Action      string
	Path        string
	Destination string
	Outcome     Outcome
	Error       string
}
