package fmgr

import "context"

// Journal records every item a bulk action processed.
//
// Implementations:
//   - journal.SQLiteJournal: persistent history in a SQLite database
//   - journal.Nop: discards entries (journal disabled)
type Journal interface {
	Record(ctx context.Context, entry JournalEntry) error
	Close() error
}
