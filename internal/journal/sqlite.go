// Package journal persists the items processed by bulk actions.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vvka-141/fmgr/internal/retry"
	"github.com/vvka-141/fmgr/pkg/fmgr"
)

// writeAttempts bounds retries when another session holds the write lock.
const writeAttempts = 5

// SQLiteJournal stores journal entries in a SQLite database.
type SQLiteJournal struct {
	db    *sql.DB
	retry *retry.Executor
}

// Open opens (creating if needed) the journal database at dbPath.
func Open(dbPath string) (*SQLiteJournal, error) {
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: create directory %s: %v", fmgr.ErrJournalUnavailable, dir, err)
		}
	}

	// _loc=auto parses DATETIME columns back into time.Time
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?_loc=auto")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fmgr.ErrJournalUnavailable, err)
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()

	if _, err = db.Exec("SELECT 1"); err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", fmgr.ErrJournalUnavailable, dbPath, err)
	}
	if _, err = db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("%w: enable WAL: %v", fmgr.ErrJournalUnavailable, err)
	}
	if _, err = db.Exec("PRAGMA synchronous=NORMAL"); err != nil {
		return nil, fmt.Errorf("%w: set synchronous mode: %v", fmgr.ErrJournalUnavailable, err)
	}
	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("%w: init schema: %v", fmgr.ErrJournalUnavailable, err)
	}

	return &SQLiteJournal{
		db:    db,
		retry: retry.NewExecutor(retry.SQLiteBusyClassifier{}, retry.NewExponentialBackoff(writeAttempts)),
	}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS actions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	timestamp DATETIME NOT NULL,
	action TEXT NOT NULL,
	path TEXT NOT NULL,
	destination TEXT,
	outcome TEXT NOT NULL,
	error_message TEXT
);

CREATE INDEX IF NOT EXISTS idx_actions_session ON actions(session_id);
CREATE INDEX IF NOT EXISTS idx_actions_timestamp ON actions(timestamp);
`

// Record inserts one entry, retrying while the database is locked.
func (j *SQLiteJournal) Record(ctx context.Context, entry fmgr.JournalEntry) error {
	err := j.retry.Execute(ctx, func(ctx context.Context) error {
		return j.insert(ctx, entry)
	})
	if err != nil {
		return fmt.Errorf("record %s %s: %w", entry.Action, entry.Path, err)
	}
	return nil
}

func (j *SQLiteJournal) insert(ctx context.Context, entry fmgr.JournalEntry) error {
	_, err := j.db.ExecContext(ctx, `
	INSERT INTO actions (session_id, timestamp, action, path, destination, outcome, error_message)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		entry.SessionID,
		entry.Timestamp,
		entry.Action,
		entry.Path,
		entry.Destination,
		string(entry.Outcome),
		entry.Error,
	)
	return err
}

// Recent returns up to limit entries, newest first.
func (j *SQLiteJournal) Recent(ctx context.Context, limit int) ([]fmgr.JournalEntry, error) {
	if limit <= 0 {
		limit = fmgr.DefaultJournalLimit
	}

	rows, err := j.db.QueryContext(ctx, `
	SELECT id, session_id, timestamp, action, path, destination, outcome, error_message
	FROM actions
	ORDER BY id DESC
	LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %v", fmgr.ErrJournalUnavailable, err)
	}
	defer rows.Close()

	var entries []fmgr.JournalEntry
	for rows.Next() {
		var e fmgr.JournalEntry
		var dest, outcome, errMsg sql.NullString
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Timestamp, &e.Action, &e.Path, &dest, &outcome, &errMsg); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", fmgr.ErrJournalUnavailable, err)
		}
		e.Destination = dest.String
		e.Outcome = fmgr.Outcome(outcome.String)
		e.Error = errMsg.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", fmgr.ErrJournalUnavailable, err)
	}
	return entries, nil
}

// Close closes the database.
func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}

var _ fmgr.Journal = (*SQLiteJournal)(nil)
