package retry

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteBusyClassifier treats SQLITE_BUSY and SQLITE_LOCKED as transient.
// Everything else, including constraint and I/O errors, is fatal.
type SQLiteBusyClassifier struct{}

// IsTransient reports whether err came from lock contention.
func (SQLiteBusyClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return isBusyCode(sqliteErr.Code)
	}

	var code sqlite3.ErrNo
	if errors.As(err, &code) {
		return isBusyCode(code)
	}

	return false
}

func isBusyCode(code sqlite3.ErrNo) bool {
	return code == sqlite3.ErrBusy || code == sqlite3.ErrLocked
}

var _ Classifier = SQLiteBusyClassifier{}
