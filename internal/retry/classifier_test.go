package retry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestSQLiteBusyClassifier(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, true},
		{"locked", sqlite3.Error{Code: sqlite3.ErrLocked}, true},
		{"wrapped busy", fmt.Errorf("record copy /a: %w", sqlite3.Error{Code: sqlite3.ErrBusy}), true},
		{"bare errno", sqlite3.ErrBusy, true},
		{"constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, false},
		{"readonly", sqlite3.Error{Code: sqlite3.ErrReadonly}, false},
		{"plain error", errors.New("database is locked"), false},
	}

	var c SQLiteBusyClassifier
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsTransient(tt.err))
		})
	}
}
