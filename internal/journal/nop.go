package journal

import (
	"context"

	"github.com/vvka-141/fmgr/pkg/fmgr"
)

// Nop discards every entry. It is used when no journal file is configured.
type Nop struct{}

func (Nop) Record(context.Context, fmgr.JournalEntry) error { return nil }

func (Nop) Close() error { return nil }

var _ fmgr.Journal = Nop{}
