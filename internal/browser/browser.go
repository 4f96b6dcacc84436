// Package browser tracks the directory the operator is looking at.
package browser

import (
	"fmt"
	"path/filepath"

	"github.com/vvka-141/fmgr/internal/logging"
	"github.com/vvka-141/fmgr/pkg/fmgr"
)

// Browser owns the current DirectoryState. The state is only ever replaced
// as a whole, after the new directory has been listed successfully.
type Browser struct {
	gw     fmgr.Gateway
	state  fmgr.DirectoryState
	logger fmgr.Logger
}

// New creates a Browser positioned at startPath.
func New(gw fmgr.Gateway, startPath string, logger fmgr.Logger) (*Browser, error) {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	b := &Browser{gw: gw, logger: logger}
	if err := b.SetPath(startPath); err != nil {
		return nil, err
	}
	return b, nil
}

// SetPath lists path and makes it the current directory. On error the
// previous state is left untouched.
func (b *Browser) SetPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if !b.gw.IsDirectory(abs) {
		return fmt.Errorf("%w: %s", fmgr.ErrNotADirectory, abs)
	}

	children, err := b.gw.ListEntries(abs)
	if err != nil {
		return err
	}

	b.state = fmgr.DirectoryState{Path: abs, Children: children}
	b.logger.Verbose("Listed %s (%d entries)", abs, len(children))
	return nil
}

// Refresh re-lists the current directory.
func (b *Browser) Refresh() error {
	return b.SetPath(b.state.Path)
}

// ListCurrent returns the rows of the current listing.
func (b *Browser) ListCurrent() []fmgr.Entry {
	entries := make([]fmgr.Entry, 0, len(b.state.Children))
	for i, name := range b.state.Children {
		p := filepath.Join(b.state.Path, name)
		entries = append(entries, fmgr.Entry{
			Index: i,
			Name:  name,
			Path:  p,
			IsDir: b.gw.IsDirectory(p),
		})
	}
	return entries
}

// Descend enters the directory at index. It returns false without error when
// the entry is not a directory.
func (b *Browser) Descend(index int) (bool, error) {
	target, ok := b.Resolve(index)
	if !ok {
		return false, fmt.Errorf("%w: %d (have %d entries)", fmgr.ErrIndexOutOfRange, index, len(b.state.Children))
	}
	if !b.gw.IsDirectory(target) {
		return false, nil
	}
	if err := b.SetPath(target); err != nil {
		return false, err
	}
	return true, nil
}

// Ascend moves to the parent directory. At a filesystem root it does nothing
// and returns false.
func (b *Browser) Ascend() (bool, error) {
	parent := filepath.Dir(b.state.Path)
	if parent == b.state.Path {
		return false, nil
	}
	if err := b.SetPath(parent); err != nil {
		return false, err
	}
	return true, nil
}

// Resolve returns the absolute path of the entry at index.
func (b *Browser) Resolve(index int) (string, bool) {
	name, ok := b.Name(index)
	if !ok {
		return "", false
	}
	return filepath.Join(b.state.Path, name), true
}

// Name returns the entry name at index.
func (b *Browser) Name(index int) (string, bool) {
	if index < 0 || index >= len(b.state.Children) {
		return "", false
	}
	return b.state.Children[index], true
}

// Path returns the current directory.
func (b *Browser) Path() string {
	return b.state.Path
}

// State returns a copy of the current DirectoryState.
func (b *Browser) State() fmgr.DirectoryState {
	children := make([]string, len(b.state.Children))
	copy(children, b.state.Children)
	return fmgr.DirectoryState{Path: b.state.Path, Children: children}
}
