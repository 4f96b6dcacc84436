package fmgr

import "io/fs"

// Gateway is the filesystem primitive layer every directory listing and bulk
// action goes through. Paths are absolute.
//
// Implementations:
//   - filesystem.Gateway backed by go-billy osfs (production) or memfs (tests)
type Gateway interface {
	// ListEntries returns the names of the immediate children of path in the
	// backend's native order. Fails with ErrNotADirectory or ErrAccessDenied.
	ListEntries(path string) ([]string, error)

	// IsDirectory reports whether path is a directory, following symlinks.
	IsDirectory(path string) bool

	// Exists reports whether path exists, following symlinks.
	Exists(path string) bool

	// Lstat describes path without following a final symlink.
	Lstat(path string) (fs.FileInfo, error)

	// Copy copies src (file or directory tree) into destDir.
	Copy(src, destDir string) error

	// Move moves src into destDir.
	Move(src, destDir string) error

	// Remove deletes a single file or symlink.
	Remove(path string) error

	// RemoveAll deletes a directory and everything below it.
	RemoveAll(path string) error
}
