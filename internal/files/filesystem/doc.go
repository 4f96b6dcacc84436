// Package filesystem implements the fmgr.Gateway filesystem primitives on top
// of go-billy.
//
// Implementations:
//   - NewOSGateway: production gateway over the host filesystem (osfs)
//   - NewMemoryGateway: in-memory gateway for tests (memfs), with AddFile and
//     AddDir helpers for building fixtures
//
// Copy follows symlinks and copies directories recursively. Move renames and
// falls back to copy-then-remove when the rename crosses devices. Listing
// errors are classified into fmgr.ErrNotADirectory and fmgr.ErrAccessDenied.
package filesystem
