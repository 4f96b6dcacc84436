// Package files groups the filesystem access used by the file manager.
//
// The filesystem sub-package implements fmgr.FileGateway twice: once over
// the host filesystem and once over an in-memory tree for tests.
//
//	gw := filesystem.NewOSGateway(logging.NewNullLogger())
//	entries, err := gw.ListEntries("/home/op")
package files
