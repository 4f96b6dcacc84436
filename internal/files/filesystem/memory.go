package filesystem

import (
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/vvka-141/fmgr/pkg/fmgr"
)

// MemoryGateway is a Gateway over an in-memory filesystem, for tests.
type MemoryGateway struct {
	*Gateway
	mem billy.Filesystem
}

// NewMemoryGateway creates an empty in-memory gateway.
func NewMemoryGateway(logger fmgr.Logger) *MemoryGateway {
	mem := memfs.New()
	return &MemoryGateway{
		Gateway: newGateway(mem, logger),
		mem:     mem,
	}
}

// AddDir creates a directory and any missing parents.
func (m *MemoryGateway) AddDir(dirPath string) error {
	return m.mem.MkdirAll(normalize(dirPath), 0o755)
}

// AddFile writes a file, creating missing parent directories.
func (m *MemoryGateway) AddFile(filePath string, content string) error {
	filePath = normalize(filePath)
	if err := m.AddDir(path.Dir(filePath)); err != nil {
		return err
	}
	return util.WriteFile(m.mem, filePath, []byte(content), 0o644)
}

// ReadFile returns the content of a file.
func (m *MemoryGateway) ReadFile(filePath string) ([]byte, error) {
	return util.ReadFile(m.mem, normalize(filePath))
}

// Filesystem exposes the underlying billy filesystem.
func (m *MemoryGateway) Filesystem() billy.Filesystem {
	return m.mem
}

// normalize cleans a virtual path using forward slashes.
func normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}
