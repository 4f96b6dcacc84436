package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/vvka-141/fmgr/internal/logging"
	"github.com/vvka-141/fmgr/pkg/fmgr"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// storage is the subset of go-billy the gateway needs. Both osfs.Default and
// memfs satisfy it.
type storage interface {
	billy.Basic
	billy.Dir
	billy.Symlink
}

// Gateway implements fmgr.Gateway on top of a go-billy filesystem.
type Gateway struct {
	fs     storage
	logger fmgr.Logger
}

func newGateway(fs storage, logger fmgr.Logger) *Gateway {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Gateway{fs: fs, logger: logger}
}

func (g *Gateway) ListEntries(path string) ([]string, error) {
	info, err := g.fs.Stat(path)
	if err != nil {
		return nil, classifyReadError(path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", fmgr.ErrNotADirectory, path)
	}

	infos, err := g.fs.ReadDir(path)
	if err != nil {
		return nil, classifyReadError(path, err)
	}

	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		names = append(names, fi.Name())
	}
	return names, nil
}

func (g *Gateway) IsDirectory(path string) bool {
	info, err := g.fs.Stat(path)
	return err == nil && info.IsDir()
}

func (g *Gateway) Exists(path string) bool {
	_, err := g.fs.Stat(path)
	return err == nil
}

func (g *Gateway) Lstat(path string) (FileInfo, error) {
	return g.fs.Lstat(path)
}

// Copy copies src into destDir. Regular files overwrite an existing target;
// directories are copied recursively and never merged into an existing one.
func (g *Gateway) Copy(src, destDir string) error {
	info, err := g.fs.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to access %s: %w", src, err)
	}
	if !g.IsDirectory(destDir) {
		return fmt.Errorf("%w: %s", fmgr.ErrNotADirectory, destDir)
	}

	target := g.fs.Join(destDir, filepath.Base(src))

	if !info.IsDir() {
		if sameLocation(src, target) {
			return fmt.Errorf("%w: %s is the source itself", fmgr.ErrDestinationExists, target)
		}
		g.logger.Verbose("copy file %s -> %s", src, target)
		return g.copyFile(src, target, info.Mode())
	}

	if isWithin(src, destDir) {
		return fmt.Errorf("%w: %s into %s", fmgr.ErrRecursiveTarget, src, destDir)
	}
	if _, err := g.fs.Lstat(target); err == nil {
		return fmt.Errorf("%w: %s", fmgr.ErrDestinationExists, target)
	}

	g.logger.Verbose("copy tree %s -> %s", src, target)
	return g.copyTree(src, target)
}

// Move renames src into destDir. When the rename crosses devices the source
// is copied and then removed.
func (g *Gateway) Move(src, destDir string) error {
	info, err := g.fs.Lstat(src)
	if err != nil {
		return fmt.Errorf("failed to access %s: %w", src, err)
	}
	if !g.IsDirectory(destDir) {
		return fmt.Errorf("%w: %s", fmgr.ErrNotADirectory, destDir)
	}

	target := g.fs.Join(destDir, filepath.Base(src))

	if info.IsDir() && isWithin(src, destDir) {
		return fmt.Errorf("%w: %s into %s", fmgr.ErrRecursiveTarget, src, destDir)
	}
	if _, err := g.fs.Lstat(target); err == nil {
		return fmt.Errorf("%w: %s", fmgr.ErrDestinationExists, target)
	}

	g.logger.Verbose("move %s -> %s", src, target)
	if err := g.fs.Rename(src, target); err != nil {
		return g.moveAcrossDevices(src, target, info, err)
	}
	return nil
}

// moveAcrossDevices handles a failed rename. Only EXDEV falls back to
// copy-then-remove; any other rename error is returned wrapped.
func (g *Gateway) moveAcrossDevices(src, target string, info FileInfo, renameErr error) error {
	if !errors.Is(renameErr, syscall.EXDEV) {
		return fmt.Errorf("failed to move %s: %w", src, renameErr)
	}

	g.logger.Verbose("rename crosses devices, copying %s instead", src)
	var err error
	if info.IsDir() {
		err = g.copyTree(src, target)
	} else {
		err = g.copyFile(src, target, info.Mode())
	}
	if err != nil {
		return fmt.Errorf("failed to move %s (rename crossed devices, copy failed): %w", src, err)
	}
	if err := util.RemoveAll(g.fs, src); err != nil {
		return fmt.Errorf("moved %s by copy, but failed to remove the original: %w", src, err)
	}
	return nil
}

func (g *Gateway) Remove(path string) error {
	g.logger.Verbose("remove %s", path)
	if err := g.fs.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

func (g *Gateway) RemoveAll(path string) error {
	g.logger.Verbose("remove tree %s", path)
	if err := util.RemoveAll(g.fs, path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

func (g *Gateway) copyFile(src, dst string, mode fs.FileMode) error {
	in, err := g.fs.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := g.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}

func (g *Gateway) copyTree(src, dst string) error {
	info, err := g.fs.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to access %s: %w", src, err)
	}
	if err := g.fs.MkdirAll(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	children, err := g.fs.ReadDir(src)
	if err != nil {
		return classifyReadError(src, err)
	}

	for _, child := range children {
		from := g.fs.Join(src, child.Name())
		to := g.fs.Join(dst, child.Name())

		// follow symlinks the way a plain copy would
		childInfo, err := g.fs.Stat(from)
		if err != nil {
			return fmt.Errorf("failed to access %s: %w", from, err)
		}

		switch {
		case childInfo.IsDir():
			err = g.copyTree(from, to)
		case childInfo.Mode().IsRegular():
			err = g.copyFile(from, to, childInfo.Mode())
		default:
			g.logger.Verbose("skipping special file %s", from)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func classifyReadError(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %s", fmgr.ErrAccessDenied, path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s does not exist", fmgr.ErrNotADirectory, path)
	}
	return fmt.Errorf("failed to read directory %s: %w", path, err)
}

// isWithin reports whether child is parent itself or lies below it.
func isWithin(parent, child string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(child))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func sameLocation(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

var _ fmgr.Gateway = (*Gateway)(nil)
