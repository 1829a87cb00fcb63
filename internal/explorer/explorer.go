// Package explorer implements the filesystem operations behind the
// interactive menu: listing, status snapshots, file creation and removal,
// changing directory and recursive search by exact name.
//
// An Explorer carries its own current directory instead of mutating the
// process working directory. Relative paths handed to any operation are
// resolved against it, so tests can point an Explorer at a temp directory
// without touching global state.
package explorer

import (
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"golang.org/x/sys/unix"

	"fexplore/internal/errors"
	"fexplore/internal/log"
)

// Explorer runs filesystem operations relative to a current directory
type Explorer struct {
	dir          string
	maxDepth     int
	detectCycles bool
}

// Option configures an Explorer
type Option func(*Explorer)

// WithMaxDepth bounds how deep Search recurses below its root. Zero means
// unlimited.
func WithMaxDepth(depth int) Option {
	return func(e *Explorer) {
		e.maxDepth = depth
	}
}

// WithCycleDetection makes Search skip directories it has already opened
// during the same walk.
func WithCycleDetection(enabled bool) Option {
	return func(e *Explorer) {
		e.detectCycles = enabled
	}
}

// New creates an Explorer whose current directory is dir. The directory
// must exist; it is stored in absolute form with symlinks resolved.
func New(dir string, opts ...Option) (*Explorer, error) {
	e := &Explorer{detectCycles: true}
	for _, opt := range opts {
		opt(e)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.FromOS("chdir", dir, err)
	}
	real, err := enterable(abs, dir)
	if err != nil {
		return nil, err
	}
	e.dir = real
	return e, nil
}

// FromWorkingDirectory creates an Explorer starting at the process working
// directory.
func FromWorkingDirectory(opts ...Option) (*Explorer, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.FromOS("getwd", "", err)
	}
	return New(wd, opts...)
}

// Cwd returns the absolute current directory
func (e *Explorer) Cwd() string {
	return e.dir
}

// Resolve returns path unchanged when it is absolute and joined to the
// current directory otherwise. The result is not cleaned: ".." following
// a symlink is left for the kernel to resolve, as chdir(2) would.
func (e *Explorer) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return e.dir + string(filepath.Separator) + path
}

// Chdir changes the current directory to path, absolute or relative to
// the current one, and returns the new absolute directory. On failure the
// current directory is left unchanged.
func (e *Explorer) Chdir(path string) (string, error) {
	logger := log.LogWithFields(log.F("op", "chdir"), log.F("path", path))

	if path == "" {
		return "", errors.FromOS("chdir", path, &fs.PathError{Op: "chdir", Path: path, Err: syscall.ENOENT})
	}

	real, err := enterable(e.Resolve(path), path)
	if err != nil {
		logger.Debugf("chdir refused: %v", err)
		return "", err
	}

	e.dir = real
	logger.Debugf("now in %s", real)
	return real, nil
}

// enterable resolves target to its physical absolute form and checks that
// it is a directory the process has search permission on, which is what
// chdir(2) would require.
func enterable(target, display string) (string, error) {
	real, err := filepath.EvalSymlinks(target)
	if err != nil {
		return "", errors.FromOS("chdir", display, err)
	}

	info, err := os.Stat(real)
	if err != nil {
		return "", errors.FromOS("chdir", display, err)
	}
	if !info.IsDir() {
		return "", errors.FromOS("chdir", display, &fs.PathError{Op: "chdir", Path: display, Err: syscall.ENOTDIR})
	}

	if err := unix.Access(real, unix.X_OK); err != nil {
		return "", errors.FromOS("chdir", display, &fs.PathError{Op: "chdir", Path: display, Err: err})
	}
	return real, nil
}
