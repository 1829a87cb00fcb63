package explorer

import (
	"io/fs"
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"fexplore/internal/errors"
	"fexplore/internal/log"
)

// Create makes a new empty file with exclusive-create semantics and the
// default creation mode (0666 before umask). An existing name fails with
// an AlreadyExists error. It returns the path that was created.
func (e *Explorer) Create(name string) (string, error) {
	if name == "" {
		return "", errors.FromOS("create", name, &fs.PathError{Op: "open", Path: name, Err: syscall.ENOENT})
	}

	path := e.Resolve(name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return "", errors.FromOS("create", name, err)
	}
	if err := f.Close(); err != nil {
		return "", errors.FromOS("create", name, err)
	}

	log.LogWithFields(log.F("op", "create"), log.F("path", path)).Debug("file created")
	return path, nil
}

// Delete removes a single file with unlink(2). Directories are never
// removed; naming one fails with an IsADirectory or PermissionDenied
// error depending on the platform.
func (e *Explorer) Delete(name string) (string, error) {
	if name == "" {
		return "", errors.FromOS("unlink", name, &fs.PathError{Op: "unlink", Path: name, Err: syscall.ENOENT})
	}

	path := e.Resolve(name)
	if err := unix.Unlink(path); err != nil {
		return "", errors.FromOS("unlink", name, &fs.PathError{Op: "unlink", Path: name, Err: err})
	}

	log.LogWithFields(log.F("op", "unlink"), log.F("path", path)).Debug("file removed")
	return path, nil
}
