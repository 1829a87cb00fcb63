package explorer

import (
	"os"
	"path/filepath"
	"sort"
	"syscall"

	"fexplore/internal/errors"
	"fexplore/pkg/types"
)

// ReadDirNames returns the names of the immediate children of path,
// without "." and "..", in byte-wise ascending order.
func (e *Explorer) ReadDirNames(path string) ([]string, error) {
	f, err := os.Open(e.Resolve(path))
	if err != nil {
		return nil, errors.FromOS("opendir", path, err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, errors.FromOS("opendir", path, err)
	}

	sort.Strings(names)
	return names, nil
}

// Lstat takes a fresh status snapshot of dir/name. Symlinks are described
// as links, not followed.
func (e *Explorer) Lstat(dir, name string) (*types.FileStatus, error) {
	info, err := os.Lstat(filepath.Join(e.Resolve(dir), name))
	if err != nil {
		return nil, errors.FromOS("lstat", name, err)
	}

	st := &types.FileStatus{
		Name:    name,
		Mode:    info.Mode(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
	if sys, ok := info.Sys().(*syscall.Stat_t); ok {
		st.UID = sys.Uid
		st.GID = sys.Gid
	}
	st.Owner = userName(st.UID)
	st.Group = groupName(st.GID)

	return st, nil
}
