package types

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// EntryType is the coarse classification of a directory entry
type EntryType int

const (
	Unknown EntryType = iota
	Regular
	Directory
	Symlink
)

// EntryTypeOf classifies a file mode
func EntryTypeOf(mode os.FileMode) EntryType {
	switch {
	case mode.IsDir():
		return Directory
	case mode&os.ModeSymlink != 0:
		return Symlink
	case mode.IsRegular():
		return Regular
	}
	return Unknown
}

// String returns the type name
func (t EntryType) String() string {
	switch t {
	case Regular:
		return "regular"
	case Directory:
		return "directory"
	case Symlink:
		return "symlink"
	}
	return "unknown"
}

// FileStatus is a snapshot of one path's metadata, taken with lstat so a
// symlink describes the link itself. It is never cached between calls.
type FileStatus struct {
	Name    string      `json:"name"`
	Mode    os.FileMode `json:"mode"`
	UID     uint32      `json:"uid"`
	GID     uint32      `json:"gid"`
	Owner   string      `json:"owner"` // user name, or the numeric uid when unresolvable
	Group   string      `json:"group"` // group name, or the numeric gid when unresolvable
	Size    int64       `json:"size"`
	ModTime time.Time   `json:"mod_time"`
}

// Type returns the entry type of the snapshot
func (s *FileStatus) Type() EntryType {
	return EntryTypeOf(s.Mode)
}

// Permissions renders the mode as the 10 character ls style string
func (s *FileStatus) Permissions() string {
	return PermissionString(s.Mode)
}

// String returns a human-readable representation
func (s *FileStatus) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name: %s\n", s.Name))
	sb.WriteString(fmt.Sprintf("Mode: %s\n", s.Permissions()))
	sb.WriteString(fmt.Sprintf("Owner: %s:%s\n", s.Owner, s.Group))
	sb.WriteString(fmt.Sprintf("Size: %d bytes\n", s.Size))
	return sb.String()
}

// PermissionString builds <type><rwxrwxrwx>. The type is d for a
// directory, l for a symlink and - for everything else.
func PermissionString(mode os.FileMode) string {
	perms := []byte("----------")

	switch EntryTypeOf(mode) {
	case Directory:
		perms[0] = 'd'
	case Symlink:
		perms[0] = 'l'
	}

	const rwx = "rwxrwxrwx"
	bits := mode.Perm()
	for i := 0; i < 9; i++ {
		if bits&(1<<uint(8-i)) != 0 {
			perms[i+1] = rwx[i]
		}
	}
	return string(perms)
}
