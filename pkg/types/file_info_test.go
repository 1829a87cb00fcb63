package types

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionString(t *testing.T) {
	tests := []struct {
		name string
		mode os.FileMode
		want string
	}{
		{"regular rwxr-xr--", 0754, "-rwxr-xr--"},
		{"directory rwxr-xr--", os.ModeDir | 0754, "drwxr-xr--"},
		{"symlink", os.ModeSymlink | 0777, "lrwxrwxrwx"},
		{"no bits", 0, "----------"},
		{"all bits", 0777, "-rwxrwxrwx"},
		{"owner write only", 0200, "--w-------"},
		{"other execute only", 0001, "---------x"},
		{"fifo renders as dash", os.ModeNamedPipe | 0644, "-rw-r--r--"},
		{"setuid ignored", os.ModeSetuid | 0755, "-rwxr-xr-x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PermissionString(tt.mode))
		})
	}
}

func TestEntryTypeOf(t *testing.T) {
	assert.Equal(t, Directory, EntryTypeOf(os.ModeDir|0755))
	assert.Equal(t, Symlink, EntryTypeOf(os.ModeSymlink))
	assert.Equal(t, Regular, EntryTypeOf(0644))
	assert.Equal(t, Unknown, EntryTypeOf(os.ModeSocket))
	assert.Equal(t, "symlink", Symlink.String())
	assert.Equal(t, "unknown", Unknown.String())
}

func TestFileStatus(t *testing.T) {
	st := &FileStatus{Name: "a.txt", Mode: 0640, Owner: "alice", Group: "staff", Size: 12}
	assert.Equal(t, Regular, st.Type())
	assert.Equal(t, "-rw-r-----", st.Permissions())
	assert.Contains(t, st.String(), "Owner: alice:staff")
	assert.Contains(t, st.String(), "Size: 12 bytes")
}
