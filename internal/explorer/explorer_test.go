package explorer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fexplore/internal/errors"
	"fexplore/pkg/testutils"
)

func newExplorer(t *testing.T, opts ...Option) (*Explorer, string) {
	t.Helper()
	root := testutils.RealTempDir(t)
	e, err := New(root, opts...)
	require.NoError(t, err)
	return e, root
}

func TestNewRejectsBadDirectories(t *testing.T) {
	root := testutils.RealTempDir(t)
	testutils.CreateTree(t, root, "file.txt")

	_, err := New(filepath.Join(root, "missing"))
	assert.True(t, errors.IsNotFound(err))

	_, err = New(filepath.Join(root, "file.txt"))
	assert.True(t, errors.IsNotADirectory(err))
}

func TestFromWorkingDirectory(t *testing.T) {
	e, err := FromWorkingDirectory()
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	wd, err = filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, wd, e.Cwd())
}

func TestResolve(t *testing.T) {
	e, root := newExplorer(t)
	assert.Equal(t, "/etc/passwd", e.Resolve("/etc/passwd"))
	assert.Equal(t, root+string(filepath.Separator)+"a.txt", e.Resolve("a.txt"))
}

func TestChdir(t *testing.T) {
	e, root := newExplorer(t)
	testutils.CreateTree(t, root, "sub/deeper/", "plain.txt")

	t.Run("relative", func(t *testing.T) {
		got, err := e.Chdir("sub")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "sub"), got)
		assert.Equal(t, got, e.Cwd())
	})

	t.Run("relative parent", func(t *testing.T) {
		got, err := e.Chdir("..")
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("absolute", func(t *testing.T) {
		target := filepath.Join(root, "sub", "deeper")
		got, err := e.Chdir(target)
		require.NoError(t, err)
		assert.Equal(t, target, got)
	})

	t.Run("missing leaves directory unchanged", func(t *testing.T) {
		before := e.Cwd()
		_, err := e.Chdir("does-not-exist")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
		assert.Equal(t, before, e.Cwd())
	})

	t.Run("file is not a directory", func(t *testing.T) {
		_, err := e.Chdir(root)
		require.NoError(t, err)

		_, err = e.Chdir("plain.txt")
		require.Error(t, err)
		assert.True(t, errors.IsNotADirectory(err))
		assert.Equal(t, root, e.Cwd())

		var fileErr *errors.FileError
		require.True(t, errors.As(err, &fileErr))
		assert.Equal(t, "not a directory", fileErr.Reason())
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := e.Chdir("")
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestChdirResolvesSymlinks(t *testing.T) {
	e, root := newExplorer(t)
	testutils.CreateTree(t, root, "real/")
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")))

	got, err := e.Chdir("link")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "real"), got)
}

func TestChdirPermissionDenied(t *testing.T) {
	testutils.SkipIfRoot(t)
	e, root := newExplorer(t)
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Mkdir(locked, 0600))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	_, err := e.Chdir("locked")
	require.Error(t, err)
	assert.True(t, errors.IsPermissionDenied(err))
	assert.Equal(t, root, e.Cwd())
}
