package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyrmon/pyrmon/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.py")
	require.NoError(t, os.WriteFile(path, []byte("import os\n"), 0644))

	content, err := fsutil.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "import os\n", string(content))
}

func TestReadFile_NotFound(t *testing.T) {
	t.Parallel()

	_, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.py"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fsutil.ErrNotFound)
}

func TestReadFile_Directory(t *testing.T) {
	t.Parallel()

	_, err := fsutil.ReadFile(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, fsutil.ErrIsDirectory)
}

func TestReadFile_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fsutil.ReadFile(ctx, "anything")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "present")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	assert.True(t, fsutil.Exists(path))
	assert.True(t, fsutil.Exists(dir))
	assert.False(t, fsutil.Exists(filepath.Join(dir, "absent")))
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	err := fsutil.WriteAtomic(context.Background(), path, []byte(`{"a":1}`), 0)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fsutil.DefaultFileMode, info.Mode().Perm())
}

func TestWriteAtomic_Overwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	err := fsutil.WriteAtomic(context.Background(), path, []byte("new"), 0)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestWriteAtomic_NoTempLeftovers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.json", entries[0].Name())
}
