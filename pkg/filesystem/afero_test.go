package filesystem_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/batch-rename/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfero_Canonicalize(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/work/a.txt", nil, 0644))
	fsys := filesystem.NewAferoFS(mem)

	got, err := fsys.Canonicalize("/work/sub/../a.txt")
	require.NoError(t, err)
	assert.Equal(t, "/work/a.txt", got)

	_, err = fsys.Canonicalize("/work/missing.txt")
	assert.Error(t, err)
}

func TestAfero_TempDirLifecycle(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/scratch", 0755))
	fsys := filesystem.NewAferoFS(mem)

	tmp, err := fsys.MkdirTemp("/scratch", "batch-rename-*")
	require.NoError(t, err)
	assert.Equal(t, "/scratch", filepath.Dir(tmp))
	assert.True(t, strings.HasPrefix(filepath.Base(tmp), "batch-rename-"))

	require.NoError(t, fsys.WriteFile(filepath.Join(tmp, "x"), nil, 0600))
	entries, err := fsys.ReadDir(tmp)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "x", entries[0].Name())
	assert.False(t, entries[0].IsDir())

	require.NoError(t, fsys.RemoveAll(tmp))
	exists, err := afero.DirExists(mem, tmp)
	require.NoError(t, err)
	assert.False(t, exists)
}
