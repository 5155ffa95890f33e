package filesystem

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// aferoFS implements FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates an FS over an afero filesystem. Afero has no symlink
// resolution for MemMapFs, so Canonicalize only makes paths absolute and
// checks that they exist.
func NewAferoFS(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if _, err := a.fs.Stat(abs); err != nil {
		return "", err
	}
	return abs, nil
}

func (a *aferoFS) MkdirTemp(dir, pattern string) (string, error) {
	return afero.TempDir(a.fs, dir, strings.TrimSuffix(pattern, "*"))
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	dirEntries := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		dirEntries[i] = fs.FileInfoToDirEntry(entry)
	}
	return dirEntries, nil
}

func (a *aferoFS) RemoveAll(path string) error {
	return a.fs.RemoveAll(path)
}
