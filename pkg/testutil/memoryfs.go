package testutil

import (
	"io/fs"
	"testing"

	"github.com/spf13/afero"

	"github.com/shotlink/shotlink/pkg/filesystem"
	"github.com/shotlink/shotlink/pkg/types"
)

// MemFS returns an in-memory types.FS seeded with the given files,
// each holding a single placeholder byte. Parent directories are
// created implicitly.
func MemFS(t *testing.T, files ...string) types.FS {
	t.Helper()

	mem := afero.NewMemMapFs()
	for _, file := range files {
		if err := afero.WriteFile(mem, file, []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to seed memory fs with %s: %v", file, err)
		}
	}
	return filesystem.NewAferoFS(mem)
}

// FaultyFS wraps a types.FS and injects errors for chosen paths.
// Operations without an injected error pass through.
type FaultyFS struct {
	types.FS

	RemoveErr  map[string]error
	StatErr    map[string]error
	ReadDirErr map[string]error
}

// NewFaultyFS wraps the given filesystem with empty injection tables.
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{
		FS:         base,
		RemoveErr:  make(map[string]error),
		StatErr:    make(map[string]error),
		ReadDirErr: make(map[string]error),
	}
}

func (f *FaultyFS) Remove(name string) error {
	if err, ok := f.RemoveErr[name]; ok {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err, ok := f.StatErr[name]; ok {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err, ok := f.ReadDirErr[name]; ok {
		return nil, err
	}
	return f.FS.ReadDir(name)
}
