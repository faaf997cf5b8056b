// Package testutil provides helpers for building filesystem fixtures in
// tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/reap-cli/reap/pkg/filesystem"
	"github.com/reap-cli/reap/pkg/types"
)

// NewMemFS returns an empty in-memory types.FS for hermetic traversal and
// executor tests
func NewMemFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// SeedTree populates fs with the given entries under root. Keys ending in
// "/" become directories; everything else becomes a file with placeholder
// content. Parent directories are created as needed.
func SeedTree(t *testing.T, fs types.FS, root string, entries []string) {
	t.Helper()

	if err := fs.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create root %s: %v", root, err)
	}

	for _, entry := range entries {
		path := root + "/" + entry
		if entry[len(entry)-1] == '/' {
			if err := fs.MkdirAll(path[:len(path)-1], 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", path, err)
			}
			continue
		}
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create parent directories for %s: %v", path, err)
		}
		if err := fs.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", path, err)
		}
	}
}

// Exists reports whether a path is present on fs
func Exists(t *testing.T, fs types.FS, path string) bool {
	t.Helper()

	_, err := fs.Stat(path)
	return err == nil
}
