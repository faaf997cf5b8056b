package traverse_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reap-cli/reap/pkg/matchers"
	"github.com/reap-cli/reap/pkg/testutil"
	"github.com/reap-cli/reap/pkg/traverse"
	"github.com/reap-cli/reap/pkg/types"
)

func paths(candidates []types.Candidate) []string {
	var out []string
	for _, c := range candidates {
		out = append(out, c.Path)
	}
	return out
}

func TestTraverseFilesClass(t *testing.T) {
	memfs := testutil.NewMemFS()
	testutil.SeedTree(t, memfs, "/work", []string{
		"a.tmp",
		"b.txt",
		"sub/c.tmp",
		"sub/deeper/d.tmp",
	})

	w := traverse.New(memfs)
	got := w.Traverse("/work", types.ClassFiles, matchers.Compile("*.tmp"), 0)

	assert.ElementsMatch(t, []string{"a.tmp", "sub/c.tmp", "sub/deeper/d.tmp"}, paths(got))
	for _, c := range got {
		assert.False(t, c.IsDir)
	}
}

func TestTraverseFilesClassNeverMatchesDirectories(t *testing.T) {
	memfs := testutil.NewMemFS()
	testutil.SeedTree(t, memfs, "/work", []string{
		"cache/",
		"cache/inner.cache",
		"sub/cache/",
	})

	w := traverse.New(memfs)
	got := w.Traverse("/work", types.ClassFiles, matchers.Compile("cache"), 0)

	assert.Empty(t, got)
}

func TestTraverseFoldersClass(t *testing.T) {
	memfs := testutil.NewMemFS()
	testutil.SeedTree(t, memfs, "/work", []string{
		"cache/",
		"cache/keep.txt",
		"sub/cache/",
		"cache.txt",
	})

	w := traverse.New(memfs)
	got := w.Traverse("/work", types.ClassFolders, matchers.Compile("cache"), 0)

	assert.ElementsMatch(t, []string{"cache", "sub/cache"}, paths(got))
	for _, c := range got {
		assert.True(t, c.IsDir)
	}
}

func TestTraverseMixedClass(t *testing.T) {
	memfs := testutil.NewMemFS()
	testutil.SeedTree(t, memfs, "/work", []string{
		"build/",
		"build/artifact.o",
		"sub/build",
	})

	w := traverse.New(memfs)
	got := w.Traverse("/work", types.ClassMixed, matchers.Compile("build"), 0)

	assert.ElementsMatch(t, []string{"build", "sub/build"}, paths(got))
}

func TestTraverseDepthBound(t *testing.T) {
	// Entries directly under the root sit at depth 1.
	memfs := testutil.NewMemFS()
	testutil.SeedTree(t, memfs, "/work", []string{
		"cache/",
		"sub/cache/",
		"sub/deep/cache/",
	})

	w := traverse.New(memfs)

	got := w.Traverse("/work", types.ClassFolders, matchers.Compile("cache"), 1)
	assert.Equal(t, []string{"cache"}, paths(got))

	got = w.Traverse("/work", types.ClassFolders, matchers.Compile("cache"), 2)
	assert.ElementsMatch(t, []string{"cache", "sub/cache"}, paths(got))

	got = w.Traverse("/work", types.ClassFolders, matchers.Compile("cache"), 3)
	assert.ElementsMatch(t, []string{"cache", "sub/cache", "sub/deep/cache"}, paths(got))
}

func TestTraverseDepthExactlyAtBoundIncluded(t *testing.T) {
	memfs := testutil.NewMemFS()
	testutil.SeedTree(t, memfs, "/work", []string{
		"a/b/target.tmp",
	})

	w := traverse.New(memfs)

	got := w.Traverse("/work", types.ClassFiles, matchers.Compile("*.tmp"), 3)
	assert.Equal(t, []string{"a/b/target.tmp"}, paths(got))

	got = w.Traverse("/work", types.ClassFiles, matchers.Compile("*.tmp"), 2)
	assert.Empty(t, got)
}

func TestTraverseMatchedDirectoryStillDescended(t *testing.T) {
	memfs := testutil.NewMemFS()
	testutil.SeedTree(t, memfs, "/work", []string{
		"cache/",
		"cache/cache/",
	})

	w := traverse.New(memfs)
	got := w.Traverse("/work", types.ClassFolders, matchers.Compile("cache"), 0)

	assert.ElementsMatch(t, []string{"cache", "cache/cache"}, paths(got))
}

// denyDirFS wraps a types.FS and refuses to read one directory
type denyDirFS struct {
	types.FS
	deny string
}

func (d *denyDirFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if name == d.deny {
		return nil, fs.ErrPermission
	}
	return d.FS.ReadDir(name)
}

func TestTraverseSkipsUnreadableDirectory(t *testing.T) {
	memfs := testutil.NewMemFS()
	testutil.SeedTree(t, memfs, "/work", []string{
		"a.tmp",
		"locked/hidden.tmp",
		"open/c.tmp",
	})

	w := traverse.New(&denyDirFS{FS: memfs, deny: "/work/locked"})
	got := w.Traverse("/work", types.ClassFiles, matchers.Compile("*.tmp"), 0)

	// The unreadable directory is silently dropped; siblings survive.
	assert.ElementsMatch(t, []string{"a.tmp", "open/c.tmp"}, paths(got))
}

func TestTraverseMissingRoot(t *testing.T) {
	w := traverse.New(testutil.NewMemFS())
	got := w.Traverse("/nowhere", types.ClassFiles, matchers.Compile("*"), 0)

	assert.Empty(t, got)
}
