package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reap-cli/reap/pkg/selection"
	"github.com/reap-cli/reap/pkg/testutil"
	"github.com/reap-cli/reap/pkg/types"
)

func TestExcluded(t *testing.T) {
	exclusions := []string{"important", ".git"}

	assert.True(t, selection.Excluded("keep/important.tmp", exclusions), "substring match")
	assert.True(t, selection.Excluded("sub/.git", exclusions), "basename match")
	assert.True(t, selection.Excluded(".git/objects", exclusions))
	assert.False(t, selection.Excluded("keep/other.tmp", exclusions))
	assert.False(t, selection.Excluded("a.tmp", nil))
}

func TestExcludedIsNotGlob(t *testing.T) {
	// Exclusions are substring / exact-basename checks only; wildcards in
	// an exclusion have no special meaning.
	assert.False(t, selection.Excluded("a.tmp", []string{"*.tmp"}))
	assert.True(t, selection.Excluded("literal-*.tmp-name", []string{"*.tmp"}))
}

func TestExcludedEmptyPatternIgnored(t *testing.T) {
	assert.False(t, selection.Excluded("a.tmp", []string{""}))
}

func TestSelectFilesWithExclusion(t *testing.T) {
	memfs := testutil.NewMemFS()
	testutil.SeedTree(t, memfs, "/work", []string{
		"a.tmp",
		"b.tmp",
		"keep/",
		"keep/important.tmp",
	})

	got := selection.New(memfs).Select(types.SearchConfig{
		Root:       "/work",
		Files:      "*.tmp",
		Exclusions: []string{"important"},
	})

	assert.Equal(t, []string{"a.tmp", "b.tmp"}, got)
}

func TestSelectIsSortedAndDeterministic(t *testing.T) {
	memfs := testutil.NewMemFS()
	testutil.SeedTree(t, memfs, "/work", []string{
		"z.tmp",
		"a.tmp",
		"m/x.tmp",
	})

	s := selection.New(memfs)
	cfg := types.SearchConfig{Root: "/work", Files: "*.tmp"}

	first := s.Select(cfg)
	second := s.Select(cfg)

	assert.Equal(t, []string{"a.tmp", "m/x.tmp", "z.tmp"}, first)
	assert.Equal(t, first, second, "selection is idempotent against an unchanged tree")
}

func TestSelectDeduplicatesAcrossClasses(t *testing.T) {
	memfs := testutil.NewMemFS()
	testutil.SeedTree(t, memfs, "/work", []string{
		"trash/",
	})

	// The same directory matches both the folders pattern and the mixed
	// pattern; it must appear once.
	got := selection.New(memfs).Select(types.SearchConfig{
		Root:    "/work",
		Folders: "trash",
		Mixed:   "trash",
	})

	assert.Equal(t, []string{"trash"}, got)
}

func TestSelectFoldersWithDepthBound(t *testing.T) {
	memfs := testutil.NewMemFS()
	testutil.SeedTree(t, memfs, "/work", []string{
		"cache/",
		"sub/cache/",
	})

	got := selection.New(memfs).Select(types.SearchConfig{
		Root:     "/work",
		Folders:  "cache",
		MaxDepth: 1,
	})

	assert.Equal(t, []string{"cache"}, got)
}

func TestSelectMultipleClasses(t *testing.T) {
	memfs := testutil.NewMemFS()
	testutil.SeedTree(t, memfs, "/work", []string{
		"a.tmp",
		"cache/",
		"cache/b.tmp",
	})

	got := selection.New(memfs).Select(types.SearchConfig{
		Root:    "/work",
		Files:   "*.tmp",
		Folders: "cache",
	})

	assert.Equal(t, []string{"a.tmp", "cache", "cache/b.tmp"}, got)
}

func TestSelectNothingMatches(t *testing.T) {
	memfs := testutil.NewMemFS()
	testutil.SeedTree(t, memfs, "/work", []string{"a.txt"})

	got := selection.New(memfs).Select(types.SearchConfig{
		Root:  "/work",
		Files: "*.tmp",
	})

	assert.Empty(t, got)
}
