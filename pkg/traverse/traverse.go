// Package traverse walks a directory tree from a root, respecting a
// maximum depth, and yields candidate entries whose name matches a
// pattern. Only the requested class of entry can match; directories are
// always descended into regardless of class so nested matches are found.
package traverse

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/reap-cli/reap/pkg/logging"
	"github.com/reap-cli/reap/pkg/matchers"
	"github.com/reap-cli/reap/pkg/types"
)

// Walker performs depth-bounded searches over a types.FS
type Walker struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Walker over the given filesystem
func New(fs types.FS) *Walker {
	return &Walker{
		fs:     fs,
		logger: logging.GetLogger("traverse"),
	}
}

// Traverse walks the tree rooted at root and returns candidates of the
// given class matching pattern. The root itself is depth 0 and is never a
// candidate; its immediate children sit at depth 1. maxDepth of zero
// means unbounded. Candidate paths are relative to root.
//
// Directories that cannot be read are skipped silently and traversal
// continues with their siblings. Nothing was deleted there, so this is
// not a failure; operators audit coverage with --preview.
func (w *Walker) Traverse(root string, class types.Class, pattern matchers.Pattern, maxDepth int) []types.Candidate {
	var found []types.Candidate
	w.walk(root, "", 1, class, pattern, maxDepth, &found)

	w.logger.Debug().
		Str("root", root).
		Str("class", string(class)).
		Str("pattern", pattern.String()).
		Int("maxDepth", maxDepth).
		Int("candidates", len(found)).
		Msg("Traversal finished")

	return found
}

// walk visits the children of dir, which sit at the given depth.
func (w *Walker) walk(dir, rel string, depth int, class types.Class, pattern matchers.Pattern, maxDepth int, found *[]types.Candidate) {
	if maxDepth > 0 && depth > maxDepth {
		return
	}

	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		// Unreadable directory: skip and continue with siblings.
		w.logger.Debug().Err(err).Str("dir", dir).Msg("Skipping unreadable directory")
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		entryRel := filepath.Join(rel, name)

		if w.classMatches(class, entry.IsDir()) && pattern.Match(name) {
			*found = append(*found, types.Candidate{Path: entryRel, IsDir: entry.IsDir()})
		}

		// Matched directories are still descended into; a nested match
		// below a doomed parent surfaces later as a vanished entry.
		if entry.IsDir() {
			w.walk(filepath.Join(dir, name), entryRel, depth+1, class, pattern, maxDepth, found)
		}
	}
}

// classMatches reports whether an entry of the given kind is allowed to
// match under the class
func (w *Walker) classMatches(class types.Class, isDir bool) bool {
	switch class {
	case types.ClassFiles:
		return !isDir
	case types.ClassFolders:
		return isDir
	case types.ClassMixed:
		return true
	}
	return false
}
