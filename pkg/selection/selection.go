// Package selection builds the deletion worklist: it fans traversal out
// over the configured pattern classes, drops excluded paths, deduplicates,
// and sorts. The resulting order is a published contract: preview, log,
// and deletion order are all this sequence, so two runs against an
// unchanged tree enumerate identically.
package selection

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/reap-cli/reap/pkg/logging"
	"github.com/reap-cli/reap/pkg/matchers"
	"github.com/reap-cli/reap/pkg/traverse"
	"github.com/reap-cli/reap/pkg/types"
)

// Selector turns a SearchConfig into an ordered worklist
type Selector struct {
	walker *traverse.Walker
	logger zerolog.Logger
}

// New creates a Selector over the given filesystem
func New(fs types.FS) *Selector {
	return &Selector{
		walker: traverse.New(fs),
		logger: logging.GetLogger("selection"),
	}
}

// Select runs one traversal per active pattern class and returns the
// deduplicated, lexicographically sorted list of surviving paths,
// relative to cfg.Root. It is read-only and idempotent against an
// unchanged filesystem.
func (s *Selector) Select(cfg types.SearchConfig) []string {
	seen := make(map[string]bool)
	var paths []string

	for _, cp := range cfg.ActivePatterns() {
		pattern := matchers.Compile(cp.Pattern)
		candidates := s.walker.Traverse(cfg.Root, cp.Class, pattern, cfg.MaxDepth)

		for _, c := range candidates {
			if seen[c.Path] {
				continue
			}
			if Excluded(c.Path, cfg.Exclusions) {
				s.logger.Debug().Str("path", c.Path).Msg("Excluded from selection")
				continue
			}
			seen[c.Path] = true
			paths = append(paths, c.Path)
		}
	}

	sort.Strings(paths)

	s.logger.Info().
		Str("root", cfg.Root).
		Int("selected", len(paths)).
		Strs("paths", paths).
		Msg("Selection built")

	return paths
}
