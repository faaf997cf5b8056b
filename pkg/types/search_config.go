package types

// SearchConfig describes one selection run. Exactly the patterns that are
// non-empty are active; at least one must be set. MaxDepth of zero means
// unbounded.
type SearchConfig struct {
	// Root is the directory the search starts from. Defaults to the
	// current working directory when empty.
	Root string

	// Files, Folders, and Mixed are glob patterns, one per class.
	Files   string
	Folders string
	Mixed   string

	// Exclusions are substring / exact-basename protections, checked in
	// order. They are not glob patterns.
	Exclusions []string

	// MaxDepth bounds traversal. The root is depth 0, its immediate
	// children depth 1. Zero means unbounded.
	MaxDepth int
}

// ActivePatterns returns the configured (class, pattern) pairs in a fixed
// order so selection output is reproducible.
func (c SearchConfig) ActivePatterns() []ClassPattern {
	var out []ClassPattern
	if c.Files != "" {
		out = append(out, ClassPattern{Class: ClassFiles, Pattern: c.Files})
	}
	if c.Folders != "" {
		out = append(out, ClassPattern{Class: ClassFolders, Pattern: c.Folders})
	}
	if c.Mixed != "" {
		out = append(out, ClassPattern{Class: ClassMixed, Pattern: c.Mixed})
	}
	return out
}

// ClassPattern pairs a pattern with the class it applies to
type ClassPattern struct {
	Class   Class
	Pattern string
}
