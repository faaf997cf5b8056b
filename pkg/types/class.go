package types

// Class indicates which filesystem entry types a pattern is allowed to match
type Class string

const (
	// ClassFiles matches regular files only; directories are still descended into
	ClassFiles Class = "files"

	// ClassFolders matches directories only
	ClassFolders Class = "folders"

	// ClassMixed matches both files and directories
	ClassMixed Class = "mixed"
)

// Candidate is a filesystem entry discovered by traversal, not yet
// filtered. Path is relative to the search root.
type Candidate struct {
	Path  string
	IsDir bool
}
