package types

import "io/fs"

// FS abstracts the filesystem operations reap performs, allowing
// in-memory implementations for testing
type FS interface {
	// Read operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Mutation operations
	Remove(name string) error
	RemoveAll(path string) error

	// Used by tests and config generation to seed trees
	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// Confirmer is a blocking yes/no prompt. Implementations read from the
// operator; an empty answer means no.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}
