// Package filesystem provides implementations of the types.FS interface:
// a thin OS-backed one for production and an afero-backed one so traversal
// and deletion can be tested against an in-memory tree.
package filesystem
