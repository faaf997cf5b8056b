// Package types defines the core types and interfaces used throughout reap.
// This includes the FS and Confirmer interfaces, the Class and SafetyMode
// enumerations, and data structures like Candidate, SearchConfig, and Outcome.
package types
