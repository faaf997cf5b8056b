package types

// Outcome is the per-run tally of terminal item states. It is created at
// run start, mutated only by the executor, and read by summary and
// exit-code logic at run end.
type Outcome struct {
	// Total is the size of the worklist the run started with.
	Total int

	// Deleted counts successful removals. In dry-run mode it counts
	// would-delete items instead, so Deleted == Total on a clean dry run.
	Deleted int

	// Skipped counts interactive declines.
	Skipped int

	// Vanished counts entries that no longer existed at removal time.
	// These are neither successes nor failures.
	Vanished int

	// Aborted is set when the batch preview confirmation was declined;
	// no items were processed.
	Aborted bool

	// FailedPaths lists paths whose removal raised an error, in worklist
	// order.
	FailedPaths []string
}

// Failed returns the number of removal failures
func (o *Outcome) Failed() int { return len(o.FailedPaths) }

// RecordDeleted notes a successful (or simulated) removal
func (o *Outcome) RecordDeleted() { o.Deleted++ }

// RecordSkipped notes an interactive decline
func (o *Outcome) RecordSkipped() { o.Skipped++ }

// RecordVanished notes an entry that was already gone
func (o *Outcome) RecordVanished() { o.Vanished++ }

// RecordFailed notes a removal failure, retaining the path
func (o *Outcome) RecordFailed(path string) {
	o.FailedPaths = append(o.FailedPaths, path)
}

// ExitCode is 1 if any removal failed, 0 otherwise. Skips, vanished
// entries, and operator aborts never make the run a failure.
func (o *Outcome) ExitCode() int {
	if o.Failed() > 0 {
		return 1
	}
	return 0
}
