// Package executor consumes the selection worklist in order and applies
// exactly one terminal action per item under the configured safety mode.
package executor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/reap-cli/reap/pkg/filesystem"
	"github.com/reap-cli/reap/pkg/logging"
	"github.com/reap-cli/reap/pkg/types"
)

// Options contains configuration for the executor
type Options struct {
	Mode      types.SafetyMode
	Confirmer types.Confirmer
	Logger    zerolog.Logger
	// Filesystem operations interface for testing
	FS types.FS
}

// Executor applies the safety mode to each worklist item, performs the
// removal, and records the outcome
type Executor struct {
	mode      types.SafetyMode
	confirmer types.Confirmer
	logger    zerolog.Logger
	fs        types.FS
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	return &Executor{
		mode:      opts.Mode,
		confirmer: opts.Confirmer,
		logger:    logger,
		fs:        fs,
	}
}

// Execute processes the worklist in order and returns the run outcome.
// Paths are relative to root. A single removal failure never stops the
// batch; only a declined preview confirmation does, and that is not a
// failure.
func (e *Executor) Execute(root string, worklist []string) *types.Outcome {
	outcome := &types.Outcome{Total: len(worklist)}

	if e.mode.GatesBatch() && len(worklist) > 0 {
		ok, err := e.confirm(fmt.Sprintf("Delete %d entries?", len(worklist)))
		if err != nil || !ok {
			outcome.Aborted = true
			e.logger.Info().Int("total", outcome.Total).Msg("Cancelled, nothing deleted")
			return outcome
		}
	}

	for _, rel := range worklist {
		e.processItem(root, rel, outcome)
	}

	e.logger.Info().
		Int("total", outcome.Total).
		Int("deleted", outcome.Deleted).
		Int("failed", outcome.Failed()).
		Int("skipped", outcome.Skipped).
		Bool("dryRun", !e.mode.Mutates()).
		Msg("Run finished")

	return outcome
}

// processItem applies the per-item state machine: dry-run beats
// everything, then the interactive prompt, then direct removal.
func (e *Executor) processItem(root, rel string, outcome *types.Outcome) {
	switch e.mode.Item() {
	case types.PolicyDryRun:
		e.logger.Info().Str("path", rel).Msg("Would delete")
		outcome.RecordDeleted()
		return

	case types.PolicyPrompt:
		ok, err := e.confirm(fmt.Sprintf("Delete %s?", rel))
		if err != nil {
			e.logger.Warn().Err(err).Str("path", rel).Msg("Could not read confirmation, skipping")
			outcome.RecordSkipped()
			return
		}
		if !ok {
			e.logger.Info().Str("path", rel).Msg("Skipped")
			outcome.RecordSkipped()
			return
		}
	}

	e.remove(root, rel, outcome)
}

// remove re-checks the entry type at removal time; the tree may have
// changed since traversal, not least because an earlier item in the same
// batch can take a matched child down with it.
func (e *Executor) remove(root, rel string, outcome *types.Outcome) {
	path := filepath.Join(root, rel)

	info, err := e.fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			e.logger.Warn().Str("path", rel).Msg("Not found, already deleted")
			outcome.RecordVanished()
			return
		}
		e.logger.Error().Err(err).Str("path", rel).Msg("Failed to delete")
		outcome.RecordFailed(rel)
		return
	}

	if info.IsDir() {
		err = e.fs.RemoveAll(path)
	} else {
		err = e.fs.Remove(path)
	}
	if err != nil {
		e.logger.Error().Err(err).Str("path", rel).Msg("Failed to delete")
		outcome.RecordFailed(rel)
		return
	}

	e.logger.Info().Str("path", rel).Bool("dir", info.IsDir()).Msg("Deleted")
	outcome.RecordDeleted()
}

func (e *Executor) confirm(prompt string) (bool, error) {
	if e.confirmer == nil {
		return false, fmt.Errorf("no confirmer configured")
	}
	return e.confirmer.Confirm(prompt)
}
