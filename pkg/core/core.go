// Package core wires selection and execution into one run: configure a
// Runner once, preview with Select, mutate with Execute.
package core

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/reap-cli/reap/pkg/config"
	"github.com/reap-cli/reap/pkg/errors"
	"github.com/reap-cli/reap/pkg/executor"
	"github.com/reap-cli/reap/pkg/filesystem"
	"github.com/reap-cli/reap/pkg/logging"
	"github.com/reap-cli/reap/pkg/selection"
	"github.com/reap-cli/reap/pkg/types"
)

// RunnerOptions configures a run
type RunnerOptions struct {
	Search    types.SearchConfig
	Mode      types.SafetyMode
	Confirmer types.Confirmer
	Format    string

	// FS defaults to the OS filesystem when nil.
	FS types.FS
}

// Runner owns one selection-and-deletion run. It is not reused across
// runs; each invocation builds its own worklist and outcome.
type Runner struct {
	search    types.SearchConfig
	mode      types.SafetyMode
	confirmer types.Confirmer
	fs        types.FS
	logger    zerolog.Logger

	worklist []string
	selected bool
}

// NewRunner validates the configuration and returns a ready Runner.
// Invalid configuration is rejected here, before any traversal.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	search := opts.Search
	if search.Root == "" {
		cwd, err := os.Getwd()
		if err == nil {
			search.Root = cwd
		} else {
			search.Root = "."
		}
	}

	if err := config.Validate(search, opts.Format); err != nil {
		return nil, err
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	info, err := fs.Stat(search.Root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRootInvalid, "cannot access root %s", search.Root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrRootInvalid, "root %s is not a directory", search.Root)
	}

	return &Runner{
		search:    search,
		mode:      opts.Mode,
		confirmer: opts.Confirmer,
		fs:        fs,
		logger:    logging.GetLogger("core"),
	}, nil
}

// Select builds and returns the ordered worklist without mutating
// anything. Safe to call more than once; the filesystem is re-read each
// time and an unchanged tree yields an identical sequence.
func (r *Runner) Select() []string {
	r.worklist = selection.New(r.fs).Select(r.search)
	r.selected = true
	return r.worklist
}

// Execute runs the deletion state machine over the worklist, selecting
// first if the caller has not already done so
func (r *Runner) Execute() *types.Outcome {
	if !r.selected {
		r.Select()
	}

	r.logger.Debug().Int("worklist", len(r.worklist)).Msg("Starting execution")

	exec := executor.New(executor.Options{
		Mode:      r.mode,
		Confirmer: r.confirmer,
		Logger:    logging.GetLogger("executor"),
		FS:        r.fs,
	})

	return exec.Execute(r.search.Root, r.worklist)
}
