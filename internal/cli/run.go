package cli

import (
	"fmt"
	"os"

	"github.com/reap-cli/reap/pkg/config"
	"github.com/reap-cli/reap/pkg/core"
	"github.com/reap-cli/reap/pkg/errors"
	"github.com/reap-cli/reap/pkg/logging"
	"github.com/reap-cli/reap/pkg/types"
	"github.com/reap-cli/reap/pkg/ui"
)

// runOptions carries the root command's flag values
type runOptions struct {
	files       string
	dirs        string
	all         string
	exclude     []string
	depth       int
	depthSet    bool
	root        string
	dryRun      bool
	force       bool
	interactive bool
	preview     bool
	format      string
	formatSet   bool
	verbosity   int
}

// showWorklist reports whether the selected paths are printed before the
// executor runs. A pending batch confirmation always shows the full list,
// whatever the output format: the operator must see what they are about
// to approve. Dry runs show it in pretty output, where the listing is the
// whole point.
func showWorklist(mode types.SafetyMode, format string) bool {
	return mode.GatesBatch() || (format == logging.FormatPretty && !mode.Mutates())
}

// runReap merges flags over the layered configuration, builds the
// worklist, and drives the executor. Configuration problems are rejected
// here, before any traversal.
func runReap(opts *runOptions) error {
	logger := logging.GetLogger("cli")

	root := opts.root
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, errors.ErrRootInvalid, "cannot determine working directory")
		}
		root = cwd
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	format := cfg.Format
	if opts.formatSet {
		format = opts.format
	}
	if format != opts.format {
		// The config file changed the console rendering; reconfigure.
		logging.SetupLogger(opts.verbosity, format)
	}

	depth := cfg.Depth
	if opts.depthSet {
		if opts.depth < 1 {
			return errors.Newf(errors.ErrDepthInvalid, "depth must be a positive integer, got %d", opts.depth)
		}
		depth = opts.depth
	}

	// Config-file protections come first, flag protections after, order
	// preserved within each.
	exclusions := append(append([]string{}, cfg.Exclude...), opts.exclude...)

	search := types.SearchConfig{
		Root:       root,
		Files:      opts.files,
		Folders:    opts.dirs,
		Mixed:      opts.all,
		Exclusions: exclusions,
		MaxDepth:   depth,
	}
	mode := types.DeriveSafetyMode(opts.dryRun, opts.force, opts.interactive, opts.preview)

	logger.Info().
		Str("root", root).
		Str("files", opts.files).
		Str("dirs", opts.dirs).
		Str("all", opts.all).
		Strs("exclude", exclusions).
		Int("depth", depth).
		Bool("dryRun", opts.dryRun).
		Bool("force", opts.force).
		Bool("interactive", opts.interactive).
		Bool("preview", opts.preview).
		Msg("Starting run")

	runner, err := core.NewRunner(core.RunnerOptions{
		Search:    search,
		Mode:      mode,
		Confirmer: ui.NewStdinConfirmer(),
		Format:    format,
	})
	if err != nil {
		return err
	}

	worklist := runner.Select()

	if showWorklist(mode, format) {
		fmt.Println(ui.RenderWorklist(worklist))
		fmt.Println()
	}

	outcome := runner.Execute()

	if format == logging.FormatPretty {
		fmt.Println(ui.RenderSummary(outcome, !mode.Mutates()))
	}

	if outcome.Failed() > 0 {
		return errors.Newf(errors.ErrRemoveFailed, "%d of %d deletions failed", outcome.Failed(), outcome.Total)
	}
	return nil
}
