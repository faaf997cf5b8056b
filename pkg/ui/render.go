package ui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/reap-cli/reap/pkg/types"
)

var (
	titleStyle  = pterm.NewStyle(pterm.Bold)
	dangerStyle = pterm.NewStyle(pterm.FgRed)
	okStyle     = pterm.NewStyle(pterm.FgGreen)
	mutedStyle  = pterm.NewStyle(pterm.FgGray)
)

// RenderWorklist renders the preview listing shown before a gated batch
// or in dry-run mode
func RenderWorklist(paths []string) string {
	if len(paths) == 0 {
		return mutedStyle.Sprint("Nothing matched")
	}

	var result strings.Builder
	result.WriteString(titleStyle.Sprint("Entries selected for deletion") + "\n\n")

	for _, p := range paths {
		result.WriteString(fmt.Sprintf("  %s %s\n", dangerStyle.Sprint("x"), p))
	}

	result.WriteString("\n")
	result.WriteString(mutedStyle.Sprintf("%d entries", len(paths)))

	return result.String()
}

// RenderSummary renders the end-of-run tally. Failed paths are listed so
// the operator does not have to dig them out of the log.
func RenderSummary(outcome *types.Outcome, dryRun bool) string {
	if outcome.Aborted {
		return mutedStyle.Sprint("Cancelled, nothing deleted")
	}

	var result strings.Builder

	verb := "Deleted"
	if dryRun {
		verb = "Would delete"
	}

	result.WriteString(fmt.Sprintf("%s %s of %d entries",
		titleStyle.Sprint(verb),
		okStyle.Sprintf("%d", outcome.Deleted),
		outcome.Total))

	if outcome.Skipped > 0 {
		result.WriteString(mutedStyle.Sprintf(", %d skipped", outcome.Skipped))
	}
	if outcome.Vanished > 0 {
		result.WriteString(mutedStyle.Sprintf(", %d already gone", outcome.Vanished))
	}

	if outcome.Failed() > 0 {
		result.WriteString("\n\n")
		result.WriteString(dangerStyle.Sprintf("%d failed:", outcome.Failed()) + "\n")
		for _, p := range outcome.FailedPaths {
			result.WriteString(fmt.Sprintf("  %s %s\n", dangerStyle.Sprint("!"), p))
		}
	}

	return strings.TrimRight(result.String(), "\n")
}
