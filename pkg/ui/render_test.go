package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reap-cli/reap/pkg/types"
	"github.com/reap-cli/reap/pkg/ui"
)

func TestRenderWorklist(t *testing.T) {
	out := ui.RenderWorklist([]string{"a.tmp", "cache"})

	assert.Contains(t, out, "a.tmp")
	assert.Contains(t, out, "cache")
	assert.Contains(t, out, "2 entries")
}

func TestRenderWorklistEmpty(t *testing.T) {
	assert.Contains(t, ui.RenderWorklist(nil), "Nothing matched")
}

func TestRenderSummary(t *testing.T) {
	outcome := &types.Outcome{Total: 3, Deleted: 2, Skipped: 1}
	out := ui.RenderSummary(outcome, false)

	assert.Contains(t, out, "Deleted")
	assert.Contains(t, out, "1 skipped")
}

func TestRenderSummaryDryRun(t *testing.T) {
	outcome := &types.Outcome{Total: 2, Deleted: 2}
	out := ui.RenderSummary(outcome, true)

	assert.Contains(t, out, "Would delete")
}

func TestRenderSummaryFailures(t *testing.T) {
	outcome := &types.Outcome{Total: 2, Deleted: 1, FailedPaths: []string{"stuck.tmp"}}
	out := ui.RenderSummary(outcome, false)

	assert.Contains(t, out, "1 failed")
	assert.Contains(t, out, "stuck.tmp")
}

func TestRenderSummaryAborted(t *testing.T) {
	outcome := &types.Outcome{Total: 4, Aborted: true}
	out := ui.RenderSummary(outcome, false)

	assert.Contains(t, out, "Cancelled")
}
