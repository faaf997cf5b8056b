package types

// ItemPolicy is the terminal per-item behavior after flag precedence has
// been applied
type ItemPolicy string

const (
	// PolicyDryRun records what would be deleted without touching the filesystem
	PolicyDryRun ItemPolicy = "dry-run"

	// PolicyPrompt asks the operator before each removal
	PolicyPrompt ItemPolicy = "prompt"

	// PolicyDelete removes without asking
	PolicyDelete ItemPolicy = "delete"
)

// SafetyMode is the combination of dry-run/interactive/force/preview flags
// collapsed into one precedence-ordered behavior. It is derived once at
// configuration time so the executor never re-reads raw booleans.
type SafetyMode struct {
	item        ItemPolicy
	previewGate bool
}

// DeriveSafetyMode applies the flag precedence table:
// dry-run beats everything, force suppresses prompts but still mutates,
// and the batch preview gate is active only when neither of those holds.
func DeriveSafetyMode(dryRun, force, interactive, preview bool) SafetyMode {
	m := SafetyMode{item: PolicyDelete}
	switch {
	case dryRun:
		m.item = PolicyDryRun
	case interactive && !force:
		m.item = PolicyPrompt
	}
	m.previewGate = preview && !dryRun && !force
	return m
}

// Item returns the per-item terminal policy
func (m SafetyMode) Item() ItemPolicy { return m.item }

// GatesBatch reports whether a single confirmation must pass before any
// item is processed
func (m SafetyMode) GatesBatch() bool { return m.previewGate }

// Mutates reports whether the run can touch the filesystem at all
func (m SafetyMode) Mutates() bool { return m.item != PolicyDryRun }
