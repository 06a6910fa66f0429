package domain

import "go.trai.ch/zerr"

// Registrations holds the three ordered lists derived from a manifest.
type Registrations struct {
	Run         []HookEntry
	Terminated  []HookEntry
	Definitions []DIReference
}

// IsEmpty reports whether all three lists are empty.
func (r Registrations) IsEmpty() bool {
	return len(r.Run) == 0 && len(r.Terminated) == 0 && len(r.Definitions) == 0
}

// TerminatedRouting selects which list terminated hooks are appended to.
type TerminatedRouting string

const (
	// TerminatedSeparate routes terminated hooks into the terminated list.
	TerminatedSeparate TerminatedRouting = "separate"
	// TerminatedLegacy appends terminated hooks to the run list, as older loaders did.
	TerminatedLegacy TerminatedRouting = "legacy"
)

// ParseTerminatedRouting converts a configuration value into a TerminatedRouting.
// An empty value selects TerminatedSeparate.
func ParseTerminatedRouting(s string) (TerminatedRouting, error) {
	switch TerminatedRouting(s) {
	case "", TerminatedSeparate:
		return TerminatedSeparate, nil
	case TerminatedLegacy:
		return TerminatedLegacy, nil
	default:
		return "", zerr.With(ErrInvalidTerminatedRouting, "value", s)
	}
}
