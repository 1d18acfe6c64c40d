package registry

import (
	"github.com/pulsarjs/pulsar/comps"
	"github.com/pulsarjs/pulsar/internal/diag"
)

// Stats is a point-in-time snapshot returned by GetStats (spec.md §4.9,
// §9: "observability endpoints... should keep them cheap to compute and
// never leak internal mutable collections — return snapshots").
type Stats struct {
	TrackedElements int
	Components      int
	RegisteredSignals int
	Diagnostics     int64
	Hid             int64
}

// GetStats returns a snapshot of the registry's process-global counters.
func GetStats() Stats {
	return Stats{
		TrackedElements:   len(disposers),
		Components:        len(comps.ComponentIDs()),
		RegisteredSignals: len(signalRegistry),
		Diagnostics:       diag.Count(),
		Hid:               hidSeq.Load(),
	}
}

// GetComponentTree returns every component id comps.ComponentIDs records
// (those whose factory returned an element), sorted, as a flat
// snapshot (spec.md §4.9's getComponentTree debug view). The registry
// does not itself retain a parent/child component tree shape beyond
// ComponentContext.ParentID recorded per execution, so this is a flat
// listing rather than a nested structure — sufficient for the
// observability role the spec assigns it.
func GetComponentTree() []string {
	return comps.ComponentIDs()
}

// GetSignals returns a snapshot of every signal registered via
// RegisterSignal, keyed by id. Equivalent in role to Dump().Signals, but
// named to match spec.md §4.9's debug-view surface directly.
func GetSignals() map[string]any {
	out := make(map[string]any, len(signalRegistry))
	for id, entry := range signalRegistry {
		out[id] = entry.dump()
	}
	return out
}

// EnableDebug turns on the diagnostics print channel (internal/diag).
func EnableDebug() { diag.Enable(true) }

// DisableDebug turns off the diagnostics print channel without affecting
// the running diagnostic counter GetStats reports.
func DisableDebug() { diag.Enable(false) }
