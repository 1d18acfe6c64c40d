package registry

import (
	"encoding/json"

	"github.com/pulsarjs/pulsar/comps"
	"github.com/pulsarjs/pulsar/reactivity"
)

// signalEntry lets the registry dump/restore a Signal[T] for an arbitrary
// T behind a single non-generic map, since spec.md §6's dump() shape
// (`{ signals: { [id]: value } }`) is untyped/serializable by nature.
type signalEntry struct {
	dump func() any
	boot func(any)
}

var signalRegistry = make(map[string]signalEntry)

// RegisterSignal makes sig addressable by id for Dump/Boot (the SSR
// handshake, spec.md §6). Call it once per signal a host wants to persist
// across a server-render/hydrate boundary.
//
// boot's value arrives two different shapes depending on the caller: an
// in-process Dump()->Boot() round trip hands back the exact T a prior
// Get() produced, so the direct type assertion succeeds; a real SSR
// round trip instead goes through json.Marshal/json.Unmarshal (State's
// json tags exist for exactly this), which decodes every JSON number into
// a float64 and every object into a map[string]any regardless of what T
// originally was. The fallback re-marshals that decoded value and
// unmarshals it straight into a T, which is what actually performs the
// float64->int/struct/slice-shaped coercion — the same two-step detour
// encoding/json itself would take if T were known at decode time.
func RegisterSignal[T any](id string, sig reactivity.Signal[T]) {
	signalRegistry[id] = signalEntry{
		dump: func() any { return sig.Get() },
		boot: func(v any) {
			if tv, ok := v.(T); ok {
				reactivity.RestoreSignal(sig, tv)
				return
			}
			raw, err := json.Marshal(v)
			if err != nil {
				return
			}
			var tv T
			if err := json.Unmarshal(raw, &tv); err != nil {
				return
			}
			reactivity.RestoreSignal(sig, tv)
		},
	}
}

// State is the serializable SSR handshake shape: `{ signals, components,
// hid }` (spec.md §6).
type State struct {
	Signals    map[string]any `json:"signals"`
	Components []string       `json:"components"`
	Hid        int64          `json:"hid"`
}

// Dump returns a snapshot of every registered signal's current value,
// every component id comps.ComponentIDs records, and the hid counter. The returned State
// owns its own map/slice — callers may mutate it freely.
func Dump() State {
	signals := make(map[string]any, len(signalRegistry))
	for id, entry := range signalRegistry {
		signals[id] = entry.dump()
	}
	return State{
		Signals:    signals,
		Components: comps.ComponentIDs(),
		Hid:        hidSeq.Load(),
	}
}

// Boot re-seeds every registered signal named in state.Signals and
// restores the hid counter. It does not notify any subscriber (spec.md
// §6: "it must NOT trigger subscribers during replay"), and it silently
// ignores ids in state.Signals that were never registered via
// RegisterSignal — a boot against a newer build with fewer signals than
// the dump is not an error.
func Boot(state State) {
	for id, value := range state.Signals {
		if entry, ok := signalRegistry[id]; ok {
			entry.boot(value)
		}
	}
	hidSeq.Store(state.Hid)
}
