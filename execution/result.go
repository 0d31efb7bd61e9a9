package execution

import "github.com/PlatariumNetwork/PlatariumCore/state"

// Result is the outcome of Simulate: exactly one of FinalState or Err is
// set (§4.5). The original snapshot Simulate was called against is never
// mutated, whichever branch is taken.
type Result struct {
	FinalState *state.Snapshot
	Err        error
}

// Succeeded reports whether the simulation completed without error.
func (r Result) Succeeded() bool {
	return r.Err == nil
}
