// Package execution composes transaction validation and state mutation
// (§4.5): the same three-step pipeline runs against the live State in
// Production, or against a disposable snapshot-derived copy in Simulation.
package execution

// Context distinguishes a Production run, which mutates the caller's live
// state, from a Simulation run, which never does.
type Context int

const (
	// Production executes directly against the caller's live State.
	Production Context = iota
	// Simulation executes against a private, snapshot-derived copy; the
	// caller's state is never observed to change.
	Simulation
)

func (c Context) String() string {
	switch c {
	case Production:
		return "Production"
	case Simulation:
		return "Simulation"
	default:
		return "Unknown"
	}
}

// Commit is a no-op under Production and fails under Simulation: a
// simulated execution result can never be committed directly, it must be
// re-submitted through the façade to take effect (§4.5).
func Commit(ctx Context) error {
	if ctx == Simulation {
		return ErrCommitNotAllowedInSimulation
	}
	return nil
}
