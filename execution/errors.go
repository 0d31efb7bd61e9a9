package execution

import "github.com/pkg/errors"

// ErrCommitNotAllowedInSimulation is returned by Commit when ctx is
// Simulation (§4.5, §7).
var ErrCommitNotAllowedInSimulation = errors.New("CommitNotAllowedInSimulation")
