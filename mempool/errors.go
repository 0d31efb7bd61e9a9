package mempool

import "github.com/pkg/errors"

// ErrDuplicateTransaction is returned by AddTransaction when a transaction
// with the same hash is already present (§4.6).
var ErrDuplicateTransaction = errors.New("DuplicateTransaction")

// ErrCounterOverflow is returned by AddTransaction if the monotonic arrival
// counter would wrap. The pool's lifetime is bounded by design; reaching
// this is a fatal invariant violation (§4.6).
var ErrCounterOverflow = errors.New("mempool arrival counter overflow")
