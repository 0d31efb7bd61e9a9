// Package core implements the façade described in §4.8: the single entry
// point wiring the mempool, execution logic, and state store together into
// one submission pipeline, modeled on the teacher's top-level domain
// façade that owns a consensus and a mempool behind one constructor.
package core

import (
	"github.com/PlatariumNetwork/PlatariumCore/asset"
	"github.com/PlatariumNetwork/PlatariumCore/execution"
	"github.com/PlatariumNetwork/PlatariumCore/feeschedule"
	"github.com/PlatariumNetwork/PlatariumCore/internal/log"
	"github.com/PlatariumNetwork/PlatariumCore/mempool"
	"github.com/PlatariumNetwork/PlatariumCore/state"
	"github.com/PlatariumNetwork/PlatariumCore/tx"
)

var coreLog = log.Get(log.CORE)

// Core owns the live State and Mempool and is the sole entry point for
// submitting transactions (§4.8).
type Core struct {
	state   *state.State
	mempool *mempool.Pool
	verify  tx.Verifier
}

// New constructs a Core with an empty State and an empty Mempool. v is the
// external signature verifier every submitted transaction is checked
// against (§4.3, §9); it is an injected collaborator, never constructed by
// Core itself.
func New(v tx.Verifier) *Core {
	return &Core{
		state:   state.New(),
		mempool: mempool.New(),
		verify:  v,
	}
}

// State exposes the live state store for read-only queries and for seeding
// balances in tests and boot sequences.
func (c *Core) State() *state.State {
	return c.state
}

// Mempool exposes the live mempool for read-only queries.
func (c *Core) Mempool() *mempool.Pool {
	return c.mempool
}

// SubmitTransaction runs the exact six-step pipeline of §4.8. On any
// failure after mempool admission, the mempool entry is removed so no
// pending-but-never-executed transaction is leaked; state mutation itself
// is atomic (§4.4), so no partial state is ever observable.
func (c *Core) SubmitTransaction(t *tx.Transaction, pubKey []byte) (tx.Hash, error) {
	if err := t.ValidateBasic(); err != nil {
		return tx.Hash{}, err
	}
	if err := t.VerifySignatures(c.verify, pubKey); err != nil {
		return tx.Hash{}, err
	}

	if err := c.mempool.AddTransaction(t); err != nil {
		return tx.Hash{}, err
	}

	if err := execution.ApplyTransactionEffects(c.state, t); err != nil {
		c.mempool.RemoveTransaction(t.Hash())
		return tx.Hash{}, err
	}

	c.mempool.RemoveTransaction(t.Hash())

	coreLog.Infof("submitted transaction %s from=%s to=%s", t.Hash(), t.From(), t.To())
	return t.Hash(), nil
}

// EstimateFee is the supplemented read-only quote described in
// SPEC_FULL.md §C.2: the fee a transaction submitted right now would be
// charged, given the mempool's current occupancy.
func (c *Core) EstimateFee() asset.MicroPLP {
	return feeschedule.CalculateFeeFromLoad(uint64(c.mempool.Len()))
}
