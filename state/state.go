// Package state implements the account-based state store (§3, §4.4): a
// mapping from Address to AccountState with O(1)-amortized, copy-on-write
// snapshotting and atomic transfer application.
package state

import (
	"math"
	"sync"

	"github.com/PlatariumNetwork/PlatariumCore/asset"
	"github.com/PlatariumNetwork/PlatariumCore/internal/log"
	"github.com/PlatariumNetwork/PlatariumCore/tx"
)

var stateLog = log.Get(log.STAT)

// accounts is the outer per-address map. It is a plain Go map, which is
// already a reference type; what makes it copy-on-write is the State's
// discipline of never mutating a map that might be aliased by a live
// Snapshot (tracked by the `shared` flag) without cloning it first.
type accounts map[tx.Address]*AccountState

// State is the mutable, in-memory account store. All addresses default to
// the zero account on first read; accounts are created lazily on first
// write and are never deleted.
type State struct {
	mu     sync.RWMutex
	data   accounts
	shared bool
}

// New constructs an empty State.
func New() *State {
	return &State{data: make(accounts)}
}

// ensureUnsharedLocked must be called with mu held for writing before any
// mutation. If the current map might be aliased by a live Snapshot, it is
// cloned (a single O(n)-in-address-count pass) before the write proceeds;
// this is what keeps snapshot() itself O(1) while preserving snapshot
// immutability (§8 property 5).
func (s *State) ensureUnsharedLocked() {
	if !s.shared {
		return
	}
	cloned := make(accounts, len(s.data))
	for addr, acc := range s.data {
		cloned[addr] = acc
	}
	s.data = cloned
	s.shared = false
}

func (s *State) cloneOrZeroLocked(addr tx.Address) *AccountState {
	return s.data[addr].clone()
}

// GetAssetBalance returns addr's balance of asset a, or 0 if unset.
func (s *State) GetAssetBalance(addr tx.Address, a asset.Asset) asset.Amount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getAssetBalanceLocked(addr, a)
}

func (s *State) getAssetBalanceLocked(addr tx.Address, a asset.Asset) asset.Amount {
	acc, ok := s.data[addr]
	if !ok {
		return asset.Zero
	}
	entry, ok := acc.assetBalances[a.MapKey()]
	if !ok {
		return asset.Zero
	}
	return entry.balance
}

// GetUPLPBalance returns addr's µPLP fee balance, or 0 if unset. This is
// distinct from any PLP asset balance (§3).
func (s *State) GetUPLPBalance(addr tx.Address) asset.Amount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getUPLPBalanceLocked(addr)
}

func (s *State) getUPLPBalanceLocked(addr tx.Address) asset.Amount {
	acc, ok := s.data[addr]
	if !ok {
		return asset.Zero
	}
	return acc.uplpBalance
}

// GetNonce returns addr's current nonce, or 0 if unset.
func (s *State) GetNonce(addr tx.Address) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getNonceLocked(addr)
}

func (s *State) getNonceLocked(addr tx.Address) uint64 {
	acc, ok := s.data[addr]
	if !ok {
		return 0
	}
	return acc.nonce
}

// SetAssetBalance is an unchecked setter for test/boot use (§4.4).
func (s *State) SetAssetBalance(addr tx.Address, a asset.Asset, v asset.Amount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureUnsharedLocked()
	newAcc := s.cloneOrZeroLocked(addr)
	newAcc.assetBalances[a.MapKey()] = assetBalanceEntry{asset: a, balance: v}
	s.data[addr] = newAcc
}

// SetUPLPBalance is an unchecked setter for test/boot use (§4.4). Legacy
// aliases SetBalance/GetBalance operate on the PLP asset specifically; see
// SetBalance/GetBalance below.
func (s *State) SetUPLPBalance(addr tx.Address, v asset.Amount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureUnsharedLocked()
	newAcc := s.cloneOrZeroLocked(addr)
	newAcc.uplpBalance = v
	s.data[addr] = newAcc
}

// SetNonce is an unchecked setter for test/boot use (§4.4).
func (s *State) SetNonce(addr tx.Address, v uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureUnsharedLocked()
	newAcc := s.cloneOrZeroLocked(addr)
	newAcc.nonce = v
	s.data[addr] = newAcc
}

// SetBalance and GetBalance are the legacy PLP-balance aliases described in
// §3: they operate on asset_balances[PLP] specifically.
func (s *State) SetBalance(addr tx.Address, v asset.Amount) {
	s.SetAssetBalance(addr, asset.PLP(), v)
}

// GetBalance is the PLP-specific alias of GetAssetBalance.
func (s *State) GetBalance(addr tx.Address) asset.Amount {
	return s.GetAssetBalance(addr, asset.PLP())
}

// ApplyTransaction applies tx's effects to the state; it is equivalent to
// ApplyTransfer(tx.From(), tx.To(), tx.Asset(), tx.Amount(), tx.FeeMicroPLP(), tx.Nonce())
// (§4.4).
func (s *State) ApplyTransaction(t *tx.Transaction) error {
	return s.ApplyTransfer(t.From(), t.To(), t.Asset(), t.Amount(), t.FeeMicroPLP(), t.Nonce())
}

// ApplyTransfer performs the atomic mutation of §4.4 step 4: every read and
// arithmetic check is staged before any write lands, so a failure at any
// stage leaves the State byte-identical to its pre-call value (§8 property
// 4). It assumes from != to and from != tx.Treasury, both enforced upstream
// by Transaction.ValidateBasic; calling it with those invariants violated
// produces unspecified results.
func (s *State) ApplyTransfer(from, to tx.Address, a asset.Asset, amount, feeUPLP asset.Amount, nonce uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	currentNonce := s.getNonceLocked(from)
	if nonce != currentNonce {
		return &NonceMismatchError{Expected: currentNonce, Actual: nonce}
	}

	fromUPLP := s.getUPLPBalanceLocked(from)
	if fromUPLP.Cmp(feeUPLP) < 0 {
		return ErrInsufficientFee
	}

	fromBal := s.getAssetBalanceLocked(from, a)
	if fromBal.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}

	// Stage every new value with checked arithmetic before any write (§4.4:
	// "the simplest correct implementation stages all reads, computes all
	// new values with checked arithmetic, and writes them only after every
	// check passes").
	newFromUPLP, err := fromUPLP.CheckedSub(feeUPLP)
	if err != nil {
		return err
	}
	newFromBal, err := fromBal.CheckedSub(amount)
	if err != nil {
		return err
	}
	toBal := s.getAssetBalanceLocked(to, a)
	newToBal, err := toBal.CheckedAdd(amount)
	if err != nil {
		return err
	}
	treasuryUPLP := s.getUPLPBalanceLocked(tx.Treasury)
	newTreasuryUPLP, err := treasuryUPLP.CheckedAdd(feeUPLP)
	if err != nil {
		return err
	}
	if nonce == math.MaxUint64 {
		return asset.ErrArithmeticOverflow
	}
	newNonce := nonce + 1

	s.ensureUnsharedLocked()

	fromAcc := s.cloneOrZeroLocked(from)
	fromAcc.assetBalances[a.MapKey()] = assetBalanceEntry{asset: a, balance: newFromBal}
	fromAcc.uplpBalance = newFromUPLP
	fromAcc.nonce = newNonce
	s.data[from] = fromAcc

	toAcc := s.cloneOrZeroLocked(to)
	toAcc.assetBalances[a.MapKey()] = assetBalanceEntry{asset: a, balance: newToBal}
	s.data[to] = toAcc

	treasuryAcc := s.cloneOrZeroLocked(tx.Treasury)
	treasuryAcc.uplpBalance = newTreasuryUPLP
	s.data[tx.Treasury] = treasuryAcc

	stateLog.Debugf("applied transfer %s -> %s asset=%s amount=%s fee=%s nonce=%d",
		from, to, a, amount, feeUPLP, nonce)

	return nil
}

// Snapshot captures the current State in O(1) amortized time: it shares
// the live map by reference and marks it shared, deferring the actual
// clone to the next mutation (§4.4, §9).
func (s *State) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shared = true
	return &Snapshot{data: s.data}
}

// Restore atomically replaces the live State with snap's contents (§4.4).
// Multiple live snapshots, including snap itself, may coexist and keep
// working after a restore since Restore never mutates snap.data in place.
func (s *State) Restore(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = snap.data
	s.shared = true
}

// Clone returns a new, independent State seeded from a snapshot of s, for
// use as the mutable copy Simulation execution operates against (§4.5).
func (s *State) Clone() *State {
	return s.Snapshot().NewState()
}
