package state

import (
	"sort"

	"github.com/PlatariumNetwork/PlatariumCore/asset"
	"github.com/PlatariumNetwork/PlatariumCore/tx"
)

// Snapshot is an immutable, cheaply-created view of a State at a point in
// time (§3, §4.4). Its reads are invariant under any subsequent mutation of
// the State it was taken from (§8 property 5).
type Snapshot struct {
	data accounts
}

// GetAssetBalance returns addr's balance of asset a as it stood when the
// snapshot was taken.
func (snap *Snapshot) GetAssetBalance(addr tx.Address, a asset.Asset) asset.Amount {
	acc, ok := snap.data[addr]
	if !ok {
		return asset.Zero
	}
	entry, ok := acc.assetBalances[a.MapKey()]
	if !ok {
		return asset.Zero
	}
	return entry.balance
}

// GetBalance is the PLP-specific alias of GetAssetBalance.
func (snap *Snapshot) GetBalance(addr tx.Address) asset.Amount {
	return snap.GetAssetBalance(addr, asset.PLP())
}

// GetUPLPBalance returns addr's µPLP fee balance as it stood when the
// snapshot was taken.
func (snap *Snapshot) GetUPLPBalance(addr tx.Address) asset.Amount {
	acc, ok := snap.data[addr]
	if !ok {
		return asset.Zero
	}
	return acc.uplpBalance
}

// GetNonce returns addr's nonce as it stood when the snapshot was taken.
func (snap *Snapshot) GetNonce(addr tx.Address) uint64 {
	acc, ok := snap.data[addr]
	if !ok {
		return 0
	}
	return acc.nonce
}

// NewState constructs a fresh, independent State seeded from the snapshot.
// Mutating the returned State never affects snap, and vice versa, because
// State's copy-on-write discipline clones on the returned State's first
// write rather than snap's.
func (snap *Snapshot) NewState() *State {
	return &State{data: snap.data, shared: true}
}

// AddressDelta is one entry of a Snapshot.DiffSummary result: an address
// whose nonce, µPLP balance, or at least one asset balance differs between
// two snapshots.
type AddressDelta struct {
	Address              tx.Address
	NonceBefore          uint64
	NonceAfter           uint64
	UPLPBalanceBefore     asset.Amount
	UPLPBalanceAfter      asset.Amount
	ChangedAssetBalances []AssetBalanceDelta
}

// AssetBalanceDelta is one asset's before/after balance for a single
// address, as reported by DiffSummary.
type AssetBalanceDelta struct {
	Asset  asset.Asset
	Before asset.Amount
	After  asset.Amount
}

// DiffSummary returns a deterministic, sorted-by-address summary of every
// address that differs between snap and other: a read-only audit tool
// modeled on the teacher's UTXODiffStore concept, reimplemented for the
// account model (§C.3 of SPEC_FULL.md). It never mutates either snapshot.
func (snap *Snapshot) DiffSummary(other *Snapshot) []AddressDelta {
	touched := make(map[tx.Address]struct{})
	for addr := range snap.data {
		touched[addr] = struct{}{}
	}
	for addr := range other.data {
		touched[addr] = struct{}{}
	}

	addrs := make([]tx.Address, 0, len(touched))
	for addr := range touched {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	var deltas []AddressDelta
	for _, addr := range addrs {
		before := snap.data[addr].clone()
		after := other.data[addr].clone()

		var changedAssets []AssetBalanceDelta
		seen := make(map[string]struct{})
		for _, entry := range before.assetBalancesSorted() {
			seen[entry.asset.MapKey()] = struct{}{}
			afterEntry, ok := after.assetBalances[entry.asset.MapKey()]
			afterBal := asset.Zero
			if ok {
				afterBal = afterEntry.balance
			}
			if entry.balance.Cmp(afterBal) != 0 {
				changedAssets = append(changedAssets, AssetBalanceDelta{
					Asset: entry.asset, Before: entry.balance, After: afterBal,
				})
			}
		}
		for _, entry := range after.assetBalancesSorted() {
			if _, ok := seen[entry.asset.MapKey()]; ok {
				continue
			}
			if !entry.balance.IsZero() {
				changedAssets = append(changedAssets, AssetBalanceDelta{
					Asset: entry.asset, Before: asset.Zero, After: entry.balance,
				})
			}
		}

		if len(changedAssets) == 0 && before.uplpBalance.Cmp(after.uplpBalance) == 0 && before.nonce == after.nonce {
			continue
		}

		deltas = append(deltas, AddressDelta{
			Address:              addr,
			NonceBefore:          before.nonce,
			NonceAfter:           after.nonce,
			UPLPBalanceBefore:     before.uplpBalance,
			UPLPBalanceAfter:      after.uplpBalance,
			ChangedAssetBalances: changedAssets,
		})
	}
	return deltas
}
