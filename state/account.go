package state

import (
	"sort"

	"github.com/PlatariumNetwork/PlatariumCore/asset"
)

// assetBalanceEntry pairs a balance with the Asset it denominates, so a
// cloned AccountState can reconstruct the full Asset (including a token's
// symbol) from the map-key-only index.
type assetBalanceEntry struct {
	asset   asset.Asset
	balance asset.Amount
}

// AccountState is the per-address bundle of mutable fields described in
// §3: one balance per asset held, a separate µPLP fee balance, and a
// replay-protection nonce. The zero value is the account every address
// defaults to before its first write.
type AccountState struct {
	assetBalances map[string]assetBalanceEntry
	uplpBalance   asset.Amount
	nonce         uint64
}

func newZeroAccount() *AccountState {
	return &AccountState{assetBalances: make(map[string]assetBalanceEntry)}
}

// clone returns a deep-enough copy of acc: a fresh AccountState and a fresh
// assetBalances map, so mutating the clone can never be observed through
// any earlier Snapshot that still references acc.
func (acc *AccountState) clone() *AccountState {
	if acc == nil {
		return newZeroAccount()
	}
	cloned := make(map[string]assetBalanceEntry, len(acc.assetBalances))
	for k, v := range acc.assetBalances {
		cloned[k] = v
	}
	return &AccountState{
		assetBalances: cloned,
		uplpBalance:   acc.uplpBalance,
		nonce:         acc.nonce,
	}
}

// assetBalancesSorted returns a stable, sorted snapshot of every asset this
// account holds a nonzero or explicitly-set balance for. Used by
// diagnostics (Snapshot.DiffSummary) and tests; never by execution.
func (acc *AccountState) assetBalancesSorted() []assetBalanceEntry {
	out := make([]assetBalanceEntry, 0, len(acc.assetBalances))
	for _, entry := range acc.assetBalances {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].asset.MapKey() < out[j].asset.MapKey() })
	return out
}
