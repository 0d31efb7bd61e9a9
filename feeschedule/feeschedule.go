// Package feeschedule computes the load-adaptive base transaction fee
// (§4.2): a pure function of pending mempool occupancy, with no other
// inputs, so it stays deterministic across machines and runs.
package feeschedule

import "github.com/PlatariumNetwork/PlatariumCore/asset"

const (
	// BaseTxFeeMicroPLP is the unscaled fee, before the load multiplier.
	BaseTxFeeMicroPLP = 1

	// MaxBatchSize caps the pending_count considered by the load
	// calculation; larger pools are clamped to 100% load.
	MaxBatchSize = 1000
)

// loadMultiplier maps an integer load percentage (0-100) to its fee
// multiplier, per the table in §4.2. Boundaries are inclusive of the upper
// endpoint of each bucket.
func loadMultiplier(loadPercent uint64) uint32 {
	switch {
	case loadPercent <= 30:
		return 1
	case loadPercent <= 60:
		return 2
	case loadPercent <= 80:
		return 3
	default:
		return 5
	}
}

// LoadPercent computes p = min(pendingCount, MaxBatchSize) * 100 / MaxBatchSize,
// the integer occupancy percentage used to pick a multiplier bucket.
func LoadPercent(pendingCount uint64) uint64 {
	clamped := pendingCount
	if clamped > MaxBatchSize {
		clamped = MaxBatchSize
	}
	return clamped * 100 / MaxBatchSize
}

// CalculateFeeFromLoad is the pure function of mempool occupancy described
// in §4.2: fee = BaseTxFeeMicroPLP * multiplier(load(pendingCount)).
func CalculateFeeFromLoad(pendingCount uint64) asset.MicroPLP {
	multiplier := loadMultiplier(LoadPercent(pendingCount))
	// BaseTxFeeMicroPLP * multiplier never overflows uint64 for any
	// multiplier in {1,2,3,5}; CheckedMulU32 is used anyway so this stays
	// the single source of truth for overflow-checked fee arithmetic.
	fee, err := asset.NewMicroPLP(BaseTxFeeMicroPLP).CheckedMulU32(multiplier)
	if err != nil {
		// Unreachable for the fixed multiplier set above; a panic here
		// would indicate the multiplier table itself is broken.
		panic(err)
	}
	return fee
}
