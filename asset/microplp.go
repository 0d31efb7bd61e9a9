package asset

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// MicroPLPPerPLP is the number of micro-units in one PLP (§2: 1 PLP = 1,000,000 µPLP).
const MicroPLPPerPLP = 1_000_000

// ErrArithmeticOverflow is returned whenever a checked MicroPLP or Amount
// operation would overflow its representable range.
var ErrArithmeticOverflow = errors.New("ArithmeticOverflow")

// MicroPLP is a newtype around an unsigned 64-bit integer representing a
// quantity of µPLP. All arithmetic is checked: overflow is an error, never a
// silent wraparound.
type MicroPLP uint64

// NewMicroPLP constructs a MicroPLP from a raw uint64.
func NewMicroPLP(v uint64) MicroPLP {
	return MicroPLP(v)
}

// AsU64 returns the raw underlying value.
func (m MicroPLP) AsU64() uint64 {
	return uint64(m)
}

// AsPLP returns the integer PLP part of the quantity (truncating µPLP
// remainder).
func (m MicroPLP) AsPLP() uint64 {
	return uint64(m) / MicroPLPPerPLP
}

// RemainderMicroPLP returns the sub-PLP remainder, 0..999_999.
func (m MicroPLP) RemainderMicroPLP() uint32 {
	return uint32(uint64(m) % MicroPLPPerPLP)
}

// String renders the quantity as "<PLP>.<six-digit µPLP remainder>".
func (m MicroPLP) String() string {
	return fmt.Sprintf("%d.%06d", m.AsPLP(), m.RemainderMicroPLP())
}

// CheckedAdd returns m+other, failing with ErrArithmeticOverflow on overflow.
func (m MicroPLP) CheckedAdd(other MicroPLP) (MicroPLP, error) {
	sum := uint64(m) + uint64(other)
	if sum < uint64(m) {
		return 0, ErrArithmeticOverflow
	}
	return MicroPLP(sum), nil
}

// CheckedSub returns m-other, failing with ErrArithmeticOverflow if other > m.
func (m MicroPLP) CheckedSub(other MicroPLP) (MicroPLP, error) {
	if other > m {
		return 0, ErrArithmeticOverflow
	}
	return m - other, nil
}

// CheckedMulU32 returns m*factor, failing with ErrArithmeticOverflow on
// overflow.
func (m MicroPLP) CheckedMulU32(factor uint32) (MicroPLP, error) {
	if factor == 0 || uint64(m) == 0 {
		return 0, nil
	}
	if uint64(m) > math.MaxUint64/uint64(factor) {
		return 0, ErrArithmeticOverflow
	}
	return MicroPLP(uint64(m) * uint64(factor)), nil
}
