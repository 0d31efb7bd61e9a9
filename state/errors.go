package state

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInsufficientFee is returned when an address's µPLP balance cannot
// cover a transfer's fee_uplp.
var ErrInsufficientFee = errors.New("InsufficientFee")

// ErrInsufficientBalance is returned when an address's asset balance cannot
// cover a transfer's amount.
var ErrInsufficientBalance = errors.New("InsufficientBalance")

// NonceMismatchError is returned when a transfer's nonce does not match the
// sender's current on-chain nonce (§4.4 step 1).
type NonceMismatchError struct {
	Expected uint64
	Actual   uint64
}

func (e *NonceMismatchError) Error() string {
	return fmt.Sprintf("NonceMismatch: expected=%d actual=%d", e.Expected, e.Actual)
}
