package tx

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// HashSize is the length in bytes of a transaction hash (SHA-256 digest).
const HashSize = 32

// Hash is a 32-byte content-addressed transaction identifier, rendered as
// lowercase hex.
type Hash [HashSize]byte

// String returns the lowercase hex encoding of the hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether h is the all-zero hash (the zero value of Hash,
// which no Transaction built by NewSigned carries).
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// HashFromHex parses a lowercase or uppercase hex string into a Hash.
func HashFromHex(s string) (Hash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, errors.Wrap(err, "invalid hash hex")
	}
	if len(b) != HashSize {
		return Hash{}, errors.Errorf("invalid hash length %d, want %d", len(b), HashSize)
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}
