// Package asset defines the typed value model of the Platarium engine: the
// tagged asset union (the base PLP asset and arbitrary tokens) and the
// MicroPLP fee scalar.
package asset

import (
	"encoding/binary"
	"regexp"

	"github.com/pkg/errors"
)

// Kind distinguishes the two Asset variants.
type Kind uint8

const (
	// KindPLP is the base asset of the network.
	KindPLP Kind = 0
	// KindToken is an arbitrary, opaque-denomination token.
	KindToken Kind = 1
)

var tokenSymbolPattern = regexp.MustCompile(`^[A-Z0-9:_-]{1,32}$`)

// Asset is a tagged union over the base PLP asset and a named token.
// The zero value is PLP.
type Asset struct {
	kind   Kind
	symbol string
}

// PLP returns the base asset.
func PLP() Asset {
	return Asset{kind: KindPLP}
}

// Token returns the token asset identified by symbol. symbol must match
// [A-Z0-9:_-]{1,32}.
func Token(symbol string) (Asset, error) {
	if !tokenSymbolPattern.MatchString(symbol) {
		return Asset{}, errors.Errorf("invalid token symbol %q: must match [A-Z0-9:_-]{1,32}", symbol)
	}
	return Asset{kind: KindToken, symbol: symbol}, nil
}

// IsPLP reports whether a is the base asset.
func (a Asset) IsPLP() bool {
	return a.kind == KindPLP
}

// Symbol returns the token symbol. It is the empty string for PLP.
func (a Asset) Symbol() string {
	return a.symbol
}

// String renders the asset for logs and error messages.
func (a Asset) String() string {
	if a.IsPLP() {
		return "PLP"
	}
	return "Token(" + a.symbol + ")"
}

// Less implements the canonical ordering used for hashing: PLP sorts before
// any Token, and Tokens sort lexicographically by symbol.
func (a Asset) Less(other Asset) bool {
	if a.kind != other.kind {
		return a.kind < other.kind
	}
	return a.symbol < other.symbol
}

// Equal reports structural equality.
func (a Asset) Equal(other Asset) bool {
	return a.kind == other.kind && a.symbol == other.symbol
}

// CanonicalEncoding returns the fixed byte encoding used by the transaction
// hash (§4.1): one tag byte (0 for PLP, 1 for Token), followed for tokens by
// the UTF-8 symbol bytes, length-prefixed with a big-endian uint32.
func (a Asset) CanonicalEncoding() []byte {
	if a.IsPLP() {
		return []byte{byte(KindPLP)}
	}
	symbolBytes := []byte(a.symbol)
	buf := make([]byte, 1+4+len(symbolBytes))
	buf[0] = byte(KindToken)
	binary.BigEndian.PutUint32(buf[1:5], uint32(len(symbolBytes)))
	copy(buf[5:], symbolBytes)
	return buf
}

// MapKey returns a string usable as a map key with the same equality and
// ordering semantics as Asset itself.
func (a Asset) MapKey() string {
	if a.IsPLP() {
		return "P"
	}
	return "T:" + a.symbol
}
