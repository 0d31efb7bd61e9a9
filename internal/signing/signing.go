// Package signing provides the concrete external signature verifier the
// engine delegates to (§1, §4.3, §9): a secp256k1 ECDSA Verify(sig, msg,
// pubkey) -> bool predicate satisfying the tx.Verifier interface. Key
// derivation and signature production live outside the deterministic core,
// in internal/keys and cmd/platarium.
package signing

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Secp256k1Verifier implements tx.Verifier using DER-encoded ECDSA
// signatures over secp256k1, the scheme the CLI's sign-message command
// produces (§6).
type Secp256k1Verifier struct{}

// Verify reports whether sig is a valid DER-encoded ECDSA signature over
// msg by the secp256k1 public key pubKey. Any malformed input (an
// unparseable signature or public key) is treated as an invalid signature,
// never an error: the Verifier interface has no error return, matching the
// spec's boolean predicate (§4.3).
func (Secp256k1Verifier) Verify(sig, msg, pubKey []byte) bool {
	parsedSig, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	parsedPubKey, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return false
	}
	return parsedSig.Verify(msg, parsedPubKey)
}

// Sign produces a DER-encoded ECDSA signature over msg using priv. It is an
// external-collaborator helper for the CLI's sign-message command; the
// deterministic core never calls it.
func Sign(priv *secp256k1.PrivateKey, msg []byte) []byte {
	return ecdsa.Sign(priv, msg).Serialize()
}
