// Package keys implements the CLI's HD key derivation external
// collaborator (§6, §9 "Dual signatures"): deriving a main signing key and
// a second, HKDF-bound derived key from a BIP39 seed so a transaction can
// carry the two independent signatures the core's Verifier checks.
package keys

import (
	"crypto/sha256"
	"crypto/sha512"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/ripemd160"
)

// derivedKeyInfo is the HKDF context string binding a derived key to the
// "auxiliary signature" purpose described in §9, keeping it
// cryptographically independent of any other HKDF expansion of the same
// seed.
const derivedKeyInfo = "platarium:derived-signature:v1"

// SeedFromMnemonic derives a 64-byte seed from a BIP39 mnemonic and its
// accompanying alphanumeric passphrase, using PBKDF2-HMAC-SHA512 per the
// BIP39 standard (2048 rounds, the fixed "mnemonic" salt prefix).
func SeedFromMnemonic(mnemonic, alphanumeric string) []byte {
	salt := "mnemonic" + alphanumeric
	return pbkdf2.Key([]byte(mnemonic), []byte(salt), 2048, 64, sha512.New)
}

// KeyPair holds a derived signing key and its public key (§6's public key
// hex output is the main key's SerializeCompressed()). Its fingerprint is
// computed separately by Fingerprint.
type KeyPair struct {
	Private *secp256k1.PrivateKey
	Public  *secp256k1.PublicKey
}

// DeriveMainKey derives the primary signing key for the given seed index
// (§6's --seed-index), by hashing the seed and index together and reducing
// modulo the curve order via secp256k1.PrivKeyFromBytes.
func DeriveMainKey(seed []byte, seedIndex uint32) KeyPair {
	material := deriveScalarMaterial(seed, "main", seedIndex)
	priv := secp256k1.PrivKeyFromBytes(material)
	return KeyPair{Private: priv, Public: priv.PubKey()}
}

// DeriveDerivedKey derives the auxiliary signing key used to produce
// sig_derived (§9 "Dual signatures"), via HKDF-SHA256 expansion of the seed
// bound to derivedKeyInfo and the seed index, keeping it independent of the
// main key even though both descend from the same seed.
func DeriveDerivedKey(seed []byte, seedIndex uint32) (KeyPair, error) {
	reader := hkdf.New(sha256.New, seed, nil, []byte(derivedKeyInfo))
	material := make([]byte, 32)
	if _, err := io.ReadFull(reader, material); err != nil {
		return KeyPair{}, errors.Wrap(err, "deriving auxiliary signing key")
	}
	material = mixSeedIndex(material, seedIndex)
	priv := secp256k1.PrivKeyFromBytes(material)
	return KeyPair{Private: priv, Public: priv.PubKey()}, nil
}

func deriveScalarMaterial(seed []byte, label string, seedIndex uint32) []byte {
	h := sha256.New()
	h.Write(seed)
	h.Write([]byte(label))
	h.Write(encodeUint32BE(seedIndex))
	return h.Sum(nil)
}

func mixSeedIndex(material []byte, seedIndex uint32) []byte {
	h := sha256.New()
	h.Write(material)
	h.Write(encodeUint32BE(seedIndex))
	return h.Sum(nil)
}

func encodeUint32BE(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// Fingerprint returns the RIPEMD-160 of the SHA-256 of the compressed
// public key, mirroring the teacher's address-fingerprinting scheme; it is
// exposed for the CLI's key-identification output, never consumed by the
// deterministic core.
func Fingerprint(pub *secp256k1.PublicKey) []byte {
	sha := sha256.Sum256(pub.SerializeCompressed())
	r := ripemd160.New()
	r.Write(sha[:])
	return r.Sum(nil)
}
