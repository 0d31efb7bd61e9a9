// Package tx implements the canonical Transaction record: its immutable
// fields, the two-phase canonical hash (§4.3, §9 Open Question (a)), and
// basic structural validation.
package tx

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"sort"

	"github.com/PlatariumNetwork/PlatariumCore/asset"
)

// Address is an opaque identifier the engine treats as an opaque key;
// format validation is left to the caller (§3).
type Address string

// Treasury is the reserved, sole fee sink. It may never appear as a
// transaction's From address.
const Treasury Address = "treasury"

// Verifier is the abstract external signature predicate the engine
// delegates to (§1, §4.3): verify(sig, msg, pubkey) -> bool. Key derivation
// and the concrete signature scheme are external collaborators.
type Verifier interface {
	Verify(sig, msg, pubKey []byte) bool
}

// UnsignedFields are the fields of a transaction known before signing. The
// hash over exactly these fields (PreHash) is what sig_main and sig_derived
// are computed over; the final, content-addressed Hash is computed
// afterwards over every field including the two signatures (§4.3, §9 Open
// Question (a)).
type UnsignedFields struct {
	From        Address
	To          Address
	Asset       asset.Asset
	Amount      asset.Amount
	FeeMicroPLP asset.Amount
	Nonce       uint64
	Reads       []Address
	Writes      []Address
}

// Transaction is the immutable, content-addressed transfer record
// described in §3.
type Transaction struct {
	hash    Hash
	preHash Hash

	from        Address
	to          Address
	asset       asset.Asset
	amount      asset.Amount
	feeMicroPLP asset.Amount
	nonce       uint64
	reads       []Address
	writes      []Address

	sigMain    []byte
	sigDerived []byte
}

func canonicalizeAddressSet(addrs []Address) []Address {
	seen := make(map[Address]struct{}, len(addrs))
	out := make([]Address, 0, len(addrs))
	for _, a := range addrs {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func writeLengthPrefixed(buf *bytes.Buffer, b []byte) {
	var lenBE [4]byte
	binary.BigEndian.PutUint32(lenBE[:], uint32(len(b)))
	buf.Write(lenBE[:])
	buf.Write(b)
}

func writeAddressSet(buf *bytes.Buffer, addrs []Address) {
	var countBE [4]byte
	binary.BigEndian.PutUint32(countBE[:], uint32(len(addrs)))
	buf.Write(countBE[:])
	for _, a := range addrs {
		writeLengthPrefixed(buf, []byte(a))
	}
}

// preHashBytes serializes exactly the unsigned fields, in the fixed order
// specified by §4.3 (minus the two trailing signature fields).
func preHashBytes(u UnsignedFields, reads, writes []Address) []byte {
	buf := new(bytes.Buffer)
	writeLengthPrefixed(buf, []byte(u.From))
	writeLengthPrefixed(buf, []byte(u.To))
	buf.Write(u.Asset.CanonicalEncoding())
	amountBE := u.Amount.CanonicalEncoding16()
	buf.Write(amountBE[:])
	feeBE := u.FeeMicroPLP.CanonicalEncoding16()
	buf.Write(feeBE[:])
	var nonceBE [8]byte
	binary.BigEndian.PutUint64(nonceBE[:], u.Nonce)
	buf.Write(nonceBE[:])
	writeAddressSet(buf, reads)
	writeAddressSet(buf, writes)
	return buf.Bytes()
}

// ComputeHash recomputes the final, content-addressed hash: SHA-256 of the
// pre-hash bytes followed by the two length-prefixed signatures (§4.3).
func ComputeHash(u UnsignedFields, sigMain, sigDerived []byte) Hash {
	reads := canonicalizeAddressSet(u.Reads)
	writes := canonicalizeAddressSet(u.Writes)
	buf := bytes.NewBuffer(preHashBytes(u, reads, writes))
	writeLengthPrefixed(buf, sigMain)
	writeLengthPrefixed(buf, sigDerived)
	return Hash(sha256.Sum256(buf.Bytes()))
}

// ComputePreHash computes the hash over the unsigned fields only, the value
// a client must sign under the two-phase protocol (§9 Open Question (a)).
func ComputePreHash(u UnsignedFields) Hash {
	reads := canonicalizeAddressSet(u.Reads)
	writes := canonicalizeAddressSet(u.Writes)
	return Hash(sha256.Sum256(preHashBytes(u, reads, writes)))
}

// NewSigned constructs a Transaction from its unsigned fields and the two
// signatures produced over ComputePreHash(u), computing and storing the
// final canonical hash.
func NewSigned(u UnsignedFields, sigMain, sigDerived []byte) *Transaction {
	reads := canonicalizeAddressSet(u.Reads)
	writes := canonicalizeAddressSet(u.Writes)
	t := &Transaction{
		from:        u.From,
		to:          u.To,
		asset:       u.Asset,
		amount:      u.Amount,
		feeMicroPLP: u.FeeMicroPLP,
		nonce:       u.Nonce,
		reads:       reads,
		writes:      writes,
		sigMain:     append([]byte(nil), sigMain...),
		sigDerived:  append([]byte(nil), sigDerived...),
	}
	t.preHash = Hash(sha256.Sum256(preHashBytes(u, reads, writes)))
	t.hash = ComputeHash(u, sigMain, sigDerived)
	return t
}

// FromRawFields reconstructs a Transaction exactly as given, without
// recomputing the hash. This is how a transaction arriving over the wire
// (or a deliberately tampered fixture in tests) is built: validation is the
// caller's job, performed afterwards via ValidateBasic.
func FromRawFields(hash Hash, u UnsignedFields, sigMain, sigDerived []byte) *Transaction {
	reads := canonicalizeAddressSet(u.Reads)
	writes := canonicalizeAddressSet(u.Writes)
	return &Transaction{
		hash:        hash,
		preHash:     Hash(sha256.Sum256(preHashBytes(u, reads, writes))),
		from:        u.From,
		to:          u.To,
		asset:       u.Asset,
		amount:      u.Amount,
		feeMicroPLP: u.FeeMicroPLP,
		nonce:       u.Nonce,
		reads:       reads,
		writes:      writes,
		sigMain:     append([]byte(nil), sigMain...),
		sigDerived:  append([]byte(nil), sigDerived...),
	}
}

// ComputeHash recomputes the canonical hash of t's current fields.
func (t *Transaction) ComputeHash() Hash {
	u := t.unsignedFields()
	return ComputeHash(u, t.sigMain, t.sigDerived)
}

func (t *Transaction) unsignedFields() UnsignedFields {
	return UnsignedFields{
		From:        t.from,
		To:          t.to,
		Asset:       t.asset,
		Amount:      t.amount,
		FeeMicroPLP: t.feeMicroPLP,
		Nonce:       t.nonce,
		Reads:       t.reads,
		Writes:      t.writes,
	}
}

// Hash returns the transaction's stored content-addressed identifier.
func (t *Transaction) Hash() Hash { return t.hash }

// PreHash returns the hash over the unsigned fields, i.e. what sig_main and
// sig_derived are signatures over.
func (t *Transaction) PreHash() Hash { return t.preHash }

// From returns the sender address.
func (t *Transaction) From() Address { return t.from }

// To returns the recipient address.
func (t *Transaction) To() Address { return t.to }

// Asset returns the transferred asset.
func (t *Transaction) Asset() asset.Asset { return t.asset }

// Amount returns the transferred amount.
func (t *Transaction) Amount() asset.Amount { return t.amount }

// FeeMicroPLP returns the µPLP fee.
func (t *Transaction) FeeMicroPLP() asset.Amount { return t.feeMicroPLP }

// Nonce returns the sender-side replay-protection counter.
func (t *Transaction) Nonce() uint64 { return t.nonce }

// Reads returns the declared read footprint, sorted and deduplicated.
func (t *Transaction) Reads() []Address { return t.reads }

// Writes returns the declared write footprint, sorted and deduplicated.
func (t *Transaction) Writes() []Address { return t.writes }

// SigMain returns the primary signature.
func (t *Transaction) SigMain() []byte { return t.sigMain }

// SigDerived returns the auxiliary, HKDF-bound signature.
func (t *Transaction) SigDerived() []byte { return t.sigDerived }

// ValidateBasic performs the structural checks of §4.3: amount > 0,
// fee_uplp >= 1, from != to, from != Treasury, both signatures non-empty,
// and the stored hash matches ComputeHash().
func (t *Transaction) ValidateBasic() error {
	if t.amount.IsZero() {
		return &InvalidTransactionError{Kind: ZeroAmount}
	}
	if t.feeMicroPLP.IsZero() {
		return &InvalidTransactionError{Kind: ZeroFee}
	}
	if t.from == t.to {
		return &InvalidTransactionError{Kind: SameParty}
	}
	if t.from == Treasury {
		return &InvalidTransactionError{Kind: TreasurySender}
	}
	if len(t.sigMain) == 0 || len(t.sigDerived) == 0 {
		return &InvalidTransactionError{Kind: EmptySignature}
	}
	if t.hash != t.ComputeHash() {
		return &InvalidTransactionError{Kind: HashMismatch}
	}
	return nil
}

// VerifySignatures delegates to the external Verifier to check both
// signatures against the sender's public key, over PreHash (§4.3, §9).
func (t *Transaction) VerifySignatures(v Verifier, pubKey []byte) error {
	msg := t.preHash[:]
	if !v.Verify(t.sigMain, msg, pubKey) {
		return &SignatureInvalidError{Which: Main}
	}
	if !v.Verify(t.sigDerived, msg, pubKey) {
		return &SignatureInvalidError{Which: Derived}
	}
	return nil
}
