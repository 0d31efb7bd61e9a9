package tx

import (
	"testing"

	"github.com/PlatariumNetwork/PlatariumCore/asset"
)

func fixtureUnsigned() UnsignedFields {
	return UnsignedFields{
		From:        Address("alice"),
		To:          Address("bob"),
		Asset:       asset.PLP(),
		Amount:      asset.NewAmount(100),
		FeeMicroPLP: asset.NewAmount(1),
		Nonce:       0,
		Reads:       []Address{"alice"},
		Writes:      []Address{"alice", "bob"},
	}
}

// TestHashStability is property 7 from spec.md §8: two transactions with
// identical fields produce identical hashes.
func TestHashStability(t *testing.T) {
	u := fixtureUnsigned()
	sigMain := []byte("sig-main")
	sigDerived := []byte("sig-derived")

	t1 := NewSigned(u, sigMain, sigDerived)
	t2 := NewSigned(u, sigMain, sigDerived)

	if t1.Hash() != t2.Hash() {
		t.Fatalf("identical transactions hashed differently: %s vs %s", t1.Hash(), t2.Hash())
	}
}

func TestHashChangesWithFields(t *testing.T) {
	u := fixtureUnsigned()
	base := NewSigned(u, []byte("m"), []byte("d"))

	u2 := u
	u2.Nonce = 1
	changed := NewSigned(u2, []byte("m"), []byte("d"))

	if base.Hash() == changed.Hash() {
		t.Fatal("changing nonce should change the hash")
	}
}

func TestValidateBasicZeroAmount(t *testing.T) {
	u := fixtureUnsigned()
	u.Amount = asset.NewAmount(0)
	txn := NewSigned(u, []byte("m"), []byte("d"))

	err := txn.ValidateBasic()
	invErr, ok := err.(*InvalidTransactionError)
	if !ok || invErr.Kind != ZeroAmount {
		t.Fatalf("expected ZeroAmount, got %v", err)
	}
}

func TestValidateBasicZeroFee(t *testing.T) {
	u := fixtureUnsigned()
	u.FeeMicroPLP = asset.NewAmount(0)
	txn := NewSigned(u, []byte("m"), []byte("d"))

	err := txn.ValidateBasic()
	invErr, ok := err.(*InvalidTransactionError)
	if !ok || invErr.Kind != ZeroFee {
		t.Fatalf("expected ZeroFee, got %v", err)
	}
}

func TestValidateBasicSameParty(t *testing.T) {
	u := fixtureUnsigned()
	u.To = u.From
	txn := NewSigned(u, []byte("m"), []byte("d"))

	err := txn.ValidateBasic()
	invErr, ok := err.(*InvalidTransactionError)
	if !ok || invErr.Kind != SameParty {
		t.Fatalf("expected SameParty, got %v", err)
	}
}

func TestValidateBasicTreasurySender(t *testing.T) {
	u := fixtureUnsigned()
	u.From = Treasury
	txn := NewSigned(u, []byte("m"), []byte("d"))

	err := txn.ValidateBasic()
	invErr, ok := err.(*InvalidTransactionError)
	if !ok || invErr.Kind != TreasurySender {
		t.Fatalf("expected TreasurySender, got %v", err)
	}
}

func TestValidateBasicEmptySignature(t *testing.T) {
	u := fixtureUnsigned()
	txn := NewSigned(u, nil, []byte("d"))

	err := txn.ValidateBasic()
	invErr, ok := err.(*InvalidTransactionError)
	if !ok || invErr.Kind != EmptySignature {
		t.Fatalf("expected EmptySignature, got %v", err)
	}
}

func TestValidateBasicHashMismatch(t *testing.T) {
	u := fixtureUnsigned()
	txn := NewSigned(u, []byte("m"), []byte("d"))

	tampered := FromRawFields(txn.Hash(), u, []byte("m"), []byte("d-tampered"))

	err := tampered.ValidateBasic()
	invErr, ok := err.(*InvalidTransactionError)
	if !ok || invErr.Kind != HashMismatch {
		t.Fatalf("expected HashMismatch, got %v", err)
	}
}

func TestValidateBasicHappyPath(t *testing.T) {
	txn := NewSigned(fixtureUnsigned(), []byte("m"), []byte("d"))
	if err := txn.ValidateBasic(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

type fakeVerifier struct {
	allow map[string]bool
}

func (f fakeVerifier) Verify(sig, msg, pubKey []byte) bool {
	return f.allow[string(sig)]
}

func TestVerifySignaturesAcceptsValidPair(t *testing.T) {
	u := fixtureUnsigned()
	txn := NewSigned(u, []byte("good-main"), []byte("good-derived"))

	v := fakeVerifier{allow: map[string]bool{
		"good-main":    true,
		"good-derived": true,
	}}
	if err := txn.VerifySignatures(v, []byte("pubkey")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerifySignaturesRejectsBadMain(t *testing.T) {
	u := fixtureUnsigned()
	txn := NewSigned(u, []byte("bad-main"), []byte("good-derived"))

	v := fakeVerifier{allow: map[string]bool{"good-derived": true}}
	err := txn.VerifySignatures(v, []byte("pubkey"))
	sigErr, ok := err.(*SignatureInvalidError)
	if !ok || sigErr.Which != Main {
		t.Fatalf("expected SignatureInvalid{Main}, got %v", err)
	}
}

func TestReadsAreSortedAndDeduplicated(t *testing.T) {
	u := fixtureUnsigned()
	u.Reads = []Address{"z", "a", "a", "m"}
	txn := NewSigned(u, []byte("m"), []byte("d"))

	got := txn.Reads()
	want := []Address{"a", "m", "z"}
	if len(got) != len(want) {
		t.Fatalf("Reads() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Reads() = %v, want %v", got, want)
		}
	}
}
