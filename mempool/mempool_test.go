package mempool

import (
	"testing"

	"github.com/PlatariumNetwork/PlatariumCore/asset"
	"github.com/PlatariumNetwork/PlatariumCore/tx"
)

func fixtureTx(nonce uint64, to tx.Address) *tx.Transaction {
	u := tx.UnsignedFields{
		From:        tx.Address("alice"),
		To:          to,
		Asset:       asset.PLP(),
		Amount:      asset.NewAmount(100),
		FeeMicroPLP: asset.NewAmount(1),
		Nonce:       nonce,
	}
	return tx.NewSigned(u, []byte("m"), []byte("d"))
}

func TestAddAndGetTransaction(t *testing.T) {
	p := New()
	txn := fixtureTx(0, "bob")

	if err := p.AddTransaction(txn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := p.GetTransaction(txn.Hash())
	if !ok || got != txn {
		t.Fatal("GetTransaction did not return the added transaction")
	}
	if !p.Contains(txn.Hash()) {
		t.Error("Contains = false, want true")
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

// TestDuplicateTransactionRejected is property 9.
func TestDuplicateTransactionRejected(t *testing.T) {
	p := New()
	txn := fixtureTx(0, "bob")

	if err := p.AddTransaction(txn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.AddTransaction(txn); err != ErrDuplicateTransaction {
		t.Fatalf("expected ErrDuplicateTransaction, got %v", err)
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d after rejected duplicate, want 1", p.Len())
	}
}

// TestGetAllTransactionsOrdering is property 8: arrival order is preserved
// regardless of map iteration order.
func TestGetAllTransactionsOrdering(t *testing.T) {
	p := New()
	recipients := []tx.Address{"r1", "r2", "r3", "r4", "r5"}
	var want []tx.Hash
	for i, to := range recipients {
		txn := fixtureTx(uint64(i), to)
		if err := p.AddTransaction(txn); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want = append(want, txn.Hash())
	}

	got := p.GetAllTransactions()
	if len(got) != len(want) {
		t.Fatalf("got %d transactions, want %d", len(got), len(want))
	}
	for i, txn := range got {
		if txn.Hash() != want[i] {
			t.Errorf("position %d: got hash %s, want %s", i, txn.Hash(), want[i])
		}
	}
}

func TestRemoveTransaction(t *testing.T) {
	p := New()
	txn := fixtureTx(0, "bob")
	if err := p.AddTransaction(txn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.RemoveTransaction(txn.Hash())
	if p.Contains(txn.Hash()) {
		t.Error("transaction still present after RemoveTransaction")
	}
	if !p.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}

func TestRemoveTransactions(t *testing.T) {
	p := New()
	var hashes []tx.Hash
	for i, to := range []tx.Address{"r1", "r2", "r3"} {
		txn := fixtureTx(uint64(i), to)
		if err := p.AddTransaction(txn); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		hashes = append(hashes, txn.Hash())
	}

	p.RemoveTransactions(hashes[:2])
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
	if !p.Contains(hashes[2]) {
		t.Error("expected surviving transaction to remain")
	}
}

func TestClear(t *testing.T) {
	p := New()
	if err := p.AddTransaction(fixtureTx(0, "bob")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Clear()
	if !p.IsEmpty() {
		t.Error("pool not empty after Clear")
	}
}

func TestStats(t *testing.T) {
	p := New()
	if stats := p.Stats(); stats.Count != 0 {
		t.Errorf("empty pool Stats() = %+v, want zero value", stats)
	}

	for i, to := range []tx.Address{"r1", "r2", "r3"} {
		if err := p.AddTransaction(fixtureTx(uint64(i), to)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stats := p.Stats()
	if stats.Count != 3 {
		t.Errorf("Count = %d, want 3", stats.Count)
	}
	if stats.OldestArrivalIndex != 0 {
		t.Errorf("OldestArrivalIndex = %d, want 0", stats.OldestArrivalIndex)
	}
	if stats.NewestArrivalIndex != 2 {
		t.Errorf("NewestArrivalIndex = %d, want 2", stats.NewestArrivalIndex)
	}
}
