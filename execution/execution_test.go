package execution

import (
	"testing"

	"github.com/PlatariumNetwork/PlatariumCore/asset"
	"github.com/PlatariumNetwork/PlatariumCore/state"
	"github.com/PlatariumNetwork/PlatariumCore/tx"
)

const (
	alice = tx.Address("alice")
	bob   = tx.Address("bob")
)

// alwaysValid and alwaysInvalid are fixture Verifiers; the concrete
// secp256k1-backed Verifier lives in internal/signing and is exercised by
// its own tests.
type alwaysValid struct{}

func (alwaysValid) Verify(sig, msg, pubKey []byte) bool { return true }

type alwaysInvalid struct{}

func (alwaysInvalid) Verify(sig, msg, pubKey []byte) bool { return false }

func newFundedState() *state.State {
	s := state.New()
	s.SetBalance(alice, asset.NewAmount(1000))
	s.SetUPLPBalance(alice, asset.NewAmount(10))
	return s
}

func fixtureTx(nonce uint64) *tx.Transaction {
	u := tx.UnsignedFields{
		From:        alice,
		To:          bob,
		Asset:       asset.PLP(),
		Amount:      asset.NewAmount(100),
		FeeMicroPLP: asset.NewAmount(1),
		Nonce:       nonce,
	}
	return tx.NewSigned(u, []byte("sig-main"), []byte("sig-derived"))
}

// TestExecuteTransactionProduction is scenario S1: a valid transaction
// executed in Production mutates the live state.
func TestExecuteTransactionProduction(t *testing.T) {
	s := newFundedState()
	txn := fixtureTx(0)

	if err := ExecuteTransaction(s, txn, alwaysValid{}, nil, Production); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.GetBalance(alice).Cmp(asset.NewAmount(900)) != 0 {
		t.Errorf("alice.PLP = %s, want 900", s.GetBalance(alice))
	}
	if s.GetBalance(bob).Cmp(asset.NewAmount(100)) != 0 {
		t.Errorf("bob.PLP = %s, want 100", s.GetBalance(bob))
	}
}

// TestExecuteTransactionSimulationNeverMutatesLiveState is property 11.
func TestExecuteTransactionSimulationNeverMutatesLiveState(t *testing.T) {
	s := newFundedState()
	txn := fixtureTx(0)

	if err := ExecuteTransaction(s, txn, alwaysValid{}, nil, Simulation); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.GetBalance(alice).Cmp(asset.NewAmount(1000)) != 0 {
		t.Errorf("live alice.PLP = %s, want untouched 1000", s.GetBalance(alice))
	}
	if s.GetNonce(alice) != 0 {
		t.Errorf("live alice.nonce = %d, want untouched 0", s.GetNonce(alice))
	}
}

func TestSimulateSuccess(t *testing.T) {
	s := newFundedState()
	snap := s.Snapshot()
	txn := fixtureTx(0)

	result := Simulate(txn, snap, alwaysValid{}, nil)
	if !result.Succeeded() {
		t.Fatalf("expected success, got error: %v", result.Err)
	}
	if result.FinalState.GetBalance(alice).Cmp(asset.NewAmount(900)) != 0 {
		t.Errorf("final alice.PLP = %s, want 900", result.FinalState.GetBalance(alice))
	}

	// the original snapshot must remain untouched.
	if snap.GetBalance(alice).Cmp(asset.NewAmount(1000)) != 0 {
		t.Errorf("original snapshot alice.PLP = %s, want untouched 1000", snap.GetBalance(alice))
	}
}

func TestSimulateInvalidSignatureFails(t *testing.T) {
	s := newFundedState()
	snap := s.Snapshot()
	txn := fixtureTx(0)

	result := Simulate(txn, snap, alwaysInvalid{}, nil)
	if result.Succeeded() {
		t.Fatal("expected failure for invalid signature")
	}
	if result.FinalState != nil {
		t.Error("FinalState must be nil on failure")
	}
}

func TestSimulateInsufficientBalanceFails(t *testing.T) {
	s := state.New()
	s.SetUPLPBalance(alice, asset.NewAmount(10))
	snap := s.Snapshot()
	txn := fixtureTx(0)

	result := Simulate(txn, snap, alwaysValid{}, nil)
	if result.Err != state.ErrInsufficientBalance {
		t.Fatalf("expected ErrInsufficientBalance, got %v", result.Err)
	}
}

func TestCheckTransactionApplicabilityReadOnly(t *testing.T) {
	s := newFundedState()
	txn := fixtureTx(0)

	if err := CheckTransactionApplicability(s, txn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.GetBalance(alice).Cmp(asset.NewAmount(1000)) != 0 {
		t.Error("CheckTransactionApplicability must not mutate state")
	}
}

func TestCommit(t *testing.T) {
	if err := Commit(Production); err != nil {
		t.Errorf("Commit(Production) = %v, want nil", err)
	}
	if err := Commit(Simulation); err != ErrCommitNotAllowedInSimulation {
		t.Errorf("Commit(Simulation) = %v, want ErrCommitNotAllowedInSimulation", err)
	}
}

// TestRepeatedExecutionIsDeterministic exercises the determinism audit's
// predicate informally: executing the same transaction against freshly
// constructed, identical states twice must produce byte-identical results.
func TestRepeatedExecutionIsDeterministic(t *testing.T) {
	run := func() asset.Amount {
		s := newFundedState()
		txn := fixtureTx(0)
		if err := ExecuteTransaction(s, txn, alwaysValid{}, nil, Production); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return s.GetBalance(bob)
	}

	first := run()
	second := run()
	if first.Cmp(second) != 0 {
		t.Fatalf("non-deterministic execution: %s != %s", first, second)
	}
}
