package execution

import (
	"github.com/PlatariumNetwork/PlatariumCore/internal/log"
	"github.com/PlatariumNetwork/PlatariumCore/state"
	"github.com/PlatariumNetwork/PlatariumCore/tx"
)

var execLog = log.Get(log.EXEC)

// ValidateTransaction runs §4.3's structural checks plus signature
// verification. It never touches state.
func ValidateTransaction(t *tx.Transaction, v tx.Verifier, pubKey []byte) error {
	if err := t.ValidateBasic(); err != nil {
		return err
	}
	return t.VerifySignatures(v, pubKey)
}

// CheckTransactionApplicability performs the read-only nonce and balance
// checks of §4.4 steps 1-3 against s, without mutating it. It reports the
// same error a subsequent ApplyTransactionEffects would fail with, so a
// caller can decide not to attempt the mutation at all.
func CheckTransactionApplicability(s *state.State, t *tx.Transaction) error {
	currentNonce := s.GetNonce(t.From())
	if t.Nonce() != currentNonce {
		return &state.NonceMismatchError{Expected: currentNonce, Actual: t.Nonce()}
	}
	if s.GetUPLPBalance(t.From()).Cmp(t.FeeMicroPLP()) < 0 {
		return state.ErrInsufficientFee
	}
	if s.GetAssetBalance(t.From(), t.Asset()).Cmp(t.Amount()) < 0 {
		return state.ErrInsufficientBalance
	}
	return nil
}

// ApplyTransactionEffects performs the atomic mutation of §4.4 step 4
// against s.
func ApplyTransactionEffects(s *state.State, t *tx.Transaction) error {
	return s.ApplyTransaction(t)
}

// ExecuteTransaction composes validation, applicability, and effects
// (§4.5). Under Production it mutates s directly. Under Simulation it
// mutates a private snapshot-derived copy of s and returns without ever
// touching s; the caller observes no change regardless of outcome.
func ExecuteTransaction(s *state.State, t *tx.Transaction, v tx.Verifier, pubKey []byte, ctx Context) error {
	if err := ValidateTransaction(t, v, pubKey); err != nil {
		return err
	}

	target := s
	if ctx == Simulation {
		target = s.Clone()
	}

	if err := executeEffectsOnly(target, t); err != nil {
		return err
	}

	execLog.Debugf("executed transaction %s in %s context", t.Hash(), ctx)
	return nil
}

func executeEffectsOnly(s *state.State, t *tx.Transaction) error {
	if err := CheckTransactionApplicability(s, t); err != nil {
		return err
	}
	return ApplyTransactionEffects(s, t)
}

// Simulate runs tx against a fresh, private copy of snap and reports the
// outcome without ever mutating snap (§4.5). Validation failures,
// applicability failures, and arithmetic failures are all reported the
// same way: as a Failure result, never a panic.
func Simulate(t *tx.Transaction, snap *state.Snapshot, v tx.Verifier, pubKey []byte) Result {
	if err := ValidateTransaction(t, v, pubKey); err != nil {
		return Result{Err: err}
	}

	working := snap.NewState()
	if err := executeEffectsOnly(working, t); err != nil {
		return Result{Err: err}
	}

	execLog.Debugf("simulated transaction %s", t.Hash())
	return Result{FinalState: working.Snapshot()}
}
