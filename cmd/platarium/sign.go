package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/PlatariumNetwork/PlatariumCore/internal/keys"
	"github.com/PlatariumNetwork/PlatariumCore/internal/signing"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// runSignMessage implements the sign-message command of §6: hashes the
// domain-separated message and signs it with both the main and derived
// keys, printing the hash and both signatures as hex.
func runSignMessage(cfg *signMessageConfig) error {
	if !json.Valid([]byte(cfg.Message)) {
		return errors.New("message is not valid JSON")
	}
	if !bip39.IsMnemonicValid(cfg.Mnemonic) {
		return newValidationFailure(errors.New("not a valid BIP39 mnemonic"))
	}

	seed := keys.SeedFromMnemonic(cfg.Mnemonic, cfg.Alphanumeric)
	mainKey := keys.DeriveMainKey(seed, cfg.SeedIndex)
	derived, err := keys.DeriveDerivedKey(seed, cfg.SeedIndex)
	if err != nil {
		return newCryptoFailure(err)
	}

	hash := hashMessage(cfg.Message)
	sigMain := signing.Sign(mainKey.Private, hash[:])
	sigDerived := signing.Sign(derived.Private, hash[:])

	fmt.Printf("Hash: %s\n", hex.EncodeToString(hash[:]))
	fmt.Printf("SigMain: %s\n", hex.EncodeToString(sigMain))
	fmt.Printf("SigDerived: %s\n", hex.EncodeToString(sigDerived))
	return nil
}
