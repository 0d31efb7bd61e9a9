package main

import (
	"encoding/hex"
	"fmt"

	"github.com/PlatariumNetwork/PlatariumCore/internal/keys"
	"github.com/tyler-smith/go-bip39"
)

// runGenerateKeys implements the generate-keys command of §6: derives the
// main and auxiliary signing keys from a mnemonic and passphrase and
// prints the public key, private key, and auxiliary signature key as hex.
func runGenerateKeys(cfg *generateKeysConfig) error {
	if !bip39.IsMnemonicValid(cfg.Mnemonic) {
		return newValidationFailure(fmt.Errorf("not a valid BIP39 mnemonic"))
	}

	seed := keys.SeedFromMnemonic(cfg.Mnemonic, cfg.Alphanumeric)

	mainKey := keys.DeriveMainKey(seed, cfg.SeedIndex)
	derived, err := keys.DeriveDerivedKey(seed, cfg.SeedIndex)
	if err != nil {
		return newCryptoFailure(err)
	}

	fmt.Printf("Public: %s\n", hex.EncodeToString(mainKey.Public.SerializeCompressed()))
	fmt.Printf("Private: %s\n", hex.EncodeToString(mainKey.Private.Serialize()))
	fmt.Printf("Signature: %s\n", hex.EncodeToString(derived.Private.Serialize()))
	return nil
}
