package main

import (
	"crypto/rand"
	"fmt"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

const alphanumericCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// runGenerateMnemonic implements the generate-mnemonic command of §6: a
// fresh 24-word BIP39 mnemonic (256 bits of entropy) plus a 12-character
// alphanumeric passphrase, both printed to stdout.
func runGenerateMnemonic(_ *generateMnemonicConfig) error {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return errors.Wrap(err, "generating mnemonic entropy")
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return errors.Wrap(err, "encoding mnemonic")
	}

	alphanumeric, err := randomAlphanumeric(12)
	if err != nil {
		return errors.Wrap(err, "generating alphanumeric passphrase")
	}

	fmt.Printf("Mnemonic: %s\n", mnemonic)
	fmt.Printf("Alphanumeric: %s\n", alphanumeric)
	return nil
}

func randomAlphanumeric(length int) (string, error) {
	out := make([]byte, length)
	idx := make([]byte, length)
	if _, err := rand.Read(idx); err != nil {
		return "", err
	}
	for i, b := range idx {
		out[i] = alphanumericCharset[int(b)%len(alphanumericCharset)]
	}
	return string(out), nil
}
