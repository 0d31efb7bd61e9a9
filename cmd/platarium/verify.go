package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/PlatariumNetwork/PlatariumCore/internal/signing"
	"github.com/pkg/errors"
)

// runVerifySignature implements the verify-signature command of §6: exits
// 0 if the signature verifies over the message's domain-separated hash,
// and a crypto-failure exit code if it does not. Input that is not valid
// JSON or hex is a parse failure.
func runVerifySignature(cfg *verifySignatureConfig) error {
	if !json.Valid([]byte(cfg.Message)) {
		return errors.New("message is not valid JSON")
	}

	sig, err := hex.DecodeString(cfg.Signature)
	if err != nil {
		return errors.Wrap(err, "signature is not valid hex")
	}
	pubKey, err := hex.DecodeString(cfg.PubKey)
	if err != nil {
		return errors.Wrap(err, "public key is not valid hex")
	}

	hash := hashMessage(cfg.Message)
	v := signing.Secp256k1Verifier{}
	if !v.Verify(sig, hash[:], pubKey) {
		return newCryptoFailure(errors.New("signature does not verify"))
	}

	fmt.Println("OK")
	return nil
}
