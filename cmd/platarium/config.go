package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	generateMnemonicSubCmd = "generate-mnemonic"
	generateKeysSubCmd     = "generate-keys"
	signMessageSubCmd      = "sign-message"
	verifySignatureSubCmd  = "verify-signature"
)

type generateMnemonicConfig struct{}

type generateKeysConfig struct {
	Mnemonic     string `long:"mnemonic" short:"m" description:"BIP39 mnemonic phrase" required:"true"`
	Alphanumeric string `long:"alphanumeric" short:"a" description:"Alphanumeric passphrase" required:"true"`
	SeedIndex    uint32 `long:"seed-index" short:"n" description:"Derivation seed index" default:"0"`
	Path         string `long:"path" short:"p" description:"Informational derivation path label"`
}

type signMessageConfig struct {
	Message      string `long:"message" short:"j" description:"Message to sign, as a JSON document" required:"true"`
	Mnemonic     string `long:"mnemonic" short:"m" description:"BIP39 mnemonic phrase" required:"true"`
	Alphanumeric string `long:"alphanumeric" short:"a" description:"Alphanumeric passphrase" required:"true"`
	SeedIndex    uint32 `long:"seed-index" short:"n" description:"Derivation seed index" default:"0"`
}

type verifySignatureConfig struct {
	Message   string `long:"message" short:"j" description:"Message that was signed, as a JSON document" required:"true"`
	Signature string `long:"signature" short:"s" description:"Signature to verify, hex-encoded" required:"true"`
	PubKey    string `long:"pubkey" short:"k" description:"Signer's public key, hex-encoded" required:"true"`
}

// parseCommandLine parses os.Args into one of the four subcommand configs
// described in §6, mirroring the teacher's one-struct-per-subcommand
// go-flags shape.
func parseCommandLine() (subCommand string, config interface{}) {
	parser := flags.NewParser(nil, flags.PrintErrors|flags.HelpFlag)

	mnemonicConf := &generateMnemonicConfig{}
	parser.AddCommand(generateMnemonicSubCmd, "Generates a new BIP39 mnemonic and alphanumeric passphrase",
		"Generates a new BIP39 mnemonic and alphanumeric passphrase", mnemonicConf)

	keysConf := &generateKeysConfig{}
	parser.AddCommand(generateKeysSubCmd, "Derives a keypair from a mnemonic and passphrase",
		"Derives a main and auxiliary signing keypair from a mnemonic and passphrase", keysConf)

	signConf := &signMessageConfig{}
	parser.AddCommand(signMessageSubCmd, "Signs a JSON message",
		"Computes the domain-separated hash of a JSON message and signs it with both derived keys", signConf)

	verifyConf := &verifySignatureConfig{}
	parser.AddCommand(verifySignatureSubCmd, "Verifies a signature over a JSON message",
		"Verifies a hex-encoded signature over a JSON message's domain-separated hash", verifyConf)

	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(exitSuccess)
		}
		os.Exit(exitIOOrParseFailure)
		return "", nil
	}

	if parser.Command.Active == nil {
		os.Exit(exitIOOrParseFailure)
		return "", nil
	}

	switch parser.Command.Active.Name {
	case generateMnemonicSubCmd:
		config = mnemonicConf
	case generateKeysSubCmd:
		config = keysConf
	case signMessageSubCmd:
		config = signConf
	case verifySignatureSubCmd:
		config = verifyConf
	}

	return parser.Command.Active.Name, config
}
