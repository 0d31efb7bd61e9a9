package main

import "crypto/sha256"

// messageDomainSeparator is the fixed ASCII prefix placed before a
// message's JSON bytes before hashing, so a signature over a transaction
// hash can never be replayed as a signature over a CLI message and vice
// versa (§6).
const messageDomainSeparator = "platarium:msg:v1\n"

// hashMessage computes the domain-separated SHA-256 hash of a JSON
// message, the value sign-message and verify-signature both operate on.
func hashMessage(messageJSON string) [32]byte {
	return sha256.Sum256(append([]byte(messageDomainSeparator), messageJSON...))
}
