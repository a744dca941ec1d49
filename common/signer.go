package common

import (
	"crypto/ed25519"
)

// Signer signs transaction body hashes with an Ed25519 payment key.
type Signer interface {
	Sign(data []byte) ([]byte, error)
	PublicKey() ed25519.PublicKey
	Destroy()
}

// KeyHash returns the blake2b-224 hash of the signer's verification key.
func KeyHash(s Signer) []byte {
	return Blake2b224(s.PublicKey())
}
