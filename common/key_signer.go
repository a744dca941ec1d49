package common

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// KeySigner signs with a plain Ed25519 payment signing key.
type KeySigner struct {
	privateKey ed25519.PrivateKey
}

var _ Signer = &KeySigner{}

type textEnvelope struct {
	Type    string `json:"type"`
	CborHex string `json:"cborHex"`
}

// NewKeySigner accepts a 32 byte hex seed, its CBOR encoding ("5820..."),
// or a cardano-cli text envelope holding one.
func NewKeySigner(signingKey string) (*KeySigner, error) {
	signingKey = strings.TrimSpace(signingKey)

	if strings.HasPrefix(signingKey, "{") {
		var envelope textEnvelope
		if err := json.Unmarshal([]byte(signingKey), &envelope); err != nil {
			return nil, fmt.Errorf("failed to parse signing key envelope: %w", err)
		}
		signingKey = envelope.CborHex
	}

	seed, err := hex.DecodeString(strings.TrimPrefix(signingKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode signing key: %w", err)
	}

	if len(seed) == ed25519.SeedSize+2 && seed[0] == 0x58 && seed[1] == ed25519.SeedSize {
		seed = seed[2:]
	}

	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid signing key length %d", len(seed))
	}

	return &KeySigner{privateKey: ed25519.NewKeyFromSeed(seed)}, nil
}

func (s *KeySigner) Destroy() {
	for i := range s.privateKey {
		s.privateKey[i] = 0
	}
}

func (s *KeySigner) Sign(data []byte) ([]byte, error) {
	return ed25519.Sign(s.privateKey, data), nil
}

func (s *KeySigner) PublicKey() ed25519.PublicKey {
	return s.privateKey.Public().(ed25519.PublicKey)
}
