package common

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSeedHex = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"

func TestNewKeySigner(t *testing.T) {
	expected := ed25519.NewKeyFromSeed(mustDecodeHex(testSeedHex)).Public().(ed25519.PublicKey)

	t.Run("Raw Hex", func(t *testing.T) {
		signer, err := NewKeySigner(testSeedHex)
		assert.NoError(t, err)
		assert.Equal(t, expected, signer.PublicKey())
	})

	t.Run("Cbor Hex", func(t *testing.T) {
		signer, err := NewKeySigner("5820" + testSeedHex)
		assert.NoError(t, err)
		assert.Equal(t, expected, signer.PublicKey())
	})

	t.Run("Text Envelope", func(t *testing.T) {
		envelope := `{"type":"PaymentSigningKeyShelley_ed25519","description":"Payment Signing Key","cborHex":"5820` + testSeedHex + `"}`
		signer, err := NewKeySigner(envelope)
		assert.NoError(t, err)
		assert.Equal(t, expected, signer.PublicKey())
	})

	t.Run("Invalid Hex", func(t *testing.T) {
		_, err := NewKeySigner("zz")
		assert.Error(t, err)
	})

	t.Run("Invalid Length", func(t *testing.T) {
		_, err := NewKeySigner("abcd")
		assert.Error(t, err)
	})

	t.Run("Invalid Envelope", func(t *testing.T) {
		_, err := NewKeySigner("{not json")
		assert.Error(t, err)
	})
}

func TestKeySigner_Sign(t *testing.T) {
	signer, err := NewKeySigner(testSeedHex)
	assert.NoError(t, err)

	data := []byte("body hash")
	sig, err := signer.Sign(data)
	assert.NoError(t, err)
	assert.True(t, ed25519.Verify(signer.PublicKey(), data, sig))

	// RFC 8032 test 1
	assert.Equal(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a", hex.EncodeToString(signer.PublicKey()))
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
