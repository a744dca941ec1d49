package common

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testMnemonic = "test test test test test test test test test test test junk"

func TestNewMnemonicSigner(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic)
	assert.NoError(t, err)
	assert.NotNil(t, signer)

	assert.Equal(t, "20578a9a8283f754d152e41391de5cb8f9d63f8acb5d71e557f974b1173a9a96", hex.EncodeToString(signer.PublicKey()))
	assert.Equal(t, "2b218f09113f8c3900e461c3ea9985152b27c410dbc2e1d111eb3262", hex.EncodeToString(KeyHash(signer)))
}

func TestNewMnemonicSigner_Invalid(t *testing.T) {
	_, err := NewMnemonicSigner("test test test")
	assert.Error(t, err)

	_, err = NewMnemonicSigner("junk test test test test test test test test test test test")
	assert.Error(t, err)
}

func TestMnemonicSigner_Sign(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic)
	assert.NoError(t, err)

	data := []byte("test data")
	sig, err := signer.Sign(data)
	assert.NoError(t, err)
	assert.Len(t, sig, SignatureLength)

	assert.True(t, ed25519.Verify(signer.PublicKey(), data, sig))
	assert.False(t, ed25519.Verify(signer.PublicKey(), []byte("other data"), sig))
	assert.Equal(t, "a0852f4a832fb5ebe1fc704210d4a24c13d39de809367d4febdbe75409e2a1dbde29b7e10320682db5327ff685eebee47dae813130c276734d6db4add5051701", hex.EncodeToString(sig))
}

func TestMnemonicSigner_Whitespace(t *testing.T) {
	a, err := NewMnemonicSigner(testMnemonic)
	assert.NoError(t, err)
	b, err := NewMnemonicSigner("  test test test test test test test test test test test   junk ")
	assert.NoError(t, err)

	assert.Equal(t, a.PublicKey(), b.PublicKey())
}

func TestParseDerivationPath(t *testing.T) {
	path, err := parseDerivationPath(DefaultCardanoHDPath)
	assert.NoError(t, err)
	assert.Equal(t, []uint32{1852 + HardenedKeyStart, 1815 + HardenedKeyStart, HardenedKeyStart, 0, 0}, path)

	_, err = parseDerivationPath("x/1/2")
	assert.Error(t, err)

	_, err = parseDerivationPath("m/abc")
	assert.Error(t, err)
}

func TestMnemonicSigner_Destroy(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic)
	assert.NoError(t, err)

	signer.Destroy()
	assert.Equal(t, extendedKey{}, signer.key)
}
