package common

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"filippo.io/edwards25519"
	"github.com/cosmos/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

// extendedKey is a BIP32-Ed25519 extended private key (kL, kR) with its chain code.
type extendedKey struct {
	kL        [32]byte
	kR        [32]byte
	chainCode [32]byte
}

type MnemonicSigner struct {
	key       extendedKey
	publicKey ed25519.PublicKey
}

var _ Signer = &MnemonicSigner{}

func NewMnemonicSigner(mnemonic string) (*MnemonicSigner, error) {
	root, err := rootKeyFromMnemonic(mnemonic, DefaultBIP39Passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to create root key: %w", err)
	}

	path, err := parseDerivationPath(DefaultCardanoHDPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse derivation path: %w", err)
	}

	key := root
	for _, index := range path {
		key = key.child(index)
	}

	return &MnemonicSigner{
		key:       key,
		publicKey: key.publicKey(),
	}, nil
}

func (s *MnemonicSigner) Destroy() {
	s.key = extendedKey{}
}

func (s *MnemonicSigner) Sign(data []byte) ([]byte, error) {
	return s.key.sign(data), nil
}

func (s *MnemonicSigner) PublicKey() ed25519.PublicKey {
	return s.publicKey
}

func entropyFromMnemonic(mnemonic string) ([]byte, error) {
	words := strings.Fields(mnemonic)
	raw, err := bip39.MnemonicToByteArray(strings.Join(words, " "))
	if err != nil {
		return nil, err
	}
	bitSize := len(words) * 11
	checksumBits := bitSize % 32
	entropy := new(big.Int).Rsh(new(big.Int).SetBytes(raw), uint(checksumBits))
	return entropy.FillBytes(make([]byte, (bitSize-checksumBits)/8)), nil
}

// rootKeyFromMnemonic derives the Icarus master key.
func rootKeyFromMnemonic(mnemonic string, passphrase string) (extendedKey, error) {
	entropy, err := entropyFromMnemonic(mnemonic)
	if err != nil {
		return extendedKey{}, err
	}

	data := pbkdf2.Key([]byte(passphrase), entropy, 4096, 96, sha512.New)
	data[0] &= 0xf8
	data[31] &= 0x1f
	data[31] |= 0x40

	var key extendedKey
	copy(key.kL[:], data[:32])
	copy(key.kR[:], data[32:64])
	copy(key.chainCode[:], data[64:])
	return key, nil
}

func parseDerivationPath(path string) ([]uint32, error) {
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, fmt.Errorf("path must start with m")
	}
	indexes := make([]uint32, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := strings.HasSuffix(part, "'")
		value, err := strconv.ParseUint(strings.TrimSuffix(part, "'"), 10, 31)
		if err != nil {
			return nil, fmt.Errorf("invalid path element %q: %w", part, err)
		}
		index := uint32(value)
		if hardened {
			index += HardenedKeyStart
		}
		indexes = append(indexes, index)
	}
	return indexes, nil
}

func scalarFromKL(kL [32]byte) *edwards25519.Scalar {
	var wide [64]byte
	copy(wide[:], kL[:])
	s, _ := edwards25519.NewScalar().SetUniformBytes(wide[:])
	return s
}

func (k extendedKey) publicKey() ed25519.PublicKey {
	point := new(edwards25519.Point).ScalarBaseMult(scalarFromKL(k.kL))
	return ed25519.PublicKey(point.Bytes())
}

func (k extendedKey) child(index uint32) extendedKey {
	var indexBytes [4]byte
	binary.LittleEndian.PutUint32(indexBytes[:], index)

	var zInput, cInput []byte
	if index >= HardenedKeyStart {
		zInput = append(append(append([]byte{0x00}, k.kL[:]...), k.kR[:]...), indexBytes[:]...)
		cInput = append(append(append([]byte{0x01}, k.kL[:]...), k.kR[:]...), indexBytes[:]...)
	} else {
		pub := k.publicKey()
		zInput = append(append([]byte{0x02}, pub...), indexBytes[:]...)
		cInput = append(append([]byte{0x03}, pub...), indexBytes[:]...)
	}

	z := hmacSHA512(k.chainCode[:], zInput)
	c := hmacSHA512(k.chainCode[:], cInput)

	var child extendedKey

	// kL' = 8 * zL[:28] + kL
	zL := leToInt(z[:28])
	kL := new(big.Int).Add(new(big.Int).Lsh(zL, 3), leToInt(k.kL[:]))
	intToLE(kL, child.kL[:])

	// kR' = zR + kR mod 2^256
	kR := new(big.Int).Add(leToInt(z[32:]), leToInt(k.kR[:]))
	intToLE(kR, child.kR[:])

	copy(child.chainCode[:], c[32:])
	return child
}

// sign produces an Ed25519 signature using the extended key halves directly.
func (k extendedKey) sign(message []byte) []byte {
	a := scalarFromKL(k.kL)
	publicKey := k.publicKey()

	h := sha512.New()
	h.Write(k.kR[:])
	h.Write(message)
	r, _ := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))

	R := new(edwards25519.Point).ScalarBaseMult(r).Bytes()

	h.Reset()
	h.Write(R)
	h.Write(publicKey)
	h.Write(message)
	hram, _ := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))

	S := edwards25519.NewScalar().MultiplyAdd(hram, a, r)

	signature := make([]byte, 0, SignatureLength)
	signature = append(signature, R...)
	return append(signature, S.Bytes()...)
}

func hmacSHA512(key []byte, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

func leToInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}

// intToLE writes the low len(out) bytes of n little-endian into out.
func intToLE(n *big.Int, out []byte) {
	be := n.Bytes()
	for i := range out {
		out[i] = 0
	}
	for i := 0; i < len(out) && i < len(be); i++ {
		out[i] = be[len(be)-1-i]
	}
}
