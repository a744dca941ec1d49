package util

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/ugorji/go/codec"

	"github.com/dan13ram/pos-minter/common"
)

const cborMajorMap = 5

// IsWitnessSet reports whether data is a bare witness set (a CBOR map) rather than a
// full transaction (a CBOR array), as returned by CIP-30 signTx with partial signing.
func IsWitnessSet(data []byte) bool {
	return len(data) > 0 && data[0]>>5 == cborMajorMap
}

func splitTransaction(tx []byte) ([]codec.Raw, error) {
	var parts []codec.Raw
	if err := DecodeCbor(tx, &parts); err != nil {
		return nil, fmt.Errorf("invalid transaction: %w", err)
	}
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("invalid transaction: expected 3 or 4 elements, got %d", len(parts))
	}
	return parts, nil
}

// TxBodyHash returns the blake2b-256 of the body exactly as encoded in tx.
func TxBodyHash(tx []byte) ([]byte, error) {
	parts, err := splitTransaction(tx)
	if err != nil {
		return nil, err
	}
	return common.Blake2b256(parts[0]), nil
}

func TxHash(tx []byte) (string, error) {
	hash, err := TxBodyHash(tx)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(hash), nil
}

func decodeWitnessSet(data []byte) (map[uint64]codec.Raw, error) {
	witnessSet := map[uint64]codec.Raw{}
	if err := DecodeCbor(data, &witnessSet); err != nil {
		return nil, fmt.Errorf("invalid witness set: %w", err)
	}
	return witnessSet, nil
}

func parseVKeyWitnesses(raw codec.Raw) (witnesses []VKeyWitness, tagged bool, err error) {
	var v interface{}
	if err := DecodeCbor(raw, &v); err != nil {
		return nil, false, fmt.Errorf("invalid vkey witnesses: %w", err)
	}
	if ext, ok := v.(codec.RawExt); ok && ext.Tag == cborTagSet {
		v = ext.Value
		tagged = true
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, false, fmt.Errorf("invalid vkey witnesses: expected array, got %T", v)
	}
	for _, item := range items {
		pair, ok := item.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, false, fmt.Errorf("invalid vkey witness")
		}
		vkey, ok1 := pair[0].([]byte)
		sig, ok2 := pair[1].([]byte)
		if !ok1 || !ok2 || len(vkey) != common.PublicKeyLength || len(sig) != common.SignatureLength {
			return nil, false, fmt.Errorf("invalid vkey witness")
		}
		witnesses = append(witnesses, VKeyWitness{VKey: vkey, Signature: sig})
	}
	return witnesses, tagged, nil
}

// VKeyWitnesses lists the vkey witnesses already attached to tx.
func VKeyWitnesses(tx []byte) ([]VKeyWitness, error) {
	parts, err := splitTransaction(tx)
	if err != nil {
		return nil, err
	}
	witnessSet, err := decodeWitnessSet(parts[1])
	if err != nil {
		return nil, err
	}
	raw, ok := witnessSet[witnessVKeys]
	if !ok {
		return nil, nil
	}
	witnesses, _, err := parseVKeyWitnesses(raw)
	return witnesses, err
}

// AddVKeyWitnesses attaches witnesses to tx. The body and every other witness set entry
// are kept byte for byte, so the tx hash and script data hash are unaffected.
// A witness for a key that already signed is ignored.
func AddVKeyWitnesses(tx []byte, witnesses ...VKeyWitness) ([]byte, error) {
	parts, err := splitTransaction(tx)
	if err != nil {
		return nil, err
	}
	witnessSet, err := decodeWitnessSet(parts[1])
	if err != nil {
		return nil, err
	}

	var existing []VKeyWitness
	var tagged bool
	if raw, ok := witnessSet[witnessVKeys]; ok {
		existing, tagged, err = parseVKeyWitnesses(raw)
		if err != nil {
			return nil, err
		}
	}

	merged := existing
	for _, w := range witnesses {
		duplicate := false
		for _, e := range merged {
			if bytes.Equal(e.VKey, w.VKey) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			merged = append(merged, w)
		}
	}

	var vkeys interface{} = vkeyWitnessesCbor(merged)
	if tagged {
		vkeys = cborTag(cborTagSet, vkeys)
	}
	encodedVKeys, err := EncodeCbor(vkeys)
	if err != nil {
		return nil, err
	}
	witnessSet[witnessVKeys] = encodedVKeys

	keys := make([]uint64, 0, len(witnessSet))
	for k := range witnessSet {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	ws := make(cborMap, 0, 2*len(keys))
	for _, k := range keys {
		ws = append(ws, k, witnessSet[k])
	}

	out := []interface{}{parts[0], ws}
	for _, part := range parts[2:] {
		out = append(out, part)
	}
	return EncodeCbor(out)
}

// MergeWitnessSet copies the vkey witnesses of an encoded witness set into tx.
func MergeWitnessSet(tx []byte, witnessSetBytes []byte) ([]byte, error) {
	witnessSet, err := decodeWitnessSet(witnessSetBytes)
	if err != nil {
		return nil, err
	}
	raw, ok := witnessSet[witnessVKeys]
	if !ok {
		return nil, fmt.Errorf("witness set has no vkey witnesses")
	}
	witnesses, _, err := parseVKeyWitnesses(raw)
	if err != nil {
		return nil, err
	}
	return AddVKeyWitnesses(tx, witnesses...)
}

// SignTransaction adds the signer's vkey witness over the body hash of tx.
func SignTransaction(tx []byte, signer common.Signer) ([]byte, error) {
	hash, err := TxBodyHash(tx)
	if err != nil {
		return nil, err
	}
	signature, err := signer.Sign(hash)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	return AddVKeyWitnesses(tx, VKeyWitness{VKey: signer.PublicKey(), Signature: signature})
}

// VerifyVKeyWitnesses checks every attached vkey signature against the body hash.
func VerifyVKeyWitnesses(tx []byte) error {
	hash, err := TxBodyHash(tx)
	if err != nil {
		return err
	}
	witnesses, err := VKeyWitnesses(tx)
	if err != nil {
		return err
	}
	for _, w := range witnesses {
		if !ed25519.Verify(ed25519.PublicKey(w.VKey), hash, w.Signature) {
			return fmt.Errorf("invalid signature for vkey %s", hex.EncodeToString(w.VKey))
		}
	}
	return nil
}
