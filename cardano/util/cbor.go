package util

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/ugorji/go/codec"
)

var cborHandle = newCborHandle()

func newCborHandle() *codec.CborHandle {
	h := &codec.CborHandle{}
	h.Raw = true
	return h
}

// cborMap is a map encoded with its entries in slice order: k0, v0, k1, v1, ...
type cborMap []interface{}

func (cborMap) MapBySlice() {}

func cborTag(tag uint64, value interface{}) *codec.RawExt {
	return &codec.RawExt{Tag: tag, Value: value}
}

func EncodeCbor(v interface{}) ([]byte, error) {
	var out []byte
	enc := codec.NewEncoderBytes(&out, cborHandle)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode cbor: %w", err)
	}
	return out, nil
}

func DecodeCbor(data []byte, v interface{}) error {
	dec := codec.NewDecoderBytes(data, cborHandle)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode cbor: %w", err)
	}
	return nil
}

// sortedByteKeys returns the keys in canonical CBOR order: shorter first, then bytewise.
func sortedByteKeys(keys [][]byte) [][]byte {
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return bytes.Compare(keys[i], keys[j]) < 0
	})
	return keys
}
