package util

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"unicode/utf8"
)

const (
	CIP25MetadataLabel uint64 = 721

	maxMetadataStringBytes = 64
)

// NFTMetadata is the caller supplied token metadata. Image is required.
type NFTMetadata struct {
	Image       string      `json:"image"`
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Attributes  interface{} `json:"attributes,omitempty"`
}

// MintAssetName is the sequential on-chain name of the token at index.
func MintAssetName(collectionName string, index int64) string {
	return fmt.Sprintf("%s (%d)", collectionName, index)
}

// CompleteMetadata fills the name and, when absent, a computed description.
func CompleteMetadata(metadata NFTMetadata, collectionName string, assetName string, index int64) NFTMetadata {
	out := metadata
	if out.Name == "" {
		out.Name = assetName
	}
	if out.Description == "" {
		out.Description = fmt.Sprintf("Proof of Support #%d for %s", index, collectionName)
	}
	return out
}

func (m NFTMetadata) fields() map[string]interface{} {
	fields := map[string]interface{}{
		"name":  m.Name,
		"image": m.Image,
	}
	if m.Description != "" {
		fields["description"] = m.Description
	}
	if m.Attributes != nil {
		fields["attributes"] = m.Attributes
	}
	return fields
}

// AuxiliaryData encodes transaction metadata carrying a CIP-25 entry for one token.
func AuxiliaryData(policyId string, assetName string, metadata NFTMetadata) ([]byte, error) {
	token, err := metadatum(metadata.fields())
	if err != nil {
		return nil, fmt.Errorf("invalid token metadata: %w", err)
	}
	cip25 := cborMap{
		policyId, cborMap{assetName, token},
		"version", "1.0",
	}
	return EncodeCbor(cborMap{CIP25MetadataLabel, cip25})
}

// metadatum converts a JSON-shaped value into a transaction metadatum.
// Strings longer than 64 bytes become a list of chunks.
func metadatum(v interface{}) (interface{}, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return metadataString(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case uint64:
		return x, nil
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return int64(x), nil
		}
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, nil
		}
		return x.String(), nil
	case []interface{}:
		out := make([]interface{}, 0, len(x))
		for _, item := range x {
			value, err := metadatum(item)
			if err != nil {
				return nil, err
			}
			out = append(out, value)
		}
		return out, nil
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(cborMap, 0, 2*len(keys))
		for _, k := range keys {
			if len(k) > maxMetadataStringBytes {
				return nil, fmt.Errorf("metadata key %q exceeds %d bytes", k, maxMetadataStringBytes)
			}
			value, err := metadatum(x[k])
			if err != nil {
				return nil, err
			}
			out = append(out, k, value)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported metadata value %T", v)
}

func metadataString(s string) interface{} {
	if len(s) <= maxMetadataStringBytes {
		return s
	}
	var chunks []interface{}
	for len(s) > 0 {
		n := maxMetadataStringBytes
		if n > len(s) {
			n = len(s)
		}
		// keep multi-byte runes whole
		for n > 0 && n < len(s) && !utf8.RuneStart(s[n]) {
			n--
		}
		chunks = append(chunks, s[:n])
		s = s[n:]
	}
	return chunks
}
