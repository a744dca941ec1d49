package util

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

const (
	LovelaceUnit = "lovelace"

	PolicyIdLength     = 28
	MaxAssetNameLength = 32
)

// MultiAsset maps hex policy id to hex asset name to quantity.
type MultiAsset map[string]map[string]uint64

// Value is an amount of lovelace plus native assets.
type Value struct {
	Lovelace uint64
	Assets   MultiAsset
}

type Amount struct {
	Unit     string `json:"unit"`
	Quantity string `json:"quantity"`
}

// AssetUnit is the policy id followed by the hex asset name.
func AssetUnit(policyId string, assetNameHex string) string {
	return policyId + assetNameHex
}

func SplitAssetUnit(unit string) (policyId string, assetNameHex string, err error) {
	if len(unit) < 2*PolicyIdLength {
		return "", "", fmt.Errorf("asset unit %q too short", unit)
	}
	policyId, assetNameHex = unit[:2*PolicyIdLength], unit[2*PolicyIdLength:]
	if _, err := hex.DecodeString(policyId); err != nil {
		return "", "", fmt.Errorf("invalid policy id in unit %q", unit)
	}
	if _, err := hex.DecodeString(assetNameHex); err != nil || len(assetNameHex) > 2*MaxAssetNameLength {
		return "", "", fmt.Errorf("invalid asset name in unit %q", unit)
	}
	return policyId, assetNameHex, nil
}

// ValueFromAmounts converts an indexer amount list into a Value.
func ValueFromAmounts(amounts []Amount) (Value, error) {
	var value Value
	for _, amount := range amounts {
		quantity, err := strconv.ParseUint(amount.Quantity, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid quantity %q for %s", amount.Quantity, amount.Unit)
		}
		if amount.Unit == LovelaceUnit {
			value.Lovelace += quantity
			continue
		}
		policyId, assetName, err := SplitAssetUnit(amount.Unit)
		if err != nil {
			return Value{}, err
		}
		value.AddAsset(policyId, assetName, quantity)
	}
	return value, nil
}

func (v *Value) AddAsset(policyId string, assetNameHex string, quantity uint64) {
	if quantity == 0 {
		return
	}
	policyId, assetNameHex = strings.ToLower(policyId), strings.ToLower(assetNameHex)
	if v.Assets == nil {
		v.Assets = MultiAsset{}
	}
	if v.Assets[policyId] == nil {
		v.Assets[policyId] = map[string]uint64{}
	}
	v.Assets[policyId][assetNameHex] += quantity
}

func (v Value) Quantity(policyId string, assetNameHex string) uint64 {
	return v.Assets[strings.ToLower(policyId)][strings.ToLower(assetNameHex)]
}

func (v Value) HasAssets() bool {
	for _, assets := range v.Assets {
		for _, quantity := range assets {
			if quantity > 0 {
				return true
			}
		}
	}
	return false
}

// Add returns the sum of both values.
func (v Value) Add(other Value) Value {
	sum := Value{Lovelace: v.Lovelace + other.Lovelace}
	for _, src := range []MultiAsset{v.Assets, other.Assets} {
		for policyId, assets := range src {
			for name, quantity := range assets {
				sum.AddAsset(policyId, name, quantity)
			}
		}
	}
	return sum
}

func (v Value) cborValue() (interface{}, error) {
	if !v.HasAssets() {
		return v.Lovelace, nil
	}
	assets, err := v.Assets.cborValue()
	if err != nil {
		return nil, err
	}
	return []interface{}{v.Lovelace, assets}, nil
}

func (m MultiAsset) cborValue() (cborMap, error) {
	return multiAssetCbor(m, func(q uint64) interface{} { return q })
}

// mintCborValue encodes the assets as a mint field, whose quantities are signed.
func (m MultiAsset) mintCborValue() (cborMap, error) {
	return multiAssetCbor(m, func(q uint64) interface{} { return int64(q) })
}

func multiAssetCbor(m MultiAsset, quantity func(uint64) interface{}) (cborMap, error) {
	policies := make([][]byte, 0, len(m))
	for policyId := range m {
		raw, err := hex.DecodeString(policyId)
		if err != nil || len(raw) != PolicyIdLength {
			return nil, fmt.Errorf("invalid policy id %q", policyId)
		}
		policies = append(policies, raw)
	}

	out := make(cborMap, 0, 2*len(policies))
	for _, policy := range sortedByteKeys(policies) {
		assets := m[hex.EncodeToString(policy)]
		names := make([][]byte, 0, len(assets))
		for name, q := range assets {
			if q == 0 {
				continue
			}
			raw, err := hex.DecodeString(name)
			if err != nil || len(raw) > MaxAssetNameLength {
				return nil, fmt.Errorf("invalid asset name %q", name)
			}
			names = append(names, raw)
		}
		if len(names) == 0 {
			continue
		}
		inner := make(cborMap, 0, 2*len(names))
		for _, name := range sortedByteKeys(names) {
			inner = append(inner, name, quantity(assets[hex.EncodeToString(name)]))
		}
		out = append(out, policy, inner)
	}
	return out, nil
}

// AssetNameHex hex encodes a UTF-8 asset name, enforcing the ledger's 32 byte limit.
func AssetNameHex(name string) (string, error) {
	if len(name) == 0 {
		return "", fmt.Errorf("asset name is empty")
	}
	if len(name) > MaxAssetNameLength {
		return "", fmt.Errorf("asset name %q is %d bytes, max %d", name, len(name), MaxAssetNameLength)
	}
	return hex.EncodeToString([]byte(name)), nil
}
