package common

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	mainnetHRP = "addr"
	testnetHRP = "addr_test"

	enterpriseKeyHeader = 0x60
)

// NetworkId returns the address network nibble for a configured network name.
func NetworkId(network string) byte {
	if strings.EqualFold(network, NetworkMainnet) {
		return 1
	}
	return 0
}

func addressHRP(networkId byte) string {
	if networkId == 1 {
		return mainnetHRP
	}
	return testnetHRP
}

// EnterpriseAddress builds a bech32 enterprise address (no stake part) for a payment key hash.
func EnterpriseAddress(keyHash []byte, network string) (string, error) {
	if len(keyHash) != KeyHashLength {
		return "", fmt.Errorf("invalid key hash length %d", len(keyHash))
	}
	networkId := NetworkId(network)
	data := append([]byte{enterpriseKeyHeader | networkId}, keyHash...)
	return bech32.EncodeFromBase256(addressHRP(networkId), data)
}

// AddressBytes decodes a bech32 shelley address into its raw header+payload bytes.
func AddressBytes(address string) ([]byte, error) {
	hrp, data, err := bech32.DecodeNoLimit(address)
	if err != nil {
		return nil, fmt.Errorf("invalid bech32 address: %w", err)
	}
	if hrp != mainnetHRP && hrp != testnetHRP {
		return nil, fmt.Errorf("unexpected address prefix %q", hrp)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("invalid address payload: %w", err)
	}
	if len(raw) < 1+KeyHashLength {
		return nil, fmt.Errorf("address too short")
	}
	return raw, nil
}

// PaymentKeyHash returns the payment credential of an address whose payment part is a key hash.
func PaymentKeyHash(address string) ([]byte, error) {
	raw, err := AddressBytes(address)
	if err != nil {
		return nil, err
	}
	switch raw[0] >> 4 {
	case 0x0, 0x2, 0x4, 0x6:
		return raw[1 : 1+KeyHashLength], nil
	default:
		return nil, fmt.Errorf("payment credential is not a key hash")
	}
}

// AddressNetworkMatches reports whether the address header carries the expected network id.
func AddressNetworkMatches(address string, network string) bool {
	raw, err := AddressBytes(address)
	if err != nil {
		return false
	}
	return raw[0]&0x0f == NetworkId(network)
}
