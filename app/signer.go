package app

import (
	"encoding/hex"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/pos-minter/common"
)

// CreateCardanoSigner picks the wallet key source: a mnemonic, a raw signing key
// or a GCP KMS key, in that order.
func CreateCardanoSigner() (common.Signer, error) {
	config := Config.Wallet
	if config.Mnemonic == "" && config.SigningKey == "" && config.GcpKmsKeyName == "" {
		return nil, fmt.Errorf("Mnemonic, SigningKey and GcpKmsKeyName are all empty")
	}
	if config.Mnemonic != "" {
		return common.NewMnemonicSigner(config.Mnemonic)
	}
	if config.SigningKey != "" {
		return common.NewKeySigner(config.SigningKey)
	}
	return common.NewGcpKmsSigner(config.GcpKmsKeyName)
}

// WalletSigner is the server wallet key with its derived enterprise address.
type WalletSigner struct {
	Signer  common.Signer
	KeyHash []byte
	Address string
}

func GetWalletSigner() (*WalletSigner, error) {
	signer, err := CreateCardanoSigner()
	if err != nil {
		return nil, fmt.Errorf("error initializing wallet signer: %w", err)
	}

	keyHash := common.KeyHash(signer)
	log.Debugf("[SIGNER] Wallet key hash: %s", hex.EncodeToString(keyHash))

	address, err := common.EnterpriseAddress(keyHash, Config.Cardano.Network)
	if err != nil {
		signer.Destroy()
		return nil, fmt.Errorf("error getting wallet address: %w", err)
	}
	log.Debugf("[SIGNER] Wallet address: %s", address)

	return &WalletSigner{
		Signer:  signer,
		KeyHash: keyHash,
		Address: address,
	}, nil
}
