package main

import (
	"encoding/hex"
	"flag"
	"fmt"

	bip39 "github.com/cosmos/go-bip39"

	"github.com/dan13ram/pos-minter/common"
)

func main() {
	var network string
	var bits int
	flag.StringVar(&network, "network", common.NetworkPreprod, "cardano network of the printed address")
	flag.IntVar(&bits, "bits", 256, "entropy size, 160 for 15 words or 256 for 24 words")
	flag.Parse()

	if bits != 160 && bits != 256 {
		fmt.Printf("bits must be 160 or 256\n")
		return
	}

	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		fmt.Printf("error generating entropy: %v\n", err)
		return
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		fmt.Printf("error generating mnemonic: %v\n", err)
		return
	}

	signer, err := common.NewMnemonicSigner(mnemonic)
	if err != nil {
		fmt.Printf("error deriving key: %v\n", err)
		return
	}
	defer signer.Destroy()

	keyHash := common.KeyHash(signer)
	address, err := common.EnterpriseAddress(keyHash, network)
	if err != nil {
		fmt.Printf("error building address: %v\n", err)
		return
	}

	fmt.Printf("mnemonic: %s\n", mnemonic)
	fmt.Printf("key hash: %s\n", hex.EncodeToString(keyHash))
	fmt.Printf("address: %s\n", address)
	fmt.Printf("fund the address and set WALLET_MNEMONIC to serve mints from it\n")
}
