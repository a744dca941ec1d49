package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dan13ram/pos-minter/common"
)

// Main Function
func main() {
	var network string
	flag.StringVar(&network, "network", common.NetworkPreprod, "cardano network of the printed address")
	flag.Parse()

	GoogleKeyName := os.Getenv("GCP_KMS_KEY_NAME")

	fmt.Println("Google KMS Key Name: ", GoogleKeyName)
	if GoogleKeyName == "" {
		log.Fatalf("GCP KMS Key Name not set")
	}

	signer, err := common.NewGcpKmsSigner(GoogleKeyName)
	if err != nil {
		log.Fatalf("failed to create GCP KMS signer: %v", err)
	}
	defer signer.Destroy()

	keyHash := common.KeyHash(signer)
	address, err := common.EnterpriseAddress(keyHash, network)
	if err != nil {
		log.Fatalf("failed to build address: %v", err)
	}

	fmt.Println("Public Key: ", hex.EncodeToString(signer.PublicKey()))
	fmt.Println("Key Hash: ", hex.EncodeToString(keyHash))
	fmt.Println("Address: ", address)

	// sign a body hash sized message and check it against the public key
	message := common.Blake2b256([]byte("example transaction body"))
	signature, err := signer.Sign(message)
	if err != nil {
		log.Fatalf("failed to sign: %v", err)
	}
	fmt.Printf("Signature: %x\n", signature)

	if !ed25519.Verify(signer.PublicKey(), message, signature) {
		log.Fatalf("signature does not verify against the public key")
	}
	fmt.Println("Signature verified")
}
