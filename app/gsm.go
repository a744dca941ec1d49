package app

import (
	"context"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	log "github.com/sirupsen/logrus"
)

func accessSecretVersion(client *secretmanager.Client, name string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", Config.GoogleSecretManager.ProjectId, name),
	}

	result, err := client.AccessSecretVersion(context.Background(), req)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(result.Payload.Data)), nil
}

func readSecret(client *secretmanager.Client, label string, secretName string, target *string) {
	if *target != "" || secretName == "" {
		return
	}

	log.Debug("[GSM] Reading ", label)
	value, err := accessSecretVersion(client, secretName)
	if err != nil {
		log.Fatalf("[GSM] Failed to access %s: %v", label, err)
	}
	*target = value
	log.Info("[GSM] Successfully read ", label)
}

func readKeysFromGSM() {
	if !Config.GoogleSecretManager.Enabled {
		log.Debug("[GSM] Google Secret Manager is disabled")
		return
	}

	if Config.GoogleSecretManager.ProjectId == "" {
		log.Fatalf("[GSM] ProjectId is empty")
	}

	ctx := context.Background()
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		log.Fatalf("[GSM] Failed to create secretmanager client: %v", err)
	}
	defer client.Close()

	gsm := Config.GoogleSecretManager
	readSecret(client, "mongodb uri", gsm.MongoSecretName, &Config.MongoDB.URI)
	readSecret(client, "indexer project id", gsm.IndexerKeySecretName, &Config.Cardano.IndexerProjectId)

	// a kms key holds the wallet key itself, nothing to read
	if Config.Wallet.GcpKmsKeyName != "" {
		return
	}
	readSecret(client, "wallet mnemonic", gsm.MnemonicSecretName, &Config.Wallet.Mnemonic)
	if Config.Wallet.Mnemonic == "" {
		readSecret(client, "wallet signing key", gsm.SigningKeySecretName, &Config.Wallet.SigningKey)
	}
}
