package common

import (
	"context"
	"crypto/ed25519"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"fmt"

	kms "cloud.google.com/go/kms/apiv1"
	"cloud.google.com/go/kms/apiv1/kmspb"

	gax "github.com/googleapis/gax-go/v2"
)

type GCPKeyManagementClient interface {
	Close() error
	GetPublicKey(ctx context.Context, req *kmspb.GetPublicKeyRequest, opts ...gax.CallOption) (*kmspb.PublicKey, error)
	AsymmetricSign(ctx context.Context, req *kmspb.AsymmetricSignRequest, opts ...gax.CallOption) (*kmspb.AsymmetricSignResponse, error)
	GetCryptoKeyVersion(ctx context.Context, req *kmspb.GetCryptoKeyVersionRequest, opts ...gax.CallOption) (*kmspb.CryptoKeyVersion, error)
}

// GcpKmsSigner signs with an Ed25519 key version held in Cloud KMS.
type GcpKmsSigner struct {
	client    GCPKeyManagementClient
	keyName   string
	publicKey ed25519.PublicKey
}

var _ Signer = &GcpKmsSigner{}

var oidPublicKeyEd25519 = asn1.ObjectIdentifier{1, 3, 101, 112}

func kmsClient(ctx context.Context) (GCPKeyManagementClient, error) {
	return kms.NewKeyManagementClient(ctx)
}

var NewGCPKeyManagementClient = kmsClient

func NewGcpKmsSigner(keyName string) (Signer, error) {
	client, err := NewGCPKeyManagementClient(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create KMS client: %w", err)
	}

	// verify key algorithm
	keyVersionDetails, err := resolveKeyVersionDetails(client, keyName)
	if err != nil {
		return nil, fmt.Errorf("failed to get key version details: %w", err)
	}

	if keyVersionDetails.Algorithm != kmspb.CryptoKeyVersion_EC_SIGN_ED25519 {
		return nil, fmt.Errorf("key algorithm is not EC_SIGN_ED25519")
	}

	publicKey, err := resolvePublicKey(client, keyName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve public key: %w", err)
	}

	return &GcpKmsSigner{
		client:    client,
		keyName:   keyName,
		publicKey: publicKey,
	}, nil
}

func (s *GcpKmsSigner) Destroy() {
	s.client.Close()
}

// Sign asks KMS for a pure Ed25519 signature over data and checks it locally.
func (s *GcpKmsSigner) Sign(data []byte) ([]byte, error) {
	req := &kmspb.AsymmetricSignRequest{
		Name: s.keyName,
		Data: data,
	}
	resp, err := s.client.AsymmetricSign(context.Background(), req)
	if err != nil {
		return nil, fmt.Errorf("asymmetric sign operation: %w", err)
	}

	if len(resp.Signature) != SignatureLength {
		return nil, fmt.Errorf("asymmetric signature with %d bytes denied on size", len(resp.Signature))
	}

	if !ed25519.Verify(s.publicKey, data, resp.Signature) {
		return nil, fmt.Errorf("signature verification failed")
	}

	return resp.Signature, nil
}

func (s *GcpKmsSigner) PublicKey() ed25519.PublicKey {
	return s.publicKey
}

func resolvePublicKey(client GCPKeyManagementClient, keyName string) (ed25519.PublicKey, error) {
	publicKeyResp, err := client.GetPublicKey(context.Background(), &kmspb.GetPublicKeyRequest{Name: keyName})
	if err != nil {
		return nil, fmt.Errorf("failed to get public key: %w", err)
	}

	publicKeyPem := publicKeyResp.Pem

	block, _ := pem.Decode([]byte(publicKeyPem))
	if block == nil {
		return nil, fmt.Errorf("public key %q PEM empty: %.130q", keyName, publicKeyPem)
	}

	var info struct {
		AlgID pkix.AlgorithmIdentifier
		Key   asn1.BitString
	}
	_, err = asn1.Unmarshal(block.Bytes, &info)
	if err != nil {
		return nil, fmt.Errorf("public key %q PEM block %q: %w", keyName, block.Type, err)
	}

	if gotAlg := info.AlgID.Algorithm; !gotAlg.Equal(oidPublicKeyEd25519) {
		return nil, fmt.Errorf("public key %q ASN.1 algorithm %s instead of %s", keyName, gotAlg, oidPublicKeyEd25519)
	}

	if len(info.Key.Bytes) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key %q has %d bytes", keyName, len(info.Key.Bytes))
	}

	return ed25519.PublicKey(info.Key.Bytes), nil
}

func resolveKeyVersionDetails(client GCPKeyManagementClient, keyName string) (*kmspb.CryptoKeyVersion, error) {
	req := &kmspb.GetCryptoKeyVersionRequest{
		Name: keyName,
	}

	resp, err := client.GetCryptoKeyVersion(context.Background(), req)
	if err != nil {
		return nil, fmt.Errorf("failed to get key version details: %w", err)
	}

	return resp, nil
}
