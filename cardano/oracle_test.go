package cardano

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dan13ram/pos-minter/cardano/client"
	clientMocks "github.com/dan13ram/pos-minter/cardano/client/mocks"
	"github.com/dan13ram/pos-minter/models"
)

func newTestOracleReader(t *testing.T) (OracleReader, *clientMocks.MockIndexerClient) {
	indexer := clientMocks.NewMockIndexerClient(t)
	projects := NewStaticProjectStore([]models.Project{testProject()})
	return NewOracleReader(projects, indexer), indexer
}

var testOracleMintHash = strings.Repeat("ef", 32)

// expectOracleOrigin answers the origin lookups with a mint transaction spending the project's param utxo.
func expectOracleOrigin(indexer *clientMocks.MockIndexerClient) {
	paramUtxo, _ := parseUtxoRef(testProject().ParamUtxoRef)
	indexer.EXPECT().GetAsset(mock.Anything, testOracleUnit).
		Return(&client.Asset{Asset: testOracleUnit, Quantity: "1", InitialMintTxHash: testOracleMintHash}, nil).Once()
	indexer.EXPECT().GetTransactionUtxos(mock.Anything, testOracleMintHash).
		Return(&client.TransactionUtxos{Hash: testOracleMintHash, Inputs: []client.TransactionInput{
			{Utxo: client.Utxo{TxHash: paramUtxo.TxHash, OutputIndex: paramUtxo.Index}},
		}}, nil).Once()
}

func TestGetOracleSnapshot(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		reader, indexer := newTestOracleReader(t)
		utxo := testOracleUtxo(t, testOracleState())

		indexer.EXPECT().GetPolicyAssets(mock.Anything, testOraclePolicyId).
			Return([]client.PolicyAsset{{Asset: testOraclePolicyId + "00", Quantity: "0"}, {Asset: testOracleUnit, Quantity: "1"}}, nil)
		expectOracleOrigin(indexer)
		indexer.EXPECT().GetAssetAddresses(mock.Anything, testOracleUnit).
			Return([]client.AssetAddress{{Address: utxo.Address, Quantity: "1"}}, nil)
		indexer.EXPECT().GetAddressAssetUtxos(mock.Anything, utxo.Address, testOracleUnit).
			Return([]client.Utxo{utxo}, nil)

		snapshot, err := reader.GetOracleSnapshot(context.Background(), "proj1")
		assert.NoError(t, err)
		assert.Equal(t, testOracleState(), snapshot.State)
		assert.Equal(t, "Solar Farm", snapshot.CollectionName)
		assert.Equal(t, testOracleUnit, snapshot.OracleUnit)
		assert.Equal(t, utxo.Input(), snapshot.OracleUtxo.Input())
		assert.Equal(t, testProject().ParamUtxoRef, snapshot.ParamUtxoRef)
	})

	t.Run("By Policy", func(t *testing.T) {
		reader, indexer := newTestOracleReader(t)
		utxo := testOracleUtxo(t, testOracleState())

		indexer.EXPECT().GetPolicyAssets(mock.Anything, testOraclePolicyId).
			Return([]client.PolicyAsset{{Asset: testOracleUnit, Quantity: "1"}}, nil)
		expectOracleOrigin(indexer)
		indexer.EXPECT().GetAssetAddresses(mock.Anything, testOracleUnit).
			Return([]client.AssetAddress{{Address: utxo.Address, Quantity: "1"}}, nil)
		indexer.EXPECT().GetAddressAssetUtxos(mock.Anything, utxo.Address, testOracleUnit).
			Return([]client.Utxo{utxo}, nil)

		snapshot, err := reader.GetOracleSnapshotByPolicy(context.Background(), testPolicyId)
		assert.NoError(t, err)
		assert.Equal(t, "proj1", snapshot.Project.ProjectId)
		assert.Equal(t, int64(5), snapshot.State.Count)
	})

	t.Run("Collection Name Defaults To Project", func(t *testing.T) {
		project := testProject()
		project.CollectionName = ""
		indexer := clientMocks.NewMockIndexerClient(t)
		reader := NewOracleReader(NewStaticProjectStore([]models.Project{project}), indexer)
		utxo := testOracleUtxo(t, testOracleState())

		indexer.EXPECT().GetPolicyAssets(mock.Anything, testOraclePolicyId).
			Return([]client.PolicyAsset{{Asset: testOracleUnit, Quantity: "1"}}, nil)
		expectOracleOrigin(indexer)
		indexer.EXPECT().GetAssetAddresses(mock.Anything, testOracleUnit).
			Return([]client.AssetAddress{{Address: utxo.Address, Quantity: "1"}}, nil)
		indexer.EXPECT().GetAddressAssetUtxos(mock.Anything, utxo.Address, testOracleUnit).
			Return([]client.Utxo{utxo}, nil)

		snapshot, err := reader.GetOracleSnapshot(context.Background(), "proj1")
		assert.NoError(t, err)
		assert.Equal(t, "proj1", snapshot.CollectionName)
	})

	t.Run("Unknown Project", func(t *testing.T) {
		reader, _ := newTestOracleReader(t)

		_, err := reader.GetOracleSnapshot(context.Background(), "proj2")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Indexer Error", func(t *testing.T) {
		reader, indexer := newTestOracleReader(t)
		indexer.EXPECT().GetPolicyAssets(mock.Anything, testOraclePolicyId).Return(nil, errors.New("timeout"))

		_, err := reader.GetOracleSnapshot(context.Background(), "proj1")
		var upstreamErr *UpstreamError
		assert.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, "list oracle policy assets", upstreamErr.Op)
	})

	t.Run("No Oracle Token", func(t *testing.T) {
		reader, indexer := newTestOracleReader(t)
		indexer.EXPECT().GetPolicyAssets(mock.Anything, testOraclePolicyId).Return([]client.PolicyAsset{}, nil)

		_, err := reader.GetOracleSnapshot(context.Background(), "proj1")
		var upstreamErr *UpstreamError
		assert.ErrorAs(t, err, &upstreamErr)
	})

	t.Run("Token Not Held", func(t *testing.T) {
		reader, indexer := newTestOracleReader(t)
		indexer.EXPECT().GetPolicyAssets(mock.Anything, testOraclePolicyId).
			Return([]client.PolicyAsset{{Asset: testOracleUnit, Quantity: "1"}}, nil)
		expectOracleOrigin(indexer)
		indexer.EXPECT().GetAssetAddresses(mock.Anything, testOracleUnit).Return([]client.AssetAddress{}, nil)

		_, err := reader.GetOracleSnapshot(context.Background(), "proj1")
		var upstreamErr *UpstreamError
		assert.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, "find oracle holder", upstreamErr.Op)
	})

	t.Run("No Utxo", func(t *testing.T) {
		reader, indexer := newTestOracleReader(t)
		address := testScriptAddress(t)
		indexer.EXPECT().GetPolicyAssets(mock.Anything, testOraclePolicyId).
			Return([]client.PolicyAsset{{Asset: testOracleUnit, Quantity: "1"}}, nil)
		expectOracleOrigin(indexer)
		indexer.EXPECT().GetAssetAddresses(mock.Anything, testOracleUnit).
			Return([]client.AssetAddress{{Address: address, Quantity: "1"}}, nil)
		indexer.EXPECT().GetAddressAssetUtxos(mock.Anything, address, testOracleUnit).Return([]client.Utxo{}, nil)

		_, err := reader.GetOracleSnapshot(context.Background(), "proj1")
		var upstreamErr *UpstreamError
		assert.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, "find oracle utxo", upstreamErr.Op)
	})

	t.Run("Missing Datum", func(t *testing.T) {
		reader, indexer := newTestOracleReader(t)
		utxo := testOracleUtxo(t, testOracleState())
		utxo.InlineDatum = nil
		indexer.EXPECT().GetPolicyAssets(mock.Anything, testOraclePolicyId).
			Return([]client.PolicyAsset{{Asset: testOracleUnit, Quantity: "1"}}, nil)
		expectOracleOrigin(indexer)
		indexer.EXPECT().GetAssetAddresses(mock.Anything, testOracleUnit).
			Return([]client.AssetAddress{{Address: utxo.Address, Quantity: "1"}}, nil)
		indexer.EXPECT().GetAddressAssetUtxos(mock.Anything, utxo.Address, testOracleUnit).
			Return([]client.Utxo{utxo}, nil)

		_, err := reader.GetOracleSnapshot(context.Background(), "proj1")
		var upstreamErr *UpstreamError
		assert.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, "read oracle datum", upstreamErr.Op)
	})

	t.Run("Bad Datum", func(t *testing.T) {
		reader, indexer := newTestOracleReader(t)
		utxo := testOracleUtxo(t, testOracleState())
		bad := "d87980"
		utxo.InlineDatum = &bad
		indexer.EXPECT().GetPolicyAssets(mock.Anything, testOraclePolicyId).
			Return([]client.PolicyAsset{{Asset: testOracleUnit, Quantity: "1"}}, nil)
		expectOracleOrigin(indexer)
		indexer.EXPECT().GetAssetAddresses(mock.Anything, testOracleUnit).
			Return([]client.AssetAddress{{Address: utxo.Address, Quantity: "1"}}, nil)
		indexer.EXPECT().GetAddressAssetUtxos(mock.Anything, utxo.Address, testOracleUnit).
			Return([]client.Utxo{utxo}, nil)

		_, err := reader.GetOracleSnapshot(context.Background(), "proj1")
		var upstreamErr *UpstreamError
		assert.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, "decode oracle datum", upstreamErr.Op)
	})
}

func TestOracleOrigin(t *testing.T) {
	t.Run("Checked Once Per Project", func(t *testing.T) {
		reader, indexer := newTestOracleReader(t)
		utxo := testOracleUtxo(t, testOracleState())

		indexer.EXPECT().GetPolicyAssets(mock.Anything, testOraclePolicyId).
			Return([]client.PolicyAsset{{Asset: testOracleUnit, Quantity: "1"}}, nil).Twice()
		expectOracleOrigin(indexer)
		indexer.EXPECT().GetAssetAddresses(mock.Anything, testOracleUnit).
			Return([]client.AssetAddress{{Address: utxo.Address, Quantity: "1"}}, nil).Twice()
		indexer.EXPECT().GetAddressAssetUtxos(mock.Anything, utxo.Address, testOracleUnit).
			Return([]client.Utxo{utxo}, nil).Twice()

		_, err := reader.GetOracleSnapshot(context.Background(), "proj1")
		assert.NoError(t, err)
		_, err = reader.GetOracleSnapshotByPolicy(context.Background(), testPolicyId)
		assert.NoError(t, err)
	})

	t.Run("Minted From Another Utxo", func(t *testing.T) {
		reader, indexer := newTestOracleReader(t)
		indexer.EXPECT().GetPolicyAssets(mock.Anything, testOraclePolicyId).
			Return([]client.PolicyAsset{{Asset: testOracleUnit, Quantity: "1"}}, nil)
		indexer.EXPECT().GetAsset(mock.Anything, testOracleUnit).
			Return(&client.Asset{Asset: testOracleUnit, InitialMintTxHash: testOracleMintHash}, nil)
		indexer.EXPECT().GetTransactionUtxos(mock.Anything, testOracleMintHash).
			Return(&client.TransactionUtxos{Hash: testOracleMintHash, Inputs: []client.TransactionInput{
				{Utxo: client.Utxo{TxHash: strings.Repeat("99", 32), OutputIndex: 0}},
			}}, nil)

		_, err := reader.GetOracleSnapshot(context.Background(), "proj1")
		assert.ErrorIs(t, err, ErrOracleMismatch)
	})

	t.Run("Param Utxo Only As Collateral", func(t *testing.T) {
		reader, indexer := newTestOracleReader(t)
		paramUtxo, err := parseUtxoRef(testProject().ParamUtxoRef)
		assert.NoError(t, err)

		indexer.EXPECT().GetPolicyAssets(mock.Anything, testOraclePolicyId).
			Return([]client.PolicyAsset{{Asset: testOracleUnit, Quantity: "1"}}, nil)
		indexer.EXPECT().GetAsset(mock.Anything, testOracleUnit).
			Return(&client.Asset{Asset: testOracleUnit, InitialMintTxHash: testOracleMintHash}, nil)
		indexer.EXPECT().GetTransactionUtxos(mock.Anything, testOracleMintHash).
			Return(&client.TransactionUtxos{Hash: testOracleMintHash, Inputs: []client.TransactionInput{
				{Utxo: client.Utxo{TxHash: paramUtxo.TxHash, OutputIndex: paramUtxo.Index}, Collateral: true},
			}}, nil)

		_, err = reader.GetOracleSnapshot(context.Background(), "proj1")
		assert.ErrorIs(t, err, ErrOracleMismatch)
	})

	t.Run("Lookup Error", func(t *testing.T) {
		reader, indexer := newTestOracleReader(t)
		indexer.EXPECT().GetPolicyAssets(mock.Anything, testOraclePolicyId).
			Return([]client.PolicyAsset{{Asset: testOracleUnit, Quantity: "1"}}, nil)
		indexer.EXPECT().GetAsset(mock.Anything, testOracleUnit).Return(nil, errors.New("timeout"))

		_, err := reader.GetOracleSnapshot(context.Background(), "proj1")
		var upstreamErr *UpstreamError
		assert.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, "look up oracle token", upstreamErr.Op)
	})

	t.Run("Skipped Without Param Utxo", func(t *testing.T) {
		project := testProject()
		project.ParamUtxoRef = ""
		indexer := clientMocks.NewMockIndexerClient(t)
		reader := NewOracleReader(NewStaticProjectStore([]models.Project{project}), indexer)
		utxo := testOracleUtxo(t, testOracleState())

		indexer.EXPECT().GetPolicyAssets(mock.Anything, testOraclePolicyId).
			Return([]client.PolicyAsset{{Asset: testOracleUnit, Quantity: "1"}}, nil)
		indexer.EXPECT().GetAssetAddresses(mock.Anything, testOracleUnit).
			Return([]client.AssetAddress{{Address: utxo.Address, Quantity: "1"}}, nil)
		indexer.EXPECT().GetAddressAssetUtxos(mock.Anything, utxo.Address, testOracleUnit).
			Return([]client.Utxo{utxo}, nil)

		_, err := reader.GetOracleSnapshot(context.Background(), "proj1")
		assert.NoError(t, err)
	})
}
