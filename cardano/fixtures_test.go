package cardano

import (
	"encoding/hex"
	"io"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/dan13ram/pos-minter/cardano/client"
	"github.com/dan13ram/pos-minter/cardano/util"
	"github.com/dan13ram/pos-minter/common"
	"github.com/dan13ram/pos-minter/models"
)

func init() {
	log.SetOutput(io.Discard)
}

const (
	testSeedServer    = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	testSeedRecipient = "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb"

	testPolicyId       = "11111111111111111111111111111111111111111111111111111111"
	testOraclePolicyId = "22222222222222222222222222222222222222222222222222222222"
	testOracleScript   = "33333333333333333333333333333333333333333333333333333333"
)

var (
	testOracleUnit = testOraclePolicyId + hex.EncodeToString([]byte("oracle"))

	testCollateralHash = strings.Repeat("c", 64)
	testFundingHash    = strings.Repeat("f", 64)
	testOracleTxHash   = strings.Repeat("0a", 32)
)

func testSigner(t *testing.T, seed string) common.Signer {
	signer, err := common.NewKeySigner(seed)
	assert.NoError(t, err)
	return signer
}

func testWallet(t *testing.T, indexer client.IndexerClient) *Wallet {
	signer := testSigner(t, testSeedServer)
	keyHash := common.KeyHash(signer)
	address, err := common.EnterpriseAddress(keyHash, common.NetworkPreprod)
	assert.NoError(t, err)
	addressBytes, err := common.AddressBytes(address)
	assert.NoError(t, err)

	return &Wallet{
		signer:             signer,
		keyHash:            keyHash,
		address:            address,
		addressBytes:       addressBytes,
		client:             indexer,
		collateralLovelace: 5_000_000,
		collateralAttempts: 3,
		ttlSlots:           900,
	}
}

func testRecipientAddress(t *testing.T, network string) string {
	address, err := common.EnterpriseAddress(common.KeyHash(testSigner(t, testSeedRecipient)), network)
	assert.NoError(t, err)
	return address
}

func testScriptAddress(t *testing.T) string {
	scriptHash, err := hex.DecodeString(testOracleScript)
	assert.NoError(t, err)
	address, err := bech32.EncodeFromBase256("addr_test", append([]byte{0x70}, scriptHash...))
	assert.NoError(t, err)
	return address
}

func lovelaceUtxo(address string, txHash string, index uint64, lovelace string) client.Utxo {
	return client.Utxo{
		Address:     address,
		TxHash:      txHash,
		OutputIndex: index,
		Amount:      []util.Amount{{Unit: util.LovelaceUnit, Quantity: lovelace}},
	}
}

func testProtocolParameters() *client.ProtocolParameters {
	return &client.ProtocolParameters{
		MinFeeA:                    44,
		MinFeeB:                    155381,
		MaxTxSize:                  16384,
		PriceMem:                   "0.0577",
		PriceStep:                  "0.0000721",
		CoinsPerUtxoSize:           "4310",
		CollateralPercent:          150,
		MinFeeRefScriptCostPerByte: "15",
		CostModelsRaw:              map[string][]int64{"PlutusV2": {1, 2, 3}},
	}
}

func testOracleState() util.OracleState {
	return util.OracleState{
		Count:          5,
		UnitPrice:      10_000_000,
		FeeRecipient:   util.FeeRecipient{PubKeyHash: make([]byte, 28), StakeHash: make([]byte, 28)},
		MintingAllowed: true,
		TradingAllowed: false,
		ExpectedApr:    util.Rational{Numerator: 8, Denominator: 100},
		MaturationTime: 1735689600000,
		MaxMints:       100,
	}
}

func testProject() models.Project {
	return models.Project{
		ProjectId:              "proj1",
		CollectionName:         "Solar Farm",
		PolicyId:               testPolicyId,
		ParamUtxoRef:           strings.Repeat("ab", 32) + "#0",
		OraclePolicyId:         testOraclePolicyId,
		OracleScriptRef:        strings.Repeat("cd", 32) + "#0",
		MintingPolicyScriptRef: strings.Repeat("cd", 32) + "#1",
	}
}

func testOracleUtxo(t *testing.T, state util.OracleState) client.Utxo {
	datum, err := state.MarshalCbor()
	assert.NoError(t, err)
	datumHex := hex.EncodeToString(datum)
	return client.Utxo{
		Address:     testScriptAddress(t),
		TxHash:      testOracleTxHash,
		OutputIndex: 0,
		Amount: []util.Amount{
			{Unit: util.LovelaceUnit, Quantity: "2000000"},
			{Unit: testOracleUnit, Quantity: "1"},
		},
		InlineDatum: &datumHex,
	}
}

func testSnapshot(t *testing.T, state util.OracleState) *OracleSnapshot {
	project := testProject()
	return &OracleSnapshot{
		Project:        project,
		State:          state,
		CollectionName: project.CollectionName,
		ParamUtxoRef:   project.ParamUtxoRef,
		OracleUnit:     testOracleUnit,
		OracleUtxo:     testOracleUtxo(t, state),
	}
}

func testUnsignedTx(t *testing.T) []byte {
	address, err := hex.DecodeString("602b218f09113f8c3900e461c3ea9985152b27c410dbc2e1d111eb3262")
	assert.NoError(t, err)
	tx, err := util.Transaction{
		Body: util.TxBody{
			Inputs:  []util.TxInput{{TxHash: testFundingHash, Index: 0}},
			Outputs: []util.TxOutput{{Address: address, Value: util.Value{Lovelace: 2_000_000}}},
			Fee:     200_000,
			TTL:     1000,
		},
	}.MarshalCbor()
	assert.NoError(t, err)
	return tx
}
