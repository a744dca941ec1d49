package util

import (
	"crypto/ed25519"
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dan13ram/pos-minter/common"
)

const (
	testAddressHex  = "602b218f09113f8c3900e461c3ea9985152b27c410dbc2e1d111eb3262"
	testBodyHex     = "a400818258200000000000000000000000000000000000000000000000000000000000000000000181a200581d602b218f09113f8c3900e461c3ea9985152b27c410dbc2e1d111eb3262011a001e8480021a00030d40031903e8"
	testBodyHashHex = "67c2c4a9cc3240d0287605e2caa8ae1a8f2ac2880635302e8506844e5289148c"

	testSeedA = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	testSeedB = "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb"
)

func testTransaction() Transaction {
	return Transaction{
		Body: TxBody{
			Inputs:  []TxInput{{TxHash: strings.Repeat("00", 32), Index: 0}},
			Outputs: []TxOutput{{Address: mustHex(testAddressHex), Value: Value{Lovelace: 2_000_000}}},
			Fee:     200_000,
			TTL:     1000,
		},
	}
}

func testSigner(t *testing.T, seed string) common.Signer {
	signer, err := common.NewKeySigner(seed)
	assert.NoError(t, err)
	return signer
}

func TestTxBodyEncoding(t *testing.T) {
	body, err := testTransaction().Body.MarshalCbor()
	assert.NoError(t, err)
	assert.Equal(t, testBodyHex, hex.EncodeToString(body))

	hash, err := testTransaction().Body.Hash()
	assert.NoError(t, err)
	assert.Equal(t, testBodyHashHex, hex.EncodeToString(hash))
}

func TestTransactionEncoding(t *testing.T) {
	tx, err := testTransaction().MarshalCbor()
	assert.NoError(t, err)
	assert.Equal(t, "84"+testBodyHex+"a0f5f6", hex.EncodeToString(tx))

	txHash, err := TxHash(tx)
	assert.NoError(t, err)
	assert.Equal(t, testBodyHashHex, txHash)
}

func TestSortInputs(t *testing.T) {
	a := TxInput{TxHash: strings.Repeat("bb", 32), Index: 0}
	b := TxInput{TxHash: strings.Repeat("aa", 32), Index: 1}
	c := TxInput{TxHash: strings.Repeat("aa", 32), Index: 0}

	sorted := SortInputs([]TxInput{a, b, c})
	assert.Equal(t, []TxInput{c, b, a}, sorted)
	assert.Equal(t, 2, InputIndex([]TxInput{a, b, c}, a))
	assert.Equal(t, -1, InputIndex([]TxInput{b, c}, a))
}

func TestScriptDataHash(t *testing.T) {
	redeemers := []Redeemer{{Tag: RedeemerTagSpend, Index: 0, Data: NewConstr(0), ExUnits: ExUnits{Mem: 1000, Steps: 2000}}}

	encoded, err := RedeemersCbor(redeemers)
	assert.NoError(t, err)
	assert.Equal(t, "81840000d87980821903e81907d0", hex.EncodeToString(encoded))

	hash, err := ScriptDataHash(redeemers, []int64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, "f33ff98963d804477fa52cbc4c88cca8498ad23f5bd37f1d40a0640c013e1423", hex.EncodeToString(hash))

	_, err = ScriptDataHash(redeemers, nil)
	assert.Error(t, err)
}

func TestSignTransaction(t *testing.T) {
	unsigned, err := testTransaction().MarshalCbor()
	assert.NoError(t, err)

	signerA := testSigner(t, testSeedA)
	signed, err := SignTransaction(unsigned, signerA)
	assert.NoError(t, err)

	txHash, err := TxHash(signed)
	assert.NoError(t, err)
	assert.Equal(t, testBodyHashHex, txHash)

	witnesses, err := VKeyWitnesses(signed)
	assert.NoError(t, err)
	assert.Len(t, witnesses, 1)
	assert.Equal(t, []byte(signerA.PublicKey()), witnesses[0].VKey)
	assert.NoError(t, VerifyVKeyWitnesses(signed))

	t.Run("Same Key Twice", func(t *testing.T) {
		again, err := SignTransaction(signed, signerA)
		assert.NoError(t, err)
		assert.Equal(t, signed, again)
	})

	t.Run("Second Signer", func(t *testing.T) {
		both, err := SignTransaction(signed, testSigner(t, testSeedB))
		assert.NoError(t, err)
		witnesses, err := VKeyWitnesses(both)
		assert.NoError(t, err)
		assert.Len(t, witnesses, 2)
		assert.NoError(t, VerifyVKeyWitnesses(both))
	})

	t.Run("Bad Signature", func(t *testing.T) {
		bad, err := AddVKeyWitnesses(unsigned, VKeyWitness{VKey: signerA.PublicKey(), Signature: make([]byte, 64)})
		assert.NoError(t, err)
		assert.Error(t, VerifyVKeyWitnesses(bad))
	})
}

func TestAddVKeyWitnessesKeepsOtherEntries(t *testing.T) {
	tx := testTransaction()
	tx.Redeemers = []Redeemer{{Tag: RedeemerTagMint, Index: 0, Data: NewConstr(0), ExUnits: ExUnits{Mem: 1, Steps: 2}}}
	tx.AuxiliaryData = mustHex("a0")
	unsigned, err := tx.MarshalCbor()
	assert.NoError(t, err)

	redeemers, err := RedeemersCbor(tx.Redeemers)
	assert.NoError(t, err)

	signed, err := SignTransaction(unsigned, testSigner(t, testSeedA))
	assert.NoError(t, err)
	assert.Contains(t, hex.EncodeToString(signed), "05"+hex.EncodeToString(redeemers))
	assert.True(t, strings.HasSuffix(hex.EncodeToString(signed), "f5a0"))
}

func TestAddVKeyWitnessesTaggedSet(t *testing.T) {
	signerA := testSigner(t, testSeedA)
	hash := mustHex(testBodyHashHex)
	sig, err := signerA.Sign(hash)
	assert.NoError(t, err)

	witnessSet, err := EncodeCbor(cborMap{0, cborTag(cborTagSet, []interface{}{[]interface{}{[]byte(signerA.PublicKey()), sig}})})
	assert.NoError(t, err)
	tx := append(append(append(mustHex("84"), mustHex(testBodyHex)...), witnessSet...), mustHex("f5f6")...)

	signed, err := SignTransaction(tx, testSigner(t, testSeedB))
	assert.NoError(t, err)
	assert.Contains(t, hex.EncodeToString(signed), "a100d9010282")
	assert.NoError(t, VerifyVKeyWitnesses(signed))
}

func TestMergeWitnessSet(t *testing.T) {
	unsigned, err := testTransaction().MarshalCbor()
	assert.NoError(t, err)

	serverSigned, err := SignTransaction(unsigned, testSigner(t, testSeedA))
	assert.NoError(t, err)

	walletKey := ed25519.NewKeyFromSeed(mustHex(testSeedB))
	walletSig := ed25519.Sign(walletKey, mustHex(testBodyHashHex))
	witnessSet, err := EncodeCbor(cborMap{0, []interface{}{[]interface{}{[]byte(walletKey.Public().(ed25519.PublicKey)), walletSig}}})
	assert.NoError(t, err)
	assert.True(t, IsWitnessSet(witnessSet))
	assert.False(t, IsWitnessSet(serverSigned))

	combined, err := MergeWitnessSet(serverSigned, witnessSet)
	assert.NoError(t, err)

	witnesses, err := VKeyWitnesses(combined)
	assert.NoError(t, err)
	assert.Len(t, witnesses, 2)
	assert.NoError(t, VerifyVKeyWitnesses(combined))

	t.Run("Empty Witness Set", func(t *testing.T) {
		_, err := MergeWitnessSet(serverSigned, mustHex("a0"))
		assert.Error(t, err)
	})

	t.Run("Not A Transaction", func(t *testing.T) {
		_, err := MergeWitnessSet(mustHex("01"), witnessSet)
		assert.Error(t, err)
	})
}

func testProtocolParams() ProtocolParams {
	return ProtocolParams{
		MinFeeA:                    44,
		MinFeeB:                    155381,
		MaxTxSize:                  16384,
		PriceMem:                   big.NewRat(577, 10000),
		PriceStep:                  big.NewRat(721, 10000000),
		CoinsPerUTxOByte:           4310,
		MinFeeRefScriptCostPerByte: big.NewRat(15, 1),
		CostModelPlutusV2:          []int64{1, 2, 3},
	}
}

func TestProtocolParamsFees(t *testing.T) {
	params := testProtocolParams()

	assert.Equal(t, uint64(44*300+155381), params.LinearFee(300))
	assert.Equal(t, uint64(93750), params.ScriptFee(ExUnits{Mem: 1_000_000, Steps: 500_000_000}))
	assert.Equal(t, uint64(57701), params.ScriptFee(ExUnits{Mem: 1_000_001}))
	assert.Equal(t, uint64(463200), params.RefScriptFee(30000))
	assert.Equal(t, uint64(0), params.RefScriptFee(0))

	minUTxO, err := params.MinUTxO(TxOutput{Address: mustHex(testAddressHex), Value: Value{Lovelace: 2_000_000}})
	assert.NoError(t, err)
	assert.Equal(t, uint64(4310*(160+39)), minUTxO)
}

func TestBalanceFee(t *testing.T) {
	params := testProtocolParams()
	builds := 0

	tx, estimate, err := BalanceFee(params, 0, 1000, 2, func(fee uint64) (Transaction, error) {
		builds++
		tx := testTransaction()
		tx.Body.Fee = fee
		tx.Body.Outputs[0].Value.Lovelace = 10_000_000 - fee
		return tx, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, estimate.Fee, tx.Body.Fee)
	assert.GreaterOrEqual(t, tx.Body.Fee, params.LinearFee(estimate.Size)+1000)
	assert.GreaterOrEqual(t, builds, 2)

	t.Run("Too Large", func(t *testing.T) {
		small := params
		small.MaxTxSize = 10
		_, _, err := BalanceFee(small, 0, 0, 1, func(fee uint64) (Transaction, error) {
			return testTransaction(), nil
		})
		assert.Error(t, err)
	})
}
