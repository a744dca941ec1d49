package util

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/ugorji/go/codec"

	"github.com/dan13ram/pos-minter/common"
)

const (
	RedeemerTagSpend uint64 = 0
	RedeemerTagMint  uint64 = 1

	// plutus v2 in the language views map
	languagePlutusV2 uint64 = 1

	cborTagEncodedCbor = 24
	cborTagSet         = 258
)

// transaction body keys
const (
	bodyInputs          = 0
	bodyOutputs         = 1
	bodyFee             = 2
	bodyTTL             = 3
	bodyAuxDataHash     = 7
	bodyMint            = 9
	bodyScriptDataHash  = 11
	bodyCollateral      = 13
	bodyRequiredSigners = 14
	bodyReferenceInputs = 18
)

// witness set keys
const (
	witnessVKeys     = 0
	witnessRedeemers = 5
)

type TxInput struct {
	TxHash string `json:"txHash"`
	Index  uint64 `json:"index"`
}

func (in TxInput) String() string {
	return fmt.Sprintf("%s#%d", in.TxHash, in.Index)
}

func (in TxInput) cborValue() (interface{}, error) {
	hash, err := hex.DecodeString(in.TxHash)
	if err != nil || len(hash) != common.TxHashLength {
		return nil, fmt.Errorf("invalid input tx hash %q", in.TxHash)
	}
	return []interface{}{hash, in.Index}, nil
}

// SortInputs orders inputs the way the ledger does, which fixes redeemer indexes.
func SortInputs(inputs []TxInput) []TxInput {
	sorted := append([]TxInput(nil), inputs...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].TxHash != sorted[j].TxHash {
			return sorted[i].TxHash < sorted[j].TxHash
		}
		return sorted[i].Index < sorted[j].Index
	})
	return sorted
}

// InputIndex is the position of in among the ledger-sorted inputs, or -1.
func InputIndex(inputs []TxInput, in TxInput) int {
	for i, candidate := range SortInputs(inputs) {
		if candidate == in {
			return i
		}
	}
	return -1
}

func inputsCbor(inputs []TxInput) ([]interface{}, error) {
	out := make([]interface{}, 0, len(inputs))
	for _, in := range SortInputs(inputs) {
		v, err := in.cborValue()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

type TxOutput struct {
	Address []byte
	Value   Value
	Datum   *PlutusData
}

func (o TxOutput) cborValue() (interface{}, error) {
	value, err := o.Value.cborValue()
	if err != nil {
		return nil, err
	}
	out := cborMap{0, o.Address, 1, value}
	if o.Datum != nil {
		datum, err := o.Datum.MarshalCbor()
		if err != nil {
			return nil, err
		}
		out = append(out, 2, []interface{}{1, cborTag(cborTagEncodedCbor, datum)})
	}
	return out, nil
}

func (o TxOutput) MarshalCbor() ([]byte, error) {
	v, err := o.cborValue()
	if err != nil {
		return nil, err
	}
	return EncodeCbor(v)
}

type ExUnits struct {
	Mem   uint64 `json:"mem"`
	Steps uint64 `json:"steps"`
}

type Redeemer struct {
	Tag     uint64
	Index   uint64
	Data    PlutusData
	ExUnits ExUnits
}

func RedeemersCbor(redeemers []Redeemer) ([]byte, error) {
	out := make([]interface{}, 0, len(redeemers))
	for _, r := range redeemers {
		data, err := r.Data.cborValue()
		if err != nil {
			return nil, err
		}
		out = append(out, []interface{}{r.Tag, r.Index, data, []interface{}{r.ExUnits.Mem, r.ExUnits.Steps}})
	}
	return EncodeCbor(out)
}

func TotalExUnits(redeemers []Redeemer) ExUnits {
	var total ExUnits
	for _, r := range redeemers {
		total.Mem += r.ExUnits.Mem
		total.Steps += r.ExUnits.Steps
	}
	return total
}

// ScriptDataHash hashes the redeemers with the plutus v2 language view.
// Inline datums are not part of the witness set, so no datums are hashed.
func ScriptDataHash(redeemers []Redeemer, costModel []int64) ([]byte, error) {
	if len(costModel) == 0 {
		return nil, fmt.Errorf("missing plutus v2 cost model")
	}
	redeemerBytes, err := RedeemersCbor(redeemers)
	if err != nil {
		return nil, err
	}
	views, err := EncodeCbor(cborMap{languagePlutusV2, costModel})
	if err != nil {
		return nil, err
	}
	return common.Blake2b256(append(redeemerBytes, views...)), nil
}

type TxBody struct {
	Inputs          []TxInput
	Outputs         []TxOutput
	Fee             uint64
	TTL             uint64
	AuxDataHash     []byte
	Mint            MultiAsset
	ScriptDataHash  []byte
	Collateral      []TxInput
	RequiredSigners [][]byte
	ReferenceInputs []TxInput
}

func (b TxBody) MarshalCbor() ([]byte, error) {
	inputs, err := inputsCbor(b.Inputs)
	if err != nil {
		return nil, err
	}
	outputs := make([]interface{}, 0, len(b.Outputs))
	for _, o := range b.Outputs {
		v, err := o.cborValue()
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, v)
	}

	body := cborMap{
		bodyInputs, inputs,
		bodyOutputs, outputs,
		bodyFee, b.Fee,
	}
	if b.TTL > 0 {
		body = append(body, bodyTTL, b.TTL)
	}
	if len(b.AuxDataHash) > 0 {
		body = append(body, bodyAuxDataHash, b.AuxDataHash)
	}
	if len(b.Mint) > 0 {
		mint, err := b.Mint.mintCborValue()
		if err != nil {
			return nil, err
		}
		body = append(body, bodyMint, mint)
	}
	if len(b.ScriptDataHash) > 0 {
		body = append(body, bodyScriptDataHash, b.ScriptDataHash)
	}
	if len(b.Collateral) > 0 {
		collateral, err := inputsCbor(b.Collateral)
		if err != nil {
			return nil, err
		}
		body = append(body, bodyCollateral, collateral)
	}
	if len(b.RequiredSigners) > 0 {
		signers := make([]interface{}, 0, len(b.RequiredSigners))
		for _, s := range b.RequiredSigners {
			signers = append(signers, s)
		}
		body = append(body, bodyRequiredSigners, signers)
	}
	if len(b.ReferenceInputs) > 0 {
		refs, err := inputsCbor(b.ReferenceInputs)
		if err != nil {
			return nil, err
		}
		body = append(body, bodyReferenceInputs, refs)
	}
	return EncodeCbor(body)
}

type VKeyWitness struct {
	VKey      []byte
	Signature []byte
}

// Transaction is an unsigned or partially signed transaction ready for encoding.
type Transaction struct {
	Body          TxBody
	VKeyWitnesses []VKeyWitness
	Redeemers     []Redeemer
	AuxiliaryData []byte
}

func (tx Transaction) MarshalCbor() ([]byte, error) {
	body, err := tx.Body.MarshalCbor()
	if err != nil {
		return nil, err
	}

	witnessSet := cborMap{}
	if len(tx.VKeyWitnesses) > 0 {
		witnessSet = append(witnessSet, witnessVKeys, vkeyWitnessesCbor(tx.VKeyWitnesses))
	}
	if len(tx.Redeemers) > 0 {
		redeemers, err := RedeemersCbor(tx.Redeemers)
		if err != nil {
			return nil, err
		}
		witnessSet = append(witnessSet, witnessRedeemers, codec.Raw(redeemers))
	}

	var aux interface{}
	if len(tx.AuxiliaryData) > 0 {
		aux = codec.Raw(tx.AuxiliaryData)
	}

	return EncodeCbor([]interface{}{codec.Raw(body), witnessSet, true, aux})
}

func vkeyWitnessesCbor(witnesses []VKeyWitness) []interface{} {
	sorted := append([]VKeyWitness(nil), witnesses...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].VKey, sorted[j].VKey) < 0
	})
	out := make([]interface{}, 0, len(sorted))
	for _, w := range sorted {
		out = append(out, []interface{}{w.VKey, w.Signature})
	}
	return out
}

// Hash is the transaction id: blake2b-256 of the encoded body.
func (b TxBody) Hash() ([]byte, error) {
	body, err := b.MarshalCbor()
	if err != nil {
		return nil, err
	}
	return common.Blake2b256(body), nil
}
