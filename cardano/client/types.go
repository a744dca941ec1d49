package client

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strconv"

	"github.com/dan13ram/pos-minter/cardano/util"
)

type Utxo struct {
	Address             string        `json:"address"`
	TxHash              string        `json:"tx_hash"`
	OutputIndex         uint64        `json:"output_index"`
	Amount              []util.Amount `json:"amount"`
	Block               string        `json:"block"`
	DataHash            *string       `json:"data_hash"`
	InlineDatum         *string       `json:"inline_datum"`
	ReferenceScriptHash *string       `json:"reference_script_hash"`
}

func (u Utxo) Input() util.TxInput {
	return util.TxInput{TxHash: u.TxHash, Index: u.OutputIndex}
}

func (u Utxo) Value() (util.Value, error) {
	return util.ValueFromAmounts(u.Amount)
}

// IsPureLovelace reports whether the output holds only lovelace and no datum or script.
func (u Utxo) IsPureLovelace() bool {
	if u.InlineDatum != nil || u.DataHash != nil || u.ReferenceScriptHash != nil {
		return false
	}
	for _, amount := range u.Amount {
		if amount.Unit != util.LovelaceUnit {
			return false
		}
	}
	return true
}

func (u Utxo) Lovelace() uint64 {
	var total uint64
	for _, amount := range u.Amount {
		if amount.Unit == util.LovelaceUnit {
			quantity, _ := strconv.ParseUint(amount.Quantity, 10, 64)
			total += quantity
		}
	}
	return total
}

type PolicyAsset struct {
	Asset    string `json:"asset"`
	Quantity string `json:"quantity"`
}

type AssetAddress struct {
	Address  string `json:"address"`
	Quantity string `json:"quantity"`
}

type Asset struct {
	Asset             string `json:"asset"`
	PolicyId          string `json:"policy_id"`
	AssetName         string `json:"asset_name"`
	Quantity          string `json:"quantity"`
	InitialMintTxHash string `json:"initial_mint_tx_hash"`
	MintOrBurnCount   int64  `json:"mint_or_burn_count"`
}

type TransactionInput struct {
	Utxo
	Collateral bool `json:"collateral"`
	Reference  bool `json:"reference"`
}

// TransactionUtxos lists what a transaction consumed and produced.
type TransactionUtxos struct {
	Hash    string             `json:"hash"`
	Inputs  []TransactionInput `json:"inputs"`
	Outputs []Utxo             `json:"outputs"`
}

// Spends reports whether the transaction consumes the input outside of collateral or reference.
func (t TransactionUtxos) Spends(in util.TxInput) bool {
	for _, input := range t.Inputs {
		if !input.Collateral && !input.Reference && input.Input() == in {
			return true
		}
	}
	return false
}

type Transaction struct {
	Hash          string `json:"hash"`
	Block         string `json:"block"`
	BlockHeight   int64  `json:"block_height"`
	BlockTime     int64  `json:"block_time"`
	Slot          int64  `json:"slot"`
	Index         int64  `json:"index"`
	Fees          string `json:"fees"`
	ValidContract bool   `json:"valid_contract"`
}

type Block struct {
	Hash   string `json:"hash"`
	Height int64  `json:"height"`
	Slot   uint64 `json:"slot"`
	Epoch  int64  `json:"epoch"`
	Time   int64  `json:"time"`
}

type Script struct {
	ScriptHash     string `json:"script_hash"`
	Type           string `json:"type"`
	SerialisedSize uint64 `json:"serialised_size"`
}

type ProtocolParameters struct {
	Epoch                      int64              `json:"epoch"`
	MinFeeA                    uint64             `json:"min_fee_a"`
	MinFeeB                    uint64             `json:"min_fee_b"`
	MaxTxSize                  uint64             `json:"max_tx_size"`
	PriceMem                   json.Number        `json:"price_mem"`
	PriceStep                  json.Number        `json:"price_step"`
	CoinsPerUtxoSize           string             `json:"coins_per_utxo_size"`
	CollateralPercent          uint64             `json:"collateral_percent"`
	MinFeeRefScriptCostPerByte json.Number        `json:"min_fee_ref_script_cost_per_byte"`
	CostModelsRaw              map[string][]int64 `json:"cost_models_raw"`

	// older indexers only publish these
	CoinsPerUtxoWord string                      `json:"coins_per_utxo_word"`
	CostModels       map[string]map[string]int64 `json:"cost_models"`
}

// costModel returns the ordered cost model of a plutus version. Named models are ordered by
// parameter name, which is the ledger order for PlutusV1 and PlutusV2.
func (p ProtocolParameters) costModel(version string) []int64 {
	if raw := p.CostModelsRaw[version]; len(raw) > 0 {
		return raw
	}
	named := p.CostModels[version]
	if len(named) == 0 {
		return nil
	}
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	model := make([]int64, len(names))
	for i, name := range names {
		model[i] = named[name]
	}
	return model
}

func (p ProtocolParameters) coinsPerUtxoByte() (uint64, error) {
	if p.CoinsPerUtxoSize != "" {
		coins, err := strconv.ParseUint(p.CoinsPerUtxoSize, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid coins_per_utxo_size %q", p.CoinsPerUtxoSize)
		}
		return coins, nil
	}
	coins, err := strconv.ParseUint(p.CoinsPerUtxoWord, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coins_per_utxo_word %q", p.CoinsPerUtxoWord)
	}
	return coins / 8, nil
}

func parseRat(name string, n json.Number) (*big.Rat, error) {
	if n == "" {
		return nil, nil
	}
	r, ok := new(big.Rat).SetString(n.String())
	if !ok {
		return nil, fmt.Errorf("invalid %s %q", name, n)
	}
	return r, nil
}

// Params converts the indexer response into balancing parameters.
func (p ProtocolParameters) Params() (util.ProtocolParams, error) {
	params := util.ProtocolParams{
		MinFeeA:           p.MinFeeA,
		MinFeeB:           p.MinFeeB,
		MaxTxSize:         p.MaxTxSize,
		CostModelPlutusV2: p.costModel("PlutusV2"),
	}

	var err error
	if params.PriceMem, err = parseRat("price_mem", p.PriceMem); err != nil {
		return params, err
	}
	if params.PriceStep, err = parseRat("price_step", p.PriceStep); err != nil {
		return params, err
	}
	if params.MinFeeRefScriptCostPerByte, err = parseRat("min_fee_ref_script_cost_per_byte", p.MinFeeRefScriptCostPerByte); err != nil {
		return params, err
	}
	if params.CoinsPerUTxOByte, err = p.coinsPerUtxoByte(); err != nil {
		return params, err
	}
	if len(params.CostModelPlutusV2) == 0 {
		return params, fmt.Errorf("protocol parameters carry no PlutusV2 cost model")
	}
	return params, nil
}
