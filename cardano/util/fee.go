package util

import (
	"fmt"
	"math/big"
)

const (
	// fixed per-entry overhead the ledger adds to an output's size for min utxo
	utxoEntryOverhead = 160

	refScriptTierSize       = 25600
	refScriptTierMultiplier = "6/5"

	maxFeeIterations = 8
)

// ProtocolParams holds the subset of protocol parameters needed to balance a transaction.
type ProtocolParams struct {
	MinFeeA                    uint64
	MinFeeB                    uint64
	MaxTxSize                  uint64
	PriceMem                   *big.Rat
	PriceStep                  *big.Rat
	CoinsPerUTxOByte           uint64
	MinFeeRefScriptCostPerByte *big.Rat
	CostModelPlutusV2          []int64
}

func ceilRat(r *big.Rat) uint64 {
	q, m := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if m.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return q.Uint64()
}

func (p ProtocolParams) LinearFee(size int) uint64 {
	return p.MinFeeA*uint64(size) + p.MinFeeB
}

// ScriptFee is the execution price of the given units, rounded up.
func (p ProtocolParams) ScriptFee(units ExUnits) uint64 {
	total := new(big.Rat)
	if p.PriceMem != nil {
		total.Add(total, new(big.Rat).Mul(p.PriceMem, new(big.Rat).SetInt64(int64(units.Mem))))
	}
	if p.PriceStep != nil {
		total.Add(total, new(big.Rat).Mul(p.PriceStep, new(big.Rat).SetInt64(int64(units.Steps))))
	}
	return ceilRat(total)
}

// RefScriptFee prices referenced script bytes in 25 KiB tiers, each tier 1.2x dearer.
func (p ProtocolParams) RefScriptFee(size uint64) uint64 {
	if p.MinFeeRefScriptCostPerByte == nil || size == 0 {
		return 0
	}
	multiplier, _ := new(big.Rat).SetString(refScriptTierMultiplier)
	price := new(big.Rat).Set(p.MinFeeRefScriptCostPerByte)
	total := new(big.Rat)
	for size > 0 {
		chunk := size
		if chunk > refScriptTierSize {
			chunk = refScriptTierSize
		}
		total.Add(total, new(big.Rat).Mul(price, new(big.Rat).SetInt64(int64(chunk))))
		price.Mul(price, multiplier)
		size -= chunk
	}
	return ceilRat(total)
}

// MinUTxO is the minimum lovelace the output must carry.
func (p ProtocolParams) MinUTxO(output TxOutput) (uint64, error) {
	encoded, err := output.MarshalCbor()
	if err != nil {
		return 0, err
	}
	return p.CoinsPerUTxOByte * uint64(utxoEntryOverhead+len(encoded)), nil
}

// FeeEstimate describes what one balancing pass charged.
type FeeEstimate struct {
	Fee       uint64
	Size      int
	ScriptFee uint64
}

// BalanceFee builds the transaction with increasing fees until the fee it declares covers
// the size of the fully witnessed transaction, with dummy witnesses for signerCount keys.
func BalanceFee(params ProtocolParams, refScriptSize uint64, padding uint64, signerCount int, build func(fee uint64) (Transaction, error)) (Transaction, FeeEstimate, error) {
	var fee uint64
	for i := 0; i < maxFeeIterations; i++ {
		tx, err := build(fee)
		if err != nil {
			return Transaction{}, FeeEstimate{}, err
		}

		size, err := witnessedSize(tx, signerCount)
		if err != nil {
			return Transaction{}, FeeEstimate{}, err
		}
		if params.MaxTxSize > 0 && uint64(size) > params.MaxTxSize {
			return Transaction{}, FeeEstimate{}, fmt.Errorf("transaction size %d exceeds max %d", size, params.MaxTxSize)
		}

		scriptFee := params.ScriptFee(TotalExUnits(tx.Redeemers))
		required := params.LinearFee(size) + scriptFee + params.RefScriptFee(refScriptSize) + padding
		if fee >= required {
			return tx, FeeEstimate{Fee: fee, Size: size, ScriptFee: scriptFee}, nil
		}
		fee = required
	}
	return Transaction{}, FeeEstimate{}, fmt.Errorf("fee did not converge after %d iterations", maxFeeIterations)
}

func witnessedSize(tx Transaction, signerCount int) (int, error) {
	dummy := tx
	dummy.VKeyWitnesses = append([]VKeyWitness(nil), tx.VKeyWitnesses...)
	for i := 0; i < signerCount; i++ {
		vkey := make([]byte, 32)
		vkey[0] = byte(i + 1)
		dummy.VKeyWitnesses = append(dummy.VKeyWitnesses, VKeyWitness{VKey: vkey, Signature: make([]byte, 64)})
	}
	encoded, err := dummy.MarshalCbor()
	if err != nil {
		return 0, err
	}
	return len(encoded), nil
}
