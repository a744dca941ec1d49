package util

import (
	"encoding/hex"
	"fmt"
	"time"
)

// Oracle validator redeemers. Only MintToken is built by this service.
const (
	OracleRedeemerMintToken     uint64 = 0
	OracleRedeemerUpdatePrice   uint64 = 1
	OracleRedeemerToggleMinting uint64 = 2
	OracleRedeemerToggleTrading uint64 = 3
	OracleRedeemerUpdateSupply  uint64 = 4
)

// Minting policy redeemers.
const (
	PolicyRedeemerMint uint64 = 0
	PolicyRedeemerBurn uint64 = 1
)

const oracleDatumFields = 8

type FeeRecipient struct {
	PubKeyHash []byte `json:"pubKeyHash"`
	StakeHash  []byte `json:"stakeHash"`
}

type Rational struct {
	Numerator   int64 `json:"numerator"`
	Denominator int64 `json:"denominator"`
}

// OracleState is the inline datum of a project's settings UTxO.
type OracleState struct {
	Count          int64        `json:"count"`
	UnitPrice      uint64       `json:"unitPrice"`
	FeeRecipient   FeeRecipient `json:"feeRecipient"`
	MintingAllowed bool         `json:"mintingAllowed"`
	TradingAllowed bool         `json:"tradingAllowed"`
	ExpectedApr    Rational     `json:"expectedApr"`
	MaturationTime int64        `json:"maturationTime"`
	MaxMints       int64        `json:"maxMints"`
}

// SupplyExhausted reports whether no further index can be allocated. MaxMints 0 is unlimited.
func (s OracleState) SupplyExhausted() bool {
	return s.MaxMints > 0 && s.Count >= s.MaxMints
}

func (s OracleState) Maturation() time.Time {
	return time.UnixMilli(s.MaturationTime).UTC()
}

// Next returns the state recreated by a successful mint.
func (s OracleState) Next() OracleState {
	next := s
	next.Count = s.Count + 1
	return next
}

func (s OracleState) ToPlutusData() PlutusData {
	return NewConstr(0,
		NewInt(s.Count),
		NewUint(s.UnitPrice),
		NewConstr(0, NewBytes(s.FeeRecipient.PubKeyHash), NewBytes(s.FeeRecipient.StakeHash)),
		NewBool(s.MintingAllowed),
		NewBool(s.TradingAllowed),
		NewConstr(0, NewInt(s.ExpectedApr.Numerator), NewInt(s.ExpectedApr.Denominator)),
		NewInt(s.MaturationTime),
		NewInt(s.MaxMints),
	)
}

func (s OracleState) MarshalCbor() ([]byte, error) {
	return s.ToPlutusData().MarshalCbor()
}

func OracleStateFromPlutusData(data PlutusData) (*OracleState, error) {
	fields, err := data.ConstrFields(0, oracleDatumFields)
	if err != nil {
		return nil, fmt.Errorf("oracle datum: %w", err)
	}

	var state OracleState

	if state.Count, err = fields[0].AsInt64(); err != nil {
		return nil, fmt.Errorf("oracle datum count: %w", err)
	}
	if state.UnitPrice, err = fields[1].AsUint64(); err != nil {
		return nil, fmt.Errorf("oracle datum unit price: %w", err)
	}

	recipient, err := fields[2].ConstrFields(0, 2)
	if err != nil {
		return nil, fmt.Errorf("oracle datum fee recipient: %w", err)
	}
	if state.FeeRecipient.PubKeyHash, err = recipient[0].AsBytes(); err != nil {
		return nil, fmt.Errorf("oracle datum fee recipient: %w", err)
	}
	if state.FeeRecipient.StakeHash, err = recipient[1].AsBytes(); err != nil {
		return nil, fmt.Errorf("oracle datum fee recipient: %w", err)
	}

	if state.MintingAllowed, err = fields[3].AsBool(); err != nil {
		return nil, fmt.Errorf("oracle datum minting allowed: %w", err)
	}
	if state.TradingAllowed, err = fields[4].AsBool(); err != nil {
		return nil, fmt.Errorf("oracle datum trading allowed: %w", err)
	}

	apr, err := fields[5].ConstrFields(0, 2)
	if err != nil {
		return nil, fmt.Errorf("oracle datum apr: %w", err)
	}
	if state.ExpectedApr.Numerator, err = apr[0].AsInt64(); err != nil {
		return nil, fmt.Errorf("oracle datum apr: %w", err)
	}
	if state.ExpectedApr.Denominator, err = apr[1].AsInt64(); err != nil {
		return nil, fmt.Errorf("oracle datum apr: %w", err)
	}

	if state.MaturationTime, err = fields[6].AsInt64(); err != nil {
		return nil, fmt.Errorf("oracle datum maturation time: %w", err)
	}
	if state.MaxMints, err = fields[7].AsInt64(); err != nil {
		return nil, fmt.Errorf("oracle datum max mints: %w", err)
	}

	if state.Count < 0 || state.MaxMints < 0 {
		return nil, fmt.Errorf("oracle datum has negative count or supply")
	}

	return &state, nil
}

// ParseOracleState decodes a hex encoded inline datum.
func ParseOracleState(datumHex string) (*OracleState, error) {
	raw, err := hex.DecodeString(datumHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode datum hex: %w", err)
	}
	data, err := ParsePlutusData(raw)
	if err != nil {
		return nil, err
	}
	return OracleStateFromPlutusData(data)
}

// OracleRedeemer builds the spend redeemer Constr n [] for the settings validator.
func OracleRedeemer(action uint64) PlutusData {
	return NewConstr(action)
}

func PolicyRedeemer(action uint64) PlutusData {
	return NewConstr(action)
}
