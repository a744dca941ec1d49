package cardano

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/pos-minter/app"
	"github.com/dan13ram/pos-minter/cardano/client"
	"github.com/dan13ram/pos-minter/cardano/util"
	"github.com/dan13ram/pos-minter/common"
)

const minRecipientLovelace = 2_000_000

type MintRequest struct {
	ProjectId        string
	Metadata         util.NFTMetadata
	RecipientAddress string
	// UnitPrice is what the caller expects to pay. The oracle price always wins.
	UnitPrice *uint64
}

// PreparedMint is a mint transaction co-signed by the server and waiting for the recipient.
type PreparedMint struct {
	ProjectId         string           `json:"projectId"`
	PolicyId          string           `json:"policyId"`
	TokenId           int64            `json:"tokenId"`
	AssetName         string           `json:"assetName"`
	Metadata          util.NFTMetadata `json:"metadata"`
	LovelacePrice     uint64           `json:"lovelacePrice"`
	MaxMints          int64            `json:"maxMints"`
	MintedCount       int64            `json:"mintedCount"`
	MintedCountBefore int64            `json:"mintedCountBefore"`
	CollectionName    string           `json:"collectionName"`
	UnsignedTx        string           `json:"unsignedTx"`
	ServerSignedTx    string           `json:"serverSignedTx"`
	TxHash            string           `json:"txHash"`
	Fee               uint64           `json:"fee"`
}

type MintPreparer interface {
	PrepareMint(ctx context.Context, req MintRequest) (*PreparedMint, error)
}

type mintPreparer struct {
	oracle OracleReader
	wallet *Wallet
	client client.IndexerClient

	network      string
	spendExUnits util.ExUnits
	mintExUnits  util.ExUnits
	ttlSlots     uint64
	feePadding   uint64
}

var _ MintPreparer = &mintPreparer{}

func NewMintPreparer(oracle OracleReader, wallet *Wallet, indexer client.IndexerClient) MintPreparer {
	config := app.Config.Cardano
	return &mintPreparer{
		oracle:       oracle,
		wallet:       wallet,
		client:       indexer,
		network:      config.Network,
		spendExUnits: util.ExUnits{Mem: config.SpendExUnits.Mem, Steps: config.SpendExUnits.Steps},
		mintExUnits:  util.ExUnits{Mem: config.MintExUnits.Mem, Steps: config.MintExUnits.Steps},
		ttlSlots:     config.TTLSlots,
		feePadding:   config.FeePaddingLovelace,
	}
}

func prepareResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrValidation):
		return "invalid"
	case errors.Is(err, ErrMintingDisabled):
		return "minting_disabled"
	case errors.Is(err, ErrSupplyExhausted):
		return "supply_exhausted"
	case errors.Is(err, ErrCollateralUnavailable):
		return "no_collateral"
	default:
		return "error"
	}
}

func (x *mintPreparer) PrepareMint(ctx context.Context, req MintRequest) (prepared *PreparedMint, err error) {
	start := time.Now()
	defer func() {
		app.PrepareDuration.Observe(time.Since(start).Seconds())
		app.MintsPrepared.WithLabelValues(prepareResult(err)).Inc()
	}()

	logger := log.WithField("project_id", req.ProjectId)

	if strings.TrimSpace(req.Metadata.Image) == "" {
		return nil, validationError("metadata.image is required")
	}

	recipient := x.wallet.Address()
	var recipientKeyHash []byte
	if req.RecipientAddress != "" {
		if !common.AddressNetworkMatches(req.RecipientAddress, x.network) {
			return nil, validationError("recipient address is not a valid %s address", x.network)
		}
		recipientKeyHash, err = common.PaymentKeyHash(req.RecipientAddress)
		if err != nil {
			return nil, validationError("recipient address: %v", err)
		}
		recipient = req.RecipientAddress
	}

	collateral, err := x.wallet.EnsureCollateral(ctx)
	if err != nil {
		return nil, err
	}

	snapshot, err := x.oracle.GetOracleSnapshot(ctx, req.ProjectId)
	if err != nil {
		return nil, err
	}
	state := snapshot.State
	if !state.MintingAllowed {
		return nil, fmt.Errorf("project %s: %w", req.ProjectId, ErrMintingDisabled)
	}
	if state.SupplyExhausted() {
		return nil, fmt.Errorf("project %s minted %d of %d: %w", req.ProjectId, state.Count, state.MaxMints, ErrSupplyExhausted)
	}
	if req.UnitPrice != nil && *req.UnitPrice != state.UnitPrice {
		logger.WithField("requested", *req.UnitPrice).
			WithField("oracle", state.UnitPrice).
			Warn("[PREPARER] Requested unit price differs from oracle price")
	}

	assetName := util.MintAssetName(snapshot.CollectionName, state.Count)
	assetNameHex, err := util.AssetNameHex(assetName)
	if err != nil {
		return nil, validationError("%v", err)
	}
	metadata := util.CompleteMetadata(req.Metadata, snapshot.CollectionName, assetName, state.Count)

	tx, estimate, err := x.buildMintTx(ctx, mintTx{
		snapshot:         snapshot,
		collateral:       collateral.Input(),
		recipient:        recipient,
		recipientKeyHash: recipientKeyHash,
		assetName:        assetName,
		assetNameHex:     assetNameHex,
		metadata:         metadata,
	})
	if err != nil {
		logger.WithError(err).Error("[PREPARER] Error building mint transaction")
		return nil, err
	}

	unsigned, err := tx.MarshalCbor()
	if err != nil {
		return nil, fmt.Errorf("encode mint transaction: %w", err)
	}
	signed, err := x.wallet.Sign(unsigned)
	if err != nil {
		return nil, fmt.Errorf("sign mint transaction: %w", err)
	}
	txHash, err := tx.Body.Hash()
	if err != nil {
		return nil, fmt.Errorf("hash mint transaction: %w", err)
	}

	logger.WithField("token_id", state.Count).
		WithField("tx_hash", hex.EncodeToString(txHash)).
		WithField("fee", estimate.Fee).
		Info("[PREPARER] Prepared mint transaction")

	return &PreparedMint{
		ProjectId:         req.ProjectId,
		PolicyId:          strings.ToLower(snapshot.Project.PolicyId),
		TokenId:           state.Count,
		AssetName:         assetName,
		Metadata:          metadata,
		LovelacePrice:     state.UnitPrice,
		MaxMints:          state.MaxMints,
		MintedCount:       state.Count + 1,
		MintedCountBefore: state.Count,
		CollectionName:    snapshot.CollectionName,
		UnsignedTx:        hex.EncodeToString(unsigned),
		ServerSignedTx:    hex.EncodeToString(signed),
		TxHash:            hex.EncodeToString(txHash),
		Fee:               estimate.Fee,
	}, nil
}

type mintTx struct {
	snapshot         *OracleSnapshot
	collateral       util.TxInput
	recipient        string
	recipientKeyHash []byte
	assetName        string
	assetNameHex     string
	metadata         util.NFTMetadata
}

func (x *mintPreparer) buildMintTx(ctx context.Context, m mintTx) (util.Transaction, util.FeeEstimate, error) {
	var none util.FeeEstimate
	project := m.snapshot.Project
	policyId := strings.ToLower(project.PolicyId)

	params, err := fetchProtocolParams(ctx, x.client)
	if err != nil {
		return util.Transaction{}, none, err
	}
	tip, err := x.client.GetLatestBlock(ctx)
	if err != nil {
		return util.Transaction{}, none, upstream("get latest block", err)
	}

	oracleScriptRef, err := parseUtxoRef(project.OracleScriptRef)
	if err != nil {
		return util.Transaction{}, none, fmt.Errorf("project %s oracle script: %w", project.ProjectId, err)
	}
	policyScriptRef, err := parseUtxoRef(project.MintingPolicyScriptRef)
	if err != nil {
		return util.Transaction{}, none, fmt.Errorf("project %s minting policy script: %w", project.ProjectId, err)
	}

	oracleUtxo := m.snapshot.OracleUtxo
	oracleAddress, err := common.AddressBytes(oracleUtxo.Address)
	if err != nil {
		return util.Transaction{}, none, upstream("decode oracle address", err)
	}
	oracleValue, err := oracleUtxo.Value()
	if err != nil {
		return util.Transaction{}, none, upstream("decode oracle value", err)
	}
	refScriptSize, err := x.referenceScriptSize(ctx, oracleAddress, policyId)
	if err != nil {
		return util.Transaction{}, none, err
	}

	recipientAddress, err := common.AddressBytes(m.recipient)
	if err != nil {
		return util.Transaction{}, none, validationError("recipient address: %v", err)
	}
	payment := m.snapshot.State.UnitPrice
	if payment < minRecipientLovelace {
		payment = minRecipientLovelace
	}
	recipientOutput := util.TxOutput{Address: recipientAddress, Value: util.Value{Lovelace: payment}}
	recipientOutput.Value.AddAsset(policyId, m.assetNameHex, 1)
	minLovelace, err := params.MinUTxO(recipientOutput)
	if err != nil {
		return util.Transaction{}, none, err
	}
	if recipientOutput.Value.Lovelace < minLovelace {
		recipientOutput.Value.Lovelace = minLovelace
	}

	utxos, err := x.wallet.Utxos(ctx)
	if err != nil {
		return util.Transaction{}, none, err
	}
	selected, total, err := selectLovelace(utxos, recipientOutput.Value.Lovelace+changeReserveLovelace, func(utxo client.Utxo) bool {
		return utxo.Input() == m.collateral
	})
	if err != nil {
		return util.Transaction{}, none, err
	}
	inputs := []util.TxInput{oracleUtxo.Input()}
	for _, utxo := range selected {
		inputs = append(inputs, utxo.Input())
	}

	redeemers := []util.Redeemer{
		{
			Tag:     util.RedeemerTagSpend,
			Index:   uint64(util.InputIndex(inputs, oracleUtxo.Input())),
			Data:    util.OracleRedeemer(util.OracleRedeemerMintToken),
			ExUnits: x.spendExUnits,
		},
		{
			Tag:     util.RedeemerTagMint,
			Index:   0,
			Data:    util.PolicyRedeemer(util.PolicyRedeemerMint),
			ExUnits: x.mintExUnits,
		},
	}
	scriptDataHash, err := util.ScriptDataHash(redeemers, params.CostModelPlutusV2)
	if err != nil {
		return util.Transaction{}, none, err
	}

	aux, err := util.AuxiliaryData(policyId, m.assetName, m.metadata)
	if err != nil {
		return util.Transaction{}, none, validationError("%v", err)
	}

	requiredSigners := [][]byte{x.wallet.KeyHash()}
	if m.recipientKeyHash != nil && !bytes.Equal(m.recipientKeyHash, x.wallet.KeyHash()) {
		requiredSigners = append(requiredSigners, m.recipientKeyHash)
	}

	nextDatum := m.snapshot.State.Next().ToPlutusData()
	build := func(fee uint64) (util.Transaction, error) {
		change := TxChange(total, recipientOutput.Value.Lovelace+fee)
		return util.Transaction{
			Body: util.TxBody{
				Inputs: inputs,
				Outputs: []util.TxOutput{
					{Address: oracleAddress, Value: oracleValue, Datum: &nextDatum},
					recipientOutput,
					{Address: x.wallet.addressBytes, Value: util.Value{Lovelace: change}},
				},
				Fee:             fee,
				TTL:             tip.Slot + x.ttlSlots,
				AuxDataHash:     common.Blake2b256(aux),
				Mint:            util.MultiAsset{policyId: {m.assetNameHex: 1}},
				ScriptDataHash:  scriptDataHash,
				Collateral:      []util.TxInput{m.collateral},
				RequiredSigners: requiredSigners,
				ReferenceInputs: []util.TxInput{oracleScriptRef, policyScriptRef},
			},
			Redeemers:     redeemers,
			AuxiliaryData: aux,
		}, nil
	}

	tx, estimate, err := util.BalanceFee(params, refScriptSize, x.feePadding, len(requiredSigners), build)
	if err != nil {
		return util.Transaction{}, none, err
	}
	if err := checkChange(params, tx.Body.Outputs[2]); err != nil {
		return util.Transaction{}, none, err
	}
	return tx, estimate, nil
}

// referenceScriptSize sums the sizes of the oracle validator and minting policy, which are
// both spent by reference and priced per byte.
func (x *mintPreparer) referenceScriptSize(ctx context.Context, oracleAddress []byte, policyId string) (uint64, error) {
	switch oracleAddress[0] >> 4 {
	case 0x1, 0x3, 0x5, 0x7:
	default:
		return 0, upstream("decode oracle address", fmt.Errorf("oracle is not held at a script address"))
	}
	oracleScriptHash := hex.EncodeToString(oracleAddress[1 : 1+common.KeyHashLength])

	var total uint64
	for _, hash := range []string{oracleScriptHash, policyId} {
		script, err := x.client.GetScript(ctx, hash)
		if err != nil {
			return 0, upstream("get script "+hash, err)
		}
		total += script.SerialisedSize
	}
	return total, nil
}
