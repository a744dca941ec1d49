package cardano

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/dan13ram/pos-minter/app"
	"github.com/dan13ram/pos-minter/cardano/client"
	"github.com/dan13ram/pos-minter/cardano/util"
	"github.com/dan13ram/pos-minter/common"
)

const (
	collateralLockPrefix = "collateral:"

	// lovelace kept aside for the fee and a change output when selecting inputs
	changeReserveLovelace = 3_000_000
)

// Wallet is the server signing key bound to its enterprise address.
type Wallet struct {
	signer       common.Signer
	keyHash      []byte
	address      string
	addressBytes []byte
	client       client.IndexerClient

	collateralLovelace uint64
	collateralAttempts int
	collateralDelay    time.Duration
	ttlSlots           uint64
	feePadding         uint64

	group singleflight.Group
}

func NewWallet(signer *app.WalletSigner, indexer client.IndexerClient) (*Wallet, error) {
	addressBytes, err := common.AddressBytes(signer.Address)
	if err != nil {
		return nil, err
	}
	config := app.Config.Cardano
	return &Wallet{
		signer:             signer.Signer,
		keyHash:            signer.KeyHash,
		address:            signer.Address,
		addressBytes:       addressBytes,
		client:             indexer,
		collateralLovelace: config.CollateralLovelace,
		collateralAttempts: config.CollateralAttempts,
		collateralDelay:    time.Duration(config.CollateralDelayMillis) * time.Millisecond,
		ttlSlots:           config.TTLSlots,
		feePadding:         config.FeePaddingLovelace,
	}, nil
}

func (w *Wallet) Address() string {
	return w.address
}

func (w *Wallet) KeyHash() []byte {
	return w.keyHash
}

// Sign adds the server vkey witness to an encoded transaction.
func (w *Wallet) Sign(tx []byte) ([]byte, error) {
	return util.SignTransaction(tx, w.signer)
}

func (w *Wallet) Utxos(ctx context.Context) ([]client.Utxo, error) {
	utxos, err := w.client.GetAddressUtxos(ctx, w.address)
	if err != nil {
		return nil, upstream("list wallet utxos", err)
	}
	return utxos, nil
}

func (w *Wallet) isCollateral(utxo client.Utxo) bool {
	return utxo.IsPureLovelace() && utxo.Lovelace() == w.collateralLovelace
}

func (w *Wallet) findCollateral(utxos []client.Utxo) *client.Utxo {
	for i := range utxos {
		if w.isCollateral(utxos[i]) {
			return &utxos[i]
		}
	}
	return nil
}

// EnsureCollateral returns the wallet's collateral utxo, creating it with a
// self payment when missing. Callers in this process share one creation and
// instances sharing mongodb serialize on a lock.
func (w *Wallet) EnsureCollateral(ctx context.Context) (*client.Utxo, error) {
	utxos, err := w.Utxos(ctx)
	if err != nil {
		return nil, err
	}
	if collateral := w.findCollateral(utxos); collateral != nil {
		return collateral, nil
	}

	result, err, shared := w.group.Do(collateralLockPrefix+w.address, func() (interface{}, error) {
		return w.createCollateral(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Debug("[WALLET] Shared collateral creation with a concurrent request")
	}
	return result.(*client.Utxo), nil
}

func (w *Wallet) createCollateral(ctx context.Context) (*client.Utxo, error) {
	logger := log.WithField("address", w.address)

	if app.DB != nil {
		lockId, err := app.DB.XLock(collateralLockPrefix + w.address)
		if errors.Is(err, app.ErrAlreadyLocked) {
			logger.Debug("[WALLET] Collateral is being created by another instance")
			return w.waitForCollateral(ctx)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: lock wallet: %v", ErrCollateralUnavailable, err)
		}
		defer func() {
			if err := app.DB.Unlock(lockId); err != nil {
				logger.WithError(err).Warn("[WALLET] Error unlocking wallet")
			}
		}()
	}

	utxos, err := w.Utxos(ctx)
	if err != nil {
		return nil, err
	}
	if collateral := w.findCollateral(utxos); collateral != nil {
		return collateral, nil
	}

	logger.Info("[WALLET] Creating collateral of ", w.collateralLovelace, " lovelace")
	txHash, err := w.submitCollateralTx(ctx, utxos)
	if err != nil {
		logger.WithError(err).Error("[WALLET] Error creating collateral")
		return nil, fmt.Errorf("%w: %v", ErrCollateralUnavailable, err)
	}
	app.CollateralCreated.Inc()
	logger.WithField("tx_hash", txHash).Info("[WALLET] Submitted collateral transaction")

	return w.waitForCollateral(ctx)
}

func (w *Wallet) waitForCollateral(ctx context.Context) (*client.Utxo, error) {
	for attempt := 1; attempt <= w.collateralAttempts; attempt++ {
		if err := sleep(ctx, w.collateralDelay); err != nil {
			return nil, err
		}
		utxos, err := w.Utxos(ctx)
		if err != nil {
			log.WithError(err).Debug("[WALLET] Error polling for collateral")
			continue
		}
		if collateral := w.findCollateral(utxos); collateral != nil {
			log.WithField("utxo", collateral.Input().String()).Info("[WALLET] Collateral available")
			return collateral, nil
		}
		log.Debug("[WALLET] Collateral not visible yet, attempt ", attempt, " of ", w.collateralAttempts)
	}
	return nil, fmt.Errorf("%w: not visible after %d attempts", ErrCollateralUnavailable, w.collateralAttempts)
}

func (w *Wallet) submitCollateralTx(ctx context.Context, utxos []client.Utxo) (string, error) {
	params, err := fetchProtocolParams(ctx, w.client)
	if err != nil {
		return "", err
	}
	tip, err := w.client.GetLatestBlock(ctx)
	if err != nil {
		return "", upstream("get latest block", err)
	}

	selected, total, err := selectLovelace(utxos, w.collateralLovelace+changeReserveLovelace, nil)
	if err != nil {
		return "", err
	}
	inputs := make([]util.TxInput, 0, len(selected))
	for _, utxo := range selected {
		inputs = append(inputs, utxo.Input())
	}

	build := func(fee uint64) (util.Transaction, error) {
		change := TxChange(total, w.collateralLovelace+fee)
		return util.Transaction{
			Body: util.TxBody{
				Inputs: inputs,
				Outputs: []util.TxOutput{
					{Address: w.addressBytes, Value: util.Value{Lovelace: w.collateralLovelace}},
					{Address: w.addressBytes, Value: util.Value{Lovelace: change}},
				},
				Fee: fee,
				TTL: tip.Slot + w.ttlSlots,
			},
		}, nil
	}

	tx, estimate, err := util.BalanceFee(params, 0, w.feePadding, 1, build)
	if err != nil {
		return "", err
	}
	if err := checkChange(params, tx.Body.Outputs[1]); err != nil {
		return "", err
	}

	unsigned, err := tx.MarshalCbor()
	if err != nil {
		return "", err
	}
	signed, err := w.Sign(unsigned)
	if err != nil {
		return "", err
	}

	log.WithField("fee", estimate.Fee).Debug("[WALLET] Submitting collateral transaction")
	txHash, err := w.client.SubmitTx(ctx, signed)
	if err != nil {
		return "", upstream("submit collateral transaction", err)
	}
	return txHash, nil
}

// TxChange is what is left of total after spending, or zero.
func TxChange(total uint64, spent uint64) uint64 {
	if spent > total {
		return 0
	}
	return total - spent
}

func checkChange(params util.ProtocolParams, change util.TxOutput) error {
	min, err := params.MinUTxO(change)
	if err != nil {
		return err
	}
	if change.Value.Lovelace < min {
		return fmt.Errorf("insufficient wallet funds: change of %d lovelace is below the minimum of %d", change.Value.Lovelace, min)
	}
	return nil
}

// selectLovelace picks pure lovelace utxos, largest first, until target is covered.
func selectLovelace(utxos []client.Utxo, target uint64, skip func(client.Utxo) bool) ([]client.Utxo, uint64, error) {
	candidates := make([]client.Utxo, 0, len(utxos))
	for _, utxo := range utxos {
		if !utxo.IsPureLovelace() || (skip != nil && skip(utxo)) {
			continue
		}
		candidates = append(candidates, utxo)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Lovelace() > candidates[j].Lovelace()
	})

	var selected []client.Utxo
	var total uint64
	for _, utxo := range candidates {
		if total >= target {
			break
		}
		selected = append(selected, utxo)
		total += utxo.Lovelace()
	}
	if total < target {
		return nil, 0, fmt.Errorf("insufficient wallet funds: have %d lovelace, need %d", total, target)
	}
	return selected, total, nil
}

func fetchProtocolParams(ctx context.Context, indexer client.IndexerClient) (util.ProtocolParams, error) {
	raw, err := indexer.GetProtocolParameters(ctx)
	if err != nil {
		return util.ProtocolParams{}, upstream("get protocol parameters", err)
	}
	params, err := raw.Params()
	if err != nil {
		return util.ProtocolParams{}, upstream("get protocol parameters", err)
	}
	return params, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
