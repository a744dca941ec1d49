package cardano

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/pos-minter/app"
	"github.com/dan13ram/pos-minter/cardano/client"
	"github.com/dan13ram/pos-minter/models"
)

type TransactionTracker interface {
	Record(tx *models.TrackedTransaction) error
	// Get looks a record up by exactly one of client tx id or chain tx hash,
	// refreshing it first when it is still submitted.
	Get(ctx context.Context, txId string, txHash string) (*models.TrackedTransaction, error)
	// Probe checks the ledger once and returns the record as it stands afterwards.
	Probe(ctx context.Context, tx *models.TrackedTransaction) *models.TrackedTransaction
	Pending() ([]models.TrackedTransaction, error)
}

type transactionTracker struct {
	store  TransactionStore
	client client.IndexerClient
}

var _ TransactionTracker = &transactionTracker{}

func NewTransactionTracker(store TransactionStore, indexer client.IndexerClient) TransactionTracker {
	return &transactionTracker{
		store:  store,
		client: indexer,
	}
}

func (x *transactionTracker) Record(tx *models.TrackedTransaction) error {
	now := time.Now()
	if tx.Status == "" {
		tx.Status = models.TxStatusSubmitted
	}
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if err := x.store.Insert(tx); err != nil {
		return err
	}
	log.WithField("tx_id", tx.TxId).
		WithField("tx_hash", tx.TxHash).
		Debug("[TRACKER] Recorded transaction")
	return nil
}

func (x *transactionTracker) Get(ctx context.Context, txId string, txHash string) (*models.TrackedTransaction, error) {
	if (txId == "") == (txHash == "") {
		return nil, validationError("exactly one of txId or txHash is required")
	}

	var tx *models.TrackedTransaction
	var err error
	if txId != "" {
		tx, err = x.store.FindByClientTxId(txId)
	} else {
		tx, err = x.store.FindByTxHash(txHash)
	}
	if err != nil {
		return nil, err
	}
	return x.Probe(ctx, tx), nil
}

func (x *transactionTracker) Pending() ([]models.TrackedTransaction, error) {
	return x.store.FindSubmitted()
}

func (x *transactionTracker) Probe(ctx context.Context, tx *models.TrackedTransaction) *models.TrackedTransaction {
	logger := log.WithField("tx_id", tx.TxId).WithField("tx_hash", tx.TxHash)

	probed, outcome, err := x.probe(ctx, tx)
	app.Probes.WithLabelValues(outcome).Inc()
	if errors.Is(err, ErrTransient) {
		logger.Debug("[TRACKER] Transaction not yet indexed")
		return tx
	}
	if err != nil {
		logger.WithError(err).Warn("[TRACKER] Error probing transaction")
		return tx
	}
	if probed.Status == models.TxStatusConfirmed && tx.Status != models.TxStatusConfirmed {
		logger.Info("[TRACKER] Transaction confirmed")
	}
	return probed
}

func (x *transactionTracker) probe(ctx context.Context, tx *models.TrackedTransaction) (*models.TrackedTransaction, string, error) {
	if tx.Status != models.TxStatusSubmitted || tx.TxHash == "" || strings.HasPrefix(tx.TxHash, models.SimulatedTxPrefix) {
		return tx, "skipped", nil
	}

	info, err := x.client.GetTransaction(ctx, tx.TxHash)
	if client.IsNotFound(err) {
		return tx, "not_indexed", ErrTransient
	}
	if err != nil {
		return tx, "error", upstream("get transaction", err)
	}
	if info.BlockHeight <= 0 {
		return tx, "not_indexed", ErrTransient
	}

	tip, err := x.client.GetLatestBlock(ctx)
	if err != nil {
		return tx, "error", upstream("get latest block", err)
	}
	confirmations := tip.Height - info.BlockHeight
	if confirmations <= 0 {
		// included in the tip block: report the height but leave the record submitted
		included := *tx
		included.BlockHeight = &info.BlockHeight
		included.Confirmations = new(int64)
		return &included, "pending", nil
	}

	promoted, err := x.store.MarkConfirmed(tx.TxId, info.BlockHeight, confirmations)
	if err != nil {
		return tx, "error", err
	}
	if !promoted {
		// confirmed elsewhere in the meantime
		stored, err := x.store.FindByClientTxId(tx.TxId)
		if err != nil {
			return tx, "error", err
		}
		return stored, "confirmed", nil
	}

	confirmed := *tx
	confirmed.Status = models.TxStatusConfirmed
	confirmed.BlockHeight = &info.BlockHeight
	confirmed.Confirmations = &confirmations
	confirmed.UpdatedAt = time.Now()
	return &confirmed, "confirmed", nil
}
