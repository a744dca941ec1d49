package cardano

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/pos-minter/app"
	"github.com/dan13ram/pos-minter/cardano/client"
	"github.com/dan13ram/pos-minter/models"
)

const ConfirmationMonitorName = "CONFIRMATION MONITOR"

// ConfirmationRunner probes every submitted transaction once per run.
type ConfirmationRunner struct {
	tracker TransactionTracker
	client  client.IndexerClient
	timeout time.Duration

	tipHeight int64
	pending   int64
}

var _ app.Runner = &ConfirmationRunner{}

func (x *ConfirmationRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		TipHeight: x.tipHeight,
		Pending:   x.pending,
	}
}

func (x *ConfirmationRunner) UpdateTipHeight(ctx context.Context) {
	tip, err := x.client.GetLatestBlock(ctx)
	if err != nil {
		log.WithError(err).Error("[CONFIRMATION MONITOR] Error fetching latest block")
		return
	}
	x.tipHeight = tip.Height
	log.Debug("[CONFIRMATION MONITOR] Tip height: ", x.tipHeight)
}

func (x *ConfirmationRunner) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), x.timeout)
	defer cancel()

	x.UpdateTipHeight(ctx)

	txs, err := x.tracker.Pending()
	if err != nil {
		log.WithError(err).Error("[CONFIRMATION MONITOR] Error fetching submitted transactions")
		return
	}
	log.Debug("[CONFIRMATION MONITOR] Found ", len(txs), " submitted transactions")

	var pending int64
	for i := range txs {
		probed := x.tracker.Probe(ctx, &txs[i])
		if probed.Status == models.TxStatusSubmitted {
			pending++
		}
	}
	x.pending = pending
	app.PendingTransactions.Set(float64(pending))
}

func NewConfirmationRunner(tracker TransactionTracker, indexer client.IndexerClient, timeout time.Duration) *ConfirmationRunner {
	return &ConfirmationRunner{
		tracker: tracker,
		client:  indexer,
		timeout: timeout,
	}
}

func NewConfirmationMonitor(wg *sync.WaitGroup, tracker TransactionTracker, indexer client.IndexerClient) app.Service {
	if !app.Config.ConfirmationMonitor.Enabled {
		log.Debug("[CONFIRMATION MONITOR] Confirmation monitor disabled")
		return app.NewEmptyService(wg)
	}

	log.Debug("[CONFIRMATION MONITOR] Initializing confirmation monitor")

	interval := time.Duration(app.Config.ConfirmationMonitor.IntervalMillis) * time.Millisecond
	x := NewConfirmationRunner(tracker, indexer, interval)

	log.Info("[CONFIRMATION MONITOR] Initialized confirmation monitor")

	return app.NewRunnerService(ConfirmationMonitorName, x, wg, interval)
}
