package cardano

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dan13ram/pos-minter/app"
	"github.com/dan13ram/pos-minter/cardano/client"
	clientMocks "github.com/dan13ram/pos-minter/cardano/client/mocks"
	"github.com/dan13ram/pos-minter/models"
)

func NewTestConfirmationRunner(t *testing.T) (*ConfirmationRunner, TransactionStore, *clientMocks.MockIndexerClient) {
	indexer := clientMocks.NewMockIndexerClient(t)
	store := NewMemoryTransactionStore(100, time.Hour)
	tracker := NewTransactionTracker(store, indexer)
	return NewConfirmationRunner(tracker, indexer, time.Second), store, indexer
}

func TestConfirmationRunnerRun(t *testing.T) {
	x, store, indexer := NewTestConfirmationRunner(t)

	assert.NoError(t, store.Insert(testTrackedTransaction("tx1", "hash1")))
	assert.NoError(t, store.Insert(testTrackedTransaction("tx2", "hash2")))
	assert.NoError(t, store.Insert(testTrackedTransaction("tx3", models.SimulatedTxPrefix+"3")))

	indexer.EXPECT().GetLatestBlock(mock.Anything).Return(&client.Block{Height: 110}, nil)
	indexer.EXPECT().GetTransaction(mock.Anything, "hash1").Return(&client.Transaction{Hash: "hash1", BlockHeight: 100}, nil)
	indexer.EXPECT().GetTransaction(mock.Anything, "hash2").Return(nil, errIndexerNotFound)

	x.Run()

	status := x.Status()
	assert.Equal(t, int64(110), status.TipHeight)
	assert.Equal(t, int64(2), status.Pending)

	tx, err := store.FindByClientTxId("tx1")
	assert.NoError(t, err)
	assert.Equal(t, models.TxStatusConfirmed, tx.Status)
	assert.Equal(t, int64(10), *tx.Confirmations)

	tx, err = store.FindByClientTxId("tx2")
	assert.NoError(t, err)
	assert.Equal(t, models.TxStatusSubmitted, tx.Status)
}

// unreadableStore fails every lookup of pending records.
type unreadableStore struct {
	TransactionStore
}

func (s *unreadableStore) FindSubmitted() ([]models.TrackedTransaction, error) {
	return nil, errors.New("connection reset")
}

func TestConfirmationRunnerStoreError(t *testing.T) {
	indexer := clientMocks.NewMockIndexerClient(t)
	store := &unreadableStore{NewMemoryTransactionStore(10, time.Hour)}
	x := NewConfirmationRunner(NewTransactionTracker(store, indexer), indexer, time.Second)

	indexer.EXPECT().GetLatestBlock(mock.Anything).Return(nil, errors.New("timeout"))

	x.Run()

	assert.Equal(t, models.RunnerStatus{}, x.Status())
}

func TestNewConfirmationMonitor(t *testing.T) {
	defer func() { app.Config = models.Config{} }()
	indexer := clientMocks.NewMockIndexerClient(t)
	tracker := NewTransactionTracker(NewMemoryTransactionStore(10, time.Hour), indexer)

	t.Run("Disabled", func(t *testing.T) {
		app.Config.ConfirmationMonitor.Enabled = false

		service := NewConfirmationMonitor(&sync.WaitGroup{}, tracker, indexer)
		assert.Equal(t, app.EmptyServiceName, service.Health().Name)
	})

	t.Run("Enabled", func(t *testing.T) {
		app.Config.ConfirmationMonitor.Enabled = true
		app.Config.ConfirmationMonitor.IntervalMillis = 1000

		service := NewConfirmationMonitor(&sync.WaitGroup{}, tracker, indexer)
		_, ok := service.(*app.RunnerService)
		assert.True(t, ok)
	})
}
