package cardano

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/pos-minter/app"
	"github.com/dan13ram/pos-minter/models"
)

// TransactionStore keeps submitted transactions keyed by the client tx id.
type TransactionStore interface {
	// Insert records a submission. Re-inserting the same tx id and hash keeps status,
	// created_at and confirmation data; a different hash replaces the record.
	Insert(tx *models.TrackedTransaction) error
	FindByClientTxId(txId string) (*models.TrackedTransaction, error)
	FindByTxHash(txHash string) (*models.TrackedTransaction, error)
	// MarkConfirmed promotes a submitted record and reports whether one was promoted.
	MarkConfirmed(txId string, blockHeight int64, confirmations int64) (bool, error)
	FindSubmitted() ([]models.TrackedTransaction, error)
}

// NewTransactionStore uses mongodb when it is set up and an expiring in-memory cache otherwise.
func NewTransactionStore() TransactionStore {
	if app.DB != nil {
		log.Debug("[TRACKER] Using mongodb transaction store")
		return NewMongoTransactionStore()
	}
	config := app.Config.Tracker
	log.WithField("size", config.CacheSize).
		WithField("ttl_secs", config.TTLSecs).
		Debug("[TRACKER] Using in-memory transaction store")
	return NewMemoryTransactionStore(config.CacheSize, time.Duration(config.TTLSecs)*time.Second)
}

type mongoTransactionStore struct{}

var _ TransactionStore = &mongoTransactionStore{}

func NewMongoTransactionStore() TransactionStore {
	return &mongoTransactionStore{}
}

func (s *mongoTransactionStore) Insert(tx *models.TrackedTransaction) error {
	_, err := app.DB.InsertOne(models.CollectionTransactions, tx)
	if err == nil {
		return nil
	}
	if !app.IsDuplicateKeyError(err) {
		return fmt.Errorf("insert transaction %s: %w", tx.TxId, err)
	}

	// same hash: keep status and confirmation data
	matched, err := app.DB.UpdateOne(models.CollectionTransactions,
		bson.M{"tx_id": tx.TxId, "tx_hash": tx.TxHash},
		bson.M{"$set": bson.M{
			"project_id": tx.ProjectId,
			"token_id":   tx.TokenId,
			"strategy":   tx.Strategy,
			"updated_at": tx.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("update transaction %s: %w", tx.TxId, err)
	}
	if matched > 0 {
		return nil
	}

	// new hash: tracking starts over
	log.WithField("tx_id", tx.TxId).WithField("tx_hash", tx.TxHash).Debug("[TRACKER] Replacing transaction hash")
	_, err = app.DB.UpdateOne(models.CollectionTransactions,
		bson.M{"tx_id": tx.TxId},
		bson.M{
			"$set": bson.M{
				"tx_hash":    tx.TxHash,
				"project_id": tx.ProjectId,
				"token_id":   tx.TokenId,
				"strategy":   tx.Strategy,
				"status":     tx.Status,
				"created_at": tx.CreatedAt,
				"updated_at": tx.UpdatedAt,
			},
			"$unset": bson.M{
				"block_height":  "",
				"confirmations": "",
			},
		},
	)
	if err != nil {
		return fmt.Errorf("replace transaction %s: %w", tx.TxId, err)
	}
	return nil
}

func (s *mongoTransactionStore) findOne(filter bson.M, what string) (*models.TrackedTransaction, error) {
	var tx models.TrackedTransaction
	err := app.DB.FindOne(models.CollectionTransactions, filter, &tx)
	if app.IsNoDocuments(err) {
		return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", what, err)
	}
	return &tx, nil
}

func (s *mongoTransactionStore) FindByClientTxId(txId string) (*models.TrackedTransaction, error) {
	return s.findOne(bson.M{"tx_id": txId}, fmt.Sprintf("transaction %q", txId))
}

func (s *mongoTransactionStore) FindByTxHash(txHash string) (*models.TrackedTransaction, error) {
	return s.findOne(bson.M{"tx_hash": txHash}, fmt.Sprintf("transaction hash %q", txHash))
}

func (s *mongoTransactionStore) MarkConfirmed(txId string, blockHeight int64, confirmations int64) (bool, error) {
	filter := bson.M{"tx_id": txId, "status": models.TxStatusSubmitted}
	update := bson.M{
		"$set": bson.M{
			"status":        models.TxStatusConfirmed,
			"block_height":  blockHeight,
			"confirmations": confirmations,
			"updated_at":    time.Now(),
		},
	}
	matched, err := app.DB.UpdateOne(models.CollectionTransactions, filter, update)
	if err != nil {
		return false, fmt.Errorf("confirm transaction %s: %w", txId, err)
	}
	return matched > 0, nil
}

func (s *mongoTransactionStore) FindSubmitted() ([]models.TrackedTransaction, error) {
	txs := []models.TrackedTransaction{}
	if err := app.DB.FindMany(models.CollectionTransactions, bson.M{"status": models.TxStatusSubmitted}, &txs); err != nil {
		return nil, fmt.Errorf("find submitted transactions: %w", err)
	}
	return txs, nil
}

// memoryTransactionStore holds records until they expire or are pushed out by newer ones.
type memoryTransactionStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, models.TrackedTransaction]
}

var _ TransactionStore = &memoryTransactionStore{}

func NewMemoryTransactionStore(size int, ttl time.Duration) TransactionStore {
	return &memoryTransactionStore{
		cache: expirable.NewLRU[string, models.TrackedTransaction](size, nil, ttl),
	}
}

func (s *memoryTransactionStore) Insert(tx *models.TrackedTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *tx
	if existing, ok := s.cache.Peek(tx.TxId); ok && existing.TxHash == tx.TxHash {
		record.Status = existing.Status
		record.CreatedAt = existing.CreatedAt
		record.BlockHeight = existing.BlockHeight
		record.Confirmations = existing.Confirmations
	}
	s.cache.Add(tx.TxId, record)
	return nil
}

func (s *memoryTransactionStore) FindByClientTxId(txId string) (*models.TrackedTransaction, error) {
	tx, ok := s.cache.Get(txId)
	if !ok {
		return nil, fmt.Errorf("transaction %q: %w", txId, ErrNotFound)
	}
	return &tx, nil
}

func (s *memoryTransactionStore) FindByTxHash(txHash string) (*models.TrackedTransaction, error) {
	for _, tx := range s.cache.Values() {
		if tx.TxHash == txHash {
			return &tx, nil
		}
	}
	return nil, fmt.Errorf("transaction hash %q: %w", txHash, ErrNotFound)
}

func (s *memoryTransactionStore) MarkConfirmed(txId string, blockHeight int64, confirmations int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.cache.Peek(txId)
	if !ok || tx.Status != models.TxStatusSubmitted {
		return false, nil
	}
	tx.Status = models.TxStatusConfirmed
	tx.BlockHeight = &blockHeight
	tx.Confirmations = &confirmations
	tx.UpdatedAt = time.Now()
	s.cache.Add(txId, tx)
	return true, nil
}

func (s *memoryTransactionStore) FindSubmitted() ([]models.TrackedTransaction, error) {
	txs := []models.TrackedTransaction{}
	for _, tx := range s.cache.Values() {
		if tx.Status == models.TxStatusSubmitted {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}
