package cardano

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dan13ram/pos-minter/cardano/client"
	clientMocks "github.com/dan13ram/pos-minter/cardano/client/mocks"
	"github.com/dan13ram/pos-minter/cardano/util"
	"github.com/dan13ram/pos-minter/models"
)

type testSubmission struct {
	coordinator SubmissionCoordinator
	tracker     TransactionTracker
	indexer     *clientMocks.MockIndexerClient
	wallet      *Wallet
	rawHits     *int32
}

// newTestSubmission wires the default strategies against a mocked indexer and a raw
// submit endpoint answering with the given status and body.
func newTestSubmission(t *testing.T, rawStatus int, rawBody string) testSubmission {
	indexer := clientMocks.NewMockIndexerClient(t)
	wallet := testWallet(t, indexer)
	tracker := NewTransactionTracker(NewMemoryTransactionStore(100, time.Hour), indexer)

	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "/tx/submit", r.URL.Path)
		assert.Equal(t, client.CborContentType, r.Header.Get("Content-Type"))
		w.WriteHeader(rawStatus)
		w.Write([]byte(rawBody))
	}))
	t.Cleanup(server.Close)

	raw := client.NewRawSubmitter(server.URL, "preprodKey", time.Second)
	return testSubmission{
		coordinator: &submissionCoordinator{
			strategies: DefaultStrategies(wallet, indexer, raw),
			tracker:    tracker,
		},
		tracker: tracker,
		indexer: indexer,
		wallet:  wallet,
		rawHits: &hits,
	}
}

func testSubmitRequest(t *testing.T) SubmitRequest {
	tokenIndex := int64(5)
	return SubmitRequest{
		SignedTx:   hex.EncodeToString(testUnsignedTx(t)),
		ClientTxId: "tx1",
		ProjectId:  "proj1",
		TokenIndex: &tokenIndex,
	}
}

func TestSubmitValidation(t *testing.T) {
	x := newTestSubmission(t, http.StatusOK, "")

	for name, mutate := range map[string]func(*SubmitRequest){
		"Missing SignedTx":   func(r *SubmitRequest) { r.SignedTx = "" },
		"Missing TxId":       func(r *SubmitRequest) { r.ClientTxId = "" },
		"Missing ProjectId":  func(r *SubmitRequest) { r.ProjectId = "" },
		"Missing TokenIndex": func(r *SubmitRequest) { r.TokenIndex = nil },
		"Not Hex":            func(r *SubmitRequest) { r.SignedTx = "zz" },
		"Witness Set Alone":  func(r *SubmitRequest) { r.SignedTx = "a0" },
	} {
		t.Run(name, func(t *testing.T) {
			req := testSubmitRequest(t)
			mutate(&req)

			_, err := x.coordinator.Submit(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(x.rawHits))
}

func TestSubmitAlreadySubmitted(t *testing.T) {
	x := newTestSubmission(t, http.StatusOK, "")
	x.indexer.EXPECT().GetTransaction(mock.Anything, "abc123").Return(nil, errIndexerNotFound)

	req := testSubmitRequest(t)
	req.AlreadySubmitted = true
	req.TxHash = "abc123"

	result, err := x.coordinator.Submit(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "abc123", result.TxHash)
	assert.Equal(t, "already_submitted", result.Strategy)
	assert.Equal(t, models.TxStatusSubmitted, result.Status)
	assert.Equal(t, int64(5), result.TokenId)
	assert.Equal(t, int32(0), atomic.LoadInt32(x.rawHits))

	byHash, err := x.tracker.Get(context.Background(), "", "abc123")
	assert.NoError(t, err)
	assert.Equal(t, models.TxStatusSubmitted, byHash.Status)
	assert.Equal(t, "proj1", byHash.ProjectId)
	assert.Equal(t, int64(5), byHash.TokenId)

	byId, err := x.tracker.Get(context.Background(), "tx1", "")
	assert.NoError(t, err)
	assert.Equal(t, "abc123", byId.TxHash)
	assert.Equal(t, byHash.ProjectId, byId.ProjectId)
	assert.Equal(t, byHash.TokenId, byId.TokenId)
}

func TestSubmitAlreadySubmittedSkipsDecoding(t *testing.T) {
	for name, signedTx := range map[string]string{
		"Not Hex":           "not a transaction",
		"Witness Set Alone": "a0",
	} {
		t.Run(name, func(t *testing.T) {
			x := newTestSubmission(t, http.StatusOK, "")
			x.indexer.EXPECT().GetTransaction(mock.Anything, "abc123").Return(nil, errIndexerNotFound)

			req := testSubmitRequest(t)
			req.SignedTx = signedTx
			req.AlreadySubmitted = true
			req.TxHash = "abc123"

			result, err := x.coordinator.Submit(context.Background(), req)
			assert.NoError(t, err)
			assert.Equal(t, "abc123", result.TxHash)
			assert.Equal(t, "already_submitted", result.Strategy)
			assert.Empty(t, result.CombinedSignedTx)
		})
	}

	t.Run("Without Hash Still Decodes", func(t *testing.T) {
		x := newTestSubmission(t, http.StatusOK, "")

		req := testSubmitRequest(t)
		req.SignedTx = "not a transaction"
		req.AlreadySubmitted = true

		_, err := x.coordinator.Submit(context.Background(), req)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, int32(0), atomic.LoadInt32(x.rawHits))
	})
}

func TestSubmitInTipBlock(t *testing.T) {
	x := newTestSubmission(t, http.StatusOK, "")
	txHash := strings.Repeat("e", 64)

	x.indexer.EXPECT().SubmitTx(mock.Anything, mock.Anything).Return(txHash, nil).Once()
	x.indexer.EXPECT().GetTransaction(mock.Anything, txHash).Return(&client.Transaction{Hash: txHash, BlockHeight: 100}, nil)
	x.indexer.EXPECT().GetLatestBlock(mock.Anything).Return(&client.Block{Height: 100}, nil)

	result, err := x.coordinator.Submit(context.Background(), testSubmitRequest(t))
	assert.NoError(t, err)
	assert.Equal(t, models.TxStatusSubmitted, result.Status)
	assert.Equal(t, int64(100), *result.BlockHeight)
	assert.Equal(t, int64(0), *result.Confirmations)
}

func TestSubmitIndexer(t *testing.T) {
	x := newTestSubmission(t, http.StatusOK, "")
	txHash := strings.Repeat("e", 64)

	x.indexer.EXPECT().SubmitTx(mock.Anything, testUnsignedTx(t)).Return(txHash, nil).Once()
	x.indexer.EXPECT().GetTransaction(mock.Anything, txHash).Return(&client.Transaction{Hash: txHash, BlockHeight: 100}, nil)
	x.indexer.EXPECT().GetLatestBlock(mock.Anything).Return(&client.Block{Height: 102}, nil)

	result, err := x.coordinator.Submit(context.Background(), testSubmitRequest(t))
	assert.NoError(t, err)
	assert.Equal(t, txHash, result.TxHash)
	assert.Equal(t, "indexer", result.Strategy)
	assert.Equal(t, models.TxStatusConfirmed, result.Status)
	assert.Equal(t, int64(100), *result.BlockHeight)
	assert.Equal(t, int64(2), *result.Confirmations)
	assert.Empty(t, result.CombinedSignedTx)
	assert.Equal(t, int32(0), atomic.LoadInt32(x.rawHits))
}

func TestSubmitRawFallback(t *testing.T) {
	t.Run("Raw Succeeds", func(t *testing.T) {
		txHash := strings.Repeat("e", 64)
		x := newTestSubmission(t, http.StatusOK, `"`+txHash+`"`)

		x.indexer.EXPECT().SubmitTx(mock.Anything, mock.Anything).Return("", errors.New("connection reset")).Once()
		x.indexer.EXPECT().GetTransaction(mock.Anything, txHash).Return(nil, errIndexerNotFound)

		result, err := x.coordinator.Submit(context.Background(), testSubmitRequest(t))
		assert.NoError(t, err)
		assert.Equal(t, txHash, result.TxHash)
		assert.Equal(t, "raw", result.Strategy)
		assert.Equal(t, models.TxStatusSubmitted, result.Status)
		assert.Equal(t, int32(1), atomic.LoadInt32(x.rawHits))
	})

	t.Run("Both Fail", func(t *testing.T) {
		x := newTestSubmission(t, http.StatusBadRequest, `{"status_code":400,"error":"Bad Request","message":"BadInputsUTxO"}`)

		x.indexer.EXPECT().SubmitTx(mock.Anything, mock.Anything).Return("", errors.New("connection reset")).Once()

		_, err := x.coordinator.Submit(context.Background(), testSubmitRequest(t))
		assert.Error(t, err)
		assert.ErrorContains(t, err, "BadInputsUTxO")
		assert.ErrorContains(t, err, "connection reset")
		assert.Equal(t, int32(1), atomic.LoadInt32(x.rawHits))

		var indexerErr *client.Error
		assert.ErrorAs(t, err, &indexerErr)
		assert.Equal(t, client.ErrorKindJSON, indexerErr.Kind)

		_, err = x.tracker.Get(context.Background(), "tx1", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSubmitServerAssisted(t *testing.T) {
	x := newTestSubmission(t, http.StatusOK, "")
	txHash := strings.Repeat("e", 64)

	var submitted []byte
	x.indexer.EXPECT().SubmitTx(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, tx []byte) { submitted = tx }).
		Return(txHash, nil).Once()
	x.indexer.EXPECT().GetTransaction(mock.Anything, txHash).Return(nil, errIndexerNotFound)

	req := testSubmitRequest(t)
	walletAvailable := false
	req.WalletAvailable = &walletAvailable

	result, err := x.coordinator.Submit(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "server_assisted", result.Strategy)

	witnesses, err := util.VKeyWitnesses(submitted)
	assert.NoError(t, err)
	assert.Len(t, witnesses, 1)
	assert.Equal(t, []byte(x.wallet.signer.PublicKey()), witnesses[0].VKey)
	assert.NoError(t, util.VerifyVKeyWitnesses(submitted))
}

func TestSubmitServerAssistedFallsBackToRaw(t *testing.T) {
	txHash := strings.Repeat("e", 64)
	x := newTestSubmission(t, http.StatusOK, txHash)

	x.indexer.EXPECT().SubmitTx(mock.Anything, mock.Anything).Return("", errors.New("timeout")).Once()
	x.indexer.EXPECT().GetTransaction(mock.Anything, txHash).Return(nil, errIndexerNotFound)

	req := testSubmitRequest(t)
	walletAvailable := false
	req.WalletAvailable = &walletAvailable

	result, err := x.coordinator.Submit(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "raw", result.Strategy)
	assert.Equal(t, int32(1), atomic.LoadInt32(x.rawHits))
}

func TestSubmitWitnessSet(t *testing.T) {
	x := newTestSubmission(t, http.StatusOK, "")
	txHash := strings.Repeat("e", 64)

	serverSigned, err := x.wallet.Sign(testUnsignedTx(t))
	assert.NoError(t, err)

	bodyHash, err := util.TxBodyHash(serverSigned)
	assert.NoError(t, err)
	seed, err := hex.DecodeString(testSeedRecipient)
	assert.NoError(t, err)
	walletKey := ed25519.NewKeyFromSeed(seed)
	witnessSet, err := util.EncodeCbor(map[uint64]interface{}{
		0: []interface{}{[]interface{}{[]byte(walletKey.Public().(ed25519.PublicKey)), ed25519.Sign(walletKey, bodyHash)}},
	})
	assert.NoError(t, err)

	var submitted []byte
	x.indexer.EXPECT().SubmitTx(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, tx []byte) { submitted = tx }).
		Return(txHash, nil).Once()
	x.indexer.EXPECT().GetTransaction(mock.Anything, txHash).Return(nil, errIndexerNotFound)

	req := testSubmitRequest(t)
	req.SignedTx = hex.EncodeToString(witnessSet)
	req.ServerSignedTx = hex.EncodeToString(serverSigned)

	result, err := x.coordinator.Submit(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(submitted), result.CombinedSignedTx)

	witnesses, err := util.VKeyWitnesses(submitted)
	assert.NoError(t, err)
	assert.Len(t, witnesses, 2)
	assert.NoError(t, util.VerifyVKeyWitnesses(submitted))
}

// failingInsertStore refuses every write.
type failingInsertStore struct {
	TransactionStore
}

func (s *failingInsertStore) Insert(tx *models.TrackedTransaction) error {
	return errors.New("connection reset")
}

func TestSubmitRecordFailureIsNotFatal(t *testing.T) {
	indexer := clientMocks.NewMockIndexerClient(t)
	tracker := NewTransactionTracker(&failingInsertStore{NewMemoryTransactionStore(10, time.Hour)}, indexer)
	txHash := strings.Repeat("e", 64)

	coordinator := &submissionCoordinator{
		strategies: []SubmitStrategy{&indexerStrategy{client: indexer}},
		tracker:    tracker,
	}

	indexer.EXPECT().SubmitTx(mock.Anything, mock.Anything).Return(txHash, nil)
	indexer.EXPECT().GetTransaction(mock.Anything, txHash).Return(nil, errIndexerNotFound)

	result, err := coordinator.Submit(context.Background(), testSubmitRequest(t))
	assert.NoError(t, err)
	assert.Equal(t, txHash, result.TxHash)
	assert.Equal(t, models.TxStatusSubmitted, result.Status)

	_, err = tracker.Get(context.Background(), "tx1", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitNoStrategyApplies(t *testing.T) {
	coordinator := &submissionCoordinator{strategies: []SubmitStrategy{&alreadySubmittedStrategy{}}}

	_, err := coordinator.Submit(context.Background(), testSubmitRequest(t))
	assert.ErrorContains(t, err, "no submission strategy applied")
}

func TestSubmitDetachesFromCaller(t *testing.T) {
	x := newTestSubmission(t, http.StatusOK, "")
	txHash := strings.Repeat("e", 64)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	x.indexer.EXPECT().SubmitTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, tx []byte) (string, error) {
			return txHash, ctx.Err()
		}).Once()
	x.indexer.EXPECT().GetTransaction(mock.Anything, txHash).Return(nil, errIndexerNotFound)

	result, err := x.coordinator.Submit(ctx, testSubmitRequest(t))
	assert.NoError(t, err)
	assert.Equal(t, txHash, result.TxHash)
}
