package cardano

import (
	"context"
	"errors"

	"github.com/dan13ram/pos-minter/cardano/client"
)

// errStrategySkipped is returned by a strategy that does not apply to the transaction.
var errStrategySkipped = errors.New("strategy skipped")

// PendingTx is a signed transaction on its way through the submission strategies.
type PendingTx struct {
	Tx               []byte
	KnownTxHash      string
	AlreadySubmitted bool
	WalletAvailable  bool

	serverSigned bool
}

type SubmitStrategy interface {
	Name() string
	AttemptSubmit(ctx context.Context, tx *PendingTx) (string, error)
}

// TxSubmitter posts signed transaction bytes and returns the tx hash.
type TxSubmitter interface {
	Submit(ctx context.Context, tx []byte) (string, error)
}

// DefaultStrategies returns the submission strategies in the order they are tried.
func DefaultStrategies(wallet *Wallet, indexer client.IndexerClient, raw TxSubmitter) []SubmitStrategy {
	return []SubmitStrategy{
		&alreadySubmittedStrategy{},
		&serverAssistedStrategy{wallet: wallet, client: indexer},
		&indexerStrategy{client: indexer},
		&rawStrategy{submitter: raw},
	}
}

// alreadySubmittedStrategy trusts the hash of a transaction the client wallet broadcast itself.
type alreadySubmittedStrategy struct{}

func (s *alreadySubmittedStrategy) Name() string {
	return "already_submitted"
}

func (s *alreadySubmittedStrategy) AttemptSubmit(ctx context.Context, tx *PendingTx) (string, error) {
	if !tx.AlreadySubmitted || tx.KnownTxHash == "" {
		return "", errStrategySkipped
	}
	return tx.KnownTxHash, nil
}

// serverAssistedStrategy completes the signatures with the server key when the
// client has no wallet to submit with.
type serverAssistedStrategy struct {
	wallet *Wallet
	client client.IndexerClient
}

func (s *serverAssistedStrategy) Name() string {
	return "server_assisted"
}

func (s *serverAssistedStrategy) AttemptSubmit(ctx context.Context, tx *PendingTx) (string, error) {
	if tx.WalletAvailable {
		return "", errStrategySkipped
	}
	signed, err := s.wallet.Sign(tx.Tx)
	if err != nil {
		return "", err
	}
	tx.Tx = signed
	tx.serverSigned = true

	hash, err := s.client.SubmitTx(ctx, signed)
	if err != nil {
		return "", upstream("submit transaction", err)
	}
	return hash, nil
}

type indexerStrategy struct {
	client client.IndexerClient
}

func (s *indexerStrategy) Name() string {
	return "indexer"
}

func (s *indexerStrategy) AttemptSubmit(ctx context.Context, tx *PendingTx) (string, error) {
	// the server assisted attempt already went through this client
	if tx.serverSigned {
		return "", errStrategySkipped
	}
	hash, err := s.client.SubmitTx(ctx, tx.Tx)
	if err != nil {
		return "", upstream("submit transaction", err)
	}
	return hash, nil
}

// rawStrategy is the last resort: one plain POST of the bytes, no retries.
type rawStrategy struct {
	submitter TxSubmitter
}

func (s *rawStrategy) Name() string {
	return "raw"
}

func (s *rawStrategy) AttemptSubmit(ctx context.Context, tx *PendingTx) (string, error) {
	hash, err := s.submitter.Submit(ctx, tx.Tx)
	if err != nil {
		return "", upstream("raw submit transaction", err)
	}
	return hash, nil
}
