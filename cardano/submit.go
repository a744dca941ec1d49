package cardano

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/pos-minter/app"
	"github.com/dan13ram/pos-minter/cardano/util"
	"github.com/dan13ram/pos-minter/models"
)

type SubmitRequest struct {
	SignedTx         string
	ClientTxId       string
	ProjectId        string
	TokenIndex       *int64
	AlreadySubmitted bool
	TxHash           string
	// WalletAvailable defaults to true when not supplied.
	WalletAvailable *bool
	// ServerSignedTx is required when SignedTx is a bare witness set.
	ServerSignedTx string
}

type SubmitResult struct {
	TxHash           string
	TokenId          int64
	Strategy         string
	Status           string
	CombinedSignedTx string
	BlockHeight      *int64
	Confirmations    *int64
}

type SubmissionCoordinator interface {
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
}

type submissionCoordinator struct {
	strategies []SubmitStrategy
	tracker    TransactionTracker
	probeDelay time.Duration
}

var _ SubmissionCoordinator = &submissionCoordinator{}

func NewSubmissionCoordinator(strategies []SubmitStrategy, tracker TransactionTracker) SubmissionCoordinator {
	return &submissionCoordinator{
		strategies: strategies,
		tracker:    tracker,
		probeDelay: time.Duration(app.Config.Tracker.ProbeDelayMillis) * time.Millisecond,
	}
}

func (x *submissionCoordinator) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	if req.SignedTx == "" || req.ClientTxId == "" || req.ProjectId == "" || req.TokenIndex == nil {
		return nil, validationError("signedTx, txId, projectId and tokenId are required")
	}

	// a client that goes away must not abandon a submission half way
	ctx = context.WithoutCancel(ctx)
	logger := log.WithField("tx_id", req.ClientTxId).WithField("project_id", req.ProjectId)

	result := &SubmitResult{TokenId: *req.TokenIndex}
	var signed []byte
	// the client already broadcast it, so the bytes are never sent
	if !req.AlreadySubmitted || req.TxHash == "" {
		var merged bool
		var err error
		signed, merged, err = decodeSignedTx(req)
		if err != nil {
			return nil, err
		}
		if merged {
			result.CombinedSignedTx = hex.EncodeToString(signed)
			logger.Debug("[SUBMIT] Merged client witness set into server signed transaction")
		}
	}

	pending := &PendingTx{
		Tx:               signed,
		KnownTxHash:      req.TxHash,
		AlreadySubmitted: req.AlreadySubmitted,
		WalletAvailable:  req.WalletAvailable == nil || *req.WalletAvailable,
	}
	txHash, strategy, err := x.attempt(ctx, pending)
	if err != nil {
		logger.WithError(err).Error("[SUBMIT] Error submitting transaction")
		return nil, err
	}
	logger = logger.WithField("tx_hash", txHash).WithField("strategy", strategy)
	logger.Info("[SUBMIT] Transaction submitted")

	tracked := &models.TrackedTransaction{
		TxId:      req.ClientTxId,
		TxHash:    txHash,
		ProjectId: req.ProjectId,
		TokenId:   *req.TokenIndex,
		Strategy:  strategy,
		Status:    models.TxStatusSubmitted,
	}
	if err := x.tracker.Record(tracked); err != nil {
		logger.WithError(err).Error("[SUBMIT] Error recording transaction")
	}

	if err := sleep(ctx, x.probeDelay); err == nil {
		tracked = x.tracker.Probe(ctx, tracked)
	}

	result.TxHash = txHash
	result.Strategy = strategy
	result.Status = tracked.Status
	result.BlockHeight = tracked.BlockHeight
	result.Confirmations = tracked.Confirmations
	return result, nil
}

// decodeSignedTx returns the transaction to submit, merging a bare witness set into the server signed body.
func decodeSignedTx(req SubmitRequest) ([]byte, bool, error) {
	signed, err := hex.DecodeString(req.SignedTx)
	if err != nil {
		return nil, false, validationError("signedTx is not hex encoded")
	}
	if !util.IsWitnessSet(signed) {
		return signed, false, nil
	}
	if req.ServerSignedTx == "" {
		return nil, false, validationError("serverSignedTx is required when signedTx is a witness set")
	}
	serverSigned, err := hex.DecodeString(req.ServerSignedTx)
	if err != nil {
		return nil, false, validationError("serverSignedTx is not hex encoded")
	}
	signed, err = util.MergeWitnessSet(serverSigned, signed)
	if err != nil {
		return nil, false, validationError("merge witness set: %v", err)
	}
	return signed, true, nil
}

// attempt tries each strategy in order until one succeeds.
func (x *submissionCoordinator) attempt(ctx context.Context, tx *PendingTx) (string, string, error) {
	var errs []error
	for _, strategy := range x.strategies {
		hash, err := strategy.AttemptSubmit(ctx, tx)
		if errors.Is(err, errStrategySkipped) {
			continue
		}
		if err != nil {
			app.SubmitAttempts.WithLabelValues(strategy.Name(), "failure").Inc()
			log.WithError(err).WithField("strategy", strategy.Name()).Warn("[SUBMIT] Submission attempt failed")
			errs = append(errs, fmt.Errorf("%s: %w", strategy.Name(), err))
			continue
		}
		app.SubmitAttempts.WithLabelValues(strategy.Name(), "success").Inc()
		return hash, strategy.Name(), nil
	}
	if len(errs) == 0 {
		return "", "", errors.New("no submission strategy applied")
	}
	return "", "", fmt.Errorf("submission failed: %w", errors.Join(errs...))
}
