package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/pos-minter/cardano"
	"github.com/dan13ram/pos-minter/cardano/util"
	"github.com/dan13ram/pos-minter/models"
)

type prepareRequest struct {
	ProjectId        string            `json:"projectId"`
	Metadata         *util.NFTMetadata `json:"metadata"`
	RecipientAddress string            `json:"recipientAddress"`
	Quantity         *int64            `json:"quantity"`
	UnitPrice        *uint64           `json:"unitPrice"`
}

type prepareResponse struct {
	Success bool `json:"success"`
	*cardano.PreparedMint
}

type statusResponse struct {
	Success        bool   `json:"success"`
	ProjectId      string `json:"projectId"`
	PolicyId       string `json:"policyId"`
	CurrentTokenId int64  `json:"currentTokenId"`
	NextTokenId    int64  `json:"nextTokenId"`
	MaxMints       int64  `json:"maxMints"`
	LovelacePrice  uint64 `json:"lovelacePrice"`
	MintingAllowed bool   `json:"mintingAllowed"`
	CollectionName string `json:"collectionName"`
}

type submitRequest struct {
	SignedTx         string `json:"signedTx"`
	TxId             string `json:"txId"`
	ProjectId        string `json:"projectId"`
	TokenId          *int64 `json:"tokenId"`
	AlreadySubmitted bool   `json:"alreadySubmitted"`
	TxHash           string `json:"txHash"`
	WalletAvailable  *bool  `json:"walletAvailable"`
	ServerSignedTx   string `json:"serverSignedTx"`
}

type submitResponse struct {
	Success          bool   `json:"success"`
	TxHash           string `json:"txHash"`
	TokenId          int64  `json:"tokenId"`
	Strategy         string `json:"strategy"`
	Status           string `json:"status"`
	CombinedSignedTx string `json:"combinedSignedTx,omitempty"`
	BlockHeight      *int64 `json:"blockHeight,omitempty"`
	Confirmations    *int64 `json:"confirmations,omitempty"`
}

type transactionResponse struct {
	Success bool `json:"success"`
	*models.TrackedTransaction
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", cardano.ErrValidation, err)
	}
	return nil
}

func (x *Server) prepareMint(w http.ResponseWriter, r *http.Request) {
	var body prepareRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if strings.TrimSpace(body.ProjectId) == "" || body.Metadata == nil {
		writeErrorMessage(w, http.StatusBadRequest, "projectId and metadata are required")
		return
	}
	if body.Quantity != nil && *body.Quantity != 1 {
		writeErrorMessage(w, http.StatusBadRequest, "Only single NFT minting is supported")
		return
	}

	prepared, err := x.preparer.PrepareMint(r.Context(), cardano.MintRequest{
		ProjectId:        body.ProjectId,
		Metadata:         *body.Metadata,
		RecipientAddress: body.RecipientAddress,
		UnitPrice:        body.UnitPrice,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.WithField("project_id", prepared.ProjectId).
		WithField("token_id", prepared.TokenId).
		Info("[API] Prepared mint")
	writeJSON(w, http.StatusOK, prepareResponse{Success: true, PreparedMint: prepared})
}

func (x *Server) mintStatus(w http.ResponseWriter, r *http.Request) {
	projectId := r.URL.Query().Get("projectId")
	policyId := r.URL.Query().Get("policyId")

	var snapshot *cardano.OracleSnapshot
	var err error
	switch {
	case projectId != "":
		snapshot, err = x.oracle.GetOracleSnapshot(r.Context(), projectId)
	case policyId != "":
		snapshot, err = x.oracle.GetOracleSnapshotByPolicy(r.Context(), policyId)
	default:
		writeErrorMessage(w, http.StatusBadRequest, "projectId or policyId is required")
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	state := snapshot.State
	writeJSON(w, http.StatusOK, statusResponse{
		Success:        true,
		ProjectId:      snapshot.Project.ProjectId,
		PolicyId:       snapshot.Project.PolicyId,
		CurrentTokenId: state.Count,
		NextTokenId:    state.Count + 1,
		MaxMints:       state.MaxMints,
		LovelacePrice:  state.UnitPrice,
		MintingAllowed: state.MintingAllowed,
		CollectionName: snapshot.CollectionName,
	})
}

func (x *Server) submitMint(w http.ResponseWriter, r *http.Request) {
	var body submitRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := x.coordinator.Submit(r.Context(), cardano.SubmitRequest{
		SignedTx:         body.SignedTx,
		ClientTxId:       body.TxId,
		ProjectId:        body.ProjectId,
		TokenIndex:       body.TokenId,
		AlreadySubmitted: body.AlreadySubmitted,
		TxHash:           body.TxHash,
		WalletAvailable:  body.WalletAvailable,
		ServerSignedTx:   body.ServerSignedTx,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Success:          true,
		TxHash:           result.TxHash,
		TokenId:          result.TokenId,
		Strategy:         result.Strategy,
		Status:           result.Status,
		CombinedSignedTx: result.CombinedSignedTx,
		BlockHeight:      result.BlockHeight,
		Confirmations:    result.Confirmations,
	})
}

func (x *Server) submitStatus(w http.ResponseWriter, r *http.Request) {
	txId := r.URL.Query().Get("txId")
	txHash := r.URL.Query().Get("txHash")
	if txId == "" && txHash == "" {
		writeErrorMessage(w, http.StatusBadRequest, "txId or txHash is required")
		return
	}
	// txId wins when both are given
	if txId != "" {
		txHash = ""
	}

	tx, err := x.tracker.Get(r.Context(), txId, txHash)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transactionResponse{Success: true, TrackedTransaction: tx})
}

func (x *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	health := x.health.Health()
	status := http.StatusOK
	if !health.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, health)
}
