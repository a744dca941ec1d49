package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionTransactions = "transactions"
)

// types of tracked transaction status
const (
	TxStatusSubmitted = "submitted"
	TxStatusConfirmed = "confirmed"
	TxStatusFailed    = "failed"
)

// SimulatedTxPrefix marks placeholder hashes that are never probed.
const SimulatedTxPrefix = "simulated_"

type TrackedTransaction struct {
	Id            *primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TxId          string              `bson:"tx_id" json:"txId"`
	TxHash        string              `bson:"tx_hash" json:"txHash"`
	ProjectId     string              `bson:"project_id" json:"projectId"`
	TokenId       int64               `bson:"token_id" json:"tokenId"`
	Strategy      string              `bson:"strategy" json:"strategy,omitempty"`
	Status        string              `bson:"status" json:"status"`
	BlockHeight   *int64              `bson:"block_height,omitempty" json:"blockHeight,omitempty"`
	Confirmations *int64              `bson:"confirmations,omitempty" json:"confirmations,omitempty"`
	CreatedAt     time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updatedAt"`
}
