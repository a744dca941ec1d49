package models

import (
	"time"
)

type RunnerStatus struct {
	TipHeight int64
	Pending   int64
}

type ServiceHealth struct {
	Name         string    `bson:"name" json:"name"`
	LastSyncTime time.Time `bson:"last_sync_time" json:"lastSyncTime"`
	NextSyncTime time.Time `bson:"next_sync_time" json:"nextSyncTime"`
	TipHeight    int64     `bson:"tip_height" json:"tipHeight"`
	Pending      int64     `bson:"pending" json:"pending"`
	Healthy      bool      `bson:"healthy" json:"healthy"`
}
