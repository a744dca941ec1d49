package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionHealthChecks = "healthchecks"
)

type Health struct {
	Id             *primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Hostname       string              `bson:"hostname" json:"hostname"`
	InstanceId     string              `bson:"instance_id" json:"instanceId"`
	Network        string              `bson:"network" json:"network"`
	ServerAddress  string              `bson:"server_address" json:"serverAddress"`
	Healthy        bool                `bson:"healthy" json:"healthy"`
	ServiceHealths []ServiceHealth     `bson:"service_healths" json:"serviceHealths"`
	CreatedAt      time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updated_at" json:"updatedAt"`
}
