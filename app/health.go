package app

import (
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dan13ram/pos-minter/models"
)

const HealthServiceName = "HEALTH"

// InstanceId identifies this process in health documents and lock owners.
var InstanceId = primitive.NewObjectID().Hex()

type HealthCheckRunner struct {
	hostname      string
	instanceId    string
	network       string
	serverAddress string

	servicesMu sync.RWMutex
	services   []Service

	lastMu sync.RWMutex
	last   models.Health
}

func (x *HealthCheckRunner) Run() {
	x.PostHealth()
}

func (x *HealthCheckRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

func (x *HealthCheckRunner) SetServices(services []Service) {
	x.servicesMu.Lock()
	defer x.servicesMu.Unlock()

	x.services = services
}

// ServiceHealths skips disabled services.
func (x *HealthCheckRunner) ServiceHealths() []models.ServiceHealth {
	x.servicesMu.RLock()
	defer x.servicesMu.RUnlock()

	var serviceHealths []models.ServiceHealth
	for _, service := range x.services {
		health := service.Health()
		if health.Name == EmptyServiceName {
			continue
		}
		serviceHealths = append(serviceHealths, health)
	}
	return serviceHealths
}

// Health is the current health of this instance.
func (x *HealthCheckRunner) Health() models.Health {
	serviceHealths := x.ServiceHealths()
	healthy := true
	for _, health := range serviceHealths {
		healthy = healthy && health.Healthy
	}

	x.lastMu.RLock()
	createdAt := x.last.CreatedAt
	x.lastMu.RUnlock()

	now := time.Now()
	if createdAt.IsZero() {
		createdAt = now
	}

	return models.Health{
		Hostname:       x.hostname,
		InstanceId:     x.instanceId,
		Network:        x.network,
		ServerAddress:  x.serverAddress,
		Healthy:        healthy,
		ServiceHealths: serviceHealths,
		CreatedAt:      createdAt,
		UpdatedAt:      now,
	}
}

func (x *HealthCheckRunner) PostHealth() bool {
	log.Debug("[HEALTH] Posting health")

	health := x.Health()

	x.lastMu.Lock()
	x.last = health
	x.lastMu.Unlock()

	if DB == nil {
		log.Debug("[HEALTH] No database, health kept in memory")
		return true
	}

	filter := bson.M{
		"instance_id": x.instanceId,
		"hostname":    x.hostname,
	}

	onInsert := bson.M{
		"hostname":       x.hostname,
		"instance_id":    x.instanceId,
		"network":        x.network,
		"server_address": x.serverAddress,
		"created_at":     health.CreatedAt,
	}

	onUpdate := bson.M{
		"healthy":         health.Healthy,
		"service_healths": health.ServiceHealths,
		"updated_at":      health.UpdatedAt,
	}

	update := bson.M{"$set": onUpdate, "$setOnInsert": onInsert}

	_, err := DB.UpsertOne(models.CollectionHealthChecks, filter, update)
	if err != nil {
		log.WithError(err).Error("[HEALTH] Error posting health")
		return false
	}

	log.Debug("[HEALTH] Posted health")
	return true
}

func NewHealthCheck(serverAddress string) *HealthCheckRunner {
	log.Debug("[HEALTH] Initializing health")

	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal("[HEALTH] Error getting hostname: ", err)
	}

	x := &HealthCheckRunner{
		hostname:      hostname,
		instanceId:    InstanceId,
		network:       Config.Cardano.Network,
		serverAddress: serverAddress,
	}

	log.Debug("[HEALTH] Initialized health")

	return x
}

func NewHealthService(x *HealthCheckRunner, wg *sync.WaitGroup) Service {
	return NewRunnerService(HealthServiceName, x, wg, time.Duration(Config.HealthCheck.IntervalMillis)*time.Millisecond)
}
