package app

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dan13ram/pos-minter/models"
)

// MockRunner is a mock implementation of the Runner interface for testing purposes.
type MockRunner struct {
	runs atomic.Int64
}

func (m *MockRunner) Run() {
	m.runs.Add(1)
}

func (m *MockRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		TipHeight: m.runs.Load(),
		Pending:   3,
	}
}

func TestRunnerService(t *testing.T) {
	mockRunner := &MockRunner{}
	interval := 100 * time.Millisecond
	wg := &sync.WaitGroup{}
	service := NewRunnerService("TestService", mockRunner, wg, interval)
	wg.Add(1)

	go service.Start()

	time.Sleep(600 * time.Millisecond)

	service.Stop()

	wg.Wait()

	health := service.Health()
	assert.True(t, health.Healthy)
	assert.Equal(t, "TestService", health.Name)
	assert.GreaterOrEqual(t, health.TipHeight, int64(5))
	assert.Equal(t, int64(3), health.Pending)
	assert.Equal(t, interval, health.NextSyncTime.Sub(health.LastSyncTime))
}

func TestNewRunnerServiceInvalidParameters(t *testing.T) {
	wg := &sync.WaitGroup{}
	invalidService := NewRunnerService("", nil, wg, 0)
	assert.Nil(t, invalidService)

	invalidService = NewRunnerService("TestService", &MockRunner{}, wg, 0)
	assert.Nil(t, invalidService)
}

func TestRunnerServiceStop(t *testing.T) {
	wg := &sync.WaitGroup{}
	mockRunner := &MockRunner{}
	service := NewRunnerService("TestService", mockRunner, wg, 100*time.Millisecond)

	assert.NotPanics(t, func() {
		service.Stop()
		service.Stop()
	})
}

func TestEmptyService(t *testing.T) {
	wg := &sync.WaitGroup{}
	service := NewEmptyService(wg)
	wg.Add(1)

	service.Start()
	wg.Wait()
	service.Stop()

	assert.Equal(t, EmptyServiceName, service.Health().Name)
	assert.True(t, service.Health().Healthy)
}
