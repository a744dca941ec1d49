package main

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/pos-minter/api"
	"github.com/dan13ram/pos-minter/app"
	"github.com/dan13ram/pos-minter/cardano"
	"github.com/dan13ram/pos-minter/cardano/client"
)

// Services is everything main starts and stops, in start order.
type Services struct {
	Health   *app.HealthCheckRunner
	Services []app.Service
}

func CreateServices(wg *sync.WaitGroup, signer *app.WalletSigner) *Services {
	indexer := client.NewIndexerClientFromConfig(app.Config.Cardano)
	raw := client.NewRawSubmitterFromConfig(app.Config.Cardano)

	wallet, err := cardano.NewWallet(signer, indexer)
	if err != nil {
		log.Fatal("[MAIN] Error initializing wallet: ", err)
	}

	oracle := cardano.NewOracleReader(cardano.NewProjectStore(), indexer)
	preparer := cardano.NewMintPreparer(oracle, wallet, indexer)
	tracker := cardano.NewTransactionTracker(cardano.NewTransactionStore(), indexer)
	coordinator := cardano.NewSubmissionCoordinator(cardano.DefaultStrategies(wallet, indexer, raw), tracker)

	healthcheck := app.NewHealthCheck(wallet.Address())

	server := api.NewServer(wg, preparer, oracle, coordinator, tracker, healthcheck)
	monitor := cardano.NewConfirmationMonitor(wg, tracker, indexer)

	services := []app.Service{server, monitor}
	healthcheck.SetServices(services)

	return &Services{
		Health:   healthcheck,
		Services: append(services, app.NewHealthService(healthcheck, wg)),
	}
}

func (s *Services) Start(wg *sync.WaitGroup) {
	wg.Add(len(s.Services))
	for _, service := range s.Services {
		go service.Start()
	}
}

func (s *Services) Stop() {
	for i := len(s.Services) - 1; i >= 0; i-- {
		s.Services[i].Stop()
	}
}
