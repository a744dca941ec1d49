package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dan13ram/pos-minter/app"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	root := &cobra.Command{
		Use:          "pos-minter",
		Short:        "Proof-of-Support NFT mint service",
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().String("config", "", "path to config file")
	root.Flags().String("env", "", "path to env file")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func absPath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		log.Fatal("[MAIN] Invalid path ", path, ": ", err)
	}
	return abs
}

func run(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	envPath, err := cmd.Flags().GetString("env")
	if err != nil {
		return err
	}

	app.InitConfig(absPath(configPath), absPath(envPath))
	app.InitLogger()
	app.InitDB()

	signer, err := app.GetWalletSigner()
	if err != nil {
		log.Fatal("[MAIN] ", err)
	}
	defer signer.Signer.Destroy()

	wg := &sync.WaitGroup{}
	services := CreateServices(wg, signer)
	services.Start(wg)

	log.Info("[MAIN] Server started with wallet ", signer.Address)

	gracefulStop := make(chan os.Signal, 1)
	done := make(chan bool, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	go waitForExitSignals(gracefulStop, done)
	<-done

	log.Debug("[MAIN] Gracefully shutting down server...")
	services.Stop()
	wg.Wait()

	if app.DB != nil {
		if err := app.DB.Disconnect(); err != nil {
			log.WithError(err).Warn("[MAIN] Error disconnecting from database")
		}
	}
	log.Info("[MAIN] Server gracefully stopped")
	return nil
}

func waitForExitSignals(gracefulStop chan os.Signal, done chan bool) {
	sig := <-gracefulStop
	log.Debug("[MAIN] Got signal: ", sig)
	done <- true
}
