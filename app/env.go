package app

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func envInt64(name string, target *int64) {
	if os.Getenv(name) == "" {
		return
	}
	value, err := strconv.ParseInt(os.Getenv(name), 10, 64)
	if err != nil {
		log.Warn("[ENV] Error parsing ", name, ": ", err.Error())
		return
	}
	*target = value
}

func envUint64(name string, target *uint64) {
	if os.Getenv(name) == "" {
		return
	}
	value, err := strconv.ParseUint(os.Getenv(name), 10, 64)
	if err != nil {
		log.Warn("[ENV] Error parsing ", name, ": ", err.Error())
		return
	}
	*target = value
}

func envInt(name string, target *int) {
	if os.Getenv(name) == "" {
		return
	}
	value, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		log.Warn("[ENV] Error parsing ", name, ": ", err.Error())
		return
	}
	*target = value
}

func envBool(name string, target *bool) {
	if os.Getenv(name) == "" {
		return
	}
	value, err := strconv.ParseBool(os.Getenv(name))
	if err != nil {
		log.Warn("[ENV] Error parsing ", name, ": ", err.Error())
		return
	}
	*target = value
}

func envString(name string, target *string) {
	if os.Getenv(name) != "" {
		*target = os.Getenv(name)
	}
}

func readConfigFromENV(envFile string) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading .env file: ", err.Error())
		}
	}

	// mongodb
	envString("MONGODB_URI", &Config.MongoDB.URI)
	envString("MONGODB_DATABASE", &Config.MongoDB.Database)
	envInt64("MONGODB_TIMEOUT_MS", &Config.MongoDB.TimeoutMillis)

	// http
	envString("HTTP_LISTEN_ADDRESS", &Config.HTTP.ListenAddress)
	envInt64("HTTP_READ_TIMEOUT_MS", &Config.HTTP.ReadTimeoutMillis)
	envInt64("HTTP_WRITE_TIMEOUT_MS", &Config.HTTP.WriteTimeoutMillis)
	if os.Getenv("HTTP_CORS_ORIGINS") != "" {
		Config.HTTP.CorsOrigins = strings.Split(os.Getenv("HTTP_CORS_ORIGINS"), ",")
	}

	// cardano
	envString("CARDANO_NETWORK", &Config.Cardano.Network)
	envString("CARDANO_INDEXER_URL", &Config.Cardano.IndexerURL)
	envString("CARDANO_INDEXER_PROJECT_ID", &Config.Cardano.IndexerProjectId)
	envInt64("CARDANO_INDEXER_TIMEOUT_MS", &Config.Cardano.IndexerTimeoutMillis)
	envUint64("CARDANO_COLLATERAL_LOVELACE", &Config.Cardano.CollateralLovelace)
	envInt("CARDANO_COLLATERAL_ATTEMPTS", &Config.Cardano.CollateralAttempts)
	envInt64("CARDANO_COLLATERAL_DELAY_MS", &Config.Cardano.CollateralDelayMillis)
	envUint64("CARDANO_TTL_SLOTS", &Config.Cardano.TTLSlots)
	envUint64("CARDANO_FEE_PADDING_LOVELACE", &Config.Cardano.FeePaddingLovelace)

	// wallet
	envString("WALLET_MNEMONIC", &Config.Wallet.Mnemonic)
	envString("WALLET_SIGNING_KEY", &Config.Wallet.SigningKey)
	envString("WALLET_GCP_KMS_KEY_NAME", &Config.Wallet.GcpKmsKeyName)

	// tracker
	envInt64("TRACKER_TTL_SECS", &Config.Tracker.TTLSecs)
	envInt("TRACKER_CACHE_SIZE", &Config.Tracker.CacheSize)
	envInt64("TRACKER_PROBE_DELAY_MS", &Config.Tracker.ProbeDelayMillis)

	// confirmation monitor
	envBool("CONFIRMATION_MONITOR_ENABLED", &Config.ConfirmationMonitor.Enabled)
	envInt64("CONFIRMATION_MONITOR_INTERVAL_MS", &Config.ConfirmationMonitor.IntervalMillis)

	// health check
	envInt64("HEALTH_CHECK_INTERVAL_MS", &Config.HealthCheck.IntervalMillis)

	// logging
	if Config.Logger.Level == "" {
		logLevel := os.Getenv("LOG_LEVEL")
		if logLevel == "" {
			log.Warn("[ENV] Setting LogLevel to debug")
			Config.Logger.Level = "debug"
		} else {
			Config.Logger.Level = logLevel
		}
	}
	envString("LOG_FORMAT", &Config.Logger.Format)

	// google secret manager
	envBool("GOOGLE_SECRET_MANAGER_ENABLED", &Config.GoogleSecretManager.Enabled)
	envString("GOOGLE_PROJECT_ID", &Config.GoogleSecretManager.ProjectId)
	envString("GOOGLE_MONGO_SECRET_NAME", &Config.GoogleSecretManager.MongoSecretName)
	envString("GOOGLE_MNEMONIC_SECRET_NAME", &Config.GoogleSecretManager.MnemonicSecretName)
	envString("GOOGLE_SIGNING_KEY_SECRET_NAME", &Config.GoogleSecretManager.SigningKeySecretName)
	envString("GOOGLE_INDEXER_KEY_SECRET_NAME", &Config.GoogleSecretManager.IndexerKeySecretName)
}
