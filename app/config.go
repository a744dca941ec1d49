package app

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/dan13ram/pos-minter/common"
	"github.com/dan13ram/pos-minter/models"
)

var (
	Config models.Config
)

const (
	defaultListenAddress         = ":8080"
	defaultMongoTimeoutMillis    = 5000
	defaultIndexerTimeoutMillis  = 30000
	defaultCollateralLovelace    = 5_000_000
	defaultCollateralAttempts    = 20
	defaultCollateralDelayMillis = 3000
	defaultTTLSlots              = 900
	defaultTrackerTTLSecs        = 7 * 24 * 60 * 60
	defaultTrackerCacheSize      = 10000
	defaultProbeDelayMillis      = 2000
	defaultMonitorIntervalMillis = 60000
	defaultHealthIntervalMillis  = 60000
)

func InitConfig(configFile string, envFile string) {
	log.Debug("[CONFIG] Initializing config")
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readKeysFromGSM()
	applyDefaults()
	validateConfig()
	log.Info("[CONFIG] Config initialized")
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}
	log.Debug("[CONFIG] Reading config file: ", configFile)
	var yamlFile, err = os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s\n", configFile, err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s\n", configFile, err.Error())
	}
	log.Debug("[CONFIG] Config file read")
	return true
}

func applyDefaults() {
	if Config.HTTP.ListenAddress == "" {
		Config.HTTP.ListenAddress = defaultListenAddress
	}
	if Config.MongoDB.TimeoutMillis == 0 {
		Config.MongoDB.TimeoutMillis = defaultMongoTimeoutMillis
	}
	if Config.Cardano.Network == "" {
		Config.Cardano.Network = common.NetworkPreprod
	}
	if Config.Cardano.IndexerTimeoutMillis == 0 {
		Config.Cardano.IndexerTimeoutMillis = defaultIndexerTimeoutMillis
	}
	if Config.Cardano.CollateralLovelace == 0 {
		Config.Cardano.CollateralLovelace = defaultCollateralLovelace
	}
	if Config.Cardano.CollateralAttempts == 0 {
		Config.Cardano.CollateralAttempts = defaultCollateralAttempts
	}
	if Config.Cardano.CollateralDelayMillis == 0 {
		Config.Cardano.CollateralDelayMillis = defaultCollateralDelayMillis
	}
	if Config.Cardano.TTLSlots == 0 {
		Config.Cardano.TTLSlots = defaultTTLSlots
	}
	if Config.Tracker.TTLSecs == 0 {
		Config.Tracker.TTLSecs = defaultTrackerTTLSecs
	}
	if Config.Tracker.CacheSize == 0 {
		Config.Tracker.CacheSize = defaultTrackerCacheSize
	}
	if Config.Tracker.ProbeDelayMillis == 0 {
		Config.Tracker.ProbeDelayMillis = defaultProbeDelayMillis
	}
	if Config.ConfirmationMonitor.IntervalMillis == 0 {
		Config.ConfirmationMonitor.IntervalMillis = defaultMonitorIntervalMillis
	}
	if Config.HealthCheck.IntervalMillis == 0 {
		Config.HealthCheck.IntervalMillis = defaultHealthIntervalMillis
	}
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")

	// mongodb is optional, but a configured uri needs a database
	if Config.MongoDB.URI != "" && Config.MongoDB.Database == "" {
		log.Fatal("[CONFIG] MongoDB.Database is required when MongoDB.URI is set")
	}

	// cardano
	switch strings.ToLower(Config.Cardano.Network) {
	case common.NetworkMainnet, common.NetworkPreprod, common.NetworkPreview:
	default:
		log.Fatal("[CONFIG] Cardano.Network is invalid: ", Config.Cardano.Network)
	}
	if Config.Cardano.IndexerURL == "" {
		log.Fatal("[CONFIG] Cardano.IndexerURL is required")
	}
	if Config.Cardano.IndexerProjectId == "" {
		log.Fatal("[CONFIG] Cardano.IndexerProjectId is required")
	}
	if Config.Cardano.SpendExUnits.Mem == 0 || Config.Cardano.SpendExUnits.Steps == 0 {
		log.Fatal("[CONFIG] Cardano.SpendExUnits is required")
	}
	if Config.Cardano.MintExUnits.Mem == 0 || Config.Cardano.MintExUnits.Steps == 0 {
		log.Fatal("[CONFIG] Cardano.MintExUnits is required")
	}

	// wallet
	if Config.Wallet.Mnemonic == "" && Config.Wallet.SigningKey == "" && Config.Wallet.GcpKmsKeyName == "" {
		log.Fatal("[CONFIG] Wallet.Mnemonic, Wallet.SigningKey or Wallet.GcpKmsKeyName is required")
	}

	// projects
	if len(Config.Projects) == 0 && Config.MongoDB.URI == "" {
		log.Fatal("[CONFIG] Projects are required when MongoDB is not configured")
	}
	for i, project := range Config.Projects {
		if project.ProjectId == "" {
			log.Fatalf("[CONFIG] Projects[%d].ProjectId is required", i)
		}
		if project.PolicyId == "" {
			log.Fatalf("[CONFIG] Projects[%d].PolicyId is required", i)
		}
		if project.OraclePolicyId == "" {
			log.Fatalf("[CONFIG] Projects[%d].OraclePolicyId is required", i)
		}
		if project.OracleScriptRef == "" || project.MintingPolicyScriptRef == "" {
			log.Fatalf("[CONFIG] Projects[%d] script references are required", i)
		}
	}

	log.Debug("[CONFIG] Config validated")
}
