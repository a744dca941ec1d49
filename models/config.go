package models

type Config struct {
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	HealthCheck         HealthCheckConfig         `yaml:"health_check" json:"health_check"`
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	MongoDB             MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	HTTP                HTTPConfig                `yaml:"http" json:"http"`
	Cardano             CardanoConfig             `yaml:"cardano" json:"cardano"`
	Wallet              WalletConfig              `yaml:"wallet" json:"wallet"`
	Tracker             TrackerConfig             `yaml:"tracker" json:"tracker"`
	ConfirmationMonitor ServiceConfig             `yaml:"confirmation_monitor" json:"confirmation_monitor"`
	Projects            []Project                 `yaml:"projects" json:"projects"`
}

type GoogleSecretManagerConfig struct {
	Enabled              bool   `yaml:"enabled" json:"enabled"`
	ProjectId            string `yaml:"project_id" json:"project_id"`
	MongoSecretName      string `yaml:"mongo_secret_name" json:"mongo_secret_name"`
	MnemonicSecretName   string `yaml:"mnemonic_secret_name" json:"mnemonic_secret_name"`
	IndexerKeySecretName string `yaml:"indexer_key_secret_name" json:"indexer_key_secret_name"`
	SigningKeySecretName string `yaml:"signing_key_secret_name" json:"signing_key_secret_name"`
}

type HealthCheckConfig struct {
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// MongoConfig is optional; an empty URI keeps tracked transactions in memory.
type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type HTTPConfig struct {
	ListenAddress      string   `yaml:"listen_address" json:"listen_address"`
	ReadTimeoutMillis  int64    `yaml:"read_timeout_ms" json:"read_timeout_ms"`
	WriteTimeoutMillis int64    `yaml:"write_timeout_ms" json:"write_timeout_ms"`
	CorsOrigins        []string `yaml:"cors_origins" json:"cors_origins"`
}

type CardanoConfig struct {
	Network               string        `yaml:"network" json:"network"`
	IndexerURL            string        `yaml:"indexer_url" json:"indexer_url"`
	IndexerProjectId      string        `yaml:"indexer_project_id" json:"indexer_project_id"`
	IndexerTimeoutMillis  int64         `yaml:"indexer_timeout_ms" json:"indexer_timeout_ms"`
	CollateralLovelace    uint64        `yaml:"collateral_lovelace" json:"collateral_lovelace"`
	CollateralAttempts    int           `yaml:"collateral_attempts" json:"collateral_attempts"`
	CollateralDelayMillis int64         `yaml:"collateral_delay_ms" json:"collateral_delay_ms"`
	TTLSlots              uint64        `yaml:"ttl_slots" json:"ttl_slots"`
	FeePaddingLovelace    uint64        `yaml:"fee_padding_lovelace" json:"fee_padding_lovelace"`
	SpendExUnits          ExUnitsConfig `yaml:"spend_ex_units" json:"spend_ex_units"`
	MintExUnits           ExUnitsConfig `yaml:"mint_ex_units" json:"mint_ex_units"`
}

type ExUnitsConfig struct {
	Mem   uint64 `yaml:"mem" json:"mem"`
	Steps uint64 `yaml:"steps" json:"steps"`
}

// WalletConfig selects the server signer: mnemonic, raw signing key, or a GCP KMS key.
type WalletConfig struct {
	Mnemonic      string `yaml:"mnemonic" json:"mnemonic"`
	SigningKey    string `yaml:"signing_key" json:"signing_key"`
	GcpKmsKeyName string `yaml:"gcp_kms_key_name" json:"gcp_kms_key_name"`
}

type TrackerConfig struct {
	TTLSecs          int64 `yaml:"ttl_secs" json:"ttl_secs"`
	CacheSize        int   `yaml:"cache_size" json:"cache_size"`
	ProbeDelayMillis int64 `yaml:"probe_delay_ms" json:"probe_delay_ms"`
}

type ServiceConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}
