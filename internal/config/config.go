package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mediolano-app/mip-indexer/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// StarknetConfig holds Starknet RPC configuration
type StarknetConfig struct {
	RPCURL          string `mapstructure:"rpc_url"`
	ContractAddress string `mapstructure:"contract_address"`
}

// URIConfig holds metadata resolution configuration
type URIConfig struct {
	IPFSGateways   []string      `mapstructure:"ipfs_gateways"`
	AttemptTimeout time.Duration `mapstructure:"attempt_timeout"`
}

// ProvidersConfig holds external provider endpoints
type ProvidersConfig struct {
	IndexerURL string `mapstructure:"indexer_url"`
	VoyagerURL string `mapstructure:"voyager_url"`
}

// CacheConfig holds transaction cache configuration
type CacheConfig struct {
	TxTTL time.Duration `mapstructure:"tx_ttl"`
	// Persist enables write-through to the database
	Persist bool `mapstructure:"persist"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	PoolSize int `mapstructure:"pool_size"`
}

// TimelineConfig holds timeline paging configuration
type TimelineConfig struct {
	DefaultPageSize uint64 `mapstructure:"default_page_size"`
	MaxPageSize     uint64 `mapstructure:"max_page_size"`
}

// EmitterConfig holds activity emitter loop configuration
type EmitterConfig struct {
	Source       string        `mapstructure:"source"`
	StartBlock   uint64        `mapstructure:"start_block"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	BatchLimit   int           `mapstructure:"batch_limit"`
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Starknet   StarknetConfig  `mapstructure:"starknet"`
	URI        URIConfig       `mapstructure:"uri"`
	Providers  ProvidersConfig `mapstructure:"providers"`
	Cache      CacheConfig     `mapstructure:"cache"`
	Worker     WorkerConfig    `mapstructure:"worker"`
	Timeline   TimelineConfig  `mapstructure:"timeline"`
	HTTP       HTTPConfig      `mapstructure:"http"`
}

// ActivityEmitterConfig holds configuration for the activity emitter
type ActivityEmitterConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig  `mapstructure:"database"`
	NATS       NATSConfig      `mapstructure:"nats"`
	Starknet   StarknetConfig  `mapstructure:"starknet"`
	Providers  ProvidersConfig `mapstructure:"providers"`
	Cache      CacheConfig     `mapstructure:"cache"`
	Emitter    EmitterConfig   `mapstructure:"emitter"`
	HTTP       HTTPConfig      `mapstructure:"http"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 60)
	setCommonDefaults(v)
	v.SetDefault("worker.pool_size", 8)
	v.SetDefault("timeline.default_page_size", 20)
	v.SetDefault("timeline.max_page_size", 50)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadActivityEmitterConfig loads configuration for the activity emitter
func LoadActivityEmitterConfig(configFile string, envPath string) (*ActivityEmitterConfig, error) {
	v := configureViper("activity-emitter", configFile, envPath)

	// Set defaults
	setCommonDefaults(v)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "ACTIVITIES")
	v.SetDefault("nats.connection_name", "activity-emitter")
	v.SetDefault("emitter.source", "indexer")
	v.SetDefault("emitter.poll_interval", "30s")
	v.SetDefault("emitter.batch_limit", 100)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config ActivityEmitterConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("starknet.rpc_url", domain.DEFAULT_RPC_URL)
	v.SetDefault("starknet.contract_address", domain.DEFAULT_CONTRACT_ADDRESS)
	v.SetDefault("uri.ipfs_gateways", strings.Split(domain.DEFAULT_IPFS_GATEWAYS_CSV, ","))
	v.SetDefault("uri.attempt_timeout", "8s")
	v.SetDefault("providers.indexer_url", "http://localhost:3001")
	v.SetDefault("providers.voyager_url", "https://voyager.online/api")
	v.SetDefault("cache.tx_ttl", "15m")
	v.SetDefault("cache.persist", true)
	v.SetDefault("http.timeout", "30s")
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("MIP_INDEXER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Starknet
		"starknet.rpc_url",
		"starknet.contract_address",
		// URI resolution
		"uri.ipfs_gateways",
		"uri.attempt_timeout",
		// Providers
		"providers.indexer_url",
		"providers.voyager_url",
		// Cache
		"cache.tx_ttl",
		"cache.persist",
		// Workers
		"worker.pool_size",
		// Timeline
		"timeline.default_page_size",
		"timeline.max_page_size",
		// Emitter
		"emitter.source",
		"emitter.start_block",
		"emitter.poll_interval",
		"emitter.batch_limit",
		// HTTP
		"http.timeout",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}
