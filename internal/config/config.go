package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
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

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	LongTaskQueue                      string  `mapstructure:"long_task_queue"`
	DefaultTaskQueue                   string  `mapstructure:"default_task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers   int     `mapstructure:"max_concurrent_activity_task_pollers"`
}

// ProvidersConfig holds external data provider configuration
type ProvidersConfig struct {
	AlchemyNFTURL       string `mapstructure:"alchemy_nft_url"`
	AlchemyRPCURL       string `mapstructure:"alchemy_rpc_url"`
	AlchemyDashboardURL string `mapstructure:"alchemy_dashboard_url"`
	AlchemyAPIKey       string `mapstructure:"alchemy_api_key"`
	AlchemyWebhookID    string `mapstructure:"alchemy_webhook_id"`
	AlchemyAuthToken    string `mapstructure:"alchemy_auth_token"`
	MnemonicURL         string `mapstructure:"mnemonic_url"`
	MnemonicAPIKey      string `mapstructure:"mnemonic_api_key"`
	NFTPortURL          string `mapstructure:"nftport_url"`
	NFTPortAPIKey       string `mapstructure:"nftport_api_key"`
	CoinGeckoURL        string `mapstructure:"coingecko_url"`
}

// RateLimitConfig holds the per-provider rate limit settings
type RateLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds the rate limiting proxy configuration
type RateLimiterConfig struct {
	RedisAddr               string                     `mapstructure:"redis_addr"`
	RedisPassword           string                     `mapstructure:"redis_password"`
	RedisDB                 int                        `mapstructure:"redis_db"`
	RedisKeyPrefix          string                     `mapstructure:"redis_key_prefix"`
	MaxWorkers              int                        `mapstructure:"max_workers"`
	MaxQueueSize            int                        `mapstructure:"max_queue_size"`
	EnableLocalFallback     bool                       `mapstructure:"enable_local_fallback"`
	LocalFallbackMultiplier float64                    `mapstructure:"local_fallback_multiplier"`
	Providers               map[string]RateLimitConfig `mapstructure:"providers"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	APIKeys []string `mapstructure:"api_keys"`
}

// WebhookConfig holds inbound wallet-activity webhook configuration
type WebhookConfig struct {
	SigningKey            string `mapstructure:"signing_key"`
	GatingContractAddress string `mapstructure:"gating_contract_address"`
}

// SchedulerConfig holds the periodic refresh intervals
type SchedulerConfig struct {
	MetricsInterval      time.Duration `mapstructure:"metrics_interval"`
	TrendingInterval     time.Duration `mapstructure:"trending_interval"`
	HistoryInterval      time.Duration `mapstructure:"history_interval"`
	EthPriceInterval     time.Duration `mapstructure:"eth_price_interval"`
	PortfolioInterval    time.Duration `mapstructure:"portfolio_interval"`
	TransferSyncInterval time.Duration `mapstructure:"transfer_sync_interval"`
}

// APIServiceConfig holds configuration for the API server program
type APIServiceConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Temporal   TemporalConfig  `mapstructure:"temporal"`
	Auth       AuthConfig      `mapstructure:"auth"`
	Webhook    WebhookConfig   `mapstructure:"webhook"`
	Providers  ProvidersConfig `mapstructure:"providers"`
}

// WorkerConfig holds configuration for the worker program
type WorkerConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Temporal    TemporalConfig    `mapstructure:"temporal"`
	Providers   ProvidersConfig   `mapstructure:"providers"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
	Webhook     WebhookConfig     `mapstructure:"webhook"`
}

// SchedulerServiceConfig holds configuration for the scheduler program
type SchedulerServiceConfig struct {
	BaseConfig `mapstructure:",squash"`
	Temporal   TemporalConfig  `mapstructure:"temporal"`
	Scheduler  SchedulerConfig `mapstructure:"scheduler"`
}

// setTemporalDefaults applies shared Temporal defaults
func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.long_task_queue", "long")
	v.SetDefault("temporal.default_task_queue", "default")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 50)
	v.SetDefault("temporal.worker_activities_per_second", 50)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 10)
}

// setProviderDefaults applies shared provider URL defaults
func setProviderDefaults(v *viper.Viper) {
	// Bare hosts, the Alchemy client appends the API path and key itself
	v.SetDefault("providers.alchemy_nft_url", "https://eth-mainnet.g.alchemy.com")
	v.SetDefault("providers.alchemy_rpc_url", "https://eth-mainnet.g.alchemy.com")
	v.SetDefault("providers.alchemy_dashboard_url", "https://dashboard.alchemy.com/api")
	v.SetDefault("providers.mnemonic_url", "https://ethereum.rest.mnemonichq.com")
	v.SetDefault("providers.nftport_url", "https://api.nftport.xyz/v0")
	v.SetDefault("providers.coingecko_url", "https://api.coingecko.com/api/v3")
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIServiceConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	setTemporalDefaults(v)
	setProviderDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var config APIServiceConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadWorkerConfig loads configuration for the worker
func LoadWorkerConfig(configFile string, envPath string) (*WorkerConfig, error) {
	v := configureViper("worker", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	setTemporalDefaults(v)
	setProviderDefaults(v)
	v.SetDefault("rate_limiter.redis_addr", "localhost:6379")
	v.SetDefault("rate_limiter.enable_local_fallback", true)
	v.SetDefault("rate_limiter.providers.alchemy_nft.requests_per_second", 25)
	v.SetDefault("rate_limiter.providers.alchemy_rpc.requests_per_second", 3)
	v.SetDefault("rate_limiter.providers.mnemonic.requests_per_second", 25)
	v.SetDefault("rate_limiter.providers.nftport.requests_per_second", 3)
	v.SetDefault("rate_limiter.providers.coingecko.requests_per_second", 2)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config WorkerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadSchedulerConfig loads configuration for the scheduler
func LoadSchedulerConfig(configFile string, envPath string) (*SchedulerServiceConfig, error) {
	v := configureViper("scheduler", configFile, envPath)

	// Set defaults
	setTemporalDefaults(v)
	v.SetDefault("scheduler.metrics_interval", "1h")
	v.SetDefault("scheduler.trending_interval", "1h")
	v.SetDefault("scheduler.history_interval", "24h")
	v.SetDefault("scheduler.eth_price_interval", "1h")
	v.SetDefault("scheduler.portfolio_interval", "24h")
	v.SetDefault("scheduler.transfer_sync_interval", "6h")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg SchedulerServiceConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
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
		// 2. Service-specific directory (e.g., cmd/worker/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("RYFT_INDEXER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// This is required for viper to map env vars to config struct fields when no config file exists.
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
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
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.long_task_queue",
		"temporal.default_task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Providers
		"providers.alchemy_nft_url",
		"providers.alchemy_rpc_url",
		"providers.alchemy_dashboard_url",
		"providers.alchemy_api_key",
		"providers.alchemy_webhook_id",
		"providers.alchemy_auth_token",
		"providers.mnemonic_url",
		"providers.mnemonic_api_key",
		"providers.nftport_url",
		"providers.nftport_api_key",
		"providers.coingecko_url",
		// Rate limiter
		"rate_limiter.redis_addr",
		"rate_limiter.redis_password",
		"rate_limiter.redis_db",
		"rate_limiter.redis_key_prefix",
		"rate_limiter.max_workers",
		"rate_limiter.max_queue_size",
		"rate_limiter.enable_local_fallback",
		"rate_limiter.local_fallback_multiplier",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.api_keys",
		// Webhook
		"webhook.signing_key",
		"webhook.gating_contract_address",
		// Scheduler
		"scheduler.metrics_interval",
		"scheduler.trending_interval",
		"scheduler.history_interval",
		"scheduler.eth_price_interval",
		"scheduler.portfolio_interval",
		"scheduler.transfer_sync_interval",
	}

	for _, key := range commonKeys {
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

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
