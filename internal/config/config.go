package config

import (
	"os"
	"strconv"
	"time"

	"github.com/abdulkani007/SEMS-3/internal/cache"
	"github.com/abdulkani007/SEMS-3/internal/messaging"
)

// AuthConfig configures the session-token boundary.
type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// Config holds the application configuration
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration

	// Directory holding the per-collection snapshot files
	DataDir string

	Auth AuthConfig

	NATSEnabled   bool
	ValkeyEnabled bool
	SearchEnabled bool

	NATS          messaging.Config
	Valkey        cache.Config
	Elasticsearch ElasticsearchConfig
}

// Load reads the configuration from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,

		DataDir: getEnv("DATA_DIR", "./data"),

		Auth: AuthConfig{
			Secret:   getEnv("AUTH_SECRET", "sems-dev-secret"),
			TokenTTL: time.Duration(getEnvInt("AUTH_TOKEN_TTL_HOURS", 24)) * time.Hour,
		},

		NATSEnabled:   getEnv("NATS_ENABLED", "false") == "true",
		ValkeyEnabled: getEnv("VALKEY_ENABLED", "false") == "true",
		SearchEnabled: getEnv("ELASTICSEARCH_ENABLED", "false") == "true",

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "sems"),
			ClientID:  getEnv("NATS_CLIENT_ID", "sems-api"),
		},

		Valkey: cache.Config{
			Addr:     getEnv("VALKEY_ADDR", "localhost:6379"),
			Password: os.Getenv("VALKEY_PASSWORD"),
			StatsTTL: time.Duration(getEnvInt("VALKEY_STATS_TTL_SEC", 15)) * time.Second,
		},

		Elasticsearch: LoadElasticsearchConfig(),
	}
}

// getEnv returns the environment variable value or the default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable value or the default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
