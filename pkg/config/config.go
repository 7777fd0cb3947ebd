package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/targetscope/targetscope/pkg/embedder"
)

// Config holds all configuration for the application.
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log"`

	// Server configuration
	Server ServerConfig `mapstructure:"server"`

	// Data configuration
	Data DataConfig `mapstructure:"data"`

	// Search configuration
	Search SearchConfig `mapstructure:"search"`

	// Scoring configuration
	Scoring ScoringConfig `mapstructure:"scoring"`

	// Embedding configuration
	Embedding embedder.Config `mapstructure:"embedding"`

	// CircuitBreaker configuration for the embedding backend
	CircuitBreaker embedder.BreakerSettings `mapstructure:"circuit_breaker"`

	// Telemetry configuration
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release, test
}

// DataConfig holds seed data configuration.
type DataConfig struct {
	// SeedPath is the seed document loaded at startup. Empty starts the
	// server with no snapshot; data arrives via the reload endpoint.
	SeedPath string `mapstructure:"seed_path"`
	// EmbeddingsPath optionally points at a JSON map of entity id to
	// embedding vector.
	EmbeddingsPath string `mapstructure:"embeddings_path"`
}

// SearchConfig holds search defaults.
type SearchConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
	MaxLimit     int `mapstructure:"max_limit"`
}

// ScoringConfig holds analytics thresholds.
type ScoringConfig struct {
	HubMinDegree     int `mapstructure:"hub_min_degree"`
	OpportunityLimit int `mapstructure:"opportunity_limit"`
	ClusterMinShared int `mapstructure:"cluster_min_shared"`
	RepurposingLimit int `mapstructure:"repurposing_limit"`
}

// TelemetryConfig holds query telemetry configuration.
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ParquetPath string `mapstructure:"parquet_path"`
}

// Load loads configuration from file and environment variables.
func Load() (*Config, error) {
	setDefaults()

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	overrideWithEnv(config)

	return config, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	viper.SetDefault("search.default_limit", 10)
	viper.SetDefault("search.max_limit", 50)

	viper.SetDefault("scoring.hub_min_degree", 5)
	viper.SetDefault("scoring.opportunity_limit", 20)
	viper.SetDefault("scoring.cluster_min_shared", 3)
	viper.SetDefault("scoring.repurposing_limit", 20)

	viper.SetDefault("embedding.provider", "")
	viper.SetDefault("embedding.model", "")

	viper.SetDefault("telemetry.enabled", false)
	home, err := os.UserHomeDir()
	if err == nil {
		viper.SetDefault("telemetry.parquet_path", fmt.Sprintf("%s/.targetscope/telemetry", home))
	}
}

// overrideWithEnv overrides config with environment variables.
func overrideWithEnv(config *Config) {
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" && config.Embedding.APIKey == "" {
		config.Embedding.APIKey = apiKey
	}
	if path := os.Getenv("TARGETSCOPE_SEED_PATH"); path != "" {
		config.Data.SeedPath = path
	}
	if path := os.Getenv("TARGETSCOPE_EMBEDDINGS_PATH"); path != "" {
		config.Data.EmbeddingsPath = path
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if path := os.Getenv("TELEMETRY_PARQUET_PATH"); path != "" {
		config.Telemetry.ParquetPath = path
	}
}
