package targetscope

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/targetscope/targetscope"
	"github.com/targetscope/targetscope/pkg/config"
	"github.com/targetscope/targetscope/pkg/embedder"
	"github.com/targetscope/targetscope/pkg/loader"
	tslogger "github.com/targetscope/targetscope/pkg/logger"
	"github.com/targetscope/targetscope/pkg/server"
	"github.com/targetscope/targetscope/pkg/telemetry"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the TargetScope HTTP server",
	Long: `Start the TargetScope HTTP server to provide REST API access to the
knowledge graph analytics engine.

The server provides endpoints for:
- Graph views with category, maturity and hub filters
- Opportunity, hub, repurposing and cluster analytics
- Free-text search and semantic neighbors
- Snapshot reload and health checks

Configuration can be provided through config files, environment variables, or command-line flags.`,
	RunE: runServer,
}

var (
	serverHost string
	serverPort int
	serverMode string
)

func init() {
	rootCmd.AddCommand(serverCmd)

	// Server-specific flags
	serverCmd.Flags().StringVar(&serverHost, "host", "localhost", "Server host")
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Server port")
	serverCmd.Flags().StringVar(&serverMode, "mode", "debug", "Server mode (debug, release, test)")

	// Data flags
	serverCmd.Flags().String("seed", "", "Seed document to load at startup (JSON or YAML)")
	serverCmd.Flags().String("embeddings", "", "JSON file mapping entity ids to embedding vectors")

	// Embedding flags
	serverCmd.Flags().String("embedding-provider", "", "Embedding provider (openai, local, static)")
	serverCmd.Flags().String("embedding-model", "", "Embedding model")
	serverCmd.Flags().String("embedding-api-key", "", "Embedding API key")
	serverCmd.Flags().String("embedding-base-url", "", "Embedding base URL")

	// Telemetry flags
	serverCmd.Flags().Bool("telemetry", false, "Enable Parquet query telemetry")
	serverCmd.Flags().String("telemetry-parquet-path", "", "Path to directory for query telemetry")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	overrideConfigWithFlags(cmd, cfg)

	// Validate configuration
	if err := validateServerConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize the analytics client
	client, err := initializeClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize TargetScope: %w", err)
	}

	// Create and setup server
	srv := server.New(cfg, client)
	srv.Setup()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serverErrChan <- err
		}
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		fmt.Printf("\nReceived signal: %v\n", sig)

		// Create shutdown context with timeout
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Shutdown server
		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		fmt.Println("Server stopped gracefully")
		return nil
	}
}

func overrideConfigWithFlags(cmd *cobra.Command, cfg *config.Config) {
	// Server flags
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serverHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = serverPort
	}
	if cmd.Flags().Changed("mode") {
		cfg.Server.Mode = serverMode
	}

	// Data flags
	if cmd.Flags().Changed("seed") {
		cfg.Data.SeedPath, _ = cmd.Flags().GetString("seed")
	}
	if cmd.Flags().Changed("embeddings") {
		cfg.Data.EmbeddingsPath, _ = cmd.Flags().GetString("embeddings")
	}

	// Embedding flags
	if cmd.Flags().Changed("embedding-provider") {
		cfg.Embedding.Provider, _ = cmd.Flags().GetString("embedding-provider")
	}
	if cmd.Flags().Changed("embedding-model") {
		cfg.Embedding.Model, _ = cmd.Flags().GetString("embedding-model")
	}
	if cmd.Flags().Changed("embedding-api-key") {
		cfg.Embedding.APIKey, _ = cmd.Flags().GetString("embedding-api-key")
	}
	if cmd.Flags().Changed("embedding-base-url") {
		cfg.Embedding.BaseURL, _ = cmd.Flags().GetString("embedding-base-url")
	}

	// Telemetry flags
	if cmd.Flags().Changed("telemetry") {
		cfg.Telemetry.Enabled, _ = cmd.Flags().GetBool("telemetry")
	}
	if cmd.Flags().Changed("telemetry-parquet-path") {
		cfg.Telemetry.ParquetPath, _ = cmd.Flags().GetString("telemetry-parquet-path")
	}
}

func validateServerConfig(cfg *config.Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Server.Port)
	}
	if cfg.Embedding.Provider == "openai" && cfg.Embedding.APIKey == "" {
		return fmt.Errorf("embedding provider openai requires an API key")
	}
	return nil
}

// initializeClient wires the logger, embedder and seed data into a client.
func initializeClient(cfg *config.Config) (*targetscope.Client, error) {
	log := tslogger.New(cfg.Log.Level, cfg.Log.Format)

	// Query telemetry using Parquet
	if cfg.Telemetry.Enabled {
		trackingPath := cfg.Telemetry.ParquetPath
		if trackingPath == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to get user home directory: %w", err)
			}
			trackingPath = fmt.Sprintf("%s/.targetscope/telemetry", homeDir)
		}

		if err := os.MkdirAll(trackingPath, 0755); err != nil {
			return nil, fmt.Errorf("failed to create telemetry directory: %w", err)
		}

		parquetHandler, err := telemetry.NewHandler(log.Handler(), trackingPath)
		if err != nil {
			fmt.Printf("Warning: Failed to initialize query telemetry: %v\n", err)
		} else {
			log = slog.New(parquetHandler)
			fmt.Printf("Query telemetry enabled at: %s\n", trackingPath)
		}
	}

	embedderClient, err := buildEmbedder(cfg)
	if err != nil {
		return nil, err
	}

	client := targetscope.NewClient(embedderClient, log)

	// Load the startup seed, if any. An empty seed path starts the server
	// without a snapshot; data arrives via the reload endpoint.
	if cfg.Data.SeedPath != "" {
		seed, err := loader.Load(cfg.Data.SeedPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed %s: %w", cfg.Data.SeedPath, err)
		}

		vectors, err := loadEmbeddings(cfg.Data.EmbeddingsPath)
		if err != nil {
			return nil, err
		}

		warnings, err := client.Load(seed, vectors)
		if err != nil {
			return nil, fmt.Errorf("failed to load snapshot: %w", err)
		}
		for _, w := range warnings {
			log.Warn("seed record skipped",
				"kind", string(w.Kind),
				"entity_id", w.EntityID,
				"message", w.Message)
		}
	}

	if embedderClient != nil {
		fmt.Printf("Embedding provider: %s, model: %s\n", cfg.Embedding.Provider, cfg.Embedding.Model)
	}

	return client, nil
}

// buildEmbedder constructs the configured embedding client. Remote backends
// are wrapped in a circuit breaker so a degraded API degrades search instead
// of stalling it.
func buildEmbedder(cfg *config.Config) (embedder.Client, error) {
	switch cfg.Embedding.Provider {
	case "":
		return nil, nil
	case "openai":
		client := embedder.NewOpenAIClient(&cfg.Embedding)
		return embedder.NewBreakerClient(client, cfg.CircuitBreaker), nil
	case "local":
		client, err := embedder.NewLocalClient(&cfg.Embedding)
		if err != nil {
			return nil, fmt.Errorf("failed to create local embedder: %w", err)
		}
		return client, nil
	case "static":
		return embedder.NewStaticClient(0), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Embedding.Provider)
	}
}

// loadEmbeddings reads a JSON map of entity id to embedding vector.
func loadEmbeddings(path string) (map[string][]float32, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embeddings %s: %w", path, err)
	}
	var vectors map[string][]float32
	if err := json.Unmarshal(data, &vectors); err != nil {
		return nil, fmt.Errorf("failed to parse embeddings %s: %w", path, err)
	}
	return vectors, nil
}
