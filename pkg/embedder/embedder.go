package embedder

import "context"

// Client generates embedding vectors for text. Implementations must be safe
// for concurrent use. The search layer treats any Embed failure as
// "embeddings unavailable" and falls back to lexical strategies, so clients
// should return errors rather than block indefinitely.
type Client interface {
	// Embed generates embeddings for the given texts, one vector per input.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// EmbedSingle generates an embedding for a single text.
	EmbedSingle(ctx context.Context, text string) ([]float32, error)
	// Dimensions returns the vector width produced by this client.
	Dimensions() int
}

// Config holds shared embedder configuration.
type Config struct {
	Provider   string `mapstructure:"provider"` // openai, local, static
	Model      string `mapstructure:"model"`
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	Dimensions int    `mapstructure:"dimensions"`
}
