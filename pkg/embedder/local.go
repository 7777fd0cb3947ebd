package embedder

import (
	"context"
	"fmt"

	embed "github.com/soundprediction/go-embedeverything/pkg/embedder"
)

// LocalClient implements Client over an in-process sentence-transformer
// model, for deployments without network access to an embedding API.
type LocalClient struct {
	client *embed.Embedder
	config *Config
}

// NewLocalClient loads the named local model.
func NewLocalClient(config *Config) (*LocalClient, error) {
	if config.Model == "" {
		config.Model = "all-MiniLM-L6-v2"
	}
	if config.Dimensions == 0 {
		config.Dimensions = 384
	}
	client, err := embed.NewEmbedder(config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to load local embedder: %w", err)
	}
	return &LocalClient{client: client, config: config}, nil
}

// Embed generates embeddings for the given texts.
func (c *LocalClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	// The local model does not support context yet.
	vectors, err := c.client.Embed(texts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %w", err)
	}
	return vectors, nil
}

// EmbedSingle generates an embedding for a single text.
func (c *LocalClient) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}
	return vectors[0], nil
}

// Dimensions returns the vector width.
func (c *LocalClient) Dimensions() int {
	return c.config.Dimensions
}
