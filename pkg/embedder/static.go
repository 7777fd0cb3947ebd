package embedder

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
)

// StaticClient is a deterministic, dependency-free embedder: each token
// hashes into a fixed-width bag-of-words vector. Texts sharing tokens get
// similar vectors, which is enough for tests and offline runs; it is not a
// substitute for a real model.
type StaticClient struct {
	dimensions int
}

// NewStaticClient creates a static embedder with the given vector width.
func NewStaticClient(dimensions int) *StaticClient {
	if dimensions <= 0 {
		dimensions = 64
	}
	return &StaticClient{dimensions: dimensions}
}

// Embed generates embeddings for the given texts.
func (c *StaticClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, t := range texts {
		vectors[i] = c.vector(t)
	}
	return vectors, nil
}

// EmbedSingle generates an embedding for a single text.
func (c *StaticClient) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	return c.vector(text), nil
}

// Dimensions returns the vector width.
func (c *StaticClient) Dimensions() int {
	return c.dimensions
}

func (c *StaticClient) vector(text string) []float32 {
	v := make([]float32, c.dimensions)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(token))
		v[int(h.Sum32())%c.dimensions]++
	}
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range v {
			v[i] = float32(float64(v[i]) / norm)
		}
	}
	return v
}
