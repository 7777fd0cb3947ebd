package embedder

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerClient wraps a Client with a circuit breaker so that a failing
// embedding backend degrades search to its lexical strategies instead of
// adding latency to every query. An open breaker surfaces as an ordinary
// Embed error, which callers already treat as "embeddings unavailable".
type BreakerClient struct {
	inner   Client
	breaker *gobreaker.CircuitBreaker
}

// BreakerSettings tunes the circuit breaker.
type BreakerSettings struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"` // seconds
	Timeout          int     `mapstructure:"timeout"`  // seconds
	ReadyToTripRatio float64 `mapstructure:"ready_to_trip_ratio"`
}

// NewBreakerClient wraps inner with a circuit breaker.
func NewBreakerClient(inner Client, settings BreakerSettings) *BreakerClient {
	if settings.MaxRequests == 0 {
		settings.MaxRequests = 3
	}
	if settings.Timeout == 0 {
		settings.Timeout = 30
	}
	if settings.ReadyToTripRatio == 0 {
		settings.ReadyToTripRatio = 0.6
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "embedder",
		MaxRequests: settings.MaxRequests,
		Interval:    time.Duration(settings.Interval) * time.Second,
		Timeout:     time.Duration(settings.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 3 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= settings.ReadyToTripRatio
		},
	})

	return &BreakerClient{inner: inner, breaker: cb}
}

// Embed generates embeddings through the breaker.
func (c *BreakerClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.inner.Embed(ctx, texts)
	})
	if err != nil {
		return nil, err
	}
	return out.([][]float32), nil
}

// EmbedSingle generates an embedding for a single text through the breaker.
func (c *BreakerClient) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.inner.EmbedSingle(ctx, text)
	})
	if err != nil {
		return nil, err
	}
	return out.([]float32), nil
}

// Dimensions returns the underlying vector width.
func (c *BreakerClient) Dimensions() int {
	return c.inner.Dimensions()
}
