// Package embedder provides embedding vector clients: an OpenAI-compatible
// client, an in-process model for offline deployments, a deterministic
// static client for tests, and a circuit-breaker wrapper. Embeddings are an
// optional capability everywhere they are consumed; every failure mode here
// reads as "unavailable" downstream, never as a query error.
package embedder
