// Package targetscope provides an in-memory biomedical knowledge graph
// analytics library for Go.
//
// TargetScope loads a seed dataset of diseases, proteins, associations,
// therapies and clinical trials into an immutable snapshot, then answers
// graph, scoring and retrieval queries over it. Reloading swaps the whole
// snapshot atomically, so concurrent readers never observe a half-built
// view.
//
// # Basic Usage
//
// Create a client, load a seed and query it:
//
//	// Create an embedder (optional; pass nil to skip semantic search)
//	embConfig := embedder.Config{Model: "text-embedding-3-small"}
//	embedderClient := embedder.NewOpenAIEmbedder("your-api-key", embConfig)
//
//	client := targetscope.NewClient(embedderClient, slog.Default())
//
//	seed, err := loader.Load("seed.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	warnings, err := client.Load(seed, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, w := range warnings {
//		log.Printf("skipped %s: %s", w.EntityID, w.Message)
//	}
//
// # Analytics
//
// The scoring surface ranks therapeutic opportunities, hub proteins and
// drug repurposing candidates:
//
//	opportunities, _, err := client.Opportunities(10)
//	hubs, err := client.Hubs(5)
//	candidates, _, err := client.RepurposingCandidates(10)
//
// # Searching
//
// Search runs lexical, fuzzy, term-frequency and semantic strategies over
// the snapshot and merges them into one ranked list:
//
//	results, err := client.Search(ctx, "alzheimer", 10)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, r := range results {
//		fmt.Printf("%s (%.2f)\n", r.Label, r.Score)
//	}
//
// Semantic strategies degrade gracefully: without embeddings, Search still
// answers from the lexical strategies, and Neighbors falls back to graph
// structure.
//
// # Error Handling
//
// The library provides typed errors for common scenarios:
//
//   - types.ErrNoSnapshot: Returned when no seed has been loaded yet
//   - types.ErrUnknownEntity: Returned when a requested entity doesn't exist
//   - types.ErrInvalidSeed: Returned when a seed document is empty or malformed
//
// # Architecture
//
// The library follows a modular architecture:
//
//   - pkg/store: Validated immutable snapshots of the seed data
//   - pkg/graph: Graph projection and filtering
//   - pkg/scoring: Gap, hub and repurposing analytics
//   - pkg/search: Multi-strategy retrieval
//   - pkg/embedder: Embedding model client interfaces
//   - pkg/types: Core type definitions
//
// This design allows easy extension with additional embedding services and
// seed formats.
package targetscope
