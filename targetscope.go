package targetscope

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/targetscope/targetscope/pkg/embedder"
	"github.com/targetscope/targetscope/pkg/graph"
	"github.com/targetscope/targetscope/pkg/search"
	"github.com/targetscope/targetscope/pkg/store"
	"github.com/targetscope/targetscope/pkg/types"
)

// Service is the query surface of the analytics engine. All operations are
// read-only views over the active snapshot; Load is the single mutation
// point and replaces the snapshot wholesale.
type Service interface {
	// Load validates seed into a new snapshot and makes it the active one.
	// Vectors optionally supplies externally computed embeddings keyed by
	// entity id. Returned warnings describe skipped records.
	Load(seed *types.SeedData, vectors map[string][]float32) ([]types.Warning, error)

	// Graph returns the filtered node/edge view of the active snapshot.
	Graph(filter graph.FilterSpec) (*types.Graph, error)

	// Opportunities returns the top therapeutic gaps by gap score.
	Opportunities(limit int) ([]types.Opportunity, []types.Warning, error)

	// Hubs returns proteins linked to at least minDegree distinct diseases.
	Hubs(minDegree int) ([]types.Hub, error)

	// RepurposingCandidates returns approved-therapy reuse opportunities.
	RepurposingCandidates(limit int) ([]types.RepurposingCandidate, []types.Warning, error)

	// DiseaseClusters returns disease pairs sharing protein targets.
	DiseaseClusters(minShared int) ([]types.DiseaseCluster, error)

	// MultiIndicationProteins returns validated multi-indication targets.
	MultiIndicationProteins(minIndications int) ([]types.MultiIndicationProtein, error)

	// Search answers a free-text query with a ranked, deduplicated list.
	Search(ctx context.Context, query string, limit int) ([]types.SearchResult, error)

	// Neighbors returns the entities most related to the seed entity.
	Neighbors(seedID string, count int) ([]types.SearchResult, error)

	// Disease returns a disease joined with its associations and proteins.
	Disease(id string) (*types.DiseaseDetail, error)

	// Protein returns a protein joined with diseases, therapies and trials.
	Protein(id string) (*types.ProteinDetail, error)

	// Stats summarizes the active snapshot.
	Stats() (store.Stats, error)
}

// session bundles a snapshot with the artifacts derived from it. Deriving
// everything before the swap keeps replacement atomic: an in-flight query
// sees either the old session in its entirety or the new one, never a mix.
type session struct {
	snap     *store.Snapshot
	graph    *types.Graph
	searcher *search.Searcher
	emb      *search.EmbeddingSet
}

// Client implements Service over an in-memory snapshot.
type Client struct {
	current  atomic.Pointer[session]
	embedder embedder.Client
	logger   *slog.Logger
}

// NewClient creates a client. The embedder may be nil; search then runs on
// its lexical strategies only.
func NewClient(embedderClient embedder.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		embedder: embedderClient,
		logger:   logger,
	}
}

// Load implements Service.
func (c *Client) Load(seed *types.SeedData, vectors map[string][]float32) ([]types.Warning, error) {
	snap, err := store.NewSnapshot(seed)
	if err != nil {
		return nil, err
	}

	sess := &session{
		snap:     snap,
		graph:    graph.Build(snap),
		searcher: search.New(snap),
		emb: &search.EmbeddingSet{
			Vectors: vectors,
			Client:  c.embedder,
		},
	}
	c.current.Store(sess)

	c.logger.Info("snapshot loaded",
		"snapshot_id", snap.ID,
		"diseases", len(snap.Diseases),
		"proteins", len(snap.Proteins),
		"associations", len(snap.Associations),
		"warnings", len(snap.Warnings))

	return snap.Warnings, nil
}

// Stats implements Service.
func (c *Client) Stats() (store.Stats, error) {
	sess := c.current.Load()
	if sess == nil {
		return store.Stats{}, types.ErrNoSnapshot
	}
	return sess.snap.Stats(), nil
}

// active returns the current session or ErrNoSnapshot.
func (c *Client) active() (*session, error) {
	sess := c.current.Load()
	if sess == nil {
		return nil, types.ErrNoSnapshot
	}
	return sess, nil
}
