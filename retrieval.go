package targetscope

import (
	"context"
	"strings"
	"time"

	"github.com/targetscope/targetscope/pkg/search"
	"github.com/targetscope/targetscope/pkg/types"
)

// Search implements Service. A blank query returns no results; an unset or
// negative limit falls back to search.DefaultLimit.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]types.SearchResult, error) {
	sess, err := c.active()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = search.DefaultLimit
	}

	start := time.Now()
	results := sess.searcher.Search(ctx, query, limit, sess.emb)

	c.logger.Debug("search completed",
		"operation", "search",
		"query", query,
		"results", len(results),
		"duration_ms", time.Since(start).Milliseconds())

	return results, nil
}

// Neighbors implements Service. It ranks by vector similarity when the seed
// entity has an embedding and degrades to graph structure otherwise.
func (c *Client) Neighbors(seedID string, count int) ([]types.SearchResult, error) {
	sess, err := c.active()
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		count = search.DefaultLimit
	}

	start := time.Now()
	results, err := sess.searcher.SemanticNeighbors(seedID, count, sess.emb)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("neighbor lookup completed",
		"operation", "neighbors",
		"query", seedID,
		"results", len(results),
		"duration_ms", time.Since(start).Milliseconds())

	return results, nil
}
