package search

import (
	"context"
	"math"
	"sort"

	"github.com/targetscope/targetscope/pkg/embedder"
	"github.com/targetscope/targetscope/pkg/types"
)

// EmbeddingSet carries externally supplied entity vectors plus an optional
// client for embedding query text. Either part may be absent; consumers fall
// back to non-semantic strategies when it is.
type EmbeddingSet struct {
	// Vectors maps entity id to its embedding.
	Vectors map[string][]float32
	// Client embeds query text. Nil disables the semantic search strategy
	// but not vector-to-vector neighbor lookups.
	Client embedder.Client
}

func (e *EmbeddingSet) hasVectors() bool {
	return e != nil && len(e.Vectors) > 0
}

// semanticMatches ranks candidates by cosine similarity between the query
// embedding and supplied entity vectors, scoring into the 0.3-0.9 band.
// Any missing capability (no set, no vectors, no client, embed failure)
// silently yields no candidates; the other strategies still produce a
// complete result.
func (s *Searcher) semanticMatches(ctx context.Context, query string, emb *EmbeddingSet) map[int]float64 {
	if !emb.hasVectors() || emb.Client == nil {
		return nil
	}
	queryVec, err := emb.Client.EmbedSingle(ctx, query)
	if err != nil || len(queryVec) == 0 {
		return nil
	}

	out := make(map[int]float64)
	for i := range s.docs {
		vec, ok := emb.Vectors[s.docs[i].id]
		if !ok {
			continue
		}
		cos := CosineSimilarity(queryVec, vec)
		if cos <= 0 {
			continue
		}
		score := semanticFloor + (semanticCeil-semanticFloor)*cos
		if score > semanticCeil {
			score = semanticCeil
		}
		out[i] = score
	}
	return out
}

// SemanticNeighbors returns the top-count entities most similar to the seed.
// With embeddings it ranks by cosine similarity; without, it falls back to a
// structural proxy: direct association partners by edge strength, then
// same-kind entities by shared-neighbor count for any remaining slots.
// The seed itself is never returned.
func (s *Searcher) SemanticNeighbors(seedID string, count int, emb *EmbeddingSet) ([]types.SearchResult, error) {
	seedIdx, ok := s.byID[seedID]
	if !ok {
		return nil, types.ErrUnknownEntity
	}
	if count <= 0 {
		count = DefaultLimit
	}

	if emb.hasVectors() {
		if seedVec, ok := emb.Vectors[seedID]; ok {
			return s.vectorNeighbors(seedIdx, seedVec, count, emb), nil
		}
	}
	return s.structuralNeighbors(seedIdx, count), nil
}

func (s *Searcher) vectorNeighbors(seedIdx int, seedVec []float32, count int, emb *EmbeddingSet) []types.SearchResult {
	var results []types.SearchResult
	for i := range s.docs {
		if i == seedIdx {
			continue
		}
		vec, ok := emb.Vectors[s.docs[i].id]
		if !ok {
			continue
		}
		cos := CosineSimilarity(seedVec, vec)
		if cos < 0 {
			cos = 0
		}
		results = append(results, s.result(i, cos))
	}
	sortAndTruncate(&results, count)
	return results
}

// structuralNeighbors ranks direct graph partners by edge strength, then
// fills remaining slots with same-kind entities sharing neighbors with the
// seed, ranked by shared count.
func (s *Searcher) structuralNeighbors(seedIdx int, count int) []types.SearchResult {
	seed := s.docs[seedIdx]

	// Strongest edge per direct partner.
	direct := make(map[string]float64)
	neighborSet := make(map[string]struct{})
	for _, a := range s.associationsFor(seed) {
		partner := a.ProteinID
		if seed.kind == types.ProteinNode {
			partner = a.DiseaseID
		}
		neighborSet[partner] = struct{}{}
		strength := 0.5
		if a.Strength != nil {
			strength = *a.Strength
		}
		if strength > direct[partner] {
			direct[partner] = strength
		}
	}

	var results []types.SearchResult
	for id, strength := range direct {
		if idx, ok := s.byID[id]; ok {
			results = append(results, s.result(idx, strength))
		}
	}
	sortAndTruncate(&results, count)
	if len(results) >= count {
		return results
	}

	// Remaining slots: same-kind entities by shared-neighbor count.
	shared := make(map[string]int)
	for i := range s.docs {
		doc := s.docs[i]
		if i == seedIdx || doc.kind != seed.kind {
			continue
		}
		var n int
		for _, a := range s.associationsFor(doc) {
			partner := a.ProteinID
			if doc.kind == types.ProteinNode {
				partner = a.DiseaseID
			}
			if _, ok := neighborSet[partner]; ok {
				n++
			}
		}
		if n > 0 {
			shared[doc.id] = n
		}
	}

	var maxShared int
	for _, n := range shared {
		if n > maxShared {
			maxShared = n
		}
	}

	var secondary []types.SearchResult
	for id, n := range shared {
		idx := s.byID[id]
		// Scored below the direct band so structural cousins never outrank
		// direct partners.
		score := 0.5 * float64(n) / float64(maxShared)
		secondary = append(secondary, s.result(idx, score))
	}
	sort.SliceStable(secondary, func(i, j int) bool {
		if shared[secondary[i].ID] != shared[secondary[j].ID] {
			return shared[secondary[i].ID] > shared[secondary[j].ID]
		}
		return secondary[i].ID < secondary[j].ID
	})

	for _, r := range secondary {
		if len(results) >= count {
			break
		}
		results = append(results, r)
	}
	return results
}

func (s *Searcher) associationsFor(doc document) []*types.Association {
	if doc.kind == types.ProteinNode {
		return s.snap.AssociationsForProtein(doc.id)
	}
	return s.snap.AssociationsForDisease(doc.id)
}

func (s *Searcher) result(idx int, score float64) types.SearchResult {
	doc := s.docs[idx]
	return types.SearchResult{
		ID:      doc.id,
		Kind:    doc.kind,
		Label:   doc.label,
		Score:   score,
		Snippet: doc.snippet,
	}
}

func sortAndTruncate(results *[]types.SearchResult, limit int) {
	rs := *results
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Score != rs[j].Score {
			return rs[i].Score > rs[j].Score
		}
		return rs[i].ID < rs[j].ID
	})
	if len(rs) > limit {
		rs = rs[:limit]
	}
	*results = rs
}

// CosineSimilarity computes cosine similarity between two vectors, returning
// 0 for mismatched lengths or zero vectors.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
