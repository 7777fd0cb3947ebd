package search

import (
	"context"
	"sort"
	"strings"

	"github.com/targetscope/targetscope/pkg/store"
	"github.com/targetscope/targetscope/pkg/types"
)

// Strategy identifies one retrieval strategy.
type Strategy string

const (
	// Lexical matches names and symbols exactly or by prefix.
	Lexical Strategy = "lexical"
	// Fuzzy matches edit-distance-tolerant names.
	Fuzzy Strategy = "fuzzy"
	// TermFrequency ranks over the inverted index of names, categories,
	// families and evidence text.
	TermFrequency Strategy = "term_frequency"
	// Semantic ranks by cosine similarity over supplied embedding vectors.
	Semantic Strategy = "semantic"
)

// Score bands per strategy. Strategies are independent evidence: the merge
// takes the maximum contributing score per id, never an average, so a strong
// single-strategy match is not diluted by weak ones.
const (
	lexicalExactScore  = 1.0
	lexicalPrefixScore = 0.9
	fuzzyCeil          = 0.8
	fuzzyFloor         = 0.4
	tfCeil             = 0.7
	tfFloor            = 0.2
	semanticCeil       = 0.9
	semanticFloor      = 0.3

	// DefaultLimit caps result lists when the caller passes no limit.
	DefaultLimit = 10
)

// document is the searchable view of one disease or protein.
type document struct {
	id      string
	kind    types.NodeKind
	label   string
	names   []string // lowercased lexical candidates
	snippet string
}

// Searcher answers free-text and find-similar queries over one snapshot. It
// is built once per snapshot and is safe for concurrent use; all state is
// read-only after construction.
type Searcher struct {
	snap  *store.Snapshot
	docs  []document
	byID  map[string]int
	index *invertedIndex
}

// New indexes the snapshot for retrieval.
func New(snap *store.Snapshot) *Searcher {
	s := &Searcher{
		snap: snap,
		byID: make(map[string]int),
	}

	evidence := make(map[string][]string)
	for _, a := range snap.Associations {
		if a.Evidence == "" {
			continue
		}
		evidence[a.DiseaseID] = append(evidence[a.DiseaseID], a.Evidence)
		evidence[a.ProteinID] = append(evidence[a.ProteinID], a.Evidence)
	}

	for _, d := range snap.Diseases {
		doc := document{
			id:      d.ID,
			kind:    types.DiseaseNode,
			label:   d.Name,
			names:   lowerAll(d.Name),
			snippet: snippetFor(d.Name, d.Category),
		}
		s.docs = append(s.docs, doc)
		s.byID[d.ID] = len(s.docs) - 1
	}
	for _, p := range snap.Proteins {
		doc := document{
			id:      p.ID,
			kind:    types.ProteinNode,
			label:   p.Label(),
			names:   lowerAll(p.Symbol, p.Name, p.UniprotID),
			snippet: snippetFor(p.Label(), p.Family),
		}
		s.docs = append(s.docs, doc)
		s.byID[p.ID] = len(s.docs) - 1
	}

	s.index = newInvertedIndex()
	for i := range s.docs {
		doc := &s.docs[i]
		fields := append([]string(nil), doc.names...)
		switch doc.kind {
		case types.DiseaseNode:
			if d := snap.Disease(doc.id); d != nil {
				fields = append(fields, d.Category)
			}
		case types.ProteinNode:
			if p := snap.Protein(doc.id); p != nil {
				fields = append(fields, p.Family)
				fields = append(fields, p.Pathways...)
			}
		}
		fields = append(fields, evidence[doc.id]...)
		s.index.add(i, fields)
	}

	return s
}

// Search runs the layered strategy set over the index and merges the
// candidates. Strategies run in fixed precedence but are merged, not
// short-circuited; missing embeddings silently skip the semantic layer so a
// search never fails for that reason alone. Results are sorted by merged
// score descending with entity id as the deterministic tie-break.
func (s *Searcher) Search(ctx context.Context, query string, limit int, emb *EmbeddingSet) []types.SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return []types.SearchResult{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	merged := make(map[string]float64)
	record := func(idx int, score float64) {
		id := s.docs[idx].id
		if score > merged[id] {
			merged[id] = score
		}
	}

	for idx, score := range s.lexicalMatches(query) {
		record(idx, score)
	}
	for idx, score := range s.fuzzyMatches(query) {
		record(idx, score)
	}
	for idx, score := range s.termFrequencyMatches(query) {
		record(idx, score)
	}
	for idx, score := range s.semanticMatches(ctx, query, emb) {
		record(idx, score)
	}

	results := make([]types.SearchResult, 0, len(merged))
	for id, score := range merged {
		doc := s.docs[s.byID[id]]
		results = append(results, types.SearchResult{
			ID:      id,
			Kind:    doc.kind,
			Label:   doc.label,
			Score:   score,
			Snippet: doc.snippet,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func lowerAll(names ...string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		out = append(out, strings.ToLower(n))
	}
	return out
}

func snippetFor(label, qualifier string) string {
	if qualifier == "" {
		return label
	}
	return label + " (" + qualifier + ")"
}
