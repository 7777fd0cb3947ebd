package search

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// fuzzyMatches finds edit-distance-tolerant matches against name fields and
// their individual tokens, catching typos and partial tokens. Scores land in
// the 0.4-0.8 band: 0.8 for distance zero, stepping down per edit.
func (s *Searcher) fuzzyMatches(query string) map[int]float64 {
	q := strings.ToLower(query)
	if len(q) < 3 {
		// Too short for edit distance to mean anything.
		return nil
	}
	maxDist := 1
	if len(q) > 5 {
		maxDist = 2
	}

	out := make(map[int]float64)
	for i := range s.docs {
		var best float64
		for _, name := range s.docs[i].names {
			candidates := append(tokenize(name), name)
			for _, cand := range candidates {
				if score := fuzzyScore(q, cand, maxDist); score > best {
					best = score
				}
			}
		}
		if best >= fuzzyFloor {
			out[i] = best
		}
	}
	return out
}

func fuzzyScore(q, cand string, maxDist int) float64 {
	if cand == "" {
		return 0
	}
	if cand == q {
		return fuzzyCeil
	}
	// A token extending the query (or vice versa) is a partial-token match.
	if strings.HasPrefix(cand, q) || strings.HasPrefix(q, cand) {
		return 0.7
	}
	dist := levenshtein.ComputeDistance(q, cand)
	if dist > maxDist {
		return 0
	}
	score := fuzzyCeil - 0.15*float64(dist)
	if score < fuzzyFloor {
		return fuzzyFloor
	}
	return score
}
