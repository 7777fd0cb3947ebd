package search

import "strings"

// lexicalMatches finds exact and prefix matches on name and symbol fields.
// Exact matches score 1.0, prefix matches 0.9: the highest-confidence band.
func (s *Searcher) lexicalMatches(query string) map[int]float64 {
	q := strings.ToLower(query)
	out := make(map[int]float64)

	for i := range s.docs {
		for _, name := range s.docs[i].names {
			switch {
			case name == q:
				out[i] = lexicalExactScore
			case strings.HasPrefix(name, q):
				if out[i] < lexicalPrefixScore {
					out[i] = lexicalPrefixScore
				}
			}
		}
	}
	return out
}
