package search

import (
	"math"
	"strings"
)

// invertedIndex maps terms to the documents containing them, with term
// counts for frequency ranking. Built once per snapshot, read-only after.
type invertedIndex struct {
	postings map[string]map[int]int // term -> doc index -> count
	docLen   map[int]int
	docCount int
}

func newInvertedIndex() *invertedIndex {
	return &invertedIndex{
		postings: make(map[string]map[int]int),
		docLen:   make(map[int]int),
	}
}

// add indexes every token of the given fields under the document.
func (x *invertedIndex) add(doc int, fields []string) {
	x.docCount++
	for _, field := range fields {
		for _, term := range tokenize(field) {
			m, ok := x.postings[term]
			if !ok {
				m = make(map[int]int)
				x.postings[term] = m
			}
			m[doc]++
			x.docLen[doc]++
		}
	}
}

// termFrequencyMatches scores documents by tf-idf over the query terms and
// maps the raw scores into the 0.2-0.7 band, normalized against the best
// candidate for this query. Rare discriminative terms dominate.
func (s *Searcher) termFrequencyMatches(query string) map[int]float64 {
	terms := tokenize(query)
	if len(terms) == 0 {
		return nil
	}

	raw := make(map[int]float64)
	for _, term := range terms {
		posting, ok := s.index.postings[term]
		if !ok {
			continue
		}
		idf := math.Log(1 + float64(s.index.docCount)/float64(len(posting)))
		for doc, count := range posting {
			tf := float64(count) / float64(s.index.docLen[doc])
			raw[doc] += tf * idf
		}
	}
	if len(raw) == 0 {
		return nil
	}

	var max float64
	for _, v := range raw {
		if v > max {
			max = v
		}
	}

	out := make(map[int]float64, len(raw))
	for doc, v := range raw {
		out[doc] = tfFloor + (tfCeil-tfFloor)*(v/max)
	}
	return out
}

// tokenize lowercases and splits on non-alphanumeric runs.
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}
