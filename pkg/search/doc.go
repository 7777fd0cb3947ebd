// Package search answers free-text and find-similar queries over one
// snapshot of the entity collection.
//
// Four strategies run over the same index in fixed precedence and are
// merged rather than short-circuited: lexical exact/prefix matching, fuzzy
// edit-distance matching, term-frequency ranking over an inverted index, and
// cosine similarity over externally supplied embedding vectors. Each
// strategy scores into its own band; the merge takes the maximum score per
// entity. The semantic layer is strictly optional: searches degrade to the
// first three strategies whenever embeddings are missing, and a search never
// errors for that reason alone. Results are deterministic for identical
// input, with entity id breaking score ties.
package search
