// Package graph derives the node/edge view of a snapshot and applies
// combinable subgraph filters.
//
// Build is a pure function of the snapshot: disease nodes carry burden,
// protein nodes carry distinct-disease degree and an optimistic maturity
// classification, edges carry association strength. Filter reduces a built
// graph by category, maturity, and minimum hub degree; criteria AND across
// dimensions and OR within one.
package graph
