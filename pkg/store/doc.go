// Package store builds immutable, indexed snapshots of the entity
// collection.
//
// A Snapshot is constructed once from a SeedData document and never mutated.
// Validation happens here, at the load boundary: records with missing
// required fields, out-of-range scores, or dangling references are skipped
// and reported as warnings so that every downstream component can assume a
// fully resolved, fully typed view. The facade replaces the active snapshot
// by swapping a single pointer, so concurrent readers always observe one
// coherent collection.
package store
