// Package types defines the entity records, derived graph views, and result
// structures shared across the targetscope engine.
//
// The five entity kinds (Disease, Protein, Association, Therapy,
// ClinicalTrial) are pure data: they carry no behavior beyond small display
// and defaulting helpers. All identifiers are opaque strings, unique within
// their kind. Records are validated once at load time; every component
// downstream operates on the resulting fully-typed snapshot and treats it as
// read-only.
package types
