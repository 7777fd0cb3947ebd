// Package loader decodes seed-data documents produced by the external data
// acquisition pipeline. Decoding failures are hard errors: a malformed seed
// must fail loudly rather than load a misleading partial collection.
// Per-record problems are not handled here; the store reports those as
// warnings during snapshot construction.
package loader
