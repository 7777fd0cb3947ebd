package types

// NodeKind distinguishes the two node species in the derived graph.
type NodeKind string

const (
	// DiseaseNode is a graph node backed by a Disease record.
	DiseaseNode NodeKind = "disease"
	// ProteinNode is a graph node backed by a Protein record.
	ProteinNode NodeKind = "protein"
)

// GraphNode is the derived node view of a disease or protein. Disease nodes
// carry a burden; protein nodes carry a degree and a single aggregated
// maturity classification.
type GraphNode struct {
	ID       string   `json:"id"`
	Kind     NodeKind `json:"type"`
	Label    string   `json:"label"`
	Category string   `json:"category,omitempty"`
	Burden   *float64 `json:"burden,omitempty"`
	Degree   *int     `json:"degree,omitempty"`
	Maturity Maturity `json:"maturity,omitempty"`
}

// GraphEdge is the derived edge view of one Association.
type GraphEdge struct {
	ID       string   `json:"id"`
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Strength float64  `json:"strength"`
	Maturity Maturity `json:"maturity"`
}

// Graph is a node/edge view over one snapshot. It is a pure function of the
// snapshot and is recomputed when the snapshot is replaced.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}
