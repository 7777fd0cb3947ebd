package graph

import "github.com/targetscope/targetscope/pkg/types"

// FilterSpec selects a subgraph. Criteria combine with logical AND across
// dimensions; within a dimension the selected values combine with OR. A zero
// spec is the identity transform.
type FilterSpec struct {
	// Categories restricts disease nodes to the given categories. Protein
	// nodes pass through unaffected: a protein has no single category.
	Categories []string `json:"category,omitempty"`
	// Maturities restricts edges by their association's maturity. A protein
	// node survives only if a surviving edge touches it, unless it has
	// degree 0 and no maturity filter is active.
	Maturities []types.Maturity `json:"maturity,omitempty"`
	// HubMinDegree restricts protein nodes to degree >= the threshold.
	// Disease nodes are unaffected.
	HubMinDegree *int `json:"hub_min_degree,omitempty"`
}

// IsZero reports whether no criterion is set.
func (f FilterSpec) IsZero() bool {
	return len(f.Categories) == 0 && len(f.Maturities) == 0 && f.HubMinDegree == nil
}

// Filter applies spec to g and returns a newly allocated subgraph. The input
// graph is never mutated, node and edge order is preserved, and applying the
// same spec twice yields the same result.
func Filter(g *types.Graph, spec FilterSpec) *types.Graph {
	if g == nil {
		return &types.Graph{}
	}
	if spec.IsZero() {
		out := &types.Graph{
			Nodes: append([]types.GraphNode(nil), g.Nodes...),
			Edges: append([]types.GraphEdge(nil), g.Edges...),
		}
		return out
	}

	categories := toSet(spec.Categories)
	maturities := make(map[types.Maturity]struct{}, len(spec.Maturities))
	for _, m := range spec.Maturities {
		maturities[m] = struct{}{}
	}

	// Disease survival depends only on the category criterion, so it is
	// decided first. An edge survives only if it passes the maturity
	// criterion and its disease endpoint survived; proteins are then kept on
	// the strength of surviving edges alone, which makes a second application
	// of the same spec a no-op.
	diseases := make(map[string]struct{})
	for _, n := range g.Nodes {
		if n.Kind != types.DiseaseNode {
			continue
		}
		if len(categories) > 0 {
			if _, ok := categories[n.Category]; !ok {
				continue
			}
		}
		diseases[n.ID] = struct{}{}
	}

	edgePass := func(e types.GraphEdge) bool {
		if _, ok := diseases[e.Source]; !ok {
			return false
		}
		if len(maturities) == 0 {
			return true
		}
		_, ok := maturities[e.Maturity]
		return ok
	}

	touched := make(map[string]struct{})
	for _, e := range g.Edges {
		if edgePass(e) {
			touched[e.Source] = struct{}{}
			touched[e.Target] = struct{}{}
		}
	}

	surviving := make(map[string]struct{}, len(g.Nodes))
	nodes := make([]types.GraphNode, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		switch n.Kind {
		case types.DiseaseNode:
			if _, ok := diseases[n.ID]; !ok {
				continue
			}
		case types.ProteinNode:
			if spec.HubMinDegree != nil {
				if n.Degree == nil || *n.Degree < *spec.HubMinDegree {
					continue
				}
			}
			if len(maturities) > 0 {
				if _, ok := touched[n.ID]; !ok {
					continue
				}
			}
		}
		surviving[n.ID] = struct{}{}
		nodes = append(nodes, n)
	}

	edges := make([]types.GraphEdge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if !edgePass(e) {
			continue
		}
		if _, ok := surviving[e.Source]; !ok {
			continue
		}
		if _, ok := surviving[e.Target]; !ok {
			continue
		}
		edges = append(edges, e)
	}

	return &types.Graph{Nodes: nodes, Edges: edges}
}

func toSet(vals []string) map[string]struct{} {
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set
}
