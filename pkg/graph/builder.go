package graph

import (
	"github.com/targetscope/targetscope/pkg/store"
	"github.com/targetscope/targetscope/pkg/types"
)

const (
	// DefaultBurden is assumed for diseases without a burden score.
	DefaultBurden = 0.5
	// DefaultStrength is assumed for associations without a strength.
	DefaultStrength = 0.5
)

// Build derives the node/edge view from a snapshot: one node per disease and
// per protein, one edge per association. Pure; recomputed whenever the
// snapshot is replaced.
func Build(snap *store.Snapshot) *types.Graph {
	g := &types.Graph{
		Nodes: make([]types.GraphNode, 0, len(snap.Diseases)+len(snap.Proteins)),
		Edges: make([]types.GraphEdge, 0, len(snap.Associations)),
	}

	for _, d := range snap.Diseases {
		burden := DefaultBurden
		if d.BurdenScore != nil {
			burden = clamp(*d.BurdenScore)
		}
		b := burden
		g.Nodes = append(g.Nodes, types.GraphNode{
			ID:       d.ID,
			Kind:     types.DiseaseNode,
			Label:    d.Name,
			Category: d.Category,
			Burden:   &b,
		})
	}

	for _, p := range snap.Proteins {
		degree := snap.DistinctDiseaseCount(p.ID)
		deg := degree
		g.Nodes = append(g.Nodes, types.GraphNode{
			ID:       p.ID,
			Kind:     types.ProteinNode,
			Label:    p.Label(),
			Degree:   &deg,
			Maturity: classifyMaturity(snap.AssociationsForProtein(p.ID)),
		})
	}

	for _, a := range snap.Associations {
		strength := DefaultStrength
		if a.Strength != nil {
			strength = clamp(*a.Strength)
		}
		g.Edges = append(g.Edges, types.GraphEdge{
			ID:       a.ID,
			Source:   a.DiseaseID,
			Target:   a.ProteinID,
			Strength: strength,
			Maturity: a.EffectiveMaturity(),
		})
	}

	return g
}

// classifyMaturity aggregates a protein's associations optimistically: an
// approved therapy anywhere dominates trial, which dominates none.
func classifyMaturity(assocs []*types.Association) types.Maturity {
	best := types.MaturityNone
	for _, a := range assocs {
		if m := a.EffectiveMaturity(); m.Rank() > best.Rank() {
			best = m
		}
	}
	return best
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
