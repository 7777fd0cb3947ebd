package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/targetscope/targetscope/pkg/graph"
	"github.com/targetscope/targetscope/pkg/store"
	"github.com/targetscope/targetscope/pkg/types"
)

func f(v float64) *float64 { return &v }

func buildSnapshot(t *testing.T, seed *types.SeedData) *store.Snapshot {
	t.Helper()
	snap, err := store.NewSnapshot(seed)
	require.NoError(t, err)
	return snap
}

func testSeed() *types.SeedData {
	return &types.SeedData{
		Diseases: []*types.Disease{
			{ID: "d1", Name: "Rheumatoid arthritis", Category: "autoimmune", BurdenScore: f(0.8)},
			{ID: "d2", Name: "Psoriasis", Category: "autoimmune"},
			{ID: "d3", Name: "Glioblastoma", Category: "oncology", BurdenScore: f(0.9)},
		},
		Proteins: []*types.Protein{
			{ID: "p1", Symbol: "TNF"},
			{ID: "p2", Symbol: "EGFR"},
			{ID: "p3", Symbol: "ORPHAN"},
		},
		Associations: []*types.Association{
			{ID: "a1", DiseaseID: "d1", ProteinID: "p1", Strength: f(0.9), Maturity: types.MaturityApproved},
			{ID: "a2", DiseaseID: "d2", ProteinID: "p1", Strength: f(0.7), Maturity: types.MaturityTrial},
			{ID: "a3", DiseaseID: "d3", ProteinID: "p2"},
		},
	}
}

func findNode(g *types.Graph, id string) *types.GraphNode {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

func TestBuildNodesAndEdges(t *testing.T) {
	snap := buildSnapshot(t, testSeed())
	g := graph.Build(snap)

	assert.Len(t, g.Nodes, 6)
	assert.Len(t, g.Edges, 3)

	d1 := findNode(g, "d1")
	require.NotNil(t, d1)
	assert.Equal(t, types.DiseaseNode, d1.Kind)
	assert.Equal(t, "Rheumatoid arthritis", d1.Label)
	assert.Equal(t, "autoimmune", d1.Category)
	require.NotNil(t, d1.Burden)
	assert.InDelta(t, 0.8, *d1.Burden, 1e-9)

	p1 := findNode(g, "p1")
	require.NotNil(t, p1)
	assert.Equal(t, types.ProteinNode, p1.Kind)
	assert.Equal(t, "TNF", p1.Label)
	require.NotNil(t, p1.Degree)
	assert.Equal(t, 2, *p1.Degree)
}

func TestBuildDefaults(t *testing.T) {
	snap := buildSnapshot(t, testSeed())
	g := graph.Build(snap)

	// Disease without a burden score gets the default.
	d2 := findNode(g, "d2")
	require.NotNil(t, d2)
	require.NotNil(t, d2.Burden)
	assert.InDelta(t, graph.DefaultBurden, *d2.Burden, 1e-9)

	// Association without strength gets the default on its edge.
	var a3 *types.GraphEdge
	for i := range g.Edges {
		if g.Edges[i].ID == "a3" {
			a3 = &g.Edges[i]
		}
	}
	require.NotNil(t, a3)
	assert.InDelta(t, graph.DefaultStrength, a3.Strength, 1e-9)
	assert.Equal(t, types.MaturityNone, a3.Maturity)
	assert.Equal(t, "d3", a3.Source)
	assert.Equal(t, "p2", a3.Target)
}

func TestBuildMaturityClassification(t *testing.T) {
	snap := buildSnapshot(t, testSeed())
	g := graph.Build(snap)

	// p1 has approved and trial associations: approved dominates.
	p1 := findNode(g, "p1")
	require.NotNil(t, p1)
	assert.Equal(t, types.MaturityApproved, p1.Maturity)

	// p2 has one maturity-less association.
	p2 := findNode(g, "p2")
	require.NotNil(t, p2)
	assert.Equal(t, types.MaturityNone, p2.Maturity)

	// p3 has no associations at all.
	p3 := findNode(g, "p3")
	require.NotNil(t, p3)
	assert.Equal(t, types.MaturityNone, p3.Maturity)
	require.NotNil(t, p3.Degree)
	assert.Equal(t, 0, *p3.Degree)
}
