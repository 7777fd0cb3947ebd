package targetscope_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/targetscope/targetscope"
	"github.com/targetscope/targetscope/pkg/graph"
	"github.com/targetscope/targetscope/pkg/types"
)

func f(v float64) *float64 { return &v }

func testSeed() *types.SeedData {
	return &types.SeedData{
		Diseases: []*types.Disease{
			{ID: "d1", Name: "Rheumatoid arthritis", Category: "autoimmune", BurdenScore: f(0.8)},
			{ID: "d2", Name: "Crohn disease", Category: "autoimmune", BurdenScore: f(0.6)},
			{ID: "d3", Name: "Glioblastoma", Category: "oncology", BurdenScore: f(0.9)},
		},
		Proteins: []*types.Protein{
			{ID: "p1", Symbol: "TNF", Name: "Tumor necrosis factor"},
			{ID: "p2", Symbol: "EGFR"},
		},
		Associations: []*types.Association{
			{ID: "a1", DiseaseID: "d1", ProteinID: "p1", Strength: f(0.9), Maturity: types.MaturityApproved, Evidence: "TNF drives synovial inflammation"},
			{ID: "a2", DiseaseID: "d2", ProteinID: "p1", Strength: f(0.7)},
			{ID: "a3", DiseaseID: "d3", ProteinID: "p2", Strength: f(0.8)},
		},
		Therapies: []*types.Therapy{
			{ID: "t1", Name: "Adalimumab", TargetProteinID: "p1", Status: types.MaturityApproved, Indications: []string{"Rheumatoid arthritis"}},
		},
		Trials: []*types.ClinicalTrial{
			{ID: "ct1", NctID: "NCT01", Phase: "2", TargetProteinID: "p2"},
		},
	}
}

func loadedClient(t *testing.T) *targetscope.Client {
	t.Helper()
	client := targetscope.NewClient(nil, nil)
	warnings, err := client.Load(testSeed(), nil)
	require.NoError(t, err)
	require.Empty(t, warnings)
	return client
}

func TestServiceInterface(t *testing.T) {
	var _ targetscope.Service = (*targetscope.Client)(nil)
}

func TestQueriesBeforeLoad(t *testing.T) {
	client := targetscope.NewClient(nil, nil)

	_, err := client.Graph(graph.FilterSpec{})
	assert.ErrorIs(t, err, types.ErrNoSnapshot)

	_, _, err = client.Opportunities(10)
	assert.ErrorIs(t, err, types.ErrNoSnapshot)

	_, err = client.Search(context.Background(), "tnf", 10)
	assert.ErrorIs(t, err, types.ErrNoSnapshot)

	_, err = client.Neighbors("d1", 5)
	assert.ErrorIs(t, err, types.ErrNoSnapshot)

	_, err = client.Stats()
	assert.ErrorIs(t, err, types.ErrNoSnapshot)
}

func TestLoadAndStats(t *testing.T) {
	client := loadedClient(t)

	stats, err := client.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Diseases)
	assert.Equal(t, 2, stats.Proteins)
	assert.Equal(t, 3, stats.Associations)
}

func TestGraphAndFilter(t *testing.T) {
	client := loadedClient(t)

	g, err := client.Graph(graph.FilterSpec{})
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 5)
	assert.Len(t, g.Edges, 3)

	filtered, err := client.Graph(graph.FilterSpec{Categories: []string{"oncology"}})
	require.NoError(t, err)
	assert.Len(t, filtered.Edges, 1)
}

func TestAnalyticsSurface(t *testing.T) {
	client := loadedClient(t)

	opps, warnings, err := client.Opportunities(10)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.NotEmpty(t, opps)
	// a3: 0.8 x 0.9 with no therapy beats the discounted pairs.
	assert.Equal(t, "d3", opps[0].DiseaseID)

	hubs, err := client.Hubs(2)
	require.NoError(t, err)
	require.Len(t, hubs, 1)
	assert.Equal(t, "p1", hubs[0].ProteinID)

	candidates, _, err := client.RepurposingCandidates(10)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "d2", candidates[0].TargetDiseaseID)

	clusters, err := client.DiseaseClusters(1)
	require.NoError(t, err)
	require.NotEmpty(t, clusters)

	multi, err := client.MultiIndicationProteins(1)
	require.NoError(t, err)
	require.Len(t, multi, 1)
	assert.Equal(t, "p1", multi[0].ProteinID)
}

func TestEntityDetails(t *testing.T) {
	client := loadedClient(t)

	disease, err := client.Disease("d1")
	require.NoError(t, err)
	assert.Equal(t, "Rheumatoid arthritis", disease.Disease.Name)
	require.Len(t, disease.Associations, 1)
	assert.Equal(t, "TNF", disease.Associations[0].Protein.Symbol)

	protein, err := client.Protein("p2")
	require.NoError(t, err)
	require.Len(t, protein.Diseases, 1)
	assert.Equal(t, "d3", protein.Diseases[0].Disease.ID)
	assert.Len(t, protein.Trials, 1)

	_, err = client.Disease("missing")
	assert.ErrorIs(t, err, types.ErrUnknownEntity)
	_, err = client.Protein("missing")
	assert.ErrorIs(t, err, types.ErrUnknownEntity)
}

func TestSearchAndNeighbors(t *testing.T) {
	client := loadedClient(t)

	results, err := client.Search(context.Background(), "TNF", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "p1", results[0].ID)

	blank, err := client.Search(context.Background(), "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, blank)

	neighbors, err := client.Neighbors("d1", 5)
	require.NoError(t, err)
	require.NotEmpty(t, neighbors)
	assert.Equal(t, "p1", neighbors[0].ID)

	_, err = client.Neighbors("missing", 5)
	assert.ErrorIs(t, err, types.ErrUnknownEntity)
}

func TestReloadReplacesSnapshotWholesale(t *testing.T) {
	client := loadedClient(t)

	replacement := &types.SeedData{
		Diseases: []*types.Disease{{ID: "dX", Name: "Migraine"}},
		Proteins: []*types.Protein{{ID: "pX", Symbol: "CGRP"}},
		Associations: []*types.Association{
			{ID: "aX", DiseaseID: "dX", ProteinID: "pX", Strength: f(0.6)},
		},
	}
	warnings, err := client.Load(replacement, nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	stats, err := client.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Diseases)

	// Old entities are gone; new ones resolve.
	_, err = client.Disease("d1")
	assert.ErrorIs(t, err, types.ErrUnknownEntity)
	detail, err := client.Disease("dX")
	require.NoError(t, err)
	assert.Equal(t, "Migraine", detail.Disease.Name)

	// A failed reload leaves the active snapshot untouched.
	_, err = client.Load(nil, nil)
	assert.ErrorIs(t, err, types.ErrInvalidSeed)
	stats, err = client.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Diseases)
}

func TestLoadReportsWarnings(t *testing.T) {
	client := targetscope.NewClient(nil, nil)

	seed := testSeed()
	seed.Associations = append(seed.Associations,
		&types.Association{ID: "bad", DiseaseID: "missing", ProteinID: "p1"})

	warnings, err := client.Load(seed, nil)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, types.ReferentialWarning, warnings[0].Kind)
}
