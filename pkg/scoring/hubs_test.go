package scoring_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/targetscope/targetscope/pkg/scoring"
	"github.com/targetscope/targetscope/pkg/types"
)

// hubSeed links p1 to six diseases and p2 to four.
func hubSeed() *types.SeedData {
	seed := &types.SeedData{
		Proteins: []*types.Protein{
			{ID: "p1", Symbol: "TNF", Family: "cytokine"},
			{ID: "p2", Symbol: "IL2"},
		},
	}
	for i := 1; i <= 6; i++ {
		id := fmt.Sprintf("d%d", i)
		seed.Diseases = append(seed.Diseases, &types.Disease{ID: id, Name: "Disease " + id})
		seed.Associations = append(seed.Associations, &types.Association{
			ID:        fmt.Sprintf("a1-%d", i),
			DiseaseID: id,
			ProteinID: "p1",
			Strength:  f(0.7),
		})
		if i <= 4 {
			seed.Associations = append(seed.Associations, &types.Association{
				ID:        fmt.Sprintf("a2-%d", i),
				DiseaseID: id,
				ProteinID: "p2",
				Strength:  f(0.3),
			})
		}
	}
	return seed
}

func TestFindHubsDefaultThreshold(t *testing.T) {
	snap := buildSnapshot(t, hubSeed())

	hubs := scoring.FindHubs(snap, 0)
	require.Len(t, hubs, 1)

	hub := hubs[0]
	assert.Equal(t, "p1", hub.ProteinID)
	assert.Equal(t, "TNF", hub.ProteinName)
	assert.Equal(t, 6, hub.Degree)
	assert.InDelta(t, 0.7, hub.MeanStrength, 1e-9)
	assert.True(t, hub.PanDisease)
	assert.Equal(t, "cytokine", hub.Family)
	assert.Equal(t, []string{"d1", "d2", "d3", "d4", "d5", "d6"}, hub.DiseaseIDs)
}

func TestFindHubsCustomThreshold(t *testing.T) {
	snap := buildSnapshot(t, hubSeed())

	hubs := scoring.FindHubs(snap, 4)
	require.Len(t, hubs, 2)

	// Degree descending.
	assert.Equal(t, "p1", hubs[0].ProteinID)
	assert.Equal(t, "p2", hubs[1].ProteinID)
	assert.Equal(t, 4, hubs[1].Degree)
	// Weak mean strength stays below the pan-disease bar.
	assert.False(t, hubs[1].PanDisease)
}

func TestFindHubsDegreeIsDistinct(t *testing.T) {
	seed := hubSeed()
	// A second association to an already-linked disease must not inflate
	// the degree.
	seed.Associations = append(seed.Associations, &types.Association{
		ID:        "extra",
		DiseaseID: "d1",
		ProteinID: "p2",
		Strength:  f(0.9),
	})

	snap := buildSnapshot(t, seed)
	hubs := scoring.FindHubs(snap, 4)
	require.Len(t, hubs, 2)
	assert.Equal(t, 4, hubs[1].Degree)
}

func TestDiseaseClusters(t *testing.T) {
	seed := &types.SeedData{
		Diseases: []*types.Disease{
			{ID: "d1", Name: "Rheumatoid arthritis"},
			{ID: "d2", Name: "Psoriasis"},
			{ID: "d3", Name: "Glioblastoma"},
		},
		Proteins: []*types.Protein{
			{ID: "p1", Symbol: "TNF"},
			{ID: "p2", Symbol: "IL6"},
			{ID: "p3", Symbol: "IL17"},
		},
	}
	// d1 and d2 share p1, p2, p3; d3 shares only p1 with them.
	n := 0
	for _, d := range []string{"d1", "d2"} {
		for _, p := range []string{"p1", "p2", "p3"} {
			n++
			seed.Associations = append(seed.Associations, &types.Association{
				ID: fmt.Sprintf("a%d", n), DiseaseID: d, ProteinID: p,
			})
		}
	}
	seed.Associations = append(seed.Associations, &types.Association{
		ID: "a7", DiseaseID: "d3", ProteinID: "p1",
	})

	snap := buildSnapshot(t, seed)

	clusters := scoring.DiseaseClusters(snap, 3)
	require.Len(t, clusters, 1)
	assert.Equal(t, "d1", clusters[0].DiseaseAID)
	assert.Equal(t, "d2", clusters[0].DiseaseBID)
	assert.Equal(t, 3, clusters[0].SharedCount)
	assert.Equal(t, []string{"p1", "p2", "p3"}, clusters[0].SharedProteins)

	// Lowering the bar admits the single-shared pairs.
	clusters = scoring.DiseaseClusters(snap, 1)
	assert.Len(t, clusters, 3)
	assert.Equal(t, 3, clusters[0].SharedCount)
}
