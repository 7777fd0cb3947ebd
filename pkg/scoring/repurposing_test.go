package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/targetscope/targetscope/pkg/scoring"
	"github.com/targetscope/targetscope/pkg/types"
)

func repurposingSeed() *types.SeedData {
	return &types.SeedData{
		Diseases: []*types.Disease{
			{ID: "d1", Name: "Rheumatoid arthritis", BurdenScore: f(0.8)},
			{ID: "d2", Name: "Crohn disease", BurdenScore: f(0.6)},
			{ID: "d3", Name: "Psoriasis", BurdenScore: f(0.5)},
		},
		Proteins: []*types.Protein{
			{ID: "p1", Symbol: "TNF"},
		},
		Associations: []*types.Association{
			{ID: "a1", DiseaseID: "d1", ProteinID: "p1", Strength: f(0.9), Maturity: types.MaturityApproved},
			{ID: "a2", DiseaseID: "d2", ProteinID: "p1", Strength: f(0.7), Evidence: "TNF blockade effective in IBD"},
			{ID: "a3", DiseaseID: "d3", ProteinID: "p1", Strength: f(0.3)},
		},
		Therapies: []*types.Therapy{
			{
				ID:              "t1",
				Name:            "Adalimumab",
				TargetProteinID: "p1",
				Status:          types.MaturityApproved,
				Indications:     []string{"Rheumatoid Arthritis"},
			},
		},
	}
}

func TestRepurposingScore(t *testing.T) {
	// strength x burden x bonus x risk
	assert.InDelta(t, 0.7*0.6*1.5*1.2, scoring.RepurposingScore(f(0.7), f(0.6)), 1e-9)
	// Defaults when absent.
	assert.InDelta(t, 0.5*0.5*1.5*1.2, scoring.RepurposingScore(nil, nil), 1e-9)
}

func TestFindRepurposingCandidates(t *testing.T) {
	snap := buildSnapshot(t, repurposingSeed())

	candidates, warnings := scoring.FindRepurposingCandidates(snap, 0)
	assert.Empty(t, warnings)

	// d1 is excluded as an existing indication (case-insensitive), d3 falls
	// below the strength gate; only d2 remains.
	require.Len(t, candidates, 1)
	c := candidates[0]
	assert.Equal(t, "p1", c.ProteinID)
	assert.Equal(t, "t1", c.TherapyID)
	assert.Equal(t, "Adalimumab", c.TherapyName)
	assert.Equal(t, "d1", c.SourceDiseaseID)
	assert.Equal(t, "d2", c.TargetDiseaseID)
	assert.Equal(t, "Crohn disease", c.TargetDisease)
	assert.InDelta(t, 0.7, c.Strength, 1e-9)
	assert.Equal(t, "TNF blockade effective in IBD", c.Evidence)
	assert.InDelta(t, 0.7*0.6*1.5*1.2, c.RepurposingScore, 1e-9)
}

func TestFindRepurposingCandidatesIgnoresUnapproved(t *testing.T) {
	seed := repurposingSeed()
	seed.Therapies[0].Status = types.MaturityTrial

	snap := buildSnapshot(t, seed)
	candidates, warnings := scoring.FindRepurposingCandidates(snap, 0)
	assert.Empty(t, warnings)
	assert.Empty(t, candidates)
}

func TestFindRepurposingCandidatesOrderingAndLimit(t *testing.T) {
	seed := repurposingSeed()
	// A second approved therapy on the same protein doubles the candidate
	// pairs; ordering falls back to therapy id on equal scores.
	seed.Therapies = append(seed.Therapies, &types.Therapy{
		ID:              "t0",
		Name:            "Infliximab",
		TargetProteinID: "p1",
		Status:          types.MaturityApproved,
		Indications:     []string{"Rheumatoid arthritis"},
	})

	snap := buildSnapshot(t, seed)
	candidates, _ := scoring.FindRepurposingCandidates(snap, 0)
	require.Len(t, candidates, 2)
	assert.Equal(t, "t0", candidates[0].TherapyID)
	assert.Equal(t, "t1", candidates[1].TherapyID)

	limited, _ := scoring.FindRepurposingCandidates(snap, 1)
	assert.Len(t, limited, 1)
}

func TestMultiIndicationProteins(t *testing.T) {
	seed := repurposingSeed()
	seed.Therapies[0].Indications = []string{"Rheumatoid arthritis", "Crohn disease"}
	seed.Therapies = append(seed.Therapies, &types.Therapy{
		ID:              "t2",
		Name:            "Etanercept",
		TargetProteinID: "p1",
		Status:          types.MaturityApproved,
		Indications:     []string{"Psoriasis", "Rheumatoid arthritis"},
	})

	snap := buildSnapshot(t, seed)

	out := scoring.MultiIndicationProteins(snap, 3)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ProteinID)
	assert.Equal(t, 2, out[0].TherapyCount)
	assert.Equal(t, 3, out[0].IndicationCount)
	assert.Equal(t, []string{"Crohn disease", "Psoriasis", "Rheumatoid arthritis"}, out[0].Indications)

	// Raising the bar excludes it.
	assert.Empty(t, scoring.MultiIndicationProteins(snap, 4))
}
