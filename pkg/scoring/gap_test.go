package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/targetscope/targetscope/pkg/scoring"
	"github.com/targetscope/targetscope/pkg/store"
	"github.com/targetscope/targetscope/pkg/types"
)

func f(v float64) *float64 { return &v }

func buildSnapshot(t *testing.T, seed *types.SeedData) *store.Snapshot {
	t.Helper()
	snap, err := store.NewSnapshot(seed)
	require.NoError(t, err)
	require.Empty(t, snap.Warnings)
	return snap
}

func TestGapScore(t *testing.T) {
	tests := []struct {
		name     string
		strength *float64
		burden   *float64
		maturity types.Maturity
		expected float64
	}{
		{"no therapy keeps full product", f(0.8), f(0.9), types.MaturityNone, 0.72},
		{"trial halves it", f(0.8), f(0.9), types.MaturityTrial, 0.36},
		{"approved nearly closes it", f(0.8), f(0.9), types.MaturityApproved, 0.072},
		{"absent values fall back to defaults", nil, nil, types.MaturityNone, 0.25},
		{"unset maturity counts as none", f(0.5), f(0.5), types.Maturity(""), 0.25},
		{"zero strength yields zero", f(0), f(0.9), types.MaturityNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scoring.GapScore(tt.strength, tt.burden, tt.maturity), 1e-9)
		})
	}
}

func TestGapScoreMonotonicInMaturity(t *testing.T) {
	none := scoring.GapScore(f(0.8), f(0.9), types.MaturityNone)
	trial := scoring.GapScore(f(0.8), f(0.9), types.MaturityTrial)
	approved := scoring.GapScore(f(0.8), f(0.9), types.MaturityApproved)

	assert.Greater(t, none, trial)
	assert.Greater(t, trial, approved)
	assert.Greater(t, approved, 0.0)
}

func TestGapScoreRange(t *testing.T) {
	for _, s := range []float64{0, 0.25, 0.5, 0.75, 1} {
		for _, b := range []float64{0, 0.5, 1} {
			for _, m := range []types.Maturity{types.MaturityNone, types.MaturityTrial, types.MaturityApproved} {
				score := scoring.GapScore(f(s), f(b), m)
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 1.0)
			}
		}
	}
}

func TestRankOpportunities(t *testing.T) {
	snap := buildSnapshot(t, &types.SeedData{
		Diseases: []*types.Disease{
			{ID: "d1", Name: "Glioblastoma", BurdenScore: f(0.9)},
			{ID: "d2", Name: "Psoriasis", BurdenScore: f(0.4)},
		},
		Proteins: []*types.Protein{
			{ID: "p1", Symbol: "EGFR"},
			{ID: "p2", Symbol: "TNF"},
		},
		Associations: []*types.Association{
			{ID: "a1", DiseaseID: "d1", ProteinID: "p1", Strength: f(0.8)}, // 0.72
			{ID: "a2", DiseaseID: "d1", ProteinID: "p2", Strength: f(0.8), Maturity: types.MaturityTrial},    // 0.36
			{ID: "a3", DiseaseID: "d2", ProteinID: "p2", Strength: f(0.9), Maturity: types.MaturityApproved}, // 0.036
		},
	})

	opps, warnings := scoring.RankOpportunities(snap, 0)
	assert.Empty(t, warnings)
	require.Len(t, opps, 3)

	assert.Equal(t, "p1", opps[0].ProteinID)
	assert.InDelta(t, 0.72, opps[0].GapScore, 1e-9)
	assert.Equal(t, "Glioblastoma", opps[0].DiseaseName)
	assert.Equal(t, "EGFR", opps[0].ProteinName)
	assert.NotEmpty(t, opps[0].Rationale)

	assert.InDelta(t, 0.36, opps[1].GapScore, 1e-9)
	assert.InDelta(t, 0.036, opps[2].GapScore, 1e-9)
}

func TestRankOpportunitiesTieBreakAndLimit(t *testing.T) {
	snap := buildSnapshot(t, &types.SeedData{
		Diseases: []*types.Disease{{ID: "d1", Name: "Glioblastoma", BurdenScore: f(0.9)}},
		Proteins: []*types.Protein{
			{ID: "p1", Symbol: "AAA"},
			{ID: "p2", Symbol: "BBB"},
			{ID: "p3", Symbol: "CCC"},
		},
		Associations: []*types.Association{
			{ID: "a3", DiseaseID: "d1", ProteinID: "p3", Strength: f(0.8)},
			{ID: "a1", DiseaseID: "d1", ProteinID: "p1", Strength: f(0.8)},
			{ID: "a2", DiseaseID: "d1", ProteinID: "p2", Strength: f(0.8)},
		},
	})

	opps, _ := scoring.RankOpportunities(snap, 0)
	require.Len(t, opps, 3)
	// Equal scores break ties on association id.
	assert.Equal(t, "p1", opps[0].ProteinID)
	assert.Equal(t, "p2", opps[1].ProteinID)
	assert.Equal(t, "p3", opps[2].ProteinID)

	limited, _ := scoring.RankOpportunities(snap, 2)
	assert.Len(t, limited, 2)
}
