package scoring

import (
	"fmt"
	"sort"

	"github.com/targetscope/targetscope/pkg/store"
	"github.com/targetscope/targetscope/pkg/types"
)

const (
	// DefaultStrength is assumed for associations without a strength.
	DefaultStrength = 0.5
	// DefaultBurden is assumed for diseases without a burden score.
	DefaultBurden = 0.5

	penaltyNone     = 1.0
	penaltyTrial    = 0.5
	penaltyApproved = 0.1
)

// MaturityPenalty discounts the gap score as a pair's therapy matures: no
// therapy leaves the full opportunity, a trial halves it, an approved
// therapy nearly closes it.
func MaturityPenalty(m types.Maturity) float64 {
	switch m {
	case types.MaturityApproved:
		return penaltyApproved
	case types.MaturityTrial:
		return penaltyTrial
	default:
		return penaltyNone
	}
}

// GapScore computes strength x burden x maturity penalty for one pair.
// Always in [0,1]; strictly decreasing as maturity moves none -> trial ->
// approved with strength and burden held fixed.
func GapScore(strength, burden *float64, maturity types.Maturity) float64 {
	return normalize(strength, DefaultStrength) * normalize(burden, DefaultBurden) * MaturityPenalty(maturity)
}

// RankOpportunities scores every association, sorts by gap score descending
// with association id as the stable tie-break, and truncates to limit.
// Associations whose endpoints no longer resolve are skipped and reported as
// warnings; the ranking itself never fails.
func RankOpportunities(snap *store.Snapshot, limit int) ([]types.Opportunity, []types.Warning) {
	type scored struct {
		opp     types.Opportunity
		assocID string
	}
	var (
		results  []scored
		warnings []types.Warning
	)

	for _, a := range snap.Associations {
		disease := snap.Disease(a.DiseaseID)
		protein := snap.Protein(a.ProteinID)
		if disease == nil || protein == nil {
			warnings = append(warnings, types.Warning{
				Kind:     types.ReferentialWarning,
				EntityID: a.ID,
				Message:  "association endpoints do not resolve; excluded from ranking",
			})
			continue
		}

		score := GapScore(a.Strength, disease.BurdenScore, a.EffectiveMaturity())
		results = append(results, scored{
			assocID: a.ID,
			opp: types.Opportunity{
				DiseaseID:   a.DiseaseID,
				ProteinID:   a.ProteinID,
				GapScore:    score,
				Rationale:   rationale(disease, protein, a, score),
				DiseaseName: disease.Name,
				ProteinName: protein.Label(),
			},
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].opp.GapScore != results[j].opp.GapScore {
			return results[i].opp.GapScore > results[j].opp.GapScore
		}
		return results[i].assocID < results[j].assocID
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	opps := make([]types.Opportunity, len(results))
	for i, r := range results {
		opps[i] = r.opp
	}
	return opps, warnings
}

// rationale renders a short human-readable justification for an opportunity.
func rationale(d *types.Disease, p *types.Protein, a *types.Association, score float64) string {
	strength := normalize(a.Strength, DefaultStrength)
	burden := normalize(d.BurdenScore, DefaultBurden)

	out := fmt.Sprintf("Therapeutic opportunity for %s in %s. ", p.Label(), d.Name)

	switch {
	case strength > 0.7:
		out += fmt.Sprintf("Strong association (%.0f%%) between target and disease. ", strength*100)
	case strength > 0.5:
		out += fmt.Sprintf("Moderate association (%.0f%%) between target and disease. ", strength*100)
	default:
		out += fmt.Sprintf("Association (%.0f%%) identified between target and disease. ", strength*100)
	}

	if burden > 0.7 {
		out += "High disease burden indicates significant unmet need. "
	} else if burden > 0.5 {
		out += "Moderate disease burden suggests therapeutic value. "
	}

	switch a.EffectiveMaturity() {
	case types.MaturityApproved:
		out += "Approved therapies exist but may have limitations. "
	case types.MaturityTrial:
		out += "Therapies are in development but not yet approved. "
	default:
		out += "No approved therapies currently target this protein-disease pair. "
	}

	out += fmt.Sprintf("Opportunity score: %.0f%%.", score*100)
	return out
}

// normalize clamps a present value into [0,1] or falls back.
func normalize(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	if *v < 0 {
		return 0
	}
	if *v > 1 {
		return 1
	}
	return *v
}
