package scoring

import (
	"sort"
	"strings"

	"github.com/targetscope/targetscope/pkg/store"
	"github.com/targetscope/targetscope/pkg/types"
)

const (
	// RepurposingBonus rewards pairs whose protein already carries an
	// approved therapy for a different indication.
	RepurposingBonus = 1.5
	// RiskFactor reflects the lower development risk of reusing an approved
	// compound.
	RiskFactor = 1.2
	// MinRepurposingStrength gates weakly associated pairs out of the
	// candidate set.
	MinRepurposingStrength = 0.4
)

// RepurposingScore computes strength x burden x bonus x risk for a candidate
// pair. Unlike the gap score it rewards an existing approved therapy rather
// than penalizing it.
func RepurposingScore(strength, burden *float64) float64 {
	return normalize(strength, DefaultStrength) * normalize(burden, DefaultBurden) * RepurposingBonus * RiskFactor
}

// FindRepurposingCandidates walks every approved therapy and surfaces the
// diseases its target protein is associated with but which the therapy is
// not yet indicated for. Pairs below the strength gate, or diseases already
// covered by an indication, are not candidates and are excluded rather than
// zero-scored. Unresolvable references are reported as warnings.
func FindRepurposingCandidates(snap *store.Snapshot, limit int) ([]types.RepurposingCandidate, []types.Warning) {
	var (
		candidates []types.RepurposingCandidate
		warnings   []types.Warning
	)

	for _, t := range snap.Therapies {
		if t.Status != types.MaturityApproved {
			continue
		}
		protein := snap.Protein(t.TargetProteinID)
		if protein == nil {
			warnings = append(warnings, types.Warning{
				Kind:     types.ReferentialWarning,
				EntityID: t.ID,
				Message:  "therapy target protein does not resolve; excluded from repurposing",
			})
			continue
		}

		indications := make(map[string]struct{}, len(t.Indications))
		for _, ind := range t.Indications {
			indications[strings.ToLower(ind)] = struct{}{}
		}

		for _, a := range snap.AssociationsForProtein(protein.ID) {
			strength := normalize(a.Strength, DefaultStrength)
			if strength < MinRepurposingStrength {
				continue
			}
			disease := snap.Disease(a.DiseaseID)
			if disease == nil {
				warnings = append(warnings, types.Warning{
					Kind:     types.ReferentialWarning,
					EntityID: a.ID,
					Message:  "association disease does not resolve; excluded from repurposing",
				})
				continue
			}
			if _, covered := indications[strings.ToLower(disease.Name)]; covered {
				continue
			}

			candidates = append(candidates, types.RepurposingCandidate{
				ProteinID:        protein.ID,
				TherapyID:        t.ID,
				TherapyName:      t.Name,
				SourceDiseaseID:  sourceDiseaseID(snap, t.Indications),
				TargetDiseaseID:  disease.ID,
				TargetDisease:    disease.Name,
				Strength:         strength,
				Evidence:         a.Evidence,
				RepurposingScore: RepurposingScore(a.Strength, disease.BurdenScore),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].RepurposingScore != candidates[j].RepurposingScore {
			return candidates[i].RepurposingScore > candidates[j].RepurposingScore
		}
		if candidates[i].TherapyID != candidates[j].TherapyID {
			return candidates[i].TherapyID < candidates[j].TherapyID
		}
		return candidates[i].TargetDiseaseID < candidates[j].TargetDiseaseID
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, warnings
}

// sourceDiseaseID resolves the first therapy indication that names a known
// disease, providing the "approved for" side of a candidate. Indications
// that match no loaded disease leave it empty.
func sourceDiseaseID(snap *store.Snapshot, indications []string) string {
	for _, ind := range indications {
		for _, d := range snap.Diseases {
			if strings.EqualFold(d.Name, ind) {
				return d.ID
			}
		}
	}
	return ""
}

// MultiIndicationProteins finds proteins whose approved therapies span at
// least minIndications distinct indications: validated targets worth
// watching. Sorted by indication count descending, then protein id.
func MultiIndicationProteins(snap *store.Snapshot, minIndications int) []types.MultiIndicationProtein {
	if minIndications <= 0 {
		minIndications = 3
	}

	type group struct {
		therapies   []string
		indications map[string]struct{}
	}
	groups := make(map[string]*group)
	for _, t := range snap.Therapies {
		if t.Status != types.MaturityApproved {
			continue
		}
		g, ok := groups[t.TargetProteinID]
		if !ok {
			g = &group{indications: make(map[string]struct{})}
			groups[t.TargetProteinID] = g
		}
		g.therapies = append(g.therapies, t.Name)
		for _, ind := range t.Indications {
			g.indications[ind] = struct{}{}
		}
	}

	var out []types.MultiIndicationProtein
	for _, p := range snap.Proteins {
		g, ok := groups[p.ID]
		if !ok || len(g.indications) < minIndications {
			continue
		}
		indications := make([]string, 0, len(g.indications))
		for ind := range g.indications {
			indications = append(indications, ind)
		}
		sort.Strings(indications)
		out = append(out, types.MultiIndicationProtein{
			ProteinID:       p.ID,
			ProteinName:     p.Label(),
			TherapyCount:    len(g.therapies),
			IndicationCount: len(indications),
			Indications:     indications,
			Therapies:       g.therapies,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IndicationCount != out[j].IndicationCount {
			return out[i].IndicationCount > out[j].IndicationCount
		}
		return out[i].ProteinID < out[j].ProteinID
	})
	return out
}
