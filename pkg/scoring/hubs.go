package scoring

import (
	"sort"

	"github.com/targetscope/targetscope/pkg/store"
	"github.com/targetscope/targetscope/pkg/types"
)

const (
	// HubDegreeThreshold is the default minimum number of distinct diseases
	// for a protein to qualify as a hub.
	HubDegreeThreshold = 5
	// PanDiseaseMeanStrength is the secondary threshold for the pan-disease
	// target label: a hub whose mean association strength clears it.
	PanDiseaseMeanStrength = 0.6
)

// FindHubs returns proteins linked to at least minDegree distinct diseases,
// sorted by degree descending, then mean association strength descending,
// then protein id. minDegree <= 0 falls back to HubDegreeThreshold.
func FindHubs(snap *store.Snapshot, minDegree int) []types.Hub {
	if minDegree <= 0 {
		minDegree = HubDegreeThreshold
	}

	var hubs []types.Hub
	for _, p := range snap.Proteins {
		degree := snap.DistinctDiseaseCount(p.ID)
		if degree < minDegree {
			continue
		}
		mean := meanStrength(snap.AssociationsForProtein(p.ID))
		hubs = append(hubs, types.Hub{
			ProteinID:    p.ID,
			ProteinName:  p.Label(),
			Degree:       degree,
			MeanStrength: mean,
			PanDisease:   mean >= PanDiseaseMeanStrength,
			DiseaseIDs:   snap.DistinctDiseaseIDs(p.ID),
			Family:       p.Family,
		})
	}

	sort.SliceStable(hubs, func(i, j int) bool {
		if hubs[i].Degree != hubs[j].Degree {
			return hubs[i].Degree > hubs[j].Degree
		}
		if hubs[i].MeanStrength != hubs[j].MeanStrength {
			return hubs[i].MeanStrength > hubs[j].MeanStrength
		}
		return hubs[i].ProteinID < hubs[j].ProteinID
	})
	return hubs
}

// meanStrength averages association strengths across all of a protein's
// diseases, counting absent strengths at the default.
func meanStrength(assocs []*types.Association) float64 {
	if len(assocs) == 0 {
		return DefaultStrength
	}
	var sum float64
	for _, a := range assocs {
		sum += normalize(a.Strength, DefaultStrength)
	}
	return sum / float64(len(assocs))
}

// DiseaseClusters finds disease pairs sharing at least minShared protein
// targets, a hint of related mechanisms. Pairs are sorted by shared count
// descending, then by the pair's ids.
func DiseaseClusters(snap *store.Snapshot, minShared int) []types.DiseaseCluster {
	if minShared <= 0 {
		minShared = 3
	}

	proteinsByDisease := make(map[string]map[string]struct{})
	for _, a := range snap.Associations {
		set, ok := proteinsByDisease[a.DiseaseID]
		if !ok {
			set = make(map[string]struct{})
			proteinsByDisease[a.DiseaseID] = set
		}
		set[a.ProteinID] = struct{}{}
	}

	var clusters []types.DiseaseCluster
	for i, d1 := range snap.Diseases {
		for _, d2 := range snap.Diseases[i+1:] {
			shared := intersect(proteinsByDisease[d1.ID], proteinsByDisease[d2.ID])
			if len(shared) < minShared {
				continue
			}
			sort.Strings(shared)
			clusters = append(clusters, types.DiseaseCluster{
				DiseaseAID:     d1.ID,
				DiseaseBID:     d2.ID,
				SharedProteins: shared,
				SharedCount:    len(shared),
			})
		}
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		if clusters[i].SharedCount != clusters[j].SharedCount {
			return clusters[i].SharedCount > clusters[j].SharedCount
		}
		if clusters[i].DiseaseAID != clusters[j].DiseaseAID {
			return clusters[i].DiseaseAID < clusters[j].DiseaseAID
		}
		return clusters[i].DiseaseBID < clusters[j].DiseaseBID
	})
	return clusters
}

func intersect(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
