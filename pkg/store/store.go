package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/targetscope/targetscope/pkg/types"
)

// Snapshot is an immutable, fully-indexed view of one loaded entity
// collection. All query paths read a single snapshot; replacement happens by
// swapping the pointer held by the facade, never by mutating a snapshot in
// place.
type Snapshot struct {
	ID       string
	LoadedAt time.Time

	Diseases     []*types.Disease
	Proteins     []*types.Protein
	Associations []*types.Association
	Therapies    []*types.Therapy
	Trials       []*types.ClinicalTrial

	// Warnings produced while validating the seed; skipped records are
	// excluded from the slices and indexes above.
	Warnings []types.Warning

	diseaseByID        map[string]*types.Disease
	proteinByID        map[string]*types.Protein
	associationByID    map[string]*types.Association
	assocsByDisease    map[string][]*types.Association
	assocsByProtein    map[string][]*types.Association
	therapiesByProtein map[string][]*types.Therapy
	trialsByProtein    map[string][]*types.ClinicalTrial
}

var validate = validator.New()

// NewSnapshot validates seed into an indexed snapshot. Records that fail
// field validation or reference unknown entities are skipped and reported in
// Snapshot.Warnings; only a structurally absent seed is fatal.
func NewSnapshot(seed *types.SeedData) (*Snapshot, error) {
	if seed == nil {
		return nil, types.ErrInvalidSeed
	}

	s := &Snapshot{
		ID:                 uuid.New().String(),
		LoadedAt:           time.Now().UTC(),
		diseaseByID:        make(map[string]*types.Disease),
		proteinByID:        make(map[string]*types.Protein),
		associationByID:    make(map[string]*types.Association),
		assocsByDisease:    make(map[string][]*types.Association),
		assocsByProtein:    make(map[string][]*types.Association),
		therapiesByProtein: make(map[string][]*types.Therapy),
		trialsByProtein:    make(map[string][]*types.ClinicalTrial),
	}

	for _, d := range seed.Diseases {
		if d == nil {
			continue
		}
		if err := validate.Struct(d); err != nil {
			s.warn(types.ValidationWarning, d.ID, fmt.Sprintf("disease skipped: %v", err))
			continue
		}
		if _, dup := s.diseaseByID[d.ID]; dup {
			s.warn(types.ValidationWarning, d.ID, "duplicate disease id skipped")
			continue
		}
		s.Diseases = append(s.Diseases, d)
		s.diseaseByID[d.ID] = d
	}

	for _, p := range seed.Proteins {
		if p == nil {
			continue
		}
		if err := validate.Struct(p); err != nil {
			s.warn(types.ValidationWarning, p.ID, fmt.Sprintf("protein skipped: %v", err))
			continue
		}
		if _, dup := s.proteinByID[p.ID]; dup {
			s.warn(types.ValidationWarning, p.ID, "duplicate protein id skipped")
			continue
		}
		s.Proteins = append(s.Proteins, p)
		s.proteinByID[p.ID] = p
	}

	for _, a := range seed.Associations {
		if a == nil {
			continue
		}
		if err := validate.Struct(a); err != nil {
			kind := types.ValidationWarning
			if a.Strength != nil && (*a.Strength < 0 || *a.Strength > 1) {
				kind = types.RangeWarning
			}
			s.warn(kind, a.ID, fmt.Sprintf("association skipped: %v", err))
			continue
		}
		if a.Maturity != "" && !a.Maturity.Valid() {
			s.warn(types.ValidationWarning, a.ID, fmt.Sprintf("association skipped: %v: %q", types.ErrUnknownMaturity, a.Maturity))
			continue
		}
		if _, ok := s.diseaseByID[a.DiseaseID]; !ok {
			s.warn(types.ReferentialWarning, a.ID, fmt.Sprintf("association references unknown disease %q", a.DiseaseID))
			continue
		}
		if _, ok := s.proteinByID[a.ProteinID]; !ok {
			s.warn(types.ReferentialWarning, a.ID, fmt.Sprintf("association references unknown protein %q", a.ProteinID))
			continue
		}
		s.Associations = append(s.Associations, a)
		s.associationByID[a.ID] = a
		s.assocsByDisease[a.DiseaseID] = append(s.assocsByDisease[a.DiseaseID], a)
		s.assocsByProtein[a.ProteinID] = append(s.assocsByProtein[a.ProteinID], a)
	}

	for _, t := range seed.Therapies {
		if t == nil {
			continue
		}
		if err := validate.Struct(t); err != nil {
			s.warn(types.ValidationWarning, t.ID, fmt.Sprintf("therapy skipped: %v", err))
			continue
		}
		if !t.Status.Valid() {
			s.warn(types.ValidationWarning, t.ID, fmt.Sprintf("therapy skipped: %v: %q", types.ErrUnknownMaturity, t.Status))
			continue
		}
		if _, ok := s.proteinByID[t.TargetProteinID]; !ok {
			s.warn(types.ReferentialWarning, t.ID, fmt.Sprintf("therapy references unknown protein %q", t.TargetProteinID))
			continue
		}
		s.Therapies = append(s.Therapies, t)
		s.therapiesByProtein[t.TargetProteinID] = append(s.therapiesByProtein[t.TargetProteinID], t)
	}

	for _, tr := range seed.Trials {
		if tr == nil {
			continue
		}
		if err := validate.Struct(tr); err != nil {
			s.warn(types.ValidationWarning, tr.ID, fmt.Sprintf("trial skipped: %v", err))
			continue
		}
		if tr.TargetProteinID != "" {
			if _, ok := s.proteinByID[tr.TargetProteinID]; !ok {
				s.warn(types.ReferentialWarning, tr.ID, fmt.Sprintf("trial references unknown protein %q", tr.TargetProteinID))
				continue
			}
		}
		s.Trials = append(s.Trials, tr)
		if tr.TargetProteinID != "" {
			s.trialsByProtein[tr.TargetProteinID] = append(s.trialsByProtein[tr.TargetProteinID], tr)
		}
	}

	return s, nil
}

func (s *Snapshot) warn(kind types.WarningKind, entityID, msg string) {
	s.Warnings = append(s.Warnings, types.Warning{Kind: kind, EntityID: entityID, Message: msg})
}

// Disease returns the disease with the given id, or nil.
func (s *Snapshot) Disease(id string) *types.Disease { return s.diseaseByID[id] }

// Protein returns the protein with the given id, or nil.
func (s *Snapshot) Protein(id string) *types.Protein { return s.proteinByID[id] }

// Association returns the association with the given id, or nil.
func (s *Snapshot) Association(id string) *types.Association { return s.associationByID[id] }

// AssociationsForDisease returns all associations whose disease side is id.
func (s *Snapshot) AssociationsForDisease(id string) []*types.Association {
	return s.assocsByDisease[id]
}

// AssociationsForProtein returns all associations whose protein side is id.
func (s *Snapshot) AssociationsForProtein(id string) []*types.Association {
	return s.assocsByProtein[id]
}

// TherapiesForProtein returns all therapies targeting the protein.
func (s *Snapshot) TherapiesForProtein(id string) []*types.Therapy {
	return s.therapiesByProtein[id]
}

// TrialsForProtein returns all trials targeting the protein.
func (s *Snapshot) TrialsForProtein(id string) []*types.ClinicalTrial {
	return s.trialsByProtein[id]
}

// DistinctDiseaseCount returns the number of distinct diseases linked to the
// protein. Multiple associations to the same disease count once.
func (s *Snapshot) DistinctDiseaseCount(proteinID string) int {
	seen := make(map[string]struct{})
	for _, a := range s.assocsByProtein[proteinID] {
		seen[a.DiseaseID] = struct{}{}
	}
	return len(seen)
}

// DistinctDiseaseIDs returns the sorted distinct disease ids linked to the
// protein.
func (s *Snapshot) DistinctDiseaseIDs(proteinID string) []string {
	seen := make(map[string]struct{})
	for _, a := range s.assocsByProtein[proteinID] {
		seen[a.DiseaseID] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Stats summarizes snapshot sizes for health reporting.
type Stats struct {
	SnapshotID   string    `json:"snapshot_id"`
	LoadedAt     time.Time `json:"loaded_at"`
	Diseases     int       `json:"diseases"`
	Proteins     int       `json:"proteins"`
	Associations int       `json:"associations"`
	Therapies    int       `json:"therapies"`
	Trials       int       `json:"trials"`
	Warnings     int       `json:"warnings"`
}

// Stats returns counts for the snapshot.
func (s *Snapshot) Stats() Stats {
	return Stats{
		SnapshotID:   s.ID,
		LoadedAt:     s.LoadedAt,
		Diseases:     len(s.Diseases),
		Proteins:     len(s.Proteins),
		Associations: len(s.Associations),
		Therapies:    len(s.Therapies),
		Trials:       len(s.Trials),
		Warnings:     len(s.Warnings),
	}
}
