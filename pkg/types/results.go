package types

// Opportunity is one ranked therapeutic gap: a disease-protein pair that is
// strongly associated, high-burden, and therapeutically underserved.
type Opportunity struct {
	DiseaseID   string  `json:"disease_id"`
	ProteinID   string  `json:"protein_id"`
	GapScore    float64 `json:"gap_score"`
	Rationale   string  `json:"rationale"`
	DiseaseName string  `json:"disease_name,omitempty"`
	ProteinName string  `json:"protein_name,omitempty"`
}

// Hub describes a protein associated with at least a threshold number of
// distinct diseases.
type Hub struct {
	ProteinID    string   `json:"protein_id"`
	ProteinName  string   `json:"protein_name,omitempty"`
	Degree       int      `json:"degree"`
	MeanStrength float64  `json:"mean_strength"`
	PanDisease   bool     `json:"pan_disease"`
	DiseaseIDs   []string `json:"disease_ids,omitempty"`
	Family       string   `json:"family,omitempty"`
}

// RepurposingCandidate is a protein-disease pair where an approved therapy
// for a different indication could plausibly be reused.
type RepurposingCandidate struct {
	ProteinID        string  `json:"protein_id"`
	TherapyID        string  `json:"therapy_id"`
	TherapyName      string  `json:"therapy_name"`
	SourceDiseaseID  string  `json:"source_disease_id,omitempty"`
	TargetDiseaseID  string  `json:"target_disease_id"`
	TargetDisease    string  `json:"target_disease,omitempty"`
	Strength         float64 `json:"association_strength"`
	Evidence         string  `json:"evidence,omitempty"`
	RepurposingScore float64 `json:"repurposing_score"`
}

// DiseaseCluster is a pair of diseases sharing several protein targets,
// hinting at a common mechanism.
type DiseaseCluster struct {
	DiseaseAID     string   `json:"disease_a_id"`
	DiseaseBID     string   `json:"disease_b_id"`
	SharedProteins []string `json:"shared_proteins"`
	SharedCount    int      `json:"shared_count"`
}

// MultiIndicationProtein is a protein whose approved therapies cover several
// distinct indications, marking it as a validated target.
type MultiIndicationProtein struct {
	ProteinID       string   `json:"protein_id"`
	ProteinName     string   `json:"protein_name,omitempty"`
	TherapyCount    int      `json:"therapy_count"`
	IndicationCount int      `json:"indication_count"`
	Indications     []string `json:"indications"`
	Therapies       []string `json:"therapies"`
}

// SearchResult is one ranked, deduplicated search hit.
type SearchResult struct {
	ID      string   `json:"id"`
	Kind    NodeKind `json:"type"`
	Label   string   `json:"label"`
	Score   float64  `json:"score"`
	Snippet string   `json:"snippet,omitempty"`
}

// AssociationWithProtein joins an association with its resolved protein for
// the disease detail view.
type AssociationWithProtein struct {
	Association *Association `json:"association"`
	Protein     *Protein     `json:"protein"`
}

// DiseaseDetail is a disease plus all its protein-joined associations.
type DiseaseDetail struct {
	Disease      *Disease                 `json:"disease"`
	Associations []AssociationWithProtein `json:"associations"`
}

// AssociationWithDisease joins an association with its resolved disease for
// the protein detail view.
type AssociationWithDisease struct {
	Association *Association `json:"association"`
	Disease     *Disease     `json:"disease"`
}

// ProteinDetail is a protein plus its disease-joined associations, therapies
// and trials.
type ProteinDetail struct {
	Protein   *Protein                 `json:"protein"`
	Diseases  []AssociationWithDisease `json:"diseases"`
	Therapies []*Therapy               `json:"therapies"`
	Trials    []*ClinicalTrial         `json:"trials"`
}
