package types

import "errors"

// Validation errors
var (
	ErrEmptyID         = errors.New("id cannot be empty")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrEmptyQuery      = errors.New("query cannot be empty")
	ErrInvalidLimit    = errors.New("limit must be positive")
	ErrNoSnapshot      = errors.New("no snapshot loaded")
	ErrUnknownEntity   = errors.New("entity not found")
	ErrInvalidSeed     = errors.New("seed data is missing or malformed")
	ErrUnknownMaturity = errors.New("unknown maturity value")
)

// Maturity is the therapeutic development stage of a protein target for a
// given disease.
type Maturity string

const (
	// MaturityApproved means an approved therapy exists for the pair.
	MaturityApproved Maturity = "approved"
	// MaturityTrial means a therapy is in clinical development.
	MaturityTrial Maturity = "trial"
	// MaturityNone means no known therapy targets the pair.
	MaturityNone Maturity = "none"
)

// Valid reports whether m is one of the known maturity values.
func (m Maturity) Valid() bool {
	switch m {
	case MaturityApproved, MaturityTrial, MaturityNone:
		return true
	}
	return false
}

// Rank orders maturities for the optimistic aggregation used when
// classifying protein nodes: approved dominates trial, which dominates none.
func (m Maturity) Rank() int {
	switch m {
	case MaturityApproved:
		return 2
	case MaturityTrial:
		return 1
	default:
		return 0
	}
}

// Disease is a validated disease record. Immutable once loaded.
type Disease struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Category    string   `json:"category,omitempty" yaml:"category,omitempty"`
	BurdenScore *float64 `json:"burden_score,omitempty" yaml:"burden_score,omitempty" validate:"omitempty,gte=0,lte=1"`
	Sources     []string `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// Protein is a validated protein record. Immutable once loaded.
type Protein struct {
	ID        string   `json:"id" yaml:"id" validate:"required"`
	UniprotID string   `json:"uniprot_id,omitempty" yaml:"uniprot_id,omitempty"`
	Symbol    string   `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Name      string   `json:"name,omitempty" yaml:"name,omitempty"`
	Family    string   `json:"family,omitempty" yaml:"family,omitempty"`
	Pathways  []string `json:"pathways,omitempty" yaml:"pathways,omitempty"`
	Sources   []string `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// Label returns the preferred display name for a protein: symbol, then name,
// then id.
func (p *Protein) Label() string {
	if p.Symbol != "" {
		return p.Symbol
	}
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// Association is a scored, evidenced link between one disease and one
// protein. It is the only entity expressing a relationship and becomes the
// graph's edge.
type Association struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	DiseaseID   string   `json:"disease_id" yaml:"disease_id" validate:"required"`
	ProteinID   string   `json:"protein_id" yaml:"protein_id" validate:"required"`
	Strength    *float64 `json:"association_strength,omitempty" yaml:"association_strength,omitempty" validate:"omitempty,gte=0,lte=1"`
	Evidence    string   `json:"evidence_text,omitempty" yaml:"evidence_text,omitempty"`
	Citations   []string `json:"citations,omitempty" yaml:"citations,omitempty"`
	Sources     []string `json:"sources,omitempty" yaml:"sources,omitempty"`
	Maturity    Maturity `json:"maturity,omitempty" yaml:"maturity,omitempty"`
	LastUpdated string   `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
}

// EffectiveMaturity returns the association's maturity, treating an unset
// value as none.
func (a *Association) EffectiveMaturity() Maturity {
	if a.Maturity == "" {
		return MaturityNone
	}
	return a.Maturity
}

// Therapy is a validated therapy record targeting one protein.
type Therapy struct {
	ID              string   `json:"id" yaml:"id" validate:"required"`
	Name            string   `json:"name" yaml:"name" validate:"required"`
	TargetProteinID string   `json:"target_protein_id" yaml:"target_protein_id" validate:"required"`
	Status          Maturity `json:"status" yaml:"status" validate:"required"`
	DrugbankID      string   `json:"drugbank_id,omitempty" yaml:"drugbank_id,omitempty"`
	ChemblID        string   `json:"chembl_id,omitempty" yaml:"chembl_id,omitempty"`
	Indications     []string `json:"indications,omitempty" yaml:"indications,omitempty"`
	Sources         []string `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// ClinicalTrial is a validated clinical trial record.
type ClinicalTrial struct {
	ID              string   `json:"id" yaml:"id" validate:"required"`
	NctID           string   `json:"nct_id,omitempty" yaml:"nct_id,omitempty"`
	Phase           string   `json:"phase,omitempty" yaml:"phase,omitempty"`
	Status          string   `json:"status,omitempty" yaml:"status,omitempty"`
	Condition       string   `json:"condition,omitempty" yaml:"condition,omitempty"`
	TargetProteinID string   `json:"target_protein_id,omitempty" yaml:"target_protein_id,omitempty"`
	StartDate       string   `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	Link            string   `json:"link,omitempty" yaml:"link,omitempty"`
	Sources         []string `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// SeedData is the wire format for a full entity collection. The store is
// loaded from one of these and replaced wholesale on regeneration.
type SeedData struct {
	Diseases     []*Disease       `json:"diseases" yaml:"diseases"`
	Proteins     []*Protein       `json:"proteins" yaml:"proteins"`
	Associations []*Association   `json:"associations" yaml:"associations"`
	Therapies    []*Therapy       `json:"therapies" yaml:"therapies"`
	Trials       []*ClinicalTrial `json:"trials" yaml:"trials"`
}

// WarningKind classifies a non-fatal data problem found while loading or
// scoring.
type WarningKind string

const (
	// ReferentialWarning marks a record referencing a nonexistent disease or
	// protein id.
	ReferentialWarning WarningKind = "referential"
	// RangeWarning marks a numeric field outside [0,1].
	RangeWarning WarningKind = "range"
	// ValidationWarning marks a record missing required fields.
	ValidationWarning WarningKind = "validation"
)

// Warning describes a skipped record. Warnings are collected alongside
// results; they never abort a bulk operation.
type Warning struct {
	Kind     WarningKind `json:"kind"`
	EntityID string      `json:"entity_id"`
	Message  string      `json:"message"`
}
