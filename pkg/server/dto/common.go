package dto

import (
	"github.com/targetscope/targetscope/pkg/types"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// SearchRequest represents a search query
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

// SearchResponse wraps ranked search results
type SearchResponse struct {
	Results []types.SearchResult `json:"results"`
	Total   int                  `json:"total"`
}

// ReloadRequest carries a full replacement seed. Either an inline seed
// document or a server-side path may be given; inline wins when both are set.
type ReloadRequest struct {
	Seed *types.SeedData `json:"seed,omitempty"`
	Path string          `json:"path,omitempty"`
}

// ReloadResponse reports the outcome of a snapshot replacement
type ReloadResponse struct {
	Warnings []types.Warning `json:"warnings"`
	Skipped  int             `json:"skipped"`
}

// OpportunitiesResponse wraps ranked therapeutic gaps
type OpportunitiesResponse struct {
	Opportunities []types.Opportunity `json:"opportunities"`
	Warnings      []types.Warning     `json:"warnings,omitempty"`
	Total         int                 `json:"total"`
}

// HubsResponse wraps hub proteins
type HubsResponse struct {
	Hubs  []types.Hub `json:"hubs"`
	Total int         `json:"total"`
}

// RepurposingResponse wraps drug repurposing candidates
type RepurposingResponse struct {
	Candidates []types.RepurposingCandidate `json:"candidates"`
	Warnings   []types.Warning              `json:"warnings,omitempty"`
	Total      int                          `json:"total"`
}

// ClustersResponse wraps disease clusters
type ClustersResponse struct {
	Clusters []types.DiseaseCluster `json:"clusters"`
	Total    int                    `json:"total"`
}

// MultiIndicationResponse wraps validated multi-indication targets
type MultiIndicationResponse struct {
	Proteins []types.MultiIndicationProtein `json:"proteins"`
	Total    int                            `json:"total"`
}
