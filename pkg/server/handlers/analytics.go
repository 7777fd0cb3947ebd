package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/targetscope/targetscope"
	"github.com/targetscope/targetscope/pkg/config"
	"github.com/targetscope/targetscope/pkg/server/dto"
)

// AnalyticsHandler handles scoring and ranking requests
type AnalyticsHandler struct {
	svc targetscope.Service
	cfg config.ScoringConfig
}

// NewAnalyticsHandler creates a new analytics handler. cfg supplies the
// limits and thresholds used when a request does not set its own.
func NewAnalyticsHandler(svc targetscope.Service, cfg config.ScoringConfig) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, cfg: cfg}
}

// GetOpportunities handles GET /api/v1/opportunities
func (h *AnalyticsHandler) GetOpportunities(c *gin.Context) {
	limit, ok := intQuery(c, "limit", h.cfg.OpportunityLimit)
	if !ok {
		return
	}

	opportunities, warnings, err := h.svc.Opportunities(limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OpportunitiesResponse{
		Opportunities: opportunities,
		Warnings:      warnings,
		Total:         len(opportunities),
	})
}

// GetHubs handles GET /api/v1/hubs
func (h *AnalyticsHandler) GetHubs(c *gin.Context) {
	minDegree, ok := intQuery(c, "min_degree", h.cfg.HubMinDegree)
	if !ok {
		return
	}

	hubs, err := h.svc.Hubs(minDegree)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HubsResponse{Hubs: hubs, Total: len(hubs)})
}

// GetRepurposing handles GET /api/v1/repurposing
func (h *AnalyticsHandler) GetRepurposing(c *gin.Context) {
	limit, ok := intQuery(c, "limit", h.cfg.RepurposingLimit)
	if !ok {
		return
	}

	candidates, warnings, err := h.svc.RepurposingCandidates(limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RepurposingResponse{
		Candidates: candidates,
		Warnings:   warnings,
		Total:      len(candidates),
	})
}

// GetClusters handles GET /api/v1/clusters
func (h *AnalyticsHandler) GetClusters(c *gin.Context) {
	minShared, ok := intQuery(c, "min_shared", h.cfg.ClusterMinShared)
	if !ok {
		return
	}

	clusters, err := h.svc.DiseaseClusters(minShared)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClustersResponse{Clusters: clusters, Total: len(clusters)})
}

// GetMultiIndication handles GET /api/v1/multi-indication
func (h *AnalyticsHandler) GetMultiIndication(c *gin.Context) {
	minIndications, ok := intQuery(c, "min_indications", 0)
	if !ok {
		return
	}

	proteins, err := h.svc.MultiIndicationProteins(minIndications)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MultiIndicationResponse{Proteins: proteins, Total: len(proteins)})
}

// intQuery parses an optional non-negative integer query parameter. It writes
// a 400 and returns false on malformed input.
func intQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		badRequest(c, name+" must be a non-negative integer")
		return 0, false
	}
	return n, true
}
