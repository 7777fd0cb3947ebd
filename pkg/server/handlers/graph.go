package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/targetscope/targetscope"
	"github.com/targetscope/targetscope/pkg/graph"
	"github.com/targetscope/targetscope/pkg/types"
)

// GraphHandler handles graph view requests
type GraphHandler struct {
	svc targetscope.Service
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(svc targetscope.Service) *GraphHandler {
	return &GraphHandler{svc: svc}
}

// GetGraph handles GET /api/v1/graph.
//
// Query parameters:
//
//	categories       comma-separated disease categories
//	maturities       comma-separated maturity levels (approved, trial, none)
//	hub_min_degree   minimum protein degree
func (h *GraphHandler) GetGraph(c *gin.Context) {
	spec, err := parseFilterSpec(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	g, err := h.svc.Graph(spec)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, g)
}

// parseFilterSpec builds a FilterSpec from query parameters.
func parseFilterSpec(c *gin.Context) (graph.FilterSpec, error) {
	var spec graph.FilterSpec

	if raw := c.Query("categories"); raw != "" {
		spec.Categories = splitCSV(raw)
	}

	if raw := c.Query("maturities"); raw != "" {
		for _, v := range splitCSV(raw) {
			m := types.Maturity(strings.ToLower(v))
			if !m.Valid() {
				return spec, fmt.Errorf("%w: %q", types.ErrUnknownMaturity, v)
			}
			spec.Maturities = append(spec.Maturities, m)
		}
	}

	if raw := c.Query("hub_min_degree"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return spec, fmt.Errorf("hub_min_degree must be a non-negative integer")
		}
		spec.HubMinDegree = &n
	}

	return spec, nil
}

// splitCSV splits a comma-separated parameter, dropping empty entries.
func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
