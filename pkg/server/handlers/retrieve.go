package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/targetscope/targetscope"
	"github.com/targetscope/targetscope/pkg/config"
	"github.com/targetscope/targetscope/pkg/server/dto"
)

// RetrieveHandler handles search and neighbor requests
type RetrieveHandler struct {
	svc targetscope.Service
	cfg config.SearchConfig
}

// NewRetrieveHandler creates a new retrieve handler. cfg.DefaultLimit applies
// when a request carries no limit of its own; cfg.MaxLimit caps per-request
// result counts, zero disables the cap.
func NewRetrieveHandler(svc targetscope.Service, cfg config.SearchConfig) *RetrieveHandler {
	return &RetrieveHandler{svc: svc, cfg: cfg}
}

// clampLimit resolves a requested result count against the configured
// default and cap.
func (h *RetrieveHandler) clampLimit(n int) int {
	if n <= 0 {
		n = h.cfg.DefaultLimit
	}
	if h.cfg.MaxLimit > 0 && n > h.cfg.MaxLimit {
		n = h.cfg.MaxLimit
	}
	return n
}

// Search handles POST /api/v1/search
func (h *RetrieveHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		badRequest(c, "query field is required and cannot be empty")
		return
	}

	results, err := h.svc.Search(c.Request.Context(), req.Query, h.clampLimit(req.Limit))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{Results: results, Total: len(results)})
}

// Neighbors handles GET /api/v1/neighbors/:id
func (h *RetrieveHandler) Neighbors(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		badRequest(c, "entity id is required")
		return
	}

	count, ok := intQuery(c, "count", 0)
	if !ok {
		return
	}

	results, err := h.svc.Neighbors(id, h.clampLimit(count))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{Results: results, Total: len(results)})
}
