package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/targetscope/targetscope"
)

// EntityHandler handles entity detail requests
type EntityHandler struct {
	svc targetscope.Service
}

// NewEntityHandler creates a new entity handler
func NewEntityHandler(svc targetscope.Service) *EntityHandler {
	return &EntityHandler{svc: svc}
}

// GetDisease handles GET /api/v1/disease/:id
func (h *EntityHandler) GetDisease(c *gin.Context) {
	detail, err := h.svc.Disease(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetProtein handles GET /api/v1/protein/:id
func (h *EntityHandler) GetProtein(c *gin.Context) {
	detail, err := h.svc.Protein(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetStats handles GET /api/v1/stats
func (h *EntityHandler) GetStats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
