package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/targetscope/targetscope"
	"github.com/targetscope/targetscope/pkg/loader"
	"github.com/targetscope/targetscope/pkg/server/dto"
	"github.com/targetscope/targetscope/pkg/types"
)

// ReloadHandler handles snapshot replacement requests
type ReloadHandler struct {
	svc targetscope.Service
}

// NewReloadHandler creates a new reload handler
func NewReloadHandler(svc targetscope.Service) *ReloadHandler {
	return &ReloadHandler{svc: svc}
}

// Reload handles POST /api/v1/reload. The request carries either an inline
// seed document or a server-side seed path. The snapshot swap is atomic;
// in-flight queries keep answering from the previous snapshot.
func (h *ReloadHandler) Reload(c *gin.Context) {
	var req dto.ReloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	seed := req.Seed
	if seed == nil {
		if req.Path == "" {
			badRequest(c, "either seed or path is required")
			return
		}
		loaded, err := loader.Load(req.Path)
		if err != nil {
			writeError(c, err)
			return
		}
		seed = loaded
	}

	warnings, err := h.svc.Load(seed, nil)
	if err != nil {
		writeError(c, err)
		return
	}

	if warnings == nil {
		warnings = []types.Warning{}
	}
	c.JSON(http.StatusOK, dto.ReloadResponse{
		Warnings: warnings,
		Skipped:  len(warnings),
	})
}
