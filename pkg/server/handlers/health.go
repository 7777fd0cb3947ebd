package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/targetscope/targetscope"
)

// Build information - can be set at build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// HealthHandler handles health check requests
type HealthHandler struct {
	svc targetscope.Service
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(svc targetscope.Service) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// HealthCheck handles GET /health - basic liveness check
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "targetscope",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}

// ReadinessCheck handles GET /ready. The service is ready once a snapshot
// has been loaded.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	response := gin.H{
		"status":    "ready",
		"service":   "targetscope",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	stats, err := h.svc.Stats()
	if err != nil {
		response["status"] = "not_ready"
		response["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	response["snapshot"] = stats
	c.JSON(http.StatusOK, response)
}

// LivenessCheck handles GET /live - Kubernetes liveness probe endpoint
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"service":   "targetscope",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// DetailedHealthCheck handles GET /health/detailed
func (h *HealthHandler) DetailedHealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := gin.H{
		"status":  "healthy",
		"service": "targetscope",
		"version": Version,
		"build_info": gin.H{
			"git_commit": GitCommit,
			"build_time": BuildTime,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"environment": gin.H{
			"go_version": GoVersion,
		},
		"system": gin.H{
			"goroutines":   runtime.NumGoroutine(),
			"heap_objects": m.HeapObjects,
			"gc_cycles":    m.NumGC,
		},
	}

	stats, err := h.svc.Stats()
	if err != nil {
		response["snapshot"] = gin.H{"loaded": false}
	} else {
		response["snapshot"] = stats
	}

	c.JSON(http.StatusOK, response)
}
