package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/targetscope/targetscope"
	"github.com/targetscope/targetscope/pkg/config"
	"github.com/targetscope/targetscope/pkg/server/handlers"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	router *gin.Engine
	svc    targetscope.Service
	server *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, svc targetscope.Service) *Server {
	return &Server{
		config: cfg,
		svc:    svc,
	}
}

// Setup sets up the server routes and middleware
func (s *Server) Setup() {
	// Set gin mode
	gin.SetMode(s.config.Server.Mode)

	// Create router
	s.router = gin.New()

	// Add middleware
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(corsMiddleware())

	// Setup routes
	s.setupRoutes()

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
}

// setupRoutes sets up all the routes
func (s *Server) setupRoutes() {
	// Create handlers
	healthHandler := handlers.NewHealthHandler(s.svc)
	graphHandler := handlers.NewGraphHandler(s.svc)
	analyticsHandler := handlers.NewAnalyticsHandler(s.svc, s.config.Scoring)
	retrieveHandler := handlers.NewRetrieveHandler(s.svc, s.config.Search)
	entityHandler := handlers.NewEntityHandler(s.svc)
	reloadHandler := handlers.NewReloadHandler(s.svc)

	// Health endpoints
	s.router.GET("/health", healthHandler.HealthCheck)
	s.router.GET("/ready", healthHandler.ReadinessCheck)
	s.router.GET("/live", healthHandler.LivenessCheck)
	s.router.GET("/health/detailed", healthHandler.DetailedHealthCheck)

	// API v1 routes
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/graph", graphHandler.GetGraph)

		v1.GET("/disease/:id", entityHandler.GetDisease)
		v1.GET("/protein/:id", entityHandler.GetProtein)
		v1.GET("/stats", entityHandler.GetStats)

		v1.GET("/opportunities", analyticsHandler.GetOpportunities)
		v1.GET("/hubs", analyticsHandler.GetHubs)
		v1.GET("/repurposing", analyticsHandler.GetRepurposing)
		v1.GET("/clusters", analyticsHandler.GetClusters)
		v1.GET("/multi-indication", analyticsHandler.GetMultiIndication)

		v1.POST("/search", retrieveHandler.Search)
		v1.GET("/neighbors/:id", retrieveHandler.Neighbors)

		v1.POST("/reload", reloadHandler.Reload)
	}
}

// Start starts the server
func (s *Server) Start() error {
	fmt.Printf("Starting server on %s\n", s.server.Addr)
	return s.server.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	fmt.Println("Stopping server...")
	return s.server.Shutdown(ctx)
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
