package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gridfall/progression/internal/http/handlers"
	"github.com/gridfall/progression/internal/http/middleware"
	"github.com/gridfall/progression/internal/infrastructure/logger"
	"github.com/gridfall/progression/internal/transport"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router             *gin.Engine
	progressionHandler *handlers.ProgressionHandler
	transportHandler   *transport.Handler
	errorHandler       *middleware.ErrorHandler
	port               string
}

// NewServer creates a new HTTP server
func NewServer(
	progressionHandler *handlers.ProgressionHandler,
	transportHandler *transport.Handler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:             router,
		progressionHandler: progressionHandler,
		transportHandler:   transportHandler,
		errorHandler:       errorHandler,
		port:               port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The game server attaches here once and stays connected.
	s.router.GET("/ws/server", s.transportHandler.Serve)

	v1 := s.router.Group("/api/v1")
	{
		progressionRoutes := v1.Group("/progression")
		{
			progressionRoutes.POST("/login", s.progressionHandler.Login)
			progressionRoutes.GET("/:id", s.progressionHandler.GetProfile)
			progressionRoutes.POST("/:id/game-result", s.progressionHandler.ReportGameResult)
			progressionRoutes.POST("/:id/unlock-skill", s.progressionHandler.UnlockSkill)
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
