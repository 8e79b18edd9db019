package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"aquafarm.io/steward/internal/api/handlers"
	"aquafarm.io/steward/internal/api/middleware"
	"aquafarm.io/steward/internal/config"
)

func newRouter(cfg *config.Config, server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))

	// Probes stay unauthenticated.
	server.RegisterHealthRoutes(router)

	api := router.Group("/api/v1")
	api.Use(middleware.JWTAuth([]byte(cfg.Security.JWTSecret)))
	server.RegisterRoutes(api)

	return router
}
