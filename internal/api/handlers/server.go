// Package handlers implements the HTTP surface for farm topology deletes.
//
// Routes are hand-registered in RegisterRoutes; every mutating endpoint
// resolves tenant and actor from the JWT middleware context and delegates
// to a use case. Handlers never touch the store directly.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"aquafarm.io/steward/internal/governance/audit"
	"aquafarm.io/steward/internal/usecase"
)

// Server holds the delete use cases and shared infrastructure.
type Server struct {
	pool        *pgxpool.Pool
	audit       *audit.Logger
	sites       *usecase.DeleteSiteUseCase
	departments *usecase.DeleteDepartmentUseCase
	systems     *usecase.DeleteSystemUseCase
	equipment   *usecase.DeleteEquipmentUseCase
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	Pool        *pgxpool.Pool
	Audit       *audit.Logger
	Sites       *usecase.DeleteSiteUseCase
	Departments *usecase.DeleteDepartmentUseCase
	Systems     *usecase.DeleteSystemUseCase
	Equipment   *usecase.DeleteEquipmentUseCase
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		pool:        deps.Pool,
		audit:       deps.Audit,
		sites:       deps.Sites,
		departments: deps.Departments,
		systems:     deps.Systems,
		equipment:   deps.Equipment,
	}
}

// RegisterRoutes attaches all API routes to the given group. The group is
// expected to already carry authentication middleware.
func (s *Server) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sites/:id/delete-preview", s.PreviewSiteDelete)
	rg.DELETE("/sites/:id", s.DeleteSite)

	rg.GET("/departments/:id/delete-preview", s.PreviewDepartmentDelete)
	rg.DELETE("/departments/:id", s.DeleteDepartment)

	rg.GET("/systems/:id/delete-preview", s.PreviewSystemDelete)
	rg.DELETE("/systems/:id", s.DeleteSystem)

	rg.GET("/equipment/:id/delete-preview", s.PreviewEquipmentDelete)
	rg.DELETE("/equipment/:id", s.DeleteEquipment)
}

// actorFromCtx extracts the authenticated user ID from the request context.
func actorFromCtx(c *gin.Context) string {
	if uid := c.GetString("user_id"); uid != "" {
		return uid
	}
	return "anonymous"
}
