package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "aquafarm.io/steward/internal/pkg/errors"
	"aquafarm.io/steward/internal/usecase"
)

// deleteInputFromRequest builds the use case input from the authenticated
// request. Tenant comes from the token, never from the URL or body.
func deleteInputFromRequest(c *gin.Context) (usecase.DeleteInput, bool) {
	tenantID := c.GetString("tenant_id")
	if tenantID == "" {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "no tenant in request context"))
		return usecase.DeleteInput{}, false
	}

	cascade, _ := strconv.ParseBool(c.DefaultQuery("cascade", "false"))
	return usecase.DeleteInput{
		ID:       c.Param("id"),
		TenantID: tenantID,
		UserID:   actorFromCtx(c),
		Cascade:  cascade,
	}, true
}

func tenantFromRequest(c *gin.Context) (string, bool) {
	tenantID := c.GetString("tenant_id")
	if tenantID == "" {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "no tenant in request context"))
		return "", false
	}
	return tenantID, true
}

// PreviewSiteDelete handles GET /sites/:id/delete-preview.
func (s *Server) PreviewSiteDelete(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}
	preview, err := s.sites.Preview(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// DeleteSite handles DELETE /sites/:id.
func (s *Server) DeleteSite(c *gin.Context) {
	input, ok := deleteInputFromRequest(c)
	if !ok {
		return
	}
	result, err := s.sites.Execute(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PreviewDepartmentDelete handles GET /departments/:id/delete-preview.
func (s *Server) PreviewDepartmentDelete(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}
	preview, err := s.departments.Preview(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// DeleteDepartment handles DELETE /departments/:id.
func (s *Server) DeleteDepartment(c *gin.Context) {
	input, ok := deleteInputFromRequest(c)
	if !ok {
		return
	}
	result, err := s.departments.Execute(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PreviewSystemDelete handles GET /systems/:id/delete-preview.
func (s *Server) PreviewSystemDelete(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}
	preview, err := s.systems.Preview(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// DeleteSystem handles DELETE /systems/:id.
func (s *Server) DeleteSystem(c *gin.Context) {
	input, ok := deleteInputFromRequest(c)
	if !ok {
		return
	}
	result, err := s.systems.Execute(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PreviewEquipmentDelete handles GET /equipment/:id/delete-preview.
func (s *Server) PreviewEquipmentDelete(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}
	preview, err := s.equipment.Preview(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// DeleteEquipment handles DELETE /equipment/:id.
func (s *Server) DeleteEquipment(c *gin.Context) {
	input, ok := deleteInputFromRequest(c)
	if !ok {
		return
	}
	result, err := s.equipment.Execute(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}
