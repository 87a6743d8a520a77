package handlers

import (
	"net/http"

	"barberflow/middleware"
	"barberflow/models"
	tenantService "barberflow/services/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TenantHandler exposes the authenticated tenant's own profile.
type TenantHandler struct {
	Tenants tenantService.TenantService
	Logger  *zap.Logger
}

// GetProfile handles GET /api/tenant.
func (h *TenantHandler) GetProfile(c *gin.Context) {
	tenantID := middleware.TenantFromContext(c)
	tenant, err := h.Tenants.GetByID(tenantID)
	if err != nil {
		h.Logger.Error("GetProfile: tenant lookup failed", zap.Int64("tenantId", tenantID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tenant"})
		return
	}
	if tenant == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// UpdateProfile handles PUT /api/tenant.
func (h *TenantHandler) UpdateProfile(c *gin.Context) {
	tenantID := middleware.TenantFromContext(c)

	var body models.Tenant
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}
	body.ID = tenantID

	if err := h.Tenants.Update(&body); err != nil {
		h.Logger.Error("UpdateProfile: update failed", zap.Int64("tenantId", tenantID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update tenant", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, body)
}
