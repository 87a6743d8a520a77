package handlers

import (
	"net/http"
	"strconv"

	"barberflow/middleware"
	"barberflow/models"
	catalogService "barberflow/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler manages a tenant's service catalog over the admin API.
type CatalogHandler struct {
	Catalog catalogService.CatalogService
	Logger  *zap.Logger
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	tenantID := middleware.TenantFromContext(c)
	services, err := h.Catalog.FindAllByTenant(tenantID)
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch services", zap.Int64("tenantId", tenantID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateService handles POST /api/services.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	tenantID := middleware.TenantFromContext(c)

	var body models.Service
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}
	body.TenantID = tenantID

	if err := h.Catalog.Create(&body); err != nil {
		h.Logger.Error("CreateService: create failed", zap.Int64("tenantId", tenantID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create service", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, body)
}

// UpdateService handles PUT /api/services/:id.
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	tenantID := middleware.TenantFromContext(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	existing, err := h.Catalog.GetByIDAndTenant(id, tenantID)
	if err != nil || existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}

	var body models.Service
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}
	body.ID = id
	body.TenantID = tenantID

	if err := h.Catalog.Update(&body); err != nil {
		h.Logger.Error("UpdateService: update failed", zap.Int64("serviceId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update service", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, body)
}

// DeleteService handles DELETE /api/services/:id.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	tenantID := middleware.TenantFromContext(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	existing, err := h.Catalog.GetByIDAndTenant(id, tenantID)
	if err != nil || existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}

	if err := h.Catalog.Delete(id); err != nil {
		h.Logger.Error("DeleteService: delete failed", zap.Int64("serviceId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service"})
		return
	}
	c.Status(http.StatusNoContent)
}
