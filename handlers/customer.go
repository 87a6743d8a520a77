package handlers

import (
	"net/http"

	"barberflow/middleware"
	customerService "barberflow/services/customer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler lists a tenant's customers over the admin API.
type CustomerHandler struct {
	Customers customerService.CustomerService
	Logger    *zap.Logger
}

// ListCustomers handles GET /api/customers.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	tenantID := middleware.TenantFromContext(c)
	customers, err := h.Customers.FindAllByTenant(tenantID)
	if err != nil {
		h.Logger.Error("ListCustomers: failed to fetch customers", zap.Int64("tenantId", tenantID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}
