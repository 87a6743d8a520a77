package middleware

import (
	"net/http"
	"strings"

	"barberflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserKey   = "authUser"
	ContextTenantKey = "authTenantID"
)

// AuthMiddleware validates the Bearer token and scopes the request to the
// tenant encoded in the token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or malformed"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		sub, tenantID, err := utils.ExtractClaims(tokenString)
		if err != nil {
			zap.L().Warn("Rejected token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if tenantID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has no tenant scope"})
			return
		}

		c.Set(ContextUserKey, sub)
		c.Set(ContextTenantKey, tenantID)
		c.Next()
	}
}

// TenantFromContext returns the tenant scope set by AuthMiddleware.
func TenantFromContext(c *gin.Context) int64 {
	if v, ok := c.Get(ContextTenantKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
