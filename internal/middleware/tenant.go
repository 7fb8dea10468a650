package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// TenantIDHeader carries the tenant the request acts for.
	TenantIDHeader = "X-Tenant-ID"
	// TenantIDKey is the context key for the tenant id
	TenantIDKey = "tenant_id"
	// UserIDHeader identifies the uploading user when the form omits it.
	UserIDHeader = "X-User-ID"
)

// Tenant rejects requests without an X-Tenant-ID header and stores the
// tenant id in the gin context.
func Tenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader(TenantIDHeader))
		if tenantID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": TenantIDHeader + " header is required"})
			return
		}

		c.Set(TenantIDKey, tenantID)
		c.Next()
	}
}

// GetTenantID retrieves the tenant id from the gin context.
func GetTenantID(c *gin.Context) string {
	if tenantID, exists := c.Get(TenantIDKey); exists {
		if id, ok := tenantID.(string); ok {
			return id
		}
	}
	return ""
}
