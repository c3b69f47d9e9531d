package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"traites/internal/authz"
)

func RequireRoles(allowed ...int) gin.HandlerFunc {
	allowedSet := map[int]struct{}{}
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *gin.Context) {
		v, exists := c.Get("role_id")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no role in context"})
			return
		}
		roleID, _ := v.(int)
		if _, ok := allowedSet[roleID]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// ReadOnlyGuard lets the audit role read but never write. exempt lists route
// patterns (as registered with gin) that accept a body without storing anything.
func ReadOnlyGuard(exempt ...string) gin.HandlerFunc {
	exemptSet := map[string]struct{}{}
	for _, p := range exempt {
		exemptSet[p] = struct{}{}
	}
	return func(c *gin.Context) {
		roleV, _ := c.Get("role_id")
		roleID, _ := roleV.(int)
		if authz.IsReadOnly(roleID) {
			switch c.Request.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
			default:
				if _, ok := exemptSet[c.FullPath()]; !ok {
					c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "read-only role"})
					return
				}
			}
		}
		c.Next()
	}
}
