package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/authz"
)

// RequireRoles rejects the request unless the caller's role is in the list.
func RequireRoles(roleIDs ...int) gin.HandlerFunc {
	allowed := make(map[int]struct{}, len(roleIDs))
	for _, id := range roleIDs {
		allowed[id] = struct{}{}
	}
	return func(c *gin.Context) {
		roleID := c.GetInt("roleID")
		if _, ok := allowed[roleID]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// ReadOnlyGuard blocks mutating verbs for audit accounts.
func ReadOnlyGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if authz.IsReadOnly(c.GetInt("roleID")) && c.Request.Method != http.MethodGet {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "read-only account"})
			return
		}
		c.Next()
	}
}
