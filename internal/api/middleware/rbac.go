package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "aquafarm.io/steward/internal/pkg/errors"
)

// AdminPermission grants every operation. Tokens for farm operators
// carry fine-grained permissions instead.
const AdminPermission = "farm:admin"

// RequirePermission returns a middleware that allows the request only
// when the token carries the named permission (or farm:admin). JWTAuth
// must run earlier in the chain.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		perms, exists := c.Get("permissions")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    apperrors.CodeAuthFailed,
				"message": "no permissions in token",
			})
			return
		}

		granted, ok := perms.([]string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    apperrors.CodeAuthFailed,
				"message": "malformed permissions claim",
			})
			return
		}

		for _, p := range granted {
			if p == permission || p == AdminPermission {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code":    apperrors.CodeAuthFailed,
			"message": "permission denied: " + permission,
		})
	}
}
