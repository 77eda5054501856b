package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdministratorRole is the role claim value that grants admin access.
// The role claim is authoritative; there is no admin-by-email fallback.
const AdministratorRole = "administrator"

// RequireAdministrator rejects requests whose JWT role claim is not
// administrator. It must run after JWTAuthMiddleware.
func RequireAdministrator() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetJWTRole(c) != AdministratorRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_FORBIDDEN",
					"message": "Administrator access required",
				},
			})
			return
		}
		c.Next()
	}
}
