package middleware

import (
	"net/http"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireRole is a middleware that checks if the caller has the required role.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Set by JWTAuth
		role, exists := c.Get("userRole")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.NewAPIError(models.ErrUnauthorized, "Caller not authenticated"))
			return
		}

		userRole, ok := role.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				models.NewAPIError(models.ErrForbidden, "Invalid role format"))
			return
		}

		if userRole != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden,
				"Insufficient permissions", map[string]interface{}{
					"required_role": requiredRole,
					"user_role":     userRole,
				}))
			return
		}

		c.Next()
	}
}
