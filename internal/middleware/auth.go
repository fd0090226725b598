package middleware

import (
	"net/http"
	"strings"

	"github.com/KyleAMathews/group-question-game/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminAuth guards the admin surface. Besides validating the JWT it asks the
// whitelist again, so an admin removed from ADMIN_USERS is locked out even
// while their token is still fresh.
func AdminAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		adminID, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		if !authService.IsAdmin(adminID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin access revoked"})
			return
		}

		c.Set("admin_id", adminID)
		c.Next()
	}
}
