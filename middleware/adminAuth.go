package middleware

import (
	"net/http"
	"strings"

	"terravista/services/admin"
	"terravista/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the back-office routes. It validates the bearer
// token and re-checks admin_users membership on every request; a missing
// session and a non-member both get the same 401.
func AdminAuthMiddleware(authSvc admin.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || adminID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		ok, err := authSvc.IsAdmin(c.Request.Context(), adminID)
		if err != nil || !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminID", adminID)
		c.Next()
	}
}
