package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ModeratorMiddleware checks if the caller has the moderator or admin role.
// Every moderation action goes through this guard.
func ModeratorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Access denied: moderator role required",
			})
			c.Abort()
			return
		}

		role, ok := roleInterface.(string)
		if !ok || (role != "admin" && role != "moderator") {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Access denied: moderator role required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
