package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAPIKey guards the admin surface with the dashboard API key.
func RequireAPIKey(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" || c.GetHeader("X-API-KEY") != apiKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			c.Abort()
			return
		}
		c.Next()
	}
}
