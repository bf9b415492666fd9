package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// ValidateAPIKey gates a route group behind the X-API-KEY header when
// ADMIN_API_KEY is configured. With no key configured the check is
// skipped, which is the demo deployment.
func ValidateAPIKey(c *gin.Context) {
	expected := os.Getenv("ADMIN_API_KEY")
	if expected == "" {
		c.Next()
		return
	}
	if c.GetHeader("X-API-KEY") != expected {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}
