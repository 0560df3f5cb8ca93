// README: API-key auth middleware.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKey rejects requests whose X-Api-Key header does not match the
// configured key. An empty key disables the check; the chat surface
// runs open in local development.
func APIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		if c.GetHeader("X-Api-Key") != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
			return
		}
		c.Next()
	}
}
