package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/yantrika/yantrika-backend-go/config"
)

// AdminKey gates a route behind the shared x-admin-key secret. An empty
// configured key locks the route entirely; the response never hints at
// what is behind it.
func AdminKey(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("x-admin-key")
		if cfg.AdminKey == "" || key != cfg.AdminKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
