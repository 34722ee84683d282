package middleware

import (
	"net/http"
	"strings"

	"gatherly/config"
	"gatherly/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the bearer token and sets user_id in context.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := resolveToken(cfg, c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

// OptionalAuth resolves an identity when a valid token is present but never
// rejects; anonymous requests simply carry no user_id.
func OptionalAuth(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := resolveToken(cfg, c); ok {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

func resolveToken(cfg *config.JWTConfig, c *gin.Context) (uint, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return 0, false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, false
	}
	claims, err := auth.ParseToken(cfg, parts[1])
	if err != nil {
		return 0, false
	}
	return claims.UserID, true
}

// GetUserID returns the authenticated user ID from context, or 0 when the
// request is anonymous.
func GetUserID(c *gin.Context) uint {
	v, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	return v.(uint)
}
