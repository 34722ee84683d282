package middleware

import (
	"net/http"

	"gatherly/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminRequired loads the user record and checks the admin flag. Must run
// after AuthRequired. The flag is read from the store rather than the token
// so revoking admin takes effect immediately.
func AdminRequired(userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		u, err := userRepo.GetByID(userID)
		if err != nil || !u.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
