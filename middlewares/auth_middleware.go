package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"dailydiet/models"
	"dailydiet/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const UserIDKey = "userID"

// AuthMiddleware gates every meal route. A missing or malformed header is a
// 400; a token that fails signature or expiry checks, or whose subject no
// longer resolves to a stored user, is a 401 with the same message either
// way — the caller can't tell a bad signature from a deleted account.
func AuthMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Bearer jwt token required on authorization header!"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Bearer jwt token required on authorization header!"})
			return
		}

		userID, err := utils.ParseJWT(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token!"})
			return
		}

		var user models.User
		if err := db.WithContext(c.Request.Context()).Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token!"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error!"})
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Next()
	}
}
