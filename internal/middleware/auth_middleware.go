package middleware

import (
	"net/http"
	"strings"

	"group-decision/internal/model"
	"group-decision/internal/repository"
	"group-decision/pkg/logger"
	"group-decision/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware verifies the identity provider's bearer token, stores the
// subject as "userID" and refreshes the caller's profile mirror.
func AuthMiddleware(userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		if claims.Name != "" || claims.Avatar != "" {
			profile := &model.User{ID: claims.Subject, Username: claims.Name, Avatar: claims.Avatar}
			if err := userRepo.Upsert(c.Request.Context(), profile); err != nil {
				logger.L.Warn("Failed to refresh user profile", zap.String("userID", claims.Subject), zap.Error(err))
			}
		}

		c.Set("userID", claims.Subject)
		c.Next()
	}
}
