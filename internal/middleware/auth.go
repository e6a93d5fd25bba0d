package middleware

import (
	"strings"

	"gymtrack/internal/models"
	"gymtrack/internal/repository"
	"gymtrack/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	contextUserIDKey = "user_id"
	contextUserKey   = "current_user"
)

// AuthMiddleware validates the bearer token and resolves its subject to
// a live user row. A token whose user no longer exists is rejected.
func AuthMiddleware(jwtManager *utils.JWTManager, userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "not authenticated")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			utils.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		user, err := userRepo.GetByID(claims.UserID)
		if err != nil {
			utils.Unauthorized(c, "could not validate credentials")
			c.Abort()
			return
		}

		c.Set(contextUserIDKey, user.ID)
		c.Set(contextUserKey, user)

		c.Next()
	}
}

// GetUserID returns the authenticated user id from the request context.
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(contextUserIDKey)
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// GetCurrentUser returns the authenticated user from the request context.
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	user, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	return user.(*models.User), true
}
