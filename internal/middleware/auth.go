package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/task-tracker-api/internal/constants"
	"github.com/adiprasetyo/task-tracker-api/internal/repository"
	"github.com/adiprasetyo/task-tracker-api/internal/response"
	"github.com/adiprasetyo/task-tracker-api/internal/utils"
)

// RequireAuth authenticates the request from the Authorization header.
// The presented bearer token is hashed and looked up; a revoked or unknown
// token fails with 401 before any handler runs.
func RequireAuth(tokens repository.TokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Authorization header format must be Bearer {token}")
			c.Abort()
			return
		}

		token, err := tokens.FindByHash(utils.HashToken(parts[1]))
		if err != nil {
			response.Unauthorized(c, "Unauthenticated")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, token.UserID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context.
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
