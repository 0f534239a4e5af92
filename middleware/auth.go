package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schooldir/dto"
	"schooldir/utils"
)

// JWTAuth is the JWT authentication middleware. The 401 message tells an
// absent credential apart from an invalid or expired one.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, err := utils.ExtractTokenFromHeader(authHeader)
		if err != nil {
			unauthorized(c, err)
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			unauthorized(c, err)
			return
		}

		// Store the identity claim in the request-scoped context for
		// downstream handlers
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)

		c.Next()
	}
}

func unauthorized(c *gin.Context, err error) {
	message := "Authentication token required. Please login first."
	if errors.Is(err, utils.ErrTokenInvalid) || errors.Is(err, utils.ErrTokenExpired) {
		message = "Invalid or expired token. Please login again."
	}
	dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized", message)
	c.Abort()
}

// GetCurrentUserID extracts current user ID from context
func GetCurrentUserID(c *gin.Context) (int, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}

	id, ok := userID.(int)
	return id, ok
}

// GetCurrentUsername extracts current username from context
func GetCurrentUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}
