package middleware

import (
	"net/http"
	"strings"

	"second-brain-api/internal/apps/auth/service"

	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key carrying the authenticated user's id
const userIDKey = "authUserID"

// UserID returns the authenticated user's id from the request context.
// The second return value is false for unauthenticated requests.
func UserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// RequireAuth rejects requests without a valid bearer token
func RequireAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalAuth attaches the user id when a valid bearer token is present and
// lets the request through anonymously otherwise
func OptionalAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if userID, err := tokens.Verify(token); err == nil {
				c.Set(userIDKey, userID)
			}
		}
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <jwt>" header
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
