// Package middleware holds the gin middleware resolving the caller identity.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobtrackr/internal/auth"
)

const contextUserIDKey = "user_id"

// Auth rejects requests without a valid bearer token and stores the owner
// identity in the request context for the handlers downstream.
func Auth(tokens *auth.TokenProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}
		userID, err := tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

// UserID returns the owner identity stored by Auth. Empty string means the
// route was not behind the middleware.
func UserID(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}
