// Package middleware provides Gin middleware for the auth feature's HTTP transport.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/shared/response"
)

// ContextToken is the gin context key holding the raw bearer token.
const ContextToken = "authToken"

// BearerToken returns a Gin middleware function that extracts the bearer
// token from the Authorization header and stores it in the request context.
// Requests without a bearer token are rejected with 401; token validity is
// checked later by the usecase, which receives the token explicitly.
func BearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "Invalid token credentials!")
			return
		}
		token := strings.TrimPrefix(auth, "Bearer ")
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "Invalid token credentials!")
			return
		}

		// 2. Hand the raw token to the handlers via the context
		c.Set(ContextToken, token)

		// 3. Pass control to the next handler
		c.Next()
	}
}

// TokenFromContext returns the bearer token stored by BearerToken.
func TokenFromContext(c *gin.Context) string {
	token, _ := c.Get(ContextToken)
	s, _ := token.(string)
	return s
}
