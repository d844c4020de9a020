package middleware

import (
	"errors"
	"net/http"
	"strings"

	"interview-tracker/internal/delivery/http/response"
	"interview-tracker/internal/domain"
	"interview-tracker/pkg/auth"
	"interview-tracker/pkg/security"

	"github.com/gin-gonic/gin"
)

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware requires a valid bearer token and stores the caller's id and
// email on the context.
func AuthMiddleware(tokens TokenVerifier, secLogger *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reject := func(message, reason string) {
			secLogger.LogUnauthorized(c.Request.Context(), c.ClientIP(), c.GetString(string(domain.KeyRequestID)), reason)
			response.Error(c, http.StatusUnauthorized, message, nil)
			c.Abort()
		}

		header := c.GetHeader("Authorization")
		scheme, tokenString, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			reject("Authorization header required", "missing bearer token")
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				reject("Token expired", "expired token")
				return
			}
			reject("Invalid token", "invalid token")
			return
		}

		c.Set(string(domain.KeyUserID), claims.ID)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Next()
	}
}
