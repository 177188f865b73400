package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"library-api/pkg/jwt"
)

const (
	// Context keys set by AuthMiddleware.
	CtxUserEmail = "userEmail"
	CtxGrants    = "grants"
)

// AuthMiddleware validates the Bearer token and stores the principal's email
// and granted claims in the request context.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := manager.Validate(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxGrants, claims.Grants)

		c.Next()
	}
}

// UserEmail returns the authenticated principal's email, or empty when
// the request carried no valid token.
func UserEmail(c *gin.Context) string {
	return c.GetString(CtxUserEmail)
}
