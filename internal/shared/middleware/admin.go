package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminClaim is the grant key marking administrative users.
const AdminClaim = "is_admin"

// AdminMiddleware requires an is_admin grant on the authenticated principal.
// Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		grantsValue, exists := c.Get(CtxGrants)
		if !exists {
			forbidden(c)
			return
		}

		grants, ok := grantsValue.(map[string]string)
		if !ok || grants[AdminClaim] != "true" {
			forbidden(c)
			return
		}

		c.Next()
	}
}

// IsAdmin reports whether the authenticated principal carries the admin grant.
func IsAdmin(c *gin.Context) bool {
	grantsValue, exists := c.Get(CtxGrants)
	if !exists {
		return false
	}
	grants, ok := grantsValue.(map[string]string)
	return ok && grants[AdminClaim] == "true"
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"success": false,
		"error":   "Access denied: admin claim required",
	})
	c.Abort()
}
