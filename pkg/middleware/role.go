package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles narrows a route group to the given role names. It runs
// after NewAuthMiddleware, so the role check happens exactly once at
// the routing layer instead of inside each handler
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		if !allowed[CurrentUser(c).Role.Name] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "The user does not have privileges to access this resource",
				"requestID": requestID,
			})
			return
		}

		c.Next()
	}
}
