package middleware

import (
	"net/http"
	"strings"

	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewAuthMiddleware resolves the current user from the Authorization
// bearer token and stores the row under "user". The row is loaded on
// every request so deleted accounts lose access immediately even with
// a token that is still valid
func NewAuthMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Missing Authorization header",
				"requestID": requestID,
			})
			return
		}

		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Authorization header must be a bearer token",
				"requestID": requestID,
			})
			return
		}

		claims, err := security.ParseToken(tokenStr, security.SessionSecret())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Could not validate credentials",
				"requestID": requestID,
			})
			return
		}

		var user model.User

		err = d.Preload("Role").Where("username = ?", claims.Subject).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "Could not validate credentials",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to load user for token subject", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("user", &user)
		c.Set("username", user.Username)
		c.Next()
	}
}

// CurrentUser returns the user resolved by NewAuthMiddleware. Only
// valid on routes behind it
func CurrentUser(c *gin.Context) *model.User {
	return c.MustGet("user").(*model.User)
}
