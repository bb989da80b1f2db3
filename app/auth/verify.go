package auth

import (
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// VerifyEmail handles GET /auth/verify?token=. Decodes the token with
// the verification secret only, so a session token can never verify an
// address. Verifying twice is a no-op success
func VerifyEmail(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No verification token provided",
			"requestID": requestID,
		})
		return
	}

	claims, err := security.ParseToken(token, security.VerificationSecret())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid token",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	err = d.DB.Where("email = ?", claims.Subject).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user by email claim", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if user.IsVerified {
		c.JSON(http.StatusOK, gin.H{
			"message":   "User is verified. Please close this page and login",
			"requestID": requestID,
		})
		return
	}

	err = d.DB.Model(model.User{}).
		Where("id = ?", user.ID).
		Update("is_verified", true).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to mark user as verified", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Email verified successfully. You can now log in",
		"requestID": requestID,
	})
}
