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

type loginBody struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Login handles POST /auth/token. Bad credentials and an unknown
// username answer the same so usernames can't be probed
func Login(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if data.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Username field can't be empty",
			"requestID": requestID,
		})
		return
	}

	if data.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Password field can't be empty",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	err := d.DB.Preload("Role").Where("username = ?", data.Username).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":     "Incorrect username or password",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	ok, err := d.Argon.Verify(data.Password, user.PasswordHash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to verify password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":     "Incorrect username or password",
			"requestID": requestID,
		})
		return
	}

	if !user.IsVerified {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Please verify your email before logging in",
			"requestID": requestID,
		})
		return
	}

	accessToken, err := security.MakeAccessToken(user.Username, user.Role.Name, security.AccessTokenTTL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate access token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": accessToken,
		"token_type":   "bearer",
		"user_role":    user.Role.Name,
	})
}
