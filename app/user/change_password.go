package user

import (
	"net/http"
	"strconv"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/middleware"
	"github.com/Maycoooz/DD-bot/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type changePasswordBody struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword handles PATCH /users/change-password/:id. A user may
// change their own password (proving the current one) and a parent may
// reset a password for their own children without it
func ChangePassword(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	current := middleware.CurrentUser(c)

	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "User ID must be a number",
			"requestID": requestID,
		})
		return
	}

	var data changePasswordBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	var target model.User

	err = d.DB.Where("id = ?", targetID).First(&target).Error
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

		zap.L().Error("Failed to fetch target user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	switch {
	case target.ID == current.ID:
		ok, err := d.Argon.Verify(data.CurrentPassword, current.PasswordHash)
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
				"error":     "Current password is incorrect",
				"requestID": requestID,
			})
			return
		}

	case current.Role.Name == model.RoleParent &&
		target.PrimaryParentID != nil && *target.PrimaryParentID == current.ID:
		// Parents reset their own children's passwords freely

	default:
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "You are not allowed to change this user's password",
			"requestID": requestID,
		})
		return
	}

	hash, err := d.Argon.Hash(data.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = d.DB.Model(model.User{}).
		Where("id = ?", target.ID).
		Update("password_hash", hash).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Password changed successfully",
		"requestID": requestID,
	})
}
