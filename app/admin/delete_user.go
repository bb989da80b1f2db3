package admin

import (
	"errors"
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeleteUser handles DELETE /admin/delete-user/:id. Removes a parent or
// child account together with everything hanging off it. Deleting a
// parent also removes all of their children. Admin accounts can not be
// deleted through this route
func DeleteUser(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var target model.User

	err := d.DB.Preload("Role").First(&target, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
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

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if target.Role.Name == model.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "Admin accounts can not be deleted",
			"requestID": requestID,
		})
		return
	}

	err = d.DB.Transaction(func(tx *gorm.DB) error {
		var children []model.User

		if err := tx.Where("primary_parent_id = ?", target.ID).Find(&children).Error; err != nil {
			return err
		}

		for i := range children {
			if err := deleteUserRow(tx, &children[i]); err != nil {
				return err
			}
		}

		return deleteUserRow(tx, &target)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func deleteUserRow(tx *gorm.DB, u *model.User) error {
	if err := tx.Where("user_id = ?", u.ID).Delete(&model.Review{}).Error; err != nil {
		return err
	}

	if err := tx.Model(u).Association("Interests").Clear(); err != nil {
		return err
	}

	return tx.Delete(u).Error
}
