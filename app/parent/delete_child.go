package parent

import (
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeleteChild handles DELETE /parent/delete-child/:id. The child's
// reviews and interest links go with the account in one transaction
func DeleteChild(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	child := ownedChild(c, d)
	if child == nil {
		return
	}

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", child.ID).Delete(model.Review{}).Error; err != nil {
			return err
		}

		if err := tx.Model(child).Association("Interests").Clear(); err != nil {
			return err
		}

		return tx.Delete(model.User{}, child.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete child", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Child account deleted successfully",
		"requestID": requestID,
	})
}
