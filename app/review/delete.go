package review

import (
	"errors"
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Delete handles DELETE /reviews/:id. Users can only delete their own
// reviews
func Delete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var review model.Review

	err := d.DB.First(&review, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Review not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch review", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if review.UserID != middleware.CurrentUser(c).ID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "You can only delete your own reviews",
			"requestID": requestID,
		})
		return
	}

	if err := d.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete review", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
