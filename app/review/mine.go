package review

import (
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Mine handles GET /reviews/my-reviews
func Mine(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	user := middleware.CurrentUser(c)

	var reviews []model.Review

	err := d.DB.
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&reviews).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch reviews", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, reviews)
}
