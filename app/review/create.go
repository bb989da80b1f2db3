package review

import (
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/middleware"
	"github.com/Maycoooz/DD-bot/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Create handles POST /reviews/app. Saves an app review for the
// logged in user
func Create(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var body struct {
		Review string `json:"review"`
		Stars  int    `json:"stars"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.ReviewValidator(body.Review, body.Stars); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	user := middleware.CurrentUser(c)

	review := model.Review{
		UserID:     user.ID,
		Review:     body.Review,
		Stars:      body.Stars,
		ReviewType: model.ReviewTypeApp,
	}

	if err := d.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create review", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, review)
}
