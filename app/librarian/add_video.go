package librarian

import (
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/middleware"
	"github.com/Maycoooz/DD-bot/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type addVideoBody struct {
	Title       string `json:"title"`
	Creator     string `json:"creator"`
	AgeGroup    string `json:"age_group"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// AddVideo handles POST /librarian/add-video
func AddVideo(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data addVideoBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.MediaValidator(data.Title, data.Creator, data.Link); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if linkInUse(c, d, data.Link, 0, 0) {
		return
	}

	video := model.Video{
		Title:       data.Title,
		Creator:     data.Creator,
		AgeGroup:    data.AgeGroup,
		Category:    data.Category,
		Description: data.Description,
		Link:        data.Link,
		Source:      middleware.CurrentUser(c).Username,
	}

	if video.AgeGroup == "" {
		video.AgeGroup = "5-12"
	}

	if err := d.DB.Create(&video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create video", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, video)
}
