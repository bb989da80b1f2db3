package librarian

import (
	"net/http"
	"strconv"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type editVideoBody struct {
	Title       *string `json:"title,omitempty"`
	Creator     *string `json:"creator,omitempty"`
	AgeGroup    *string `json:"age_group,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty"`
}

// EditVideo handles PATCH /librarian/edit-video/:id
func EditVideo(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	videoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Video ID must be a number",
			"requestID": requestID,
		})
		return
	}

	var data editVideoBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	var video model.Video

	err = d.DB.Where("id = ?", videoID).First(&video).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Video not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch video", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	updates := map[string]any{}

	if data.Title != nil {
		updates["title"] = *data.Title
	}
	if data.Creator != nil {
		updates["creator"] = *data.Creator
	}
	if data.AgeGroup != nil {
		updates["age_group"] = *data.AgeGroup
	}
	if data.Category != nil {
		updates["category"] = *data.Category
	}
	if data.Description != nil {
		updates["description"] = *data.Description
	}
	if data.Link != nil && *data.Link != video.Link {
		if linkInUse(c, d, *data.Link, 0, video.ID) {
			return
		}
		updates["link"] = *data.Link
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No edit options provided",
			"requestID": requestID,
		})
		return
	}

	err = d.DB.Model(&video).Updates(updates).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update video", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, video)
}
