package librarian

import (
	"net/http"
	"strconv"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeleteVideo handles DELETE /librarian/delete-video/:id
func DeleteVideo(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	videoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Video ID must be a number",
			"requestID": requestID,
		})
		return
	}

	res := d.DB.Delete(model.Video{}, videoID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete video", zap.Error(res.Error), zap.String("requestID", requestID))
		return
	}

	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Video not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Video deleted successfully",
		"requestID": requestID,
	})
}
