package librarian

import (
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ViewAllVideos handles GET /librarian/view-all-videos
func ViewAllVideos(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	params, ok := parseListParams(c)
	if !ok {
		return
	}

	q := params.apply(d.DB.Model(model.Video{}))

	var total int64

	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to count videos", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var videos []model.Video

	err := q.
		Order("id desc").
		Offset((params.Page - 1) * params.Size).
		Limit(params.Size).
		Find(&videos).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch videos", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total": total,
		"items": videos,
	})
}
