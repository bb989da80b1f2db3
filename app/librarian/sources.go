package librarian

import (
	"net/http"
	"slices"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Sources handles GET /librarian/media-sources. Returns the sorted,
// distinct librarian usernames found across both catalog tables
func Sources(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var bookSources, videoSources []string

	err := d.DB.Model(model.Book{}).Distinct("source").Pluck("source", &bookSources).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch book sources", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = d.DB.Model(model.Video{}).Distinct("source").Pluck("source", &videoSources).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch video sources", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	seen := make(map[string]bool)
	sources := []string{}

	for _, s := range append(bookSources, videoSources...) {
		if s != "" && !seen[s] {
			seen[s] = true
			sources = append(sources, s)
		}
	}

	slices.Sort(sources)

	c.JSON(http.StatusOK, sources)
}
