package root

import (
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LandingPageContent handles GET /landing-page-content, the public copy
// of the marketing page rows
func LandingPageContent(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var rows []model.LandingPage

	if err := d.DB.Order("id").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch landing page content", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, rows)
}
