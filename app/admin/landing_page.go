package admin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LandingPageContent handles GET /admin/landing-page-content
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

// UpdateLandingPageContent handles PUT /admin/landing-page-content/:id
func UpdateLandingPageContent(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var body struct {
		DisplayText string `json:"display_text"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if strings.TrimSpace(body.DisplayText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Display text can not be empty",
			"requestID": requestID,
		})
		return
	}

	var row model.LandingPage

	err := d.DB.First(&row, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Landing page content not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch landing page content", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = d.DB.Model(&row).Update("display_text", body.DisplayText).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update landing page content", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	row.DisplayText = body.DisplayText

	c.JSON(http.StatusOK, row)
}
