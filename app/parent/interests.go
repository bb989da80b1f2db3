// Package parent contains the endpoints a parent uses to manage their
// children
package parent

import (
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Interests handles GET /parent/interests, the controlled vocabulary
// children pick from
func Interests(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var interests []model.Interest

	err := d.DB.Order("name").Find(&interests).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch interests", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, interests)
}
