package parent

import (
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MyChildren handles GET /parent/my-children
func MyChildren(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	parent := middleware.CurrentUser(c)

	var children []model.User

	err := d.DB.
		Preload("Interests").
		Where("primary_parent_id = ?", parent.ID).
		Order("id").
		Find(&children).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch children", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	out := make([]gin.H, len(children))
	for i := range children {
		out[i] = childResponse(&children[i])
	}

	c.JSON(http.StatusOK, out)
}
