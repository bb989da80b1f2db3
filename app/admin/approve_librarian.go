package admin

import (
	"errors"
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ApproveLibrarian handles PATCH /admin/approve-librarian/:id
func ApproveLibrarian(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var librarian model.User

	err := d.DB.
		Preload("Role").
		First(&librarian, "id = ?", c.Param("id")).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Librarian not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch librarian", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if librarian.Role.Name != model.RoleLibrarian {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Librarian not found",
			"requestID": requestID,
		})
		return
	}

	err = d.DB.
		Model(&librarian).
		Update("librarian_verified", true).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to approve librarian", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Librarian approved successfully"})
}
