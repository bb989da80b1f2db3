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

// DeleteLibrarian handles DELETE /admin/delete-librarian/:id. Removes
// the librarian together with every book and video they uploaded
func DeleteLibrarian(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	librarian, ok := fetchLibrarian(c, d)
	if !ok {
		return
	}

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("source = ?", librarian.Username).Delete(&model.Book{}).Error; err != nil {
			return err
		}

		if err := tx.Where("source = ?", librarian.Username).Delete(&model.Video{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", librarian.ID).Delete(&model.Review{}).Error; err != nil {
			return err
		}

		return tx.Delete(librarian).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete librarian", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Librarian deleted successfully"})
}

// fetchLibrarian loads the librarian account named by the :id route
// param. Writes the error response and returns ok=false when the row
// is missing or not a librarian
func fetchLibrarian(c *gin.Context, d *internal.Deps) (*model.User, bool) {
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
			return nil, false
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch librarian", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	if librarian.Role.Name != model.RoleLibrarian {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Librarian not found",
			"requestID": requestID,
		})
		return nil, false
	}

	return &librarian, true
}
