package admin

import (
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LibrarianBooks handles GET /admin/librarian/:id/books
func LibrarianBooks(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	librarian, ok := fetchLibrarian(c, d)
	if !ok {
		return
	}

	var books []model.Book

	err := d.DB.
		Where("source = ?", librarian.Username).
		Order("id desc").
		Find(&books).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch librarian books", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, books)
}

// LibrarianVideos handles GET /admin/librarian/:id/videos
func LibrarianVideos(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	librarian, ok := fetchLibrarian(c, d)
	if !ok {
		return
	}

	var videos []model.Video

	err := d.DB.
		Where("source = ?", librarian.Username).
		Order("id desc").
		Find(&videos).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch librarian videos", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, videos)
}
