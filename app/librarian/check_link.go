// Package librarian contains the catalog management endpoints and the
// public book/video listings
package librarian

import (
	"fmt"
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// linkInUse checks both catalog tables for link and answers the client
// with a 409 naming the conflicting title when it is taken. Rows with
// the given IDs are skipped so edits don't conflict with themselves.
// Returns true when a response was written.
//
// A concurrent insert can still slip between this check and the write;
// the unique index on link is the backstop
func linkInUse(c *gin.Context, d *internal.Deps, link string, excludeBookID, excludeVideoID uint) bool {
	requestID := c.MustGet("requestID").(string)

	var book model.Book

	err := d.DB.
		Where("link = ? AND id != ?", link, excludeBookID).
		First(&book).
		Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":     fmt.Sprintf("This link is already in use by the book titled: '%s'", book.Title),
			"requestID": requestID,
		})
		return true
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check book links", zap.Error(err), zap.String("requestID", requestID))
		return true
	}

	var video model.Video

	err = d.DB.
		Where("link = ? AND id != ?", link, excludeVideoID).
		First(&video).
		Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":     fmt.Sprintf("This link is already in use by the video titled: '%s'", video.Title),
			"requestID": requestID,
		})
		return true
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check video links", zap.Error(err), zap.String("requestID", requestID))
		return true
	}

	return false
}
