package librarian

import (
	"net/http"
	"strconv"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type editBookBody struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	AgeGroup    *string `json:"age_group,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty"`
}

// EditBook handles PATCH /librarian/edit-book/:id. Only supplied fields
// overwrite stored values; a changed link is re-checked across both
// catalog tables
func EditBook(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	bookID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Book ID must be a number",
			"requestID": requestID,
		})
		return
	}

	var data editBookBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	var book model.Book

	err = d.DB.Where("id = ?", bookID).First(&book).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Book not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch book", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	updates := map[string]any{}

	if data.Title != nil {
		updates["title"] = *data.Title
	}
	if data.Author != nil {
		updates["author"] = *data.Author
	}
	if data.AgeGroup != nil {
		updates["age_group"] = *data.AgeGroup
	}
	if data.Category != nil {
		updates["category"] = *data.Category
	}
	if data.Description != nil {
		updates["description"] = *data.Description
	}
	if data.Link != nil && *data.Link != book.Link {
		if linkInUse(c, d, *data.Link, book.ID, 0) {
			return
		}
		updates["link"] = *data.Link
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No edit options provided",
			"requestID": requestID,
		})
		return
	}

	err = d.DB.Model(&book).Updates(updates).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update book", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, book)
}
