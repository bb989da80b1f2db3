package librarian

import (
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/middleware"
	"github.com/Maycoooz/DD-bot/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type addBookBody struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	AgeGroup    string `json:"age_group"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// AddBook handles POST /librarian/add-book. The entry is stamped with
// the acting librarian's username as its source
func AddBook(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data addBookBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.MediaValidator(data.Title, data.Author, data.Link); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if linkInUse(c, d, data.Link, 0, 0) {
		return
	}

	book := model.Book{
		Title:       data.Title,
		Author:      data.Author,
		AgeGroup:    data.AgeGroup,
		Category:    data.Category,
		Description: data.Description,
		Link:        data.Link,
		Source:      middleware.CurrentUser(c).Username,
	}

	if book.AgeGroup == "" {
		book.AgeGroup = "5-12"
	}

	if err := d.DB.Create(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create book", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, book)
}
