package librarian

import (
	"net/http"
	"strconv"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeleteBook handles DELETE /librarian/delete-book/:id
func DeleteBook(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	bookID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Book ID must be a number",
			"requestID": requestID,
		})
		return
	}

	res := d.DB.Delete(model.Book{}, bookID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete book", zap.Error(res.Error), zap.String("requestID", requestID))
		return
	}

	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Book not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Book deleted successfully",
		"requestID": requestID,
	})
}
