package librarian

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// listParams holds the shared query params of the public catalog
// listings
type listParams struct {
	Search string
	Source string
	Page   int
	Size   int
}

func parseListParams(c *gin.Context) (*listParams, bool) {
	requestID := c.MustGet("requestID").(string)

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid page provided",
			"requestID": requestID,
		})
		return nil, false
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 || size > 250 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid size provided",
			"requestID": requestID,
		})
		return nil, false
	}

	return &listParams{
		Search: strings.ToLower(c.Query("search")),
		Source: c.Query("source"),
		Page:   page,
		Size:   size,
	}, true
}

func (p *listParams) apply(q *gorm.DB) *gorm.DB {
	if p.Search != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+p.Search+"%")
	}

	if p.Source != "" {
		q = q.Where("source = ?", p.Source)
	}

	return q
}

// ViewAllBooks handles GET /librarian/view-all-books, the public
// paginated book listing with optional title search and source filter
func ViewAllBooks(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	params, ok := parseListParams(c)
	if !ok {
		return
	}

	q := params.apply(d.DB.Model(model.Book{}))

	var total int64

	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to count books", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var books []model.Book

	err := q.
		Order("id desc").
		Offset((params.Page - 1) * params.Size).
		Limit(params.Size).
		Find(&books).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch books", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total": total,
		"items": books,
	})
}
