package parent

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ownedChild loads the child from the :id param and checks that it
// belongs to the calling parent. Children of other parents answer 403.
// Writes the error response itself and returns nil when it did
func ownedChild(c *gin.Context, d *internal.Deps) *model.User {
	requestID := c.MustGet("requestID").(string)

	childID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Child ID must be a number",
			"requestID": requestID,
		})
		return nil
	}

	var child model.User

	err = d.DB.Preload("Role").Where("id = ?", childID).First(&child).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Child not found",
				"requestID": requestID,
			})
			return nil
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch child", zap.Error(err), zap.String("requestID", requestID))
		return nil
	}

	parent := middleware.CurrentUser(c)

	if child.Role.Name != model.RoleChild ||
		child.PrimaryParentID == nil || *child.PrimaryParentID != parent.ID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "This child account does not belong to you",
			"requestID": requestID,
		})
		return nil
	}

	return &child
}

// resolveInterests maps the requested names onto vocabulary rows.
// Unknown names fail with the offending entry in the response
func resolveInterests(c *gin.Context, d *internal.Deps, names []string) []model.Interest {
	requestID := c.MustGet("requestID").(string)

	upper := make([]string, len(names))
	for i, n := range names {
		upper[i] = strings.ToUpper(strings.TrimSpace(n))
	}

	var interests []model.Interest

	err := d.DB.Where("name IN ?", upper).Find(&interests).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch interests", zap.Error(err), zap.String("requestID", requestID))
		return nil
	}

	if len(interests) != len(upper) {
		known := make(map[string]bool, len(interests))
		for _, i := range interests {
			known[i.Name] = true
		}

		for _, n := range upper {
			if !known[n] {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":     "Unknown interest: " + n,
					"requestID": requestID,
				})
				return nil
			}
		}
	}

	return interests
}
