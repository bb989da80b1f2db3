package admin

import (
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ViewAllUsers handles GET /admin/viewAllUsers. Lists every parent and
// child account with role info and aggregate counts
func ViewAllUsers(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var users []model.User

	err := d.DB.
		Preload("Role").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name IN ?", []string{model.RoleParent, model.RoleChild}).
		Order("users.id").
		Find(&users).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch users", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var parents, kids int64

	for i := range users {
		if users[i].Role.Name == model.RoleParent {
			parents++
		} else {
			kids++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"parent_and_kid_users": users,
		"total_users":          parents + kids,
		"total_parents":        parents,
		"total_kids":           kids,
	})
}
