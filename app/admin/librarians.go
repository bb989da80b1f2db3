package admin

import (
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ViewAllLibrarians handles GET /admin/view-all-librarians
func ViewAllLibrarians(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var librarians []model.User

	err := d.DB.
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", model.RoleLibrarian).
		Order("users.id").
		Find(&librarians).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch librarians", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	out := make([]gin.H, 0, len(librarians))

	for i := range librarians {
		l := &librarians[i]

		out = append(out, gin.H{
			"id":                 l.ID,
			"username":           l.Username,
			"first_name":         l.FirstName,
			"last_name":          l.LastName,
			"email":              l.Email,
			"librarian_verified": l.LibrarianVerified,
		})
	}

	c.JSON(http.StatusOK, out)
}
