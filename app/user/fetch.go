// Package user contains the self-service account endpoints shared by
// every role
package user

import (
	"net/http"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func profileResponse(u *model.User) gin.H {
	return gin.H{
		"id":          u.ID,
		"username":    u.Username,
		"email":       u.Email,
		"first_name":  u.FirstName,
		"last_name":   u.LastName,
		"country":     u.Country,
		"gender":      u.Gender,
		"birthday":    u.Birthday,
		"race":        u.Race,
		"role":        u.Role.Name,
		"tier":        u.Tier,
		"is_verified": u.IsVerified,
	}
}

// Fetch handles GET /users/me
func Fetch(c *gin.Context, d *internal.Deps) {
	c.JSON(http.StatusOK, profileResponse(middleware.CurrentUser(c)))
}
