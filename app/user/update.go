package user

import (
	"net/http"
	"time"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type updateBody struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Country   *string `json:"country,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	Birthday  *string `json:"birthday,omitempty"`
	Race      *string `json:"race,omitempty"`
}

// Update handles PATCH /users/me. Only fields present in the payload
// overwrite stored values
func Update(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	current := middleware.CurrentUser(c)

	var data updateBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	updates := map[string]any{}

	if data.FirstName != nil {
		updates["first_name"] = *data.FirstName
	}
	if data.LastName != nil {
		updates["last_name"] = *data.LastName
	}
	if data.Country != nil {
		updates["country"] = *data.Country
	}
	if data.Gender != nil {
		updates["gender"] = *data.Gender
	}
	if data.Race != nil {
		updates["race"] = *data.Race
	}
	if data.Birthday != nil {
		birthday, err := time.Parse("2006-01-02", *data.Birthday)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Birthday must be formatted as YYYY-MM-DD",
				"requestID": requestID,
			})
			return
		}
		updates["birthday"] = birthday
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No profile fields provided",
			"requestID": requestID,
		})
		return
	}

	err := d.DB.Model(model.User{}).
		Where("id = ?", current.ID).
		Updates(updates).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var updated model.User

	err = d.DB.Preload("Role").Where("id = ?", current.ID).First(&updated).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to reload profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, profileResponse(&updated))
}
