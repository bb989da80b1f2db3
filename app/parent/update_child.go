package parent

import (
	"net/http"
	"time"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type updateChildBody struct {
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	Country   *string   `json:"country,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	Birthday  *string   `json:"birthday,omitempty"`
	Race      *string   `json:"race,omitempty"`
	Interests *[]string `json:"interests,omitempty"`
}

// UpdateChild handles PATCH /parent/update-child/:id. Profile fields
// merge, the interest list replaces the stored set wholesale when
// present
func UpdateChild(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	child := ownedChild(c, d)
	if child == nil {
		return
	}

	var data updateChildBody
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

	var interests []model.Interest

	if data.Interests != nil {
		if err := validators.InterestsValidator(*data.Interests); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		interests = resolveInterests(c, d, *data.Interests)
		if interests == nil {
			return
		}
	}

	if len(updates) == 0 && data.Interests == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No fields provided",
			"requestID": requestID,
		})
		return
	}

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			err := tx.Model(model.User{}).
				Where("id = ?", child.ID).
				Updates(updates).
				Error
			if err != nil {
				return err
			}
		}

		if data.Interests != nil {
			return tx.Model(child).Association("Interests").Replace(interests)
		}

		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update child", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var updated model.User

	err = d.DB.Preload("Interests").Where("id = ?", child.ID).First(&updated).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to reload child", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, childResponse(&updated))
}
