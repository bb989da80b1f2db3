package parent

import (
	"net/http"
	"time"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/middleware"
	"github.com/Maycoooz/DD-bot/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type createChildBody struct {
	Username        string   `json:"username"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirm_password"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Country         string   `json:"country"`
	Gender          string   `json:"gender"`
	Birthday        string   `json:"birthday"`
	Race            string   `json:"race"`
	Interests       []string `json:"interests"`
}

// CreateChild handles POST /parent/create-child. Children have no email
// of their own, so they are created verified and linked to the calling
// parent
func CreateChild(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	parent := middleware.CurrentUser(c)

	var data createChildBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.UsernameValidator(data.Username); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if data.Password != data.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Passwords do not match",
			"requestID": requestID,
		})
		return
	}

	if err := validators.InterestsValidator(data.Interests); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	var birthday *time.Time
	if data.Birthday != "" {
		t, err := time.Parse("2006-01-02", data.Birthday)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Birthday must be formatted as YYYY-MM-DD",
				"requestID": requestID,
			})
			return
		}
		birthday = &t
	}

	interests := resolveInterests(c, d, data.Interests)
	if interests == nil {
		return
	}

	var found bool

	r := d.DB.Model(model.User{}).
		Select("count(*) > 0").
		Where("username = ?", data.Username).
		Find(&found)
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if username is registered", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if found {
		c.JSON(http.StatusConflict, gin.H{
			"error":     "Username already registered",
			"requestID": requestID,
		})
		return
	}

	hash, err := d.Argon.Hash(data.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var role model.Role
	if err := d.DB.Where("name = ?", model.RoleChild).First(&role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up child role", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	child := model.User{
		Username:        data.Username,
		PasswordHash:    hash,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Country:         data.Country,
		Gender:          data.Gender,
		Birthday:        birthday,
		Race:            data.Race,
		RoleID:          role.ID,
		IsVerified:      true,
		PrimaryParentID: &parent.ID,
		Interests:       interests,
	}

	err = d.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&child).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create child", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, childResponse(&child))
}

func childResponse(u *model.User) gin.H {
	names := make([]string, len(u.Interests))
	for i, in := range u.Interests {
		names[i] = in.Name
	}

	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"country":    u.Country,
		"gender":     u.Gender,
		"birthday":   u.Birthday,
		"race":       u.Race,
		"interests":  names,
	}
}
