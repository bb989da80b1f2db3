// Package auth contains the public registration, login and email
// verification endpoints
package auth

import (
	"net/http"
	"time"

	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/security"
	"github.com/Maycoooz/DD-bot/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerBody struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Country   string `json:"country"`
	Gender    string `json:"gender"`
	Birthday  string `json:"birthday"`
	Race      string `json:"race"`
}

// ParentRegister handles POST /auth/register
func ParentRegister(c *gin.Context, d *internal.Deps) {
	register(c, d, model.RoleParent)
}

// LibrarianRegister handles POST /auth/register-librarian. Librarians
// start out unapproved and show up on the admin dashboard until an
// admin flips librarian_verified
func LibrarianRegister(c *gin.Context, d *internal.Deps) {
	register(c, d, model.RoleLibrarian)
}

func register(c *gin.Context, d *internal.Deps, roleName string) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.UsernameValidator(data.Username); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
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

	birthday, err := parseBirthday(data.Birthday)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Birthday must be formatted as YYYY-MM-DD",
			"requestID": requestID,
		})
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

	r = d.DB.Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ?", data.Email).
		Find(&found)
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if email is registered", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if found {
		c.JSON(http.StatusConflict, gin.H{
			"error":     "Email already registered",
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
	if err := d.DB.Where("name = ?", roleName).First(&role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up role", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	user := model.User{
		Username:     data.Username,
		Email:        &data.Email,
		PasswordHash: hash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Country:      data.Country,
		Gender:       data.Gender,
		Birthday:     birthday,
		Race:         data.Race,
		RoleID:       role.ID,
	}

	if roleName == model.RoleParent {
		user.Tier = model.TierFree
	}

	if err := d.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	verifToken, err := security.MakeVerificationToken(data.Email, security.VerificationTokenTTL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate verification token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Fire and forget. A failed send is logged by the worker and the
	// registration still succeeds
	d.Mail.Enqueue(data.Email, verifToken)

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Registration successful. Please check your email to verify your account",
		"requestID": requestID,
	})
}

func parseBirthday(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
