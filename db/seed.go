package db

import (
	"fmt"

	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/pkg/security"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// The landing page always has these rows. Admins edit the text, never
// the set of rows
var defaultLanding = []model.LandingPage{
	{DisplayType: "introduction", DisplayText: "Welcome to DD-bot, safe book and video picks for your kids"},
	{DisplayType: "feature", DisplayText: "Curated books"},
	{DisplayType: "feature", DisplayText: "Curated videos"},
	{DisplayType: "feature", DisplayText: "Child profiles"},
	{DisplayType: "feature", DisplayText: "Interest based picks"},
	{DisplayType: "feature", DisplayText: "Librarian reviewed"},
	{DisplayType: "feature", DisplayText: "Parent controls"},
	{DisplayType: "how_it_works", DisplayText: "Create a parent account"},
	{DisplayType: "how_it_works", DisplayText: "Add your children and their interests"},
	{DisplayType: "how_it_works", DisplayText: "Let them explore the library"},
	{DisplayType: "pricing", DisplayText: "FREE"},
	{DisplayType: "pricing", DisplayText: "PRO"},
}

// Seed inserts the role and interest vocabularies, the landing page
// rows and the admin account. Safe to run on every startup
func Seed(db *gorm.DB, argon *security.ArgonHash) error {
	roles := []string{model.RoleAdmin, model.RoleParent, model.RoleChild, model.RoleLibrarian}

	for _, name := range roles {
		err := db.Where(model.Role{Name: name}).FirstOrCreate(&model.Role{Name: name}).Error
		if err != nil {
			return fmt.Errorf("failed to seed role %s, %w", name, err)
		}
	}

	for _, name := range model.DefaultInterests {
		err := db.Where(model.Interest{Name: name}).FirstOrCreate(&model.Interest{Name: name}).Error
		if err != nil {
			return fmt.Errorf("failed to seed interest %s, %w", name, err)
		}
	}

	if viper.GetBool("seed-landing") {
		var count int64

		if err := db.Model(model.LandingPage{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count landing page rows, %w", err)
		}

		if count == 0 {
			if err := db.Create(&defaultLanding).Error; err != nil {
				return fmt.Errorf("failed to seed landing page, %w", err)
			}
		}
	}

	return seedAdmin(db, argon)
}

func seedAdmin(db *gorm.DB, argon *security.ArgonHash) error {
	username := viper.GetString("seed.admin_username")

	var found bool

	err := db.Model(model.User{}).
		Select("count(*) > 0").
		Where("username = ?", username).
		Find(&found).
		Error
	if err != nil {
		return fmt.Errorf("failed to check for admin account, %w", err)
	}

	if found {
		return nil
	}

	var role model.Role
	if err := db.Where("name = ?", model.RoleAdmin).First(&role).Error; err != nil {
		return fmt.Errorf("failed to find admin role, %w", err)
	}

	hash, err := argon.Hash(viper.GetString("seed.admin_password"))
	if err != nil {
		return fmt.Errorf("failed to hash admin password, %w", err)
	}

	err = db.Create(&model.User{
		Username:     username,
		PasswordHash: hash,
		FirstName:    "Admin",
		LastName:     "Admin",
		RoleID:       role.ID,
		IsVerified:   true,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to create admin account, %w", err)
	}

	zap.L().Info("Seeded admin account", zap.String("username", username))
	return nil
}
