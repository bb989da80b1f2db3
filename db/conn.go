// Package db contains the database connection and seeding logic
package db

import (
	"errors"
	"fmt"

	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	var dial gorm.Dialector

	switch viper.GetString("database.driver") {
	case "postgres":
		dial = postgres.Open(viper.GetString("database.dsn"))
	case "sqlite":
		dial = sqlite.Open(viper.GetString("database.dsn"))
	default:
		return nil, errors.New("invalid database driver provided")
	}

	db, err := gorm.Open(dial)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	err = db.AutoMigrate(
		model.Role{},
		model.Interest{},
		model.User{},
		model.Book{},
		model.Video{},
		model.Review{},
		model.LandingPage{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
