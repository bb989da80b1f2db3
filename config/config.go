// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	seedLanding    = pflag.Bool("seed-landing", true, "Seeds the default landing page rows on startup")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers   = []string{"sqlite", "postgres"}
)

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")
	v.BindEnv("host.cors", "host_cors")
	v.BindEnv("host.ssl.enabled", "host_ssl_enabled")

	v.BindEnv("database.driver", "database_driver")
	v.BindEnv("database.dsn", "database_dsn")

	v.BindEnv("jwt.session_secret", "jwt_session_secret")
	v.BindEnv("jwt.verification_secret", "jwt_verification_secret")
	v.BindEnv("jwt.access_ttl_minutes", "jwt_access_ttl_minutes")
	v.BindEnv("jwt.verification_ttl_minutes", "jwt_verification_ttl_minutes")

	v.BindEnv("mail.host", "mail_host")
	v.BindEnv("mail.port", "mail_port")
	v.BindEnv("mail.sender", "mail_sender_address")
	v.BindEnv("mail.password", "mail_password")
	v.BindEnv("mail.workers", "mail_workers")
	v.BindEnv("mail.max_queued", "mail_max_queued")

	v.BindEnv("security.rate_limit", "security_rate_limit")

	v.BindEnv("seed.admin_username", "seed_admin_username")
	v.BindEnv("seed.admin_password", "seed_admin_password")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")
	v.SetDefault("host.cors", "http://localhost:5173")
	v.SetDefault("host.ssl.enabled", false)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "database.db")

	v.SetDefault("jwt.access_ttl_minutes", 30)
	v.SetDefault("jwt.verification_ttl_minutes", 15)

	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.workers", 2)
	v.SetDefault("mail.max_queued", 64)

	v.SetDefault("security.rate_limit", 25)

	v.SetDefault("seed.admin_username", "admin")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if !slices.Contains(validDrivers, v.GetString("database.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("database.dsn") == "" {
		return errors.New("database dsn can't be empty")
	}

	if v.GetString("jwt.session_secret") == "" {
		fmt.Println("WARNING: You haven't set a session secret, so one has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random session secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file under jwt.session_secret.")
		os.Exit(0)
	}

	if v.GetString("jwt.verification_secret") == "" {
		fmt.Println("WARNING: You haven't set a verification secret, so one has been generated for you.\nYour random verification secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file under jwt.verification_secret.")
		os.Exit(0)
	}

	// Tokens signed with one secret must never verify under the other
	if v.GetString("jwt.session_secret") == v.GetString("jwt.verification_secret") {
		return errors.New("session and verification secrets must differ")
	}

	if v.GetInt("jwt.access_ttl_minutes") <= 0 {
		return errors.New("access token ttl must be bigger than 0")
	}

	if v.GetInt("jwt.verification_ttl_minutes") <= 0 {
		return errors.New("verification token ttl must be bigger than 0")
	}

	if v.GetInt("security.rate_limit") <= 0 {
		return errors.New("rate limit must be bigger than 0")
	}

	if v.GetString("seed.admin_password") == "" {
		return errors.New("no seed admin password provided")
	}

	if v.GetString("mail.host") == "" {
		zap.L().Warn("No mail.host specified, verification mails will be logged instead of sent")
	}

	return nil
}
