// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}

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
	v.BindEnv("host.cors_origins", "host_cors_origins")

	v.BindEnv("database.dsn", "database_dsn")
	v.BindEnv("database.file", "database_file")

	v.BindEnv("jwt.access_secret", "jwt_access_secret")
	v.BindEnv("jwt.refresh_secret", "jwt_refresh_secret")
	v.BindEnv("jwt.hash_secret", "jwt_hash_secret")
	v.BindEnv("jwt.access_expiry", "jwt_access_expiry")
	v.BindEnv("jwt.refresh_expiry", "jwt_refresh_expiry")
	v.BindEnv("jwt.blacklist_ttl", "jwt_blacklist_ttl")

	v.BindEnv("aws.region", "aws_region")
	v.BindEnv("aws.access_key", "aws_access_key_id")
	v.BindEnv("aws.secret_access_key", "aws_secret_access_key")
	v.BindEnv("aws.bucket", "aws_bucket_name")

	v.BindEnv("upload.max_size", "upload_max_size")
	v.BindEnv("cleanup.interval", "cleanup_interval")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.cors_origins", []string{"http://localhost:5173"})

	v.SetDefault("database.file", "database.db")

	v.SetDefault("jwt.access_expiry", 72*time.Hour)
	v.SetDefault("jwt.refresh_expiry", 240*time.Hour)

	v.SetDefault("upload.max_size", 5)
	v.SetDefault("cleanup.interval", time.Hour)

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

	// The three secrets are independent on purpose. An access token
	// signed with the refresh secret (or vice versa) must never verify,
	// and the lookup hash key must not be either signing key
	if v.GetString("jwt.access_secret") == "" {
		return errors.New("jwt.access_secret can't be empty")
	}
	if v.GetString("jwt.refresh_secret") == "" {
		return errors.New("jwt.refresh_secret can't be empty")
	}
	if v.GetString("jwt.hash_secret") == "" {
		return errors.New("jwt.hash_secret can't be empty")
	}

	if v.GetDuration("jwt.access_expiry") <= 0 {
		return errors.New("jwt.access_expiry must be bigger than 0")
	}
	if v.GetDuration("jwt.refresh_expiry") <= 0 {
		return errors.New("jwt.refresh_expiry must be bigger than 0")
	}

	// A blacklist entry only has to outlive the revoked token, so the
	// access expiry is the safe default window
	if v.GetDuration("jwt.blacklist_ttl") <= 0 {
		v.Set("jwt.blacklist_ttl", v.GetDuration("jwt.access_expiry"))
	}

	if v.GetString("aws.region") == "" {
		return errors.New("aws region can't be empty")
	}
	if v.GetString("aws.access_key") == "" {
		return errors.New("aws access key can't be empty")
	}
	if v.GetString("aws.secret_access_key") == "" {
		return errors.New("aws secret access key can't be empty")
	}
	if v.GetString("aws.bucket") == "" {
		return errors.New("aws bucket can't be empty")
	}

	if v.GetInt("upload.max_size") <= 0 {
		return errors.New("upload.max_size must be bigger than 0")
	}

	if v.GetDuration("cleanup.interval") <= 0 {
		return errors.New("cleanup.interval must be bigger than 0")
	}

	v.Set("upload.max_size", v.GetInt64("upload.max_size")<<20)
	return nil
}
