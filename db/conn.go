// Package db opens the database connection and runs migrations
package db

import (
	"bitwise74/gallery-api/internal/model"
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens Postgres when database.dsn is set, otherwise falls back to
// a local SQLite file, and automigrates every model
func New() (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if dsn := viper.GetString("database.dsn"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Postgres, %w", err)
		}
	} else {
		db, err = gorm.Open(sqlite.Open(viper.GetString("database.file")))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite database, %w", err)
		}
	}

	err = db.AutoMigrate(
		model.User{},
		model.Image{},
		model.Like{},
		model.SocialMediaLink{},
		model.RefreshToken{},
		model.BlacklistedToken{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
