// Package db contains things related to the SQL database
package db

import (
	"fmt"

	"alaayoubi/content-api/config"
	"alaayoubi/content-api/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New(cfg *config.Config) (*gorm.DB, error) {
	var dial gorm.Dialector

	switch cfg.DB.Driver {
	case "postgres":
		dial = postgres.Open(cfg.DB.DSN)
	default:
		dial = sqlite.Open(cfg.DB.DSN)
	}

	db, err := gorm.Open(dial)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %v database, %w", cfg.DB.Driver, err)
	}

	if cfg.Migrate {
		err = db.AutoMigrate(model.User{}, model.Post{})
		if err != nil {
			return nil, fmt.Errorf("failed to automigrate tables, %w", err)
		}
	}

	return db, nil
}
