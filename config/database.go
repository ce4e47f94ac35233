package config

import (
	"log"

	"newshub-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the database connection and keeps the schema in sync.
func InitDB(cfg *Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %s", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Publisher{},
		&models.Tag{},
		&models.Article{},
		&models.Comment{},
		&models.Plan{},
		&models.Payment{},
		&models.ContactMessage{},
	); err != nil {
		log.Fatalf("failed to migrate database: %s", err)
	}

	return db
}
