package gorm

import (
	"fmt"

	"go-weather/pkg/resource"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds the postgres connection string from the app.db properties
func DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s search_path=%s",
		resource.GetStringOrDefault("app.db.host", "localhost"),
		resource.GetString("app.db.username"),
		resource.GetString("app.db.password"),
		resource.GetString("app.db.database"),
		resource.GetStringOrDefault("app.db.port", "5432"),
		resource.GetStringOrDefault("app.db.ssl-mode", "disable"),
		resource.GetStringOrDefault("app.db.schema", "public"),
	)
}

// Open connects to postgres, gorm's own logging is silenced in favour of the application log
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}
