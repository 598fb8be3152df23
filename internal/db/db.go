package db

import (
	"fmt"

	"github.com/thatcatcamp/palettekitty/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB(dbType, dbPath string) error {
	dialector, err := Dialector(dbType, dbPath)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(DB); err != nil {
		return err
	}

	return nil
}

// Dialector picks the gorm driver for a database type
func Dialector(dbType, dbPath string) (gorm.Dialector, error) {
	switch dbType {
	case "sqlite":
		return sqlite.Open(dbPath), nil
	case "mysql", "mariadb":
		return mysql.Open(dbPath), nil // dbPath is DSN for MySQL
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}

// Migrate auto-migrates all models
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(&models.Lookup{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database connection (used for testing)
func SetDB(database *gorm.DB) {
	DB = database
}
