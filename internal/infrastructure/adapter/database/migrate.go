package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/model"
)

// Migrate creates or updates the database schema for all wallet tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Account{},
		&model.Transaction{},
	); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return nil
}
