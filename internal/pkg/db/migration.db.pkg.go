package database

import (
	"fmt"

	"exchange-api/internal/common/models"
	"exchange-api/internal/pkg/logger"
)

func (db *Database) RunMigrations() error {
	logger.Info.Println("Starting database migrations...")

	if db.Config.Driver == POSTGRES {
		if err := db.createExtensions(); err != nil {
			return fmt.Errorf("failed to create extensions: %w", err)
		}
	}

	// Define models in dependency order
	entities := []interface{}{
		&models.BankCard{},
		&models.Rate{},
		&models.Order{},
	}

	for _, entity := range entities {
		logger.Info.Printf("Migrating model: %T", entity)
		if err := db.AutoMigrate(entity); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", entity, err)
		}
	}

	logger.Info.Println("Database migrations completed successfully")
	return nil
}

// gen_random_uuid needs pgcrypto on older postgres versions
func (db *Database) createExtensions() error {
	query := `CREATE EXTENSION IF NOT EXISTS "pgcrypto";`
	return db.Exec(query).Error
}
