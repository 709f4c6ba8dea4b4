package database

import (
	"fmt"

	"github.com/yeremiapane/fausse-reservations/models"
	"github.com/yeremiapane/fausse-reservations/utils"
	"gorm.io/gorm"
)

// Migrate creates the schema if it is missing. Safe to run on every start.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Customer{},
		&models.Reservation{},
		&models.StaffUser{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
