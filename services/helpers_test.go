package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/fausse-reservations/config"
	"github.com/yeremiapane/fausse-reservations/database"
	"github.com/yeremiapane/fausse-reservations/models"
	"gorm.io/gorm"
)

// setupTestDB opens a private in-memory SQLite database for the calling test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := config.OpenDatabase("sqlite", dsn, nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func mustSlot(t *testing.T, raw string) time.Time {
	t.Helper()
	slot, err := ParseTimeSlot(raw)
	require.NoError(t, err)
	return slot
}

func seedCustomer(t *testing.T, db *gorm.DB, email, name string) models.Customer {
	t.Helper()
	c := models.Customer{Email: email, CustomerName: name}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedReservation(t *testing.T, db *gorm.DB, customerID uint, slot time.Time, table int) {
	t.Helper()
	require.NoError(t, db.Omit("Customer").Create(&models.Reservation{
		CustomerID:     customerID,
		TimeSlot:       slot,
		TableNumber:    table,
		NumberOfGuests: 2,
	}).Error)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
