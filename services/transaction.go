package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/fausse-reservations/failure"
	"github.com/yeremiapane/fausse-reservations/utils"
	"gorm.io/gorm"
)

const DefaultMaxAttempts = 5

// ErrSlotContention is returned when unique-index conflicts persist through
// every attempt.
var ErrSlotContention = failure.Conflict("The time slot is busy, please try again")

// inTransaction runs fn in one transaction, committed when fn returns nil and
// rolled back otherwise (panics included). A unique-index conflict means a
// concurrent request won the race for the same row; the whole transaction is
// replayed so the next attempt sees the winner's row.
func inTransaction(ctx context.Context, db *gorm.DB, attempts int, fn func(tx *gorm.DB) error) error {
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		err := db.WithContext(ctx).Transaction(fn)
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		if attempt >= attempts {
			utils.ErrorLogger.WithField("attempts", attempt).Errorf("giving up after unique conflicts: %v", err)
			return ErrSlotContention
		}
		utils.InfoLogger.WithFields(logrus.Fields{
			"attempt": attempt,
		}).Warnf("unique conflict, retrying transaction: %v", err)
	}
}
