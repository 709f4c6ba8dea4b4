package services

import (
	"fmt"
	"time"

	"github.com/yeremiapane/fausse-reservations/failure"
	"github.com/yeremiapane/fausse-reservations/models"
	"gorm.io/gorm"
)

const DefaultTableCapacity = 30

// ErrCapacityExceeded means every table at the slot is taken. It is a
// user-facing condition, the guest should pick another time.
var ErrCapacityExceeded = failure.BadRequestFromString("No tables available for the requested time slot")

type Allocator struct {
	Capacity int
	Picker   TablePicker
}

func NewAllocator(capacity int, picker TablePicker) *Allocator {
	if capacity < 1 {
		capacity = DefaultTableCapacity
	}
	if picker == nil {
		picker = RandomPicker()
	}
	return &Allocator{Capacity: capacity, Picker: picker}
}

type AllocateInput struct {
	TimeSlot   time.Time
	CustomerID uint
	Guests     int
}

// Allocate books a free table at the exact time slot. It must run inside the
// caller's transaction; a concurrent writer taking the same table surfaces as
// gorm.ErrDuplicatedKey from the (time_slot, table_number) index.
func (a *Allocator) Allocate(tx *gorm.DB, in AllocateInput) (models.Reservation, error) {
	var count int64
	if err := tx.Model(&models.Reservation{}).Where("time_slot = ?", in.TimeSlot).Count(&count).Error; err != nil {
		return models.Reservation{}, fmt.Errorf("count reservations: %w", err)
	}
	if count >= int64(a.Capacity) {
		return models.Reservation{}, ErrCapacityExceeded
	}

	free, err := a.FreeTables(tx, in.TimeSlot)
	if err != nil {
		return models.Reservation{}, err
	}
	if len(free) == 0 {
		// Rows with table numbers outside 1..Capacity (e.g. capacity lowered
		// after bookings were made) can leave the count under the ceiling.
		return models.Reservation{}, ErrCapacityExceeded
	}

	reservation := models.Reservation{
		CustomerID:     in.CustomerID,
		TimeSlot:       in.TimeSlot,
		TableNumber:    a.Picker.Pick(free),
		NumberOfGuests: in.Guests,
	}
	if err := tx.Omit("Customer").Create(&reservation).Error; err != nil {
		return models.Reservation{}, fmt.Errorf("insert reservation: %w", err)
	}

	return reservation, nil
}

// FreeTables lists the table numbers in 1..Capacity not yet booked at slot, ascending.
func (a *Allocator) FreeTables(tx *gorm.DB, slot time.Time) ([]int, error) {
	var used []int
	if err := tx.Model(&models.Reservation{}).Where("time_slot = ?", slot).Pluck("table_number", &used).Error; err != nil {
		return nil, fmt.Errorf("load booked tables: %w", err)
	}

	taken := make(map[int]struct{}, len(used))
	for _, n := range used {
		taken[n] = struct{}{}
	}

	free := make([]int, 0, max(a.Capacity-len(taken), 0))
	for n := 1; n <= a.Capacity; n++ {
		if _, ok := taken[n]; !ok {
			free = append(free, n)
		}
	}
	return free, nil
}
