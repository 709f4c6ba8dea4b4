package models

import "time"

// Reservation holds one table at one exact time slot. The composite unique
// index keeps table numbers distinct per slot even under concurrent inserts.
// TimeSlot is stored with microsecond precision (MySQL defaults to
// milliseconds), matching what the services compare against.
type Reservation struct {
	ID             uint      `gorm:"column:reservation_id;primaryKey" json:"reservation_id"`
	CustomerID     uint      `gorm:"column:customer_id;not null;index" json:"customer_id"`
	Customer       Customer  `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	TimeSlot       time.Time `gorm:"not null;precision:6;uniqueIndex:idx_reservation_slot_table,priority:1" json:"time_slot"`
	TableNumber    int       `gorm:"not null;uniqueIndex:idx_reservation_slot_table,priority:2" json:"table_number"`
	NumberOfGuests int       `gorm:"not null" json:"number_of_guests"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}
