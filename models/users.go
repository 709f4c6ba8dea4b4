package models

import "time"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// StaffUser can sign in to the floor tools. Guests never have accounts.
type StaffUser struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(255); not null"`
	Email     string `gorm:"type:varchar(255); uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(255); not null"`
	Role      string `gorm:"type:varchar(20); not null;default:'staff'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
