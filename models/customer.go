package models

import (
	"time"
)

// Customer is keyed by email; the unique index backs the find-or-create flow.
type Customer struct {
	ID               uint      `gorm:"column:customer_id;primaryKey" json:"customer_id"`
	CustomerName     string    `gorm:"type:varchar(100);not null;default:''" json:"customer_name"`
	Email            string    `gorm:"type:varchar(120);not null;uniqueIndex:idx_customer_email" json:"email"`
	PhoneNumber      *string   `gorm:"type:varchar(20)" json:"phone_number"`
	NewsletterSignup bool      `gorm:"not null;default:false" json:"newsletter_signup"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}
