package services

import (
	"context"

	"github.com/yeremiapane/fausse-reservations/models"
	"github.com/yeremiapane/fausse-reservations/utils"
	"gorm.io/gorm"
)

type NewsletterService struct {
	DB          *gorm.DB
	Resolver    *CustomerResolver
	MaxAttempts int
}

func NewNewsletterService(db *gorm.DB, maxAttempts int) *NewsletterService {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &NewsletterService{DB: db, Resolver: NewCustomerResolver(), MaxAttempts: maxAttempts}
}

// Subscribe sets newsletter_signup for email, creating the customer if needed.
// Subscribing twice is harmless and never clears an existing name.
func (s *NewsletterService) Subscribe(ctx context.Context, email, name string) (models.Customer, error) {
	var customer models.Customer
	err := inTransaction(ctx, s.DB, s.MaxAttempts, func(tx *gorm.DB) error {
		var err error
		customer, err = s.Resolver.Resolve(tx, ResolveInput{
			Email:      email,
			Name:       name,
			Newsletter: true,
		})
		return err
	})
	if err != nil {
		return models.Customer{}, err
	}

	utils.InfoLogger.WithField("customer_id", customer.ID).Info("newsletter subscription recorded")
	return customer, nil
}
