package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yeremiapane/fausse-reservations/failure"
	"github.com/yeremiapane/fausse-reservations/models"
	"gorm.io/gorm"
)

var ErrEmailRequired = failure.BadRequestFromString("email is required")

type ResolveInput struct {
	Email string
	Name  string
	Phone *string
	// Newsletter marks the customer as subscribed. false never unsubscribes.
	Newsletter bool
}

// CustomerResolver implements find-or-create keyed by email.
type CustomerResolver struct{}

func NewCustomerResolver() *CustomerResolver {
	return &CustomerResolver{}
}

// Resolve returns the customer for in.Email, creating it when absent. An
// existing non-empty name is never overwritten; an empty one is backfilled.
// Runs inside the caller's transaction and issues at most one write.
func (r *CustomerResolver) Resolve(tx *gorm.DB, in ResolveInput) (models.Customer, error) {
	if strings.TrimSpace(in.Email) == "" {
		return models.Customer{}, ErrEmailRequired
	}

	var customer models.Customer
	err := tx.Where("email = ?", in.Email).First(&customer).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		customer = models.Customer{
			CustomerName:     in.Name,
			Email:            in.Email,
			PhoneNumber:      in.Phone,
			NewsletterSignup: in.Newsletter,
		}
		if err := tx.Create(&customer).Error; err != nil {
			return models.Customer{}, fmt.Errorf("create customer: %w", err)
		}
		return customer, nil
	case err != nil:
		return models.Customer{}, fmt.Errorf("find customer: %w", err)
	}

	changes := map[string]interface{}{}
	if customer.CustomerName == "" && in.Name != "" {
		changes["customer_name"] = in.Name
	}
	if in.Newsletter && !customer.NewsletterSignup {
		changes["newsletter_signup"] = true
	}
	if len(changes) == 0 {
		return customer, nil
	}

	if err := tx.Model(&customer).Updates(changes).Error; err != nil {
		return models.Customer{}, fmt.Errorf("update customer: %w", err)
	}
	if name, ok := changes["customer_name"].(string); ok {
		customer.CustomerName = name
	}
	if _, ok := changes["newsletter_signup"]; ok {
		customer.NewsletterSignup = true
	}
	return customer, nil
}
