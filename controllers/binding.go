package controllers

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yeremiapane/fausse-reservations/failure"
)

// bindingFailure turns gin binding errors into a 400 naming the offending
// JSON fields instead of Go struct paths.
func bindingFailure(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return failure.BadRequestFromString("Invalid request body")
	}

	var missing, invalid []string
	for _, fe := range verrs {
		name := jsonFieldName(fe.Field())
		if fe.Tag() == "required" {
			missing = append(missing, name)
		} else {
			invalid = append(invalid, name)
		}
	}
	sort.Strings(missing)
	sort.Strings(invalid)

	if len(missing) > 0 {
		return failure.BadRequestFromString("Missing required fields: " + strings.Join(missing, ", "))
	}
	return failure.BadRequestFromString("Invalid fields: " + strings.Join(invalid, ", "))
}

var jsonFieldNames = map[string]string{
	"CustomerName":   "customer_name",
	"Email":          "email",
	"Name":           "name",
	"TimeSlot":       "time_slot",
	"NumberOfGuests": "number_of_guests",
	"PhoneNumber":    "phone_number",
	"Password":       "password",
}

func jsonFieldName(field string) string {
	if name, ok := jsonFieldNames[field]; ok {
		return name
	}
	return strings.ToLower(field)
}
