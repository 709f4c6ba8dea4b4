package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/fausse-reservations/failure"
	"github.com/yeremiapane/fausse-reservations/models"
	"github.com/yeremiapane/fausse-reservations/utils"
	"gorm.io/gorm"
)

var ErrReservationNotFound = failure.NotFound("Reservation not found")

const EventReservationCreated = "reservation_created"

// EventPublisher receives notifications after a reservation commits.
type EventPublisher interface {
	Publish(event string, data interface{})
}

type CreateReservationInput struct {
	CustomerName string
	Email        string
	Phone        *string
	Newsletter   bool
	TimeSlot     time.Time
	Guests       int
}

// ReservationView is a reservation joined with its customer.
type ReservationView struct {
	ReservationID  uint    `json:"reservation_id"`
	CustomerName   string  `json:"customer_name"`
	Email          string  `json:"email"`
	PhoneNumber    *string `json:"phone_number"`
	TimeSlot       string  `json:"time_slot"`
	TableNumber    int     `json:"table_number"`
	NumberOfGuests int     `json:"number_of_guests"`
}

type Availability struct {
	TimeSlot   string `json:"time_slot"`
	Capacity   int    `json:"capacity"`
	Booked     int    `json:"booked"`
	FreeTables []int  `json:"free_tables"`
}

type ReservationService struct {
	DB          *gorm.DB
	Resolver    *CustomerResolver
	Allocator   *Allocator
	MaxAttempts int
	Publisher   EventPublisher
}

func NewReservationService(db *gorm.DB, allocator *Allocator, maxAttempts int, publisher EventPublisher) *ReservationService {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &ReservationService{
		DB:          db,
		Resolver:    NewCustomerResolver(),
		Allocator:   allocator,
		MaxAttempts: maxAttempts,
		Publisher:   publisher,
	}
}

func (in CreateReservationInput) validate() error {
	var missing []string
	if strings.TrimSpace(in.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if in.TimeSlot.IsZero() {
		missing = append(missing, "time_slot")
	}
	if len(missing) > 0 {
		return failure.BadRequestFromString("Missing required fields: " + strings.Join(missing, ", "))
	}
	if in.Guests < 1 {
		return failure.BadRequestFromString("number_of_guests must be a positive integer")
	}
	return nil
}

// CreateReservation resolves the customer and books a table in one
// transaction. Nothing is written when the slot is full or the store fails.
func (s *ReservationService) CreateReservation(ctx context.Context, in CreateReservationInput) (models.Reservation, error) {
	if err := in.validate(); err != nil {
		return models.Reservation{}, err
	}
	slot := NormalizeTimeSlot(in.TimeSlot)

	var (
		reservation models.Reservation
		customer    models.Customer
	)
	err := inTransaction(ctx, s.DB, s.MaxAttempts, func(tx *gorm.DB) error {
		var err error
		customer, err = s.Resolver.Resolve(tx, ResolveInput{
			Email:      in.Email,
			Name:       in.CustomerName,
			Phone:      in.Phone,
			Newsletter: in.Newsletter,
		})
		if err != nil {
			return err
		}

		reservation, err = s.Allocator.Allocate(tx, AllocateInput{
			TimeSlot:   slot,
			CustomerID: customer.ID,
			Guests:     in.Guests,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrCapacityExceeded) {
			utils.InfoLogger.WithField("time_slot", FormatTimeSlot(slot)).Info("reservation rejected, slot is full")
		}
		return models.Reservation{}, err
	}
	reservation.Customer = customer

	utils.InfoLogger.WithFields(logrus.Fields{
		"reservation_id": reservation.ID,
		"customer_id":    customer.ID,
		"time_slot":      FormatTimeSlot(slot),
		"table_number":   reservation.TableNumber,
	}).Info("reservation created")

	if s.Publisher != nil {
		s.Publisher.Publish(EventReservationCreated, toView(reservation))
	}

	return reservation, nil
}

func (s *ReservationService) GetReservation(ctx context.Context, id uint) (ReservationView, error) {
	var reservation models.Reservation
	err := s.DB.WithContext(ctx).Preload("Customer").First(&reservation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ReservationView{}, ErrReservationNotFound
	}
	if err != nil {
		return ReservationView{}, fmt.Errorf("get reservation: %w", err)
	}

	return toView(reservation), nil
}

// ListBySlot returns every reservation at the exact slot, by table number.
func (s *ReservationService) ListBySlot(ctx context.Context, slot time.Time) ([]ReservationView, error) {
	var reservations []models.Reservation
	err := s.DB.WithContext(ctx).
		Preload("Customer").
		Where("time_slot = ?", NormalizeTimeSlot(slot)).
		Order("table_number ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	views := make([]ReservationView, 0, len(reservations))
	for _, r := range reservations {
		views = append(views, toView(r))
	}
	return views, nil
}

func (s *ReservationService) Availability(ctx context.Context, slot time.Time) (Availability, error) {
	slot = NormalizeTimeSlot(slot)

	free, err := s.Allocator.FreeTables(s.DB.WithContext(ctx), slot)
	if err != nil {
		return Availability{}, err
	}

	return Availability{
		TimeSlot:   FormatTimeSlot(slot),
		Capacity:   s.Allocator.Capacity,
		Booked:     s.Allocator.Capacity - len(free),
		FreeTables: free,
	}, nil
}

func toView(r models.Reservation) ReservationView {
	return ReservationView{
		ReservationID:  r.ID,
		CustomerName:   r.Customer.CustomerName,
		Email:          r.Customer.Email,
		PhoneNumber:    r.Customer.PhoneNumber,
		TimeSlot:       FormatTimeSlot(r.TimeSlot),
		TableNumber:    r.TableNumber,
		NumberOfGuests: r.NumberOfGuests,
	}
}
