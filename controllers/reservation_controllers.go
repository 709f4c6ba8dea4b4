package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fausse-reservations/services"
	"github.com/yeremiapane/fausse-reservations/utils"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Service: svc}
}

type createReservationRequest struct {
	CustomerName     string  `json:"customer_name" binding:"required"`
	Email            string  `json:"email" binding:"required"`
	TimeSlot         string  `json:"time_slot" binding:"required"`
	NumberOfGuests   int     `json:"number_of_guests" binding:"required,min=1"`
	PhoneNumber      *string `json:"phone_number"`
	NewsletterSignup bool    `json:"newsletter_signup"`
}

type createReservationResponse struct {
	Message       string `json:"message"`
	ReservationID uint   `json:"reservation_id"`
	TableNumber   int    `json:"table_number"`
	TimeSlot      string `json:"time_slot"`
}

// CreateReservation -> POST /api/reservations
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFailure(c, bindingFailure(err))
		return
	}

	slot, err := services.ParseTimeSlot(req.TimeSlot)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	var phone *string
	if req.PhoneNumber != nil && strings.TrimSpace(*req.PhoneNumber) != "" {
		p := strings.TrimSpace(*req.PhoneNumber)
		phone = &p
	}

	reservation, err := rc.Service.CreateReservation(c.Request.Context(), services.CreateReservationInput{
		CustomerName: strings.TrimSpace(req.CustomerName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        phone,
		Newsletter:   req.NewsletterSignup,
		TimeSlot:     slot,
		Guests:       req.NumberOfGuests,
	})
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, createReservationResponse{
		Message:       "Reservation created successfully",
		ReservationID: reservation.ID,
		TableNumber:   reservation.TableNumber,
		TimeSlot:      services.FormatTimeSlot(reservation.TimeSlot),
	})
}

// GetReservation -> GET /api/reservations/:id
func (rc *ReservationController) GetReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.RespondFailure(c, services.ErrReservationNotFound)
		return
	}

	view, err := rc.Service.GetReservation(c.Request.Context(), uint(id))
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetAvailability -> GET /api/availability?time_slot=
func (rc *ReservationController) GetAvailability(c *gin.Context) {
	slot, err := services.ParseTimeSlot(c.Query("time_slot"))
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	availability, err := rc.Service.Availability(c.Request.Context(), slot)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}
