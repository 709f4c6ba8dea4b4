package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fausse-reservations/services"
	"github.com/yeremiapane/fausse-reservations/utils"
)

type StaffController struct {
	Staff        *services.StaffService
	Reservations *services.ReservationService
}

func NewStaffController(staff *services.StaffService, reservations *services.ReservationService) *StaffController {
	return &StaffController{Staff: staff, Reservations: reservations}
}

// Login -> POST /api/staff/login, returns a JWT
func (sc *StaffController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondFailure(c, bindingFailure(err))
		return
	}

	token, user, err := sc.Staff.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	utils.InfoLogger.Printf("Staff login: %s (role=%s)", user.Email, user.Role)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"role":  user.Role,
	})
}

// ListReservations -> GET /api/staff/reservations?time_slot=
func (sc *StaffController) ListReservations(c *gin.Context) {
	slot, err := services.ParseTimeSlot(c.Query("time_slot"))
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	views, err := sc.Reservations.ListBySlot(c.Request.Context(), slot)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservations for "+services.FormatTimeSlot(slot), views)
}
