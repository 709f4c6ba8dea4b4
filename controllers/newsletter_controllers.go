package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fausse-reservations/services"
	"github.com/yeremiapane/fausse-reservations/utils"
)

type NewsletterController struct {
	Service *services.NewsletterService
}

func NewNewsletterController(svc *services.NewsletterService) *NewsletterController {
	return &NewsletterController{Service: svc}
}

// Subscribe -> POST /api/newsletter
func (nc *NewsletterController) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		Name  string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFailure(c, bindingFailure(err))
		return
	}

	email := strings.TrimSpace(req.Email)
	if _, err := nc.Service.Subscribe(c.Request.Context(), email, strings.TrimSpace(req.Name)); err != nil {
		utils.RespondFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully subscribed to newsletter"})
}
