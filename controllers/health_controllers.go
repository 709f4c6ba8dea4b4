package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health always answers 200 while the process is serving requests.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Reservation API is running",
	})
}
