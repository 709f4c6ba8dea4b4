package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/fausse-reservations/failure"
)

// JSONResponse is the envelope used by the staff endpoints.
type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// RespondFailure picks the status from the error (see failure.GetCode) and
// logs store faults before answering. Errors that carry no status are
// reported as internal errors with their raw message.
func RespondFailure(c *gin.Context, err error) {
	var fail *failure.Failure
	if !errors.As(err, &fail) {
		err = failure.InternalError(err)
	}
	code := failure.GetCode(err)
	if code >= 500 {
		ErrorLogger.WithFields(logrus.Fields{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(RequestIDKey),
		}).Errorf("request failed: %v", err)
	}
	RespondError(c, code, err)
}

const RequestIDKey = "request_id"
