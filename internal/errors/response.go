package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var devMode bool

// SetDevMode controls whether unclassified failures expose their detail.
// In production a bare 500 with a generic message is returned instead.
func SetDevMode(enabled bool) {
	devMode = enabled
}

// ErrorResponse is the error envelope: {success:false, message, data?}
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond is the single response boundary for errors. AppErrors pass through
// with their status; everything else is parsed into one and logged upstream.
func Respond(c *gin.Context, err error, context string) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = ParseError(err, context)
	}

	message := appErr.Message
	if appErr.Status == http.StatusInternalServerError && !devMode {
		message = "Server Error"
	}

	c.JSON(appErr.Status, ErrorResponse{
		Success: false,
		Message: message,
		Data:    appErr.Data,
	})
}

// RespondWithError writes an explicit error envelope
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Message: message,
	})
}

// Shorthand helpers for the common denials

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Not authorized"
	}
	RespondWithError(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	RespondWithError(c, http.StatusForbidden, message)
}

func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request data"
	}
	RespondWithError(c, http.StatusBadRequest, message)
}
