// Package response implements the JSON envelope shared by every endpoint:
//
//	success: {"status":"success","message":<string>,"data":<payload>}
//	failure: {"status":"error","message":<string or field-error map>}
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the fixed response wrapper.
type Envelope struct {
	Status  string      `json:"status"`
	Message interface{} `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a success envelope with a data payload.
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// SuccessMessage sends a success envelope without data.
func SuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{
		Status:  "success",
		Message: message,
	})
}

// Error sends an error envelope. message may be a string or a field-error map.
func Error(c *gin.Context, statusCode int, message interface{}) {
	c.JSON(statusCode, Envelope{
		Status:  "error",
		Message: message,
	})
}

// ValidationFailed sends the default validation failure: 422 with a
// field-error map as the message.
func ValidationFailed(c *gin.Context, fields map[string]string) {
	Error(c, http.StatusUnprocessableEntity, fields)
}

// Unauthorized sends a 401 error envelope.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 error envelope.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 error envelope.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Internal sends a 500 error envelope carrying the failure text.
func Internal(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
