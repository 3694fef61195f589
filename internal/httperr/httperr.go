package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromBusiness maps a business error to the matching HTTP status.
// Anything that is not a BusinessError is a persistence/system failure
// and surfaces as a generic 500.
func FromBusiness(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		Internal(c, "internal_error", "Unexpected server error.")
		return
	}

	switch be.Code {
	case CodeNotFound:
		NotFound(c, be.Code, "Resource not found.")
	case CodeForbidden, CodeInactiveUser:
		Forbidden(c, be.Code, "Not authorized for this operation.")
	case CodeInvalidTransition:
		Conflict(c, be.Code, "Status change not allowed from the current state.")
	case CodeAlreadyReviewed:
		Conflict(c, be.Code, "Appointment was already reviewed by someone else.")
	case CodeValidation:
		status := http.StatusBadRequest
		c.JSON(status, HTTPError{Code: be.Code, Message: "Invalid input.", Field: be.Field})
	default:
		BadRequest(c, be.Code, "Request rejected.")
	}
}
