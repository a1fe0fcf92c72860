package errors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error represents an application error with an HTTP status code.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrAPINotFound is returned for requests to unknown API paths.
var ErrAPINotFound = New(http.StatusNotFound, "API endpoint not found", nil)

// RecoveryHandler returns a gin recovery handler that converts panics into
// the generic 500 payload. Panic detail is only echoed back in development.
func RecoveryHandler(env string) gin.RecoveryFunc {
	return func(c *gin.Context, recovered interface{}) {
		zap.L().Error("Unhandled panic", zap.Any("panic", recovered))

		body := gin.H{"error": "Something went wrong!"}
		if env == "development" {
			body["message"] = fmt.Sprintf("%v", recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	}
}
