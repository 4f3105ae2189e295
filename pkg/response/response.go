// Package response provides unified API response structures.
// All HTTP endpoints return this envelope so clients can rely on a
// single shape for both success and error payloads.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/hr-center/pkg/errors"
)

// Response is the unified API response structure.
type Response struct {
	// Code is the business error code (0 = success)
	Code int `json:"code"`

	// Message is a human-readable message
	Message string `json:"message"`

	// Data contains the response payload (nil for errors)
	Data interface{} `json:"data,omitempty"`
}

// Success creates a successful response with data.
func Success(data interface{}) *Response {
	return &Response{
		Code:    0,
		Message: "success",
		Data:    data,
	}
}

// SuccessWithMessage creates a successful response with a custom message.
func SuccessWithMessage(message string, data interface{}) *Response {
	return &Response{
		Code:    0,
		Message: message,
		Data:    data,
	}
}

// Err creates an error response from an Errno.
func Err(e *errors.Errno) *Response {
	if e == nil {
		return Success(nil)
	}
	return &Response{
		Code:    e.Code,
		Message: e.Message,
	}
}

// Write writes the response for err/data to the gin context.
// A nil err writes 200 with data; otherwise the Errno's HTTP status
// and business code are written and data is discarded.
func Write(c *gin.Context, err error, data interface{}) {
	if err != nil {
		errno := errors.FromError(err)
		c.JSON(errno.HTTPStatus(), Err(errno))
		return
	}
	c.JSON(http.StatusOK, Success(data))
}

// Abort writes the error response and aborts the middleware chain.
// Used by middleware so downstream handlers never run after a denial.
func Abort(c *gin.Context, err error) {
	errno := errors.FromError(err)
	c.AbortWithStatusJSON(errno.HTTPStatus(), Err(errno))
}
