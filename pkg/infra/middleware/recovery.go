// Package middleware provides the HTTP middleware chain shared by all
// servers: panic recovery, request id propagation, request logging and
// CORS.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/response"
)

// RecoveryConfig defines the config for the Recovery middleware.
type RecoveryConfig struct {
	// EnableStackTrace includes the stack trace in the error response.
	// Keep disabled outside development.
	EnableStackTrace bool
}

// DefaultRecoveryConfig is the default Recovery middleware config.
var DefaultRecoveryConfig = RecoveryConfig{
	EnableStackTrace: false,
}

// Recovery returns a middleware that converts panics into JSON error
// responses using the error code system.
func Recovery() gin.HandlerFunc {
	return RecoveryWithConfig(DefaultRecoveryConfig)
}

// RecoveryWithConfig returns a Recovery middleware with custom config.
func RecoveryWithConfig(config RecoveryConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				logger.Errorw("panic recovered",
					"panic", fmt.Sprintf("%v", r),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"stack", string(stack),
				)

				err := errors.ErrInternal.WithMessage("internal server error")
				if config.EnableStackTrace {
					err = errors.ErrInternal.WithMessagef("panic: %v\n%s", r, stack)
				}
				response.Abort(c, err)
			}
		}()
		c.Next()
	}
}
