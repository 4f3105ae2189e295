package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig defines the config for the CORS middleware.
type CORSConfig struct {
	// AllowOrigins is the list of origins that may access the API.
	// Empty is invalid: origins must be configured explicitly.
	AllowOrigins []string

	// AllowMethods is the list of methods allowed on cross-origin requests.
	AllowMethods []string

	// AllowHeaders is the list of request headers clients may send.
	AllowHeaders []string

	// AllowCredentials indicates whether credentials are allowed.
	// Incompatible with a wildcard origin.
	AllowCredentials bool

	// MaxAge is how long, in seconds, preflight results may be cached.
	MaxAge int
}

// DefaultCORSConfig is the default CORS middleware config. AllowOrigins
// is intentionally empty so deployments must configure it.
var DefaultCORSConfig = CORSConfig{
	AllowOrigins: []string{},
	AllowMethods: []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
		http.MethodOptions,
	},
	AllowHeaders: []string{
		"Origin",
		"Content-Type",
		"Accept",
		"Authorization",
		HeaderXRequestID,
	},
	AllowCredentials: false,
	MaxAge:           86400,
}

// Validate checks if the CORS configuration is usable.
func (c CORSConfig) Validate() error {
	if len(c.AllowOrigins) == 0 {
		return fmt.Errorf("cors: AllowOrigins must be explicitly configured")
	}
	for _, origin := range c.AllowOrigins {
		if origin == "*" && c.AllowCredentials {
			return fmt.Errorf("cors: wildcard origin cannot be combined with credentials")
		}
	}
	return nil
}

// CORSWithConfig returns a CORS middleware with the given config. The
// config must pass Validate.
func CORSWithConfig(config CORSConfig) (gin.HandlerFunc, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	allowed := make(map[string]bool, len(config.AllowOrigins))
	wildcard := false
	for _, origin := range config.AllowOrigins {
		if origin == "*" {
			wildcard = true
		}
		allowed[origin] = true
	}

	methods := strings.Join(config.AllowMethods, ", ")
	headers := strings.Join(config.AllowHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		switch {
		case wildcard:
			c.Header("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		default:
			// not an allowed origin: no CORS headers, the browser denies
			c.Next()
			return
		}

		if config.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", methods)
			c.Header("Access-Control-Allow-Headers", headers)
			c.Header("Access-Control-Max-Age", maxAge)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}, nil
}
