package oidc

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Options defines configuration for the OIDC token verifier.
type Options struct {
	// IssuerURL is the identity provider's issuer URL. Discovery is
	// performed against {IssuerURL}/.well-known/openid-configuration.
	IssuerURL string `json:"issuer-url" mapstructure:"issuer-url"`

	// Audience is the expected "aud" claim. Empty disables the check
	// (some providers omit aud on ID tokens for first-party apps).
	Audience string `json:"audience" mapstructure:"audience"`

	// JWKSURL overrides the discovered jwks_uri. When set, discovery
	// is skipped entirely.
	JWKSURL string `json:"jwks-url" mapstructure:"jwks-url"`

	// JWKSRefreshInterval is how long fetched signing keys are served
	// before a refetch. An unknown key id always triggers a refetch
	// (provider-side key rotation).
	JWKSRefreshInterval time.Duration `json:"jwks-refresh-interval" mapstructure:"jwks-refresh-interval"`

	// HTTPTimeout bounds discovery and JWKS fetch requests.
	HTTPTimeout time.Duration `json:"http-timeout" mapstructure:"http-timeout"`

	// RoleClaim is the token claim carrying the optional role hint.
	RoleClaim string `json:"role-claim" mapstructure:"role-claim"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		JWKSRefreshInterval: 15 * time.Minute,
		HTTPTimeout:         10 * time.Second,
		RoleClaim:           "role",
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.IssuerURL == "" && o.JWKSURL == "" {
		return fmt.Errorf("oidc: issuer-url or jwks-url is required")
	}
	if o.JWKSRefreshInterval <= 0 {
		return fmt.Errorf("oidc: jwks-refresh-interval must be positive")
	}
	return nil
}

// AddFlags adds flags for OIDC options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.IssuerURL, "oidc.issuer-url", o.IssuerURL, "OIDC identity provider issuer URL")
	fs.StringVar(&o.Audience, "oidc.audience", o.Audience, "Expected token audience (empty disables the check)")
	fs.StringVar(&o.JWKSURL, "oidc.jwks-url", o.JWKSURL, "JWKS URL override (skips discovery)")
	fs.DurationVar(&o.JWKSRefreshInterval, "oidc.jwks-refresh-interval", o.JWKSRefreshInterval, "Signing key cache lifetime")
	fs.DurationVar(&o.HTTPTimeout, "oidc.http-timeout", o.HTTPTimeout, "Timeout for discovery and JWKS requests")
	fs.StringVar(&o.RoleClaim, "oidc.role-claim", o.RoleClaim, "Token claim carrying the fallback role hint")
}
