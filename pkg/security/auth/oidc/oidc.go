// Package oidc verifies OpenID Connect ID tokens against a provider's
// published signing keys. Tokens are checked locally (signature, issuer,
// audience, expiry) without a network round trip per request.
package oidc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v4"

	errno "github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/security/auth"
	"github.com/kart-io/hr-center/pkg/security/authz/rbac"
)

// Verifier validates bearer tokens issued by an OIDC provider.
// It implements auth.Authenticator.
type Verifier struct {
	opts   *Options
	keys   *keySet
	parser *jwt.Parser
}

var _ auth.Authenticator = (*Verifier)(nil)

// tokenClaims is the payload we extract from an ID token. Role is a
// provider-side hint only; the authoritative role comes from the
// profile store.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`

	// raw keeps the full payload so the configured role claim can be
	// read without hardcoding its name into the struct.
	raw map[string]json.RawMessage
}

func (c *tokenClaims) UnmarshalJSON(data []byte) error {
	type alias tokenClaims
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = tokenClaims(a)
	return json.Unmarshal(data, &c.raw)
}

// New builds a Verifier. When JWKSURL is not set explicitly the
// provider's discovery document is fetched once to locate it.
func New(ctx context.Context, opts *Options) (*Verifier, error) {
	if opts == nil {
		opts = NewOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: opts.HTTPTimeout}

	jwksURL := opts.JWKSURL
	if jwksURL == "" {
		discovered, err := discoverJWKSURL(ctx, client, opts.IssuerURL)
		if err != nil {
			return nil, err
		}
		jwksURL = discovered
	}

	return &Verifier{
		opts:   opts,
		keys:   newKeySet(jwksURL, client, opts.JWKSRefreshInterval),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{"RS256"})),
	}, nil
}

// Type returns the authenticator type.
func (v *Verifier) Type() string { return "oidc" }

// Verify parses and validates tokenString and returns its claims.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (*auth.Claims, error) {
	claims := &tokenClaims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("oidc: token has no key id")
		}
		return v.keys.Key(ctx, kid)
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errno.ErrTokenExpired.WithCause(err)
		}
		return nil, errno.ErrInvalidToken.WithCause(err)
	}
	if !token.Valid {
		return nil, errno.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, errno.ErrInvalidToken.WithMessage("token has no subject")
	}
	if v.opts.IssuerURL != "" && !claims.VerifyIssuer(v.opts.IssuerURL, true) {
		return nil, errno.ErrInvalidToken.WithMessage("token issuer mismatch")
	}
	if v.opts.Audience != "" && !claims.VerifyAudience(v.opts.Audience, true) {
		return nil, errno.ErrInvalidToken.WithMessage("token audience mismatch")
	}

	out := &auth.Claims{
		Subject:       claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
		Role:          v.roleHint(claims),
		Issuer:        claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// roleHint extracts the configured role claim when present and valid.
func (v *Verifier) roleHint(claims *tokenClaims) rbac.Role {
	raw, ok := claims.raw[v.opts.RoleClaim]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	role := rbac.Role(s)
	if !role.Valid() {
		return ""
	}
	return role
}

// discoverJWKSURL reads jwks_uri from the issuer's discovery document.
func discoverJWKSURL(ctx context.Context, client *http.Client, issuer string) (string, error) {
	url := issuer + "/.well-known/openid-configuration"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("oidc: build discovery request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("oidc: fetch discovery document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oidc: discovery endpoint returned status %d", resp.StatusCode)
	}

	var doc struct {
		JWKSURI string `json:"jwks_uri"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", fmt.Errorf("oidc: decode discovery document: %w", err)
	}
	if doc.JWKSURI == "" {
		return "", fmt.Errorf("oidc: discovery document has no jwks_uri")
	}
	return doc.JWKSURI, nil
}
