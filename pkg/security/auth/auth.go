// Package auth provides the authentication contract for HR-Center.
//
// Token issuance, refresh, and revocation belong to the external identity
// provider; this service only verifies. The verification flow:
//
//  1. Client presents a bearer token minted by the identity provider
//  2. Authenticator.Verify() validates the token and extracts claims
//  3. The guard middleware resolves the authoritative role from the
//     profile store and injects the subject into the request context
//
// Design principles:
//   - Interface-driven: providers implement the Authenticator interface
//   - Context-aware: the authenticated subject propagates via context,
//     request-scoped and by value - never a shared singleton
//   - Stateless: every request is independently verified; no session or
//     decision caching lives in this layer
package auth

import (
	"context"
	"time"

	"github.com/kart-io/hr-center/pkg/security/authz/rbac"
)

// Authenticator verifies bearer credentials with the identity provider.
type Authenticator interface {
	// Verify validates the token and returns the claims.
	// Returns an error if the token is invalid, expired, or was not
	// issued by the configured provider.
	Verify(ctx context.Context, tokenString string) (*Claims, error)

	// Type returns the authenticator type (e.g., "oidc").
	Type() string
}

// Claims represents the identity asserted by a verified token.
type Claims struct {
	// Subject is the stable subject identifier (uid) at the provider.
	Subject string `json:"sub"`

	// Email is the subject's email address.
	Email string `json:"email,omitempty"`

	// EmailVerified reports whether the provider verified the email.
	EmailVerified bool `json:"email_verified,omitempty"`

	// Role is an optional role claim embedded in the token. It is a
	// fallback hint only: tokens outlive role changes, so the
	// authoritative role always comes from the profile store.
	Role rbac.Role `json:"role,omitempty"`

	// Issuer is the token issuer.
	Issuer string `json:"iss,omitempty"`

	// ExpiresAt is the token expiration time.
	ExpiresAt time.Time `json:"exp,omitempty"`
}

// Subject is the authenticated, role-resolved identity attached to a
// request after the guard admits it. It is derived per-request and never
// persisted or shared across requests.
type Subject struct {
	// UID is the subject identifier from the verified credential.
	UID string `json:"uid"`

	// Role is the authoritative role resolved from the profile store.
	Role rbac.Role `json:"role"`

	// Email is carried for handler convenience (audit fields, responses).
	Email string `json:"email,omitempty"`
}
