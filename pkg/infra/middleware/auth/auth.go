// Package auth provides the authentication and authorization middleware
// chain: bearer token verification, role resolution from the profile
// store, and permission checks against the role matrix.
package auth

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/response"
	"github.com/kart-io/hr-center/pkg/security/auth"
	"github.com/kart-io/hr-center/pkg/security/authz/rbac"
)

const bearerScheme = "Bearer"

// RoleResolver maps an authenticated uid to its stored role. The stored
// role is authoritative: tokens can outlive role changes, so any role
// claim inside the token is never trusted for enforcement.
type RoleResolver interface {
	ResolveRole(ctx context.Context, uid string) (rbac.Role, error)
}

// OwnerLookup resolves the owning uid of a resource. A missing resource
// or a broken owner link returns ("", nil): the caller is denied without
// revealing whether the resource exists. Errors are reserved for genuine
// store faults.
type OwnerLookup func(ctx context.Context, resourceID string) (string, error)

// Guard wires an Authenticator and a RoleResolver into gin middleware.
// Decisions are stateless: same inputs, same outcome, one store round
// trip per request, no caching.
type Guard struct {
	authenticator auth.Authenticator
	resolver      RoleResolver
}

// NewGuard creates a Guard.
func NewGuard(authenticator auth.Authenticator, resolver RoleResolver) *Guard {
	return &Guard{authenticator: authenticator, resolver: resolver}
}

// Authenticate verifies the bearer token and resolves the caller's role.
// On success the subject is attached to the request context; every
// failure aborts with 401. The profile store is only consulted after the
// token itself has been verified.
func (g *Guard) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractBearer(c)
		if !ok {
			response.Abort(c, errors.ErrMissingToken)
			return
		}

		claims, err := g.authenticator.Verify(c.Request.Context(), tokenString)
		if err != nil {
			logAuthFailure(c, tokenString, err)
			response.Abort(c, errors.FromError(err))
			return
		}

		role, err := g.resolver.ResolveRole(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.IsCode(err, errors.ErrProfileNotFound.Code) ||
				errors.IsCode(err, errors.ErrRecordNotFound.Code) {
				logger.Warnw("authenticated subject has no profile",
					"subject", claims.Subject,
					"path", c.Request.URL.Path,
				)
				response.Abort(c, errors.ErrProfileNotFound)
				return
			}
			response.Abort(c, errors.ErrInternal.WithCause(err))
			return
		}

		subject := &auth.Subject{UID: claims.Subject, Role: role, Email: claims.Email}
		ctx := auth.ContextWithClaims(c.Request.Context(), claims)
		ctx = auth.ContextWithSubject(ctx, subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// Require allows the request only when the caller's role grants perm.
// It must run after Authenticate.
func (g *Guard) Require(perm rbac.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := auth.SubjectFromContext(c.Request.Context())
		if subject == nil {
			response.Abort(c, errors.ErrUnauthorized.WithMessage("no authenticated subject"))
			return
		}

		if !rbac.HasPermission(subject.Role, perm) {
			logAuthzDenial(c, subject, perm, "role lacks permission")
			response.Abort(c, errors.ErrNoPermission)
			return
		}

		c.Next()
	}
}

// RequireOwned applies the ownership-scoped check to the route parameter
// named param. Admins and managers are decided by the role matrix alone;
// employees pass only when reading a resource they own. An unresolvable
// owner denies with 403 so resource existence is not leaked.
func (g *Guard) RequireOwned(perm rbac.Permission, param string, lookup OwnerLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := auth.SubjectFromContext(c.Request.Context())
		if subject == nil {
			response.Abort(c, errors.ErrUnauthorized.WithMessage("no authenticated subject"))
			return
		}

		// Only employees need the owner resolved. Checking the matrix
		// first also rejects employee mutations before any store call.
		if subject.Role != rbac.RoleEmployee {
			if !rbac.HasPermission(subject.Role, perm) {
				logAuthzDenial(c, subject, perm, "role lacks permission")
				response.Abort(c, errors.ErrNoPermission)
				return
			}
			c.Next()
			return
		}

		if perm != rbac.PermissionRead {
			logAuthzDenial(c, subject, perm, "ownership never grants mutations")
			response.Abort(c, errors.ErrNoPermission)
			return
		}

		owner, err := lookup(c.Request.Context(), c.Param(param))
		if err != nil {
			response.Abort(c, errors.ErrInternal.WithCause(err))
			return
		}

		if !rbac.CanAccessResource(subject.Role, subject.UID, owner, perm) {
			logAuthzDenial(c, subject, perm, "resource not owned by subject")
			response.Abort(c, errors.ErrOwnershipDenied)
			return
		}

		c.Next()
	}
}

// extractBearer pulls the token out of the Authorization header. A
// present but non-bearer or empty credential is treated as missing.
func extractBearer(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

// logAuthFailure records rejected credentials for security audit. Only a
// token prefix is logged.
func logAuthFailure(c *gin.Context, token string, err error) {
	prefix := token
	if len(prefix) > 16 {
		prefix = prefix[:16] + "..."
	}
	logger.Warnw("authentication failed",
		"error", err.Error(),
		"token_prefix", prefix,
		"remote_addr", c.Request.RemoteAddr,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
}

func logAuthzDenial(c *gin.Context, subject *auth.Subject, perm rbac.Permission, reason string) {
	logger.Warnw("authorization denied",
		"subject", subject.UID,
		"role", string(subject.Role),
		"permission", string(perm),
		"reason", reason,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
}
