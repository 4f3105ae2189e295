package auth

import (
	"context"
)

// contextKey is the type for context keys in this package.
type contextKey string

const (
	// claimsKey is the context key for storing verified Claims.
	claimsKey contextKey = "auth:claims"

	// subjectKey is the context key for storing the authorized Subject.
	subjectKey contextKey = "auth:subject"
)

// ContextWithClaims returns a new context with the given claims.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the claims from the context.
// Returns nil if no claims are found.
func ClaimsFromContext(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(claimsKey).(*Claims); ok {
		return claims
	}
	return nil
}

// ContextWithSubject returns a new context with the given subject.
func ContextWithSubject(ctx context.Context, subject *Subject) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromContext returns the authorized subject from the context.
// Returns nil before the guard has admitted the request.
func SubjectFromContext(ctx context.Context) *Subject {
	if subject, ok := ctx.Value(subjectKey).(*Subject); ok {
		return subject
	}
	return nil
}

// MustSubjectFromContext returns the subject from context or panics.
// Only for handlers registered behind the guard, where a missing
// subject is a programming error.
func MustSubjectFromContext(ctx context.Context) *Subject {
	subject := SubjectFromContext(ctx)
	if subject == nil {
		panic("auth: subject not found in context")
	}
	return subject
}
