// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// CSRF token generation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-asset-guard/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key used to store the authenticated user in the context.
// Used together with GetUserFromContext for type-safe retrieval
// of the user from context.Context.
var UserCtxKey = contextKey("user")

// SessionCtxKey is the key used to store the resolved session in the context.
// Used together with GetSessionFromContext for type-safe retrieval
// of the session from context.Context.
var SessionCtxKey = contextKey("session")

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*models.User)
	return user, ok
}

// GetSessionFromContext retrieves the resolved session from the context.
//
// Returns the session and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetSessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(*models.Session)
	return session, ok
}
