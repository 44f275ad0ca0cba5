package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-asset-guard/models"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionExpired      = errors.New("session expired")
)

// AuthReason classifies why an authentication attempt was rejected.
type AuthReason string

const (
	ReasonMissingToken     AuthReason = "missing_token"
	ReasonMalformedToken   AuthReason = "malformed_token"
	ReasonExpiredToken     AuthReason = "expired_token"
	ReasonInvalidSignature AuthReason = "invalid_signature"
	ReasonUserNotFound     AuthReason = "user_not_found"
	ReasonUserInactive     AuthReason = "user_inactive"
	ReasonWrongPassword    AuthReason = "wrong_password"
	ReasonAccountLocked    AuthReason = "account_locked"
)

// AuthenticationError reports a failed authentication together with the
// machine-readable reason. Use [errors.As] to recover the reason from a
// wrapped error chain.
type AuthenticationError struct {
	Reason   AuthReason
	Username string
}

func (e *AuthenticationError) Error() string {
	if e.Username == "" {
		return fmt.Sprintf("authentication failed: %s", e.Reason)
	}
	return fmt.Sprintf("authentication failed for %q: %s", e.Username, e.Reason)
}

// NewAuthError constructs an *AuthenticationError.
func NewAuthError(reason AuthReason, username string) *AuthenticationError {
	return &AuthenticationError{Reason: reason, Username: username}
}

// AuthorizationError reports that an authenticated user lacks the role level
// or permissions a route demands. Exactly one of MinLevel or Missing is set,
// depending on which check failed.
type AuthorizationError struct {
	Username string
	Role     models.Role
	MinLevel int
	Missing  models.Permission
}

func (e *AuthorizationError) Error() string {
	if e.MinLevel > 0 {
		return fmt.Sprintf("access denied for %q: role %q below required level %d", e.Username, e.Role, e.MinLevel)
	}
	return fmt.Sprintf("access denied for %q: missing permissions %v", e.Username, e.Missing.Strings())
}

// RateLimitError reports that a request was rejected by a rate limiter and
// how long the caller should wait before retrying.
type RateLimitError struct {
	Key        string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %q, retry after %s", e.Key, e.RetryAfter)
}

// CSRFError reports a mutating request that arrived without a CSRF token or
// with one that does not match the session.
type CSRFError struct {
	Username string
}

func (e *CSRFError) Error() string {
	return fmt.Sprintf("csrf token validation failed for %q", e.Username)
}
