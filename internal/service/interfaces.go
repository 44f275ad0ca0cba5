package service

//go:generate mockgen -destination=mock/mock_service.go -package=mock github.com/MKhiriev/go-asset-guard/internal/service AuthService,SessionService,ThrottleService,RateLimitService,PermissionService,UserAdminService,AuditService

import (
	"context"
	"time"

	"github.com/MKhiriev/go-asset-guard/models"
)

// AuthService owns credentials and token lifecycle.
type AuthService interface {
	// VerifyCredentials checks a username/password pair against the store.
	// Failures carry an *AuthenticationError with the rejection reason.
	VerifyCredentials(ctx context.Context, username, password string) (models.User, error)

	// CreateToken issues a signed JWT for the user and returns the raw
	// token string together with the claims embedded in it.
	CreateToken(ctx context.Context, user models.User) (string, *models.Claims, error)

	// ParseToken validates a raw JWT string and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (*models.Claims, error)

	// ChangePassword verifies the old password and replaces it, clearing
	// the must-change flag.
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error

	// RepairCredentials resets accounts whose stored hash is missing or not
	// a bcrypt hash back to the default password and forces a change on the
	// next login. Returns the number of repaired accounts.
	RepairCredentials(ctx context.Context) ([]models.User, error)

	// RecordLogin appends one attempt to the persistent login history.
	RecordLogin(ctx context.Context, record models.LoginRecord) error
}

// SessionService tracks live sessions in memory, keyed by username and token
// issue time.
type SessionService interface {
	// Create registers a session for freshly issued claims and mints its
	// CSRF token.
	Create(ctx context.Context, claims *models.Claims, sourceIP, userAgent string) (models.Session, error)

	// Resolve finds the session matching the claims and bumps its activity
	// window. Returns ErrSessionNotFound or ErrSessionExpired.
	Resolve(ctx context.Context, claims *models.Claims) (models.Session, error)

	// ValidateCSRF compares the supplied token against the session's in
	// constant time.
	ValidateCSRF(sessionKey, token string) error

	// Invalidate removes one session.
	Invalidate(sessionKey string)

	// InvalidateUser removes every session belonging to username and
	// returns how many were dropped.
	InvalidateUser(username string) int

	// Sweep removes sessions that have expired as of now and returns how
	// many were dropped.
	Sweep(now time.Time) int

	// Count reports the number of live sessions.
	Count() int
}

// ThrottleService enforces the per-source lockout policy for failed logins.
type ThrottleService interface {
	// Check returns an *AuthenticationError with ReasonAccountLocked while
	// the source address is locked out.
	Check(sourceIP string) error

	// RegisterFailure counts one failed login from the source address and
	// reports whether the source just crossed the lockout threshold.
	RegisterFailure(sourceIP string) (blocked bool, until time.Time)

	// Reset clears the failure state after a successful login from the
	// source address.
	Reset(sourceIP string)
}

// RateLimitService enforces the per-source sliding-window quotas and the
// pre-authentication per-IP limit on the login route.
type RateLimitService interface {
	// Allow consumes one request from the (source address, role) quota.
	// Rejections carry a *RateLimitError with the retry-after hint.
	Allow(sourceIP string, role models.Role) error

	// AllowIP consumes one request from the per-IP login-route budget.
	AllowIP(ip string) error

	// Sweep drops tracking state that has been idle since before now and
	// returns how many entries were removed.
	Sweep(now time.Time) int
}

// PermissionService answers authorization questions for authenticated users.
type PermissionService interface {
	// Authorize checks the user against the route requirement. Failures
	// carry an *AuthorizationError naming what was missing.
	Authorize(user *models.User, requirement Requirement) error
}

// UserAdminService covers account provisioning and reporting, available to
// administrators only.
type UserAdminService interface {
	ProvisionUser(ctx context.Context, username, displayName string, role models.Role) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, userID int64, role models.Role) error
	SetActive(ctx context.Context, userID int64, active bool) error
	GrantPermissions(ctx context.Context, userID int64, permissions models.Permission) error
	RevokePermissions(ctx context.Context, userID int64, permissions models.Permission) error

	LoginHistory(ctx context.Context, filter models.LoginHistoryFilter) ([]models.LoginRecord, error)
	LoginStats(ctx context.Context, since time.Time) (models.LoginStats, error)
}

// AuditService records security-relevant events into a bounded in-memory log.
type AuditService interface {
	Record(entry models.AuditEntry)
	Query(filter models.AuditFilter) []models.AuditEntry
	Len() int
}
