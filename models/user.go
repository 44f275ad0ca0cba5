package models

import "time"

// User represents a principal used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the principal.
	ID int64 `json:"id"`

	// Username is the unique login identifier.
	// Uniqueness is enforced among active principals.
	Username string `json:"username"`

	// DisplayName is the human-readable name of the principal.
	// It is non-sensitive and may be shown in UI.
	DisplayName string `json:"display_name"`

	// PasswordHash stores the bcrypt hash of the principal's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	PasswordHash string `json:"-"`

	// Role is the principal's assigned role; it determines the base
	// permission set, the role level, and the request-rate quota.
	Role Role `json:"role"`

	// Overrides holds explicit per-principal permission grants on top of the
	// role's base set. Stored internally as a bitmask; serialized as wire
	// names via Permissions().
	Overrides Permission `json:"-"`

	// Active reports whether the principal may authenticate. Principals are
	// deactivated (soft-deleted), never hard-removed, so that audit and
	// session history stays referentially intact.
	Active bool `json:"active"`

	// MustChangePassword forces a password change on next login. Set at
	// provisioning time and by the corrupted-credential repair path.
	MustChangePassword bool `json:"must_change_password"`

	// LastLogin is the timestamp of the last successful authentication,
	// nil if the principal has never logged in.
	LastLogin *time.Time `json:"last_login,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectivePermissions returns the union of the role's base permission set
// and the principal's explicit overrides.
func (u User) EffectivePermissions() Permission {
	return u.Role.BasePermissions() | u.Overrides
}

// Permissions returns the effective permission set as wire names, suitable
// for embedding into token claims or API responses.
func (u User) Permissions() []string {
	return u.EffectivePermissions().Strings()
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "app_users"
}
