package models

import "time"

// Session is the live, in-memory record of an authenticated token's activity.
// Sessions use sliding expiration: every authorized request pushes ExpiresAt
// forward, so the invariant ExpiresAt = LastActivity + sessionTimeout holds
// at all times. Sessions are ephemeral and not persisted across restarts.
type Session struct {
	// ID is the registry key: "<username>_<token issued-at unix>". There is
	// at most one authoritative session per (username, issuedAt) pair.
	ID string `json:"id"`

	// Username is the owning principal's login.
	Username string `json:"username"`

	// IssuedAt is the "iat" of the token that created the session.
	IssuedAt time.Time `json:"issued_at"`

	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
	ExpiresAt    time.Time `json:"expires_at"`

	// SourceIP and UserAgent capture where the session was established,
	// for audit context.
	SourceIP  string `json:"source_ip"`
	UserAgent string `json:"user_agent"`

	// CSRFToken is the per-session secret that state-changing requests must
	// echo in the X-CSRF-Token header. Never serialized.
	CSRFToken string `json:"-"`
}

// Expired reports whether the session's sliding deadline has passed at now.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
