package models

import "time"

// LoginAttempt tracks authentication failures from one source address.
// The record exists only while there is something to remember: it is created
// on the first failure and deleted outright on any successful authentication
// from the same source.
type LoginAttempt struct {
	FailureCount int
	BlockedUntil time.Time
}

// Blocked reports whether the source is locked out at now.
func (a LoginAttempt) Blocked(now time.Time) bool {
	return now.Before(a.BlockedUntil)
}

// LoginRecord is one persisted row of the login history.
type LoginRecord struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	SourceIP      string    `json:"ip_address"`
	UserAgent     string    `json:"user_agent"`
	Success       bool      `json:"success"`
	FailureReason string    `json:"failure_reason,omitempty"`
	LoggedAt      time.Time `json:"login_timestamp"`
}

// TableName returns the name of the database table
// associated with the LoginRecord model.
func (r LoginRecord) TableName() string {
	return "app_login_history"
}

// LoginStats aggregates the login history for reporting.
type LoginStats struct {
	TotalLogins      int64 `json:"total_logins"`
	SuccessfulLogins int64 `json:"successful_logins"`
	FailedLogins     int64 `json:"failed_logins"`
	UniqueUsers      int64 `json:"unique_users"`
}

// LoginHistoryFilter narrows a login-history query. Zero-valued fields are
// ignored; Limit caps the number of returned rows.
type LoginHistoryFilter struct {
	UserID  int64
	Success *bool
	Since   time.Time
	Limit   uint64
}
