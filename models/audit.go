// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuditAction names a security decision recorded in the audit trail.
// Security-infrastructure actions are fixed constants; business handlers
// additionally declare their own action names (e.g. "USER_CREATE") when they
// wrap themselves in the audit middleware.
type AuditAction string

const (
	AuditAuthFailed     AuditAction = "AUTH_FAILED"
	AuditSessionExpired AuditAction = "SESSION_EXPIRED"
	AuditDeniedRole     AuditAction = "ACCESS_DENIED_ROLE"
	AuditDeniedPerm     AuditAction = "ACCESS_DENIED_PERMISSION"
	AuditRateLimited    AuditAction = "RATE_LIMIT_EXCEEDED"
	AuditCSRFAttack     AuditAction = "CSRF_ATTACK"
	AuditIPBlocked      AuditAction = "IP_BLOCKED"
	AuditCredRepaired   AuditAction = "CREDENTIAL_REPAIRED"
	AuditLoginSuccess   AuditAction = "LOGIN_SUCCESS"
	AuditLogout         AuditAction = "LOGOUT"
	AuditAccessGranted  AuditAction = "ACCESS_GRANTED"
)

// Audit result values.
const (
	AuditResultSuccess = "SUCCESS"
	AuditResultFailure = "FAILURE"
	AuditResultDenied  = "DENIED"
)

// AuditEntry is one immutable record of a security decision, appended by the
// request guard at every decision point (denials and successes alike) and
// never mutated afterwards.
type AuditEntry struct {
	Timestamp time.Time   `json:"timestamp"`
	Action    AuditAction `json:"action"`

	// User is the principal's username, or "anonymous" when the decision was
	// made before any identity could be established.
	User string `json:"user"`

	// Role is the principal's role, or "unknown" pre-authentication.
	Role string `json:"role"`

	SourceIP string `json:"ip"`
	Resource string `json:"resource"`
	Method   string `json:"method"`

	// Result is one of the AuditResult* values.
	Result string `json:"result"`

	// DurationMS is the handler latency for wrapped requests, zero for
	// denials short-circuited in the middleware chain.
	DurationMS int64 `json:"duration_ms"`

	// Detail carries human-readable context (denial reason, requirement
	// violated). It must never contain raw tokens or password material.
	Detail string `json:"detail,omitempty"`
}

// AuditFilter narrows an audit query. Zero-valued fields match everything.
type AuditFilter struct {
	// User matches entries whose User field equals this value exactly.
	User string

	// Action matches entries with this exact action.
	Action AuditAction

	// Since matches entries whose Timestamp is at or after this instant.
	Since time.Time
}
