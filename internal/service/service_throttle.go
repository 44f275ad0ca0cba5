package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-asset-guard/internal/config"
	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/models"
)

// throttleService is the concrete implementation of ThrottleService.
// Failure state is kept per source address and exists only between the first
// failure and the next success from that source.
type throttleService struct {
	mu       sync.Mutex
	attempts map[string]*models.LoginAttempt

	maxAttempts     int
	lockoutDuration time.Duration

	logger *logger.Logger
}

// NewThrottleService constructs a ThrottleService with the configured
// lockout policy.
func NewThrottleService(cfg config.App, logger *logger.Logger) ThrottleService {
	return &throttleService{
		attempts:        make(map[string]*models.LoginAttempt),
		maxAttempts:     cfg.MaxLoginAttempts,
		lockoutDuration: cfg.LockoutDuration,
		logger:          logger,
	}
}

// Check returns an *AuthenticationError with ReasonAccountLocked while the
// source's lockout is active. Expired lockouts are cleared on the way
// through.
func (t *throttleService) Check(sourceIP string) error {
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	attempt, ok := t.attempts[sourceIP]
	if !ok {
		return nil
	}

	if attempt.Blocked(now) {
		return NewAuthError(ReasonAccountLocked, "")
	}

	// lockout has lapsed; the counter resets so the next failure starts over
	if !attempt.BlockedUntil.IsZero() && !attempt.Blocked(now) {
		delete(t.attempts, sourceIP)
	}

	return nil
}

// RegisterFailure counts one failed login from the source. When the failure
// count reaches the configured maximum, the source is locked and the lockout
// deadline is returned.
func (t *throttleService) RegisterFailure(sourceIP string) (bool, time.Time) {
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	attempt, ok := t.attempts[sourceIP]
	if !ok {
		attempt = &models.LoginAttempt{}
		t.attempts[sourceIP] = attempt
	}

	attempt.FailureCount++
	if attempt.FailureCount >= t.maxAttempts {
		attempt.BlockedUntil = now.Add(t.lockoutDuration)
		t.logger.Warn().
			Str("source_ip", sourceIP).
			Int("failures", attempt.FailureCount).
			Time("blocked_until", attempt.BlockedUntil).
			Msg("source locked after repeated login failures")
		return true, attempt.BlockedUntil
	}

	return false, time.Time{}
}

// Reset clears the failure state after a successful login.
func (t *throttleService) Reset(sourceIP string) {
	t.mu.Lock()
	delete(t.attempts, sourceIP)
	t.mu.Unlock()
}
