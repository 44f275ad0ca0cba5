// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/models"
)

const (
	// rateWindow is the sliding window over which role quotas apply.
	rateWindow = time.Minute

	// gcProbability is the chance that any single Allow call triggers an
	// opportunistic cleanup of idle tracking entries.
	gcProbability = 0.01

	// loginRatePerSecond and loginBurst bound unauthenticated traffic on
	// the login route per source IP.
	loginRatePerSecond = 1
	loginBurst         = 5
)

// sourceWindow holds the request timestamps of one (source address, role)
// pair inside the sliding window, oldest first.
type sourceWindow struct {
	stamps []time.Time
}

// ipLimiter pairs a token bucket with its last use so idle buckets can be
// swept.
type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimitService is the concrete implementation of RateLimitService.
// Authenticated traffic is limited per (source address, role) with a sliding
// window sized by the role quota; unauthenticated login traffic is limited
// per source IP with a token bucket.
type rateLimitService struct {
	mu      sync.Mutex
	windows map[string]*sourceWindow

	ipMu sync.Mutex
	ips  map[string]*ipLimiter

	logger *logger.Logger
}

// NewRateLimitService constructs a RateLimitService.
func NewRateLimitService(logger *logger.Logger) RateLimitService {
	return &rateLimitService{
		windows: make(map[string]*sourceWindow),
		ips:     make(map[string]*ipLimiter),
		logger:  logger,
	}
}

// Allow consumes one request from the (source address, role) quota.
//
// On rejection the returned *RateLimitError carries the time until the
// oldest in-window request leaves the window, rounded up to whole seconds.
// The role is part of the key, so a role change starts a fresh window.
func (r *rateLimitService) Allow(sourceIP string, role models.Role) error {
	now := time.Now()
	quota := role.RateQuota()
	cutoff := now.Add(-rateWindow)
	key := sourceIP + "_" + string(role)

	r.mu.Lock()
	defer r.mu.Unlock()

	window, ok := r.windows[key]
	if !ok {
		window = &sourceWindow{}
		r.windows[key] = window
	}

	// drop timestamps that have left the window
	trimmed := window.stamps[:0]
	for _, ts := range window.stamps {
		if ts.After(cutoff) {
			trimmed = append(trimmed, ts)
		}
	}
	window.stamps = trimmed

	if len(window.stamps) >= quota {
		retryAfter := window.stamps[0].Sub(cutoff)
		retryAfter = retryAfter.Truncate(time.Second) + time.Second

		r.logger.Warn().
			Str("source_ip", sourceIP).
			Str("role", string(role)).
			Int("quota", quota).
			Dur("retry_after", retryAfter).
			Msg("rate limit exceeded")

		return &RateLimitError{Key: key, RetryAfter: retryAfter}
	}

	window.stamps = append(window.stamps, now)

	// opportunistic cleanup keeps the map from accumulating idle sources
	if rand.Float64() < gcProbability {
		r.sweepWindowsLocked(now)
	}

	return nil
}

// AllowIP consumes one request from the per-IP login-route budget.
func (r *rateLimitService) AllowIP(ip string) error {
	now := time.Now()

	r.ipMu.Lock()
	entry, ok := r.ips[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(rate.Limit(loginRatePerSecond), loginBurst)}
		r.ips[ip] = entry
	}
	entry.lastSeen = now
	allowed := entry.limiter.Allow()
	r.ipMu.Unlock()

	if !allowed {
		r.logger.Warn().Str("ip", ip).Msg("login rate limit exceeded")
		return &RateLimitError{Key: ip, RetryAfter: time.Second}
	}

	return nil
}

// Sweep drops tracking state idle since before now minus the window.
func (r *rateLimitService) Sweep(now time.Time) int {
	removed := 0

	r.mu.Lock()
	removed += r.sweepWindowsLocked(now)
	r.mu.Unlock()

	cutoff := now.Add(-rateWindow)
	r.ipMu.Lock()
	for ip, entry := range r.ips {
		if entry.lastSeen.Before(cutoff) {
			delete(r.ips, ip)
			removed++
		}
	}
	r.ipMu.Unlock()

	return removed
}

// sweepWindowsLocked removes keys whose every timestamp has left the
// window. Callers must hold mu.
func (r *rateLimitService) sweepWindowsLocked(now time.Time) int {
	cutoff := now.Add(-rateWindow)
	removed := 0

	for key, window := range r.windows {
		idle := true
		for _, ts := range window.stamps {
			if ts.After(cutoff) {
				idle = false
				break
			}
		}
		if idle {
			delete(r.windows, key)
			removed++
		}
	}

	return removed
}
