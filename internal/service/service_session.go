// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-asset-guard/internal/config"
	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/utils"
	"github.com/MKhiriev/go-asset-guard/models"
)

// sessionService is the concrete implementation of SessionService.
// Sessions live in memory only: a restart logs everyone out, which is the
// intended behavior for this service.
type sessionService struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session

	// timeout is the inactivity window; each resolved request pushes the
	// session's expiry out by this much.
	timeout time.Duration

	logger *logger.Logger
}

// NewSessionService constructs a SessionService with the configured
// inactivity timeout.
func NewSessionService(cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessions: make(map[string]*models.Session),
		timeout:  cfg.SessionTimeout,
		logger:   logger,
	}
}

// Create registers a session for freshly issued claims. The session key is
// derived from the claims (username plus issue time), so one user can hold
// several concurrent sessions from different logins.
func (s *sessionService) Create(ctx context.Context, claims *models.Claims, sourceIP, userAgent string) (models.Session, error) {
	if claims == nil || claims.Username == "" || claims.IssuedAt == nil {
		return models.Session{}, ErrInvalidDataProvided
	}

	// a cancelled request must not leave a session behind
	if err := ctx.Err(); err != nil {
		return models.Session{}, err
	}

	csrfToken, err := utils.GenerateCSRFToken()
	if err != nil {
		return models.Session{}, err
	}

	now := time.Now()
	session := &models.Session{
		ID:           claims.SessionKey(),
		Username:     claims.Username,
		IssuedAt:     claims.IssuedAt.Time,
		CreatedAt:    now,
		LastActivity: now,
		ExpiresAt:    now.Add(s.timeout),
		SourceIP:     sourceIP,
		UserAgent:    userAgent,
		CSRFToken:    csrfToken,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	logger.FromContext(ctx).Debug().
		Str("username", session.Username).
		Str("source_ip", sourceIP).
		Msg("session created")

	return *session, nil
}

// Resolve finds the session matching the claims, rejects it if the
// inactivity window has passed, and otherwise extends the window. The
// window only slides for live requests; a cancelled context resolves
// without renewing.
func (s *sessionService) Resolve(ctx context.Context, claims *models.Claims) (models.Session, error) {
	if claims == nil {
		return models.Session{}, ErrInvalidDataProvided
	}

	key := claims.SessionKey()
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[key]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	if session.Expired(now) {
		delete(s.sessions, key)
		logger.FromContext(ctx).Info().
			Str("username", session.Username).
			Msg("session expired")
		return models.Session{}, ErrSessionExpired
	}

	// a cancelled request still resolves but must not slide the window
	if ctx.Err() == nil {
		session.LastActivity = now
		session.ExpiresAt = now.Add(s.timeout)
	}

	return *session, nil
}

// ValidateCSRF compares token against the session's CSRF token in constant
// time.
func (s *sessionService) ValidateCSRF(sessionKey, token string) error {
	s.mu.RLock()
	session, ok := s.sessions[sessionKey]
	s.mu.RUnlock()

	if !ok {
		return ErrSessionNotFound
	}

	if token == "" || !utils.CSRFTokenEqual(session.CSRFToken, token) {
		return &CSRFError{Username: session.Username}
	}

	return nil
}

// Invalidate removes one session. Missing keys are ignored.
func (s *sessionService) Invalidate(sessionKey string) {
	s.mu.Lock()
	delete(s.sessions, sessionKey)
	s.mu.Unlock()
}

// InvalidateUser removes every session belonging to username.
func (s *sessionService) InvalidateUser(username string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for key, session := range s.sessions {
		if session.Username == username {
			delete(s.sessions, key)
			dropped++
		}
	}

	return dropped
}

// Sweep removes sessions whose inactivity window has passed as of now.
func (s *sessionService) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for key, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, key)
			dropped++
		}
	}

	if dropped > 0 {
		s.logger.Debug().Int("dropped", dropped).Msg("expired sessions swept")
	}

	return dropped
}

// Count reports the number of live sessions.
func (s *sessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
