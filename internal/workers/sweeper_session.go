// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/service"
)

// sessionSweeper periodically removes expired sessions from the registry so
// that abandoned logins do not accumulate. Expired sessions are already
// rejected on access; the sweeper only reclaims memory.
type sessionSweeper struct {
	ctx      context.Context
	sessions service.SessionService
	interval time.Duration

	logger *logger.Logger
}

func newSessionSweeper(ctx context.Context, sessions service.SessionService, interval time.Duration, logger *logger.Logger) *sessionSweeper {
	return &sessionSweeper{
		ctx:      ctx,
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
func (s *sessionSweeper) Run() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

		for {
			select {
			case <-s.ctx.Done():
				s.logger.Info().Msg("session sweeper stopped")
				return
			case now := <-ticker.C:
				if dropped := s.sessions.Sweep(now); dropped > 0 {
					s.logger.Debug().Int("dropped", dropped).Msg("expired sessions swept")
				}
			}
		}
	}()
}
