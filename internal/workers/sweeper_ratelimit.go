package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/service"
)

// limiterSweeper drops rate-limiter tracking state that has gone idle, the
// scheduled complement of the limiter's probabilistic on-request cleanup.
type limiterSweeper struct {
	ctx      context.Context
	limiter  service.RateLimitService
	interval time.Duration

	logger *logger.Logger
}

func newLimiterSweeper(ctx context.Context, limiter service.RateLimitService, interval time.Duration, logger *logger.Logger) *limiterSweeper {
	return &limiterSweeper{
		ctx:      ctx,
		limiter:  limiter,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
func (l *limiterSweeper) Run() {
	go func() {
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()

		l.logger.Info().Dur("interval", l.interval).Msg("rate limiter sweeper started")

		for {
			select {
			case <-l.ctx.Done():
				l.logger.Info().Msg("rate limiter sweeper stopped")
				return
			case now := <-ticker.C:
				if removed := l.limiter.Sweep(now); removed > 0 {
					l.logger.Debug().Int("removed", removed).Msg("idle limiter entries swept")
				}
			}
		}
	}()
}
