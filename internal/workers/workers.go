package workers

import (
	"context"

	"github.com/MKhiriev/go-asset-guard/internal/config"
	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background jobs that keep the in-memory guard state
// bounded: the session sweeper and the rate-limiter garbage collector. Both
// stop when ctx is cancelled.
func NewWorkers(ctx context.Context, services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newSessionSweeper(ctx, services.SessionService, cfg.SweepInterval, logger),
			newLimiterSweeper(ctx, services.RateLimitService, cfg.SweepInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
