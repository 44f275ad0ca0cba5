// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/service/mock"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestSessionSweeper_SweepsOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionService(ctrl)

	var sweeps atomic.Int32
	sessions.EXPECT().
		Sweep(gomock.Any()).
		DoAndReturn(func(time.Time) int {
			sweeps.Add(1)
			return 0
		}).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := newSessionSweeper(ctx, sessions, 5*time.Millisecond, logger.Nop())
	sweeper.Run()

	deadline := time.After(time.Second)
	for sweeps.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 2 sweeps, got %d", sweeps.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSessionSweeper_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionService(ctrl)
	sessions.EXPECT().Sweep(gomock.Any()).Return(0).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())

	sweeper := newSessionSweeper(ctx, sessions, time.Millisecond, logger.Nop())
	sweeper.Run()

	time.Sleep(10 * time.Millisecond)
	cancel()

	// give the goroutine a moment to observe cancellation, then make sure
	// no further sweeps arrive
	time.Sleep(10 * time.Millisecond)
	ctrl.Finish()
}

func TestLimiterSweeper_SweepsOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mock.NewMockRateLimitService(ctrl)

	var sweeps atomic.Int32
	limiter.EXPECT().
		Sweep(gomock.Any()).
		DoAndReturn(func(time.Time) int {
			sweeps.Add(1)
			return 1
		}).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := newLimiterSweeper(ctx, limiter, 5*time.Millisecond, logger.Nop())
	sweeper.Run()

	deadline := time.After(time.Second)
	for sweeps.Load() < 1 {
		select {
		case <-deadline:
			t.Fatal("expected at least one sweep")
		case <-time.After(5 * time.Millisecond):
		}
	}
}
