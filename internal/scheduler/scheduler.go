package scheduler

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/songzhibin97/cosmoboard/internal/data"
	"github.com/songzhibin97/cosmoboard/internal/render"
)

// Sink receives the rendered slots of every pass.
type Sink interface {
	Apply(slots map[string]string, now time.Time)
}

type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Scheduler runs fetch-and-render passes: one immediately, then one per interval.
// A tick that fires while a pass is still in flight is skipped.
type Scheduler struct {
	provider data.SnapshotProvider
	sink     Sink
	interval time.Duration
	logger   Logger

	inflight *semaphore.Weighted
	now      func() time.Time
}

func NewScheduler(provider data.SnapshotProvider, sink Sink, interval time.Duration, logger Logger) *Scheduler {
	return &Scheduler{
		provider: provider,
		sink:     sink,
		interval: interval,
		logger:   logger,
		inflight: semaphore.NewWeighted(1),
		now:      time.Now,
	}
}

// Run blocks until ctx is cancelled and all started passes have finished.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("dashboard initializing", "interval", s.interval.String())

	// 首次加载同步执行
	s.tryPass(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !s.inflight.TryAcquire(1) {
				s.logger.Warn("previous refresh still in flight, skipping tick")
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer s.inflight.Release(1)
				s.logger.Debug("refreshing data")
				s.pass(ctx)
			}()
		}
	}
}

func (s *Scheduler) tryPass(ctx context.Context) {
	if !s.inflight.TryAcquire(1) {
		return
	}
	defer s.inflight.Release(1)
	s.pass(ctx)
}

// pass performs one fetch-and-render cycle, bounded by the refresh interval.
func (s *Scheduler) pass(ctx context.Context) {
	passCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	snap := s.provider.FetchSnapshot(passCtx)
	s.logger.Debug("snapshot ready", "source", string(snap.Source))
	s.sink.Apply(render.Slots(snap), s.now())
}
