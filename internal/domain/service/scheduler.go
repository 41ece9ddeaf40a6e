package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// maxSleep bounds a single wait so wall clock jumps are noticed within a minute.
const maxSleep = time.Minute

// Scheduler fires one tick per scheduled occurrence from a single loop.
type Scheduler struct {
	spec     entity.ScheduleSpec
	schedule cron.Schedule
	clock    Clock
	logger   *zap.Logger
	maxSleep time.Duration

	mu     sync.Mutex
	last   time.Time
	cancel context.CancelFunc
	done   chan struct{}
}

func newScheduler(spec entity.ScheduleSpec, clock Clock, logger *zap.Logger) (*Scheduler, error) {
	if len(spec.Weekdays) == 0 {
		return nil, fmt.Errorf("no active days configured")
	}

	schedule, err := cron.ParseStandard(spec.CronExpr())
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec.CronExpr(), err)
	}

	return &Scheduler{
		spec:     spec,
		schedule: schedule,
		clock:    clock,
		logger:   logger.Named("scheduler"),
		maxSleep: maxSleep,
	}, nil
}

// Next returns the first matching instant strictly after both now and last.
func (s *Scheduler) Next(now, last time.Time) time.Time {
	from := now
	if last.After(from) {
		from = last
	}
	return s.schedule.Next(from)
}

// NextFire is Next relative to the last occurrence fired by Run.
func (s *Scheduler) NextFire(now time.Time) time.Time {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()

	return s.Next(now, last)
}

func (s *Scheduler) Spec() entity.ScheduleSpec {
	return s.spec
}

// Run blocks until ctx is done. onTick runs on the loop goroutine, so ticks never overlap.
//
// A late wake-up (suspended process, clock jumped forward) fires the pending
// occurrence once; the occurrences it slept through are not replayed.
func (s *Scheduler) Run(ctx context.Context, onTick func(context.Context, entity.Tick)) {
	s.logger.Info("Scheduler starting...", zap.String("schedule", s.spec.CronExpr()))
	defer s.logger.Info("Scheduler stopped")

	next := s.NextFire(s.clock.Now())
	s.logger.Info("Next report scheduled", zap.Time("at", next))

	for {
		if ctx.Err() != nil {
			return
		}

		now := s.clock.Now()
		if now.Before(next) {
			wait := next.Sub(now)
			if wait > s.maxSleep {
				wait = s.maxSleep
			}

			select {
			case <-s.clock.After(wait):
				continue
			case <-ctx.Done():
				return
			}
		}

		if late := now.Sub(next); late > s.maxSleep {
			s.logger.Warn("Woke up late, firing the pending occurrence once",
				zap.Time("occurrence", next), zap.Duration("late", late))
		}

		onTick(ctx, entity.Tick{Occurrence: next, FiredAt: now})

		s.mu.Lock()
		s.last = next
		s.mu.Unlock()

		next = s.NextFire(s.clock.Now())
		s.logger.Info("Next report scheduled", zap.Time("at", next))
	}
}

// Start runs the loop in the background until Stop is called.
func (s *Scheduler) Start(onTick func(context.Context, entity.Tick)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		s.Run(ctx, onTick)
	}(s.done)
}

// Stop ends a loop started with Start and waits for its current tick to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
