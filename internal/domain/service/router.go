package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/domain/contract"
	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"go.uber.org/zap"
)

const drainInterval = 50 * time.Millisecond

// router funnels scheduled ticks and manual requests through the dispatch lock.
// Neither path ever queues: a scheduled tick is dropped, a manual request gets ErrBusy.
type router struct {
	lock       *DispatchLock
	dispatcher *dispatcher
	dm         contract.DataManager
	recorder   contract.Recorder
	clock      Clock
	logger     *zap.Logger
	closed     atomic.Bool
}

func newRouter(deps Dependencies, lock *DispatchLock, dispatcher *dispatcher) *router {
	return &router{
		lock:       lock,
		dispatcher: dispatcher,
		dm:         deps.DataManager,
		recorder:   deps.Recorder,
		clock:      deps.Clock,
		logger:     deps.Logger.Named("router"),
	}
}

func (r *router) OnScheduledTick(ctx context.Context, tick entity.Tick) {
	log := r.logger.With(zap.Time("occurrence", tick.Occurrence))
	log.Info("Scheduled report triggered")

	if err := r.acquire(); err != nil {
		if errors.Is(err, entity.ErrClosed) {
			log.Info("Relay is shutting down, skipping this occurrence")
			return
		}
		log.Warn("dispatch already in flight, skipping this occurrence")
		r.skipOccurrence(ctx, log, tick, entity.SkipReasonBusy)
		return
	}
	// The dispatcher releases the lock once it owns the cycle.
	handedOff := false
	defer func() {
		if !handedOff {
			r.lock.Release()
		}
	}()

	claimed, err := r.dm.Dispatch().ClaimOccurrence(ctx, tick.Occurrence)
	switch {
	case err != nil:
		// Continue anyway, better to send the report than to lose the occurrence
		log.Error("Failed to claim occurrence, dispatching anyway", zap.Error(err))
	case !claimed:
		log.Warn("Occurrence already dispatched, skipping")
		r.skipOccurrence(ctx, log, tick, entity.SkipReasonDuplicate)
		return
	}

	handedOff = true
	r.dispatcher.Run(context.WithoutCancel(ctx), entity.ScheduledTrigger(tick))
}

// skipOccurrence counts a dropped tick and leaves a ledger row so status shows it.
func (r *router) skipOccurrence(ctx context.Context, log *zap.Logger, tick entity.Tick, reason string) {
	r.recorder.TriggerSkipped(entity.TriggerScheduled, reason)

	now := r.clock.Now()
	occurrence := tick.Occurrence
	run := &entity.DispatchRun{
		Trigger:      entity.TriggerScheduled,
		Status:       entity.OutcomeSkipped,
		Reason:       reason,
		OccurrenceAt: &occurrence,
		StartedAt:    now,
		FinishedAt:   now,
	}
	if err := r.dm.Dispatch().Record(ctx, run); err != nil {
		log.Warn("Failed to record skipped occurrence", zap.Error(err))
	}
}

func (r *router) OnManualRequest(ctx context.Context, requester entity.Requester) (*entity.ReportBody, error) {
	r.logger.Info("Manual report requested",
		zap.String("requester", requester.Handle), zap.String("chat", requester.ReplyTo))

	if err := r.acquire(); err != nil {
		if errors.Is(err, entity.ErrBusy) {
			r.logger.Info("Manual report rejected, dispatch already in flight", zap.String("requester", requester.Handle))
			r.recorder.TriggerSkipped(entity.TriggerManual, entity.SkipReasonBusy)
		}
		return nil, err
	}

	outcome := r.dispatcher.Run(context.WithoutCancel(ctx), entity.ManualTrigger(requester))
	if outcome.Status != entity.OutcomeDelivered {
		return nil, outcome.Reason
	}

	return outcome.Report, nil
}

// acquire takes the lock unless the router is closed. The closed flag is
// re-checked after acquisition so Shutdown cannot miss a cycle that raced it.
func (r *router) acquire() error {
	if r.closed.Load() {
		return entity.ErrClosed
	}
	if !r.lock.TryAcquire() {
		return entity.ErrBusy
	}
	if r.closed.Load() {
		r.lock.Release()
		return entity.ErrClosed
	}
	return nil
}

// Shutdown stops accepting triggers and waits for the in-flight cycle, if any.
func (r *router) Shutdown(ctx context.Context) error {
	r.closed.Store(true)

	ticker := time.NewTicker(drainInterval)
	defer ticker.Stop()

	for r.lock.InFlight() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	r.logger.Info("No dispatch in flight, router closed")
	return nil
}
