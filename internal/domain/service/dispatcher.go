package service

import (
	"context"
	"errors"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/domain/contract"
	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// dispatcher runs one generate-then-deliver cycle. The caller must hold the lock;
// Run releases it on every exit path.
type dispatcher struct {
	source      contract.ReportSource
	sink        contract.MessageSink
	dm          contract.DataManager
	recorder    contract.Recorder
	lock        *DispatchLock
	clock       Clock
	logger      *zap.Logger
	destination string
	timeout     time.Duration
}

func newDispatcher(deps Dependencies, lock *DispatchLock) *dispatcher {
	return &dispatcher{
		source:      deps.Source,
		sink:        deps.Sink,
		dm:          deps.DataManager,
		recorder:    deps.Recorder,
		lock:        lock,
		clock:       deps.Clock,
		logger:      deps.Logger.Named("dispatcher"),
		destination: deps.Destination,
		timeout:     deps.Timeout,
	}
}

func (d *dispatcher) Run(ctx context.Context, trigger entity.Trigger) entity.Outcome {
	defer d.lock.Release()

	started := d.clock.Now()
	outcome := d.run(ctx, trigger)
	finished := d.clock.Now()
	outcome.Duration = finished.Sub(started)

	d.finish(ctx, outcome, started, finished)
	return outcome
}

func (d *dispatcher) run(ctx context.Context, trigger entity.Trigger) entity.Outcome {
	genCtx, cancel := context.WithTimeout(ctx, d.timeout)
	report, err := d.source.Generate(genCtx)
	cancel()
	if err != nil {
		return entity.Outcome{Status: entity.OutcomeFailed, Reason: err, Trigger: trigger}
	}

	destination := d.destinationFor(trigger)

	deliverCtx, cancel := context.WithTimeout(ctx, d.timeout)
	err = d.sink.Deliver(deliverCtx, destination, report.Message())
	cancel()
	if err != nil {
		var deliveryErr *entity.DeliveryError
		if !errors.As(err, &deliveryErr) {
			err = &entity.DeliveryError{Destination: destination, Err: err}
		}
		return entity.Outcome{Status: entity.OutcomeDeliveryFailed, Reason: err, Trigger: trigger, Report: report}
	}

	return entity.Outcome{Status: entity.OutcomeDelivered, Trigger: trigger, Report: report}
}

// destinationFor sends scheduled reports to the configured chat and manual
// reports back to the chat that asked.
func (d *dispatcher) destinationFor(trigger entity.Trigger) string {
	if trigger.Kind == entity.TriggerManual && trigger.Requester.ReplyTo != "" {
		return trigger.Requester.ReplyTo
	}
	return d.destination
}

func (d *dispatcher) finish(ctx context.Context, outcome entity.Outcome, started, finished time.Time) {
	fields := []zap.Field{
		zap.String("trigger", string(outcome.Trigger.Kind)),
		zap.String("status", string(outcome.Status)),
		zap.Duration("duration", outcome.Duration),
	}
	if outcome.Trigger.Kind == entity.TriggerManual {
		fields = append(fields, zap.String("requester", outcome.Trigger.Requester.Handle))
	}

	switch outcome.Status {
	case entity.OutcomeDelivered:
		d.logger.Info("Report sent successfully", fields...)
	case entity.OutcomeFailed:
		d.logger.Error("Report generation failed", append(fields, zap.Error(outcome.Reason))...)
	case entity.OutcomeDeliveryFailed:
		d.logger.Error("Error sending report", append(fields, zap.Error(outcome.Reason))...)
	}

	d.recorder.ObserveDispatch(outcome.Trigger.Kind, outcome.Status, outcome.Duration)

	run := &entity.DispatchRun{
		Trigger:    outcome.Trigger.Kind,
		Requester:  outcome.Trigger.Requester.Handle,
		Status:     outcome.Status,
		Reason:     outcome.ReasonText(),
		StartedAt:  started,
		FinishedAt: finished,
	}
	if outcome.Trigger.Kind == entity.TriggerScheduled {
		occurrence := outcome.Trigger.Occurrence
		run.OccurrenceAt = &occurrence
	}

	// The ledger is bookkeeping only; a write failure does not change the outcome.
	if err := d.dm.Dispatch().Record(ctx, run); err != nil {
		d.logger.Warn("Failed to record dispatch run", zap.Error(err))
	}
}
