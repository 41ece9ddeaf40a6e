package service

import (
	"fmt"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/domain"
	"github.com/diegoclair/report-relay-bot/internal/domain/contract"
	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// Dependencies are the collaborators of the dispatch core.
type Dependencies struct {
	DataManager contract.DataManager
	Source      contract.ReportSource
	Sink        contract.MessageSink
	Recorder    contract.Recorder
	Logger      *zap.Logger
	Clock       Clock

	Destination string
	Schedule    entity.ScheduleSpec
	Timeout     time.Duration
}

// Instance wires the dispatch core. There is one per process; all components
// share the same DispatchLock.
type Instance struct {
	Lock      *DispatchLock
	Scheduler *Scheduler
	Router    *router
	Status    *statusService
}

func NewInstance(deps Dependencies) (*Instance, error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Recorder == nil {
		deps.Recorder = nopRecorder{}
	}
	if deps.Clock == nil {
		deps.Clock = RealClock()
	}
	if deps.Timeout <= 0 {
		deps.Timeout = domain.DefaultDispatchTimeout
	}

	scheduler, err := newScheduler(deps.Schedule, deps.Clock, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	lock := NewDispatchLock()
	dispatcher := newDispatcher(deps, lock)

	return &Instance{
		Lock:      lock,
		Scheduler: scheduler,
		Router:    newRouter(deps, lock, dispatcher),
		Status:    newStatus(deps, scheduler, lock),
	}, nil
}

type nopRecorder struct{}

func (nopRecorder) ObserveDispatch(entity.TriggerKind, entity.OutcomeStatus, time.Duration) {}

func (nopRecorder) TriggerSkipped(entity.TriggerKind, string) {}
