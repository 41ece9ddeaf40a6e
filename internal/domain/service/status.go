package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/report-relay-bot/internal/domain/contract"
	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
)

const recentRunsLimit = 5

type statusService struct {
	scheduler *Scheduler
	lock      *DispatchLock
	dm        contract.DataManager
	clock     Clock
}

func newStatus(deps Dependencies, scheduler *Scheduler, lock *DispatchLock) *statusService {
	return &statusService{
		scheduler: scheduler,
		lock:      lock,
		dm:        deps.DataManager,
		clock:     deps.Clock,
	}
}

func (s *statusService) Status(ctx context.Context) (*entity.Status, error) {
	runs, err := s.dm.Dispatch().Latest(ctx, recentRunsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent runs: %w", err)
	}

	return &entity.Status{
		NextFire: s.scheduler.NextFire(s.clock.Now()),
		InFlight: s.lock.InFlight(),
		Recent:   runs,
	}, nil
}
