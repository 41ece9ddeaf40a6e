package contract

import (
	"context"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	Dispatch() DispatchRepo
}

// DispatchRepo defines the contract for the dispatch ledger
type DispatchRepo interface {
	// ClaimOccurrence returns false when the occurrence was already claimed.
	ClaimOccurrence(ctx context.Context, occurrence time.Time) (bool, error)
	Record(ctx context.Context, run *entity.DispatchRun) error
	Latest(ctx context.Context, limit int) ([]*entity.DispatchRun, error)
}
