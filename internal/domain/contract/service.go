package contract

import (
	"context"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
)

// ReportSource produces the report for one dispatch cycle.
type ReportSource interface {
	Generate(ctx context.Context) (*entity.ReportBody, error)
}

// MessageSink delivers a message to a chat on the messaging platform.
type MessageSink interface {
	Deliver(ctx context.Context, destination string, msg entity.Message) error
}

// TriggerRouter is the entry point for scheduled and manual triggers.
type TriggerRouter interface {
	OnScheduledTick(ctx context.Context, tick entity.Tick)
	OnManualRequest(ctx context.Context, requester entity.Requester) (*entity.ReportBody, error)
}

// StatusService answers the status command
type StatusService interface {
	Status(ctx context.Context) (*entity.Status, error)
}

// Recorder receives dispatch telemetry.
type Recorder interface {
	ObserveDispatch(trigger entity.TriggerKind, status entity.OutcomeStatus, duration time.Duration)
	TriggerSkipped(trigger entity.TriggerKind, reason string)
}
