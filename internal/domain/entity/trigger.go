package entity

import "time"

// TriggerKind identifies where a dispatch cycle came from.
type TriggerKind string

const (
	TriggerScheduled TriggerKind = "scheduled"
	TriggerManual    TriggerKind = "manual"
)

// Requester is whoever asked for a manual report and where the answer goes.
type Requester struct {
	Handle  string // platform user handle, used for logs and the ledger
	ReplyTo string // chat or channel that receives the reply
}

// Tick is one scheduler firing.
type Tick struct {
	Occurrence time.Time // the scheduled instant
	FiredAt    time.Time // wall clock when the scheduler actually woke up
}

// Trigger is the input of a single dispatch cycle.
type Trigger struct {
	Kind       TriggerKind
	Occurrence time.Time
	Requester  Requester
}

func ScheduledTrigger(tick Tick) Trigger {
	return Trigger{Kind: TriggerScheduled, Occurrence: tick.Occurrence}
}

func ManualTrigger(requester Requester) Trigger {
	return Trigger{Kind: TriggerManual, Requester: requester}
}
