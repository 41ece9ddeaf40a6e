package entity

import "time"

// DispatchRun is the ledger row for a finished cycle. It never holds the report text.
type DispatchRun struct {
	ID           int64
	Trigger      TriggerKind
	Requester    string
	Status       OutcomeStatus
	Reason       string
	OccurrenceAt *time.Time
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Status is the snapshot returned by the status command.
type Status struct {
	NextFire time.Time
	InFlight bool
	Recent   []*DispatchRun
}
