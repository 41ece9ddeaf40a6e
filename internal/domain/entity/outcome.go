package entity

import "time"

// OutcomeStatus is the terminal state of a dispatch cycle.
type OutcomeStatus string

const (
	OutcomeDelivered      OutcomeStatus = "delivered"
	OutcomeFailed         OutcomeStatus = "failed"
	OutcomeDeliveryFailed OutcomeStatus = "delivery_failed"
	// OutcomeSkipped marks a scheduled occurrence that never ran, Reason says why.
	OutcomeSkipped        OutcomeStatus = "skipped"
)

const (
	SkipReasonBusy      = "busy"
	SkipReasonDuplicate = "duplicate"
)

// Outcome describes how one dispatch cycle ended.
type Outcome struct {
	Status   OutcomeStatus
	Reason   error
	Trigger  Trigger
	Report   *ReportBody
	Duration time.Duration
}

func (o Outcome) ReasonText() string {
	if o.Reason == nil {
		return ""
	}
	return o.Reason.Error()
}
