package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned to a manual requester while another cycle is in flight.
	ErrBusy = errors.New("dispatch already in flight")

	// ErrClosed is returned once the relay stopped accepting triggers.
	ErrClosed = errors.New("relay is shutting down")
)

// ReportErrorKind classifies report generation failures.
type ReportErrorKind string

const (
	ReportProcessFailure  ReportErrorKind = "process_failure"
	ReportMalformedOutput ReportErrorKind = "malformed_output"
	ReportStartupFailure  ReportErrorKind = "startup_failure"
	// ReportGenerator means the generator ran fine and reported its own error.
	ReportGenerator ReportErrorKind = "generator"
)

// ReportError is any failure to obtain a report body.
type ReportError struct {
	Kind     ReportErrorKind
	Reason   string
	ExitCode int
	Stderr   string
	Output   string
	Err      error
}

func (e *ReportError) Error() string {
	switch e.Kind {
	case ReportGenerator:
		return e.Reason
	case ReportProcessFailure:
		msg := fmt.Sprintf("report process exited with code %d", e.ExitCode)
		if e.Reason != "" {
			msg += " (" + e.Reason + ")"
		}
		if e.Stderr != "" {
			msg += ": " + e.Stderr
		}
		return msg
	case ReportMalformedOutput:
		return fmt.Sprintf("failed to parse report output: %s", e.Reason)
	case ReportStartupFailure:
		if e.Err != nil {
			return fmt.Sprintf("failed to start report process: %v", e.Err)
		}
		return "failed to start report process"
	default:
		return e.Reason
	}
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// DeliveryError wraps a failed call to the messaging platform.
type DeliveryError struct {
	Destination string
	Err         error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver message to %s: %v", e.Destination, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// IsReportKind reports whether err is a ReportError of the given kind.
func IsReportKind(err error, kind ReportErrorKind) bool {
	var reportErr *ReportError
	return errors.As(err, &reportErr) && reportErr.Kind == kind
}
