package command

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
)

// ErrorText maps a manual dispatch error to the reply shown to the requester.
func ErrorText(err error) string {
	var reportErr *entity.ReportError
	var deliveryErr *entity.DeliveryError

	switch {
	case errors.Is(err, entity.ErrBusy):
		return "⏳ A report is already being prepared, please try again in a moment."
	case errors.Is(err, entity.ErrClosed):
		return "Bot is shutting down, please try again later."
	case errors.As(err, &reportErr) && reportErr.Kind == entity.ReportGenerator:
		return fmt.Sprintf("Report generation error: %s", reportErr.Reason)
	case errors.As(err, &deliveryErr):
		return fmt.Sprintf("Error: could not send the report: %v", deliveryErr.Err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// StatusText renders a status snapshot. Times are shown in loc.
func StatusText(status *entity.Status, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}

	var b strings.Builder
	b.WriteString("📊 Relay status\n\n")
	if status.NextFire.IsZero() {
		b.WriteString("Next report: not scheduled\n")
	} else {
		b.WriteString(fmt.Sprintf("Next report: %s\n", status.NextFire.In(loc).Format("Mon 02.01.2006 15:04 MST")))
	}

	if status.InFlight {
		b.WriteString("A report is being prepared right now.\n")
	}

	if len(status.Recent) == 0 {
		b.WriteString("\nNo reports sent yet.")
		return b.String()
	}

	b.WriteString("\nRecent runs:\n")
	for _, run := range status.Recent {
		line := fmt.Sprintf("• %s %s: %s", run.FinishedAt.In(loc).Format("02.01 15:04"), run.Trigger, run.Status)
		if run.Reason != "" {
			line += " (" + run.Reason + ")"
		}
		b.WriteString(line + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
