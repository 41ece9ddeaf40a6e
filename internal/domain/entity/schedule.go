package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ScheduleSpec is loaded once at startup and never mutated.
type ScheduleSpec struct {
	Weekdays []time.Weekday
	Hour     int
	Minute   int
	Location *time.Location
}

// CronExpr renders the schedule as a standard five-field cron line with a CRON_TZ prefix.
func (s ScheduleSpec) CronExpr() string {
	days := make([]string, 0, len(s.Weekdays))
	for _, d := range s.Weekdays {
		days = append(days, strconv.Itoa(int(d)))
	}

	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}

	return fmt.Sprintf("CRON_TZ=%s %d %d * * %s", loc.String(), s.Minute, s.Hour, strings.Join(days, ","))
}
