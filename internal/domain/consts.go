package domain

import "time"

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

const DefaultDispatchTimeout = 60 * time.Second

// ToWeekday converts an ISO weekday (1=Monday ... 7=Sunday) to time.Weekday.
func ToWeekday(iso int) (time.Weekday, bool) {
	if iso < Monday || iso > Sunday {
		return 0, false
	}
	return time.Weekday(iso % 7), true
}
